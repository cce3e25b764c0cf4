package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/retodia/retodia-backend/internal/fractal"
	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/platform/ctxutil"
	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/repos"
	"github.com/retodia/retodia-backend/internal/types"
)

type FractalService interface {
	State(ctx context.Context) (fractal.SessionState, error)
	ProcessTurn(ctx context.Context, history []fractal.Turn) (fractal.TurnResult, error)
	Reset(ctx context.Context) (fractal.SessionState, error)
	History(ctx context.Context, limit int) ([]*types.ChatLog, error)
}

type fractalService struct {
	log         *logger.Logger
	engine      *fractal.Engine
	chatLogRepo repos.ChatLogRepo
}

func NewFractalService(log *logger.Logger, engine *fractal.Engine, chatLogRepo repos.ChatLogRepo) FractalService {
	return &fractalService{
		log:         log.With("service", "FractalService"),
		engine:      engine,
		chatLogRepo: chatLogRepo,
	}
}

func (s *fractalService) requireUser(ctx context.Context) (uuid.UUID, error) {
	userID := ctxutil.UserID(ctx)
	if userID == uuid.Nil {
		return uuid.Nil, apierr.Unauthenticated(fmt.Errorf("no authenticated user"))
	}
	return userID, nil
}

func (s *fractalService) State(ctx context.Context) (fractal.SessionState, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return fractal.SessionState{}, err
	}
	return s.engine.State(ctx, userID)
}

// ProcessTurn runs one turn through the engine and appends the exchanged
// messages to the chat log. Logging is best-effort: a log failure never
// fails the turn.
func (s *fractalService) ProcessTurn(ctx context.Context, history []fractal.Turn) (fractal.TurnResult, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return fractal.TurnResult{}, err
	}

	res, err := s.engine.ProcessTurn(ctx, userID, history)
	if err != nil {
		return fractal.TurnResult{}, err
	}

	entries := make([]*types.ChatLog, 0, 2)
	if len(history) > 0 {
		last := history[len(history)-1]
		if last.Role == "user" {
			entries = append(entries, &types.ChatLog{UserID: userID, Role: last.Role, Text: last.Text, Phase: res.Phase})
		}
	}
	entries = append(entries, &types.ChatLog{UserID: userID, Role: "model", Text: res.Reply, Phase: res.Phase})
	if err := s.chatLogRepo.Create(ctx, nil, entries); err != nil {
		s.log.Warn("chat log write failed", "user_id", userID.String(), "error", err)
	}

	return res, nil
}

func (s *fractalService) Reset(ctx context.Context) (fractal.SessionState, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return fractal.SessionState{}, err
	}
	s.log.Info("resetting fractal session", "user_id", userID.String())
	return s.engine.Reset(ctx, userID)
}

func (s *fractalService) History(ctx context.Context, limit int) ([]*types.ChatLog, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.chatLogRepo.ListByUserID(ctx, nil, userID, limit)
}
