package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/retodia/retodia-backend/internal/clients/redis"
	"github.com/retodia/retodia-backend/internal/fractal"
	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/repos"
	"github.com/retodia/retodia-backend/internal/types"
)

// dbSessionStore adapts the fractal_session table (plus an optional redis
// read-through cache) to the engine's Store contract.
type dbSessionStore struct {
	log   *logger.Logger
	repo  repos.FractalSessionRepo
	cache *redis.Cache
}

func NewDBSessionStore(log *logger.Logger, repo repos.FractalSessionRepo, cache *redis.Cache) fractal.Store {
	return &dbSessionStore{
		log:   log.With("service", "SessionStore"),
		repo:  repo,
		cache: cache,
	}
}

func sessionCacheKey(userID uuid.UUID) string {
	return "fractal_session:" + userID.String()
}

func (s *dbSessionStore) Load(ctx context.Context, userID uuid.UUID) (fractal.SessionState, error) {
	var cached fractal.SessionState
	if err := s.cache.GetJSON(ctx, sessionCacheKey(userID), &cached); err == nil {
		return cached, nil
	}

	row, err := s.repo.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fractal.SessionState{}, fractal.ErrNotFound
		}
		return fractal.SessionState{}, err
	}

	state := fractal.SessionState{Phase: row.Phase, Complete: row.IsComplete, Fractal: types.NewFractalData()}
	if len(row.Fractal) > 0 {
		if err := json.Unmarshal(row.Fractal, &state.Fractal); err != nil {
			return fractal.SessionState{}, fmt.Errorf("decode stored fractal: %w", err)
		}
	}
	s.cache.SetJSON(ctx, sessionCacheKey(userID), state)
	return state, nil
}

func (s *dbSessionStore) Save(ctx context.Context, userID uuid.UUID, state fractal.SessionState) error {
	raw, err := json.Marshal(state.Fractal)
	if err != nil {
		return fmt.Errorf("encode fractal: %w", err)
	}
	_, err = s.repo.Upsert(ctx, nil, &types.FractalSession{
		UserID:     userID,
		Fractal:    datatypes.JSON(raw),
		Phase:      state.Phase,
		IsComplete: state.Complete,
	})
	if err != nil {
		// stale cache is worse than no cache once a save fails
		s.cache.Del(ctx, sessionCacheKey(userID))
		return err
	}
	s.cache.SetJSON(ctx, sessionCacheKey(userID), state)
	return nil
}
