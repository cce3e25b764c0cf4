package fractal

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/types"
)

// TurnResult is what one successfully processed turn hands back to the
// driver. Persisted is false when the save failed; the in-memory transition
// still happened, bounded to at most one turn of loss on resume.
type TurnResult struct {
	Reply     string            `json:"respuesta_conversacional"`
	Fractal   types.FractalData `json:"fractal"`
	Phase     int               `json:"phase"`
	Complete  bool              `json:"is_complete"`
	Persisted bool              `json:"persisted"`
}

// Engine ties the registry, executor, merge policy and state machine
// together and drives one session turn by turn. It holds no queue and no
// locks: the driver submits at most one in-flight turn per session.
type Engine struct {
	log      *logger.Logger
	executor *Executor
	store    Store
}

func NewEngine(log *logger.Logger, executor *Executor, store Store) *Engine {
	return &Engine{log: log.With("component", "FractalEngine"), executor: executor, store: store}
}

// State loads the session for userID, falling back to a fresh one for
// first-time users. The fresh state is not persisted until the first turn.
func (e *Engine) State(ctx context.Context, userID uuid.UUID) (SessionState, error) {
	state, err := e.store.Load(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return NewSessionState(), nil
	}
	if err != nil {
		return SessionState{}, apierr.PersistenceFailure(fmt.Errorf("load session: %w", err))
	}
	return state, nil
}

// ProcessTurn runs one conversational turn: executor, merge, state machine,
// then persistence. The merge and the phase transition are applied together
// in memory before any save attempt, so a failed save cannot desynchronize
// phase from profile. A failed save is logged and surfaced through
// TurnResult.Persisted rather than returned as an error.
func (e *Engine) ProcessTurn(ctx context.Context, userID uuid.UUID, history []Turn) (TurnResult, error) {
	state, err := e.State(ctx, userID)
	if err != nil {
		return TurnResult{}, err
	}
	if state.Complete {
		return TurnResult{}, apierr.New(http.StatusConflict, apierr.CodeSessionComplete, errors.New("interview already complete"))
	}

	reply, err := e.executor.RunTurn(ctx, state.Phase, history, state.Fractal)
	if err != nil {
		return TurnResult{}, err
	}

	merged, err := Merge(state.Fractal, state.Phase, reply.Datos)
	if err != nil {
		return TurnResult{}, err
	}
	next := State{Phase: state.Phase, Complete: state.Complete}.Advance(reply.FaseCompleta)

	newState := SessionState{Fractal: merged, Phase: next.Phase, Complete: next.Complete}
	persisted := true
	if err := e.store.Save(ctx, userID, newState); err != nil {
		persisted = false
		e.log.Error("session save failed, continuing with in-memory state",
			"user_id", userID.String(), "phase", next.Phase, "error", err)
	}

	return TurnResult{
		Reply:     reply.RespuestaConversacional,
		Fractal:   merged,
		Phase:     next.Phase,
		Complete:  next.Complete,
		Persisted: persisted,
	}, nil
}

// Reset overwrites the session wholesale with a fresh one.
func (e *Engine) Reset(ctx context.Context, userID uuid.UUID) (SessionState, error) {
	state := NewSessionState()
	if err := e.store.Save(ctx, userID, state); err != nil {
		return SessionState{}, apierr.PersistenceFailure(fmt.Errorf("reset session: %w", err))
	}
	return state, nil
}
