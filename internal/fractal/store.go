package fractal

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/retodia/retodia-backend/internal/types"
)

var ErrNotFound = errors.New("fractal session not found")

// SessionState is the unit of persistence: the profile plus the state
// machine position, keyed by a stable user identifier.
type SessionState struct {
	Fractal  types.FractalData `json:"fractal"`
	Phase    int               `json:"phase"`
	Complete bool              `json:"is_complete"`
}

func NewSessionState() SessionState {
	st := InitialState()
	return SessionState{Fractal: types.NewFractalData(), Phase: st.Phase, Complete: st.Complete}
}

// Store is the durable session contract the engine requires from its
// environment. Load returns ErrNotFound for first-time users. Writes for a
// given user must be applied in call order.
type Store interface {
	Load(ctx context.Context, userID uuid.UUID) (SessionState, error)
	Save(ctx context.Context, userID uuid.UUID, state SessionState) error
}
