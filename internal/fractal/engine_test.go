package fractal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/retodia/retodia-backend/internal/platform/apierr"
)

type failingStore struct {
	Store
	saveErr error
}

func (s *failingStore) Save(ctx context.Context, userID uuid.UUID, state SessionState) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.Store.Save(ctx, userID, state)
}

func newTestEngine(t *testing.T, llm *fakeLLM, store Store) *Engine {
	t.Helper()
	log := testLogger(t)
	return NewEngine(log, NewExecutor(log, llm), store)
}

func TestProcessTurn_ExtractsIntoPhase1(t *testing.T) {
	llm := &fakeLLM{reply: `{"respuesta_conversacional":"Qué bonito nombre.","datos":{"nombre_simbolico":"Ánima"},"fase_completa":false}`}
	store := NewInMemoryStore()
	engine := newTestEngine(t, llm, store)
	userID := uuid.New()

	res, err := engine.ProcessTurn(context.Background(), userID, []Turn{{Role: "user", Text: "Me llamo Ánima, busco crecer"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Fractal.Dimension1.NombreSimbolico != "Ánima" {
		t.Fatalf("expected nombre_simbolico extracted, got %+v", res.Fractal.Dimension1)
	}
	if res.Phase != 1 || res.Complete {
		t.Fatalf("expected phase 1 incomplete, got phase=%d complete=%v", res.Phase, res.Complete)
	}
	if !res.Persisted {
		t.Fatalf("expected state persisted")
	}

	saved, err := store.Load(context.Background(), userID)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if saved.Fractal.Dimension1.NombreSimbolico != "Ánima" || saved.Phase != 1 {
		t.Fatalf("persisted state mismatch: %+v", saved)
	}
}

func TestProcessTurn_Phase4CompletionIsTerminal(t *testing.T) {
	llm := &fakeLLM{reply: `{"respuesta_conversacional":"Hemos terminado.","datos":{"introduccion":"así funciona tu mente"},"fase_completa":true}`}
	store := NewInMemoryStore()
	userID := uuid.New()
	if err := store.Save(context.Background(), userID, SessionState{Fractal: sampleData(), Phase: 4}); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	engine := newTestEngine(t, llm, store)

	res, err := engine.ProcessTurn(context.Background(), userID, []Turn{{Role: "user", Text: "listo"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Complete || res.Phase != 4 {
		t.Fatalf("expected terminal state, got %+v", res)
	}

	callsBefore := llm.calls
	_, err = engine.ProcessTurn(context.Background(), userID, []Turn{{Role: "user", Text: "otra cosa"}})
	if !apierr.Is(err, apierr.CodeSessionComplete) {
		t.Fatalf("expected session_complete, got %v", err)
	}
	if llm.calls != callsBefore {
		t.Fatalf("turn after completion was submitted to the executor")
	}
}

func TestProcessTurn_MalformedOutputLeavesSessionUntouched(t *testing.T) {
	llm := &fakeLLM{reply: `{"respuesta_conversacional":"hola"}`}
	store := NewInMemoryStore()
	userID := uuid.New()
	seeded := SessionState{Fractal: sampleData(), Phase: 2}
	if err := store.Save(context.Background(), userID, seeded); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	engine := newTestEngine(t, llm, store)

	_, err := engine.ProcessTurn(context.Background(), userID, []Turn{{Role: "user", Text: "hola"}})
	if !apierr.Is(err, apierr.CodeMalformedModelOutput) {
		t.Fatalf("expected malformed_model_output, got %v", err)
	}
	after, err := store.Load(context.Background(), userID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if after.Phase != 2 {
		t.Fatalf("phase changed on malformed output: %+v", after)
	}
	assertEqualJSON(t, seeded.Fractal, after.Fractal)
}

func TestProcessTurn_SaveFailureDoesNotRollBack(t *testing.T) {
	llm := &fakeLLM{reply: `{"respuesta_conversacional":"sigo aquí","datos":{"proposito":"crecer"},"fase_completa":true}`}
	store := &failingStore{Store: NewInMemoryStore(), saveErr: errors.New("connection refused")}
	engine := newTestEngine(t, llm, store)

	res, err := engine.ProcessTurn(context.Background(), uuid.New(), []Turn{{Role: "user", Text: "hola"}})
	if err != nil {
		t.Fatalf("save failure must not fail the turn: %v", err)
	}
	if res.Persisted {
		t.Fatalf("expected persisted=false")
	}
	if res.Phase != 2 || res.Fractal.Dimension1.Proposito != "crecer" {
		t.Fatalf("in-memory transition rolled back: %+v", res)
	}
}

func TestStateAndReset(t *testing.T) {
	store := NewInMemoryStore()
	engine := newTestEngine(t, &fakeLLM{}, store)
	userID := uuid.New()

	// first contact: defaults, nothing persisted yet
	state, err := engine.State(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Phase != 1 || state.Complete {
		t.Fatalf("expected fresh defaults, got %+v", state)
	}
	if _, err := store.Load(context.Background(), userID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("fresh state should not be persisted, got %v", err)
	}

	if err := store.Save(context.Background(), userID, SessionState{Fractal: sampleData(), Phase: 3, Complete: false}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	state, err = engine.Reset(context.Background(), userID)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if state.Phase != 1 || state.Fractal.Dimension1.NombreSimbolico != "" {
		t.Fatalf("reset did not overwrite wholesale: %+v", state)
	}
}

func TestInMemoryStore_RoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	userID := uuid.New()
	want := SessionState{Fractal: sampleData(), Phase: 3, Complete: false}
	if err := store.Save(context.Background(), userID, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(context.Background(), userID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Phase != want.Phase || got.Complete != want.Complete {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}
	assertEqualJSON(t, want.Fractal, got.Fractal)
}
