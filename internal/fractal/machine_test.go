package fractal

import "testing"

func TestAdvance_FalseLeavesStateUnchanged(t *testing.T) {
	s := State{Phase: 2}
	for i := 0; i < 10; i++ {
		s = s.Advance(false)
	}
	if s.Phase != 2 || s.Complete {
		t.Fatalf("expected phase 2 incomplete, got %+v", s)
	}
}

func TestAdvance_TrueMovesThroughPhases(t *testing.T) {
	s := InitialState()
	for want := 2; want <= 4; want++ {
		s = s.Advance(true)
		if s.Phase != want || s.Complete {
			t.Fatalf("expected phase %d incomplete, got %+v", want, s)
		}
	}
}

func TestAdvance_Phase4CompletionIsTerminal(t *testing.T) {
	s := State{Phase: 4}
	s = s.Advance(true)
	if !s.Complete {
		t.Fatalf("expected complete after phase 4, got %+v", s)
	}
	for _, flag := range []bool{true, false, true} {
		next := s.Advance(flag)
		if next != s {
			t.Fatalf("terminal state changed: %+v -> %+v", s, next)
		}
	}
}
