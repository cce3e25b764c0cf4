package fractal

// State is the position of one session in the interview: the current phase
// and whether the terminal state has been reached. Once Complete is set the
// state never changes again.
type State struct {
	Phase    int
	Complete bool
}

func InitialState() State {
	return State{Phase: PhaseMin}
}

// Advance applies the completion flag of one structured reply. A false flag
// leaves the state unchanged; a true flag moves to the next phase, or to the
// terminal state when phase 4 finishes.
func (s State) Advance(phaseComplete bool) State {
	if s.Complete || !phaseComplete {
		return s
	}
	if s.Phase >= PhaseMax {
		s.Complete = true
		return s
	}
	s.Phase++
	return s
}
