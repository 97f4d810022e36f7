package game

// Phase is the top-level state of a play-through.
type Phase int

const (
	PhaseNotStarted Phase = iota // No session yet (or previous one abandoned)
	PhasePlaying                 // Session active, a riddle is on screen
	PhaseEnded                   // Session finished, final tally shown
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// State is the single client-side record of a game session. The three
// counters are never computed locally; they are copied verbatim from the most
// recent successful server response that carried them. A fresh process starts
// from NewState; continuity across restarts lives entirely in the session
// cookie held by the transport layer.
type State struct {
	// Phase is the current session phase.
	Phase Phase

	// CurrentPrompt is the riddle being shown. Meaningful only while Playing;
	// retained unmutated into Ended for the final display.
	CurrentPrompt string

	// DraftAnswer is the user's typed answer, owned entirely client-side.
	// Cleared after each accepted submission, preserved on failure.
	DraftAnswer string

	// Score, TotalAnswered, and CorrectAnswers are the server's tally.
	Score          int
	TotalAnswered  int
	CorrectAnswers int

	// StatusMessage is the last human-readable outcome, display only.
	StatusMessage string

	// Busy is true exactly while one remote call is outstanding. The caller
	// must not trigger a second mutating operation while it is set; every
	// transition pair below guarantees it is released on completion.
	Busy bool
}

// NewState returns the initial NotStarted state.
func NewState() State {
	return State{Phase: PhaseNotStarted}
}

// SuccessRate returns the display percentage for the current tally,
// rounded to the nearest whole percent. Zero when nothing was answered.
func (s State) SuccessRate() int {
	return successRate(s.CorrectAnswers, s.TotalAnswered)
}

func successRate(correct, total int) int {
	if total <= 0 {
		return 0
	}
	// Round half up; counts are non-negative.
	return (correct*200 + total) / (total * 2)
}
