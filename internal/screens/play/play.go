package play

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/kmensah/riddl/internal/api"
	"github.com/kmensah/riddl/internal/game"
	"github.com/kmensah/riddl/internal/router"
	"github.com/kmensah/riddl/internal/screen"
	"github.com/kmensah/riddl/internal/ui/components"
	"github.com/kmensah/riddl/internal/ui/layout"
)

// gameService is the slice of the Remote Client the play screen needs.
type gameService interface {
	Start(ctx context.Context) (*api.StartResult, error)
	Answer(ctx context.Context, answer string) (*api.AnswerResult, error)
	End(ctx context.Context) (*api.EndResult, error)
	Score(ctx context.Context) (*api.ScoreResult, error)
}

// PlayScreen hosts one game session. It owns the game.State, disables the
// mutating triggers while a call is outstanding, and wires each operation to
// exactly one remote call.
type PlayScreen struct {
	svc        gameService
	state      game.State
	input      components.TextInput
	confirmEnd bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen backed by the given service.
func New(svc gameService) *PlayScreen {
	return &PlayScreen{
		svc:   svc,
		state: game.NewState(),
		input: components.NewTextInput("Type your answer...", 255),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return tea.Batch(s.beginGame(), s.input.Init())
}

func (s *PlayScreen) Title() string {
	return "Play"
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.confirmEnd {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	switch s.state.Phase {
	case game.PhasePlaying:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+R", Description: "Refresh score"},
			{Key: "Esc", Description: "End game"},
		}
	case game.PhaseEnded:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "Ctrl+R", Description: "Refresh score"},
			{Key: "Esc", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case beginDoneMsg:
		if msg.Err != nil {
			s.state = game.BeginFailed(s.state, msg.Err)
		} else {
			s.state = game.BeginSucceeded(s.state, msg.Res)
			s.input.Reset()
		}
		return s, nil

	case submitDoneMsg:
		if msg.Err != nil {
			// Draft stays in the input so nothing typed is lost.
			s.state = game.SubmitFailed(s.state, msg.Err)
		} else {
			s.state = game.SubmitSucceeded(s.state, msg.Res)
			s.input.Reset()
		}
		return s, nil

	case finishDoneMsg:
		if msg.Err != nil {
			s.state = game.FinishFailed(s.state, msg.Err)
		} else {
			s.state = game.FinishSucceeded(s.state, msg.Res)
		}
		return s, nil

	case refreshDoneMsg:
		if msg.Err != nil {
			s.state = game.ScoreRefreshFailed(s.state, msg.Err)
		} else {
			s.state = game.ScoreRefreshed(s.state, msg.Res)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Non-key messages (cursor blink etc.) go to the input.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// End-game confirmation dialog.
	if s.confirmEnd {
		switch key {
		case "y", "Y":
			s.confirmEnd = false
			if s.state.Busy {
				return s, nil
			}
			return s, s.endGame()
		case "n", "N", "esc":
			s.confirmEnd = false
		}
		return s, nil
	}

	switch s.state.Phase {
	case game.PhasePlaying:
		switch key {
		case "enter":
			if s.state.Busy {
				return s, nil
			}
			return s, s.submitAnswer()
		case "esc":
			s.confirmEnd = true
			return s, nil
		case "ctrl+r":
			// Read-only and idempotent; not gated by busy.
			return s, s.refreshScore()
		}

		// Everything else is typing.
		if s.state.Busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.state.DraftAnswer = s.input.Value()
		return s, cmd

	case game.PhaseEnded:
		switch key {
		case "enter":
			if s.state.Busy {
				return s, nil
			}
			return s, s.beginGame()
		case "ctrl+r":
			return s, s.refreshScore()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// NotStarted: the opening begin failed.
	switch key {
	case "enter":
		if s.state.Busy {
			return s, nil
		}
		return s, s.beginGame()
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// beginGame raises busy and starts a new session.
func (s *PlayScreen) beginGame() tea.Cmd {
	s.state = game.BeginStarted(s.state)
	return func() tea.Msg {
		res, err := s.svc.Start(context.Background())
		return beginDoneMsg{Res: res, Err: err}
	}
}

// submitAnswer validates the draft locally, then sends it. A blank draft
// never leaves the client.
func (s *PlayScreen) submitAnswer() tea.Cmd {
	draft, ok := game.ValidateDraft(s.input.Value())
	if !ok {
		s.state = game.SubmitRejected(s.state)
		return nil
	}

	s.state = game.SubmitStarted(s.state, draft)
	return func() tea.Msg {
		res, err := s.svc.Answer(context.Background(), draft)
		return submitDoneMsg{Res: res, Err: err}
	}
}

// endGame raises busy and finishes the session.
func (s *PlayScreen) endGame() tea.Cmd {
	s.state = game.FinishStarted(s.state)
	return func() tea.Msg {
		res, err := s.svc.End(context.Background())
		return finishDoneMsg{Res: res, Err: err}
	}
}

// refreshScore re-reads the tally without touching busy.
func (s *PlayScreen) refreshScore() tea.Cmd {
	return func() tea.Msg {
		res, err := s.svc.Score(context.Background())
		return refreshDoneMsg{Res: res, Err: err}
	}
}
