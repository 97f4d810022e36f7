package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kmensah/riddl/internal/api"
)

// EmptyAnswerMessage is shown when a submit short-circuits on blank input.
const EmptyAnswerMessage = "Please enter an answer!"

// unreachableMessage is shown for transport-level failures, where the server
// never produced a detail string.
const unreachableMessage = "Cannot reach the riddle server. Please try again."

// Each operation is a pair (or triple) of pure transitions: a Started
// transition that raises Busy before the remote call, and a Succeeded/Failed
// transition that applies the response and releases Busy. The caller wires
// each Started to exactly one Remote Client call and feeds the outcome back
// into the matching terminal transition, so Busy covers the whole round-trip
// and is released on every exit path.

// BeginStarted marks a begin operation in flight.
func BeginStarted(s State) State {
	s.Busy = true
	return s
}

// BeginSucceeded applies a successful /start response: counters reset, first
// riddle installed, phase moves to Playing.
func BeginSucceeded(s State, res *api.StartResult) State {
	s.Busy = false
	s.Phase = PhasePlaying
	s.CurrentPrompt = res.Question
	s.StatusMessage = res.Message
	s.DraftAnswer = ""
	s.Score = 0
	s.TotalAnswered = 0
	s.CorrectAnswers = 0
	return s
}

// BeginFailed releases Busy and reports the failure. Phase is untouched, so a
// failed begin leaves the machine where it was (NotStarted or Ended).
func BeginFailed(s State, err error) State {
	s.Busy = false
	s.StatusMessage = FailureMessage(err)
	return s
}

// ValidateDraft trims the draft answer and reports whether anything remains.
// A blank draft never reaches the server.
func ValidateDraft(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	return trimmed, trimmed != ""
}

// SubmitRejected applies the local validation failure for a blank answer.
// No remote call was made, so Busy and the counters are untouched.
func SubmitRejected(s State) State {
	s.StatusMessage = EmptyAnswerMessage
	return s
}

// SubmitStarted marks a submit operation in flight, recording the draft that
// is being sent.
func SubmitStarted(s State, draft string) State {
	s.Busy = true
	s.DraftAnswer = draft
	return s
}

// SubmitSucceeded applies a successful /answer response. The tally is the
// server's word; the prompt advances only when the server sent a next
// riddle, and the accepted draft is cleared.
func SubmitSucceeded(s State, res *api.AnswerResult) State {
	s.Busy = false
	s.Score = res.Score
	s.TotalAnswered = res.TotalAnswered
	s.CorrectAnswers = res.CorrectAnswers
	s.StatusMessage = res.Message
	if res.Question != "" {
		s.CurrentPrompt = res.Question
	}
	s.DraftAnswer = ""
	return s
}

// SubmitFailed releases Busy and reports the failure. Counters are untouched
// and the draft is kept so the user does not lose unsent text.
func SubmitFailed(s State, err error) State {
	s.Busy = false
	s.StatusMessage = FailureMessage(err)
	return s
}

// FinishStarted marks a finish operation in flight.
func FinishStarted(s State) State {
	s.Busy = true
	return s
}

// FinishSucceeded applies a successful /end response and moves to Ended.
func FinishSucceeded(s State, res *api.EndResult) State {
	s.Busy = false
	s.Phase = PhaseEnded
	s.Score = res.FinalScore
	s.TotalAnswered = res.TotalQuestions
	s.CorrectAnswers = res.CorrectAnswers
	s.StatusMessage = res.Message
	return s
}

// FinishFailed releases Busy and reports the failure; the session stays
// Playing.
func FinishFailed(s State, err error) State {
	s.Busy = false
	s.StatusMessage = FailureMessage(err)
	return s
}

// ScoreRefreshed applies a successful /score response. Refresh is read-only
// and not gated by Busy, so it deliberately leaves Busy, the phase, the
// prompt, and the draft alone; it commutes with an in-flight submit.
func ScoreRefreshed(s State, res *api.ScoreResult) State {
	s.Score = res.Score
	s.TotalAnswered = res.TotalAnswered
	s.CorrectAnswers = res.CorrectAnswers
	s.StatusMessage = fmt.Sprintf("Score %d: %d/%d correct (%d%%)",
		res.Score, res.CorrectAnswers, res.TotalAnswered,
		successRate(res.CorrectAnswers, res.TotalAnswered))
	return s
}

// ScoreRefreshFailed reports the failure without touching the counters.
func ScoreRefreshFailed(s State, err error) State {
	s.StatusMessage = FailureMessage(err)
	return s
}

// FailureMessage derives the display string for a failed remote call: the
// server's detail when it explicitly rejected the request, a generic message
// for anything transport-level.
func FailureMessage(err error) string {
	var rejection *api.Error
	if errors.As(err, &rejection) {
		return rejection.Detail
	}
	return unreachableMessage
}
