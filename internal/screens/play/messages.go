package play

import "github.com/kmensah/riddl/internal/api"

// Each operation produces exactly one of these when its remote call
// completes, carrying either the typed payload or the error.

// beginDoneMsg is sent when the /start call completes.
type beginDoneMsg struct {
	Res *api.StartResult
	Err error
}

// submitDoneMsg is sent when the /answer call completes.
type submitDoneMsg struct {
	Res *api.AnswerResult
	Err error
}

// finishDoneMsg is sent when the /end call completes.
type finishDoneMsg struct {
	Res *api.EndResult
	Err error
}

// refreshDoneMsg is sent when the /score call completes.
type refreshDoneMsg struct {
	Res *api.ScoreResult
	Err error
}
