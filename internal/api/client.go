package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// StartResult is the payload of a successful POST /start.
type StartResult struct {
	Question string `json:"question"`
	Message  string `json:"message"`
}

// AnswerResult is the payload of a successful POST /answer. Question is the
// next riddle when the server sends one, empty otherwise.
type AnswerResult struct {
	Correct        bool   `json:"correct"`
	Question       string `json:"question"`
	Score          int    `json:"score"`
	TotalAnswered  int    `json:"total_answered"`
	CorrectAnswers int    `json:"correct_answers"`
	Message        string `json:"message"`
}

// ScoreResult is the payload of a successful GET /score.
type ScoreResult struct {
	Score           int     `json:"score"`
	TotalAnswered   int     `json:"total_answered"`
	CorrectAnswers  int     `json:"correct_answers"`
	SuccessRate     float64 `json:"success_rate"`
	Active          bool    `json:"active"`
	CurrentQuestion string  `json:"current_question"`
}

// EndResult is the payload of a successful POST /end.
type EndResult struct {
	FinalScore     int     `json:"final_score"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	SuccessRate    float64 `json:"success_rate"`
	Message        string  `json:"message"`
}

// HistoryEntry is one asked question in a session's history. UserAnswer and
// Correct are nil for the question still awaiting an answer.
type HistoryEntry struct {
	Question      string  `json:"question"`
	UserAnswer    *string `json:"user_answer"`
	Correct       *bool   `json:"correct"`
	CorrectAnswer string  `json:"correct_answer"`
}

// HistoryResult is the payload of a successful GET /history.
type HistoryResult struct {
	SessionID        string         `json:"session_id"`
	TotalQuestions   int            `json:"total_questions"`
	QuestionsHistory []HistoryEntry `json:"questions_history"`
}

// Client executes single-attempt requests against the riddle service. It is
// stateless apart from the cookie jar, which carries the session credential
// the server sets on /start; every call attaches it automatically.
type Client struct {
	httpc *http.Client
	base  string
	log   zerolog.Logger
}

// NewClient creates a Client for the given config. The jar is installed on
// the underlying http.Client so the session cookie rides along on every
// request without the caller's involvement.
func NewClient(cfg Config, jar *SessionJar, log zerolog.Logger) *Client {
	return &Client{
		httpc: &http.Client{
			Timeout: cfg.Timeout,
			Jar:     jar,
		},
		base: strings.TrimRight(cfg.BaseURL, "/"),
		log:  log,
	}
}

// Start begins a new game session. The server responds with the first riddle
// and sets the session cookie.
func (c *Client) Start(ctx context.Context) (*StartResult, error) {
	var out StartResult
	if err := c.do(ctx, http.MethodPost, "/start", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Answer submits an answer for the current riddle.
func (c *Client) Answer(ctx context.Context, answer string) (*AnswerResult, error) {
	body := map[string]string{"answer": answer}
	var out AnswerResult
	if err := c.do(ctx, http.MethodPost, "/answer", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Score fetches the current tally without mutating the session.
func (c *Client) Score(ctx context.Context) (*ScoreResult, error) {
	var out ScoreResult
	if err := c.do(ctx, http.MethodGet, "/score", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// End finishes the session and returns the final tally.
func (c *Client) End(ctx context.Context) (*EndResult, error) {
	var out EndResult
	if err := c.do(ctx, http.MethodPost, "/end", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History returns every question asked in the current session.
func (c *Client) History(ctx context.Context) (*HistoryResult, error) {
	var out HistoryResult
	if err := c.do(ctx, http.MethodGet, "/history", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reset abandons the current session server-side and clears the stored
// session cookie.
func (c *Client) Reset(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, "/reset", nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// do performs one request and decodes the response into out. A non-2xx
// response carrying a FastAPI-style {"detail": ...} body becomes an *Error;
// everything else surfaces as *ErrUnreachable.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).
			Str("request_id", requestID).Err(err).Msg("api request failed")
		return &ErrUnreachable{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &ErrUnreachable{Err: fmt.Errorf("read response: %w", err)}
	}

	c.log.Debug().Str("method", method).Str("path", path).
		Str("request_id", requestID).Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var rejection struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(data, &rejection); err == nil && rejection.Detail != "" {
			return &Error{StatusCode: resp.StatusCode, Detail: rejection.Detail}
		}
		return &ErrUnreachable{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &ErrUnreachable{Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}
