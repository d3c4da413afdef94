package input

import (
	"context"
	"errors"
)

// ErrRequestPending is returned when a line request is made while another
// is still outstanding.
var ErrRequestPending = errors.New("line request already pending")

// LineHandler consumes a line of typed text. A non-nil error keeps the
// request open and its message is shown as the re-prompt.
type LineHandler func(ctx context.Context, line string) error

// Prompt is the single slot for a suspended line request. While a request
// is pending the game loop must not update the scene that made it; it calls
// Poll each tick instead until the request resolves.
type Prompt struct {
	kb      *Keyboard
	pending *lineRequest
}

type lineRequest struct {
	prompt  string
	handle  LineHandler
	problem string
}

// NewPrompt creates an empty request slot reading lines from kb.
func NewPrompt(kb *Keyboard) *Prompt {
	return &Prompt{kb: kb}
}

// Request opens a line request and switches the keyboard into text mode.
func (p *Prompt) Request(prompt string, handle LineHandler) error {
	if p.pending != nil {
		return ErrRequestPending
	}
	p.pending = &lineRequest{prompt: prompt, handle: handle}
	p.kb.SetTextMode(true)
	return nil
}

// Pending reports whether a request is outstanding.
func (p *Prompt) Pending() bool {
	return p.pending != nil
}

// Poll hands at most one queued line to the pending request's handler
// without blocking. It returns true if the request resolved.
func (p *Prompt) Poll(ctx context.Context) bool {
	if p.pending == nil {
		return false
	}

	var line string
	select {
	case line = <-p.kb.Lines():
	default:
		return false
	}

	req := p.pending
	p.pending = nil
	p.kb.SetTextMode(false)

	if err := req.handle(ctx, line); err != nil {
		req.problem = err.Error()
		p.pending = req
		p.kb.SetTextMode(true)
		return false
	}
	return true
}

// View returns what to show for the pending request: the prompt, the text
// typed so far and the message from the last rejected line.
func (p *Prompt) View() (prompt, typed, problem string, ok bool) {
	if p.pending == nil {
		return "", "", "", false
	}
	return p.pending.prompt, p.kb.Typed(), p.pending.problem, true
}

// RetryError carries a player-facing message for a rejected line.
type RetryError struct {
	Message string
	Err     error
}

// Retry wraps err with the message to show when re-prompting.
func Retry(message string, err error) error {
	return &RetryError{Message: message, Err: err}
}

func (e *RetryError) Error() string {
	return e.Message
}

func (e *RetryError) Unwrap() error {
	return e.Err
}
