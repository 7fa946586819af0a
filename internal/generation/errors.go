package generation

import (
	"errors"
	"fmt"
)

// ErrEmptyPrompt is returned before any provider call when the prompt is blank.
var ErrEmptyPrompt = errors.New("prompt is required")

// Error is a failed generation attempt. Status is the provider's HTTP status, or
// zero when no response was received. Message is safe to show to the player.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unknown error"
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("generation failed (provider status %d): %s", e.Status, msg)
	} else {
		msg = "generation failed: " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }
