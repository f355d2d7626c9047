package ask

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrAborted is returned when the user presses Ctrl+C or Ctrl+G while answering
	ErrAborted = errors.New("aborted")
	// ErrEOF is returned when the key source runs out of input
	ErrEOF = errors.New("EOF")
	// ErrInvalidAnswer can be wrapped by a Custom conversion function to report
	// that the user typed something it cannot convert. The answer is rejected
	// with the invalid_type response and the question is asked again.
	ErrInvalidAnswer = errors.New("invalid answer")
)

// InputError describes a rejected answer. It is recoverable: the prompter shows
// Message and asks the question again.
type InputError struct {
	Kind    ResponseKey // Which response was shown (not_valid, invalid_type, ...)
	Answer  string      // The text the user entered, after whitespace and case handling
	Message string      // The rendered response message
	Err     error       // Underlying conversion error, if any
}

func (e *InputError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return string(e.Kind)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ProgrammerError reports a mistake in how a question was built or in a
// caller-supplied function: a malformed pattern or template, a conversion
// function that failed for a reason other than ErrInvalidAnswer, or bounds
// that cannot be compared with the answer. It is never retried.
type ProgrammerError struct {
	Op  string
	Err error
}

func (e *ProgrammerError) Error() string {
	return fmt.Sprintf("ask: %s: %v", e.Op, e.Err)
}

func (e *ProgrammerError) Unwrap() error {
	return e.Err
}

func programmerError(op string, err error) error {
	return &ProgrammerError{Op: op, Err: err}
}
