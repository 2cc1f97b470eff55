package parser

import (
	"errors"
	"fmt"
)

var (
	ErrMissingModelName    = errors.New("missing model name")
	ErrInvalidModelName    = errors.New("invalid model name")
	ErrMalformedLine       = errors.New("malformed field line")
	ErrUnbalancedNesting   = errors.New("unbalanced nesting")
	ErrUnsupportedModifier = errors.New("unsupported modifier")
)

// LineError ties a parse failure to its 1-based position in the input
// sequence. The model name is line 1.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineError(line int, text string, err error) error {
	return &LineError{Line: line, Text: text, Err: err}
}
