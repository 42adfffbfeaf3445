package parser

import (
	"errors"
	"fmt"
)

// ErrRecoverable matches every error that only invalidates a single line.
var ErrRecoverable = errors.New("recoverable parse error")

// LineFormatError reports a line that does not have the
// "date amount description tags" shape.
type LineFormatError struct {
	Line string
}

func (e *LineFormatError) Error() string {
	return fmt.Sprintf("Could not parse line \"%s\"", e.Line)
}

// Is makes errors.Is(err, ErrRecoverable) hold.
func (e *LineFormatError) Is(target error) bool {
	return target == ErrRecoverable
}

// AmountParseError reports an amount token that matches none of the
// accepted numeric shapes.
type AmountParseError struct {
	Token string
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("Could not parse amount \"%s\"", e.Token)
}

// Is makes errors.Is(err, ErrRecoverable) hold.
func (e *AmountParseError) Is(target error) bool {
	return target == ErrRecoverable
}
