package parser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dhamidi/tdop/lang/token"
)

// Diagnostic is implemented by every error the parser returns.
type Diagnostic interface {
	error
	Pos() (file string, line int)
}

// UnexpectedTokenError is returned by Advance when the current token is not
// one of the expected kinds.
type UnexpectedTokenError struct {
	File     string
	Expected []token.Kind
	Got      token.Token
}

func (e *UnexpectedTokenError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		expected[i] = string(k)
	}
	return fmt.Sprintf("%s: expected one of %s, found %q instead",
		position(e.File, e.Got.Line), strings.Join(expected, " "), e.Got.Kind)
}

func (e *UnexpectedTokenError) Pos() (string, int) { return e.File, e.Got.Line }

// NoPrefixMeaningError is returned when a token without a prefix handler
// appears where an operand is required.
type NoPrefixMeaningError struct {
	File  string
	Token token.Token
}

func (e *NoPrefixMeaningError) Error() string {
	return fmt.Sprintf("%s: parse error (%q)", position(e.File, e.Token.Line), e.Token.Kind)
}

func (e *NoPrefixMeaningError) Pos() (string, int) { return e.File, e.Token.Line }

// NoInfixMeaningError is returned when a token without an infix handler
// binds tighter than the expression being parsed.
type NoInfixMeaningError struct {
	File  string
	Token token.Token
}

func (e *NoInfixMeaningError) Error() string {
	return fmt.Sprintf("%s: unknown operator (%q)", position(e.File, e.Token.Line), e.Token.Kind)
}

func (e *NoInfixMeaningError) Pos() (string, int) { return e.File, e.Token.Line }

// StreamStallError is returned when the producer does not deliver a token
// within the stream timeout.
type StreamStallError struct {
	File    string
	Line    int
	Timeout time.Duration
}

func (e *StreamStallError) Error() string {
	return fmt.Sprintf("%s: no token received within %s, producer stalled", position(e.File, e.Line), e.Timeout)
}

func (e *StreamStallError) Pos() (string, int) { return e.File, e.Line }

// IllegalTokenError wraps an ERROR token emitted by the lexer.
type IllegalTokenError struct {
	File  string
	Token token.Token
}

func (e *IllegalTokenError) Error() string {
	return fmt.Sprintf("%s: %s", position(e.File, e.Token.Line), e.Token.Literal)
}

func (e *IllegalTokenError) Pos() (string, int) { return e.File, e.Token.Line }

// ErrorLine extracts the source line from a (possibly wrapped) parser error.
func ErrorLine(err error) (int, bool) {
	var d Diagnostic
	if errors.As(err, &d) {
		_, line := d.Pos()
		return line, true
	}
	return 0, false
}

func position(file string, line int) string {
	if file == "" {
		return fmt.Sprintf("line %d", line)
	}
	return fmt.Sprintf("%s:%d", file, line)
}
