package parser

import (
	"time"

	"github.com/dhamidi/tdop/lang/token"
)

// DefaultTimeout bounds how long the parser waits for the producer.
const DefaultTimeout = 5 * time.Second

// Stream is the consumer side of the token channel.
type Stream struct {
	ch       <-chan token.Token
	timeout  time.Duration
	file     string
	lastLine int
	closed   bool
}

func NewStream(ch <-chan token.Token, timeout time.Duration) *Stream {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Stream{ch: ch, timeout: timeout}
}

// Next blocks until the producer delivers a token or the timeout expires.
// A closed channel yields END tokens.
func (s *Stream) Next() (token.Token, error) {
	if s.closed {
		return token.Token{Kind: token.End, Line: s.lastLine}, nil
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case tok, ok := <-s.ch:
		if !ok {
			s.closed = true
			return token.Token{Kind: token.End, Line: s.lastLine}, nil
		}
		s.lastLine = tok.Line
		return tok, nil
	case <-timer.C:
		return token.Token{}, &StreamStallError{File: s.file, Line: s.lastLine, Timeout: s.timeout}
	}
}
