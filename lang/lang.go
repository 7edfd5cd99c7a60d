// Package lang connects the lexer, parser and renderer.
package lang

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dhamidi/tdop/format"
	"github.com/dhamidi/tdop/lang/lexer"
	"github.com/dhamidi/tdop/lang/parser"
	"github.com/dhamidi/tdop/lang/token"
)

// DefaultBuffer is the capacity of the token channel.
const DefaultBuffer = 64

type Option func(*options)

type options struct {
	file     string
	timeout  time.Duration
	buffer   int
	indent   string
	registry *parser.Registry
}

func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithBuffer(n int) Option {
	return func(o *options) { o.buffer = n }
}

func WithIndent(s string) Option {
	return func(o *options) { o.indent = s }
}

func WithRegistry(r *parser.Registry) Option {
	return func(o *options) { o.registry = r }
}

func newOptions(opts []Option) *options {
	o := &options{
		timeout: parser.DefaultTimeout,
		buffer:  DefaultBuffer,
		indent:  "    ",
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.buffer < 0 {
		o.buffer = 0
	}
	return o
}

// Parse lexes src in a separate goroutine and parses the resulting token
// stream.
func Parse(ctx context.Context, src []byte, opts ...Option) (*parser.Statements, error) {
	o := newOptions(opts)

	l, err := lexer.New(src, o.file)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tokens := make(chan token.Token, o.buffer)
	lexDone := make(chan error, 1)
	go func() {
		lexDone <- l.Run(ctx, tokens)
	}()

	popts := []parser.Option{parser.WithFile(o.file), parser.WithTimeout(o.timeout)}
	if o.registry != nil {
		popts = append(popts, parser.WithRegistry(o.registry))
	}
	stmts, parseErr := parser.New(tokens, popts...).Parse()

	cancel()
	lexErr := <-lexDone

	if parseErr != nil {
		return nil, parseErr
	}
	if lexErr != nil && !errors.Is(lexErr, context.Canceled) {
		return nil, lexErr
	}
	return stmts, nil
}

// Translate parses src and renders it.
func Translate(ctx context.Context, src []byte, opts ...Option) (string, error) {
	stmts, err := Parse(ctx, src, opts...)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	r := format.NewRenderer(&sb, format.WithIndent(newOptions(opts).indent))
	if err := r.Render(stmts); err != nil {
		return "", err
	}
	return sb.String(), nil
}
