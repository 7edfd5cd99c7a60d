package parser

import (
	"slices"
	"time"

	"github.com/dhamidi/tdop/lang/token"
	"github.com/tliron/commonlog"
)

type Option func(*Parser)

// WithFile sets the file name reported in diagnostics.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithTimeout bounds each wait on the token channel.
func WithTimeout(d time.Duration) Option {
	return func(p *Parser) {
		p.timeout = d
	}
}

// WithRegistry replaces the default symbol registry.
func WithRegistry(r *Registry) Option {
	return func(p *Parser) {
		p.registry = r
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

type Parser struct {
	file     string
	timeout  time.Duration
	registry *Registry
	log      commonlog.Logger
	stream   *Stream
	token    token.Token
	symbol   *Symbol
	primed   bool
}

// New returns a parser reading from tokens. Nothing is read until Parse or
// ParseExpression is called.
func New(tokens <-chan token.Token, opts ...Option) *Parser {
	p := &Parser{
		timeout: DefaultTimeout,
		log:     commonlog.GetLogger("tdop.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = DefaultRegistry()
	}
	p.stream = NewStream(tokens, p.timeout)
	p.stream.file = p.file
	return p
}

func (p *Parser) File() string { return p.file }

// Current returns the token the parser is positioned on.
func (p *Parser) Current() token.Token { return p.token }

// At reports whether the current token is one of kinds.
func (p *Parser) At(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.token.Kind)
}

// Parse reads the whole token stream as a statement sequence.
func (p *Parser) Parse() (*Statements, error) {
	if err := p.prime(); err != nil {
		return nil, err
	}
	stmts, err := p.Statements()
	if err != nil {
		return nil, err
	}
	if !p.At(token.End) {
		return nil, p.unexpected(token.End)
	}
	return stmts, nil
}

// ParseExpression reads a single expression.
func (p *Parser) ParseExpression() (Node, error) {
	if err := p.prime(); err != nil {
		return nil, err
	}
	return p.Expression(0)
}

func (p *Parser) prime() error {
	if p.primed {
		return nil
	}
	p.primed = true
	return p.next()
}

func (p *Parser) next() error {
	tok, err := p.stream.Next()
	if err != nil {
		return err
	}
	if tok.Kind == token.Error {
		return &IllegalTokenError{File: p.file, Token: tok}
	}
	p.token = tok
	p.symbol = p.registry.Lookup(tok.Kind)
	p.log.Debugf("token %s", tok)
	return nil
}

// Advance moves past the current token. When expected is non-empty the
// current token must be one of those kinds. At END it does nothing.
func (p *Parser) Advance(expected ...token.Kind) error {
	if p.token.Kind == token.End {
		return nil
	}
	if len(expected) > 0 && !p.At(expected...) {
		return p.unexpected(expected...)
	}
	return p.next()
}

func (p *Parser) unexpected(expected ...token.Kind) error {
	return &UnexpectedTokenError{File: p.file, Expected: expected, Got: p.token}
}

// Expression parses an expression whose operators all bind tighter than rbp.
func (p *Parser) Expression(rbp int) (Node, error) {
	t, s := p.token, p.symbol
	if err := p.Advance(); err != nil {
		return nil, err
	}
	left, err := s.Nud(p, t)
	if err != nil {
		return nil, err
	}
	for rbp < p.symbol.LBP {
		t, s = p.token, p.symbol
		if err := p.Advance(); err != nil {
			return nil, err
		}
		left, err = s.Led(p, t, left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// Statement parses one statement. It returns nil for a blank line.
func (p *Parser) Statement() (Node, error) {
	t, s := p.token, p.symbol
	if s.BeginsStatement {
		if err := p.Advance(); err != nil {
			return nil, err
		}
		p.log.Debugf("statement %s at line %d", t.Kind, t.Line)
		return s.Std(p, t)
	}

	x, err := p.Expression(0)
	if err != nil {
		return nil, err
	}
	if !p.At(token.Newline, token.End, token.Dedent) {
		return nil, p.unexpected(token.Newline, token.End, token.Dedent)
	}
	if p.At(token.Newline) {
		if err := p.Advance(); err != nil {
			return nil, err
		}
	}
	return &ExprStmt{X: x}, nil
}

// Statements parses statements up to END or DEDENT.
func (p *Parser) Statements() (*Statements, error) {
	stmts := &Statements{}
	for !p.At(token.End, token.Dedent) {
		stmt, err := p.Statement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts.List = append(stmts.List, stmt)
		}
	}
	return stmts, nil
}

// Block parses INDENT statements DEDENT.
func (p *Parser) Block() (*Block, error) {
	indent := p.token
	if err := p.Advance(token.Indent); err != nil {
		return nil, err
	}
	stmts, err := p.Statements()
	if err != nil {
		return nil, err
	}
	if err := p.Advance(token.Dedent); err != nil {
		return nil, err
	}
	return &Block{Indent: indent, Stmts: stmts}, nil
}
