// Package lexer turns source text into the token stream consumed by the
// parser.
//
// Tokens within a line are recognised by longest match against the token
// productions of an EBNF grammar (see tokens.ebnf). Line structure is handled
// separately: every logical line ends with NEWLINE, changes in leading
// whitespace produce INDENT and DEDENT, and the stream ends with END. Blank
// lines and lines holding only a comment produce nothing.
package lexer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dhamidi/tdop/lang/token"
	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"
)

// tabWidth is the column multiple a tab advances to.
const tabWidth = 8

type production struct {
	name string
	kind token.Kind // empty for productions that are skipped
}

// productions lists the token productions in tie-break order.
var productions = []production{
	{"Float", token.Float},
	{"Number", token.Number},
	{"Name", token.Name},
	{"String", token.String},
	{"Operator", ""},
	{"Space", ""},
	{"Comment", ""},
}

var productionNames = func() []string {
	names := make([]string, len(productions))
	for i, p := range productions {
		names[i] = p.name
	}
	return names
}()

// Error describes input the lexer could not tokenize.
type Error struct {
	File    string
	Line    int
	Message string
}

func (e *Error) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}

type Lexer struct {
	grammar ebnf.Grammar
	input   []byte
	file    string
	log     commonlog.Logger
}

// New returns a lexer for input using the embedded token grammar.
func New(input []byte, file string) (*Lexer, error) {
	grammar, err := DefaultGrammar()
	if err != nil {
		return nil, err
	}
	return NewWithGrammar(grammar, input, file), nil
}

func NewWithGrammar(grammar ebnf.Grammar, input []byte, file string) *Lexer {
	return &Lexer{
		grammar: grammar,
		input:   input,
		file:    file,
		log:     commonlog.GetLogger("tdop.lexer"),
	}
}

// Tokenize returns every token up to and including END. If the input is
// malformed the last token has kind ERROR and err is a *Error.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	err := l.scan(func(tok token.Token) error {
		tokens = append(tokens, tok)
		return nil
	})
	return tokens, err
}

// Run sends tokens on out until END or an ERROR token has been sent, then
// closes out. It stops early when ctx is done.
func (l *Lexer) Run(ctx context.Context, out chan<- token.Token) error {
	defer close(out)
	return l.scan(func(tok token.Token) error {
		select {
		case out <- tok:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

func (l *Lexer) scan(emit func(token.Token) error) error {
	indents := []int{0}
	lineNo := 0

	fail := func(line int, msg string) error {
		l.log.Debugf("%s:%d: %s", l.file, line, msg)
		if err := emit(token.Token{Kind: token.Error, Line: line, Literal: msg}); err != nil {
			return err
		}
		return &Error{File: l.file, Line: line, Message: msg}
	}

	for _, raw := range bytes.Split(l.input, []byte("\n")) {
		lineNo++
		line := bytes.TrimSuffix(raw, []byte("\r"))

		width, rest := measureIndent(line)
		if len(rest) == 0 || rest[0] == '#' {
			continue
		}

		switch top := indents[len(indents)-1]; {
		case width > top:
			indents = append(indents, width)
			if err := emit(token.Token{Kind: token.Indent, Line: lineNo}); err != nil {
				return err
			}
		case width < top:
			for width < indents[len(indents)-1] {
				indents = indents[:len(indents)-1]
				if err := emit(token.Token{Kind: token.Dedent, Line: lineNo}); err != nil {
					return err
				}
			}
			if width != indents[len(indents)-1] {
				return fail(lineNo, "unindent does not match any outer indentation level")
			}
		}

		m := newMatcher(l.grammar, rest)
		for offset := 0; offset < len(rest); {
			i, n := m.longest(productionNames, offset)
			if n == 0 {
				return fail(lineNo, fmt.Sprintf("unexpected character %q", rest[offset]))
			}
			lexeme := string(rest[offset : offset+n])
			offset += n

			var kind token.Kind
			switch p := productions[i]; {
			case p.name == "Name":
				kind = token.LookupKeyword(lexeme)
			case p.name == "Operator":
				kind = token.Kind(lexeme)
			case p.kind == "":
				continue
			default:
				kind = p.kind
			}

			tok := token.Token{Kind: kind, Line: lineNo}
			if kind.IsLiteral() {
				tok.Literal = lexeme
			}
			if err := emit(tok); err != nil {
				return err
			}
		}

		if err := emit(token.Token{Kind: token.Newline, Line: lineNo}); err != nil {
			return err
		}
	}

	for len(indents) > 1 {
		indents = indents[:len(indents)-1]
		if err := emit(token.Token{Kind: token.Dedent, Line: lineNo}); err != nil {
			return err
		}
	}
	return emit(token.Token{Kind: token.End, Line: lineNo})
}

// measureIndent returns the column of the first non-blank byte of line and
// the remainder of the line from there.
func measureIndent(line []byte) (int, []byte) {
	width := 0
	for i, ch := range line {
		switch ch {
		case ' ':
			width++
		case '\t':
			width = (width/tabWidth + 1) * tabWidth
		default:
			return width, line[i:]
		}
	}
	return width, nil
}
