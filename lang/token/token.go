// Package token defines the alphabet shared by the lexer and the parser.
package token

import "fmt"

// Kind identifies a token. Operators and keywords use their own spelling.
type Kind string

const (
	// Literals
	Number Kind = "NUMBER"
	Float  Kind = "FLOAT"
	Name   Kind = "NAME"
	String Kind = "STRING"

	// Operators
	Plus    Kind = "+"
	Minus   Kind = "-"
	Star    Kind = "*"
	Slash   Kind = "/"
	Greater Kind = ">"
	Less    Kind = "<"
	Assign  Kind = "="
	Colon   Kind = ":"

	// Keywords
	If       Kind = "if"
	Else     Kind = "else"
	While    Kind = "while"
	Print    Kind = "print"
	Break    Kind = "break"
	Continue Kind = "continue"

	// Layout
	Newline Kind = "NEWLINE"
	Indent  Kind = "INDENT"
	Dedent  Kind = "DEDENT"
	End     Kind = "END"

	// Error carries a lexer diagnostic in its literal.
	Error Kind = "ERROR"
)

var keywords = map[string]Kind{
	"if":       If,
	"else":     Else,
	"while":    While,
	"print":    Print,
	"break":    Break,
	"continue": Continue,
}

// LookupKeyword returns the keyword kind for ident, or Name.
func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Name
}

// IsLiteral reports whether tokens of this kind carry a meaningful literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case Number, Float, Name, String:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

type Token struct {
	Kind    Kind
	Line    int
	Literal string
}

func (t Token) String() string {
	if t.Kind.IsLiteral() || t.Kind == Error {
		return fmt.Sprintf("%d %s %q", t.Line, t.Kind, t.Literal)
	}
	return fmt.Sprintf("%d %s", t.Line, t.Kind)
}
