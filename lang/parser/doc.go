// Package parser implements a top-down operator precedence parser for an
// indentation-structured language.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Lexer     │────▶│   Stream    │────▶│   Parser    │
//	│ (goroutine) │chan │ (deadline)  │     │   (AST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │  Registry   │
//	                                        │ nud/led/std │
//	                                        └─────────────┘
//
// The lexer runs concurrently and sends tokens on a channel. The parser keeps
// exactly one current token and never looks further ahead. Each receive waits
// at most the stream timeout; a silent producer yields a StreamStallError.
//
// # Registry
//
// Every token kind maps to a Symbol carrying a left binding power and up to
// three handlers:
//
//	nud  prefix position:    -x, literals
//	led  infix position:     x + y, x = y
//	std  statement start:    if, while, print, break, continue, NEWLINE
//
// Symbols are declared on a Grammar and folded by Build. Declaring a kind
// again keeps the larger binding power, so "-" can be declared as infix(10)
// and prefix(100):
//
//	g := parser.DefaultGrammar()
//	g.Suffix("!", 110)
//	reg := g.Build()
//	p := parser.New(tokens, parser.WithRegistry(reg))
//
// # Expressions
//
// Expression(rbp) calls nud on the current token, then keeps calling led
// while the next token binds tighter than rbp. Associativity comes from the
// rbp each handler passes back in: infix uses bp, InfixR and Assignment use
// bp-1, so a = b = c parses as a = (b = c).
//
// # Statements
//
//	stmt  = "if" expr ":" NEWLINE block [ "else" ":" NEWLINE block ]
//	      | "while" expr ":" NEWLINE block
//	      | "print" expr
//	      | "break" | "continue"
//	      | NEWLINE
//	      | expr ( NEWLINE | END | DEDENT ) .
//	block = INDENT { stmt } DEDENT .
//
// Advance treats END as sticky: once the stream is exhausted, trailing
// structure may be omitted.
//
// # Errors
//
// Parsing stops at the first error. All errors implement Diagnostic:
//
//	UnexpectedTokenError  Advance found a kind outside the expected set
//	NoPrefixMeaningError  no nud for the kind
//	NoInfixMeaningError   no led for the kind
//	StreamStallError      the producer went quiet
//	IllegalTokenError     the lexer reported an error
package parser
