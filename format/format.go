// Package format renders parsed programs as text.
package format

import "github.com/dhamidi/tdop/lang/parser"

// Encoder writes a serialized form of an AST.
type Encoder interface {
	Encode(node parser.Node) error
}

var (
	_ Encoder = (*ASTJSONEncoder)(nil)
	_ Encoder = (*ASTYAMLEncoder)(nil)
	_ Encoder = (*TreeEncoder)(nil)
)
