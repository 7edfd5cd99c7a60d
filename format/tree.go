package format

import (
	"io"

	"github.com/dhamidi/tdop/lang/parser"
)

// TreeEncoder writes the S-expression form of a node, one top-level
// statement per line.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node parser.Node) error {
	if stmts, ok := node.(*parser.Statements); ok {
		for _, stmt := range stmts.List {
			if _, err := io.WriteString(e.w, stmt.String()+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := io.WriteString(e.w, node.String()+"\n")
	return err
}
