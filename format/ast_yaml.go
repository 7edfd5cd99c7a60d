package format

import (
	"io"

	"github.com/dhamidi/tdop/lang/parser"
	"gopkg.in/yaml.v3"
)

type ASTYAMLEncoder struct {
	w io.Writer
}

func NewASTYAMLEncoder(w io.Writer) *ASTYAMLEncoder {
	return &ASTYAMLEncoder{w: w}
}

func (e *ASTYAMLEncoder) Encode(node parser.Node) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(parser.Tree(node)); err != nil {
		return err
	}
	return enc.Close()
}
