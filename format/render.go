package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/tdop/lang/parser"
)

// Renderer writes an AST as brace-delimited, semicolon-terminated source.
type Renderer struct {
	w         io.Writer
	indent    int
	indentStr string
}

type RenderOption func(*Renderer)

// WithIndent sets the text written once per nesting level.
func WithIndent(s string) RenderOption {
	return func(r *Renderer) {
		r.indentStr = s
	}
}

func NewRenderer(w io.Writer, opts ...RenderOption) *Renderer {
	r := &Renderer{
		w:         w,
		indentStr: "    ",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes stmts. The output has no trailing newline.
func (r *Renderer) Render(stmts *parser.Statements) error {
	r.indent = 0
	text, err := r.statements(stmts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.w, text)
	return err
}

// Render returns the rendering of stmts using the default indent.
func Render(stmts *parser.Statements, opts ...RenderOption) (string, error) {
	var sb strings.Builder
	if err := NewRenderer(&sb, opts...).Render(stmts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Renderer) statements(stmts *parser.Statements) (string, error) {
	prefix := strings.Repeat(r.indentStr, r.indent)
	lines := make([]string, 0, len(stmts.List))
	for _, stmt := range stmts.List {
		text, err := r.node(stmt)
		if err != nil {
			return "", err
		}
		lines = append(lines, prefix+text)
	}
	return strings.Join(lines, "\n"), nil
}

func (r *Renderer) block(b *parser.Block) (string, error) {
	r.indent++
	inner, err := r.statements(b.Stmts)
	r.indent--
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	if inner != "" {
		sb.WriteString(inner)
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(r.indentStr, r.indent))
	sb.WriteString("}")
	return sb.String(), nil
}

func (r *Renderer) node(n parser.Node) (string, error) {
	switch n := n.(type) {
	case *parser.Literal:
		return n.Value(), nil

	case *parser.UnaryExpr:
		x, err := r.node(n.X)
		if err != nil {
			return "", err
		}
		return string(n.Op.Kind) + x, nil

	case *parser.PostfixExpr:
		x, err := r.node(n.X)
		if err != nil {
			return "", err
		}
		return x + string(n.Op.Kind), nil

	case *parser.BinaryExpr:
		return r.binary(string(n.Op.Kind), n.X, n.Y)

	case *parser.AssignExpr:
		return r.binary(string(n.Op.Kind), n.Target, n.Value)

	case *parser.ExprStmt:
		x, err := r.node(n.X)
		if err != nil {
			return "", err
		}
		return x + ";", nil

	case *parser.PrintStmt:
		x, err := r.node(n.Value)
		if err != nil {
			return "", err
		}
		return "print " + x + ";", nil

	case *parser.BreakStmt:
		return "break;", nil

	case *parser.ContinueStmt:
		return "continue;", nil

	case *parser.IfStmt:
		cond, err := r.node(n.Cond)
		if err != nil {
			return "", err
		}
		then, err := r.block(n.Then)
		if err != nil {
			return "", err
		}
		out := "if (" + cond + ")" + then
		if n.Else == nil {
			return out, nil
		}
		els, err := r.block(n.Else)
		if err != nil {
			return "", err
		}
		return out + "else " + els, nil

	case *parser.WhileStmt:
		cond, err := r.node(n.Cond)
		if err != nil {
			return "", err
		}
		body, err := r.block(n.Body)
		if err != nil {
			return "", err
		}
		return "while (" + cond + ") " + body, nil

	case *parser.Block:
		return r.block(n)

	case *parser.Statements:
		return r.statements(n)
	}
	return "", fmt.Errorf("render: unsupported node %T", n)
}

func (r *Renderer) binary(op string, x, y parser.Node) (string, error) {
	left, err := r.node(x)
	if err != nil {
		return "", err
	}
	right, err := r.node(y)
	if err != nil {
		return "", err
	}
	return left + op + right, nil
}
