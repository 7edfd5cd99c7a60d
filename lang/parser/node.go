package parser

import (
	"strings"

	"github.com/dhamidi/tdop/lang/token"
)

type NodeKind int

const (
	// Expressions
	KindLiteral NodeKind = iota
	KindUnaryExpr
	KindPostfixExpr
	KindBinaryExpr
	KindAssignExpr

	// Statements
	KindExprStmt
	KindPrintStmt
	KindBreakStmt
	KindContinueStmt
	KindIfStmt
	KindWhileStmt

	// Containers
	KindBlock
	KindStatements
)

var nodeKindNames = map[NodeKind]string{
	KindLiteral:      "Literal",
	KindUnaryExpr:    "UnaryExpr",
	KindPostfixExpr:  "PostfixExpr",
	KindBinaryExpr:   "BinaryExpr",
	KindAssignExpr:   "AssignExpr",
	KindExprStmt:     "ExprStmt",
	KindPrintStmt:    "PrintStmt",
	KindBreakStmt:    "BreakStmt",
	KindContinueStmt: "ContinueStmt",
	KindIfStmt:       "IfStmt",
	KindWhileStmt:    "WhileStmt",
	KindBlock:        "Block",
	KindStatements:   "Statements",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is implemented by every AST variant. String returns an
// S-expression dump of the subtree.
type Node interface {
	Kind() NodeKind
	Line() int
	String() string
}

// Literal is a NUMBER, FLOAT, NAME or STRING operand.
type Literal struct {
	Token token.Token
}

func (n *Literal) Kind() NodeKind { return KindLiteral }
func (n *Literal) Line() int      { return n.Token.Line }
func (n *Literal) Value() string  { return n.Token.Literal }
func (n *Literal) String() string { return sexpr(string(n.Token.Kind), n.Token.Literal) }

type UnaryExpr struct {
	Op token.Token
	X  Node
}

func (n *UnaryExpr) Kind() NodeKind { return KindUnaryExpr }
func (n *UnaryExpr) Line() int      { return n.Op.Line }
func (n *UnaryExpr) String() string { return sexpr(string(n.Op.Kind), n.X) }

type PostfixExpr struct {
	Op token.Token
	X  Node
}

func (n *PostfixExpr) Kind() NodeKind { return KindPostfixExpr }
func (n *PostfixExpr) Line() int      { return n.Op.Line }
func (n *PostfixExpr) String() string { return sexpr(string(n.Op.Kind), n.X) }

type BinaryExpr struct {
	Op   token.Token
	X, Y Node
}

func (n *BinaryExpr) Kind() NodeKind { return KindBinaryExpr }
func (n *BinaryExpr) Line() int      { return n.Op.Line }
func (n *BinaryExpr) String() string { return sexpr(string(n.Op.Kind), n.X, n.Y) }

type AssignExpr struct {
	Op     token.Token
	Target Node
	Value  Node
}

func (n *AssignExpr) Kind() NodeKind { return KindAssignExpr }
func (n *AssignExpr) Line() int      { return n.Op.Line }
func (n *AssignExpr) String() string { return sexpr(string(n.Op.Kind), n.Target, n.Value) }

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	X Node
}

func (n *ExprStmt) Kind() NodeKind { return KindExprStmt }
func (n *ExprStmt) Line() int      { return n.X.Line() }
func (n *ExprStmt) String() string { return n.X.String() }

type PrintStmt struct {
	Keyword token.Token
	Value   Node
}

func (n *PrintStmt) Kind() NodeKind { return KindPrintStmt }
func (n *PrintStmt) Line() int      { return n.Keyword.Line }
func (n *PrintStmt) String() string { return sexpr("print", n.Value) }

type BreakStmt struct {
	Keyword token.Token
}

func (n *BreakStmt) Kind() NodeKind { return KindBreakStmt }
func (n *BreakStmt) Line() int      { return n.Keyword.Line }
func (n *BreakStmt) String() string { return "(break)" }

type ContinueStmt struct {
	Keyword token.Token
}

func (n *ContinueStmt) Kind() NodeKind { return KindContinueStmt }
func (n *ContinueStmt) Line() int      { return n.Keyword.Line }
func (n *ContinueStmt) String() string { return "(continue)" }

// IfStmt has an optional Else block.
type IfStmt struct {
	Keyword token.Token
	Cond    Node
	Then    *Block
	Else    *Block
}

func (n *IfStmt) Kind() NodeKind { return KindIfStmt }
func (n *IfStmt) Line() int      { return n.Keyword.Line }
func (n *IfStmt) String() string {
	if n.Else == nil {
		return sexpr("if", n.Cond, n.Then)
	}
	return sexpr("if", n.Cond, n.Then, n.Else)
}

type WhileStmt struct {
	Keyword token.Token
	Cond    Node
	Body    *Block
}

func (n *WhileStmt) Kind() NodeKind { return KindWhileStmt }
func (n *WhileStmt) Line() int      { return n.Keyword.Line }
func (n *WhileStmt) String() string { return sexpr("while", n.Cond, n.Body) }

// Block is an indented statement sequence owned by if or while.
type Block struct {
	Indent token.Token
	Stmts  *Statements
}

func (n *Block) Kind() NodeKind { return KindBlock }
func (n *Block) Line() int      { return n.Indent.Line }
func (n *Block) String() string {
	return "{" + n.Stmts.String() + "}"
}

// Statements is an ordered statement sequence. Blank lines are not kept.
type Statements struct {
	List []Node
}

func (n *Statements) Kind() NodeKind { return KindStatements }

func (n *Statements) Line() int {
	if len(n.List) == 0 {
		return 0
	}
	return n.List[0].Line()
}

func (n *Statements) String() string {
	parts := make([]string, len(n.List))
	for i, stmt := range n.List {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, " ")
}

func sexpr(head string, args ...any) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(head)
	for _, arg := range args {
		switch a := arg.(type) {
		case string:
			sb.WriteString(" ")
			sb.WriteString(a)
		case Node:
			sb.WriteString(" ")
			sb.WriteString(a.String())
		}
	}
	sb.WriteString(")")
	return sb.String()
}
