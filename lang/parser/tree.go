package parser

type treeNode struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Line     int         `json:"line,omitempty" yaml:"line,omitempty"`
	Token    string      `json:"token,omitempty" yaml:"token,omitempty"`
	Children []*treeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Tree converts n into a generic kind/token/children tree for the JSON and
// YAML encoders.
func Tree(n Node) any {
	return toTree(n)
}

func toTree(n Node) *treeNode {
	tn := &treeNode{Kind: n.Kind().String(), Line: n.Line()}

	add := func(children ...Node) {
		for _, c := range children {
			tn.Children = append(tn.Children, toTree(c))
		}
	}

	switch n := n.(type) {
	case *Literal:
		tn.Token = n.Token.Literal
	case *UnaryExpr:
		tn.Token = string(n.Op.Kind)
		add(n.X)
	case *PostfixExpr:
		tn.Token = string(n.Op.Kind)
		add(n.X)
	case *BinaryExpr:
		tn.Token = string(n.Op.Kind)
		add(n.X, n.Y)
	case *AssignExpr:
		tn.Token = string(n.Op.Kind)
		add(n.Target, n.Value)
	case *ExprStmt:
		add(n.X)
	case *PrintStmt:
		add(n.Value)
	case *IfStmt:
		add(n.Cond, n.Then)
		if n.Else != nil {
			add(n.Else)
		}
	case *WhileStmt:
		add(n.Cond, n.Body)
	case *Block:
		add(n.Stmts.List...)
	case *Statements:
		add(n.List...)
	}

	return tn
}
