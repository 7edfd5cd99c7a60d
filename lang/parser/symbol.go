package parser

import (
	"sort"

	"github.com/dhamidi/tdop/lang/token"
)

// NudFunc parses tok in prefix position.
type NudFunc func(p *Parser, tok token.Token) (Node, error)

// LedFunc parses tok in infix position, given the operand to its left.
type LedFunc func(p *Parser, tok token.Token, left Node) (Node, error)

// StdFunc parses the statement introduced by tok. A nil Node marks a blank
// statement.
type StdFunc func(p *Parser, tok token.Token) (Node, error)

// Symbol is the folded descriptor for one token kind.
type Symbol struct {
	Kind token.Kind

	// LBP is the power consulted by the precedence-climbing loop.
	LBP int
	// PrefixBP is the power declared for the prefix role.
	PrefixBP int

	Nud             NudFunc
	Led             LedFunc
	Std             StdFunc
	BeginsStatement bool

	hasNud bool
	hasLed bool
}

// BindingPower is the largest power ever declared for the kind.
func (s *Symbol) BindingPower() int {
	return max(s.LBP, s.PrefixBP)
}

// Roles lists the handler roles the symbol was declared with.
func (s *Symbol) Roles() []string {
	var roles []string
	if s.hasNud {
		roles = append(roles, "nud")
	}
	if s.hasLed {
		roles = append(roles, "led")
	}
	if s.BeginsStatement {
		roles = append(roles, "std")
	}
	return roles
}

type role int

const (
	roleSymbol role = iota
	roleNud
	roleLed
	roleStd
)

type declaration struct {
	kind token.Kind
	role role
	bp   int
	nud  NudFunc
	led  LedFunc
	std  StdFunc
}

// Grammar collects symbol declarations. Build folds them into a Registry.
type Grammar struct {
	decls []declaration
}

func NewGrammar() *Grammar {
	return &Grammar{}
}

// Symbol declares kind with a left binding power and no handlers.
func (g *Grammar) Symbol(kind token.Kind, bp int) *Grammar {
	g.decls = append(g.decls, declaration{kind: kind, role: roleSymbol, bp: bp})
	return g
}

func (g *Grammar) Nud(kind token.Kind, bp int, fn NudFunc) *Grammar {
	g.decls = append(g.decls, declaration{kind: kind, role: roleNud, bp: bp, nud: fn})
	return g
}

func (g *Grammar) Led(kind token.Kind, bp int, fn LedFunc) *Grammar {
	g.decls = append(g.decls, declaration{kind: kind, role: roleLed, bp: bp, led: fn})
	return g
}

func (g *Grammar) Statement(kind token.Kind, fn StdFunc) *Grammar {
	g.decls = append(g.decls, declaration{kind: kind, role: roleStd, std: fn})
	return g
}

// Literal makes kind self-denoting.
func (g *Grammar) Literal(kind token.Kind) *Grammar {
	return g.Nud(kind, 0, func(p *Parser, tok token.Token) (Node, error) {
		return &Literal{Token: tok}, nil
	})
}

func (g *Grammar) Prefix(kind token.Kind, bp int) *Grammar {
	return g.Nud(kind, bp, func(p *Parser, tok token.Token) (Node, error) {
		x, err := p.Expression(bp)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: tok, X: x}, nil
	})
}

// Infix declares a left-associative binary operator.
func (g *Grammar) Infix(kind token.Kind, bp int) *Grammar {
	return g.Led(kind, bp, func(p *Parser, tok token.Token, left Node) (Node, error) {
		right, err := p.Expression(bp)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: tok, X: left, Y: right}, nil
	})
}

// InfixR declares a right-associative binary operator.
func (g *Grammar) InfixR(kind token.Kind, bp int) *Grammar {
	return g.Led(kind, bp, func(p *Parser, tok token.Token, left Node) (Node, error) {
		right, err := p.Expression(bp - 1)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: tok, X: left, Y: right}, nil
	})
}

// Assignment is InfixR producing AssignExpr nodes.
func (g *Grammar) Assignment(kind token.Kind, bp int) *Grammar {
	return g.Led(kind, bp, func(p *Parser, tok token.Token, left Node) (Node, error) {
		value, err := p.Expression(bp - 1)
		if err != nil {
			return nil, err
		}
		return &AssignExpr{Op: tok, Target: left, Value: value}, nil
	})
}

func (g *Grammar) Suffix(kind token.Kind, bp int) *Grammar {
	return g.Led(kind, bp, func(p *Parser, tok token.Token, left Node) (Node, error) {
		return &PostfixExpr{Op: tok, X: left}, nil
	})
}

// Build folds the declarations, in order, into one Symbol per kind. A kind
// declared more than once keeps the largest power seen for each role; a
// later handler for the same role replaces the earlier one.
func (g *Grammar) Build() *Registry {
	r := &Registry{symbols: make(map[token.Kind]*Symbol)}
	for _, d := range g.decls {
		s := r.promote(d.kind, d.role, d.bp)
		switch d.role {
		case roleNud:
			s.Nud = d.nud
			s.hasNud = true
		case roleLed:
			s.Led = d.led
			s.hasLed = true
		case roleStd:
			s.Std = d.std
			s.BeginsStatement = true
		}
	}
	return r
}

// Registry maps token kinds to their symbols. It is read-only after Build
// and may be shared between parsers.
type Registry struct {
	symbols map[token.Kind]*Symbol
}

// promote registers kind if unseen, otherwise raises the power for the role
// to max(existing, bp).
func (r *Registry) promote(kind token.Kind, role role, bp int) *Symbol {
	s, ok := r.symbols[kind]
	if !ok {
		s = newSymbol(kind)
		r.symbols[kind] = s
	}
	if role == roleNud {
		s.PrefixBP = max(s.PrefixBP, bp)
	} else {
		s.LBP = max(s.LBP, bp)
	}
	return s
}

// Lookup returns the symbol for kind. Unregistered kinds get a symbol with
// no meaning in any position.
func (r *Registry) Lookup(kind token.Kind) *Symbol {
	if s, ok := r.symbols[kind]; ok {
		return s
	}
	return newSymbol(kind)
}

func (r *Registry) Has(kind token.Kind) bool {
	_, ok := r.symbols[kind]
	return ok
}

// Symbols returns all registered symbols sorted by kind.
func (r *Registry) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(r.symbols))
	for _, s := range r.symbols {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

func newSymbol(kind token.Kind) *Symbol {
	return &Symbol{
		Kind: kind,
		Nud: func(p *Parser, tok token.Token) (Node, error) {
			return nil, &NoPrefixMeaningError{File: p.file, Token: tok}
		},
		Led: func(p *Parser, tok token.Token, left Node) (Node, error) {
			return nil, &NoInfixMeaningError{File: p.file, Token: tok}
		},
	}
}
