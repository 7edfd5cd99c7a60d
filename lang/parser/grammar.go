package parser

import (
	"sync"

	"github.com/dhamidi/tdop/lang/token"
)

// DefaultGrammar declares the symbols of the language. Callers may add
// declarations before calling Build.
func DefaultGrammar() *Grammar {
	g := NewGrammar()

	for _, k := range []token.Kind{token.Number, token.Float, token.Name, token.String} {
		g.Literal(k)
	}

	g.Infix(token.Plus, 10).Infix(token.Minus, 10)
	g.Infix(token.Star, 20).Infix(token.Slash, 20)
	g.Infix(token.Greater, 5).Infix(token.Less, 5)

	g.Prefix(token.Plus, 100).Prefix(token.Minus, 100)

	g.Assignment(token.Assign, 20)

	for _, k := range []token.Kind{token.End, token.Indent, token.Dedent, token.Colon, token.Else} {
		g.Symbol(k, 0)
	}

	g.Statement(token.Newline, blankStatement)
	g.Statement(token.Continue, continueStatement)
	g.Statement(token.Break, breakStatement)
	g.Statement(token.Print, printStatement)
	g.Statement(token.If, ifStatement)
	g.Statement(token.While, whileStatement)

	return g
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry built from DefaultGrammar.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = DefaultGrammar().Build()
	})
	return defaultRegistry
}

func blankStatement(p *Parser, tok token.Token) (Node, error) {
	return nil, nil
}

func breakStatement(p *Parser, tok token.Token) (Node, error) {
	return &BreakStmt{Keyword: tok}, nil
}

func continueStatement(p *Parser, tok token.Token) (Node, error) {
	return &ContinueStmt{Keyword: tok}, nil
}

func printStatement(p *Parser, tok token.Token) (Node, error) {
	value, err := p.Expression(0)
	if err != nil {
		return nil, err
	}
	return &PrintStmt{Keyword: tok, Value: value}, nil
}

func ifStatement(p *Parser, tok token.Token) (Node, error) {
	node := &IfStmt{Keyword: tok}

	cond, then, err := p.conditionalBlock()
	if err != nil {
		return nil, err
	}
	node.Cond, node.Then = cond, then

	if p.At(token.Else) {
		if err := p.headerEnd(token.Else); err != nil {
			return nil, err
		}
		if node.Else, err = p.Block(); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func whileStatement(p *Parser, tok token.Token) (Node, error) {
	cond, body, err := p.conditionalBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Keyword: tok, Cond: cond, Body: body}, nil
}

// conditionalBlock parses `expr : NEWLINE block`.
func (p *Parser) conditionalBlock() (Node, *Block, error) {
	cond, err := p.Expression(0)
	if err != nil {
		return nil, nil, err
	}
	if err := p.headerEnd(); err != nil {
		return nil, nil, err
	}
	body, err := p.Block()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

// headerEnd consumes the given kinds followed by `:` NEWLINE.
func (p *Parser) headerEnd(kinds ...token.Kind) error {
	for _, k := range append(kinds, token.Colon, token.Newline) {
		if err := p.Advance(k); err != nil {
			return err
		}
	}
	return nil
}
