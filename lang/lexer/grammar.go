package lexer

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/exp/ebnf"
)

// StartProduction is the root of every token grammar.
const StartProduction = "Tokens"

//go:embed tokens.ebnf
var tokensEBNF []byte

var (
	defaultGrammar    ebnf.Grammar
	defaultGrammarErr error
	defaultGrammarMu  sync.Once
)

// DefaultGrammar returns the embedded token grammar.
func DefaultGrammar() (ebnf.Grammar, error) {
	defaultGrammarMu.Do(func() {
		defaultGrammar, defaultGrammarErr = ParseGrammar("tokens.ebnf", bytes.NewReader(tokensEBNF))
	})
	return defaultGrammar, defaultGrammarErr
}

// DefaultGrammarSource returns the text of the embedded token grammar.
func DefaultGrammarSource() []byte {
	return bytes.Clone(tokensEBNF)
}

func ParseGrammar(name string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	return ParseGrammar(filename, f)
}

// VerifyGrammar checks that grammar is complete and defines every token
// production the lexer tries.
func VerifyGrammar(grammar ebnf.Grammar) error {
	if err := ebnf.Verify(grammar, StartProduction); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	for _, p := range productions {
		if _, ok := grammar[p.name]; !ok {
			return fmt.Errorf("verify grammar: missing token production %s", p.name)
		}
	}
	return nil
}
