package lexer

import (
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

const noMatch = -1

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// matcher measures how much of input a grammar production accepts at a
// given offset.
type matcher struct {
	grammar  ebnf.Grammar
	input    []byte
	memo     map[memoKey]int  // match length or noMatch
	visiting map[memoKey]bool // left-recursion guard
}

func newMatcher(grammar ebnf.Grammar, input []byte) *matcher {
	return &matcher{
		grammar:  grammar,
		input:    input,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// longest returns the index into names of the production with the longest
// non-empty match at offset, and that length. Ties go to the earlier name.
func (m *matcher) longest(names []string, offset int) (int, int) {
	best, bestLen := -1, 0
	for i, name := range names {
		n := m.matchName(name, offset)
		if n > bestLen {
			best, bestLen = i, n
		}
	}
	return best, bestLen
}

// match returns the length of the longest prefix at offset that expr
// accepts, or noMatch. Zero is a successful empty match.
func (m *matcher) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return m.matchToken(e.String, offset)

	case *ebnf.Range:
		return m.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := m.match(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := m.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := m.match(e.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		return max(m.match(e.Body, offset), 0)

	case *ebnf.Group:
		return m.match(e.Body, offset)

	case *ebnf.Name:
		return m.matchName(e.String, offset)
	}
	return noMatch
}

func (m *matcher) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if result, ok := m.memo[key]; ok {
		return result
	}
	if m.visiting[key] {
		return noMatch
	}

	prod, ok := m.grammar[name]
	if !ok || prod.Expr == nil {
		m.memo[key] = noMatch
		return noMatch
	}

	m.visiting[key] = true
	result := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	m.memo[key] = result
	return result
}

func (m *matcher) matchToken(s string, offset int) int {
	if s == "" {
		return 0
	}
	if offset+len(s) > len(m.input) {
		return noMatch
	}
	if string(m.input[offset:offset+len(s)]) == s {
		return len(s)
	}
	return noMatch
}

func (m *matcher) matchRange(begin, end string, offset int) int {
	if offset >= len(m.input) {
		return noMatch
	}
	lo, _ := utf8.DecodeRuneInString(begin)
	hi, _ := utf8.DecodeRuneInString(end)
	r, size := utf8.DecodeRune(m.input[offset:])
	if r >= lo && r <= hi {
		return size
	}
	return noMatch
}
