// Package grammar defines the context-free grammar model (symbols, rules,
// grammars) together with the nullable/FIRST/FOLLOW fixed-point solvers
// that the automaton and lrtable packages build on.
package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Grammar is an immutable (start symbol, ordered rule list) pair. It is
// built once and borrowed read-only by every solver and by the automaton
// builder; none of them outlive the grammar they reference.
type Grammar struct {
	Start Symbol
	Rules []Rule

	terminals    *treeset.Set
	nonTerminals *treeset.Set
	byHead       map[string][]Rule

	nullableCache map[string]bool
	firstCache    map[string]*treeset.Set
	followCache   map[string]*treeset.Set
}

// New constructs a Grammar from a start symbol and an ordered list of
// rules, validating the invariants in the data model: start must be a
// non-terminal and the head of at least one rule; the first rule whose
// head is start is the start rule and must have a single-symbol body; the
// reserved end-of-input symbol never appears in any rule body.
func New(start Symbol, rules ...Rule) (*Grammar, error) {
	if !start.IsNonTerminal() {
		return nil, malformedStartNotNonTerminal(start)
	}

	g := &Grammar{
		Start:  start,
		Rules:  append([]Rule(nil), rules...),
		byHead: make(map[string][]Rule),
	}

	g.terminals = treeset.NewWith(compareSymbols)
	g.nonTerminals = treeset.NewWith(compareSymbols)

	var startRule *Rule
	for i := range g.Rules {
		r := g.Rules[i]
		for _, s := range r.Body {
			if s.IsEndOfInput() {
				return nil, malformedEndOfInputInBody(r)
			}
			if s.IsTerminal() && !s.IsEpsilon() {
				g.terminals.Add(s)
			} else if s.IsNonTerminal() {
				g.nonTerminals.Add(s)
			}
		}
		g.nonTerminals.Add(r.Head)
		g.byHead[r.Head.key()] = append(g.byHead[r.Head.key()], r)

		if startRule == nil && r.Head == start {
			startRule = &r
		}
	}

	if startRule == nil {
		return nil, malformedNoStartRule(start)
	}
	if len(startRule.Body) != 1 {
		return nil, malformedStartBody(*startRule)
	}

	g.terminals.Add(EndOfInput)

	return g, nil
}

// StartRule returns the first rule whose head is the grammar's start
// symbol.
func (g *Grammar) StartRule() Rule {
	for _, r := range g.Rules {
		if r.Head == g.Start {
			return r
		}
	}
	panic("grammar: no start rule; should have been rejected by New")
}

// RulesFor returns, in declaration order, every rule headed by head.
func (g *Grammar) RulesFor(head Symbol) []Rule {
	return g.byHead[head.key()]
}

// Terminals returns the grammar's terminal symbols (including the
// reserved "$"), in a deterministic order.
func (g *Grammar) Terminals() []Symbol {
	return symbolValues(g.terminals)
}

// NonTerminals returns the grammar's non-terminal symbols, in a
// deterministic order.
func (g *Grammar) NonTerminals() []Symbol {
	return symbolValues(g.nonTerminals)
}

// Symbols returns every terminal and non-terminal in the grammar (not
// including epsilon), in a deterministic order: non-terminals first, then
// terminals, each alphabetized. The LR(1) builder iterates this set
// exactly once per state when discovering transitions.
func (g *Grammar) Symbols() []Symbol {
	syms := make([]Symbol, 0, g.terminals.Size()+g.nonTerminals.Size())
	syms = append(syms, g.NonTerminals()...)
	syms = append(syms, g.Terminals()...)
	return syms
}

func symbolValues(set *treeset.Set) []Symbol {
	vals := set.Values()
	out := make([]Symbol, len(vals))
	for i, v := range vals {
		out[i] = v.(Symbol)
	}
	return out
}
