package lrtable

import (
	"fmt"

	"github.com/brennalabs/lr1gen/automaton"
	"github.com/brennalabs/lr1gen/grammar"
)

// Table is the ACTION/GOTO parse table derived from a builder's canonical
// collection. It is immutable once built and owns its state count.
type Table struct {
	Grammar *grammar.Grammar

	states      int
	terminals   []grammar.Symbol
	actions     map[string]Action
	gotoTargets map[string]automaton.State
}

// Build scans every (state, item) pair in b's canonical collection and
// writes the resulting ACTION/GOTO entries: a complete start item writes
// ACCEPT, any other complete item writes REDUCE, an item with a terminal
// at the dot writes SHIFT, and an item with a non-terminal at the dot
// writes a GOTO entry. Conflicting writes to the same ACTION cell are
// resolved by resolver; resolver may be nil, in which case
// DefaultResolver is used.
func Build(b *automaton.Builder, resolver Resolver) (*Table, error) {
	if resolver == nil {
		resolver = DefaultResolver
	}

	t := &Table{
		Grammar:     b.Grammar,
		states:      b.StateCount(),
		terminals:   b.Grammar.Terminals(),
		actions:     make(map[string]Action),
		gotoTargets: make(map[string]automaton.State),
	}

	startRule := b.Grammar.StartRule()

	for s := 0; s < b.StateCount(); s++ {
		state := automaton.State(s)
		set := b.ItemSet(state)

		for _, it := range set.Items() {
			if it.IsComplete() {
				if it.Rule.Equal(startRule) && it.Lookahead == grammar.EndOfInput {
					if err := t.write(state, grammar.EndOfInput, AcceptAction(startRule), resolver); err != nil {
						return nil, err
					}
					continue
				}
				if err := t.write(state, it.Lookahead, ReduceAction(it.Rule), resolver); err != nil {
					return nil, err
				}
				continue
			}

			cur := it.Current()
			target, ok := b.Transition(state, cur)
			if !ok {
				continue
			}
			if cur.IsTerminal() {
				if err := t.write(state, cur, ShiftAction(target), resolver); err != nil {
					return nil, err
				}
			} else {
				t.gotoTargets[cellKey(state, cur)] = target
			}
		}
	}

	notifyTrace("built table: %d states, %d action cells, %d goto cells", t.states, len(t.actions), len(t.gotoTargets))
	return t, nil
}

func (t *Table) write(s automaton.State, sym grammar.Symbol, incoming Action, resolver Resolver) error {
	key := cellKey(s, sym)
	existing, ok := t.actions[key]
	if !ok {
		t.actions[key] = incoming
		return nil
	}
	resolved, err := resolver(existing, incoming, sym)
	if err != nil {
		return err
	}
	notifyTrace("resolved %s/%s on %s in state %d to %s", existing.Kind, incoming.Kind, sym, s, resolved)
	t.actions[key] = resolved
	return nil
}

// Action returns the ACTION entry for (state, terminal), if one exists.
func (t *Table) Action(s automaton.State, terminal grammar.Symbol) (Action, bool) {
	a, ok := t.actions[cellKey(s, terminal)]
	return a, ok
}

// Goto returns the GOTO entry for (state, nonTerminal), if one exists.
func (t *Table) Goto(s automaton.State, nonTerminal grammar.Symbol) (automaton.State, bool) {
	target, ok := t.gotoTargets[cellKey(s, nonTerminal)]
	return target, ok
}

// StateCount returns the number of states the table was built over.
func (t *Table) StateCount() int {
	return t.states
}

// Terminals returns the terminal set the table's ACTION columns are
// indexed by, in the same deterministic order used when printing.
func (t *Table) Terminals() []grammar.Symbol {
	return t.terminals
}

// ExpectedAt returns the terminals that have a defined ACTION entry in
// the given state, in the table's terminal order. Used by the driver to
// produce a descriptive parse error.
func (t *Table) ExpectedAt(s automaton.State) []grammar.Symbol {
	var expected []grammar.Symbol
	for _, term := range t.terminals {
		if _, ok := t.Action(s, term); ok {
			expected = append(expected, term)
		}
	}
	return expected
}

func cellKey(s automaton.State, sym grammar.Symbol) string {
	return fmt.Sprintf("%d|%d:%s", s, sym.Kind, sym.Name)
}
