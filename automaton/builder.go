package automaton

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/brennalabs/lr1gen/grammar"
)

// State is a dense 0..N integer handle identifying an item set within a
// builder's canonical collection. State 0 is always the start state.
type State int

// Builder constructs and owns the canonical collection of LR(1) item sets
// for a grammar, along with the GOTO transition map between them. It
// borrows the grammar for its lifetime and must not outlive it.
type Builder struct {
	Grammar *grammar.Grammar

	states      []*ItemSet
	indexByKey  map[string]State
	transitions map[string]State
}

// NewBuilder constructs the canonical collection for g, starting from the
// closure of the seeded start item [S' -> .S, $].
func NewBuilder(g *grammar.Grammar) *Builder {
	b := &Builder{
		Grammar:     g,
		indexByKey:  make(map[string]State),
		transitions: make(map[string]State),
	}
	b.build()
	return b
}

// StartState returns state 0.
func (b *Builder) StartState() State {
	return 0
}

// StateCount returns the number of states in the canonical collection.
func (b *Builder) StateCount() int {
	return len(b.states)
}

// ItemSet returns the item set for the given state.
func (b *Builder) ItemSet(s State) *ItemSet {
	return b.states[s]
}

// Transition returns the GOTO target for (state, symbol), if one was
// recorded during construction.
func (b *Builder) Transition(s State, x grammar.Symbol) (State, bool) {
	t, ok := b.transitions[transitionKey(s, x)]
	return t, ok
}

// Closure computes the closure of an item set under epsilon-moves over
// non-terminals at the dot: repeatedly expand every item
// [A -> alpha.B beta, a] by adding [B -> .gamma, b] for each production
// B -> gamma and each b in FIRST(beta, a), until no change.
func (b *Builder) Closure(set *ItemSet) *ItemSet {
	result := NewItemSet(set.Items()...)
	changed := true
	for changed {
		changed = false
		for _, it := range result.Items() {
			cur := it.Current()
			if !cur.IsNonTerminal() {
				continue
			}
			rest := it.Rest()
			for _, rule := range b.Grammar.RulesFor(cur) {
				for _, lookahead := range b.Grammar.FirstSeqLookahead(rest, it.Lookahead) {
					next := NewItem(rule, lookahead)
					if !result.Has(next) {
						result.Add(next)
						changed = true
					}
				}
			}
		}
	}
	return result
}

// Goto computes GOTO(I, X): the items of I advanced over X, then closed.
// Returns an empty set if no item in I has X at the dot.
func (b *Builder) Goto(set *ItemSet, x grammar.Symbol) *ItemSet {
	advanced := NewItemSet()
	for _, it := range set.Items() {
		if it.Current() != x {
			continue
		}
		next, err := it.Advance()
		if err != nil {
			// it.Current() == x, and x is not epsilon (Current never
			// returns epsilon for an incomplete item), so the item
			// cannot be complete here.
			panic(err)
		}
		advanced.Add(next)
	}
	if advanced.Len() == 0 {
		return advanced
	}
	return b.Closure(advanced)
}

// build runs a worklist BFS: starting from state 0, for each popped
// state and each symbol in the grammar's symbol set, compute the GOTO
// target and assign it a dense handle the first time it is seen.
func (b *Builder) build() {
	startItem := NewItem(b.Grammar.StartRule(), grammar.EndOfInput)
	start := b.Closure(NewItemSet(startItem))

	b.states = append(b.states, start)
	b.indexByKey[start.Key()] = 0

	worklist := arraylist.New()
	worklist.Add(State(0))

	for !worklist.Empty() {
		v, _ := worklist.Get(0)
		worklist.Remove(0)
		s := v.(State)
		set := b.states[s]

		for _, x := range b.Grammar.Symbols() {
			j := b.Goto(set, x)
			if j.Len() == 0 {
				continue
			}

			key := j.Key()
			target, known := b.indexByKey[key]
			if !known {
				target = State(len(b.states))
				b.states = append(b.states, j)
				b.indexByKey[key] = target
				worklist.Add(target)
				notifyTrace("discovered state %d via %s from state %d", target, x, s)
			}
			b.transitions[transitionKey(s, x)] = target
		}
	}
}

func transitionKey(s State, x grammar.Symbol) string {
	return fmt.Sprintf("%d|%d:%s", s, x.Kind, x.Name)
}
