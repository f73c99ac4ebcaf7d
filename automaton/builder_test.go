package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brennalabs/lr1gen/automaton"
	"github.com/brennalabs/lr1gen/grammar"
)

// purple dragon book example 4.45: {S'->S, S->CC, C->cC, C->d}
func canonicalGrammar(t *testing.T) *grammar.Grammar {
	sp := grammar.NewNonTerminal("S'")
	s := grammar.NewNonTerminal("S")
	c := grammar.NewNonTerminal("C")
	tc := grammar.NewTerminal("c")
	td := grammar.NewTerminal("d")

	g, err := grammar.New(sp,
		grammar.MustRule(sp, s),
		grammar.MustRule(s, c, c),
		grammar.MustRule(c, tc, c),
		grammar.MustRule(c, td),
	)
	if err != nil {
		t.Fatalf("grammar.New: %v", err)
	}
	return g
}

func Test_Builder_CanonicalCollection(t *testing.T) {
	// setup
	assert := assert.New(t)
	g := canonicalGrammar(t)

	// execute
	b := automaton.NewBuilder(g)

	// assert
	assert.Equal(10, b.StateCount())
	assert.Equal(automaton.State(0), b.StartState())

	// state 0 holds the seeded start item and its closure
	startItem := automaton.NewItem(g.StartRule(), grammar.EndOfInput)
	state0 := b.ItemSet(0)
	assert.True(state0.Has(startItem))

	// closure of the start item adds an item per C production per
	// derivable lookahead; dragon book I0 has 6 items
	assert.Equal(6, state0.Len())

	// both c and d are shiftable out of state 0
	_, ok := b.Transition(0, grammar.NewTerminal("c"))
	assert.True(ok)
	_, ok = b.Transition(0, grammar.NewTerminal("d"))
	assert.True(ok)
}

func Test_Builder_GotoMatchesAdvanceThenClosure(t *testing.T) {
	// invariant: for every canonical state I and symbol X with a recorded
	// transition, the target's item set equals
	// closure({item.advance() : item in I, item.current() == X})
	assert := assert.New(t)
	g := canonicalGrammar(t)
	b := automaton.NewBuilder(g)

	for s := 0; s < b.StateCount(); s++ {
		state := automaton.State(s)
		set := b.ItemSet(state)
		for _, x := range g.Symbols() {
			target, ok := b.Transition(state, x)
			if !ok {
				continue
			}

			advanced := automaton.NewItemSet()
			for _, it := range set.Items() {
				if it.Current() != x {
					continue
				}
				next, err := it.Advance()
				assert.NoError(err)
				advanced.Add(next)
			}
			expect := b.Closure(advanced)

			assert.True(expect.Equal(b.ItemSet(target)),
				"GOTO(%d, %s) -> %d does not match advance-then-closure", s, x, target)
		}
	}
}

func Test_Builder_StateHandlesAreDense(t *testing.T) {
	assert := assert.New(t)
	g := canonicalGrammar(t)
	b := automaton.NewBuilder(g)

	// every handle in 0..StateCount-1 resolves to a non-empty item set,
	// and every recorded transition targets a handle in that range
	for s := 0; s < b.StateCount(); s++ {
		set := b.ItemSet(automaton.State(s))
		assert.NotNil(set)
		assert.Greater(set.Len(), 0)
	}
	for s := 0; s < b.StateCount(); s++ {
		for _, x := range g.Symbols() {
			target, ok := b.Transition(automaton.State(s), x)
			if !ok {
				continue
			}
			assert.GreaterOrEqual(int(target), 0)
			assert.Less(int(target), b.StateCount())
		}
	}
}

func Test_Builder_ConstructionIsDeterministic(t *testing.T) {
	// states are discovered in BFS order over a deterministic symbol
	// iteration order, so two builds of the same grammar number their
	// states identically
	assert := assert.New(t)
	g := canonicalGrammar(t)

	b1 := automaton.NewBuilder(g)
	b2 := automaton.NewBuilder(g)

	assert.Equal(b1.StateCount(), b2.StateCount())
	for s := 0; s < b1.StateCount(); s++ {
		state := automaton.State(s)
		assert.True(b1.ItemSet(state).Equal(b2.ItemSet(state)), "state %d differs between builds", s)
		for _, x := range g.Symbols() {
			t1, ok1 := b1.Transition(state, x)
			t2, ok2 := b2.Transition(state, x)
			assert.Equal(ok1, ok2)
			assert.Equal(t1, t2)
		}
	}
}

func Test_Builder_TraceListener(t *testing.T) {
	assert := assert.New(t)
	g := canonicalGrammar(t)

	var lines []string
	unregister := automaton.RegisterTraceListener(func(msg string) {
		lines = append(lines, msg)
	})
	defer unregister()

	b := automaton.NewBuilder(g)

	// one discovery line per state beyond the seeded start state
	assert.Len(lines, b.StateCount()-1)

	// unregistering stops further callbacks
	unregister()
	before := len(lines)
	automaton.NewBuilder(g)
	assert.Len(lines, before)
}

func Test_ItemSet_KeyIsInsertionOrderIndependent(t *testing.T) {
	assert := assert.New(t)

	c := grammar.NewNonTerminal("C")
	tc := grammar.NewTerminal("c")
	td := grammar.NewTerminal("d")
	r1 := grammar.MustRule(c, tc, c)
	r2 := grammar.MustRule(c, td)

	i1 := automaton.NewItem(r1, grammar.EndOfInput)
	i2 := automaton.NewItem(r2, tc)

	a := automaton.NewItemSet(i1, i2)
	b := automaton.NewItemSet(i2, i1)

	assert.True(a.Equal(b))
	assert.Equal(a.Key(), b.Key())
}
