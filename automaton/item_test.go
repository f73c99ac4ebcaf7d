package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brennalabs/lr1gen/automaton"
	"github.com/brennalabs/lr1gen/grammar"
	"github.com/brennalabs/lr1gen/lrerr"
)

func TestItem_AdvanceAndComplete(t *testing.T) {
	assert := assert.New(t)

	c := grammar.NewNonTerminal("C")
	tc := grammar.NewTerminal("c")
	rule := grammar.MustRule(c, tc, c)

	it := automaton.NewItem(rule, grammar.EndOfInput)
	assert.False(it.IsComplete())
	assert.Equal(tc, it.Current())
	assert.Equal([]grammar.Symbol{c}, it.Rest())

	it, err := it.Advance()
	assert.NoError(err)
	assert.False(it.IsComplete())
	assert.Equal(c, it.Current())
	assert.Empty(it.Rest())

	it, err = it.Advance()
	assert.NoError(err)
	assert.True(it.IsComplete())

	_, err = it.Advance()
	assert.Error(err)
	assert.True(lrerr.IsAdvanceComplete(err))
}

func TestItem_EpsilonProductionBornComplete(t *testing.T) {
	assert := assert.New(t)

	a := grammar.NewNonTerminal("A")
	rule := grammar.MustRule(a, grammar.Epsilon)

	// an epsilon production has no symbol to place the dot before, so its
	// item starts out complete and epsilon is never "current"
	it := automaton.NewItem(rule, grammar.EndOfInput)
	assert.True(it.IsComplete())
	assert.True(it.Current().IsEpsilon())
	assert.Empty(it.Rest())

	_, err := it.Advance()
	assert.Error(err)
	assert.True(lrerr.IsAdvanceComplete(err))
}
