package lrtable_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brennalabs/lr1gen/automaton"
	"github.com/brennalabs/lr1gen/grammar"
	"github.com/brennalabs/lr1gen/lrtable"
	"github.com/brennalabs/lr1gen/parse"
)

func Test_Table_SaveLoad(t *testing.T) {
	// setup
	assert := assert.New(t)
	g := expressionGrammar(t)
	b := automaton.NewBuilder(g)
	built, err := lrtable.Build(b, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "expr.lrt")

	// execute
	require.NoError(t, built.Save(path))
	loaded, err := lrtable.Load(path)
	require.NoError(t, err)

	// assert: the loaded table answers Action/Goto identically to the
	// original for every cell
	assert.Equal(built.StateCount(), loaded.StateCount())
	assert.Equal(built.Terminals(), loaded.Terminals())

	for s := 0; s < built.StateCount(); s++ {
		state := automaton.State(s)
		for _, term := range built.Terminals() {
			orig, ok1 := built.Action(state, term)
			got, ok2 := loaded.Action(state, term)
			assert.Equal(ok1, ok2, "action presence at (%d, %s)", s, term)
			if ok1 {
				assert.True(orig.Equal(got), "action at (%d, %s)", s, term)
			}
		}
		for _, nt := range g.NonTerminals() {
			orig, ok1 := built.Goto(state, nt)
			got, ok2 := loaded.Goto(state, nt)
			assert.Equal(ok1, ok2, "goto presence at (%d, %s)", s, nt)
			assert.Equal(orig, got, "goto at (%d, %s)", s, nt)
		}
	}

	// the loaded table drives a full parse identically, including the
	// accept step, even though it carries no grammar reference
	tokens := func() *parse.SliceStream {
		return parse.NewSliceStream([]grammar.Symbol{
			grammar.NewTerminal("x"),
			grammar.NewTerminal("*"),
			grammar.NewTerminal("x"),
			grammar.EndOfInput,
		})
	}
	want, err := parse.Parse(built, tokens())
	require.NoError(t, err)
	got, err := parse.Parse(loaded, tokens())
	require.NoError(t, err)
	assert.True(want.Equal(got))
}

func Test_Table_UnmarshalTruncatedData(t *testing.T) {
	assert := assert.New(t)
	g := expressionGrammar(t)
	built, err := lrtable.Build(automaton.NewBuilder(g), nil)
	require.NoError(t, err)

	data, err := built.MarshalBinary()
	require.NoError(t, err)

	var restored lrtable.Table
	assert.Error(restored.UnmarshalBinary(data[:len(data)/2]))
}
