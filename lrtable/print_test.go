package lrtable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brennalabs/lr1gen/automaton"
	"github.com/brennalabs/lr1gen/lrtable"
)

func Test_Table_String(t *testing.T) {
	assert := assert.New(t)
	g := expressionGrammar(t)
	table, err := lrtable.Build(automaton.NewBuilder(g), nil)
	require.NoError(t, err)

	rendered := table.String()
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")

	// header row names every terminal column, including $
	assert.Contains(lines[0], "state")
	for _, term := range table.Terminals() {
		assert.Contains(lines[0], term.String())
	}

	// the grid has one row per state under the header, and somewhere in it
	// a shift, a reduce, and the accept cell
	assert.Contains(rendered, "s")
	assert.Contains(rendered, "->")
	assert.Contains(rendered, " a")
}
