package lrtable

import (
	"strconv"

	"github.com/dekarrin/rosed"

	"github.com/brennalabs/lr1gen/automaton"
)

// String renders the ACTION table as a text grid laid out by rosed: row 0
// is a header holding "state" followed by each terminal's name; rows 1..N
// list the state index followed by each terminal's ACTION cell, empty
// when no action is defined. Columns are padded with spaces to a common
// width, not separated by tabs, and GOTO entries are not printed.
func (t *Table) String() string {
	header := make([]string, 0, len(t.terminals)+1)
	header = append(header, "state")
	for _, term := range t.terminals {
		header = append(header, term.String())
	}

	rows := make([][]string, 0, t.states+1)
	rows = append(rows, header)

	for s := 0; s < t.states; s++ {
		row := make([]string, 0, len(t.terminals)+1)
		row = append(row, strconv.Itoa(s))
		for _, term := range t.terminals {
			a, ok := t.Action(automaton.State(s), term)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, actionCell(a))
		}
		rows = append(rows, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, rows, 10, rosed.Options{
			TableHeaders:             false,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func actionCell(a Action) string {
	if a.Kind == Accept {
		return "a"
	}
	return a.String()
}
