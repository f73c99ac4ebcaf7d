package parse

import (
	"fmt"

	"github.com/brennalabs/lr1gen/automaton"
	"github.com/brennalabs/lr1gen/grammar"
	"github.com/brennalabs/lr1gen/internal/textutil"
)

// Error reports that the driver found no ACTION entry for (State,
// Lookahead). Unlike the item/table construction errors, this is always
// recoverable -- the driver returns it rather than aborting.
type Error struct {
	State     automaton.State
	Lookahead grammar.Symbol
	Expected  []grammar.Symbol
}

// NewError constructs a parse Error at the given state and lookahead,
// with the list of terminals that would have been accepted there.
func NewError(state automaton.State, lookahead grammar.Symbol, expected []grammar.Symbol) *Error {
	return &Error{State: state, Lookahead: lookahead, Expected: expected}
}

func (e *Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("parse error: unexpected %s in state %d", e.Lookahead, e.State)
	}
	names := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		names[i] = s.String()
	}
	return fmt.Sprintf("parse error: unexpected %s in state %d; expected one of %s",
		e.Lookahead, e.State, textutil.MakeTextList(names))
}
