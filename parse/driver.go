package parse

import (
	"github.com/brennalabs/lr1gen/automaton"
	"github.com/brennalabs/lr1gen/cst"
	"github.com/brennalabs/lr1gen/grammar"
	"github.com/brennalabs/lr1gen/lrtable"
)

// exhausted is a sentinel terminal distinct from every real grammar
// symbol (including epsilon and "$"), consulted only if a token stream
// runs out before the driver reaches ACCEPT -- i.e. the caller failed to
// terminate its stream with "$" as the external-interfaces contract
// requires. It never matches a real ACTION entry, so it always yields a
// parse Error rather than the driver silently fabricating "$" itself.
var exhausted = grammar.Symbol{Name: "\x00<stream exhausted>", Kind: grammar.Terminal}

// Parse runs the shift/reduce loop against table, reading terminals from
// stream, and returns the resulting CST root. It never aborts on a
// missing ACTION entry -- it returns a *Error.
func Parse(table *lrtable.Table, stream TokenStream) (*cst.Node, error) {
	stateStack := []automaton.State{0}
	var nodeStack []*cst.Node

	current := nextOrExhausted(stream)

	for {
		s := stateStack[len(stateStack)-1]

		action, ok := table.Action(s, current)
		if !ok {
			return nil, NewError(s, current, table.ExpectedAt(s))
		}

		switch action.Kind {
		case lrtable.Shift:
			stateStack = append(stateStack, action.State)
			nodeStack = append(nodeStack, cst.Leaf(current.Name))
			notifyTrace("shift %s, goto state %d", current, action.State)

			current = nextOrExhausted(stream)

		case lrtable.Reduce:
			k := len(action.Rule.Body)
			if action.Rule.IsEpsilon() {
				k = 0
			}

			children := make([]*cst.Node, k)
			copy(children, nodeStack[len(nodeStack)-k:])
			nodeStack = nodeStack[:len(nodeStack)-k]
			stateStack = stateStack[:len(stateStack)-k]

			top := stateStack[len(stateStack)-1]
			target, ok := table.Goto(top, action.Rule.Head)
			if !ok {
				return nil, NewError(top, action.Rule.Head, nil)
			}
			stateStack = append(stateStack, target)
			nodeStack = append(nodeStack, cst.Interior(action.Rule.Head.Name, children...))
			notifyTrace("reduce by %s", action.Rule)

		case lrtable.Accept:
			// the augmentation reduction (S' -> S) is folded into
			// acceptance: the table writes ACCEPT where a plain reduce by
			// the start rule would go, so the wrapping node is built here
			k := len(action.Rule.Body)
			if action.Rule.IsEpsilon() {
				k = 0
			}
			children := make([]*cst.Node, k)
			copy(children, nodeStack[len(nodeStack)-k:])
			notifyTrace("accept")
			return cst.Interior(action.Rule.Head.Name, children...), nil
		}
	}
}

func nextOrExhausted(stream TokenStream) grammar.Symbol {
	sym, ok := stream.Next()
	if !ok {
		return exhausted
	}
	return sym
}
