// Package lrtable builds the ACTION/GOTO parse table from an automaton's
// canonical collection, resolving conflicts with a caller-supplied
// strategy, and renders or persists the result.
package lrtable

import (
	"fmt"
	"strings"

	"github.com/brennalabs/lr1gen/automaton"
	"github.com/brennalabs/lr1gen/grammar"
)

// ActionKind discriminates the three shapes an Action can take.
type ActionKind int

const (
	// Shift consumes the next input terminal and pushes State.
	Shift ActionKind = iota
	// Reduce applies Rule in reverse on the parse stacks.
	Reduce
	// Accept ends a successful parse.
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "SHIFT"
	case Reduce:
		return "REDUCE"
	case Accept:
		return "ACCEPT"
	}
	return "UNKNOWN"
}

// Action is a tagged union over {SHIFT(state), REDUCE(rule), ACCEPT} --
// not three parallel nullable fields. Shift uses only State; Reduce uses
// only Rule; Accept uses only Rule, which holds the completed start rule.
type Action struct {
	Kind  ActionKind
	State automaton.State
	Rule  grammar.Rule
}

// ShiftAction constructs a SHIFT action targeting s.
func ShiftAction(s automaton.State) Action {
	return Action{Kind: Shift, State: s}
}

// ReduceAction constructs a REDUCE action applying r.
func ReduceAction(r grammar.Rule) Action {
	return Action{Kind: Reduce, Rule: r}
}

// AcceptAction constructs the ACCEPT action. It carries the completed
// start rule so the driver can fold the final augmentation reduction
// (S' -> S) into acceptance without needing the grammar at parse time --
// a table restored from its binary form has no grammar reference.
func AcceptAction(startRule grammar.Rule) Action {
	return Action{Kind: Accept, Rule: startRule}
}

// Equal reports whether a and o represent the same action.
func (a Action) Equal(o Action) bool {
	if a.Kind != o.Kind {
		return false
	}
	switch a.Kind {
	case Shift:
		return a.State == o.State
	case Reduce:
		return a.Rule.Equal(o.Rule)
	default:
		return true
	}
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("s%d", a.State)
	case Reduce:
		return fmt.Sprintf("%s->%s", a.Rule.Head, bodyString(a.Rule))
	case Accept:
		return "acc"
	}
	return "?"
}

func bodyString(r grammar.Rule) string {
	if r.IsEpsilon() {
		return "ε"
	}
	var sb strings.Builder
	for _, s := range r.Body {
		sb.WriteString(s.String())
	}
	return sb.String()
}
