package lrtable

import (
	"github.com/brennalabs/lr1gen/grammar"
	"github.com/brennalabs/lr1gen/lrerr"
)

// Resolver decides the entry written to ACTION[state, symbol] when two
// distinct writes target the same cell. The table accepts this as a
// strategy parameter rather than hard-coding precedence; callers that
// want shift/reduce precedence or associativity supply their own.
type Resolver func(existing, incoming Action, symbol grammar.Symbol) (Action, error)

// DefaultResolver accepts the incoming action only if it is identical to
// the existing one, and otherwise fails with a TableConflict error.
// Shift/reduce and reduce/reduce conflicts are never silently papered
// over.
func DefaultResolver(existing, incoming Action, symbol grammar.Symbol) (Action, error) {
	if existing.Equal(incoming) {
		return existing, nil
	}
	return Action{}, lrerr.Conflictf(
		"%s/%s conflict on symbol %s: %s vs %s",
		existing.Kind, incoming.Kind, symbol, existing, incoming,
	)
}
