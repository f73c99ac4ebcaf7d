// Package automaton constructs the canonical collection of LR(1) item
// sets for a grammar: item closure, GOTO, and the worklist-driven
// discovery of every reachable state.
package automaton

import (
	"fmt"

	"github.com/brennalabs/lr1gen/grammar"
	"github.com/brennalabs/lr1gen/lrerr"
)

// Item is an LR(1) item [rule -> alpha . beta, lookahead]. Equality and
// hashing are structural over all three fields.
type Item struct {
	Rule      grammar.Rule
	Dot       int
	Lookahead grammar.Symbol
}

// NewItem constructs an item with the dot at the start of rule's body. An
// epsilon production has no symbol to place the dot before, so its item
// is born already complete at Dot == 1: closure does not expand it
// further, and the table builder treats it as immediately reducible.
func NewItem(rule grammar.Rule, lookahead grammar.Symbol) Item {
	dot := 0
	if rule.IsEpsilon() {
		dot = 1
	}
	return Item{Rule: rule, Dot: dot, Lookahead: lookahead}
}

// IsComplete reports whether the dot has passed the end of the body. An
// epsilon-production's single item is complete at Dot == 1: epsilon is
// never "current".
func (it Item) IsComplete() bool {
	if it.Rule.IsEpsilon() {
		return it.Dot >= 1
	}
	return it.Dot >= len(it.Rule.Body)
}

// Current returns the symbol immediately after the dot, or the epsilon
// symbol if the item is complete.
func (it Item) Current() grammar.Symbol {
	if it.IsComplete() {
		return grammar.Epsilon
	}
	return it.Rule.Body[it.Dot]
}

// Rest returns the sub-sequence of the body strictly after the dot
// position (excluding the symbol at the dot itself), used by closure to
// compute the lookahead set for newly-added items.
func (it Item) Rest() []grammar.Symbol {
	if it.IsComplete() || it.Dot+1 > len(it.Rule.Body) {
		return nil
	}
	return it.Rule.Body[it.Dot+1:]
}

// Advance returns a new item with the dot moved one symbol to the right.
// Advancing a complete item is a programmer error; callers are expected
// to check IsComplete first.
func (it Item) Advance() (Item, error) {
	if it.IsComplete() {
		return Item{}, lrerr.AdvanceComplete(fmt.Sprintf("cannot advance complete item %s", it))
	}
	return Item{Rule: it.Rule, Dot: it.Dot + 1, Lookahead: it.Lookahead}, nil
}

func (it Item) key() string {
	return fmt.Sprintf("%s|%d|%s", it.Rule.Key(), it.Dot, it.Lookahead.String())
}

func (it Item) String() string {
	var dotted string
	if it.Rule.IsEpsilon() {
		if it.Dot == 0 {
			dotted = "·ε"
		} else {
			dotted = "ε·"
		}
	} else {
		parts := make([]string, 0, len(it.Rule.Body)+1)
		for i, s := range it.Rule.Body {
			if i == it.Dot {
				parts = append(parts, "·")
			}
			parts = append(parts, s.String())
		}
		if it.Dot == len(it.Rule.Body) {
			parts = append(parts, "·")
		}
		for i, p := range parts {
			if i > 0 {
				dotted += " "
			}
			dotted += p
		}
	}
	return fmt.Sprintf("[%s -> %s, %s]", it.Rule.Head, dotted, it.Lookahead)
}
