// Package lr1gen is a facade over the grammar, automaton, lrtable, parse,
// and cst packages: construct a grammar, build its canonical LR(1)
// collection, derive a parse table, and drive a token stream through it
// to a concrete syntax tree.
package lr1gen

import (
	"github.com/brennalabs/lr1gen/automaton"
	"github.com/brennalabs/lr1gen/cst"
	"github.com/brennalabs/lr1gen/grammar"
	"github.com/brennalabs/lr1gen/lrtable"
	"github.com/brennalabs/lr1gen/parse"
)

// NewGrammar constructs a grammar from a start symbol and rules.
func NewGrammar(start grammar.Symbol, rules ...grammar.Rule) (*grammar.Grammar, error) {
	return grammar.New(start, rules...)
}

// NewBuilder constructs the canonical LR(1) collection for g.
func NewBuilder(g *grammar.Grammar) *automaton.Builder {
	return automaton.NewBuilder(g)
}

// BuildTable builds the ACTION/GOTO table from b's canonical collection,
// using resolver to settle conflicting writes. A nil resolver defaults to
// lrtable.DefaultResolver.
func BuildTable(b *automaton.Builder, resolver lrtable.Resolver) (*lrtable.Table, error) {
	return lrtable.Build(b, resolver)
}

// Parse runs the shift/reduce driver over stream using table, producing a
// concrete syntax tree or a structured parse error.
func Parse(table *lrtable.Table, stream parse.TokenStream) (*cst.Node, error) {
	return parse.Parse(table, stream)
}
