package main

import "github.com/brennalabs/lr1gen/grammar"

// sym is the name-convention factory: upper-case initial means
// non-terminal, anything else is a terminal.
var sym = grammar.FromName

func canonicalGrammar() (*grammar.Grammar, error) {
	return grammar.New(sym("S'"),
		grammar.MustRule(sym("S'"), sym("S")),
		grammar.MustRule(sym("S"), sym("C"), sym("C")),
		grammar.MustRule(sym("C"), sym("c"), sym("C")),
		grammar.MustRule(sym("C"), sym("d")),
	)
}

func expressionGrammar() (*grammar.Grammar, error) {
	return grammar.New(sym("S'"),
		grammar.MustRule(sym("S'"), sym("E")),
		grammar.MustRule(sym("E"), sym("E"), sym("+"), sym("T")),
		grammar.MustRule(sym("E"), sym("T")),
		grammar.MustRule(sym("T"), sym("T"), sym("*"), sym("F")),
		grammar.MustRule(sym("T"), sym("F")),
		grammar.MustRule(sym("F"), sym("("), sym("E"), sym(")")),
		grammar.MustRule(sym("F"), sym("x")),
	)
}

func epsilonGrammar() (*grammar.Grammar, error) {
	return grammar.New(sym("S'"),
		grammar.MustRule(sym("S'"), sym("A")),
		grammar.MustRule(sym("A"), sym("a"), sym("A")),
		grammar.MustRule(sym("A"), grammar.Epsilon),
	)
}

var builtinGrammars = map[string]func() (*grammar.Grammar, error){
	"canonical":  canonicalGrammar,
	"expression": expressionGrammar,
	"epsilon":    epsilonGrammar,
}
