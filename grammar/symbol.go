package grammar

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// SymbolKind discriminates a Symbol's role in a grammar.
type SymbolKind int

const (
	// Terminal symbols are consumed from the input stream.
	Terminal SymbolKind = iota
	// NonTerminal symbols are defined by one or more productions.
	NonTerminal
)

func (k SymbolKind) String() string {
	if k == NonTerminal {
		return "NON_TERMINAL"
	}
	return "TERMINAL"
}

// Symbol is an immutable (name, kind) pair. Equality is structural over
// both fields.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// NewTerminal constructs a terminal symbol with the given name.
func NewTerminal(name string) Symbol {
	return Symbol{Name: name, Kind: Terminal}
}

// NewNonTerminal constructs a non-terminal symbol with the given name.
func NewNonTerminal(name string) Symbol {
	return Symbol{Name: name, Kind: NonTerminal}
}

// FromName constructs a symbol whose kind is inferred from its name:
// names beginning with an upper-case letter become non-terminals, names
// beginning lower-case or with punctuation become terminals, and the
// empty name is epsilon. This is a construction shorthand only -- the
// Kind flag on the returned symbol is what the rest of the module goes
// by.
func FromName(name string) Symbol {
	if name != "" {
		r, _ := utf8.DecodeRuneInString(name)
		if unicode.IsUpper(r) {
			return NewNonTerminal(name)
		}
	}
	return Symbol{Name: name, Kind: Terminal}
}

// Epsilon is the terminal with an empty name, denoting the empty string.
var Epsilon = Symbol{Name: "", Kind: Terminal}

// EndOfInput is the reserved end-of-input terminal, conventionally
// written "$".
var EndOfInput = Symbol{Name: "$", Kind: Terminal}

// IsTerminal returns whether s is a terminal symbol.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// IsNonTerminal returns whether s is a non-terminal symbol.
func (s Symbol) IsNonTerminal() bool {
	return s.Kind == NonTerminal
}

// IsEpsilon returns whether s is the epsilon terminal.
func (s Symbol) IsEpsilon() bool {
	return s.Kind == Terminal && s.Name == ""
}

// IsEndOfInput returns whether s is the reserved "$" terminal.
func (s Symbol) IsEndOfInput() bool {
	return s == EndOfInput
}

func (s Symbol) String() string {
	if s.IsEpsilon() {
		return "ε"
	}
	return s.Name
}

// compareSymbols orders symbols first by kind (terminals before
// non-terminals) and then by name, so terminal and non-terminal sets can
// be kept in a deterministic gods treeset.
func compareSymbols(a, b interface{}) int {
	sa, sb := a.(Symbol), b.(Symbol)
	if sa.Kind != sb.Kind {
		return int(sa.Kind) - int(sb.Kind)
	}
	if sa.Name < sb.Name {
		return -1
	}
	if sa.Name > sb.Name {
		return 1
	}
	return 0
}

// key returns a string uniquely identifying the symbol, suitable for use
// as a map key.
func (s Symbol) key() string {
	return fmt.Sprintf("%d:%s", s.Kind, s.Name)
}
