// Package parse implements the shift/reduce driver: given a built
// lrtable.Table and a token stream, it produces a concrete syntax tree
// or a structured parse error.
package parse

import "github.com/brennalabs/lr1gen/grammar"

// TokenStream is a finite, forward, single-pass sequence of terminal
// symbols. The caller is responsible for terminating it with the
// reserved end-of-input symbol; lexing is out of this module's scope.
type TokenStream interface {
	// Next returns the next terminal and true, or the zero Symbol and
	// false once the stream is exhausted.
	Next() (grammar.Symbol, bool)
}

// SliceStream is a TokenStream over an in-memory slice of terminals.
type SliceStream struct {
	symbols []grammar.Symbol
	pos     int
}

// NewSliceStream constructs a SliceStream over symbols.
func NewSliceStream(symbols []grammar.Symbol) *SliceStream {
	return &SliceStream{symbols: symbols}
}

// Next implements TokenStream.
func (s *SliceStream) Next() (grammar.Symbol, bool) {
	if s.pos >= len(s.symbols) {
		return grammar.Symbol{}, false
	}
	sym := s.symbols[s.pos]
	s.pos++
	return sym, true
}
