package lrtable

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/dekarrin/rezi"

	"github.com/brennalabs/lr1gen/automaton"
	"github.com/brennalabs/lr1gen/grammar"
)

// MarshalBinary encodes the table as a length-prefixed byte sequence: the
// state count, the terminal set the ACTION columns are indexed by, every
// ACTION cell, and every GOTO cell. Intended for callers who want to
// cache a compiled table for a grammar that changes rarely.
func (t *Table) MarshalBinary() ([]byte, error) {
	var buf []byte

	buf = encInt(buf, t.states)

	buf = encInt(buf, len(t.terminals))
	for _, term := range t.terminals {
		buf = encSymbol(buf, term)
	}

	buf = encInt(buf, len(t.actions))
	for key, a := range t.actions {
		s, sym, err := parseCellKey(key)
		if err != nil {
			return nil, err
		}
		buf = encInt(buf, int(s))
		buf = encSymbol(buf, sym)
		buf = encAction(buf, a)
	}

	buf = encInt(buf, len(t.gotoTargets))
	for key, target := range t.gotoTargets {
		s, sym, err := parseCellKey(key)
		if err != nil {
			return nil, err
		}
		buf = encInt(buf, int(s))
		buf = encSymbol(buf, sym)
		buf = encInt(buf, int(target))
	}

	return buf, nil
}

// UnmarshalBinary restores a table from bytes produced by MarshalBinary.
// The restored table answers Action/Goto identically to the original for
// every (state, symbol) pair the original answered, but does not
// restore a Grammar reference -- the grammar that produced the table is
// the caller's to keep, not the table's to reconstruct.
func (t *Table) UnmarshalBinary(data []byte) error {
	rest := data

	states, rest, err := decInt(rest)
	if err != nil {
		return err
	}
	t.states = states

	numTerminals, rest, err := decInt(rest)
	if err != nil {
		return err
	}
	terminals := make([]grammar.Symbol, numTerminals)
	for i := 0; i < numTerminals; i++ {
		var sym grammar.Symbol
		sym, rest, err = decSymbol(rest)
		if err != nil {
			return err
		}
		terminals[i] = sym
	}
	t.terminals = terminals

	numActions, rest, err := decInt(rest)
	if err != nil {
		return err
	}
	t.actions = make(map[string]Action, numActions)
	for i := 0; i < numActions; i++ {
		var s int
		s, rest, err = decInt(rest)
		if err != nil {
			return err
		}
		var sym grammar.Symbol
		sym, rest, err = decSymbol(rest)
		if err != nil {
			return err
		}
		var a Action
		a, rest, err = decAction(rest)
		if err != nil {
			return err
		}
		t.actions[cellKey(automaton.State(s), sym)] = a
	}

	numGotos, rest, err := decInt(rest)
	if err != nil {
		return err
	}
	t.gotoTargets = make(map[string]automaton.State, numGotos)
	for i := 0; i < numGotos; i++ {
		var s int
		s, rest, err = decInt(rest)
		if err != nil {
			return err
		}
		var sym grammar.Symbol
		sym, rest, err = decSymbol(rest)
		if err != nil {
			return err
		}
		var target int
		target, rest, err = decInt(rest)
		if err != nil {
			return err
		}
		t.gotoTargets[cellKey(automaton.State(s), sym)] = automaton.State(target)
	}

	return nil
}

// Save writes the table, encoded via rezi, to path.
func (t *Table) Save(path string) error {
	data := rezi.EncBinary(t)
	return os.WriteFile(path, data, 0644)
}

// Load reads and decodes a table previously written by Save.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := &Table{}
	if _, err := rezi.DecBinary(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

func encInt(buf []byte, v int) []byte {
	var lenPrefix [8]byte
	binary.BigEndian.PutUint64(lenPrefix[:], uint64(int64(v)))
	return append(buf, lenPrefix[:]...)
}

func decInt(buf []byte) (int, []byte, error) {
	if len(buf) < 8 {
		return 0, nil, fmt.Errorf("lrtable: truncated int in binary table data")
	}
	v := int64(binary.BigEndian.Uint64(buf[:8]))
	return int(v), buf[8:], nil
}

func encString(buf []byte, s string) []byte {
	buf = encInt(buf, len(s))
	return append(buf, []byte(s)...)
}

func decString(buf []byte) (string, []byte, error) {
	n, rest, err := decInt(buf)
	if err != nil {
		return "", nil, err
	}
	if len(rest) < n {
		return "", nil, fmt.Errorf("lrtable: truncated string in binary table data")
	}
	return string(rest[:n]), rest[n:], nil
}

func encSymbol(buf []byte, sym grammar.Symbol) []byte {
	buf = encInt(buf, int(sym.Kind))
	return encString(buf, sym.Name)
}

func decSymbol(buf []byte) (grammar.Symbol, []byte, error) {
	kind, rest, err := decInt(buf)
	if err != nil {
		return grammar.Symbol{}, nil, err
	}
	name, rest, err := decString(rest)
	if err != nil {
		return grammar.Symbol{}, nil, err
	}
	return grammar.Symbol{Name: name, Kind: grammar.SymbolKind(kind)}, rest, nil
}

func encAction(buf []byte, a Action) []byte {
	buf = encInt(buf, int(a.Kind))
	switch a.Kind {
	case Shift:
		buf = encInt(buf, int(a.State))
	case Reduce, Accept:
		buf = encSymbol(buf, a.Rule.Head)
		buf = encInt(buf, len(a.Rule.Body))
		for _, s := range a.Rule.Body {
			buf = encSymbol(buf, s)
		}
	}
	return buf
}

func decAction(buf []byte) (Action, []byte, error) {
	kind, rest, err := decInt(buf)
	if err != nil {
		return Action{}, nil, err
	}
	switch ActionKind(kind) {
	case Shift:
		var s int
		s, rest, err = decInt(rest)
		if err != nil {
			return Action{}, nil, err
		}
		return ShiftAction(automaton.State(s)), rest, nil
	case Reduce, Accept:
		head, r1, err := decSymbol(rest)
		if err != nil {
			return Action{}, nil, err
		}
		n, r2, err := decInt(r1)
		if err != nil {
			return Action{}, nil, err
		}
		body := make([]grammar.Symbol, n)
		cur := r2
		for i := 0; i < n; i++ {
			var s grammar.Symbol
			s, cur, err = decSymbol(cur)
			if err != nil {
				return Action{}, nil, err
			}
			body[i] = s
		}
		rule, err := grammar.NewRule(head, body...)
		if err != nil {
			return Action{}, nil, err
		}
		if ActionKind(kind) == Accept {
			return AcceptAction(rule), cur, nil
		}
		return ReduceAction(rule), cur, nil
	}
	return Action{}, nil, fmt.Errorf("lrtable: unknown action kind %d in binary table data", kind)
}

// parseCellKey inverts cellKey's "<state>|<kind>:<name>" format. Name is
// taken verbatim from the first colon onward, since symbol names may
// themselves contain arbitrary characters.
func parseCellKey(key string) (automaton.State, grammar.Symbol, error) {
	pipe := -1
	colon := -1
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '|':
			if pipe == -1 {
				pipe = i
			}
		case ':':
			if colon == -1 {
				colon = i
			}
		}
	}
	if pipe == -1 || colon == -1 || colon < pipe {
		return 0, grammar.Symbol{}, fmt.Errorf("lrtable: malformed cell key %q", key)
	}

	var s, kind int
	if _, err := fmt.Sscanf(key[:pipe], "%d", &s); err != nil {
		return 0, grammar.Symbol{}, fmt.Errorf("lrtable: malformed cell key %q: %w", key, err)
	}
	if _, err := fmt.Sscanf(key[pipe+1:colon], "%d", &kind); err != nil {
		return 0, grammar.Symbol{}, fmt.Errorf("lrtable: malformed cell key %q: %w", key, err)
	}
	name := key[colon+1:]

	return automaton.State(s), grammar.Symbol{Name: name, Kind: grammar.SymbolKind(kind)}, nil
}
