package grammar

import "github.com/emirpasic/gods/sets/treeset"

// First returns FIRST(s): {s} if s is a non-epsilon terminal, the empty
// set if s is epsilon, or the union of FIRST over every production body
// of s if s is a non-terminal.
func (g *Grammar) First(s Symbol) []Symbol {
	g.ensureFirst()
	return symbolValues(g.firstSetFor(s))
}

// FirstSeq returns FIRST(seq): the union of FIRST over each symbol in seq
// up to and including the first symbol that is not nullable, or over the
// whole sequence if every symbol is nullable.
func (g *Grammar) FirstSeq(seq []Symbol) []Symbol {
	g.ensureFirst()
	return symbolValues(g.firstOfSeq(seq))
}

// FirstSeqLookahead returns FIRST(seq ++ [lookahead]). Used by item
// closure to compute the lookahead set propagated to newly-closed items.
func (g *Grammar) FirstSeqLookahead(seq []Symbol, lookahead Symbol) []Symbol {
	g.ensureFirst()
	extended := make([]Symbol, len(seq)+1)
	copy(extended, seq)
	extended[len(seq)] = lookahead
	return symbolValues(g.firstOfSeq(extended))
}

func (g *Grammar) firstSetFor(s Symbol) *treeset.Set {
	if s.IsEpsilon() {
		return treeset.NewWith(compareSymbols)
	}
	if set, ok := g.firstCache[s.key()]; ok {
		return set
	}
	return treeset.NewWith(compareSymbols)
}

func (g *Grammar) firstOfSeq(seq []Symbol) *treeset.Set {
	return g.firstOfSeqWithCache(seq, g.firstCache)
}

// firstOfSeqWithCache computes FIRST of a symbol sequence against an
// in-progress (or finished) first-set cache, stopping at the first
// non-nullable symbol.
func (g *Grammar) firstOfSeqWithCache(seq []Symbol, cache map[string]*treeset.Set) *treeset.Set {
	result := treeset.NewWith(compareSymbols)
	for _, s := range seq {
		if s.IsEpsilon() {
			continue
		}
		if set, ok := cache[s.key()]; ok {
			for _, v := range set.Values() {
				result.Add(v)
			}
		}
		if !g.Nullable(s) {
			break
		}
	}
	return result
}

func (g *Grammar) ensureFirst() {
	if g.firstCache != nil {
		return
	}
	g.ensureNullable()

	cache := make(map[string]*treeset.Set)
	for _, t := range g.Terminals() {
		if t.IsEpsilon() {
			continue
		}
		s := treeset.NewWith(compareSymbols)
		s.Add(t)
		cache[t.key()] = s
	}
	for _, nt := range g.NonTerminals() {
		cache[nt.key()] = treeset.NewWith(compareSymbols)
	}

	changed := true
	for changed {
		changed = false
		for _, r := range g.Rules {
			grown := g.firstOfSeqWithCache(r.Body, cache)
			target := cache[r.Head.key()]
			before := target.Size()
			for _, v := range grown.Values() {
				target.Add(v)
			}
			if target.Size() != before {
				changed = true
				notifyTrace("first(%s) grew to %d terminals", r.Head, target.Size())
			}
		}
	}

	g.firstCache = cache
}
