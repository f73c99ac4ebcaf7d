package grammar

import "github.com/emirpasic/gods/sets/treeset"

// Follow returns FOLLOW(A) for a non-terminal A. Not used by the LR(1)
// core -- lookaheads there are derived during item closure -- but
// exposed as a standalone query for callers building their own analyses
// (e.g. an LL(1) table, or diagnostics over an ambiguous grammar).
func (g *Grammar) Follow(s Symbol) []Symbol {
	g.ensureFollow()
	if set, ok := g.followCache[s.key()]; ok {
		return symbolValues(set)
	}
	return nil
}

func (g *Grammar) ensureFollow() {
	if g.followCache != nil {
		return
	}
	g.ensureFirst()

	cache := make(map[string]*treeset.Set)
	for _, nt := range g.NonTerminals() {
		cache[nt.key()] = treeset.NewWith(compareSymbols)
	}
	cache[g.Start.key()].Add(EndOfInput)

	changed := true
	for changed {
		changed = false
		for _, r := range g.Rules {
			for i, sym := range r.Body {
				if !sym.IsNonTerminal() {
					continue
				}
				beta := r.Body[i+1:]
				target := cache[sym.key()]
				before := target.Size()

				for _, v := range g.firstOfSeqWithCache(beta, g.firstCache).Values() {
					target.Add(v)
				}
				if g.NullableSeq(beta) {
					for _, v := range cache[r.Head.key()].Values() {
						target.Add(v)
					}
				}

				if target.Size() != before {
					changed = true
					notifyTrace("follow(%s) grew to %d terminals", sym, target.Size())
				}
			}
		}
	}

	g.followCache = cache
}
