package grammar

// Nullable reports whether s can derive the empty string. Epsilon itself,
// and any non-terminal with a production whose body is entirely
// nullable, are nullable; every other terminal is not. The result is
// memoized on first query and is never recomputed.
func (g *Grammar) Nullable(s Symbol) bool {
	g.ensureNullable()
	if s.IsEpsilon() {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	return g.nullableCache[s.key()]
}

// NullableSeq reports whether every symbol in seq is nullable. The empty
// sequence is nullable.
func (g *Grammar) NullableSeq(seq []Symbol) bool {
	for _, s := range seq {
		if !g.Nullable(s) {
			return false
		}
	}
	return true
}

func (g *Grammar) ensureNullable() {
	if g.nullableCache != nil {
		return
	}

	cache := make(map[string]bool)
	changed := true
	for changed {
		changed = false
		for _, r := range g.Rules {
			if cache[r.Head.key()] {
				continue
			}
			if bodyNullable(r.Body, cache) {
				cache[r.Head.key()] = true
				changed = true
				notifyTrace("nullable: %s derives ε via %s", r.Head, r)
			}
		}
	}

	g.nullableCache = cache
}

// bodyNullable reports whether every symbol in body is currently known
// nullable, consulting the in-progress nullable cache directly (the
// grammar's own Nullable is not yet usable mid-fixpoint since the cache
// field is still nil).
func bodyNullable(body []Symbol, cache map[string]bool) bool {
	for _, s := range body {
		if s.IsEpsilon() {
			continue
		}
		if s.IsTerminal() {
			return false
		}
		if !cache[s.key()] {
			return false
		}
	}
	return true
}
