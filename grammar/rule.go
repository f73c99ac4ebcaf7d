package grammar

import (
	"strings"

	"github.com/cnf/structhash"
)

// Rule is a production head -> body. body may be empty or the single
// epsilon symbol; both encode an epsilon-production.
type Rule struct {
	Head Symbol
	Body []Symbol
}

// NewRule constructs a rule, requiring head to be a non-terminal.
func NewRule(head Symbol, body ...Symbol) (Rule, error) {
	if !head.IsNonTerminal() {
		return Rule{}, malformedRuleHead(head)
	}
	b := make([]Symbol, len(body))
	copy(b, body)
	return Rule{Head: head, Body: b}, nil
}

// MustRule is NewRule, panicking on error. Intended for use with
// statically-known rules (e.g. in tests or built-in example grammars).
func MustRule(head Symbol, body ...Symbol) Rule {
	r, err := NewRule(head, body...)
	if err != nil {
		panic(err)
	}
	return r
}

// IsEpsilon returns whether r is an epsilon-production: an empty body, or
// a body consisting of the single epsilon symbol.
func (r Rule) IsEpsilon() bool {
	return len(r.Body) == 0 || (len(r.Body) == 1 && r.Body[0].IsEpsilon())
}

// Equal returns whether r and o have the same head and body.
func (r Rule) Equal(o Rule) bool {
	if r.Head != o.Head {
		return false
	}
	if len(r.Body) != len(o.Body) {
		return false
	}
	for i := range r.Body {
		if r.Body[i] != o.Body[i] {
			return false
		}
	}
	return true
}

// Key returns a string uniquely identifying the rule's (head, body) pair,
// suitable for use as a map key or as part of a larger content key (e.g.
// an LR(1) item's key).
func (r Rule) Key() string {
	return r.key()
}

// key returns a string uniquely identifying the rule, suitable for use as
// a map key or for content-hashing.
func (r Rule) key() string {
	var sb strings.Builder
	sb.WriteString(r.Head.key())
	sb.WriteString("->")
	for _, s := range r.Body {
		sb.WriteString(s.key())
		sb.WriteByte(';')
	}
	return sb.String()
}

// Hash returns a stable content hash of the rule.
func (r Rule) Hash() string {
	h, err := structhash.Hash(r.key(), 1)
	if err != nil {
		// structhash.Hash on a string never fails.
		panic(err)
	}
	return h
}

func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.Head.String())
	sb.WriteString(" -> ")
	if r.IsEpsilon() {
		sb.WriteString("ε")
		return sb.String()
	}
	for i, s := range r.Body {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}
