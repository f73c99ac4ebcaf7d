package grammar

import (
	"github.com/brennalabs/lr1gen/lrerr"
)

func malformedRuleHead(head Symbol) error {
	return lrerr.Malformedf("rule head %q must be a non-terminal, got kind %s", head.Name, head.Kind)
}

func malformedNoStartRule(start Symbol) error {
	return lrerr.Malformedf("start symbol %q is not the head of any rule", start.Name)
}

func malformedStartNotNonTerminal(start Symbol) error {
	return lrerr.Malformedf("start symbol %q must be a non-terminal", start.Name)
}

func malformedStartBody(rule Rule) error {
	return lrerr.Malformedf("start rule %s must have exactly one symbol in its body (expected an augmentation S' -> S)", rule)
}

func malformedEndOfInputInBody(rule Rule) error {
	return lrerr.Malformedf("rule %s may not contain the reserved end-of-input symbol %q in its body", rule, EndOfInput.Name)
}
