// Package abamodel holds the raw, immutable representation of a flat
// Assumption-Based Argumentation framework: atoms, rules, assumptions and
// their contraries.
package abamodel

import "fmt"

// Atom is a symbolic element of the universe L. Atom 0 is reserved and
// never appears in a well-formed framework.
type Atom uint32

// Invalid is the reserved, never-valid atom.
const Invalid Atom = 0

func (a Atom) String() string {
	return fmt.Sprintf("%d", uint32(a))
}

// RuleIndex identifies a rule by its position in the stable rule sequence
// of an Aba. It is the rule's identity for later encodings (§3).
type RuleIndex int

// Rule is head ← body. A rule with an empty body is a fact.
type Rule struct {
	Head Atom
	Body []Atom
}

// IsFact reports whether the rule has an empty body.
func (r Rule) IsFact() bool {
	return len(r.Body) == 0
}
