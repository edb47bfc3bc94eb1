// Package clause implements the literal/clause/mapper layer (spec §4.C1-C2):
// typed, polarity-carrying literals, clauses as disjunctions of literals,
// and a Mapper that assigns each distinct literal a stable positive SAT id.
package clause

import (
	"fmt"

	"github.com/aba2sat/aba2sat/internal/abamodel"
)

// Kind distinguishes the seven literal families of spec §3. LH/LHHelper
// style kinds are parameterised by a Context (candidate vs attacker/set)
// rather than doubled up as distinct Kind values, per spec §9's "small
// interface/capability" design note.
type Kind uint8

const (
	// KindBase is Th(a) in the candidate context, ThS(a) in the attacker context.
	KindBase Kind = iota
	// KindRule is ThRBA(i) / ThSRBA(i): rule i's body is fully active.
	KindRule
	// KindLoop is LH(j): loop j's entry is active.
	KindLoop
	// KindHelper is ThHelper(idx,a) / ThSHelper(idx,a): a per-body Tseitin
	// helper. No encoder in internal/encode or internal/problem emits it.
	KindHelper
)

// Context fixes the literal-kind triple (Base, Rule, Loop) that
// parameterises the theory and loop/rule-helper encoders (spec §4.C5),
// letting the same encoding logic serve both the "framework theory"
// (Candidate) and the "candidate-set theory" (Attacker) readings.
type Context struct {
	// Name disambiguates the two contexts inside a literal's identity so
	// Candidate's Th(a) and Attacker's ThS(a) never collide in the Mapper.
	Name string
	Base func(a abamodel.Atom) Literal
	Rule func(i abamodel.RuleIndex) Literal
	Loop func(j int) Literal
}

// Candidate is the Th/ThRBA/LH reading: the theory of the framework
// itself, used to model an attacker set.
var Candidate = Context{
	Name: "candidate",
	Base: func(a abamodel.Atom) Literal { return Literal{ctx: "candidate", kind: KindBase, payload: int64(a), pos: true} },
	Rule: func(i abamodel.RuleIndex) Literal { return Literal{ctx: "candidate", kind: KindRule, payload: int64(i), pos: true} },
	Loop: func(j int) Literal { return Literal{ctx: "candidate", kind: KindLoop, payload: int64(j), pos: true} },
}

// Attacker is the ThS/ThSRBA/LH reading: the theory of the candidate set S.
var Attacker = Context{
	Name: "attacker",
	Base: func(a abamodel.Atom) Literal { return Literal{ctx: "attacker", kind: KindBase, payload: int64(a), pos: true} },
	Rule: func(i abamodel.RuleIndex) Literal { return Literal{ctx: "attacker", kind: KindRule, payload: int64(i), pos: true} },
	Loop: func(j int) Literal { return Literal{ctx: "attacker", kind: KindLoop, payload: int64(j), pos: true} },
}

// Literal is (polarity, kind, payload). Negation flips polarity; equality
// of the underlying (kind, payload, ctx) identifies the same SAT variable.
type Literal struct {
	ctx     string
	kind    Kind
	payload int64
	pos     bool
}

// Helper builds ThHelper(idx,a) / ThSHelper(idx,a): the per-rule-body
// Tseitin helper keyed on both a rule's position among a head's bodies and
// the head atom itself (spec §3, kind 6).
func Helper(ctx Context, idx int, a abamodel.Atom) Literal {
	return Literal{ctx: ctx.Name, kind: KindHelper, payload: int64(idx)<<32 | int64(uint32(a)), pos: true}
}

// Pos returns the positive-polarity form of this literal.
func (l Literal) Pos() Literal { l.pos = true; return l }

// Neg returns the negative-polarity form of this literal.
func (l Literal) Neg() Literal { l.pos = false; return l }

// Negated returns the literal with polarity flipped.
func (l Literal) Negated() Literal { l.pos = !l.pos; return l }

// key identifies the underlying (kind, payload) pair, ignoring polarity —
// this is exactly what the Mapper interns on.
type key struct {
	ctx     string
	kind    Kind
	payload int64
}

func (l Literal) key() key { return key{l.ctx, l.kind, l.payload} }

func (l Literal) String() string {
	sign := "+"
	if !l.pos {
		sign = "-"
	}
	return fmt.Sprintf("%s%s:%d#%d", sign, l.ctx, l.kind, l.payload)
}
