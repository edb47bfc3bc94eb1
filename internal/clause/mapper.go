package clause

// Mapper assigns each distinct literal (by its (kind, payload) identity) a
// stable positive integer id for the SAT solver, and supports read-only
// lookup plus debug reconstruction. It is created fresh per solve (spec
// §3) and grows monotonically; insertion order is preserved so that clause
// emission order is a deterministic function of the input Aba.
type Mapper struct {
	ids  map[key]int32
	rev  []Literal // rev[id-1] is the positive (canonical) literal for id
}

// NewMapper returns an empty Mapper.
func NewMapper() *Mapper {
	return &Mapper{ids: make(map[key]int32)}
}

// Intern returns a stable signed SAT literal for lit: a positive int32 for
// positive polarity, its negation for negative polarity. A fresh id is
// allocated on first sight of the underlying (kind, payload) pair.
func (m *Mapper) Intern(lit Literal) int32 {
	k := lit.key()
	id, ok := m.ids[k]
	if !ok {
		id = int32(len(m.rev)) + 1
		m.ids[k] = id
		m.rev = append(m.rev, lit.Pos())
	}
	if lit.pos {
		return id
	}
	return -id
}

// RawClauses maps a sequence of Clauses into raw signed-int CNF clauses,
// interning every literal along the way.
func (m *Mapper) RawClauses(clauses Clauses) [][]int32 {
	raw := make([][]int32, len(clauses))
	for i, c := range clauses {
		row := make([]int32, len(c))
		for j, lit := range c {
			row[j] = m.Intern(lit)
		}
		raw[i] = row
	}
	return raw
}

// Lookup returns the signed SAT id for lit without inserting it, for
// interrogating a model after the fact (e.g. is ThS(a) true?).
func (m *Mapper) Lookup(lit Literal) (int32, bool) {
	id, ok := m.ids[lit.key()]
	if !ok {
		return 0, false
	}
	if lit.pos {
		return id, true
	}
	return -id, true
}

// Len returns the number of distinct SAT variables allocated so far.
func (m *Mapper) Len() int {
	return len(m.rev)
}

// ValueSource abstracts a solved SAT model query, implemented by the
// underlying solver (see internal/solver), so Reconstruct can stay
// solver-agnostic.
type ValueSource interface {
	Value(id int32) (bool, bool)
}

// Reconstruct yields (literal, truth) pairs for every interned variable,
// for debug logging only (spec §4.C1-C2).
func (m *Mapper) Reconstruct(src ValueSource) []struct {
	Literal Literal
	Value   bool
} {
	out := make([]struct {
		Literal Literal
		Value   bool
	}, 0, len(m.rev))
	for i, lit := range m.rev {
		v, ok := src.Value(int32(i + 1))
		if !ok {
			continue
		}
		out = append(out, struct {
			Literal Literal
			Value   bool
		}{lit, v})
	}
	return out
}
