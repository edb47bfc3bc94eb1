package prepare

import "github.com/aba2sat/aba2sat/internal/abamodel"

// Loop is a non-trivial strongly-connected set of atoms in the rule
// dependency graph (spec §3's PreparedAba.loops): Heads is the atom set,
// Support is the list of entry-rule indices whose head is in Heads but
// whose body is disjoint from Heads.
type Loop struct {
	Heads   map[abamodel.Atom]struct{}
	Support []abamodel.RuleIndex
}

// HeadList returns Heads as a deterministically sorted slice.
func (l Loop) HeadList() []abamodel.Atom {
	out := make([]abamodel.Atom, 0, len(l.Heads))
	for a := range l.Heads {
		out = append(out, a)
	}
	sortAtoms(out)
	return out
}

func sortAtoms(s []abamodel.Atom) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
