package clause

// Clause is a disjunction of literals.
type Clause []Literal

// Of builds a clause from its literals, mirroring how every encoder in
// internal/encode and internal/problem emits one CNF disjunct at a time.
func Of(lits ...Literal) Clause {
	return Clause(lits)
}

// Clauses is an ordered list of Clause; order is significant for the
// determinism guarantees of spec §5 (clause-addition order to the solver
// is a deterministic function of input order).
type Clauses []Clause

// Append is a small convenience for encoders that build up a Clauses slice
// across several helper functions.
func (c Clauses) Append(more ...Clause) Clauses {
	return append(c, more...)
}
