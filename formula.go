package ccanr

import "fmt"

// lit is a single occurrence of a variable in a clause: which clause it's
// in, which variable it names, and its polarity (1 = positive, 0 = negated).
type lit struct {
	clause int
	v      int
	sense  uint8
}

// Formula is the dual-indexed CNF store: a per-clause literal list and
// a per-variable literal list, kept consistent under unit propagation.
//
// Variables are numbered 1..NumVars; 0 is a sentinel meaning "no variable".
// Clauses are numbered 0..NumClauses-1.
type Formula struct {
	NumVars    int
	NumClauses int

	clauseLits     [][]lit // clauseLits[c]: literals of clause c (mutated by propagation)
	clauseDeleted  []bool
	origClauseLits [][]lit // immutable snapshot as ingested, for Verify

	varLits     [][]lit // varLits[v]: every (non-deleted) occurrence of v
	varLitCount []int

	fixed      []bool // fixed[v]: v was pinned to a constant by unit propagation
	fixedValue []uint8

	unitQueue []lit // unit clauses queued for propagation, FIFO

	formulaLen   int
	maxClauseLen int
	minClauseLen int
	ratio        float64

	started bool // true once ingest has completed; AddClause refuses after this
}

// NewFormula allocates an empty store for numVars variables.
func NewFormula(numVars int) *Formula {
	return &Formula{
		NumVars:     numVars,
		varLits:     make([][]lit, numVars+1),
		varLitCount: make([]int, numVars+1),
		fixed:       make([]bool, numVars+1),
		fixedValue:  make([]uint8, numVars+1),
	}
}

// AddClause ingests one clause, given as signed integer literals (negative
// means negated, magnitude is the variable id). Duplicate or tautological
// literals are the caller's responsibility to avoid; AddClause does not
// detect them. A unit clause (length 1) is queued for unit propagation and
// marked deleted immediately; it never occupies a slot in var_lits.
func (f *Formula) AddClause(lits []int) error {
	if f.started {
		return fmt.Errorf("ccanr: AddClause called after BuildIndex")
	}
	c := f.NumClauses
	cl := make([]lit, 0, len(lits))
	for _, x := range lits {
		if x == 0 {
			return fmt.Errorf("ccanr: clause %d contains literal 0", c)
		}
		v := x
		sense := uint8(1)
		if v < 0 {
			v = -v
			sense = 0
		}
		if v > f.NumVars {
			return fmt.Errorf("ccanr: clause %d references var %d, but NumVars=%d", c, v, f.NumVars)
		}
		cl = append(cl, lit{clause: c, v: v, sense: sense})
	}

	f.clauseLits = append(f.clauseLits, cl)
	orig := make([]lit, len(cl))
	copy(orig, cl)
	f.origClauseLits = append(f.origClauseLits, orig)
	f.clauseDeleted = append(f.clauseDeleted, false)
	f.NumClauses++

	f.formulaLen += len(cl)
	if len(cl) > f.maxClauseLen {
		f.maxClauseLen = len(cl)
	}
	if f.minClauseLen == 0 || len(cl) < f.minClauseLen {
		f.minClauseLen = len(cl)
	}

	if len(cl) == 1 {
		f.unitQueue = append(f.unitQueue, cl[0])
		f.clauseDeleted[c] = true
	}
	return nil
}

// BuildIndex finishes ingestion: it builds var_lits from clause_lits
// (so clause-indexed and variable-indexed literals always agree) and
// freezes the store against further AddClause calls.
// Must be called once, after all clauses have been added and before
// propagation or search.
func (f *Formula) BuildIndex() {
	if f.started {
		return
	}
	f.started = true
	for v := 1; v <= f.NumVars; v++ {
		f.varLitCount[v] = 0
	}
	for c, cl := range f.clauseLits {
		if f.clauseDeleted[c] {
			continue
		}
		for _, l := range cl {
			f.varLits[l.v] = append(f.varLits[l.v], l)
			f.varLitCount[l.v]++
		}
	}
	if f.NumClauses > 0 {
		f.ratio = float64(f.NumClauses) / float64(f.NumVars)
	}
}

// AvgClauseLen returns the total clause length divided by NumClauses.
// Before Propagate this is the mean over all ingested clauses; after it,
// the total counts only the surviving (possibly shrunk) clauses while the
// divisor still counts every ingested clause.
func (f *Formula) AvgClauseLen() float64 {
	if f.NumClauses == 0 {
		return 0
	}
	return float64(f.formulaLen) / float64(f.NumClauses)
}
