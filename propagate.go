package ccanr

// Propagate runs the unit-clause preprocessor: it drains the unit
// queue seeded by AddClause, fixes each forced variable, deletes satisfied
// clauses, shrinks falsified clauses in place, and discovers further unit
// clauses along the way. After the queue drains it rebuilds var_lits from
// the surviving clause_lits, keeping clause- and variable-indexed
// literals in agreement, and refreshes the aggregates.
//
// Grounded on cca.h's unit_propagation + preprocess. Must be called (if at
// all) after BuildIndex and before buildNeighbors/init. It is safe to call
// on a formula with an empty unit queue (a no-op rebuild).
//
// inconsistent reports the number of times the queue tried to fix an
// already-fixed variable to the opposite value (an "inconsistent
// unit set" diagnostic); the formula is then UNSAT, but Propagate does not
// prove this — it only counts it for Stats/Trace.
func Propagate(f *Formula) (inconsistent int) {
	assignment := make([]uint8, f.NumVars+1)

	for qi := 0; qi < len(f.unitQueue); qi++ {
		l := f.unitQueue[qi]
		v, sense := l.v, l.sense

		if f.fixed[v] {
			if f.fixedValue[v] != sense {
				inconsistent++
			}
			continue
		}
		f.fixed[v] = true
		f.fixedValue[v] = sense
		assignment[v] = sense

		for _, occ := range f.varLits[v] {
			c := occ.clause
			if f.clauseDeleted[c] {
				continue
			}
			if occ.sense == sense {
				// The literal is true under the fix: clause satisfied.
				f.clauseDeleted[c] = true
				continue
			}
			// The literal is false under the fix: remove it from the clause.
			cl := f.clauseLits[c]
			if len(cl) == 2 {
				// This branch only makes sense if the falsified literal
				// (var==v) is actually one of the two. Verify that before
				// treating the other literal as a new unit.
				var other lit
				foundV := false
				for _, x := range cl {
					if x.v == v {
						foundV = true
					} else {
						other = x
					}
				}
				if foundV {
					f.unitQueue = append(f.unitQueue, other)
					f.clauseDeleted[c] = true
					continue
				}
			}
			// Swap-remove the falsified literal in place.
			for j := range cl {
				if cl[j].v == v {
					cl[j] = cl[len(cl)-1]
					cl = cl[:len(cl)-1]
					break
				}
			}
			f.clauseLits[c] = cl
		}
	}

	// Rebuild var_lits from the surviving (possibly shrunk) clauses.
	for v := 1; v <= f.NumVars; v++ {
		f.varLits[v] = f.varLits[v][:0]
		f.varLitCount[v] = 0
	}
	f.formulaLen = 0
	f.maxClauseLen = 0
	f.minClauseLen = 0
	for c, cl := range f.clauseLits {
		if f.clauseDeleted[c] {
			continue
		}
		for _, l := range cl {
			f.varLits[l.v] = append(f.varLits[l.v], l)
			f.varLitCount[l.v]++
		}
		f.formulaLen += len(cl)
		if len(cl) > f.maxClauseLen {
			f.maxClauseLen = len(cl)
		}
		if f.minClauseLen == 0 || len(cl) < f.minClauseLen {
			f.minClauseLen = len(cl)
		}
	}
	return inconsistent
}
