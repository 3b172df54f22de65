package ccanr

// localSearch runs up to 1+noImprovBudget flips without an
// improvement in the unsat count, returning true as soon as a fully
// satisfying assignment is found.
//
// Grounded on cca.h's local_search(long long no_improv_times).
func (s *state) localSearch(noImprovBudget int, wc weightConfig, aspiration bool, g rng, stop func() bool) bool {
	if s.unsat.len() == 0 {
		return true
	}
	remaining := 1 + noImprovBudget
	for remaining > 0 {
		remaining--
		if stop != nil && stop() {
			return false
		}
		s.step++
		v := s.pick(wc, aspiration, g)
		s.flip(v)
		s.timeStamp[v] = s.step

		if s.unsat.len() < s.bestUnsatThisTry {
			s.bestUnsatThisTry = s.unsat.len()
			remaining = 1 + noImprovBudget
		}
		if s.unsat.len() == 0 {
			return true
		}
	}
	return false
}

// Verify checks the current assignment against the formula's original
// clause set (always the original, never the propagation-shrunk one), and
// reports the first offending clause on failure.
func Verify(f *Formula, assignment []uint8) (ok bool, offendingClause int) {
	for c, cl := range f.origClauseLits {
		satisfied := false
		for _, l := range cl {
			if assignment[l.v] == l.sense {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false, c
		}
	}
	return true, -1
}
