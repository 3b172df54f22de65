//go:build ccanrdebug

package ccanr

import (
	"fmt"

	"github.com/kr/pretty"
)

// debugCheck asserts the search-state invariants against the live state. It
// is compiled in only under the ccanrdebug build tag (mirroring
// saturday.go's compile-time `const verbose = false` gate) so that
// production builds pay nothing for it; tests that want the checks build
// with `-tags ccanrdebug`.
func debugCheck(s *state) error {
	f := s.f

	for c := 0; c < f.NumClauses; c++ {
		if f.clauseDeleted[c] {
			continue
		}
		want := 0
		for _, l := range f.clauseLits[c] {
			if s.assignment[l.v] == l.sense {
				want++
			}
		}
		if want != s.satCount[c] {
			return fmt.Errorf("invariant 1 violated at clause %d: satCount=%d, recomputed=%d\n%# v",
				c, s.satCount[c], want, pretty.Formatter(f.clauseLits[c]))
		}
		inStack := s.unsat.has(c)
		if (want == 0) != inStack {
			return fmt.Errorf("invariant 2 violated at clause %d: satCount=%d, inUnsatStack=%v", c, want, inStack)
		}
	}

	for v := 1; v <= f.NumVars; v++ {
		if f.fixed[v] {
			continue
		}
		want := 0
		for _, l := range f.varLits[v] {
			c := l.clause
			switch {
			case s.satCount[c] == 0:
				want += s.clauseWeight[c]
			case s.satCount[c] == 1 && s.satVar[c] == v:
				want -= s.clauseWeight[c]
			}
		}
		if want != s.score[v] {
			return fmt.Errorf("invariant 3 violated at var %d: score=%d, recomputed=%d", v, s.score[v], want)
		}
		inUnsatVar := s.unsatVar.has(v)
		if (s.unsatAppCount[v] > 0) != inUnsatVar {
			return fmt.Errorf("invariant 4 violated at var %d: unsatAppCount=%d, inUnsatVarStack=%v", v, s.unsatAppCount[v], inUnsatVar)
		}
		if s.goodVar.has(v) && !(s.score[v] > 0 && s.confChange[v]) {
			return fmt.Errorf("invariant 5 violated at var %d: score=%d, confChange=%v, but present in goodVar",
				v, s.score[v], s.confChange[v])
		}
	}
	return nil
}
