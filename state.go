package ccanr

// state is the mutable search state maintained by flip across the
// whole of a try. All hot arrays are indexed by variable or clause id and
// pre-sized once; the stacks are intSets.
type state struct {
	f         *Formula
	neighbors [][]int

	assignment []uint8 // assignment[v] in {0,1}

	satCount []int // satCount[c]: # true literals in c (deleted clauses undefined)
	satVar   []int // satVar[c]: the unique satisfier when satCount[c]==1

	unsat    intSet // unsat_stack
	unsatVar intSet // unsatvar_stack

	unsatAppCount []int // unsat_app_count[v]

	score      []int // score[v]
	timeStamp  []int // time_stamp[v]
	confChange []bool

	goodVar intSet // goodvar_stack

	clauseWeight []int
	aveWeight    int
	deltaWeight  int

	bestUnsatThisTry int
	step             int
	tries            int
}

const fixedScoreSentinel = -1 << 30

func newState(f *Formula, neighbors [][]int) *state {
	nv, nc := f.NumVars, f.NumClauses
	return &state{
		f:             f,
		neighbors:     neighbors,
		assignment:    make([]uint8, nv+1),
		satCount:      make([]int, nc),
		satVar:        make([]int, nc),
		unsat:         newIntSet(nc),
		unsatVar:      newIntSet(nv),
		unsatAppCount: make([]int, nv+1),
		score:         make([]int, nv+1),
		timeStamp:     make([]int, nv+1),
		confChange:    make([]bool, nv+1),
		goodVar:       newIntSet(nv),
		clauseWeight:  make([]int, nc),
		aveWeight:     1,
	}
}

// init (re)initializes the search state from a seed assignment, at the
// start of every try. Grounded on cca.h's init(int *soln).
func (s *state) init(seed []uint8) {
	f := s.f

	for c := 0; c < f.NumClauses; c++ {
		s.clauseWeight[c] = 1
	}
	s.unsat.reset()
	s.unsatVar.reset()
	s.goodVar.reset()
	s.step = 0

	for v := 1; v <= f.NumVars; v++ {
		if f.fixed[v] {
			continue
		}
		s.assignment[v] = seed[v]
		s.timeStamp[v] = 0
		s.confChange[v] = true
		s.unsatAppCount[v] = 0
	}

	for c := 0; c < f.NumClauses; c++ {
		if f.clauseDeleted[c] {
			continue
		}
		count := 0
		satVar := 0
		for _, l := range f.clauseLits[c] {
			if s.assignment[l.v] == l.sense {
				count++
				satVar = l.v
			}
		}
		s.satCount[c] = count
		s.satVar[c] = satVar
		if count == 0 {
			s.enterUnsat(c)
		}
	}

	for v := 1; v <= f.NumVars; v++ {
		if f.fixed[v] {
			s.score[v] = fixedScoreSentinel
			continue
		}
		score := 0
		for _, l := range f.varLits[v] {
			c := l.clause
			switch {
			case s.satCount[c] == 0:
				score++
			case s.satCount[c] == 1 && l.sense == s.assignment[v]:
				score--
			}
		}
		s.score[v] = score
	}

	for v := 1; v <= f.NumVars; v++ {
		if f.fixed[v] {
			continue
		}
		if s.score[v] > 0 {
			s.goodVar.push(v)
		}
	}

	s.bestUnsatThisTry = s.unsat.len()
}

// enterUnsat records clause c as unsatisfied and bumps every
// variable occurring in it into unsatVar if this is their first unsat
// clause.
func (s *state) enterUnsat(c int) {
	s.unsat.push(c)
	for _, l := range s.f.clauseLits[c] {
		s.unsatAppCount[l.v]++
		if s.unsatAppCount[l.v] == 1 {
			s.unsatVar.push(l.v)
		}
	}
}

// leaveUnsat is the mirror of enterUnsat, called when c becomes
// satisfied.
func (s *state) leaveUnsat(c int) {
	s.unsat.remove(c)
	for _, l := range s.f.clauseLits[c] {
		s.unsatAppCount[l.v]--
		if s.unsatAppCount[l.v] == 0 {
			s.unsatVar.remove(l.v)
		}
	}
}
