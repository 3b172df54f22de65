package ccanr

import "testing"

func TestPickCCDPrefersHighestScore(t *testing.T) {
	f := NewFormula(3)
	must(t, f.AddClause([]int{1, 2}))
	must(t, f.AddClause([]int{2, 3}))
	s := newTestState(t, f)
	s.init([]uint8{0, 0, 0, 0})

	s.goodVar.reset()
	s.score[1] = 3
	s.score[2] = 5
	s.score[3] = 1
	s.goodVar.push(1)
	s.goodVar.push(2)
	s.goodVar.push(3)

	got, ok := s.pickCCD()
	if !ok || got != 2 {
		t.Fatalf("pickCCD() = (%d, %v), want (2, true)", got, ok)
	}
}

func TestPickCCDBreaksTiesByOldestTimeStamp(t *testing.T) {
	f := NewFormula(2)
	must(t, f.AddClause([]int{1, 2}))
	s := newTestState(t, f)
	s.init([]uint8{0, 0, 0})

	s.goodVar.reset()
	s.score[1] = 4
	s.score[2] = 4
	s.timeStamp[1] = 10
	s.timeStamp[2] = 3
	s.goodVar.push(1)
	s.goodVar.push(2)

	got, ok := s.pickCCD()
	if !ok || got != 2 {
		t.Fatalf("pickCCD() = (%d, %v), want (2, true) (oldest time_stamp wins tie)", got, ok)
	}
}

func TestPickCCDEmptyStack(t *testing.T) {
	f := NewFormula(1)
	must(t, f.AddClause([]int{1}))
	s := newTestState(t, f)
	s.init([]uint8{0, 0})
	s.goodVar.reset()

	if _, ok := s.pickCCD(); ok {
		t.Fatal("pickCCD() on empty goodVar stack returned ok=true")
	}
}

func TestPickAspirationFindsAboveAverage(t *testing.T) {
	f := NewFormula(3)
	must(t, f.AddClause([]int{1, 2, 3}))
	s := newTestState(t, f)
	s.init([]uint8{0, 0, 0, 0})

	s.unsatVar.reset()
	s.unsatVar.push(1)
	s.unsatVar.push(2)
	s.unsatVar.push(3)
	s.aveWeight = 5
	s.score[1] = 2
	s.score[2] = 10
	s.score[3] = 1

	got, ok := s.pickAspiration()
	if !ok || got != 2 {
		t.Fatalf("pickAspiration() = (%d, %v), want (2, true)", got, ok)
	}
}

func TestPickAspirationNoneAboveAverage(t *testing.T) {
	f := NewFormula(2)
	must(t, f.AddClause([]int{1, 2}))
	s := newTestState(t, f)
	s.init([]uint8{0, 0, 0})

	s.unsatVar.reset()
	s.unsatVar.push(1)
	s.unsatVar.push(2)
	s.aveWeight = 100
	s.score[1] = 2
	s.score[2] = 3

	if _, ok := s.pickAspiration(); ok {
		t.Fatal("pickAspiration() returned ok=true when no candidate exceeds aveWeight")
	}
}

func TestPickAspirationRefinesAfterFirstHit(t *testing.T) {
	// Matches cca.h's pick_var literally: once a first candidate above
	// aveWeight is found, the scan continues over the REST of the stack
	// and keeps the best by (score, oldest time_stamp) -- even among
	// candidates that don't themselves exceed aveWeight.
	f := NewFormula(4)
	must(t, f.AddClause([]int{1, 2, 3, 4}))
	s := newTestState(t, f)
	s.init([]uint8{0, 0, 0, 0, 0})

	s.unsatVar.reset()
	s.unsatVar.push(1) // score 10, first hit above aveWeight(5)
	s.unsatVar.push(2) // score 20, also above aveWeight and higher than var1
	s.unsatVar.push(3) // score 1
	s.aveWeight = 5
	s.score[1] = 10
	s.score[2] = 20
	s.score[3] = 1

	got, ok := s.pickAspiration()
	if !ok || got != 2 {
		t.Fatalf("pickAspiration() = (%d, %v), want (2, true)", got, ok)
	}
}

func TestPickRandomWalkPicksHighestUnsatAppCount(t *testing.T) {
	f := NewFormula(3)
	must(t, f.AddClause([]int{1, 2, 3}))
	s := newTestState(t, f)
	s.init([]uint8{0, 0, 0, 0})

	if s.unsat.len() != 1 {
		t.Fatalf("unsat = %v, want exactly clause 0 unsatisfied", s.unsat.items)
	}
	s.unsatAppCount[1] = 1
	s.unsatAppCount[2] = 5
	s.unsatAppCount[3] = 1

	wc := weightConfig{threshold: 1000, p: 0.3, q: 0.7}
	g := newRNG(1)
	got := s.pickRandomWalk(wc, g)
	if got != 2 {
		t.Fatalf("pickRandomWalk() = %d, want 2 (highest unsat_app_count)", got)
	}
}

func TestPickRandomWalkTieBreaksByScoreThenTimeStamp(t *testing.T) {
	f := NewFormula(2)
	must(t, f.AddClause([]int{1, 2}))
	s := newTestState(t, f)
	s.init([]uint8{0, 0, 0})

	s.unsatAppCount[1] = 3
	s.unsatAppCount[2] = 3
	s.score[1] = 4
	s.score[2] = 4
	s.timeStamp[1] = 9
	s.timeStamp[2] = 2

	wc := weightConfig{threshold: 1000, p: 0.3, q: 0.7}
	g := newRNG(1)
	got := s.pickRandomWalk(wc, g)
	if got != 2 {
		t.Fatalf("pickRandomWalk() = %d, want 2 (oldest time_stamp wins final tie)", got)
	}
}

func TestPickDispatchesCCDFirst(t *testing.T) {
	f := NewFormula(2)
	must(t, f.AddClause([]int{1, 2}))
	s := newTestState(t, f)
	s.init([]uint8{0, 0, 0})

	s.goodVar.reset()
	s.goodVar.push(1)
	s.score[1] = 99

	wc := weightConfig{threshold: 1000, p: 0.3, q: 0.7}
	g := newRNG(1)
	got := s.pick(wc, true, g)
	if got != 1 {
		t.Fatalf("pick() = %d, want 1 (CCD tier should short-circuit)", got)
	}
}
