package ccanr

import "testing"

func TestPropagateSimpleUnit(t *testing.T) {
	// {1} forces var 1 true.
	f := NewFormula(1)
	must(t, f.AddClause([]int{1}))
	f.BuildIndex()
	if n := Propagate(f); n != 0 {
		t.Fatalf("Propagate reported %d inconsistencies, want 0", n)
	}
	if !f.fixed[1] || f.fixedValue[1] != 1 {
		t.Fatalf("var 1 not fixed true: fixed=%v value=%v", f.fixed[1], f.fixedValue[1])
	}
}

func TestPropagateChain(t *testing.T) {
	// {1}, {-1,2}, {-2,3}, {-3,4}: chains to 1=2=3=4=true and deletes
	// every clause.
	f := NewFormula(4)
	must(t, f.AddClause([]int{1}))
	must(t, f.AddClause([]int{-1, 2}))
	must(t, f.AddClause([]int{-2, 3}))
	must(t, f.AddClause([]int{-3, 4}))
	f.BuildIndex()
	Propagate(f)

	for v := 1; v <= 4; v++ {
		if !f.fixed[v] || f.fixedValue[v] != 1 {
			t.Fatalf("var %d: fixed=%v value=%v, want fixed true", v, f.fixed[v], f.fixedValue[v])
		}
	}
	for c := range f.clauseDeleted {
		if !f.clauseDeleted[c] {
			t.Fatalf("clause %d survived propagation, want deleted", c)
		}
	}
}

func TestPropagateInconsistentUnitSet(t *testing.T) {
	f := NewFormula(1)
	must(t, f.AddClause([]int{1}))
	must(t, f.AddClause([]int{-1}))
	f.BuildIndex()
	if n := Propagate(f); n != 1 {
		t.Fatalf("Propagate reported %d inconsistencies, want 1", n)
	}
}

func TestPropagateShrinksLongerClause(t *testing.T) {
	// {1}, {-1,2,3}: the ternary clause shrinks to {2,3} rather than
	// being treated as forcing a new unit (it has 3 literals before
	// removal, landing at length 2 -- not the length-2-before-removal
	// trigger case).
	f := NewFormula(3)
	must(t, f.AddClause([]int{1}))
	must(t, f.AddClause([]int{-1, 2, 3}))
	f.BuildIndex()
	Propagate(f)

	if f.clauseDeleted[1] {
		t.Fatal("ternary clause was deleted; want it shrunk and kept")
	}
	if got := len(f.clauseLits[1]); got != 2 {
		t.Fatalf("clause 1 has %d literals after propagation, want 2", got)
	}
	if f.fixed[2] || f.fixed[3] {
		t.Fatal("vars 2,3 should remain unfixed (2 or 3 is still a choice)")
	}
}

func TestPropagateCascadingBinary(t *testing.T) {
	// {1}, {-1,2}: binary clause becomes unit on var 2 once var 1 is
	// fixed, per the length-2-before-removal trigger.
	f := NewFormula(2)
	must(t, f.AddClause([]int{1}))
	must(t, f.AddClause([]int{-1, 2}))
	f.BuildIndex()
	Propagate(f)

	if !f.fixed[2] || f.fixedValue[2] != 1 {
		t.Fatalf("var 2: fixed=%v value=%v, want fixed true", f.fixed[2], f.fixedValue[2])
	}
}
