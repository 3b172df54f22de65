package ccanr

// buildNeighbors constructs the neighbor graph: for each non-fixed
// variable v, the set of distinct non-fixed variables u≠v that share at
// least one non-deleted clause with v. Must run after propagation, once,
// before search begins.
//
// Grounded on cca.h's build_neighbor_relation: a scratch presence array of
// size NumVars+1 is reused across variables (reset in the loop body), so
// the whole pass costs O(sum of clause lengths touching each v), not
// O(NumVars^2).
func buildNeighbors(f *Formula) [][]int {
	neighbors := make([][]int, f.NumVars+1)
	seen := make([]bool, f.NumVars+1)

	for v := 1; v <= f.NumVars; v++ {
		if f.fixed[v] {
			continue
		}
		seen[v] = true
		var touched []int
		for _, l := range f.varLits[v] {
			if f.clauseDeleted[l.clause] {
				continue
			}
			for _, cl := range f.clauseLits[l.clause] {
				if !seen[cl.v] {
					seen[cl.v] = true
					touched = append(touched, cl.v)
				}
			}
		}
		var ns []int
		for _, u := range touched {
			if !f.fixed[u] {
				ns = append(ns, u)
			}
		}
		neighbors[v] = ns

		seen[v] = false
		for _, u := range touched {
			seen[u] = false
		}
	}
	return neighbors
}
