package ccanr

// weightConfig bundles the SWT (Smoothed Weighting) tuning parameters from
// the algorithm's tuning table, threaded into the weight manager.
type weightConfig struct {
	threshold int     // swt_threshold
	p         float64 // swt_p: decay factor
	q         float64 // swt_q: floor factor
	scaleAve  int     // (threshold+1)*q, precomputed once per run
}

// updateWeights bumps the weight of every currently-unsatisfied
// clause, folds unsat_app_count into score for every variable touched by
// an unsat clause, and drives the smoothing cadence via delta_total_weight.
//
// Grounded on cca.h's update_clause_weights. Called by the random-walk
// picker tier before it samples a clause.
func (s *state) updateWeights(wc weightConfig) {
	for _, c := range s.unsat.items {
		s.clauseWeight[c]++
	}

	for _, v := range s.unsatVar.items {
		s.score[v] += s.unsatAppCount[v]
		if s.score[v] > 0 && s.confChange[v] && !s.goodVar.has(v) {
			s.goodVar.push(v)
		}
	}

	s.deltaWeight += s.unsat.len()
	for s.deltaWeight >= s.f.NumClauses && s.f.NumClauses > 0 {
		s.deltaWeight -= s.f.NumClauses
		s.aveWeight++
	}
	if s.aveWeight > wc.threshold {
		s.smoothWeights(wc)
	}
}

// smoothWeights rescales every clause weight toward the running
// average (w ← max(1, w·p + scale_ave)) and recomputes score from scratch.
//
// Design note: this intentionally does NOT rebuild
// goodVar. Any variable whose score just became positive here is picked up
// lazily — either by a later flip of one of its neighbors (flip pushes
// positive-score neighbors; its top-down sweep only removes) or,
// authoritatively, by the next updateWeights call's scan over unsatVar. This mirrors cca.h's
// smooth_clause_weights exactly; fixing it would diverge from the
// reference algorithm's behavior.
func (s *state) smoothWeights(wc weightConfig) {
	f := s.f
	for v := 1; v <= f.NumVars; v++ {
		if !f.fixed[v] {
			s.score[v] = 0
		}
	}

	newTotal := 0
	for c := 0; c < f.NumClauses; c++ {
		if f.clauseDeleted[c] {
			continue
		}
		w := int(float64(s.clauseWeight[c])*wc.p) + wc.scaleAve
		if w < 1 {
			w = 1
		}
		s.clauseWeight[c] = w
		newTotal += w

		switch s.satCount[c] {
		case 0:
			for _, l := range f.clauseLits[c] {
				s.score[l.v] += w
			}
		case 1:
			s.score[s.satVar[c]] -= w
		}
	}
	if f.NumClauses > 0 {
		s.aveWeight = newTotal / f.NumClauses
	}

	for v := 1; v <= f.NumVars; v++ {
		if f.fixed[v] {
			s.score[v] = fixedScoreSentinel
		}
	}
}
