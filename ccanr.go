// Package ccanr implements CCAnr: Configuration Checking with Aspiration
// plus Smoothed Weighting, a stochastic local-search algorithm for
// Boolean Satisfiability on conjunctive-normal-form formulas.
//
// Given a Formula and a starting assignment, Solve repeatedly flips one
// variable at a time, guided by a scoring function and a
// configuration-change heuristic, until it finds a satisfying assignment
// or exhausts its try/stagnation budget. It never proves unsatisfiability:
// a return of Unknown means "not found", not "none exists".
package ccanr

import "context"

// Verdict is the solver's answer.
type Verdict int

const (
	// Unknown means the solver neither found a satisfying assignment nor
	// proved one doesn't exist.
	Unknown Verdict = iota
	// Satisfiable means Result.Assignment satisfies every clause of the
	// input formula.
	Satisfiable
)

func (v Verdict) String() string {
	if v == Satisfiable {
		return "SAT"
	}
	return "UNKNOWN"
}

// Config holds every tunable from the algorithm, all optional: the zero
// value is not necessarily usable (see DefaultConfig).
type Config struct {
	Seed             int64   // RNG seed
	LSNoImprovSteps  int     // stagnation budget per try
	SWTThreshold     int     // smoothing trigger on ave_weight
	SWTP             float64 // weight decay factor in smoothing
	SWTQ             float64 // weight-floor factor
	Aspiration       bool    // enable the aspiration picker tier
	MaxTries         int     // number of restarts (0 = one try)
	MaxFlips         int     // per-try hard cap; currently unused, stagnation drives termination

	// Trace, if non-nil, is called at try/restart boundaries only (never
	// from inside flip or pick) with a human-readable progress line. It
	// exists so the core has no direct dependency on any output stream;
	// cmd/ccanr wires it to stderr under -v.
	Trace func(format string, args ...any)
}

// DefaultConfig returns the tuning the reference CCAnr implementation
// ships with.
func DefaultConfig() Config {
	return Config{
		Seed:            1,
		LSNoImprovSteps: 200000,
		SWTThreshold:    50,
		SWTP:            0.3,
		SWTQ:            0.7,
		Aspiration:      false,
		MaxTries:        0,
		MaxFlips:        1 << 30,
	}
}

// Stats are informational counters about a Solve/Run call.
type Stats struct {
	Tries                  int
	Steps                  int
	SolvedBySimplification bool
	InconsistentUnits      int
	VerificationFailures   int
}

// Result is what Solve/Run returns.
type Result struct {
	Verdict    Verdict
	Assignment []uint8 // valid iff Verdict == Satisfiable; len == f.NumVars+1, index 0 unused
	Stats      Stats
}

// Solve is the simple entry point: given a formula and a seed assignment,
// it returns a satisfying assignment or Unknown. Equivalent to
// Run(context.Background(), f, seed, cfg).
func Solve(f *Formula, seed []uint8, cfg Config) Result {
	return Run(context.Background(), f, seed, cfg)
}

// Run is the search driver: it preprocesses the formula once, then
// performs up to MaxTries+1 tries, each a fresh init followed by
// local_search, until one succeeds and verifies or the budget is
// exhausted. ctx is polled once per flip step (never inside flip itself);
// when it's done, Run returns Unknown immediately.
//
// Grounded on cca.h's run(int *soln, int seedp).
func Run(ctx context.Context, f *Formula, seed []uint8, cfg Config) Result {
	f.BuildIndex()
	inconsistent := Propagate(f)
	neighbors := buildNeighbors(f)
	st := newState(f, neighbors)
	g := newRNG(cfg.Seed)

	wc := weightConfig{threshold: cfg.SWTThreshold, p: cfg.SWTP, q: cfg.SWTQ}
	wc.scaleAve = int(float64(wc.threshold+1) * wc.q)

	stats := Stats{InconsistentUnits: inconsistent}
	if cfg.Trace != nil {
		cfg.Trace("ccanr: vars=%d clauses=%d ratio=%.3f aspiration=%v",
			f.NumVars, f.NumClauses, f.ratio, cfg.Aspiration)
	}

	initial := make([]uint8, f.NumVars+1)
	copy(initial, seed)
	for v := 1; v <= f.NumVars; v++ {
		if f.fixed[v] {
			initial[v] = f.fixedValue[v]
		}
	}

	stop := func() bool { return ctx.Err() != nil }

	for tries := 0; tries <= cfg.MaxTries; tries++ {
		if stop() {
			break
		}
		stats.Tries = tries + 1
		st.init(initial)
		sat := st.localSearch(cfg.LSNoImprovSteps, wc, cfg.Aspiration, g, stop)
		stats.Steps += st.step

		if sat {
			final := assembleAssignment(f, st)
			if ok, _ := Verify(f, final); ok {
				stats.SolvedBySimplification = allClausesDeleted(f)
				if cfg.Trace != nil {
					cfg.Trace("ccanr: try %d SAT after %d steps", tries+1, st.step)
				}
				return Result{Verdict: Satisfiable, Assignment: final, Stats: stats}
			}
			stats.VerificationFailures++
			if cfg.Trace != nil {
				cfg.Trace("ccanr: try %d produced an assignment that fails Verify; retrying", tries+1)
			}
		}
	}
	return Result{Verdict: Unknown, Stats: stats}
}

func allClausesDeleted(f *Formula) bool {
	for _, deleted := range f.clauseDeleted {
		if !deleted {
			return false
		}
	}
	return true
}

func assembleAssignment(f *Formula, st *state) []uint8 {
	out := make([]uint8, f.NumVars+1)
	for v := 1; v <= f.NumVars; v++ {
		if f.fixed[v] {
			out[v] = f.fixedValue[v]
		} else {
			out[v] = st.assignment[v]
		}
	}
	return out
}
