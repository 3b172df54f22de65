// Command ccanr is a toy CLI wrapper around the ccanr stochastic
// local-search SAT solver.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/kr/pretty"

	"github.com/gosls/ccanr"
)

func main() {
	log.SetFlags(0)
	verbose := flag.Bool("v", false, "verbose mode")
	seed := flag.Int64("seed", 1, "RNG seed")
	tries := flag.Int("tries", 0, "number of restarts (0 = one try)")
	noImprov := flag.Int("no-improv", 200000, "stagnation budget per try")
	aspiration := flag.Bool("aspiration", false, "enable the aspiration picker tier")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `ccanr: a toy stochastic local-search SAT solver.

Usage:

  ccanr [-v] [-seed N] [-tries N] [-no-improv N] [-aspiration] [input.cnf]

ccanr reads a single problem specification in the DIMACS CNF format and
attempts to find a satisfying assignment by local search. It writes the
output in the conventional way: either the first line is UNKNOWN, or else
the first line is SAT and the second line gives the assignment in the
same format as an input clause.

ccanr never proves unsatisfiability: UNKNOWN means "not found", not "none
exists".

If no input file is given, ccanr reads from standard input.
`)
	}
	flag.Parse()

	var r io.Reader = os.Stdin
	if flag.NArg() >= 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	formula, err := ccanr.ParseDIMACS(r)
	if err != nil {
		log.Fatalln("Error reading input file as DIMACS CNF:", err)
	}

	cfg := ccanr.DefaultConfig()
	cfg.Seed = *seed
	cfg.MaxTries = *tries
	cfg.LSNoImprovSteps = *noImprov
	cfg.Aspiration = *aspiration
	if *verbose {
		cfg.Trace = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	initialSeed := randomSeedAssignment(formula.NumVars, *seed)
	result := ccanr.Run(context.Background(), formula, initialSeed, cfg)

	if *verbose {
		pretty.Fprintf(os.Stderr, "%# v\n", result.Stats)
	}

	if result.Verdict != ccanr.Satisfiable {
		fmt.Println("UNKNOWN")
		return
	}
	fmt.Println("SAT")
	for v := 1; v <= formula.NumVars; v++ {
		if v > 1 {
			fmt.Print(" ")
		}
		if result.Assignment[v] == 1 {
			fmt.Print(v)
		} else {
			fmt.Print(-v)
		}
	}
	fmt.Println()
}

// randomSeedAssignment builds a uniformly random starting assignment, the
// way a caller without its own heuristic initialization would.
func randomSeedAssignment(numVars int, seed int64) []uint8 {
	rnd := rand.New(rand.NewSource(seed))
	out := make([]uint8, numVars+1)
	for v := 1; v <= numVars; v++ {
		out[v] = uint8(rnd.Intn(2))
	}
	return out
}
