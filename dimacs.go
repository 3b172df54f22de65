package ccanr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format into a *Formula ready
// for Propagate/Run.
//
// For convenience, a few non-standard variations are accepted:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - The problem line may be missing, in which case the variable count is
//     inferred from the highest variable id referenced.
func ParseDIMACS(r io.Reader) (*Formula, error) {
	var problem struct {
		vars    int
		clauses int
	}
	var clauseLits [][]int
	var clause []int
	maxVar := 0
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		// Some CNF formats attach extra data in a trailer after a line
		// containing a single %.
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauseLits) > 0 {
				return nil, errors.New("problem line appears after clauses")
			}
			if problem.vars > 0 {
				return nil, errors.New("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, fmt.Errorf("malformed problem line %q", line)
			}
			if fields[0] != "p" {
				return nil, fmt.Errorf("problem line starts with unexpected signifier %q", fields[0])
			}
			if fields[1] != "cnf" {
				return nil, fmt.Errorf("only cnf supported; got %q", fields[1])
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("malformed #vars in problem line: %s", err)
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("malformed #clauses in problem line: %s", err)
			}
			if problem.vars < 0 {
				return nil, fmt.Errorf("invalid #vars %d", problem.vars)
			}
			if problem.clauses < 0 {
				return nil, fmt.Errorf("invalid #clauses %d", problem.clauses)
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid variable: %s", err)
			}
			if n == 0 {
				clauseLits = append(clauseLits, clause)
				clause = nil
			} else {
				clause = append(clause, n)
				if abs(n) > maxVar {
					maxVar = abs(n)
				}
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauseLits = append(clauseLits, clause)
	}

	numVars := problem.vars
	if numVars == 0 {
		numVars = maxVar
	} else if maxVar > numVars {
		return nil, fmt.Errorf("formula contains var %d, but problem line asserts %d vars", maxVar, numVars)
	}
	if problem.clauses > 0 && len(clauseLits) != problem.clauses {
		return nil, fmt.Errorf("problem line specifies %d clauses, but there are %d", problem.clauses, len(clauseLits))
	}

	f := NewFormula(numVars)
	for _, cl := range clauseLits {
		if err := f.AddClause(cl); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// WriteDIMACS writes f back out in DIMACS CNF format, using the original
// (pre-propagation) clause set so the output is a faithful round-trip of
// what was ingested.
func WriteDIMACS(w io.Writer, f *Formula) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", f.NumVars, len(f.origClauseLits)); err != nil {
		return err
	}
	for _, cl := range f.origClauseLits {
		var b strings.Builder
		for _, l := range cl {
			if l.sense == 0 {
				b.WriteByte('-')
			}
			fmt.Fprintf(&b, "%d ", l.v)
		}
		b.WriteString("0\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
