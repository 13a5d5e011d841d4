package validate

import "fmt"

// A Checker is one independent analysis pass over an immutable Table.
// Checkers are pure: they share no state, do not depend on each other's
// output, and may run in any order or concurrently.
type Checker struct {
	Name  string
	Check func(t *Table, opts Options) []Finding
}

// checkers returns the engine's checkers in priority order. Aggregated output
// preserves this order regardless of execution interleaving.
func checkers() []Checker {
	return []Checker{
		{Name: "empty rows", Check: checkEmptyRows},
		{Name: "duplicate columns", Check: checkDuplicateColumns},
		{Name: "type consistency", Check: checkTypeConsistency},
		{Name: "suspicious values", Check: checkSuspiciousValues},
		{Name: "encoding artifacts", Check: checkEncodingArtifacts},
	}
}

// runChecker executes a single checker with fault isolation: a panic is
// recovered at this boundary and converted into a Critical finding naming the
// checker, so one failing pass never aborts the overall validation.
func runChecker(c Checker, t *Table, opts Options) (findings []Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []Finding{{
				Line:     0,
				Code:     CodeCheckerFailure,
				Message:  fmt.Sprintf("%s check failed: %v", c.Name, r),
				Severity: SeverityCritical,
			}}
		}
	}()
	return c.Check(t, opts)
}
