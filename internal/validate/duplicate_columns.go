package validate

import "fmt"

// checkDuplicateColumns emits one Critical finding per distinct duplicated
// column name, not per occurrence: a header of a,b,a yields exactly one
// finding. Findings follow first-occurrence order for determinism.
func checkDuplicateColumns(t *Table, _ Options) []Finding {
	counts := make(map[string]int, len(t.Columns))
	for _, name := range t.Columns {
		counts[name]++
	}

	var findings []Finding
	reported := make(map[string]bool)
	for _, name := range t.Columns {
		if counts[name] < 2 || reported[name] {
			continue
		}
		reported[name] = true
		findings = append(findings, Finding{
			Line:     1,
			Column:   name,
			Code:     CodeDuplicateColumn,
			Message:  fmt.Sprintf("duplicate column name detected: %q", name),
			Value:    truncateValue(name),
			Severity: SeverityCritical,
		})
	}
	return findings
}
