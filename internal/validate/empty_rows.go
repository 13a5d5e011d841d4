package validate

import "fmt"

// checkEmptyRows flags rows whose every cell is absent or blank. The first
// EmptyRowLimit occurrences each get an Error finding; any remainder
// collapses into a single summary Warning so a file of blank lines cannot
// flood the result.
func checkEmptyRows(t *Table, opts Options) []Finding {
	var findings []Finding
	total := 0

	for i, row := range t.Rows {
		if !rowEmpty(row) {
			continue
		}
		total++
		if total <= opts.EmptyRowLimit {
			findings = append(findings, Finding{
				Line:     dataLine(i),
				Column:   "all",
				Code:     CodeEmptyRow,
				Message:  "completely empty row detected",
				Severity: SeverityError,
			})
		}
	}

	if total > opts.EmptyRowLimit {
		findings = append(findings, Finding{
			Line:     0,
			Code:     CodeEmptyRowTotal,
			Message:  fmt.Sprintf("found %d empty rows in total", total),
			Severity: SeverityWarning,
		})
	}

	return findings
}

func rowEmpty(row Row) bool {
	for _, c := range row {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}
