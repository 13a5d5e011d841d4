package validate

import (
	"fmt"
	"strings"
)

// suspiciousTokens is the fixed lexicon of null-like placeholder values.
// Matching is case-insensitive after trimming, so a lone space collapses to
// the empty-string entry. The lexicon is read-only and shared safely by all
// validation calls.
var suspiciousTokens = map[string]struct{}{
	"n/a":       {},
	"null":      {},
	"none":      {},
	"#n/a":      {},
	"#null!":    {},
	"undefined": {},
	"":          {},
	"-":         {},
	"nan":       {},
}

func isSuspicious(value string) bool {
	_, ok := suspiciousTokens[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// checkSuspiciousValues warns about cells holding null-like tokens. These are
// never Errors: a file full of "N/A" is ingestible, just worth reviewing.
// Warnings are capped per column.
func checkSuspiciousValues(t *Table, opts Options) []Finding {
	var findings []Finding
	for col := range t.Columns {
		perColumn := 0
		for i, row := range t.Rows {
			cell := row[col]
			if !cell.Valid || !isSuspicious(cell.Raw) {
				continue
			}
			perColumn++
			if perColumn > opts.SuspiciousPerColumn {
				break
			}
			findings = append(findings, Finding{
				Line:     dataLine(i),
				Column:   t.Columns[col],
				Code:     CodeSuspiciousValue,
				Message:  fmt.Sprintf("suspicious null-like value found: %q", cell.Raw),
				Value:    truncateValue(cell.Raw),
				Severity: SeverityWarning,
			})
		}
	}
	return findings
}
