package validate

import (
	"strings"
	"unicode/utf8"
)

// checkEncodingArtifacts scans the first ArtifactScanRows rows of each column
// for replacement-character markers or byte sequences that no longer re-encode
// cleanly, both signs the file was corrupted by an earlier encoding round
// trip. At most one Warning is emitted per column, carrying a truncated value
// preview.
func checkEncodingArtifacts(t *Table, opts Options) []Finding {
	var findings []Finding
	for col := range t.Columns {
		limit := opts.ArtifactScanRows
		if limit > len(t.Rows) {
			limit = len(t.Rows)
		}
		for i := 0; i < limit; i++ {
			cell := t.Rows[i][col]
			if !cell.Valid || !hasEncodingArtifact(cell.Raw) {
				continue
			}
			findings = append(findings, Finding{
				Line:     dataLine(i),
				Column:   t.Columns[col],
				Code:     CodeEncodingArtifact,
				Message:  "possible encoding issue or special characters detected",
				Value:    truncateValue(cell.Raw),
				Severity: SeverityWarning,
			})
			break
		}
	}
	return findings
}

func hasEncodingArtifact(s string) bool {
	return strings.ContainsRune(s, utf8.RuneError) || !utf8.ValidString(s)
}
