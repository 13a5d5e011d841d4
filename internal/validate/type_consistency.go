package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Heuristic thresholds: a column is only flagged when the sample is large
// enough to be meaningful and numerics clearly dominate. This is not a strict
// schema check.
const (
	typeCheckMinSample = 10
	numericDominance   = 0.7
)

// datePatterns are the four accepted date shapes. Prefix matching mirrors how
// spreadsheet exports often append time components.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`),
	regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`),
	regexp.MustCompile(`^\d{4}/\d{2}/\d{2}`),
}

// checkTypeConsistency samples the first TypeSampleSize non-null cells per
// column and classifies each as numeric, date-like, or textual. When numerics
// exceed the dominance threshold but textual values exist, the offending
// textual values are reported as Errors, capped per column.
func checkTypeConsistency(t *Table, opts Options) []Finding {
	var findings []Finding
	for col := range t.Columns {
		findings = append(findings, checkColumnTypes(t, col, opts)...)
	}
	return findings
}

func checkColumnTypes(t *Table, col int, opts Options) []Finding {
	type offender struct {
		line  int
		value string
	}

	var (
		numeric, dates, textual int
		offenders               []offender
	)

	sampled := 0
	for i, row := range t.Rows {
		if sampled >= opts.TypeSampleSize {
			break
		}
		cell := row[col]
		if cell.IsBlank() {
			continue
		}
		sampled++

		value := strings.TrimSpace(cell.Raw)
		// Null-like tokens are a separate checker's concern and count toward
		// no class here.
		if isSuspicious(value) {
			continue
		}

		switch {
		case isNumeric(value):
			numeric++
		case isDateLike(value):
			dates++
		default:
			textual++
			if len(offenders) < opts.TypeFindingsPerColumn {
				offenders = append(offenders, offender{line: dataLine(i), value: value})
			}
		}
	}

	classified := numeric + dates + textual
	if classified <= typeCheckMinSample {
		return nil
	}
	if float64(numeric) <= numericDominance*float64(classified) || textual == 0 {
		return nil
	}

	findings := make([]Finding, 0, len(offenders))
	for _, o := range offenders {
		findings = append(findings, Finding{
			Line:     o.line,
			Column:   t.Columns[col],
			Code:     CodeTypeMismatch,
			Message:  fmt.Sprintf("non-numeric value %q in predominantly numeric column", o.value),
			Value:    truncateValue(o.value),
			Severity: SeverityError,
		})
	}
	return findings
}

// isNumeric accepts integers, decimals, and scientific notation after
// stripping thousands separators.
func isNumeric(s string) bool {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isDateLike(s string) bool {
	for _, p := range datePatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
