package validate

// report.go renders the human-readable validation report. For fixed input and
// a fixed timestamp the output is byte-identical across runs, which lets the
// hosting application persist and diff reports safely.

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var recommendations = []string{
	"- Fix all critical errors before proceeding",
	"- Review and address regular errors for better data quality",
	"- Consider warnings for optimal data processing",
	"- Ensure consistent data types within columns",
	"- Remove or properly handle missing/null values",
	"- Use consistent date formats if applicable",
	"- Avoid special characters that might cause encoding issues",
}

// RenderReport produces the plain-text detailed report for a Result.
// generatedAt is injected by the caller so rendering stays deterministic.
func RenderReport(res *Result, filename string, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CSV Validation Report for: %s\n", filename)
	fmt.Fprintf(&b, "Generated on: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n\n")

	status := "✓ PASSED"
	if !res.Valid {
		status = "✗ FAILED"
	}

	encoding := res.Summary.EncodingUsed
	if encoding == "" {
		encoding = "Unknown"
	}

	b.WriteString("SUMMARY:\n")
	fmt.Fprintf(&b, "File Status: %s\n", status)
	fmt.Fprintf(&b, "Total Rows: %s\n", groupDigits(res.Summary.TotalRows))
	fmt.Fprintf(&b, "Total Columns: %d\n", res.Summary.TotalColumns)
	fmt.Fprintf(&b, "File Size: %s bytes\n", groupDigits64(res.Summary.FileSizeBytes))
	fmt.Fprintf(&b, "Encoding Used: %s\n", encoding)
	fmt.Fprintf(&b, "Missing Values: %s\n", groupDigits(res.Summary.MissingValues))
	fmt.Fprintf(&b, "Duplicate Rows: %s\n", groupDigits(res.Summary.DuplicateRows))
	fmt.Fprintf(&b, "Critical Errors: %d\n", res.CriticalCount())
	fmt.Fprintf(&b, "Errors: %d\n", res.ErrorCount())
	fmt.Fprintf(&b, "Warnings: %d\n", len(res.Warnings))
	b.WriteString("\n")

	var criticals, errors []Finding
	for _, f := range res.Errors {
		if f.Severity == SeverityCritical {
			criticals = append(criticals, f)
		} else {
			errors = append(errors, f)
		}
	}

	renderSection(&b, "CRITICAL ERRORS (Must be fixed):", 40, criticals)
	renderSection(&b, "ERRORS (Should be fixed):", 30, errors)
	renderSection(&b, "WARNINGS (Recommended to review):", 35, res.Warnings)

	b.WriteString("RECOMMENDATIONS:\n")
	b.WriteString(strings.Join(recommendations, "\n"))
	b.WriteString("\n")

	return b.String()
}

// renderSection writes one severity section. Empty sections are omitted
// entirely.
func renderSection(b *strings.Builder, title string, ruleWidth int, findings []Finding) {
	if len(findings) == 0 {
		return
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", ruleWidth))
	b.WriteString("\n")
	for i, f := range findings {
		fmt.Fprintf(b, "%d. Line %d, Column '%s':\n", i+1, f.Line, f.Column)
		fmt.Fprintf(b, "   %s\n", f.Message)
		if f.Value != "" {
			fmt.Fprintf(b, "   Value: '%s'\n", f.Value)
		}
		b.WriteString("\n")
	}
}

func groupDigits(n int) string {
	return groupDigits64(int64(n))
}

// groupDigits64 inserts thousands separators, e.g. 1234567 -> "1,234,567".
func groupDigits64(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
