package validate

import "strings"

// Summary holds file-level statistics computed during aggregation.
type Summary struct {
	TotalRows     int    `json:"total_rows"`
	TotalColumns  int    `json:"total_columns"`
	EncodingUsed  string `json:"encoding_used"`
	FileSizeBytes int64  `json:"file_size_bytes"`
	MissingValues int    `json:"missing_values"`
	DuplicateRows int    `json:"duplicate_rows"`
}

// Result is the aggregated outcome of one validation call. Errors holds
// Critical and Error findings, Warnings holds Warning findings; both lists
// are capped by Options but Valid reflects every finding, capped or not.
type Result struct {
	Valid    bool      `json:"valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Summary  Summary   `json:"summary"`
}

// CriticalCount returns how many of the reported errors are Critical.
func (r *Result) CriticalCount() int {
	n := 0
	for _, f := range r.Errors {
		if f.Severity == SeverityCritical {
			n++
		}
	}
	return n
}

// ErrorCount returns how many of the reported errors have Error severity.
func (r *Result) ErrorCount() int {
	return len(r.Errors) - r.CriticalCount()
}

// aggregate merges findings (already in checker-priority order) into a
// Result. Valid is true iff no finding has Critical severity; Error findings
// are reported but do not invalidate the file on their own.
func aggregate(findings []Finding, summary Summary, opts Options) *Result {
	res := &Result{
		Valid:    true,
		Errors:   []Finding{},
		Warnings: []Finding{},
		Summary:  summary,
	}

	for _, f := range findings {
		switch f.Severity {
		case SeverityCritical:
			res.Valid = false
			if len(res.Errors) < opts.MaxErrors {
				res.Errors = append(res.Errors, f)
			}
		case SeverityError:
			if len(res.Errors) < opts.MaxErrors {
				res.Errors = append(res.Errors, f)
			}
		case SeverityWarning:
			if len(res.Warnings) < opts.MaxWarnings {
				res.Warnings = append(res.Warnings, f)
			}
		}
	}

	return res
}

// cellSep and nullMarker build an unambiguous per-row key for duplicate
// detection; a null cell must not collide with an empty string.
const (
	cellSep    = "\x1f"
	nullMarker = "\x00"
)

// summarize computes the file-level statistics. Missing values count cells
// that are absent or blank after trimming; duplicate rows count rows whose
// full cell content equals an earlier row.
func summarize(t *Table, encoding string, size int) Summary {
	missing := 0
	duplicates := 0
	seen := make(map[string]struct{}, len(t.Rows))

	for _, row := range t.Rows {
		var key strings.Builder
		for _, c := range row {
			if c.IsBlank() {
				missing++
			}
			if c.Valid {
				key.WriteString(c.Raw)
			} else {
				key.WriteString(nullMarker)
			}
			key.WriteString(cellSep)
		}
		k := key.String()
		if _, ok := seen[k]; ok {
			duplicates++
		} else {
			seen[k] = struct{}{}
		}
	}

	return Summary{
		TotalRows:     len(t.Rows),
		TotalColumns:  len(t.Columns),
		EncodingUsed:  encoding,
		FileSizeBytes: int64(size),
		MissingValues: missing,
		DuplicateRows: duplicates,
	}
}
