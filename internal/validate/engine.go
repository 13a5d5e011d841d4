package validate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Validator runs the validation pipeline. It is stateless across calls and
// safe for concurrent use; thresholds and lexicons are read-only constants.
type Validator struct {
	opts Options
}

// NewValidator creates a Validator. Zero fields in opts fall back to the
// engine defaults.
func NewValidator(opts Options) *Validator {
	return &Validator{opts: opts.withDefaults()}
}

// Options returns the effective options after defaulting.
func (v *Validator) Options() Options {
	return v.opts
}

// Validate runs the full pipeline over raw file bytes. It never returns an
// error: decode and parse failures, empty files, and checker faults all
// surface as findings inside the returned Result.
func (v *Validator) Validate(ctx context.Context, data []byte) *Result {
	table, encodingUsed, findings := decodeAndParse(data)
	summary := summarize(table, encodingUsed, len(data))

	if encodingUsed == "" {
		// No candidate produced a parseable table; checkers have nothing to
		// inspect.
		return aggregate(findings, summary, v.opts)
	}

	if table.Empty() {
		findings = append(findings, Finding{
			Line:     0,
			Code:     CodeEmptyFile,
			Message:  "file is completely empty",
			Severity: SeverityCritical,
		})
		return aggregate(findings, summary, v.opts)
	}

	findings = append(findings, v.runCheckers(ctx, table)...)
	return aggregate(findings, summary, v.opts)
}

// decodeAndParse tries each encoding candidate in priority order. A candidate
// that decodes but fails structural parsing records a Critical finding naming
// the encoding and the engine moves on to the next candidate; a candidate
// that cannot decode the bytes is skipped silently. When every candidate is
// exhausted a single file-level Critical finding is emitted.
func decodeAndParse(data []byte) (*Table, string, []Finding) {
	var findings []Finding

	for _, cand := range encodingCandidates {
		text, err := cand.decode(data)
		if err != nil {
			continue
		}

		table, perr := parseTable(text)
		if perr != nil {
			findings = append(findings, Finding{
				Line:     0,
				Code:     CodeDecodeFailure,
				Message:  fmt.Sprintf("failed to read file with %s: %v", cand.name, perr),
				Severity: SeverityCritical,
			})
			continue
		}

		return table, cand.name, findings
	}

	findings = append(findings, Finding{
		Line:     0,
		Code:     CodeDecodeFailure,
		Message:  "could not read file with any supported encoding",
		Severity: SeverityCritical,
	})
	return &Table{}, "", findings
}

// runCheckers fans the five checkers out over the immutable table and merges
// their findings back in fixed priority order, so the output is independent
// of goroutine scheduling.
func (v *Validator) runCheckers(ctx context.Context, t *Table) []Finding {
	cs := checkers()
	results := make([][]Finding, len(cs))

	g, _ := errgroup.WithContext(ctx)
	for i, c := range cs {
		i, c := i, c
		g.Go(func() error {
			results[i] = runChecker(c, t, v.opts)
			return nil
		})
	}
	// Checker faults surface as findings, never as errors.
	_ = g.Wait()

	var merged []Finding
	for _, fs := range results {
		merged = append(merged, fs...)
	}
	return merged
}
