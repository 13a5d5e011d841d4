// Package validate implements the tabular-file validation engine.
//
// Given raw bytes claiming to be a delimited dataset, the engine decides
// whether the file is safe to ingest, enumerates structural and data-quality
// defects with severities, and renders a deterministic plain-text report.
// It owns no storage and no network behavior: bytes in, Result plus report
// text out.
//
// # Pipeline
//
// A validation call is a single terminating pipeline:
//
//	bytes -> decode -> parse -> check (x5, parallel) -> aggregate -> Result
//
// Decoding tries a fixed priority list of encodings; the first candidate that
// both decodes the byte stream and yields a parseable table wins. The five
// checkers are pure functions over the immutable [Table] and run concurrently;
// the aggregator merges their findings in fixed checker-priority order so
// output is identical regardless of scheduling.
//
// # Severities
//
// Findings carry one of three severities:
//
//   - Critical: the file is unusable; forces Valid=false
//   - Error: a data-quality defect, reported but not invalidating on its own
//   - Warning: advisory only
//
// A panic inside a single checker is recovered at the checker boundary and
// converted into a Critical finding naming the checker; the remaining checkers
// still run. [Validator.Validate] never fails: every failure mode is reported
// inside the returned [Result].
package validate
