package validate

// Severity classifies how serious a finding is.
//
//   - Critical findings make the file unusable and force Valid=false.
//   - Error findings are data-quality defects that are reported but do not
//     by themselves invalidate the file.
//   - Warning findings are advisory only.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
)

// Finding codes for support reference. Clients can branch on these instead
// of parsing messages.
const (
	CodeDecodeFailure    = "DECODE_FAILURE"
	CodeEmptyFile        = "EMPTY_FILE"
	CodeEmptyRow         = "EMPTY_ROW"
	CodeEmptyRowTotal    = "EMPTY_ROW_TOTAL"
	CodeDuplicateColumn  = "DUPLICATE_COLUMN"
	CodeTypeMismatch     = "TYPE_MISMATCH"
	CodeSuspiciousValue  = "SUSPICIOUS_VALUE"
	CodeEncodingArtifact = "ENCODING_ARTIFACT"
	CodeCheckerFailure   = "CHECKER_FAILURE"
)

// Finding is a single detected issue with severity, location, and message.
// Line is 1-based: the header is line 1, the first data row is line 2, and
// 0 means the finding is file-level rather than row-specific.
type Finding struct {
	Line     int      `json:"line"`
	Column   string   `json:"column,omitempty"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Value    string   `json:"value,omitempty"`
	Severity Severity `json:"severity"`
}

// maxValueDisplay bounds how much of an offending cell value is carried in a
// finding. Longer values are cut and marked with an ellipsis.
const maxValueDisplay = 50

// truncateValue shortens a raw cell value for display.
func truncateValue(s string) string {
	runes := []rune(s)
	if len(runes) <= maxValueDisplay {
		return s
	}
	return string(runes[:maxValueDisplay]) + "..."
}
