package validate

import (
	"fmt"
	"strings"
	"testing"
)

// tableOf builds a Table from a header and raw rows. An empty string becomes
// a present empty cell; use absentCell to mark a truly missing cell.
func tableOf(columns []string, rows ...[]string) *Table {
	t := &Table{Columns: columns}
	for _, raw := range rows {
		row := make(Row, len(columns))
		for i := range columns {
			if i < len(raw) && raw[i] != absentCell {
				row[i] = Cell{Raw: raw[i], Valid: true}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

const absentCell = "\x00absent"

func TestCheckEmptyRows(t *testing.T) {
	table := tableOf([]string{"a", "b"},
		[]string{"1", "2"},
		[]string{"", " "},
		[]string{absentCell, absentCell},
		[]string{"3", "4"},
	)

	findings := checkEmptyRows(table, DefaultOptions())
	if len(findings) != 2 {
		t.Fatalf("findings = %d, want 2", len(findings))
	}
	if findings[0].Line != 3 || findings[1].Line != 4 {
		t.Errorf("lines = %d,%d, want 3,4", findings[0].Line, findings[1].Line)
	}
	for _, f := range findings {
		if f.Severity != SeverityError {
			t.Errorf("severity = %s, want error", f.Severity)
		}
		if f.Code != CodeEmptyRow {
			t.Errorf("code = %s, want %s", f.Code, CodeEmptyRow)
		}
	}
}

func TestCheckEmptyRowsOverflowWarning(t *testing.T) {
	var rows [][]string
	for i := 0; i < 15; i++ {
		rows = append(rows, []string{"", ""})
	}
	table := tableOf([]string{"a", "b"}, rows...)

	findings := checkEmptyRows(table, DefaultOptions())

	errors := 0
	warnings := 0
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	if errors != 10 {
		t.Errorf("error findings = %d, want 10", errors)
	}
	if warnings != 1 {
		t.Fatalf("warning findings = %d, want 1", warnings)
	}

	last := findings[len(findings)-1]
	if !strings.Contains(last.Message, "15") {
		t.Errorf("summary warning %q should name the total count", last.Message)
	}
}

func TestCheckDuplicateColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    int
	}{
		{"no duplicates", []string{"a", "b", "c"}, 0},
		{"one name twice", []string{"a", "b", "a"}, 1},
		{"one name three times", []string{"a", "a", "a"}, 1},
		{"two duplicated names", []string{"a", "b", "a", "b"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := tableOf(tt.columns)
			findings := checkDuplicateColumns(table, DefaultOptions())
			if len(findings) != tt.want {
				t.Fatalf("findings = %d, want %d", len(findings), tt.want)
			}
			for _, f := range findings {
				if f.Severity != SeverityCritical {
					t.Errorf("severity = %s, want critical", f.Severity)
				}
				if f.Line != 1 {
					t.Errorf("line = %d, want 1 (header)", f.Line)
				}
			}
		})
	}
}

func TestCheckSuspiciousValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"N/A", true},
		{"n/a", true},
		{"NULL", true},
		{"None", true},
		{"#N/A", true},
		{"#NULL!", true},
		{"undefined", true},
		{"", true},
		{" ", true},
		{"-", true},
		{"NaN", true},
		{"nan", true},
		{"0", false},
		{"n/a values", false},
		{"applicable", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.value), func(t *testing.T) {
			if got := isSuspicious(tt.value); got != tt.want {
				t.Errorf("isSuspicious(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestCheckSuspiciousValuesCapPerColumn(t *testing.T) {
	table := tableOf([]string{"a", "b"},
		[]string{"N/A", "1"},
		[]string{"null", "2"},
		[]string{"-", "N/A"},
		[]string{"NaN", "4"},
		[]string{"none", "5"},
	)

	findings := checkSuspiciousValues(table, DefaultOptions())

	perColumn := map[string]int{}
	for _, f := range findings {
		perColumn[f.Column]++
		if f.Severity != SeverityWarning {
			t.Errorf("severity = %s, want warning (never error or critical)", f.Severity)
		}
	}
	if perColumn["a"] != 3 {
		t.Errorf("column a findings = %d, want cap of 3", perColumn["a"])
	}
	if perColumn["b"] != 1 {
		t.Errorf("column b findings = %d, want 1", perColumn["b"])
	}
}

func TestCheckEncodingArtifacts(t *testing.T) {
	table := tableOf([]string{"a", "b"},
		[]string{"fine", "als�o bad"},
		[]string{"�broken", "also�"},
	)

	findings := checkEncodingArtifacts(table, DefaultOptions())
	if len(findings) != 2 {
		t.Fatalf("findings = %d, want one per affected column", len(findings))
	}
	if findings[0].Column != "a" || findings[0].Line != 3 {
		t.Errorf("first finding at column %q line %d, want a/3", findings[0].Column, findings[0].Line)
	}
	if findings[1].Column != "b" || findings[1].Line != 2 {
		t.Errorf("second finding at column %q line %d, want b/2", findings[1].Column, findings[1].Line)
	}
}

func TestCheckEncodingArtifactsScanWindow(t *testing.T) {
	var rows [][]string
	for i := 0; i < 150; i++ {
		rows = append(rows, []string{"clean"})
	}
	rows = append(rows, []string{"dirty�"})
	table := tableOf([]string{"a"}, rows...)

	findings := checkEncodingArtifacts(table, DefaultOptions())
	if len(findings) != 0 {
		t.Errorf("artifact beyond the 100-row window must not be reported, got %d findings", len(findings))
	}
}

func TestCheckEncodingArtifactsValueTruncated(t *testing.T) {
	long := strings.Repeat("x", 80) + "�"
	table := tableOf([]string{"a"}, []string{long})

	findings := checkEncodingArtifacts(table, DefaultOptions())
	if len(findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(findings))
	}
	if got := findings[0].Value; len([]rune(got)) != maxValueDisplay+3 || !strings.HasSuffix(got, "...") {
		t.Errorf("value preview %q must be truncated to %d runes with ellipsis", got, maxValueDisplay)
	}
}
