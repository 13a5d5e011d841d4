package validate

import (
	"context"
	"strings"
	"testing"
	"time"
)

var reportClock = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func TestRenderReportDeterministic(t *testing.T) {
	data := []byte("id,id,amount\n1,2,30\n,,\n1,2,notanum\n")
	v := NewValidator(Options{})

	first := RenderReport(v.Validate(context.Background(), data), "input.csv", reportClock)
	for i := 0; i < 5; i++ {
		again := RenderReport(v.Validate(context.Background(), data), "input.csv", reportClock)
		if again != first {
			t.Fatalf("run %d: report text differs", i)
		}
	}
}

func TestRenderReportLayout(t *testing.T) {
	res := NewValidator(Options{}).Validate(context.Background(), []byte("a,b,a\n1,2,3\n"))
	report := RenderReport(res, "dataset.csv", reportClock)

	for _, want := range []string{
		"CSV Validation Report for: dataset.csv",
		"Generated on: 2025-03-14 09:26:53",
		"File Status: ✗ FAILED",
		"Total Rows: 1",
		"Total Columns: 3",
		"Encoding Used: utf-8",
		"CRITICAL ERRORS (Must be fixed):",
		"RECOMMENDATIONS:",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}

	if strings.Contains(report, "ERRORS (Should be fixed):") {
		t.Error("empty ERRORS section must be omitted")
	}
	if strings.Contains(report, "WARNINGS (Recommended to review):") {
		t.Error("empty WARNINGS section must be omitted")
	}
}

func TestRenderReportPassedStatus(t *testing.T) {
	res := NewValidator(Options{}).Validate(context.Background(), []byte("a,b\n1,2\n"))
	report := RenderReport(res, "ok.csv", reportClock)

	if !strings.Contains(report, "File Status: ✓ PASSED") {
		t.Error("valid file must render PASSED status")
	}
	if !strings.Contains(report, "Critical Errors: 0") {
		t.Error("summary must include the critical error count")
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4321, "-4,321"},
	}

	for _, tt := range tests {
		if got := groupDigits64(tt.in); got != tt.want {
			t.Errorf("groupDigits64(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
