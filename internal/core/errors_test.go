package core

import (
	"errors"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "connection refused maps correctly",
			err:         errors.New("dial tcp: connection refused"),
			wantCode:    "DB001",
			wantMessage: "Unable to connect to database",
		},
		{
			name:        "file too large maps correctly",
			err:         errors.New("file too large: 200MB exceeds limit"),
			wantCode:    "FILE001",
			wantMessage: "File exceeds the maximum size limit",
		},
		{
			name:        "max bytes reader message maps to same code",
			err:         errors.New("http: request body too large"),
			wantCode:    "FILE001",
			wantMessage: "File exceeds the maximum size limit",
		},
		{
			name:        "dataset not found maps correctly",
			err:         ErrDatasetNotFound,
			wantCode:    "DS001",
			wantMessage: "Dataset not found",
		},
		{
			name:        "report not found maps correctly",
			err:         ErrReportNotFound,
			wantCode:    "DS002",
			wantMessage: "Validation report not found",
		},
		{
			name:        "invalid identifier maps correctly",
			err:         ErrInvalidID,
			wantCode:    "DS003",
			wantMessage: "The provided ID is not valid",
		},
		{
			name:        "busy limiter maps correctly",
			err:         ErrTooManyValidations,
			wantCode:    "UPL001",
			wantMessage: "System is busy processing other files",
		},
		{
			name:        "context deadline wins over generic timeout",
			err:         errors.New("context deadline exceeded"),
			wantCode:    "UPL003",
			wantMessage: "Request timed out",
		},
		{
			name:        "generic timeout maps correctly",
			err:         errors.New("i/o timeout"),
			wantCode:    "DB003",
			wantMessage: "Operation timed out",
		},
		{
			name:        "rate limit maps correctly",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
		{
			name:        "unknown error falls back to ERR000",
			err:         errors.New("something completely unexpected"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError(%v).Message = %q, want %q", tt.err, got.Message, tt.wantMessage)
			}
		})
	}
}

func TestMapErrorIsCaseInsensitive(t *testing.T) {
	got := MapError(errors.New("DIAL TCP: CONNECTION REFUSED"))
	if got.Code != "DB001" {
		t.Errorf("Code = %q, want DB001", got.Code)
	}
}

func TestFormatUserError(t *testing.T) {
	msg := MapError(ErrDatasetNotFound)
	out := FormatUserError(msg)

	for _, want := range []string{"Dataset not found", "DS001"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatUserError = %q, missing %q", out, want)
		}
	}

	if out := FormatUserError(UserMessage{}); out != "" {
		t.Errorf("FormatUserError(zero) = %q, want empty", out)
	}
}
