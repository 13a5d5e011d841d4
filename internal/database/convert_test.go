package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func TestToPgText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue string
	}{
		{"plain value", "sales.csv", true, "sales.csv"},
		{"surrounding whitespace trimmed", "  report  ", true, "report"},
		{"empty string", "", false, ""},
		{"whitespace only", "   ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPgText(tt.input)
			if got.Valid != tt.wantValid {
				t.Errorf("ToPgText(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.String != tt.wantValue {
				t.Errorf("ToPgText(%q).String = %q, want %q", tt.input, got.String, tt.wantValue)
			}
		})
	}
}

func TestToPgInt4KeepsZero(t *testing.T) {
	got := ToPgInt4(0)
	if !got.Valid {
		t.Error("ToPgInt4(0) must be valid, zero is a real count")
	}
	if got.Int32 != 0 {
		t.Errorf("ToPgInt4(0).Int32 = %d, want 0", got.Int32)
	}
}

func TestToPgUUID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"valid uuid", id.String(), true},
		{"empty string", "", false},
		{"garbage", "not-a-uuid", false},
		{"truncated", id.String()[:12], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPgUUID(tt.input)
			if got.Valid != tt.wantValid {
				t.Errorf("ToPgUUID(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if tt.wantValid && uuid.UUID(got.Bytes) != id {
				t.Errorf("ToPgUUID(%q).Bytes = %v, want %v", tt.input, got.Bytes, id)
			}
		})
	}
}

func TestPgUUIDToString(t *testing.T) {
	id := uuid.New()

	if got := PgUUIDToString(pgtype.UUID{Bytes: id, Valid: true}); got != id.String() {
		t.Errorf("PgUUIDToString = %q, want %q", got, id.String())
	}
	if got := PgUUIDToString(pgtype.UUID{}); got != "" {
		t.Errorf("PgUUIDToString(invalid) = %q, want empty", got)
	}
}

func TestToPgUUIDRoundTrip(t *testing.T) {
	id := uuid.New().String()
	if got := PgUUIDToString(ToPgUUID(id)); got != id {
		t.Errorf("round trip = %q, want %q", got, id)
	}
}
