package database

import "github.com/jackc/pgx/v5/pgtype"

// Dataset is a validated tabular file accepted into the catalog.
type Dataset struct {
	ID               pgtype.UUID
	Name             pgtype.Text
	OriginalFilename pgtype.Text
	FileSizeBytes    pgtype.Int8
	RowCount         pgtype.Int4
	ColumnCount      pgtype.Int4
	Encoding         pgtype.Text
	IsPublic         pgtype.Bool
	ReportID         pgtype.UUID
	CreatedAt        pgtype.Timestamptz
}

// ValidationReport is the stored outcome of one validation run. Reports are
// kept for failed uploads too, so users can fetch the full rendered text.
type ValidationReport struct {
	ID            pgtype.UUID
	Filename      pgtype.Text
	Valid         pgtype.Bool
	CriticalCount pgtype.Int4
	ErrorCount    pgtype.Int4
	WarningCount  pgtype.Int4
	ResultJSON    []byte
	ReportText    pgtype.Text
	CreatedAt     pgtype.Timestamptz
}
