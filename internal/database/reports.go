package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertValidationReport = `
INSERT INTO validation_reports (filename, valid, critical_count, error_count, warning_count, result_json, report_text)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, filename, valid, critical_count, error_count, warning_count, result_json, report_text, created_at
`

// InsertValidationReportParams holds the column values for a new report row.
type InsertValidationReportParams struct {
	Filename      pgtype.Text
	Valid         pgtype.Bool
	CriticalCount pgtype.Int4
	ErrorCount    pgtype.Int4
	WarningCount  pgtype.Int4
	ResultJSON    []byte
	ReportText    pgtype.Text
}

func (q *Queries) InsertValidationReport(ctx context.Context, arg InsertValidationReportParams) (ValidationReport, error) {
	row := q.db.QueryRow(ctx, insertValidationReport,
		arg.Filename,
		arg.Valid,
		arg.CriticalCount,
		arg.ErrorCount,
		arg.WarningCount,
		arg.ResultJSON,
		arg.ReportText,
	)
	var r ValidationReport
	err := row.Scan(
		&r.ID,
		&r.Filename,
		&r.Valid,
		&r.CriticalCount,
		&r.ErrorCount,
		&r.WarningCount,
		&r.ResultJSON,
		&r.ReportText,
		&r.CreatedAt,
	)
	return r, err
}

const getValidationReport = `
SELECT id, filename, valid, critical_count, error_count, warning_count, result_json, report_text, created_at
FROM validation_reports
WHERE id = $1
`

func (q *Queries) GetValidationReport(ctx context.Context, id pgtype.UUID) (ValidationReport, error) {
	row := q.db.QueryRow(ctx, getValidationReport, id)
	var r ValidationReport
	err := row.Scan(
		&r.ID,
		&r.Filename,
		&r.Valid,
		&r.CriticalCount,
		&r.ErrorCount,
		&r.WarningCount,
		&r.ResultJSON,
		&r.ReportText,
		&r.CreatedAt,
	)
	return r, err
}
