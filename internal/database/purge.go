package database

import (
	"context"
	"time"
)

const purgeDatasets = `
DELETE FROM datasets
`

func (q *Queries) PurgeDatasets(ctx context.Context) (int64, error) {
	tag, err := q.db.Exec(ctx, purgeDatasets)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const purgeValidationReports = `
DELETE FROM validation_reports
`

func (q *Queries) PurgeValidationReports(ctx context.Context) (int64, error) {
	tag, err := q.db.Exec(ctx, purgeValidationReports)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const purgeOrphanReportsBefore = `
DELETE FROM validation_reports r
WHERE r.created_at < $1
  AND NOT EXISTS (SELECT 1 FROM datasets d WHERE d.report_id = r.id)
`

func (q *Queries) PurgeOrphanReportsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := q.db.Exec(ctx, purgeOrphanReportsBefore, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
