package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertDataset = `
INSERT INTO datasets (name, original_filename, file_size_bytes, row_count, column_count, encoding, is_public, report_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, name, original_filename, file_size_bytes, row_count, column_count, encoding, is_public, report_id, created_at
`

// InsertDatasetParams holds the column values for a new dataset row.
type InsertDatasetParams struct {
	Name             pgtype.Text
	OriginalFilename pgtype.Text
	FileSizeBytes    pgtype.Int8
	RowCount         pgtype.Int4
	ColumnCount      pgtype.Int4
	Encoding         pgtype.Text
	IsPublic         pgtype.Bool
	ReportID         pgtype.UUID
}

func (q *Queries) InsertDataset(ctx context.Context, arg InsertDatasetParams) (Dataset, error) {
	row := q.db.QueryRow(ctx, insertDataset,
		arg.Name,
		arg.OriginalFilename,
		arg.FileSizeBytes,
		arg.RowCount,
		arg.ColumnCount,
		arg.Encoding,
		arg.IsPublic,
		arg.ReportID,
	)
	var d Dataset
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.OriginalFilename,
		&d.FileSizeBytes,
		&d.RowCount,
		&d.ColumnCount,
		&d.Encoding,
		&d.IsPublic,
		&d.ReportID,
		&d.CreatedAt,
	)
	return d, err
}

const getDataset = `
SELECT id, name, original_filename, file_size_bytes, row_count, column_count, encoding, is_public, report_id, created_at
FROM datasets
WHERE id = $1
`

func (q *Queries) GetDataset(ctx context.Context, id pgtype.UUID) (Dataset, error) {
	row := q.db.QueryRow(ctx, getDataset, id)
	var d Dataset
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.OriginalFilename,
		&d.FileSizeBytes,
		&d.RowCount,
		&d.ColumnCount,
		&d.Encoding,
		&d.IsPublic,
		&d.ReportID,
		&d.CreatedAt,
	)
	return d, err
}

const listDatasets = `
SELECT id, name, original_filename, file_size_bytes, row_count, column_count, encoding, is_public, report_id, created_at
FROM datasets
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListDatasetsParams holds pagination bounds for ListDatasets.
type ListDatasetsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListDatasets(ctx context.Context, arg ListDatasetsParams) ([]Dataset, error) {
	rows, err := q.db.Query(ctx, listDatasets, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Dataset
	for rows.Next() {
		var d Dataset
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.OriginalFilename,
			&d.FileSizeBytes,
			&d.RowCount,
			&d.ColumnCount,
			&d.Encoding,
			&d.IsPublic,
			&d.ReportID,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

const countDatasets = `
SELECT COUNT(*) FROM datasets
`

func (q *Queries) CountDatasets(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countDatasets).Scan(&count)
	return count, err
}

const deleteDataset = `
DELETE FROM datasets WHERE id = $1
`

// DeleteDataset removes a dataset row and reports how many rows were deleted,
// so callers can distinguish a missing ID from a successful delete.
func (q *Queries) DeleteDataset(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteDataset, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
