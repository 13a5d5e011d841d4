// Package admin provides administrative operations for catalog maintenance.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/openexo/datagate/internal/database"
)

// PurgeTimeout is the maximum duration for catalog purge operations.
const PurgeTimeout = 30 * time.Second

// Purger handles destructive catalog maintenance.
type Purger struct {
	DB *database.Queries
}

// PurgeResult reports how many rows each purge step removed.
type PurgeResult struct {
	DatasetsDeleted int64
	ReportsDeleted  int64
}

// PurgeAll removes every dataset and validation report from the catalog.
// This is a destructive operation - use with caution.
func (p *Purger) PurgeAll(ctx context.Context) (PurgeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, PurgeTimeout)
	defer cancel()

	var res PurgeResult

	// Datasets first: they hold the foreign key into reports
	n, err := p.DB.PurgeDatasets(ctx)
	if err != nil {
		return res, fmt.Errorf("purge datasets: %w", err)
	}
	res.DatasetsDeleted = n

	n, err = p.DB.PurgeValidationReports(ctx)
	if err != nil {
		return res, fmt.Errorf("purge validation reports: %w", err)
	}
	res.ReportsDeleted = n

	return res, nil
}

// PurgeReportsBefore removes validation reports older than cutoff that are
// not referenced by any dataset. Keeps the reports table from growing
// unbounded with rejected-upload reports.
func (p *Purger) PurgeReportsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, PurgeTimeout)
	defer cancel()

	n, err := p.DB.PurgeOrphanReportsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge orphan reports: %w", err)
	}
	return n, nil
}
