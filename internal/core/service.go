package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openexo/datagate/internal/config"
	"github.com/openexo/datagate/internal/database"
	"github.com/openexo/datagate/internal/logging"
	"github.com/openexo/datagate/internal/validate"
)

// Service provides the core business logic for dataset validation and
// cataloging.
type Service struct {
	pool      *pgxpool.Pool
	queries   *database.Queries
	validator *validate.Validator
	limiter   *Limiter
	cfg       *config.Config
}

// NewService creates a new Service backed by the given connection pool.
func NewService(pool *pgxpool.Pool, cfg *config.Config) *Service {
	opts := validate.Options{
		MaxErrors:        cfg.Validation.MaxErrors,
		MaxWarnings:      cfg.Validation.MaxWarnings,
		TypeSampleSize:   cfg.Validation.TypeSampleSize,
		ArtifactScanRows: cfg.Validation.ArtifactScanRows,
	}

	return &Service{
		pool:      pool,
		queries:   database.New(pool),
		validator: validate.NewValidator(opts),
		limiter:   NewLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime),
		cfg:       cfg,
	}
}

// Dataset is a catalog entry for an accepted file.
type Dataset struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	OriginalFilename string    `json:"original_filename"`
	FileSizeBytes    int64     `json:"file_size_bytes"`
	RowCount         int       `json:"row_count"`
	ColumnCount      int       `json:"column_count"`
	Encoding         string    `json:"encoding,omitempty"`
	IsPublic         bool      `json:"is_public"`
	ReportID         string    `json:"report_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Report is a stored validation report.
type Report struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	Valid         bool      `json:"valid"`
	CriticalCount int       `json:"critical_count"`
	ErrorCount    int       `json:"error_count"`
	WarningCount  int       `json:"warning_count"`
	ReportText    string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// UploadRequest describes one file submitted for validation and cataloging.
type UploadRequest struct {
	Name     string
	Filename string
	Data     []byte
	IsPublic bool
}

// UploadOutcome is the result of processing an upload. The report is stored
// for rejected files too, so ReportID is always set.
type UploadOutcome struct {
	Accepted bool
	Dataset  *Dataset
	ReportID string
	Result   *validate.Result
}

// UploadDataset validates the submitted file and, when it passes, admits it
// into the catalog. The rendered report is persisted regardless of outcome so
// users can inspect why a file was rejected.
func (s *Service) UploadDataset(ctx context.Context, req UploadRequest) (*UploadOutcome, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Upload.Timeout)
	defer cancel()

	log := logging.FromContext(ctx).With(
		"filename", req.Filename,
		"size_bytes", len(req.Data),
	)
	if ip := IPAddressFromContext(ctx); ip != "" {
		log = log.With("client_ip", ip)
	}

	start := time.Now()
	res := s.validator.Validate(ctx, req.Data)
	reportText := validate.RenderReport(res, req.Filename, time.Now().UTC())

	report, err := s.storeReport(ctx, req.Filename, res, reportText)
	if err != nil {
		return nil, fmt.Errorf("store validation report: %w", err)
	}
	reportID := database.PgUUIDToString(report.ID)

	outcome := &UploadOutcome{
		ReportID: reportID,
		Result:   res,
	}

	if !res.Valid {
		log.Warn("dataset rejected",
			"report_id", reportID,
			"critical_count", res.CriticalCount(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return outcome, nil
	}

	name := req.Name
	if name == "" {
		name = req.Filename
	}

	row, err := s.queries.InsertDataset(ctx, database.InsertDatasetParams{
		Name:             database.ToPgText(name),
		OriginalFilename: database.ToPgText(req.Filename),
		FileSizeBytes:    database.ToPgInt8(res.Summary.FileSizeBytes),
		RowCount:         database.ToPgInt4(res.Summary.TotalRows),
		ColumnCount:      database.ToPgInt4(res.Summary.TotalColumns),
		Encoding:         database.ToPgText(res.Summary.EncodingUsed),
		IsPublic:         database.ToPgBool(req.IsPublic),
		ReportID:         report.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("insert dataset: %w", err)
	}

	ds := mapDataset(row)
	outcome.Accepted = true
	outcome.Dataset = &ds

	log.Info("dataset accepted",
		"dataset_id", ds.ID,
		"report_id", reportID,
		"rows", ds.RowCount,
		"columns", ds.ColumnCount,
		"encoding", ds.Encoding,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return outcome, nil
}

// ValidatePreview runs validation without touching the catalog. Used by the
// dry-run endpoint so users can check a file before committing it.
func (s *Service) ValidatePreview(ctx context.Context, filename string, data []byte) (*validate.Result, string, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, "", err
	}
	defer s.limiter.Release()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Upload.Timeout)
	defer cancel()

	res := s.validator.Validate(ctx, data)
	reportText := validate.RenderReport(res, filename, time.Now().UTC())

	logging.FromContext(ctx).Info("dataset preview validated",
		"filename", filename,
		"valid", res.Valid,
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
	)
	return res, reportText, nil
}

// ListDatasets returns one page of catalog entries plus the total count.
func (s *Service) ListDatasets(ctx context.Context, page, perPage int) ([]Dataset, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	rows, err := s.queries.ListDatasets(ctx, database.ListDatasetsParams{
		Limit:  int32(perPage),
		Offset: int32((page - 1) * perPage),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list datasets: %w", err)
	}

	total, err := s.queries.CountDatasets(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count datasets: %w", err)
	}

	items := make([]Dataset, len(rows))
	for i, row := range rows {
		items[i] = mapDataset(row)
	}
	return items, total, nil
}

// GetDataset returns a single catalog entry by ID.
func (s *Service) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	pgID := database.ToPgUUID(id)
	if !pgID.Valid {
		return nil, ErrInvalidID
	}

	row, err := s.queries.GetDataset(ctx, pgID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDatasetNotFound
		}
		return nil, fmt.Errorf("get dataset: %w", err)
	}

	ds := mapDataset(row)
	return &ds, nil
}

// DeleteDataset removes a catalog entry by ID.
func (s *Service) DeleteDataset(ctx context.Context, id string) error {
	pgID := database.ToPgUUID(id)
	if !pgID.Valid {
		return ErrInvalidID
	}

	deleted, err := s.queries.DeleteDataset(ctx, pgID)
	if err != nil {
		return fmt.Errorf("delete dataset: %w", err)
	}
	if deleted == 0 {
		return ErrDatasetNotFound
	}

	logging.FromContext(ctx).Info("dataset deleted", "dataset_id", id)
	return nil
}

// GetReport returns a stored validation report by ID.
func (s *Service) GetReport(ctx context.Context, id string) (*Report, error) {
	pgID := database.ToPgUUID(id)
	if !pgID.Valid {
		return nil, ErrInvalidID
	}

	row, err := s.queries.GetValidationReport(ctx, pgID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("get report: %w", err)
	}

	return &Report{
		ID:            database.PgUUIDToString(row.ID),
		Filename:      row.Filename.String,
		Valid:         row.Valid.Bool,
		CriticalCount: int(row.CriticalCount.Int32),
		ErrorCount:    int(row.ErrorCount.Int32),
		WarningCount:  int(row.WarningCount.Int32),
		ReportText:    row.ReportText.String,
		CreatedAt:     row.CreatedAt.Time,
	}, nil
}

// Status reports the validation limiter state for monitoring.
func (s *Service) Status() LimiterStatus {
	return s.limiter.Status()
}

// Ping verifies database connectivity. Returns nil when the service runs
// without a pool (validation-only mode, used in tests).
func (s *Service) Ping(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Ping(ctx)
}

// WaitForDrain blocks until in-flight validations finish, for graceful
// shutdown.
func (s *Service) WaitForDrain(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

func (s *Service) storeReport(ctx context.Context, filename string, res *validate.Result, reportText string) (database.ValidationReport, error) {
	resultJSON, err := json.Marshal(res)
	if err != nil {
		return database.ValidationReport{}, fmt.Errorf("marshal result: %w", err)
	}

	return s.queries.InsertValidationReport(ctx, database.InsertValidationReportParams{
		Filename:      database.ToPgText(filename),
		Valid:         database.ToPgBool(res.Valid),
		CriticalCount: database.ToPgInt4(res.CriticalCount()),
		ErrorCount:    database.ToPgInt4(res.ErrorCount()),
		WarningCount:  database.ToPgInt4(len(res.Warnings)),
		ResultJSON:    resultJSON,
		ReportText:    pgtype.Text{String: reportText, Valid: true},
	})
}

func mapDataset(row database.Dataset) Dataset {
	return Dataset{
		ID:               database.PgUUIDToString(row.ID),
		Name:             row.Name.String,
		OriginalFilename: row.OriginalFilename.String,
		FileSizeBytes:    row.FileSizeBytes.Int64,
		RowCount:         int(row.RowCount.Int32),
		ColumnCount:      int(row.ColumnCount.Int32),
		Encoding:         row.Encoding.String,
		IsPublic:         row.IsPublic.Bool,
		ReportID:         database.PgUUIDToString(row.ReportID),
		CreatedAt:        row.CreatedAt.Time,
	}
}
