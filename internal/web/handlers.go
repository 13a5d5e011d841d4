package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/openexo/datagate/internal/core"
	"github.com/openexo/datagate/internal/validate"
)

// uploadResponse is returned when a dataset passes validation and is
// admitted into the catalog.
type uploadResponse struct {
	Message   string             `json:"message"`
	Dataset   *core.Dataset      `json:"dataset"`
	ReportID  string             `json:"report_id"`
	ReportURL string             `json:"report_url"`
	Summary   validate.Summary   `json:"summary"`
	Warnings  []validate.Finding `json:"warnings,omitempty"`
}

// rejectionResponse is returned with 422 when validation fails. It carries a
// truncated view of the findings; the full report is available at ReportURL.
type rejectionResponse struct {
	Error     string             `json:"error"`
	Errors    []validate.Finding `json:"validation_errors"`
	Warnings  []validate.Finding `json:"validation_warnings,omitempty"`
	ReportID  string             `json:"report_id"`
	ReportURL string             `json:"report_url"`
	Summary   validate.Summary   `json:"summary"`
}

// handleUpload validates an uploaded file and catalogs it when it passes.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	data, filename, err := s.readUploadedFile(w, r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	req := core.UploadRequest{
		Name:     r.FormValue("name"),
		Filename: filename,
		Data:     data,
		IsPublic: parseBool(r.FormValue("is_public")),
	}

	ctx := WithRequestMetadata(r.Context(), r)
	outcome, err := s.service.UploadDataset(ctx, req)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	reportURL := "/api/reports/" + outcome.ReportID

	if !outcome.Accepted {
		writeJSON(w, http.StatusUnprocessableEntity, rejectionResponse{
			Error:     "Dataset validation failed",
			Errors:    capFindings(outcome.Result.Errors, s.cfg.Validation.APIMaxErrors),
			Warnings:  capFindings(outcome.Result.Warnings, s.cfg.Validation.APIMaxWarnings),
			ReportID:  outcome.ReportID,
			ReportURL: reportURL,
			Summary:   outcome.Result.Summary,
		})
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		Message:   "Dataset uploaded successfully",
		Dataset:   outcome.Dataset,
		ReportID:  outcome.ReportID,
		ReportURL: reportURL,
		Summary:   outcome.Result.Summary,
		Warnings:  capFindings(outcome.Result.Warnings, s.cfg.Validation.APIMaxWarnings),
	})
}

// validateResponse is the dry-run result: the full finding lists plus the
// rendered report text, nothing persisted.
type validateResponse struct {
	Valid    bool               `json:"valid"`
	Errors   []validate.Finding `json:"errors"`
	Warnings []validate.Finding `json:"warnings"`
	Summary  validate.Summary   `json:"summary"`
	Report   string             `json:"report"`
}

// handleValidate runs validation without cataloging the file.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	data, filename, err := s.readUploadedFile(w, r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	res, reportText, err := s.service.ValidatePreview(ctx, filename, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{
		Valid:    res.Valid,
		Errors:   res.Errors,
		Warnings: res.Warnings,
		Summary:  res.Summary,
		Report:   reportText,
	})
}

// listResponse is one page of the dataset catalog.
type listResponse struct {
	Datasets []core.Dataset `json:"datasets"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PerPage  int            `json:"per_page"`
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 20)

	datasets, total, err := s.service.ListDatasets(r.Context(), page, perPage)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if datasets == nil {
		datasets = []core.Dataset{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Datasets: datasets,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	})
}

func (s *Server) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := s.service.GetDataset(r.Context(), chi.URLParam(r, "datasetID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

func (s *Server) handleDeleteDataset(w http.ResponseWriter, r *http.Request) {
	ctx := WithRequestMetadata(r.Context(), r)
	if err := s.service.DeleteDataset(ctx, chi.URLParam(r, "datasetID")); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetReport serves the stored report as plain text, the way it would
// be read in a terminal.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.service.GetReport(r.Context(), chi.URLParam(r, "reportID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, report.ReportText)
}

// handleHealth reports liveness, database reachability, and the validation
// limiter state.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := s.service.Ping(r.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]interface{}{
		"status":      status,
		"validations": s.service.Status(),
	})
}

// readUploadedFile extracts the "file" form field, enforcing the size limit
// and the CSV extension requirement.
func (s *Server) readUploadedFile(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		return nil, "", errors.New("file too large or invalid form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", errors.New("no file provided")
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		return nil, "", fmt.Errorf("unsupported file type %q, only CSV files are accepted", filepath.Ext(header.Filename))
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errors.New("failed to read file")
	}
	return data, header.Filename, nil
}

func capFindings(findings []validate.Finding, max int) []validate.Finding {
	if len(findings) <= max {
		return findings
	}
	return findings[:max]
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "on", "yes":
		return true
	default:
		return false
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
