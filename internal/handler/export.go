package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
	"github.com/nobijoy/hedge-fund-app/internal/report"
	"github.com/nobijoy/hedge-fund-app/internal/service"
)

// ExportHandler serves downloads of the filtered contribution set. Exports
// honor the filter parameters but not sorting or pagination: the file
// always covers the full filtered set in source order.
type ExportHandler struct {
	contributions *service.ContributionService
}

func NewExportHandler(contributions *service.ContributionService) *ExportHandler {
	return &ExportHandler{contributions: contributions}
}

func (h *ExportHandler) filtered(r *http.Request) ([]domain.Contribution, error) {
	filter, _, _, _ := parseTableQuery(r)

	all, err := h.contributions.List(r.Context())
	if err != nil {
		return nil, err
	}
	return report.Apply(all, filter), nil
}

func (h *ExportHandler) HandleCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.filtered(r)
	if err != nil {
		slog.Error("csv export failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.CSVFileName))

	if err := report.WriteCSV(w, rows); err != nil {
		slog.Error("csv write failed", "error", err)
	}
}

func (h *ExportHandler) HandleXLSX(w http.ResponseWriter, r *http.Request) {
	rows, err := h.filtered(r)
	if err != nil {
		slog.Error("xlsx export failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.XLSXFileName))

	if err := report.WriteXLSX(w, rows); err != nil {
		slog.Error("xlsx write failed", "error", err)
	}
}
