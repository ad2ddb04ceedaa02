package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"wastewise-admin-service/internal/api/dto"
	"wastewise-admin-service/internal/api/responses"
	apperrors "wastewise-admin-service/internal/platform/errors"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/ports"
	"wastewise-admin-service/internal/services"
)

type ReportHandler struct {
	Reports *services.ReportService
	// Workbook renders ?format=xlsx.
	Workbook ports.ReportWriter
	Log      *logger.Logger
}

func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	switch format {
	case "", "json", "xlsx":
	default:
		responses.WriteError(r.Context(), h.Log, w, apperrors.New(apperrors.CodeValidation, "format must be json or xlsx"))
		return
	}

	var req dto.ReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	from, to := req.Dates()
	report, err := h.Reports.Generate(r.Context(), services.ReportFilter{
		Type:     req.Type,
		TargetID: req.TargetID,
		From:     from,
		To:       to,
	})
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}

	if format != "xlsx" {
		responses.WriteSuccess(w, dto.Report(report))
		return
	}

	// Buffer so a render failure can still produce an error envelope.
	var buf bytes.Buffer
	if err := h.Workbook.Write(&buf, report); err != nil {
		responses.WriteError(r.Context(), h.Log, w, fmt.Errorf("render report: %w", err))
		return
	}
	w.Header().Set("Content-Type", h.Workbook.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.Workbook.FileName(report)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
