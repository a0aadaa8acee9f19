package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"service-attendance/internal/domain"
	"service-attendance/internal/report"
	"service-attendance/internal/service"
)

type ReportHandler struct {
	service *service.AttendanceService
	logger  *zap.Logger
}

func NewReportHandler(svc *service.AttendanceService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{service: svc, logger: logger}
}

func (h *ReportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pdf", "application/pdf", report.RenderPDF)
}

func (h *ReportHandler) Workbook(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		report.RenderWorkbook)
}

func (h *ReportHandler) render(
	w http.ResponseWriter,
	r *http.Request,
	ext string,
	contentType string,
	renderFn func(domain.ReliefReport) ([]byte, error),
) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	data, err := h.service.BuildReliefReport(r.Context(), start, end)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	body, err := renderFn(data)
	if err != nil {
		h.logger.Error("report render failed", zap.String("format", ext), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename(data, ext)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
