package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"service-attendance/internal/domain"
	"service-attendance/internal/service"
)

type RecordHandler struct {
	service  *service.AttendanceService
	logger   *zap.Logger
	validate *validator.Validate
}

func NewRecordHandler(svc *service.AttendanceService, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{service: svc, logger: logger, validate: validator.New()}
}

type createRecordRequest struct {
	Date                string `json:"date" validate:"required,datetime=2006-01-02"`
	TeacherName         string `json:"teacherName" validate:"required"`
	OriginalTeacherName string `json:"originalTeacherName,omitempty"`
	ReliefReason        string `json:"reliefReason,omitempty"`
	Notes               string `json:"notes,omitempty"`
	ClassName           string `json:"className" validate:"required"`
	Subject             string `json:"subject" validate:"required"`
	StartTime           string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime             string `json:"endTime" validate:"required,datetime=15:04"`
	Status              string `json:"status" validate:"required"`
}

func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing or malformed fields")
		return
	}

	record, err := h.service.CreateRecord(r.Context(), service.CreateRecordInput{
		Date:                req.Date,
		TeacherName:         req.TeacherName,
		OriginalTeacherName: req.OriginalTeacherName,
		ReliefReason:        req.ReliefReason,
		Notes:               req.Notes,
		ClassName:           req.ClassName,
		Subject:             req.Subject,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Status:              domain.SessionStatus(req.Status),
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (h *RecordHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}

	records, err := h.service.DayRecords(r.Context(), date)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	if records == nil {
		records = []domain.AttendanceRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "record_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	if err := h.service.DeleteRecord(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RecordHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetRecords(r.Context()); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RecordHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.AuditTrail(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
