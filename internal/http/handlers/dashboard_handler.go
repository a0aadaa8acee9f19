package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"service-attendance/internal/domain"
	"service-attendance/internal/service"
)

type DashboardHandler struct {
	service *service.AttendanceService
	logger  *zap.Logger
}

func NewDashboardHandler(svc *service.AttendanceService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: svc, logger: logger}
}

type dashboardResponse struct {
	Grid          service.DayGrid            `json:"grid"`
	Records       []domain.AttendanceRecord  `json:"records"`
	ClassAnalysis []domain.ClassDayStats     `json:"classAnalysis"`
	Overall       domain.OverallStats        `json:"overall"`
	ReliefGroups  []domain.ReliefGroup       `json:"reliefGroups"`
}

// Day returns everything the dashboard renders for one date: the timetable
// grid, the time-sorted record list, per-class analysis, the overall summary
// and reliefs grouped by absent teacher.
func (h *DashboardHandler) Day(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}

	grid, err := h.service.ResolveDayGrid(r.Context(), date)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	dayRecords, err := h.service.DayRecords(r.Context(), date)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	if dayRecords == nil {
		dayRecords = []domain.AttendanceRecord{}
	}

	analysis := make([]domain.ClassDayStats, 0, len(domain.ClassList))
	for _, className := range domain.ClassList {
		analysis = append(analysis, service.DailyClassStats(className, dayRecords))
	}

	groups := service.GroupReliefsByAbsentee(dayRecords)
	if groups == nil {
		groups = []domain.ReliefGroup{}
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Grid:          grid,
		Records:       dayRecords,
		ClassAnalysis: analysis,
		Overall:       service.DailyOverallStats(dayRecords),
		ReliefGroups:  groups,
	})
}
