package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"service-attendance/internal/domain"
	"service-attendance/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

type AttendanceService struct {
	store  repository.RecordStore
	audit  repository.AuditLog
	logger *zap.Logger
	clock  func() time.Time
}

func NewAttendanceService(store repository.RecordStore, audit repository.AuditLog, logger *zap.Logger) *AttendanceService {
	return &AttendanceService{
		store:  store,
		audit:  audit,
		logger: logger,
		clock:  time.Now,
	}
}

type CreateRecordInput struct {
	Date                string
	TeacherName         string
	OriginalTeacherName string
	ReliefReason        string
	Notes               string
	ClassName           string
	Subject             string
	StartTime           string
	EndTime             string
	Status              domain.SessionStatus
}

// CreateRecord stores a new session entry. The relief variant requires the
// absent teacher's name and a reason; the subject-teacher variant discards
// both fields so they can never appear on a non-relief record. Start/end
// ordering is intentionally not validated: a reversed or empty interval is
// stored and simply never matches a slot.
func (s *AttendanceService) CreateRecord(ctx context.Context, input CreateRecordInput) (domain.AttendanceRecord, error) {
	if input.TeacherName == "" || input.ClassName == "" || input.Subject == "" ||
		input.Date == "" || input.StartTime == "" || input.EndTime == "" {
		return domain.AttendanceRecord{}, ErrInvalidInput
	}
	if !input.Status.Valid() {
		return domain.AttendanceRecord{}, ErrInvalidInput
	}

	record := domain.AttendanceRecord{
		ID:          uuid.New(),
		Date:        input.Date,
		TeacherName: input.TeacherName,
		Notes:       input.Notes,
		ClassName:   input.ClassName,
		Subject:     input.Subject,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      input.Status,
		Timestamp:   s.clock().UnixMilli(),
	}

	if input.Status == domain.StatusRelief {
		if input.OriginalTeacherName == "" || input.ReliefReason == "" {
			return domain.AttendanceRecord{}, ErrInvalidInput
		}
		record.OriginalTeacherName = input.OriginalTeacherName
		record.ReliefReason = input.ReliefReason
	}

	if err := s.store.Append(ctx, record); err != nil {
		return domain.AttendanceRecord{}, err
	}
	s.recordAudit(ctx, domain.EventRecordCreated, record)

	s.logger.Info("record created",
		zap.String("record_id", record.ID.String()),
		zap.String("class", record.ClassName),
		zap.String("status", string(record.Status)),
	)
	return record, nil
}

func (s *AttendanceService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.recordAudit(ctx, domain.EventRecordDeleted, domain.RecordDeletedPayload{ID: id.String()})

	s.logger.Info("record deleted", zap.String("record_id", id.String()))
	return nil
}

func (s *AttendanceService) ResetRecords(ctx context.Context) error {
	removed, err := s.store.Reset(ctx)
	if err != nil {
		return err
	}
	s.recordAudit(ctx, domain.EventStoreReset, domain.StoreResetPayload{RemovedCount: removed})

	s.logger.Info("store reset", zap.Int("removed", removed))
	return nil
}

// DayRecords returns a day's records sorted by start time ascending, the
// order the daily list view uses.
func (s *AttendanceService) DayRecords(ctx context.Context, date string) ([]domain.AttendanceRecord, error) {
	records, err := s.store.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartTime < records[j].StartTime
	})
	return records, nil
}

func (s *AttendanceService) AuditTrail(ctx context.Context) ([]repository.AuditEntry, error) {
	return s.audit.List(ctx)
}

// Occupants returns every record of the class covering the slot start
// instant, in store insertion order. Multiple concurrent entries per slot
// are expected (co-teaching, data-entry corrections).
func Occupants(className, slotStart string, dayRecords []domain.AttendanceRecord) []domain.AttendanceRecord {
	var matched []domain.AttendanceRecord
	for _, record := range dayRecords {
		if record.ClassName == className && record.Occupies(slotStart) {
			matched = append(matched, record)
		}
	}
	return matched
}

type GridCell struct {
	Slot       domain.SlotDefinition     `json:"slot"`
	Recess     bool                      `json:"recess,omitempty"`
	BlackedOut bool                      `json:"blackedOut,omitempty"`
	Occupants  []domain.AttendanceRecord `json:"occupants,omitempty"`
}

type GridRow struct {
	ClassName string     `json:"className"`
	Cells     []GridCell `json:"cells"`
}

type DayGrid struct {
	Date string    `json:"date"`
	Day  string    `json:"day"`
	Rows []GridRow `json:"rows"`
}

// ResolveDayGrid builds the timetable grid for one date: per class, per
// slot, either a recess marker, a blackout marker, or the slot's occupants.
// The occupancy check is skipped entirely for recess and blacked-out cells.
func (s *AttendanceService) ResolveDayGrid(ctx context.Context, date string) (DayGrid, error) {
	dayRecords, err := s.store.ListByDate(ctx, date)
	if err != nil {
		return DayGrid{}, err
	}
	day := domain.DayLabel(date)

	rows := make([]GridRow, 0, len(domain.ClassList))
	for _, className := range domain.ClassList {
		cells := make([]GridCell, 0, len(domain.TimeSlots))
		for _, slot := range domain.TimeSlots {
			cell := GridCell{Slot: slot}
			switch {
			case slot.Recess:
				cell.Recess = true
			case IsSlotBlackedOut(className, day, slot.Start):
				cell.BlackedOut = true
			default:
				cell.Occupants = Occupants(className, slot.Start, dayRecords)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, GridRow{ClassName: className, Cells: cells})
	}

	return DayGrid{Date: date, Day: day, Rows: rows}, nil
}

// BuildReliefReport assembles the report content for an inclusive date
// range. Both dates are required, and an empty range yields ErrNotFound so
// no empty document is ever produced.
func (s *AttendanceService) BuildReliefReport(ctx context.Context, startDate, endDate string) (domain.ReliefReport, error) {
	if startDate == "" || endDate == "" {
		return domain.ReliefReport{}, ErrInvalidInput
	}

	records, err := s.store.List(ctx)
	if err != nil {
		return domain.ReliefReport{}, err
	}
	inRange := FilterRange(startDate, endDate, records)
	if len(inRange) == 0 {
		return domain.ReliefReport{}, ErrNotFound
	}

	return domain.ReliefReport{
		StartDate:   startDate,
		EndDate:     endDate,
		GeneratedAt: s.clock().Format("2006-01-02"),
		Overall:     DailyOverallStats(inRange),
		Classes:     PerClassRangeBreakdown(startDate, endDate, records),
		Reliefs:     SortedReliefList(startDate, endDate, records),
	}, nil
}

// Audit append failures are logged, not surfaced: the store write already
// succeeded and the trail is advisory.
func (s *AttendanceService) recordAudit(ctx context.Context, eventType string, payload any) {
	if err := s.audit.Insert(ctx, domain.AuditEvent{EventType: eventType, Payload: payload}); err != nil {
		s.logger.Warn("audit append failed", zap.String("event", eventType), zap.Error(err))
	}
}
