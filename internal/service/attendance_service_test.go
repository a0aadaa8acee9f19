package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"service-attendance/internal/domain"
	"service-attendance/internal/repository"
)

func newTestService(t *testing.T) *AttendanceService {
	t.Helper()
	dir := t.TempDir()

	store, err := repository.OpenFileRecordStore(filepath.Join(dir, "records.json"), nil)
	require.NoError(t, err)

	audit := repository.NewFileAuditLog(filepath.Join(dir, "audit.log"))
	return NewAttendanceService(store, audit, zap.NewNop())
}

func subjectInput(className, date, start, end string) CreateRecordInput {
	return CreateRecordInput{
		Date:        date,
		TeacherName: "SYLVIA LEE MEI BAY",
		ClassName:   className,
		Subject:     "ENGLISH",
		StartTime:   start,
		EndTime:     end,
		Status:      domain.StatusSubjectTeacher,
	}
}

func TestCreateRecordAssignsIdentityAndTimestamp(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateRecord(context.Background(), subjectInput("TAHUN 5", "2023-10-24", "08:00", "08:30"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NotZero(t, created.Timestamp)
}

func TestCreateRecordSubjectVariantDiscardsReliefFields(t *testing.T) {
	svc := newTestService(t)

	input := subjectInput("TAHUN 5", "2023-10-24", "08:00", "08:30")
	input.OriginalTeacherName = "SHOULD NOT BE KEPT"
	input.ReliefReason = "SHOULD NOT BE KEPT"

	created, err := svc.CreateRecord(context.Background(), input)
	require.NoError(t, err)
	assert.Empty(t, created.OriginalTeacherName)
	assert.Empty(t, created.ReliefReason)
}

func TestCreateRecordReliefRequiresAbsenteeAndReason(t *testing.T) {
	svc := newTestService(t)

	input := subjectInput("TAHUN 4", "2023-10-24", "09:00", "09:30")
	input.Status = domain.StatusRelief
	input.OriginalTeacherName = "BEREMAS ANAK INGGIT"

	_, err := svc.CreateRecord(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidInput, "missing relief reason")

	input.ReliefReason = "CUTI SAKIT"
	created, err := svc.CreateRecord(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "BEREMAS ANAK INGGIT", created.OriginalTeacherName)
	assert.Equal(t, "CUTI SAKIT", created.ReliefReason)
}

func TestCreateRecordRejectsMissingFieldsAndBadStatus(t *testing.T) {
	svc := newTestService(t)

	input := subjectInput("TAHUN 5", "2023-10-24", "08:00", "08:30")
	input.TeacherName = ""
	_, err := svc.CreateRecord(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	input = subjectInput("TAHUN 5", "2023-10-24", "08:00", "08:30")
	input.Status = "Guru Besar"
	_, err = svc.CreateRecord(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRecordAcceptsReversedInterval(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateRecord(context.Background(), subjectInput("TAHUN 5", "2023-10-24", "09:00", "08:00"))
	require.NoError(t, err)

	day, err := svc.DayRecords(context.Background(), "2023-10-24")
	require.NoError(t, err)
	require.Len(t, day, 1)

	// Stored, but never occupies any slot.
	for _, slot := range domain.TimeSlots {
		assert.Empty(t, Occupants(created.ClassName, slot.Start, day))
	}
}

func TestDeleteRecord(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateRecord(context.Background(), subjectInput("TAHUN 5", "2023-10-24", "08:00", "08:30"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteRecord(context.Background(), uuid.New()), ErrNotFound)
	require.NoError(t, svc.DeleteRecord(context.Background(), created.ID))

	day, err := svc.DayRecords(context.Background(), "2023-10-24")
	require.NoError(t, err)
	assert.Empty(t, day)
}

func TestResetRecords(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateRecord(context.Background(), subjectInput("TAHUN 5", "2023-10-24", "08:00", "08:30"))
	require.NoError(t, err)
	_, err = svc.CreateRecord(context.Background(), subjectInput("TAHUN 6", "2023-10-25", "09:00", "09:30"))
	require.NoError(t, err)

	require.NoError(t, svc.ResetRecords(context.Background()))

	for _, date := range []string{"2023-10-24", "2023-10-25"} {
		day, err := svc.DayRecords(context.Background(), date)
		require.NoError(t, err)
		assert.Empty(t, day)
	}
}

func TestDayRecordsSortedByStartTime(t *testing.T) {
	svc := newTestService(t)

	for _, start := range []string{"10:20", "07:30", "08:30"} {
		end := start // zero-length is fine for ordering purposes
		_, err := svc.CreateRecord(context.Background(), subjectInput("TAHUN 5", "2023-10-24", start, end))
		require.NoError(t, err)
	}

	day, err := svc.DayRecords(context.Background(), "2023-10-24")
	require.NoError(t, err)
	require.Len(t, day, 3)
	assert.Equal(t, "07:30", day[0].StartTime)
	assert.Equal(t, "08:30", day[1].StartTime)
	assert.Equal(t, "10:20", day[2].StartTime)
}

func TestResolveDayGrid(t *testing.T) {
	svc := newTestService(t)

	// 2023-10-24 is a Tuesday (SELASA).
	_, err := svc.CreateRecord(context.Background(), subjectInput("TAHUN 5", "2023-10-24", "08:00", "08:30"))
	require.NoError(t, err)

	grid, err := svc.ResolveDayGrid(context.Background(), "2023-10-24")
	require.NoError(t, err)
	assert.Equal(t, "SELASA", grid.Day)
	require.Len(t, grid.Rows, len(domain.ClassList))

	var tahun1, tahun5 GridRow
	for _, row := range grid.Rows {
		switch row.ClassName {
		case "TAHUN 1":
			tahun1 = row
		case "TAHUN 5":
			tahun5 = row
		}
	}

	cellByStart := func(row GridRow, start string) GridCell {
		for _, cell := range row.Cells {
			if cell.Slot.Start == start {
				return cell
			}
		}
		t.Fatalf("no cell with start %s", start)
		return GridCell{}
	}

	occupied := cellByStart(tahun5, "08:00")
	require.Len(t, occupied.Occupants, 1)
	assert.False(t, occupied.BlackedOut)

	recess := cellByStart(tahun5, "10:00")
	assert.True(t, recess.Recess)
	assert.Empty(t, recess.Occupants)

	// Tuesday blackout for both tiers starts at 13:20.
	assert.True(t, cellByStart(tahun1, "13:20").BlackedOut)
	assert.True(t, cellByStart(tahun5, "13:20").BlackedOut)
	assert.False(t, cellByStart(tahun1, "12:50").BlackedOut)
}

func TestBuildReliefReport(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.BuildReliefReport(context.Background(), "", "2023-10-31")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.BuildReliefReport(context.Background(), "2023-10-01", "2023-10-31")
	assert.ErrorIs(t, err, ErrNotFound, "no records in range")

	reliefInput := subjectInput("TAHUN 4", "2023-10-24", "09:00", "09:30")
	reliefInput.Status = domain.StatusRelief
	reliefInput.OriginalTeacherName = "BEREMAS ANAK INGGIT"
	reliefInput.ReliefReason = "CUTI SAKIT"
	_, err = svc.CreateRecord(context.Background(), reliefInput)
	require.NoError(t, err)

	_, err = svc.CreateRecord(context.Background(), subjectInput("TAHUN 5", "2023-10-25", "08:00", "08:30"))
	require.NoError(t, err)

	built, err := svc.BuildReliefReport(context.Background(), "2023-10-01", "2023-10-31")
	require.NoError(t, err)
	assert.Equal(t, 2, built.Overall.Total)
	assert.Equal(t, 1, built.Overall.ReliefCount)
	assert.Len(t, built.Classes, len(domain.ClassList))
	require.Len(t, built.Reliefs, 1)
	assert.Equal(t, 1, built.Reliefs[0].Seq)
	assert.Equal(t, "BEREMAS ANAK INGGIT", built.Reliefs[0].OriginalTeacherName)
}

func TestMutationsAppendAuditTrail(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateRecord(context.Background(), subjectInput("TAHUN 5", "2023-10-24", "08:00", "08:30"))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteRecord(context.Background(), created.ID))
	require.NoError(t, svc.ResetRecords(context.Background()))

	entries, err := svc.AuditTrail(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.EventRecordCreated, entries[0].EventType)
	assert.Equal(t, domain.EventRecordDeleted, entries[1].EventType)
	assert.Equal(t, domain.EventStoreReset, entries[2].EventType)
}
