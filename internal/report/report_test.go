package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"service-attendance/internal/domain"
)

func fixtureReport() domain.ReliefReport {
	return domain.ReliefReport{
		StartDate:   "2023-10-01",
		EndDate:     "2023-10-31",
		GeneratedAt: "2023-11-01",
		Overall: domain.OverallStats{
			Total: 3, SubjectCount: 2, ReliefCount: 1,
			SubjectPct: 66.7, ReliefPct: 33.3,
		},
		Classes: []domain.ClassRangeStats{
			{ClassName: "TAHUN 1", Total: 0},
			{ClassName: "TAHUN 5", Total: 3, SubjectCount: 2, ReliefCount: 1, SubjectPct: 67},
		},
		Reliefs: []domain.NumberedRecord{
			{
				Seq: 1,
				AttendanceRecord: domain.AttendanceRecord{
					Date:                "2023-10-24",
					TeacherName:         "HASIAH BINTI SALLEH",
					OriginalTeacherName: "BEREMAS ANAK INGGIT",
					ReliefReason:        "CUTI SAKIT",
					ClassName:           "TAHUN 5",
					StartTime:           "09:00",
					EndTime:             "09:30",
					Status:              domain.StatusRelief,
				},
			},
		},
	}
}

func TestFilename(t *testing.T) {
	name := Filename(fixtureReport(), "pdf")
	assert.Equal(t, "Laporan_Analisis_MMI_2023-10-01_2023-10-31.pdf", name)
}

func TestRenderPDF(t *testing.T) {
	body, err := RenderPDF(fixtureReport())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"), "PDF magic header")
}

func TestRenderPDFWithoutReliefs(t *testing.T) {
	data := fixtureReport()
	data.Reliefs = nil

	body, err := RenderPDF(data)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}

func TestRenderWorkbook(t *testing.T) {
	body, err := RenderWorkbook(fixtureReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{sheetSummary, sheetClasses, sheetReliefs}, f.GetSheetList())

	value, err := f.GetCellValue(sheetReliefs, "E2")
	require.NoError(t, err)
	assert.Equal(t, "HASIAH BINTI SALLEH", value)
}
