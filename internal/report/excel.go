package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"service-attendance/internal/domain"
)

const (
	sheetSummary = "Ringkasan"
	sheetClasses = "Analisis Kelas"
	sheetReliefs = "Guru Ganti"
)

// RenderWorkbook produces the report as a three-sheet workbook with the same
// content as the PDF.
func RenderWorkbook(r domain.ReliefReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetSummary); err != nil {
		return nil, err
	}

	setRow(f, sheetSummary, 1, "Laporan Analisis Keberadaan Guru - MMI")
	setRow(f, sheetSummary, 2, fmt.Sprintf("Tempoh Laporan: %s hingga %s", r.StartDate, r.EndDate))
	setRow(f, sheetSummary, 3, "Dijana pada: "+r.GeneratedAt)
	setRow(f, sheetSummary, 5, "Kategori", "Jumlah Sesi", "Peratusan (%)")
	setRow(f, sheetSummary, 6, "Hadir (Guru Matapelajaran)", r.Overall.SubjectCount, pct1(r.Overall.SubjectPct))
	setRow(f, sheetSummary, 7, "Tidak Hadir (Diganti oleh Guru Ganti)", r.Overall.ReliefCount, pct1(r.Overall.ReliefPct))
	setRow(f, sheetSummary, 8, "JUMLAH KESELURUHAN", r.Overall.Total, "100%")

	if _, err := f.NewSheet(sheetClasses); err != nil {
		return nil, err
	}
	setRow(f, sheetClasses, 1, "Kelas", "Jumlah Sesi", "Guru Subjek", "Guru Ganti", "% Kehadiran Subjek")
	for i, row := range r.Classes {
		setRow(f, sheetClasses, i+2, row.ClassName, row.Total, row.SubjectCount, row.ReliefCount, strconv.Itoa(row.SubjectPct)+"%")
	}

	if _, err := f.NewSheet(sheetReliefs); err != nil {
		return nil, err
	}
	setRow(f, sheetReliefs, 1, "No.", "Tarikh", "Masa", "Kelas", "GURU GANTI", "GURU TIDAK HADIR", "Sebab", "Catatan")
	for i, entry := range r.Reliefs {
		setRow(f, sheetReliefs, i+2,
			entry.Seq,
			entry.Date,
			entry.StartTime+" - "+entry.EndTime,
			entry.ClassName,
			entry.TeacherName,
			dash(entry.OriginalTeacherName),
			dash(entry.ReliefReason),
			dash(entry.Notes),
		)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, value)
	}
}
