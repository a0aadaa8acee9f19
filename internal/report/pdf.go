package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"service-attendance/internal/domain"
)

// Filename returns the download name for a rendered report, with the
// selected range embedded.
func Filename(r domain.ReliefReport, ext string) string {
	return fmt.Sprintf("Laporan_Analisis_MMI_%s_%s.%s", r.StartDate, r.EndDate, ext)
}

func pct1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// RenderPDF produces the paginated report: range summary, per-class
// breakdown, and the detailed relief list on its own page.
func RenderPDF(r domain.ReliefReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Laporan Analisis Keberadaan Guru - MMI", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Laporan Analisis Keberadaan Guru - MMI", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Tempoh Laporan: %s hingga %s", r.StartDate, r.EndDate), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Dijana pada: "+r.GeneratedAt, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "1. Ringkasan Peratusan Kehadiran (Sesi Pengajaran)", "", 1, "L", false, 0, "")

	summaryWidths := []float64{110, 45, 45}
	writeTable(pdf, summaryWidths,
		[]string{"Kategori", "Jumlah Sesi", "Peratusan (%)"},
		[][]string{
			{"Hadir (Guru Matapelajaran)", strconv.Itoa(r.Overall.SubjectCount), pct1(r.Overall.SubjectPct)},
			{"Tidak Hadir (Diganti oleh Guru Ganti)", strconv.Itoa(r.Overall.ReliefCount), pct1(r.Overall.ReliefPct)},
			{"JUMLAH KESELURUHAN", strconv.Itoa(r.Overall.Total), "100%"},
		})
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "2. Analisis Terperinci Mengikut Kelas", "", 1, "L", false, 0, "")

	classRows := make([][]string, 0, len(r.Classes))
	for _, row := range r.Classes {
		classRows = append(classRows, []string{
			row.ClassName,
			strconv.Itoa(row.Total),
			strconv.Itoa(row.SubjectCount),
			strconv.Itoa(row.ReliefCount),
			strconv.Itoa(row.SubjectPct) + "%",
		})
	}
	writeTable(pdf, []float64{50, 40, 40, 40, 50},
		[]string{"Kelas", "Jumlah Sesi", "Guru Subjek", "Guru Ganti", "% Kehadiran Subjek"},
		classRows)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "3. Senarai Rekod Guru Ganti (Terperinci)", "", 1, "L", false, 0, "")

	if len(r.Reliefs) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, "Tiada rekod guru ganti dalam tempoh ini.", "", 1, "L", false, 0, "")
	} else {
		reliefRows := make([][]string, 0, len(r.Reliefs))
		for _, entry := range r.Reliefs {
			reliefRows = append(reliefRows, []string{
				strconv.Itoa(entry.Seq),
				entry.Date,
				entry.StartTime + " - " + entry.EndTime,
				entry.ClassName,
				entry.TeacherName,
				dash(entry.OriginalTeacherName),
				dash(entry.ReliefReason),
				dash(entry.Notes),
			})
		}
		writeTable(pdf, []float64{12, 26, 30, 26, 55, 55, 35, 40},
			[]string{"No.", "Tarikh", "Masa", "Kelas", "GURU GANTI", "GURU TIDAK HADIR", "Sebab", "Catatan"},
			reliefRows)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTable(pdf *gofpdf.Fpdf, widths []float64, head []string, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	for i, label := range head {
		pdf.CellFormat(widths[i], 8, label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(241, 245, 249)
	for _, row := range rows {
		for i, value := range row {
			pdf.CellFormat(widths[i], 7, value, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}
}
