package domain

// ClassDayStats is the per-class split for a single day. Percentages are
// rounded to the nearest integer; both are 0 when Total is 0.
type ClassDayStats struct {
	ClassName    string `json:"className"`
	Total        int    `json:"total"`
	SubjectCount int    `json:"subjectCount"`
	ReliefCount  int    `json:"reliefCount"`
	SubjectPct   int    `json:"subjectPct"`
	ReliefPct    int    `json:"reliefPct"`
}

// OverallStats carries the same split with one-decimal percentages, used for
// the daily summary box and the report header.
type OverallStats struct {
	Total        int     `json:"total"`
	SubjectCount int     `json:"subjectCount"`
	ReliefCount  int     `json:"reliefCount"`
	SubjectPct   float64 `json:"subjectPct"`
	ReliefPct    float64 `json:"reliefPct"`
}

// ClassRangeStats is one row of the report's per-class breakdown.
type ClassRangeStats struct {
	ClassName    string `json:"className"`
	Total        int    `json:"total"`
	SubjectCount int    `json:"subjectCount"`
	ReliefCount  int    `json:"reliefCount"`
	SubjectPct   int    `json:"subjectPct"`
}

// ReliefGroup collects a day's relief sessions covering one absent teacher.
type ReliefGroup struct {
	OriginalTeacherName string             `json:"originalTeacherName"`
	Records             []AttendanceRecord `json:"records"`
}

// NumberedRecord wraps a record with its 1-based position in the report's
// detailed relief list.
type NumberedRecord struct {
	Seq int `json:"seq"`
	AttendanceRecord
}

// ReliefReport is the full content of the exported report for a date range.
type ReliefReport struct {
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	GeneratedAt string            `json:"generatedAt"`
	Overall     OverallStats      `json:"overall"`
	Classes     []ClassRangeStats `json:"classes"`
	Reliefs     []NumberedRecord  `json:"reliefs"`
}
