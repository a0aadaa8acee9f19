package service

import (
	"math"
	"sort"

	"service-attendance/internal/domain"
)

// UnknownTeacher is the grouping key for relief records that carry no absent
// teacher name.
const UnknownTeacher = "Tidak Diketahui"

func countReliefs(records []domain.AttendanceRecord) int {
	count := 0
	for _, record := range records {
		if record.IsRelief() {
			count++
		}
	}
	return count
}

func wholePct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func oneDecimalPct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// DailyClassStats splits one class's records for a day into subject and
// relief sessions with whole-number percentages.
func DailyClassStats(className string, dayRecords []domain.AttendanceRecord) domain.ClassDayStats {
	total := 0
	reliefCount := 0
	for _, record := range dayRecords {
		if record.ClassName != className {
			continue
		}
		total++
		if record.IsRelief() {
			reliefCount++
		}
	}
	subjectCount := total - reliefCount

	return domain.ClassDayStats{
		ClassName:    className,
		Total:        total,
		SubjectCount: subjectCount,
		ReliefCount:  reliefCount,
		SubjectPct:   wholePct(subjectCount, total),
		ReliefPct:    wholePct(reliefCount, total),
	}
}

// DailyOverallStats is the whole-day split with one-decimal percentages.
func DailyOverallStats(dayRecords []domain.AttendanceRecord) domain.OverallStats {
	total := len(dayRecords)
	reliefCount := countReliefs(dayRecords)
	subjectCount := total - reliefCount

	return domain.OverallStats{
		Total:        total,
		SubjectCount: subjectCount,
		ReliefCount:  reliefCount,
		SubjectPct:   oneDecimalPct(subjectCount, total),
		ReliefPct:    oneDecimalPct(reliefCount, total),
	}
}

// GroupReliefsByAbsentee groups a day's relief records by the absent
// teacher. Groups are ordered lexicographically by name; members are ordered
// by start time ascending.
func GroupReliefsByAbsentee(dayRecords []domain.AttendanceRecord) []domain.ReliefGroup {
	byName := make(map[string][]domain.AttendanceRecord)
	for _, record := range dayRecords {
		if !record.IsRelief() {
			continue
		}
		name := record.OriginalTeacherName
		if name == "" {
			name = UnknownTeacher
		}
		byName[name] = append(byName[name], record)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]domain.ReliefGroup, 0, len(names))
	for _, name := range names {
		members := byName[name]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].StartTime < members[j].StartTime
		})
		groups = append(groups, domain.ReliefGroup{OriginalTeacherName: name, Records: members})
	}
	return groups
}

// FilterRange keeps records with startDate <= date <= endDate. Dates are
// fixed-width ISO strings, so string comparison is date comparison.
func FilterRange(startDate, endDate string, records []domain.AttendanceRecord) []domain.AttendanceRecord {
	var matched []domain.AttendanceRecord
	for _, record := range records {
		if record.Date >= startDate && record.Date <= endDate {
			matched = append(matched, record)
		}
	}
	return matched
}

// RangeStats is DailyOverallStats over an inclusive date range.
func RangeStats(startDate, endDate string, records []domain.AttendanceRecord) domain.OverallStats {
	return DailyOverallStats(FilterRange(startDate, endDate, records))
}

// PerClassRangeBreakdown produces one row per class in the fixed class
// order, whether or not the class has records in range.
func PerClassRangeBreakdown(startDate, endDate string, records []domain.AttendanceRecord) []domain.ClassRangeStats {
	inRange := FilterRange(startDate, endDate, records)

	rows := make([]domain.ClassRangeStats, 0, len(domain.ClassList))
	for _, className := range domain.ClassList {
		total := 0
		reliefCount := 0
		for _, record := range inRange {
			if record.ClassName != className {
				continue
			}
			total++
			if record.IsRelief() {
				reliefCount++
			}
		}
		subjectCount := total - reliefCount
		rows = append(rows, domain.ClassRangeStats{
			ClassName:    className,
			Total:        total,
			SubjectCount: subjectCount,
			ReliefCount:  reliefCount,
			SubjectPct:   wholePct(subjectCount, total),
		})
	}
	return rows
}

// SortedReliefList enumerates the range's relief records ordered by
// (date, startTime) ascending with 1-based sequence numbers.
func SortedReliefList(startDate, endDate string, records []domain.AttendanceRecord) []domain.NumberedRecord {
	var reliefs []domain.AttendanceRecord
	for _, record := range FilterRange(startDate, endDate, records) {
		if record.IsRelief() {
			reliefs = append(reliefs, record)
		}
	}

	sort.SliceStable(reliefs, func(i, j int) bool {
		if reliefs[i].Date != reliefs[j].Date {
			return reliefs[i].Date < reliefs[j].Date
		}
		return reliefs[i].StartTime < reliefs[j].StartTime
	})

	numbered := make([]domain.NumberedRecord, 0, len(reliefs))
	for i, record := range reliefs {
		numbered = append(numbered, domain.NumberedRecord{Seq: i + 1, AttendanceRecord: record})
	}
	return numbered
}
