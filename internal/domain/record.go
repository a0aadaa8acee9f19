package domain

import "github.com/google/uuid"

type SessionStatus string

const (
	StatusSubjectTeacher SessionStatus = "Guru Matapelajaran"
	StatusRelief         SessionStatus = "Guru Ganti"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case StatusSubjectTeacher, StatusRelief:
		return true
	default:
		return false
	}
}

// AttendanceRecord is one teaching session entry. Records are immutable once
// stored; the only mutations are whole-record deletion and store reset.
// OriginalTeacherName and ReliefReason are set if and only if the status is
// StatusRelief.
type AttendanceRecord struct {
	ID                  uuid.UUID     `json:"id"`
	Date                string        `json:"date"`
	TeacherName         string        `json:"teacherName"`
	OriginalTeacherName string        `json:"originalTeacherName,omitempty"`
	ReliefReason        string        `json:"reliefReason,omitempty"`
	Notes               string        `json:"notes,omitempty"`
	ClassName           string        `json:"className"`
	Subject             string        `json:"subject"`
	StartTime           string        `json:"startTime"`
	EndTime             string        `json:"endTime"`
	Status              SessionStatus `json:"status"`
	Timestamp           int64         `json:"timestamp"`
}

func (r AttendanceRecord) IsRelief() bool {
	return r.Status == StatusRelief
}

// Occupies reports whether the record covers the instant t within its day.
// The interval is half-open [StartTime, EndTime); HH:mm strings are
// fixed-width, so string order is time order. A record with StartTime equal
// to EndTime occupies nothing.
func (r AttendanceRecord) Occupies(t string) bool {
	return r.StartTime <= t && t < r.EndTime
}
