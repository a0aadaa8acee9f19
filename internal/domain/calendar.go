package domain

import "time"

// SlotDefinition is one fixed interval of the daily schedule. Display labels
// follow the school's printed timetable; Start is the canonical HH:mm start
// used for occupancy and blackout checks.
type SlotDefinition struct {
	Display string `json:"display"`
	Start   string `json:"start"`
	Recess  bool   `json:"recess,omitempty"`
}

var TimeSlots = []SlotDefinition{
	{Display: "7.30-8.00", Start: "07:30"},
	{Display: "8.00-8.30", Start: "08:00"},
	{Display: "8.30-9.00", Start: "08:30"},
	{Display: "9.00-9.30", Start: "09:00"},
	{Display: "9.30-10.00", Start: "09:30"},
	{Display: "10.00-10.20", Start: "10:00", Recess: true},
	{Display: "10.20-10.50", Start: "10:20"},
	{Display: "10.50-11.20", Start: "10:50"},
	{Display: "11.20-11.50", Start: "11:20"},
	{Display: "11.50-12.20", Start: "11:50"},
	{Display: "12.20-12.50", Start: "12:20"},
	{Display: "12.50-1.20", Start: "12:50"},
	{Display: "1.20-1.50", Start: "13:20"},
}

var ClassList = []string{
	"TAHUN 1",
	"TAHUN 2",
	"TAHUN 3",
	"TAHUN 4",
	"TAHUN 5",
	"TAHUN 6",
}

// Tier selects the blackout thresholds for a class.
type Tier int

const (
	TierUnclassified Tier = iota
	TierLowerPrimary
	TierUpperPrimary
)

func ClassTier(className string) Tier {
	switch className {
	case "TAHUN 1", "TAHUN 2", "TAHUN 3":
		return TierLowerPrimary
	case "TAHUN 4", "TAHUN 5", "TAHUN 6":
		return TierUpperPrimary
	default:
		return TierUnclassified
	}
}

// DayNames are Sunday-first, as shown next to the dashboard date picker.
var DayNames = []string{"AHAD", "ISNIN", "SELASA", "RABU", "KHAMIS", "JUMAAT", "SABTU"}

const isoDateLayout = "2006-01-02"

// DayLabel derives the weekday label for an ISO date. An unparseable date
// falls back to ISNIN rather than failing.
func DayLabel(date string) string {
	parsed, err := time.Parse(isoDateLayout, date)
	if err != nil {
		return "ISNIN"
	}
	return DayNames[int(parsed.Weekday())]
}
