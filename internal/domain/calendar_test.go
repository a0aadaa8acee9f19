package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "ISNIN", DayLabel("2023-10-23"))
	assert.Equal(t, "SELASA", DayLabel("2023-10-24"))
	assert.Equal(t, "JUMAAT", DayLabel("2023-10-27"))
	assert.Equal(t, "SABTU", DayLabel("2023-10-28"))
	assert.Equal(t, "AHAD", DayLabel("2023-10-29"))

	// Unparseable dates fall back to Monday.
	assert.Equal(t, "ISNIN", DayLabel("24/10/2023"))
	assert.Equal(t, "ISNIN", DayLabel(""))
}

func TestClassTier(t *testing.T) {
	for _, className := range []string{"TAHUN 1", "TAHUN 2", "TAHUN 3"} {
		assert.Equal(t, TierLowerPrimary, ClassTier(className))
	}
	for _, className := range []string{"TAHUN 4", "TAHUN 5", "TAHUN 6"} {
		assert.Equal(t, TierUpperPrimary, ClassTier(className))
	}
	assert.Equal(t, TierUnclassified, ClassTier("PRA SEKOLAH"))
}

func TestTimeSlotsSingleRecess(t *testing.T) {
	recessCount := 0
	for _, slot := range TimeSlots {
		if slot.Recess {
			recessCount++
			assert.Equal(t, "10:00", slot.Start)
		}
	}
	assert.Equal(t, 1, recessCount)
}
