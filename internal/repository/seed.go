package repository

import (
	"embed"
	"fmt"

	"github.com/goccy/go-json"

	"service-attendance/internal/domain"
)

//go:embed seed.json
var seedFS embed.FS

// SeedRecords returns the example records a fresh store starts with.
func SeedRecords() ([]domain.AttendanceRecord, error) {
	data, err := seedFS.ReadFile("seed.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded seed: %w", err)
	}

	var records []domain.AttendanceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode embedded seed: %w", err)
	}
	return records, nil
}
