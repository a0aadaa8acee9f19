package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"service-attendance/internal/domain"
)

// RecordStore is the single authoritative ordered collection of attendance
// records. Records are append-only; the only other mutations are deletion by
// id and a wholesale reset.
type RecordStore interface {
	List(ctx context.Context) ([]domain.AttendanceRecord, error)
	ListByDate(ctx context.Context, date string) ([]domain.AttendanceRecord, error)
	Append(ctx context.Context, record domain.AttendanceRecord) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Reset(ctx context.Context) (int, error)
}

// FileRecordStore keeps the whole collection in memory and rewrites a single
// JSON snapshot file after every mutation. The snapshot is read once at
// startup; an absent or corrupt snapshot is treated as no data and replaced
// by the seed collection.
type FileRecordStore struct {
	path string

	mu      sync.Mutex
	records []domain.AttendanceRecord
}

func OpenFileRecordStore(path string, seed []domain.AttendanceRecord) (*FileRecordStore, error) {
	store := &FileRecordStore{path: path}

	data, err := os.ReadFile(path)
	if err == nil {
		var records []domain.AttendanceRecord
		if err := json.Unmarshal(data, &records); err == nil {
			store.records = records
			return store, nil
		}
	}

	store.records = append([]domain.AttendanceRecord(nil), seed...)
	if err := store.persist(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *FileRecordStore) List(ctx context.Context) ([]domain.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AttendanceRecord(nil), s.records...), nil
}

func (s *FileRecordStore) ListByDate(ctx context.Context, date string) ([]domain.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.AttendanceRecord
	for _, record := range s.records {
		if record.Date == date {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (s *FileRecordStore) Append(ctx context.Context, record domain.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return err
	}
	return nil
}

func (s *FileRecordStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0:0]
	for _, record := range s.records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(s.records) {
		return false, nil
	}

	previous := s.records
	s.records = kept
	if err := s.persist(); err != nil {
		s.records = previous
		return false, err
	}
	return true, nil
}

func (s *FileRecordStore) Reset(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.records
	s.records = nil
	if err := s.persist(); err != nil {
		s.records = previous
		return 0, err
	}
	return len(previous), nil
}

// persist rewrites the snapshot in full. The write goes to a temp file in the
// same directory followed by a rename, so readers of the snapshot never see a
// partial collection. Callers must hold mu.
func (s *FileRecordStore) persist() error {
	records := s.records
	if records == nil {
		records = []domain.AttendanceRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".records-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
