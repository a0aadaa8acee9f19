package repository

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"service-attendance/internal/domain"
)

type AuditLog interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
	List(ctx context.Context) ([]AuditEntry, error)
}

// AuditEntry is one stored mutation event, in insertion order.
type AuditEntry struct {
	ID        uuid.UUID       `json:"id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// FileAuditLog appends entries as JSON lines. Entries are never rewritten or
// deleted.
type FileAuditLog struct {
	path string
	mu   sync.Mutex
}

func NewFileAuditLog(path string) *FileAuditLog {
	return &FileAuditLog{path: path}
}

func (l *FileAuditLog) Insert(ctx context.Context, event domain.AuditEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	entry := AuditEntry{
		ID:        uuid.New(),
		EventType: event.EventType,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(append(line, '\n')); err != nil {
		return err
	}
	return file.Sync()
}

func (l *FileAuditLog) List(ctx context.Context) ([]AuditEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []AuditEntry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry AuditEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
