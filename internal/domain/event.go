package domain

// AuditEvent describes one store mutation for the append-only audit log.
type AuditEvent struct {
	EventType string
	Payload   any
}

const (
	EventRecordCreated = "RecordCreated"
	EventRecordDeleted = "RecordDeleted"
	EventStoreReset    = "StoreReset"
)

type RecordDeletedPayload struct {
	ID string `json:"id"`
}

type StoreResetPayload struct {
	RemovedCount int `json:"removed_count"`
}
