package utils

import (
	"sync"
	"time"
)

// StatusSlot records the most recent background failure (generator inserts,
// overdue sweeps, the change-feed listener). The dashboard polls it instead
// of receiving errors inline, so only the latest failure is retained.
type StatusSlot struct {
	mu         sync.Mutex
	lastOp     string
	lastError  string
	occurredAt time.Time
}

type StatusSnapshot struct {
	Operation  string    `json:"operation,omitempty"`
	LastError  string    `json:"last_error,omitempty"`
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	Healthy    bool      `json:"healthy"`
}

func NewStatusSlot() *StatusSlot {
	return &StatusSlot{}
}

// Record overwrites the slot with the given failure. A nil err is ignored.
func (s *StatusSlot) Record(op string, err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOp = op
	s.lastError = err.Error()
	s.occurredAt = time.Now().UTC()
}

// Clear resets the slot, typically after a successful run of the same
// operation class.
func (s *StatusSlot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOp = ""
	s.lastError = ""
	s.occurredAt = time.Time{}
}

func (s *StatusSlot) Snapshot() StatusSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatusSnapshot{
		Operation:  s.lastOp,
		LastError:  s.lastError,
		OccurredAt: s.occurredAt,
		Healthy:    s.lastError == "",
	}
}
