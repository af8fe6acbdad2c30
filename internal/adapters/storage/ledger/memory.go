// Package ledger stores the sandbox gateway's idempotency records.
package ledger

import (
	"context"
	"sync"

	"github.com/jsamuelsen/gateway-client/internal/ports"
)

// healthName is reported by every ledger implementation.
const healthName = "idempotency-ledger"

// Memory keeps records in a map. Records live as long as the process.
type Memory struct {
	mu      sync.RWMutex
	records map[string]*ports.IdempotencyRecord
}

// NewMemory creates an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]*ports.IdempotencyRecord),
	}
}

// Load implements ports.IdempotencyLedger.
func (m *Memory) Load(_ context.Context, key string) (*ports.IdempotencyRecord, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}

	return cloneRecord(rec), true, nil
}

// Store implements ports.IdempotencyLedger.
func (m *Memory) Store(_ context.Context, key string, rec *ports.IdempotencyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = cloneRecord(rec)

	return nil
}

// Len returns the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}

// Name implements ports.HealthChecker.
func (m *Memory) Name() string { return healthName }

// Check implements ports.HealthChecker. The map is always available.
func (m *Memory) Check(context.Context) error { return nil }

func cloneRecord(rec *ports.IdempotencyRecord) *ports.IdempotencyRecord {
	c := *rec
	c.Body = append([]byte(nil), rec.Body...)

	return &c
}
