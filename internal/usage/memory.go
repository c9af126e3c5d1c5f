package usage

import (
	"context"
	"sync"

	"github.com/churnpilot/churnpilot/internal/entity"
)

// MemoryStore is an in-process CounterStore and AuditLog. It backs local
// development and tests; production wiring uses the repository package.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]int64
	audits   []entity.ExtractionAudit
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counters: make(map[string]int64)}
}

func (m *MemoryStore) IncrementAndGet(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
	return m.counters[key], nil
}

func (m *MemoryStore) Read(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[key], nil
}

func (m *MemoryStore) Append(_ context.Context, audit *entity.ExtractionAudit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.audits = append(m.audits, *audit)
	return nil
}

// Audits returns a copy of the appended audit rows.
func (m *MemoryStore) Audits() []entity.ExtractionAudit {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.ExtractionAudit, len(m.audits))
	copy(out, m.audits)
	return out
}
