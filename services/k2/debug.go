package k2

import (
	"sync"

	"k2demo/models"
)

// DefaultDebugCapacity bounds how many compiler traces are retained.
const DefaultDebugCapacity = 50

// DebugStore keeps compiler traces keyed by correlation id with FIFO
// eviction. Safe for concurrent use.
type DebugStore struct {
	mu       sync.Mutex
	capacity int
	logs     map[string]*models.DebugLog
	order    []string // insertion order, oldest first
}

func NewDebugStore(capacity int) *DebugStore {
	if capacity <= 0 {
		capacity = DefaultDebugCapacity
	}
	return &DebugStore{
		capacity: capacity,
		logs:     make(map[string]*models.DebugLog, capacity),
	}
}

// Put stores a trace. Re-storing an existing correlation id replaces the
// trace in place without disturbing eviction order.
func (s *DebugStore) Put(log *models.DebugLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.logs[log.CorrelationID]; exists {
		s.logs[log.CorrelationID] = log
		return
	}
	for len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.logs, oldest)
	}
	s.logs[log.CorrelationID] = log
	s.order = append(s.order, log.CorrelationID)
}

// Get looks up a trace by correlation id.
func (s *DebugStore) Get(correlationID string) (*models.DebugLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log, ok := s.logs[correlationID]
	return log, ok
}

// Len reports how many traces are currently retained.
func (s *DebugStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
