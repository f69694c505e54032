package xapi

import (
	"sync"
	"time"
)

// Exchange describes one request/response round trip.
// Arguments are never recorded since login carries the password.
type Exchange struct {
	Command   string        `json:"command"`
	CustomTag string        `json:"custom_tag"`
	ErrorCode string        `json:"error_code,omitempty"` // only set when the server answered status false
	Err       error         `json:"-"`
	Duration  time.Duration `json:"duration"`
	StartedAt time.Time     `json:"started_at"`
}

// Journal is an interface for recording request/response exchanges.
//
// Implementations must not retain the slice passed to Record.
type Journal interface {
	Record(...*Exchange)
}

// MemoryJournal stores exchanges in memory, useful for testing.
type MemoryJournal struct {
	mu        sync.RWMutex
	exchanges []*Exchange
}

// NewMemoryJournal creates a new MemoryJournal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{
		exchanges: make([]*Exchange, 0),
	}
}

// Record appends copies of the exchanges.
func (m *MemoryJournal) Record(exchanges ...*Exchange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range exchanges {
		cpy := new(Exchange)
		*cpy = *ex
		m.exchanges = append(m.exchanges, cpy)
	}
}

// Count returns the number of exchanges stored.
func (m *MemoryJournal) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.exchanges)
}

// Get returns the exchange at the specified index.
func (m *MemoryJournal) Get(index int) *Exchange {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.exchanges[index]
}

// Commands returns the command names in the order they were sent.
func (m *MemoryJournal) Commands() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	commands := make([]string, len(m.exchanges))
	for i, ex := range m.exchanges {
		commands[i] = ex.Command
	}
	return commands
}

// DiscardJournal discards all exchanges.
type DiscardJournal struct {
}

// NewDiscardJournal creates a new DiscardJournal.
func NewDiscardJournal() *DiscardJournal {
	return &DiscardJournal{}
}

// Record does nothing.
func (j *DiscardJournal) Record(exchanges ...*Exchange) {

}
