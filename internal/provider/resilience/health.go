package resilience

import (
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Health is a snapshot of one provider client's circuit state, reported by
// the CLI when a run fails.
type Health struct {
	Name          string
	CircuitState  gobreaker.State
	Counts        gobreaker.Counts
	LastFailureAt *time.Time
	LastError     string
}

// Healthy reports whether the provider's circuit is closed.
func (h Health) Healthy() bool {
	return h.CircuitState == gobreaker.StateClosed
}

// Registry tracks provider clients so their health can be inspected after
// a failed run.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*trackedClient
}

type trackedClient struct {
	client        *Client
	lastFailureAt *time.Time
	lastError     string
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*trackedClient)}
}

// Register adds a provider client under the given name.
func (r *Registry) Register(name string, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[name] = &trackedClient{client: client}
}

// RecordFailure notes a failed provider call.
func (r *Registry) RecordFailure(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.clients[name]; ok {
		now := time.Now()
		c.lastFailureAt = &now
		if err != nil {
			c.lastError = err.Error()
		}
	}
}

// AllHealth returns the health of every registered provider.
func (r *Registry) AllHealth() []Health {
	r.mu.RLock()
	defer r.mu.RUnlock()

	health := make([]Health, 0, len(r.clients))
	for name, c := range r.clients {
		health = append(health, Health{
			Name:          name,
			CircuitState:  c.client.State(),
			Counts:        c.client.Counts(),
			LastFailureAt: c.lastFailureAt,
			LastError:     c.lastError,
		})
	}
	return health
}
