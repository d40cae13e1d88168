package shared

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAttemptInFlight indicates the caller already has an unsettled attempt
// for the same workflow.
var ErrAttemptInFlight = errors.New("attempt already in flight")

// InflightGate serializes attempts per (client, workflow) pair. A second
// submission is rejected until the prior attempt settles, success or
// failure. State is per process: an attempt settles when its handler
// returns, so entries never outlive the request that created them.
type InflightGate struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewInflightGate constructs an empty gate.
func NewInflightGate() *InflightGate {
	return &InflightGate{active: make(map[string]struct{})}
}

// Acquire claims the slot for clientID within workflow. The returned
// release func must be called once the attempt settles.
func (g *InflightGate) Acquire(workflow, clientID string) (func(), error) {
	key := fmt.Sprintf("%s:%s", workflow, clientID)
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return nil, ErrAttemptInFlight
	}
	g.active[key] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.active, key)
		g.mu.Unlock()
	}, nil
}
