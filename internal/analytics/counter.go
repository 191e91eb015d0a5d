// Package analytics tracks how often each topic wins a query and renders
// the frequency report shown by the shell and the API.
package analytics

import "sync"

// Counter is a process-lifetime tally of winning topics.
// It is safe for concurrent use.
type Counter struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Increment adds one to the count for id.
func (c *Counter) Increment(id string) {
	c.mu.Lock()
	c.counts[id]++
	c.mu.Unlock()
}

// Count returns the current count for id.
func (c *Counter) Count(id string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[id]
}

// Len returns the number of distinct topics counted so far.
func (c *Counter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.counts)
}

// Snapshot returns a copy of the current counts.
func (c *Counter) Snapshot() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]int, len(c.counts))
	for id, n := range c.counts {
		out[id] = n
	}
	return out
}
