// Package ids mints opaque identifiers for newly created users.
//
// Identifiers are millisecond epoch timestamps rendered as decimal
// strings. That is good enough for the workload this system has — one
// person submitting a form — and keeps ids stable, sortable, and
// readable. This is not a distributed-uniqueness scheme.
package ids

import (
	"strconv"
	"sync"
	"time"
)

// Generator mints ids. It remembers the last value it produced so two
// submissions landing in the same millisecond still get distinct ids
// within this process. The zero value is ready to use.
type Generator struct {
	mu   sync.Mutex
	last int64
}

// New returns a fresh id, strictly greater than any id this Generator
// has handed out before.
func (g *Generator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return strconv.FormatInt(now, 10)
}
