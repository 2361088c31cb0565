// Package idgen hands out product ids.
//
// Ids are Unix milliseconds at creation time, like the ids the catalog has
// always written, but a counter guarantees each id is larger than every id
// issued or observed before it, so two creations within the same
// millisecond still get distinct ids.
package idgen

import (
	"sync"
	"time"
)

// Clock returns the current time
type Clock func() time.Time

// Generator produces strictly increasing ids
type Generator struct {
	mu    sync.Mutex
	clock Clock
	last  int64
}

// New creates a generator using the wall clock
func New() *Generator {
	return NewWithClock(time.Now)
}

// NewWithClock creates a generator with a custom clock (for testing)
func NewWithClock(clock Clock) *Generator {
	return &Generator{clock: clock}
}

// Next returns a fresh id
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.clock().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe records an id already in use so later ids never collide with it
func (g *Generator) Observe(ids ...int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		if id > g.last {
			g.last = id
		}
	}
}

// Last returns the highest id issued or observed
func (g *Generator) Last() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}
