package schedule

import (
	"sync"
	"time"
)

// idGenerator выдает строго возрастающие ID на основе времени (миллисекунды)
// При нескольких бронированиях в одну миллисекунду ID увеличивается на 1
type idGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDGenerator(seed int64, now func() time.Time) *idGenerator {
	return &idGenerator{last: seed, now: now}
}

// Next возвращает следующий уникальный ID
func (g *idGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Raise не дает выдать ID меньше или равный floor
func (g *idGenerator) Raise(floor int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if floor > g.last {
		g.last = floor
	}
}
