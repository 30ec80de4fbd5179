package dispatch

import (
	"sync"
)

// Board is the in-process Dashboard: it keeps the latest accepted refresh for
// HTTP readers. A refresh older than the one already held is ignored.
type Board struct {
	mu     sync.RWMutex
	latest Refresh
	ok     bool

	subscribers []chan<- Refresh
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Publish stores r when it is newer than the held refresh, then notifies subscribers without blocking.
func (b *Board) Publish(r Refresh) {
	b.mu.Lock()
	if b.ok && r.Seq < b.latest.Seq {
		b.mu.Unlock()
		return
	}
	b.latest = r
	b.ok = true
	subs := append([]chan<- Refresh(nil), b.subscribers...)
	b.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- r:
		default:
		}
	}
}

// Latest returns the newest refresh and whether any was published.
func (b *Board) Latest() (Refresh, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.latest, b.ok
}

// Subscribe registers ch to receive every stored refresh. Slow receivers miss updates.
func (b *Board) Subscribe(ch chan<- Refresh) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, ch)
}
