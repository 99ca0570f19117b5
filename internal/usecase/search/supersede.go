package search

import "sync"

// Superseder implements the latest-request-wins policy for interactive
// callers: each Begin for a client key invalidates every earlier ticket for
// that key. It replaces UI-level debounce-and-discard at the service
// boundary. Safe for concurrent use.
type Superseder struct {
	mu  sync.Mutex
	seq map[string]uint64
}

// NewSuperseder creates an empty supersession guard.
func NewSuperseder() *Superseder {
	return &Superseder{seq: make(map[string]uint64)}
}

// Ticket identifies one in-flight request for a client key.
type Ticket struct {
	guard *Superseder
	key   string
	seq   uint64
}

// Begin registers a new in-flight request for key and invalidates all
// earlier tickets with the same key.
func (g *Superseder) Begin(key string) Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq[key]++
	return Ticket{guard: g, key: key, seq: g.seq[key]}
}

// Stale reports whether a newer request for the same key has begun since
// this ticket was issued. The zero Ticket is never stale.
func (t Ticket) Stale() bool {
	if t.guard == nil {
		return false
	}
	t.guard.mu.Lock()
	defer t.guard.mu.Unlock()
	return t.guard.seq[t.key] != t.seq
}

// Done releases the key's bookkeeping if this ticket is still the latest,
// keeping the guard from growing with every user ID ever seen. Calling Done
// on a superseded or zero Ticket is a no-op.
func (t Ticket) Done() {
	if t.guard == nil {
		return
	}
	t.guard.mu.Lock()
	defer t.guard.mu.Unlock()
	if t.guard.seq[t.key] == t.seq {
		delete(t.guard.seq, t.key)
	}
}
