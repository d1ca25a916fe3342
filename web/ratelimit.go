package web

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Idle clients are forgotten after this long so the map cannot grow
// unboundedly.
const clientIdleTTL = 10 * time.Minute

// clientLimiter hands out one token bucket per client address.
type clientLimiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*clientEntry
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(limit rate.Limit, burst int) *clientLimiter {
	return &clientLimiter{
		limit:   limit,
		burst:   burst,
		clients: make(map[string]*clientEntry),
	}
}

// allow reports whether the client may proceed, consuming one token.
func (cl *clientLimiter) allow(client string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := time.Now()
	entry, ok := cl.clients[client]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[client] = entry
	}
	entry.lastSeen = now
	cl.prune(now)
	return entry.limiter.Allow()
}

// prune drops entries idle past the TTL. Called with mu held.
func (cl *clientLimiter) prune(now time.Time) {
	for addr, entry := range cl.clients {
		if now.Sub(entry.lastSeen) > clientIdleTTL {
			delete(cl.clients, addr)
		}
	}
}
