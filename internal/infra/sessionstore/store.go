// Package sessionstore keeps per-browser cart sessions in memory. Cart
// state is session-local: created empty on first contact and never
// persisted, so the store is a guarded map with a TTL sweep, not a
// database.
package sessionstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"offerbee-storefront/internal/domain/cart"
	"offerbee-storefront/internal/pkg/clock"
	"offerbee-storefront/internal/pkg/config"

	"github.com/google/uuid"
)

type entry struct {
	session  *cart.Session
	lastSeen time.Time
}

type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	ttl      time.Duration
	sweep    time.Duration
	clock    clock.Clock
	logger   *slog.Logger
}

func New(cfg config.SessionConfig, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*entry),
		ttl:      cfg.TTL,
		sweep:    cfg.SweepInterval,
		clock:    clk,
		logger:   logger,
	}
}

// Update runs fn against the session for id, creating an empty one on
// first contact. The session never leaves the store's lock; fn returning
// an error does not discard mutations fn already made. Sessions are not
// transactional, so callers mutate last, after their guards pass.
func (s *Store) Update(id uuid.UUID, fn func(*cart.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.fetch(id)
	e.lastSeen = s.clock.Now()
	return fn(e.session)
}

// Read runs fn against the session without refreshing its TTL.
func (s *Store) Read(id uuid.UUID, fn func(*cart.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.fetch(id).session)
}

func (s *Store) fetch(id uuid.UUID) *entry {
	e, ok := s.sessions[id]
	if !ok {
		e = &entry{session: cart.NewSession(id), lastSeen: s.clock.Now()}
		s.sessions[id] = e
	}
	return e
}

// PurgeExpired drops sessions idle longer than the TTL and reports how
// many went away.
func (s *Store) PurgeExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			purged++
		}
	}
	return purged
}

// Run sweeps expired sessions until ctx is canceled.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(s.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged := s.PurgeExpired(s.clock.Now()); purged > 0 {
				s.logger.Debug("purged expired cart sessions", "count", purged)
			}
		}
	}
}

// Len is used by tests and the sweeper log line.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
