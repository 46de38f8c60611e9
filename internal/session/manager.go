package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
	"github.com/couchcryptid/stormwater-assessment/internal/observability"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Eviction reasons reported on the sessions_evicted_total metric.
const (
	reasonCapacity = "capacity"
	reasonIdle     = "idle"
)

// Manager keeps sessions in memory, bounded by count (least recently used
// goes first) and by idle time.
type Manager struct {
	catalogue   *domain.Catalogue
	maxSessions int
	idleTimeout time.Duration
	clock       clockwork.Clock
	metrics     *observability.Metrics
	logger      *slog.Logger

	mu      sync.Mutex
	entries map[string]*entry
	head    *entry // most recently used
	tail    *entry // least recently used
}

type entry struct {
	key      string
	session  *Session
	lastSeen time.Time
	prev     *entry
	next     *entry
}

// NewManager creates an empty session manager.
func NewManager(cat *domain.Catalogue, maxSessions int, idleTimeout time.Duration, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Manager {
	return &Manager{
		catalogue:   cat,
		maxSessions: maxSessions,
		idleTimeout: idleTimeout,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
		entries:     make(map[string]*entry),
	}
}

// Get returns the live session for id and marks it as used. Sessions idle for
// longer than the timeout are dropped and reported missing.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, false
	}
	now := m.clock.Now()
	if m.expired(e, now) {
		m.drop(e, reasonIdle)
		return nil, false
	}
	e.lastSeen = now
	m.moveToFront(e)
	return e.session, true
}

// GetOrCreate returns the session for id, or a fresh one when id is unknown
// or expired. created reports whether a new session was made.
func (m *Manager) GetOrCreate(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s, false
		}
	}
	return m.Create(), true
}

// Create starts a new empty session, evicting the least recently used one
// when the manager is full.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := newSession(uuid.NewString(), m.catalogue)
	e := &entry{key: s.id, session: s, lastSeen: m.clock.Now()}
	m.entries[e.key] = e
	m.addToFront(e)
	m.metrics.SessionsActive.Inc()

	for len(m.entries) > m.maxSessions {
		m.drop(m.tail, reasonCapacity)
	}
	return s
}

// Len returns the number of sessions held, expired or not.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Sweep drops every idle session and returns how many went.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	dropped := 0
	// Oldest sit at the tail; stop at the first live one.
	for m.tail != nil && m.expired(m.tail, now) {
		m.drop(m.tail, reasonIdle)
		dropped++
	}
	return dropped
}

// Run sweeps idle sessions on every tick until the context is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	m.logger.Info("session sweeper started", "interval", interval, "idle_timeout", m.idleTimeout)
	ticker := m.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("session sweeper stopping", "reason", ctx.Err())
			return
		case <-ticker.Chan():
			if n := m.Sweep(); n > 0 {
				m.logger.Debug("idle sessions dropped", "count", n)
			}
		}
	}
}

func (m *Manager) expired(e *entry, now time.Time) bool {
	return now.Sub(e.lastSeen) > m.idleTimeout
}

func (m *Manager) drop(e *entry, reason string) {
	delete(m.entries, e.key)
	m.remove(e)
	m.metrics.SessionsActive.Dec()
	m.metrics.SessionsEvicted.WithLabelValues(reason).Inc()
}

func (m *Manager) moveToFront(e *entry) {
	if e == m.head {
		return
	}
	m.remove(e)
	m.addToFront(e)
}

func (m *Manager) addToFront(e *entry) {
	e.next = m.head
	e.prev = nil
	if m.head != nil {
		m.head.prev = e
	}
	m.head = e
	if m.tail == nil {
		m.tail = e
	}
}

func (m *Manager) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		m.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		m.tail = e.prev
	}
	e.prev, e.next = nil, nil
}
