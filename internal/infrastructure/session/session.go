package session

import (
	"context"
	"sync"
	"time"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/infrastructure/metrics"
	"freight_settlement/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Session caches the permissions of one operator token and is kept fresh by
// a background refresher until logout.
type Session struct {
	token string

	mu    sync.RWMutex
	perms entities.Permissions
	at    time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

func (s *Session) Permissions() entities.Permissions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perms
}

func (s *Session) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.at
}

func (s *Session) set(p entities.Permissions, now time.Time) {
	s.mu.Lock()
	s.perms = p
	s.at = now
	s.mu.Unlock()
}

// Manager owns every live session. Fetches for the same token are collapsed
// so at most one request per token is in flight.
type Manager struct {
	source   interfaces.IPermissionSource
	interval time.Duration
	timeout  time.Duration

	group singleflight.Group

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
}

func NewManager(source interfaces.IPermissionSource, interval, timeout time.Duration) *Manager {
	return &Manager{
		source:   source,
		interval: interval,
		timeout:  timeout,
		sessions: map[string]*Session{},
	}
}

// Permissions returns the cached permissions for token, loading them on
// first use and starting the refresher. The load outlives a caller that
// gives up so others waiting on it still get the result.
func (m *Manager) Permissions(ctx context.Context, token string) (entities.Permissions, error) {
	if s := m.lookup(token); s != nil {
		return s.Permissions(), nil
	}

	ch := m.group.DoChan(token, func() (any, error) {
		perms, err := m.fetch(context.WithoutCancel(ctx), token)
		if err != nil {
			return nil, err
		}
		m.install(token, perms)
		return perms, nil
	})
	var r singleflight.Result
	select {
	case <-ctx.Done():
		return entities.Permissions{}, ctx.Err()
	case r = <-ch:
	}
	if r.Err != nil {
		log.WithError(r.Err).Warn("[session][manager] permission load failed")
		return entities.Permissions{}, r.Err
	}
	perms := r.Val.(entities.Permissions)
	// The flight may have been a refresh of a session that was logged out.
	m.install(token, perms)
	return perms, nil
}

// Logout stops the refresher of token and forgets its permissions. It
// reports whether a session existed.
func (m *Manager) Logout(token string) bool {
	m.mu.Lock()
	s, ok := m.sessions[token]
	if ok {
		delete(m.sessions, token)
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	s.cancel()
	<-s.done
	metrics.ActiveSessions.Dec()
	log.WithField("user", s.Permissions().User).Info("[session][manager] logged out")
	return true
}

// Close stops every refresher. Later loads are served but not cached.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	sessions := m.sessions
	m.sessions = map[string]*Session{}
	m.mu.Unlock()

	for _, s := range sessions {
		s.cancel()
	}
	for _, s := range sessions {
		<-s.done
		metrics.ActiveSessions.Dec()
	}
}

func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) lookup(token string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[token]
}

func (m *Manager) install(token string, perms entities.Permissions) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if _, ok := m.sessions[token]; ok {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{token: token, cancel: cancel, done: make(chan struct{})}
	s.set(perms, time.Now().UTC())
	m.sessions[token] = s
	metrics.ActiveSessions.Inc()

	go m.run(ctx, s)
}

func (m *Manager) current(s *Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[s.token] == s
}

func (m *Manager) run(ctx context.Context, s *Session) {
	defer close(s.done)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.refresh(ctx, s)
		}
	}
}

// refresh replaces the permissions wholesale on success and keeps the
// previous ones on failure. A result arriving after logout is dropped.
func (m *Manager) refresh(ctx context.Context, s *Session) {
	ch := m.group.DoChan(s.token, func() (any, error) {
		return m.fetch(context.WithoutCancel(ctx), s.token)
	})
	var r singleflight.Result
	select {
	case <-ctx.Done():
		return
	case r = <-ch:
	}
	if !m.current(s) {
		return
	}
	if err := r.Err; err != nil {
		metrics.PermissionRefreshes.WithLabelValues(metrics.OutcomeError).Inc()
		log.WithError(err).WithField("user", s.Permissions().User).Warn("[session][refresher] refresh failed, keeping previous permissions")
		return
	}
	metrics.PermissionRefreshes.WithLabelValues(metrics.OutcomeSuccess).Inc()
	s.set(r.Val.(entities.Permissions), time.Now().UTC())
}

func (m *Manager) fetch(ctx context.Context, token string) (entities.Permissions, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.source.GetPermissions(ctx, token)
}
