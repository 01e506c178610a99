package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"freight_settlement/internal/domain/entities"
)

type fakeSource struct {
	calls atomic.Int32
	gate  chan struct{}

	mu    sync.Mutex
	perms entities.Permissions
	err   error
}

func (f *fakeSource) GetPermissions(ctx context.Context, token string) (entities.Permissions, error) {
	f.calls.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return entities.Permissions{}, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.perms, f.err
}

func (f *fakeSource) setResult(p entities.Permissions, err error) {
	f.mu.Lock()
	f.perms = p
	f.err = err
	f.mu.Unlock()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestManager_LoadsOnceAndCaches(t *testing.T) {
	src := &fakeSource{perms: entities.Permissions{User: "ana", Grants: []string{"authorize_payments"}}}
	m := NewManager(src, time.Hour, time.Second)
	defer m.Close()

	for i := 0; i < 3; i++ {
		p, err := m.Permissions(context.Background(), "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Has("authorize_payments") {
			t.Fatalf("unexpected permissions: %+v", p)
		}
	}
	if got := src.calls.Load(); got != 1 {
		t.Fatalf("expected 1 remote call, got %d", got)
	}
	if m.Active() != 1 {
		t.Fatalf("expected 1 active session, got %d", m.Active())
	}
}

func TestManager_ConcurrentFirstUseSharesOneRequest(t *testing.T) {
	src := &fakeSource{perms: entities.Permissions{User: "ana"}, gate: make(chan struct{})}
	m := NewManager(src, time.Hour, time.Second)
	defer m.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Permissions(context.Background(), "tok"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	waitFor(t, func() bool { return src.calls.Load() >= 1 })
	time.Sleep(20 * time.Millisecond)
	close(src.gate)
	wg.Wait()

	if got := src.calls.Load(); got != 1 {
		t.Fatalf("expected 1 remote call, got %d", got)
	}
}

func TestManager_LoadFailureIsNotCached(t *testing.T) {
	src := &fakeSource{err: errors.New("down")}
	m := NewManager(src, time.Hour, time.Second)
	defer m.Close()

	if _, err := m.Permissions(context.Background(), "tok"); err == nil {
		t.Fatalf("expected error")
	}
	if m.Active() != 0 {
		t.Fatalf("expected no session after failed load")
	}

	src.setResult(entities.Permissions{User: "ana"}, nil)
	if _, err := m.Permissions(context.Background(), "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.calls.Load() != 2 {
		t.Fatalf("expected retry to reach the remote")
	}
}

func TestManager_RefreshReplacesAndKeepsOnFailure(t *testing.T) {
	src := &fakeSource{perms: entities.Permissions{User: "ana", Grants: []string{"view_trips"}}}
	m := NewManager(src, 10*time.Millisecond, time.Second)
	defer m.Close()

	if _, err := m.Permissions(context.Background(), "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src.setResult(entities.Permissions{User: "ana", Grants: []string{"authorize_payments"}}, nil)
	waitFor(t, func() bool {
		p, _ := m.Permissions(context.Background(), "tok")
		return p.Has("authorize_payments") && !p.Has("view_trips")
	})

	src.setResult(entities.Permissions{}, errors.New("down"))
	before := src.calls.Load()
	waitFor(t, func() bool { return src.calls.Load() > before+2 })

	p, _ := m.Permissions(context.Background(), "tok")
	if !p.Has("authorize_payments") {
		t.Fatalf("expected previous permissions to be kept, got %+v", p)
	}
}

func TestManager_LogoutStopsRefresher(t *testing.T) {
	src := &fakeSource{perms: entities.Permissions{User: "ana"}}
	m := NewManager(src, 5*time.Millisecond, time.Second)
	defer m.Close()

	if _, err := m.Permissions(context.Background(), "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitFor(t, func() bool { return src.calls.Load() > 2 })

	if !m.Logout("tok") {
		t.Fatalf("expected session to exist")
	}
	after := src.calls.Load()
	time.Sleep(40 * time.Millisecond)
	if src.calls.Load() != after {
		t.Fatalf("expected no refresh after logout")
	}
	if m.Active() != 0 {
		t.Fatalf("expected no active sessions")
	}
	if m.Logout("tok") {
		t.Fatalf("expected second logout to report no session")
	}
}

func TestManager_Close(t *testing.T) {
	src := &fakeSource{perms: entities.Permissions{User: "ana"}}
	m := NewManager(src, 5*time.Millisecond, time.Second)

	_, _ = m.Permissions(context.Background(), "a")
	_, _ = m.Permissions(context.Background(), "b")
	if m.Active() != 2 {
		t.Fatalf("expected 2 sessions, got %d", m.Active())
	}
	m.Close()
	if m.Active() != 0 {
		t.Fatalf("expected sessions to be dropped")
	}

	if _, err := m.Permissions(context.Background(), "c"); err != nil {
		t.Fatalf("unexpected error after close: %v", err)
	}
	if m.Active() != 0 {
		t.Fatalf("expected no caching after close")
	}
}

func TestManager_CallerGivingUpDoesNotFailSharedLoad(t *testing.T) {
	src := &fakeSource{perms: entities.Permissions{User: "ana"}, gate: make(chan struct{})}
	m := NewManager(src, time.Hour, time.Second)
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := m.Permissions(ctx, "tok")
		first <- err
	}()
	waitFor(t, func() bool { return src.calls.Load() >= 1 })

	second := make(chan error, 1)
	go func() {
		_, err := m.Permissions(context.Background(), "tok")
		second <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	if err := <-first; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled for the caller that left, got %v", err)
	}
	close(src.gate)
	if err := <-second; err != nil {
		t.Fatalf("expected shared load to succeed, got %v", err)
	}
	if got := src.calls.Load(); got != 1 {
		t.Fatalf("expected 1 remote call, got %d", got)
	}
	if m.Active() != 1 {
		t.Fatalf("expected session to be installed, got %d", m.Active())
	}
}
