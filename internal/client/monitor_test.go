package client

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoller struct {
	mu     sync.Mutex
	state  State
	alert  bool
	err    error
	polled atomic.Int32
}

func (p *fakePoller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

func (p *fakePoller) CheckFall(context.Context) (bool, error) {
	p.polled.Add(1)
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.alert, p.err
}

func (p *fakePoller) set(fn func(p *fakePoller)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p)
}

func runMonitor(t *testing.T, m *Monitor) (context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx)
	}()
	t.Cleanup(cancel)

	return cancel, done
}

func TestMonitor_RequiresLogin(t *testing.T) {
	m := NewMonitor(&fakePoller{state: StateLoggedOut}, discardLogger())

	assert.ErrorIs(t, m.Run(context.Background()), ErrNotLoggedIn)
}

func TestMonitor_FallSetsAlert(t *testing.T) {
	poller := &fakePoller{state: StateLoggedIn, alert: true}
	m := NewMonitor(poller, discardLogger(), WithIntervals(5*time.Millisecond, time.Hour))

	cancel, done := runMonitor(t, m)

	require.Eventually(t, func() bool {
		return m.Snapshot().Alerting
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, ActionFallDetected, m.Snapshot().Action)

	cancel()
	assert.NoError(t, <-done)

	m.Dismiss()
	assert.False(t, m.Snapshot().Alerting)
}

func TestMonitor_PollErrorsAreIgnored(t *testing.T) {
	poller := &fakePoller{state: StateLoggedIn, err: assert.AnError}
	m := NewMonitor(poller, discardLogger(), WithIntervals(5*time.Millisecond, time.Hour))

	cancel, done := runMonitor(t, m)

	require.Eventually(t, func() bool {
		return poller.polled.Load() >= 3
	}, time.Second, 5*time.Millisecond)
	assert.False(t, m.Snapshot().Alerting)
	assert.Equal(t, "Sitting", m.Snapshot().Action)

	cancel()
	assert.NoError(t, <-done)
}

func TestMonitor_PostureRotates(t *testing.T) {
	var calls atomic.Int32
	picker := func(n int) int {
		assert.Equal(t, len(Actions), n)

		return int(calls.Add(1)-1) % n
	}

	var changes atomic.Int32
	m := NewMonitor(&fakePoller{state: StateLoggedIn}, discardLogger(),
		WithIntervals(time.Hour, 5*time.Millisecond),
		WithPicker(picker),
		WithOnChange(func(Snapshot) { changes.Add(1) }),
	)

	cancel, done := runMonitor(t, m)

	require.Eventually(t, func() bool {
		return changes.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, Actions, m.Snapshot().Action)

	cancel()
	assert.NoError(t, <-done)
}

func TestMonitor_ChangesArriveInOrder(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []Snapshot
	)
	m := NewMonitor(&fakePoller{state: StateLoggedIn}, discardLogger(),
		WithOnChange(func(s Snapshot) {
			mu.Lock()
			seen = append(seen, s)
			mu.Unlock()
		}),
	)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.update(func(s *Snapshot) { s.Alerting = true })
		}()
		go func() {
			defer wg.Done()
			m.update(func(s *Snapshot) { s.Action = Actions[i%len(Actions)] })
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 100)
	for i, s := range seen {
		assert.Equal(t, uint64(i+1), s.Seq)
	}
	assert.Equal(t, m.Snapshot(), seen[len(seen)-1])
}

func TestMonitor_StopsOnLogout(t *testing.T) {
	poller := &fakePoller{state: StateLoggedIn}
	m := NewMonitor(poller, discardLogger(), WithIntervals(5*time.Millisecond, 5*time.Millisecond))

	_, done := runMonitor(t, m)
	poller.set(func(p *fakePoller) { p.state = StateLoggedOut })

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after logout")
	}
}

func TestMonitor_StopsOnExpiredSession(t *testing.T) {
	poller := &fakePoller{state: StateLoggedIn, err: ErrSessionExpired}
	m := NewMonitor(poller, discardLogger(), WithIntervals(5*time.Millisecond, time.Hour))

	_, done := runMonitor(t, m)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSessionExpired)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after session expiry")
	}
}
