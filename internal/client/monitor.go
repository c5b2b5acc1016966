package client

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"elderguard/internal/errors"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultFallInterval    = 3 * time.Second
	DefaultPostureInterval = 6 * time.Second

	// ActionFallDetected replaces the displayed action when the bridge reports a fall.
	ActionFallDetected = "FALL DETECTED"
)

// Actions cycled by the posture rotator. They are cosmetic and not sensor-derived.
var Actions = []string{"Walking", "Sitting", "Standing", "Resting"}

// Poller is the part of Client the monitor needs.
type Poller interface {
	State() State
	CheckFall(ctx context.Context) (bool, error)
}

// Snapshot is the monitor's displayed state.
type Snapshot struct {
	Alerting bool
	Action   string
	LastPoll time.Time
	// Seq increases by one with every change.
	Seq uint64
}

// Monitor runs the fall poll and the posture rotator while logged in.
type Monitor struct {
	poller          Poller
	logger          *slog.Logger
	fallInterval    time.Duration
	postureInterval time.Duration
	pick            func(n int) int
	onChange        func(Snapshot)
	now             func() time.Time

	// changeMu orders whole changes, mutation plus callback; mu guards snapshot
	// for readers. changeMu is always taken first.
	changeMu sync.Mutex
	mu       sync.Mutex
	snapshot Snapshot
}

// MonitorOption customizes a Monitor.
type MonitorOption func(*Monitor)

// WithIntervals overrides the poll and rotation periods.
func WithIntervals(fall, posture time.Duration) MonitorOption {
	return func(m *Monitor) {
		if fall > 0 {
			m.fallInterval = fall
		}
		if posture > 0 {
			m.postureInterval = posture
		}
	}
}

// WithPicker replaces the random index source of the rotator.
func WithPicker(pick func(n int) int) MonitorOption {
	return func(m *Monitor) {
		m.pick = pick
	}
}

// WithOnChange registers a callback invoked after every state change. Calls are
// serialized and arrive in Seq order. The callback may read Snapshot but must not
// call Dismiss.
func WithOnChange(fn func(Snapshot)) MonitorOption {
	return func(m *Monitor) {
		m.onChange = fn
	}
}

// NewMonitor creates a monitor. The initial action is Sitting.
func NewMonitor(poller Poller, logger *slog.Logger, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		poller:          poller,
		logger:          logger,
		fallInterval:    DefaultFallInterval,
		postureInterval: DefaultPostureInterval,
		pick:            rand.IntN,
		now:             time.Now,
		snapshot:        Snapshot{Action: "Sitting"},
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Snapshot returns the current displayed state.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshot
}

// Dismiss clears the alert flag.
func (m *Monitor) Dismiss() {
	m.update(func(s *Snapshot) {
		s.Alerting = false
	})
}

// Run blocks until ctx is cancelled or the session ends. It returns nil on
// cancellation and ErrSessionExpired or ErrNotLoggedIn when the session is gone.
func (m *Monitor) Run(ctx context.Context) error {
	if m.poller.State() != StateLoggedIn {
		return ErrNotLoggedIn
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.tick(gctx, m.fallInterval, m.pollFall)
	})
	g.Go(func() error {
		return m.tick(gctx, m.postureInterval, m.rotatePosture)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return nil
	}

	return err
}

func (m *Monitor) tick(ctx context.Context, every time.Duration, fn func(context.Context) error) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if m.poller.State() != StateLoggedIn {
				return ErrNotLoggedIn
			}
			if err := fn(ctx); err != nil {
				return err
			}
		}
	}
}

func (m *Monitor) pollFall(ctx context.Context) error {
	alert, err := m.poller.CheckFall(ctx)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return err
		}
		if ctx.Err() == nil {
			m.logger.Debug("Fall detection pending", slog.Any("error", err))
		}

		return nil
	}

	now := m.now()
	m.update(func(s *Snapshot) {
		s.LastPoll = now
		if alert {
			s.Alerting = true
			s.Action = ActionFallDetected
		}
	})

	return nil
}

func (m *Monitor) rotatePosture(context.Context) error {
	action := Actions[m.pick(len(Actions))]
	m.update(func(s *Snapshot) {
		s.Action = action
	})

	return nil
}

func (m *Monitor) update(fn func(*Snapshot)) {
	m.changeMu.Lock()
	defer m.changeMu.Unlock()

	m.mu.Lock()
	fn(&m.snapshot)
	m.snapshot.Seq++
	snapshot := m.snapshot
	m.mu.Unlock()

	if m.onChange != nil {
		m.onChange(snapshot)
	}
}
