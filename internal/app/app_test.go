package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/1broseidon/halfscreen/internal/keys"
	"github.com/1broseidon/halfscreen/internal/snap"
	"github.com/1broseidon/halfscreen/internal/snapper"
)

type stubChecker struct {
	grantAfter int32
	calls      atomic.Int32
}

func (c *stubChecker) Trusted(prompt bool) bool {
	return c.calls.Add(1) > c.grantAfter
}

type chanListener struct {
	events  chan keys.Event
	started chan struct{}
	err     error
}

func newChanListener() *chanListener {
	return &chanListener{events: make(chan keys.Event), started: make(chan struct{})}
}

func (l *chanListener) Start(ctx context.Context) (<-chan keys.Event, error) {
	if l.err != nil {
		return nil, l.err
	}
	close(l.started)
	return l.events, nil
}

type recordingPlacer struct {
	mu      sync.Mutex
	actions []snap.Action
	err     error
	applied chan snap.Action
}

func newRecordingPlacer() *recordingPlacer {
	return &recordingPlacer{applied: make(chan snap.Action, 16)}
}

func (p *recordingPlacer) Apply(ctx context.Context, action snap.Action) (snapper.Result, error) {
	p.mu.Lock()
	p.actions = append(p.actions, action)
	err := p.err
	p.mu.Unlock()
	p.applied <- action
	return snapper.Result{Action: action}, err
}

func (p *recordingPlacer) fail(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

func (p *recordingPlacer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.actions)
}

var (
	hyperLeft  = keys.Event{Key: keys.LeftArrow, Modifiers: keys.Control | keys.Command}
	hyperRight = keys.Event{Key: keys.RightArrow, Modifiers: keys.Control | keys.Command}
	hyperUp    = keys.Event{Key: keys.UpArrow, Modifiers: keys.Control | keys.Command}
	plainLeft  = keys.Event{Key: keys.LeftArrow}
)

type harness struct {
	app      *App
	listener *chanListener
	placer   *recordingPlacer
	changes  chan bool
	done     chan error
}

func start(t *testing.T, checker *stubChecker, enabled bool) *harness {
	t.Helper()
	h := &harness{
		listener: newChanListener(),
		placer:   newRecordingPlacer(),
		changes:  make(chan bool, 16),
		done:     make(chan error, 1),
	}
	h.app = New(checker, h.listener, h.placer, Options{
		StartEnabled:    enabled,
		PollInterval:    5 * time.Millisecond,
		OnEnabledChange: func(v bool) { h.changes <- v },
	})
	go func() { h.done <- h.app.Run(context.Background()) }()
	t.Cleanup(func() {
		h.app.Quit()
		<-h.done
	})

	select {
	case <-h.listener.started:
	case <-time.After(2 * time.Second):
		t.Fatalf("listener never started")
	}
	return h
}

func (h *harness) waitChange(t *testing.T) bool {
	t.Helper()
	select {
	case v := <-h.changes:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("no enabled change published")
		return false
	}
}

func (h *harness) waitApplied(t *testing.T) snap.Action {
	t.Helper()
	select {
	case a := <-h.placer.applied:
		return a
	case <-time.After(2 * time.Second):
		t.Fatalf("no action applied")
		return snap.NoOp
	}
}

func TestRun_DispatchesShortcuts(t *testing.T) {
	h := start(t, &stubChecker{}, true)
	if !h.waitChange(t) {
		t.Fatalf("expected initial enabled state to be published")
	}

	for _, tc := range []struct {
		ev   keys.Event
		want snap.Action
	}{
		{hyperLeft, snap.MoveLeft},
		{hyperRight, snap.MoveRight},
		{hyperUp, snap.Maximize},
	} {
		h.listener.events <- tc.ev
		if got := h.waitApplied(t); got != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, got)
		}
	}
	if h.app.State() != StateRunning {
		t.Fatalf("expected running, got %s", h.app.State())
	}
}

func TestRun_IgnoresUnmatchedShortcuts(t *testing.T) {
	h := start(t, &stubChecker{}, true)
	h.waitChange(t)

	h.listener.events <- plainLeft
	h.listener.events <- hyperRight
	if got := h.waitApplied(t); got != snap.MoveRight {
		t.Fatalf("expected only the chord to apply, got %s", got)
	}
	if n := h.placer.count(); n != 1 {
		t.Fatalf("expected 1 application, got %d", n)
	}
}

func TestToggle_DisablesAndReenables(t *testing.T) {
	h := start(t, &stubChecker{}, true)
	h.waitChange(t)

	h.app.Toggle()
	if h.waitChange(t) {
		t.Fatalf("expected disabled after toggle")
	}
	if h.app.Enabled() {
		t.Fatalf("Enabled() should report false")
	}

	// Unbuffered sends return only once the loop has received the event.
	h.listener.events <- hyperLeft
	h.listener.events <- plainLeft
	if n := h.placer.count(); n != 0 {
		t.Fatalf("expected no placement while disabled, got %d", n)
	}

	h.app.Toggle()
	if !h.waitChange(t) {
		t.Fatalf("expected enabled after second toggle")
	}
	h.listener.events <- hyperLeft
	if got := h.waitApplied(t); got != snap.MoveLeft {
		t.Fatalf("expected left after re-enable, got %s", got)
	}
}

func TestRun_StartDisabled(t *testing.T) {
	h := start(t, &stubChecker{}, false)
	if h.waitChange(t) {
		t.Fatalf("expected disabled initial state")
	}
	h.listener.events <- hyperUp
	h.listener.events <- plainLeft
	if n := h.placer.count(); n != 0 {
		t.Fatalf("expected no placement, got %d", n)
	}
}

func TestRun_WaitsForPermission(t *testing.T) {
	checker := &stubChecker{grantAfter: 3}
	start(t, checker, true)
	if n := checker.calls.Load(); n < 4 {
		t.Fatalf("expected listener to start only after permission, checks=%d", n)
	}
}

func TestRun_PlacementErrorKeepsRunning(t *testing.T) {
	h := start(t, &stubChecker{}, true)
	h.waitChange(t)
	h.placer.fail(errors.New("boom"))

	h.listener.events <- hyperLeft
	h.waitApplied(t)
	h.listener.events <- hyperRight
	h.waitApplied(t)
	if n := h.placer.count(); n != 2 {
		t.Fatalf("expected loop to survive errors, got %d applications", n)
	}
}

func TestQuit_StopsRun(t *testing.T) {
	h := start(t, &stubChecker{}, true)
	h.app.Quit()
	select {
	case err := <-h.done:
		if err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
		h.done <- nil
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after Quit")
	}
	if h.app.State() != StateStopped {
		t.Fatalf("expected stopped, got %s", h.app.State())
	}
}

func TestQuit_WhileAwaitingPermission(t *testing.T) {
	a := New(&stubChecker{grantAfter: 1 << 30}, newChanListener(), newRecordingPlacer(), Options{
		PollInterval: 5 * time.Millisecond,
	})
	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	deadline := time.Now().Add(2 * time.Second)
	for a.State() != StateAwaitingPermission && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	a.Quit()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil on quit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return")
	}
}

func TestRun_ListenerError(t *testing.T) {
	l := newChanListener()
	l.err = errors.New("grab failed")
	a := New(&stubChecker{}, l, newRecordingPlacer(), Options{PollInterval: time.Millisecond})
	if err := a.Run(context.Background()); err == nil {
		t.Fatalf("expected listener error")
	}
}
