package main

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeRunner struct {
	err      error
	runs     atomic.Int32
	quit     chan struct{}
	quitOnce sync.Once
}

func newFakeRunner(err error) *fakeRunner {
	return &fakeRunner{err: err, quit: make(chan struct{})}
}

func (r *fakeRunner) Run(ctx context.Context) error {
	r.runs.Add(1)
	if r.err != nil {
		return r.err
	}
	select {
	case <-r.quit:
	case <-ctx.Done():
	}
	return nil
}

func (r *fakeRunner) Quit() {
	r.quitOnce.Do(func() { close(r.quit) })
}

// fakeMenu mimics the UI loop: Run blocks until Close unless exitAfterReady
// is set, and skips onReady when ready is false.
type fakeMenu struct {
	ready          bool
	exitAfterReady bool
	runsAtReady    int32
	runner         *fakeRunner

	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeMenu(r *fakeRunner) *fakeMenu {
	return &fakeMenu{ready: true, runner: r, closed: make(chan struct{})}
}

func (m *fakeMenu) Run(onReady func()) {
	if !m.ready {
		return
	}
	m.runsAtReady = m.runner.runs.Load()
	onReady()
	if m.exitAfterReady {
		return
	}
	<-m.closed
}

func (m *fakeMenu) Close() {
	m.closeOnce.Do(func() { close(m.closed) })
}

func runWithMenuTimeout(t *testing.T, a runner, menu menuLoop) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- runWithMenu(context.Background(), a, menu) }()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatalf("runWithMenu did not return")
		return nil
	}
}

func TestRunWithMenu_EarlyAppErrorClosesLoop(t *testing.T) {
	boom := errors.New("listener failed")
	r := newFakeRunner(boom)
	m := newFakeMenu(r)

	if err := runWithMenuTimeout(t, r, m); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
	select {
	case <-m.closed:
	default:
		t.Fatalf("expected the menu to be closed")
	}
}

func TestRunWithMenu_AppStartsOnceLoopIsReady(t *testing.T) {
	r := newFakeRunner(nil)
	m := newFakeMenu(r)
	m.exitAfterReady = true

	if err := runWithMenuTimeout(t, r, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.runsAtReady != 0 {
		t.Fatalf("app started before the loop was ready")
	}
	if got := r.runs.Load(); got != 1 {
		t.Fatalf("expected one app run, got %d", got)
	}
}

func TestRunWithMenu_LoopExitsBeforeReady(t *testing.T) {
	r := newFakeRunner(nil)
	m := newFakeMenu(r)
	m.ready = false

	if err := runWithMenuTimeout(t, r, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.runs.Load(); got != 1 {
		t.Fatalf("expected one app run, got %d", got)
	}
}
