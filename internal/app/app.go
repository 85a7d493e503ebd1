// Package app ties the hotkey listener, the snapper and the enabled toggle
// together. Every key event and toggle is handled on the goroutine running
// Run, so the enabled flag has a single writer.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/1broseidon/halfscreen/internal/hotkeys"
	"github.com/1broseidon/halfscreen/internal/keys"
	"github.com/1broseidon/halfscreen/internal/logging"
	"github.com/1broseidon/halfscreen/internal/permission"
	"github.com/1broseidon/halfscreen/internal/snap"
	"github.com/1broseidon/halfscreen/internal/snapper"
)

// State is the lifecycle phase of an App.
type State int32

const (
	StateIdle State = iota
	StateAwaitingPermission
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateAwaitingPermission:
		return "awaiting-permission"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Placer applies an action to the frontmost window.
type Placer interface {
	Apply(ctx context.Context, action snap.Action) (snapper.Result, error)
}

// Options configures an App.
type Options struct {
	StartEnabled bool
	PollInterval time.Duration
	Logger       *slog.Logger
	// OnEnabledChange observes the enabled flag; it runs on the Run
	// goroutine once listening starts and after every toggle.
	OnEnabledChange func(enabled bool)
}

// App is the application lifecycle.
type App struct {
	checker  permission.Checker
	listener hotkeys.Listener
	placer   Placer
	opts     Options
	log      *slog.Logger

	enabled bool // owned by the Run goroutine
	view    atomic.Bool
	state   atomic.Int32

	toggles  chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

// New creates an App.
func New(checker permission.Checker, listener hotkeys.Listener, placer Placer, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	a := &App{
		checker:  checker,
		listener: listener,
		placer:   placer,
		opts:     opts,
		log:      logger,
		enabled:  opts.StartEnabled,
		toggles:  make(chan struct{}, 4),
		quit:     make(chan struct{}),
	}
	a.view.Store(opts.StartEnabled)
	return a
}

// Enabled reports the last published enabled state. Safe from any goroutine.
func (a *App) Enabled() bool {
	return a.view.Load()
}

// State reports the lifecycle phase. Safe from any goroutine.
func (a *App) State() State {
	return State(a.state.Load())
}

// Toggle requests a flip of the enabled flag. Requests made while waiting
// for permission are applied once listening starts.
func (a *App) Toggle() {
	select {
	case a.toggles <- struct{}{}:
	default:
		a.log.Warn("toggle dropped; too many pending")
	}
}

// Quit stops Run. Safe to call more than once and before Run.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Run waits for permission, starts listening and handles events until ctx
// ends or Quit is called. A clean stop returns nil.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.state.Store(int32(StateStopped))

	go func() {
		select {
		case <-a.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	a.state.Store(int32(StateAwaitingPermission))
	if err := permission.Wait(ctx, a.checker, a.opts.PollInterval, a.log); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	events, err := a.listener.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start hotkey listener: %w", err)
	}

	a.state.Store(int32(StateRunning))
	a.log.Info("listening for placement shortcuts", "enabled", a.enabled)
	a.publish()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.toggles:
			a.enabled = !a.enabled
			a.log.Info("placement shortcuts toggled", "enabled", a.enabled)
			a.publish()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handleKey(ctx, ev)
		}
	}
}

func (a *App) publish() {
	a.view.Store(a.enabled)
	if a.opts.OnEnabledChange != nil {
		a.opts.OnEnabledChange(a.enabled)
	}
}

func (a *App) handleKey(ctx context.Context, ev keys.Event) {
	action := keys.Classify(ev)
	if action == snap.NoOp {
		return
	}
	if !a.enabled {
		a.log.Debug("shortcut ignored while disabled", "action", action.String())
		return
	}

	res, err := a.placer.Apply(ctx, action)
	if err != nil {
		a.log.Warn("window placement failed", "action", action.String(), "error", err)
		return
	}
	if res.Skipped != snapper.SkipNone {
		a.log.Debug("window placement skipped", "action", action.String(), "reason", string(res.Skipped))
	}
}
