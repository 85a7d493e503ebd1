// Package snapper applies placement actions to the frontmost window.
package snapper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/1broseidon/halfscreen/internal/platform"
	"github.com/1broseidon/halfscreen/internal/snap"
)

// SkipReason explains why an action left every window untouched.
type SkipReason string

const (
	SkipNone      SkipReason = ""
	SkipNoOp      SkipReason = "noop"
	SkipNoScreen  SkipReason = "no-screen"
	SkipNoWindows SkipReason = "no-windows"
	SkipNoMatch   SkipReason = "no-matching-window"
)

// Result describes what Apply did.
type Result struct {
	Action  snap.Action
	Skipped SkipReason
	Window  platform.Window
	Target  snap.Rect
	Moved   bool
	Resized bool
}

// Options tunes a Snapper.
type Options struct {
	// SkipUnchanged avoids writing a position or size that already
	// matches the target.
	SkipUnchanged bool
	Logger        *slog.Logger
}

// Snapper places windows through a platform backend.
type Snapper struct {
	backend       platform.Backend
	skipUnchanged bool
	log           *slog.Logger
}

// New creates a Snapper.
func New(backend platform.Backend, opts Options) *Snapper {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Snapper{
		backend:       backend,
		skipUnchanged: opts.SkipUnchanged,
		log:           logger,
	}
}

// Apply places the frontmost window for action. Missing screens, windows or
// matches are reported as skips, never as errors; only failed attribute
// writes return an error.
func (s *Snapper) Apply(ctx context.Context, action snap.Action) (Result, error) {
	res := Result{Action: action}
	if action == snap.NoOp {
		res.Skipped = SkipNoOp
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	// The frame is queried per action: displays change between key presses.
	frame, err := s.backend.ScreenFrame()
	if err != nil {
		if !errors.Is(err, platform.ErrNoScreen) {
			s.log.Debug("screen query failed", "error", err)
		}
		res.Skipped = SkipNoScreen
		return res, nil
	}

	windows, err := s.backend.FrontmostWindows()
	if err != nil {
		s.log.Debug("window query failed", "error", err)
	}
	if len(windows) == 0 {
		res.Skipped = SkipNoWindows
		return res, nil
	}

	win, ok := platform.SelectWindow(windows, frame)
	if !ok {
		res.Skipped = SkipNoMatch
		return res, nil
	}
	res.Window = win

	target, _ := snap.Target(action, frame)
	res.Target = target

	// Re-read the live geometry; the listing can lag behind an animation.
	curPos, curSize := win.Position, win.Size
	if p, err := s.backend.Position(win.ID); err == nil {
		curPos = p
	}
	if sz, err := s.backend.Size(win.ID); err == nil {
		curSize = sz
	}

	if !s.skipUnchanged || curPos != target.Origin {
		if err := s.backend.SetPosition(win.ID, target.Origin); err != nil {
			return res, fmt.Errorf("move window %q: %w", win.Title, err)
		}
		res.Moved = true
	}
	if !s.skipUnchanged || curSize != target.Size {
		if err := s.backend.SetSize(win.ID, target.Size); err != nil {
			return res, fmt.Errorf("resize window %q: %w", win.Title, err)
		}
		res.Resized = true
	}

	s.log.Debug("window placed",
		"action", action.String(),
		"window", win.Title,
		"x", target.Origin.X,
		"y", target.Origin.Y,
		"width", target.Size.Width,
		"height", target.Size.Height,
		"moved", res.Moved,
		"resized", res.Resized,
	)
	return res, nil
}
