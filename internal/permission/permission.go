// Package permission waits for the OS to let the process control other
// applications' windows.
package permission

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// DefaultInterval is how often an ungranted permission is re-checked.
const DefaultInterval = time.Second

// Checker reports whether the permission is held. prompt asks the platform
// to surface its permission dialog.
type Checker interface {
	Trusted(prompt bool) bool
}

// Wait returns nil once checker reports the permission. The first check
// prompts the user; later checks are silent and run every interval. A
// single log line announces the wait. Wait returns ctx.Err() when the
// context ends first.
func Wait(ctx context.Context, checker Checker, interval time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	if checker.Trusted(true) {
		return nil
	}
	logger.Info("accessibility permission required; waiting for it to be granted", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if checker.Trusted(false) {
				logger.Info("accessibility permission granted")
				return nil
			}
		}
	}
}
