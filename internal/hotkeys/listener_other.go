//go:build !linux && !darwin

package hotkeys

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/1broseidon/halfscreen/internal/platform"
)

// New reports that global hotkeys are unavailable on this platform.
func New(platform.Backend, *slog.Logger) (Listener, error) {
	return nil, fmt.Errorf("global hotkeys on %s: %w", runtime.GOOS, platform.ErrUnsupported)
}
