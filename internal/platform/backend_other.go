//go:build !linux && !darwin

package platform

import (
	"fmt"
	"runtime"
)

// New reports that no window backend exists for this platform.
func New(Options) (Backend, error) {
	return nil, fmt.Errorf("%s: %w", runtime.GOOS, ErrUnsupported)
}
