//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework ApplicationServices
#include <stdlib.h>
#include "ax_darwin.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/1broseidon/halfscreen/internal/snap"
)

// DarwinBackend drives windows through the macOS accessibility API.
// A WindowID packs the owning pid in the high 32 bits and the index into
// the app's AX window list in the low 32 bits; it goes stale as soon as the
// app's window list changes, which is why it is never retained.
type DarwinBackend struct{}

var _ Backend = (*DarwinBackend)(nil)

// New returns the accessibility backend. Options are unused on macOS.
func New(Options) (Backend, error) {
	return &DarwinBackend{}, nil
}

func packWindowID(pid, index int) WindowID {
	return WindowID(uint64(uint32(pid))<<32 | uint64(uint32(index)))
}

func unpackWindowID(id WindowID) (pid, index C.int) {
	return C.int(int32(uint64(id) >> 32)), C.int(int32(uint32(id)))
}

// Trusted wraps AXIsProcessTrustedWithOptions; prompt shows the system
// permission dialog when the process is not yet trusted.
func (b *DarwinBackend) Trusted(prompt bool) bool {
	p := C.int(0)
	if prompt {
		p = 1
	}
	return C.hs_is_trusted(p) == 1
}

// ScreenFrame returns the main screen's frame in AX (top-left) coordinates.
func (b *DarwinBackend) ScreenFrame() (snap.Rect, error) {
	var x, y, w, h C.double
	if C.hs_main_screen_frame(&x, &y, &w, &h) == 0 {
		return snap.Rect{}, ErrNoScreen
	}
	frame := snap.Rect{
		Origin: snap.Point{X: float64(x), Y: float64(y)},
		Size:   snap.Size{Width: float64(w), Height: float64(h)},
	}
	if frame.Size.Empty() {
		return snap.Rect{}, ErrNoScreen
	}
	return frame, nil
}

// FrontmostWindows lists the AX windows of the frontmost application.
func (b *DarwinBackend) FrontmostWindows() ([]Window, error) {
	pid := C.hs_frontmost_pid()
	if pid < 0 {
		return nil, nil
	}

	n := int(C.hs_window_count(pid))
	windows := make([]Window, 0, n)
	for i := 0; i < n; i++ {
		var info C.hs_window_info
		if C.hs_window_info_at(pid, C.int(i), &info) == 0 {
			continue
		}
		title := ""
		if info.title != nil {
			title = C.GoString(info.title)
			C.free(unsafe.Pointer(info.title))
		}
		windows = append(windows, Window{
			ID:       packWindowID(int(pid), i),
			Title:    title,
			Main:     info.main == 1,
			Position: snap.Point{X: float64(info.x), Y: float64(info.y)},
			Size:     snap.Size{Width: float64(info.w), Height: float64(info.h)},
		})
	}
	return windows, nil
}

// Position reads kAXPositionAttribute.
func (b *DarwinBackend) Position(id WindowID) (snap.Point, error) {
	pid, idx := unpackWindowID(id)
	var x, y C.double
	if C.hs_window_position(pid, idx, &x, &y) == 0 {
		return snap.Point{}, fmt.Errorf("window %d of pid %d: %w", idx, pid, ErrNoWindow)
	}
	return snap.Point{X: float64(x), Y: float64(y)}, nil
}

// Size reads kAXSizeAttribute.
func (b *DarwinBackend) Size(id WindowID) (snap.Size, error) {
	pid, idx := unpackWindowID(id)
	var w, h C.double
	if C.hs_window_size(pid, idx, &w, &h) == 0 {
		return snap.Size{}, fmt.Errorf("window %d of pid %d: %w", idx, pid, ErrNoWindow)
	}
	return snap.Size{Width: float64(w), Height: float64(h)}, nil
}

// SetPosition writes kAXPositionAttribute.
func (b *DarwinBackend) SetPosition(id WindowID, p snap.Point) error {
	pid, idx := unpackWindowID(id)
	if code := C.hs_set_window_position(pid, idx, C.double(p.X), C.double(p.Y)); code != 0 {
		return fmt.Errorf("set position of window %d of pid %d: ax error %d", idx, pid, int(code))
	}
	return nil
}

// SetSize writes kAXSizeAttribute.
func (b *DarwinBackend) SetSize(id WindowID, s snap.Size) error {
	pid, idx := unpackWindowID(id)
	if code := C.hs_set_window_size(pid, idx, C.double(s.Width), C.double(s.Height)); code != 0 {
		return fmt.Errorf("set size of window %d of pid %d: ax error %d", idx, pid, int(code))
	}
	return nil
}
