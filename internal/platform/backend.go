package platform

import (
	"errors"

	"github.com/1broseidon/halfscreen/internal/snap"
)

var (
	// ErrNoScreen means the window system reported no usable display.
	ErrNoScreen = errors.New("no screen available")
	// ErrNoWindow means the frontmost application has no usable window.
	ErrNoWindow = errors.New("no frontmost window")
	// ErrUnsupported is returned on platforms without a backend.
	ErrUnsupported = errors.New("platform not supported")
)

// WindowID is a platform-neutral window identifier. It is only valid for
// the action that obtained it.
type WindowID uint64

// Window describes a top-level window of the frontmost application.
type Window struct {
	ID       WindowID
	Title    string
	Main     bool
	Position snap.Point
	Size     snap.Size
}

// Backend abstracts the window-system operations needed to place a window.
type Backend interface {
	// Trusted reports whether the process may modify other applications'
	// windows. With prompt set, the platform may ask the user once.
	Trusted(prompt bool) bool
	// ScreenFrame returns the frame of the screen windows are placed on.
	ScreenFrame() (snap.Rect, error)
	// FrontmostWindows lists the windows of the focused application.
	FrontmostWindows() ([]Window, error)
	Position(id WindowID) (snap.Point, error)
	Size(id WindowID) (snap.Size, error)
	SetPosition(id WindowID, p snap.Point) error
	SetSize(id WindowID, s snap.Size) error
}
