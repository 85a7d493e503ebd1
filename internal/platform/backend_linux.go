//go:build linux

package platform

import (
	"errors"
	"fmt"

	"github.com/1broseidon/halfscreen/internal/snap"
	"github.com/1broseidon/halfscreen/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection

	// moved remembers the unrounded origin of the last SetPosition so a
	// following SetSize rounds against the same edges.
	moved struct {
		id     WindowID
		origin snap.Point
		ok     bool
	}
}

var _ Backend = (*LinuxBackend)(nil)

// New opens a connection to the X server.
func New(opts Options) (Backend, error) {
	conn, err := x11.NewConnection(x11.Options{
		Display:    opts.Display,
		XAuthority: opts.XAuthority,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Close disconnects from the X server.
func (b *LinuxBackend) Close() error {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
	return nil
}

// Connection exposes the X11 connection for the hotkey listener.
func (b *LinuxBackend) Connection() *x11.Connection {
	if b == nil {
		return nil
	}
	return b.conn
}

// Trusted is always true: X11 has no per-process accessibility gate.
func (b *LinuxBackend) Trusted(bool) bool {
	return b != nil && b.conn != nil
}

// ScreenFrame returns the usable area of the screen holding the focused
// window. It is queried fresh on each call.
func (b *LinuxBackend) ScreenFrame() (snap.Rect, error) {
	conn, err := b.connection()
	if err != nil {
		return snap.Rect{}, err
	}

	screen, err := conn.ActiveScreen()
	if errors.Is(err, x11.ErrNoScreens) {
		return snap.Rect{}, ErrNoScreen
	}
	if err != nil {
		return snap.Rect{}, err
	}
	if screen.Bounds.Width <= 0 || screen.Bounds.Height <= 0 {
		return snap.Rect{}, ErrNoScreen
	}

	bnd := screen.Bounds
	return snap.RectFromPixels(bnd.X, bnd.Y, bnd.Width, bnd.Height), nil
}

// FrontmostWindows returns the active window as the main window. X11 has no
// per-application window list comparable to AX, so there is at most one.
// Listing starts a placement, so any origin kept from an earlier one is
// dropped.
func (b *LinuxBackend) FrontmostWindows() ([]Window, error) {
	b.forgetMove()
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	win, err := conn.ActiveWindow()
	if err != nil || win == 0 || win == conn.Root {
		return nil, nil
	}
	if !conn.IsNormalWindow(win) {
		return nil, nil
	}

	geom, ok := conn.WindowGeometry(win)
	if !ok {
		return nil, nil
	}
	r := snap.RectFromPixels(geom.X, geom.Y, geom.Width, geom.Height)

	return []Window{{
		ID:       WindowID(win),
		Title:    conn.WindowTitle(win),
		Main:     true,
		Position: r.Origin,
		Size:     r.Size,
	}}, nil
}

// Position returns the window's top-left corner in root coordinates.
func (b *LinuxBackend) Position(id WindowID) (snap.Point, error) {
	r, err := b.geometry(id)
	return r.Origin, err
}

// Size returns the window's client size.
func (b *LinuxBackend) Size(id WindowID) (snap.Size, error) {
	r, err := b.geometry(id)
	return r.Size, err
}

// SetPosition moves the window.
func (b *LinuxBackend) SetPosition(id WindowID, p snap.Point) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	px := snap.Rect{Origin: p}.Pixels()
	b.moved.id, b.moved.origin, b.moved.ok = id, p, true
	return conn.Move(xproto.Window(id), px.X, px.Y)
}

// SetSize resizes the window. Width and height come from rounding the
// edges as snap.Rect.Pixels does, anchored at the origin of a SetPosition
// on the same window earlier in this placement, or else the current
// position.
func (b *LinuxBackend) SetSize(id WindowID, s snap.Size) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	origin, ok := b.rememberedOrigin(id)
	b.forgetMove()
	if !ok {
		cur, err := b.Position(id)
		if err != nil {
			return err
		}
		origin = cur
	}
	px := snap.Rect{Origin: origin, Size: s}.Pixels()
	return conn.Resize(xproto.Window(id), px.Width, px.Height)
}

func (b *LinuxBackend) rememberedOrigin(id WindowID) (snap.Point, bool) {
	if b == nil || !b.moved.ok || b.moved.id != id {
		return snap.Point{}, false
	}
	return b.moved.origin, true
}

func (b *LinuxBackend) forgetMove() {
	if b != nil {
		b.moved.ok = false
	}
}

func (b *LinuxBackend) geometry(id WindowID) (snap.Rect, error) {
	conn, err := b.connection()
	if err != nil {
		return snap.Rect{}, err
	}
	geom, ok := conn.WindowGeometry(xproto.Window(id))
	if !ok {
		return snap.Rect{}, fmt.Errorf("window 0x%x: %w", uint64(id), ErrNoWindow)
	}
	return snap.RectFromPixels(geom.X, geom.Y, geom.Width, geom.Height), nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}
