package x11

import (
	"fmt"
	"strings"

	"github.com/1broseidon/halfscreen/internal/snap"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// _NET_MOVERESIZE_WINDOW source indication for a pager/direct action.
const sourcePager = 2

// ActiveWindow returns the focused client window, or 0 when none is set.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}

// WindowGeometry returns a window's root-relative position and size.
func (c *Connection) WindowGeometry(win xproto.Window) (snap.PixelRect, bool) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return snap.PixelRect{}, false
	}

	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), win, c.Root, 0, 0).Reply()
	if err != nil {
		return snap.PixelRect{}, false
	}

	return snap.PixelRect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, true
}

// WindowTitle prefers _NET_WM_NAME and falls back to WM_NAME.
func (c *Connection) WindowTitle(win xproto.Window) string {
	if title, err := ewmh.WmNameGet(c.XUtil, win); err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	if title, err := icccm.WmNameGet(c.XUtil, win); err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

// Move places a window's top-left corner without touching its size. It
// asks the WM through _NET_MOVERESIZE_WINDOW and falls back to a checked
// ConfigureWindow when the request cannot be sent.
func (c *Connection) Move(win xproto.Window, x, y int) error {
	c.unmaximize(win)
	err := ewmh.MoveresizeWindowExtra(c.XUtil, win, x, y, 0, 0,
		int(xproto.GravityNorthWest), sourcePager, true, true)
	if err == nil {
		return nil
	}
	mask, values := moveConfig(x, y)
	if cerr := xproto.ConfigureWindowChecked(c.XUtil.Conn(), win, mask, values).Check(); cerr != nil {
		return fmt.Errorf("move 0x%x: %w", uint32(win), cerr)
	}
	return nil
}

// Resize sets a window's size without touching its position.
func (c *Connection) Resize(win xproto.Window, width, height int) error {
	c.unmaximize(win)
	err := ewmh.MoveresizeWindowExtra(c.XUtil, win, 0, 0, width, height,
		int(xproto.GravityNorthWest), sourcePager, false, false)
	if err == nil {
		return nil
	}
	mask, values := resizeConfig(width, height)
	if cerr := xproto.ConfigureWindowChecked(c.XUtil.Conn(), win, mask, values).Check(); cerr != nil {
		return fmt.Errorf("resize 0x%x: %w", uint32(win), cerr)
	}
	return nil
}

// moveConfig encodes a ConfigureWindow position. Coordinates are INT16 on
// the wire, carried in 32-bit values as two's complement.
func moveConfig(x, y int) (uint16, []uint32) {
	return xproto.ConfigWindowX | xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))}
}

// resizeConfig encodes a ConfigureWindow size. X rejects zero dimensions.
func resizeConfig(width, height int) (uint16, []uint32) {
	return xproto.ConfigWindowWidth | xproto.ConfigWindowHeight,
		[]uint32{uint32(max(width, 1)), uint32(max(height, 1))}
}

// unmaximize drops EWMH maximized state; most WMs ignore geometry requests
// for maximized windows.
func (c *Connection) unmaximize(win xproto.Window) {
	states, err := ewmh.WmStateGet(c.XUtil, win)
	if err != nil {
		return
	}
	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT":
			ewmh.WmStateReq(c.XUtil, win, ewmh.StateRemove, state)
		}
	}
}

// IsNormalWindow reports whether win is an application window rather than a
// desktop, dock, splash or notification.
func (c *Connection) IsNormalWindow(win xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, win)
	if err != nil || len(types) == 0 {
		return true
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL", "_NET_WM_WINDOW_TYPE_DIALOG":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}
	return false
}

func (c *Connection) hasWindowType(win xproto.Window, want string) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, win)
	if err != nil {
		return false
	}
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}
