package x11

import (
	"errors"
	"fmt"

	"github.com/1broseidon/halfscreen/internal/snap"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// ErrNoScreens means RandR listed no active outputs.
var ErrNoScreens = errors.New("no screens found")

// Screen is one active RandR output.
type Screen struct {
	Name   string
	Bounds snap.PixelRect
}

// Screens lists active outputs using XRandR.
func (c *Connection) Screens() ([]Screen, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var screens []Screen
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Screen%d", i)
		if out, err := randr.GetOutputInfo(c.XUtil.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		screens = append(screens, Screen{
			Name: name,
			Bounds: snap.PixelRect{
				X:      int(info.X),
				Y:      int(info.Y),
				Width:  int(info.Width),
				Height: int(info.Height),
			},
		})
	}

	return screens, nil
}

// ActiveScreen returns the screen holding the focused window, falling back
// to the screen under the pointer and then the first screen. The bounds are
// reduced by dock struts, or by the EWMH work area when no dock reserves
// space, so placements never cover panels.
func (c *Connection) ActiveScreen() (Screen, error) {
	screens, err := c.Screens()
	if err != nil {
		return Screen{}, err
	}
	if len(screens) == 0 {
		return Screen{}, ErrNoScreens
	}

	active := -1
	if win, err := ewmh.ActiveWindowGet(c.XUtil); err == nil && win != 0 {
		if geom, ok := c.WindowGeometry(win); ok {
			active = screenContaining(screens, geom.X+geom.Width/2, geom.Y+geom.Height/2)
		}
	}
	if active < 0 {
		if ptr, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply(); err == nil {
			active = screenContaining(screens, int(ptr.RootX), int(ptr.RootY))
		}
	}
	if active < 0 {
		active = 0
	}

	screen := screens[active]
	if usable, ok := c.reserveStruts(screen.Bounds); ok {
		screen.Bounds = usable
	} else if usable, ok := c.clipToWorkarea(screen.Bounds); ok {
		screen.Bounds = usable
	}
	return screen, nil
}

func screenContaining(screens []Screen, x, y int) int {
	for i, s := range screens {
		if contains(s.Bounds, x, y) {
			return i
		}
	}
	return -1
}

func contains(r snap.PixelRect, x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func (c *Connection) clipToWorkarea(bounds snap.PixelRect) (snap.PixelRect, bool) {
	areas, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(areas) == 0 {
		return bounds, false
	}

	idx := 0
	if desk, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(desk) < len(areas) {
		idx = int(desk)
	}
	wa := areas[idx]
	area := snap.PixelRect{X: int(wa.X), Y: int(wa.Y), Width: int(wa.Width), Height: int(wa.Height)}

	clipped := intersect(bounds, area)
	if clipped.Width <= 0 || clipped.Height <= 0 {
		return bounds, false
	}
	return clipped, true
}

// reserveStruts subtracts the space docks reserve on this screen.
func (c *Connection) reserveStruts(bounds snap.PixelRect) (snap.PixelRect, bool) {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return bounds, false
	}
	rootW, rootH := int(rootGeom.Width), int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return bounds, false
	}

	var left, right, top, bottom int
	for _, win := range clients {
		if !c.hasWindowType(win, "_NET_WM_WINDOW_TYPE_DOCK") {
			continue
		}
		sp, ok := strutFor(c, win, rootW, rootH)
		if !ok {
			continue
		}

		// Each strut is a band along one root edge; only the part that
		// overlaps this screen counts.
		if sp.Top > 0 {
			band := snap.PixelRect{X: int(sp.TopStartX), Y: 0, Width: int(sp.TopEndX) - int(sp.TopStartX) + 1, Height: int(sp.Top)}
			top = max(top, overlap(bounds, band).Height)
		}
		if sp.Bottom > 0 {
			band := snap.PixelRect{X: int(sp.BottomStartX), Y: rootH - int(sp.Bottom), Width: int(sp.BottomEndX) - int(sp.BottomStartX) + 1, Height: int(sp.Bottom)}
			bottom = max(bottom, overlap(bounds, band).Height)
		}
		if sp.Left > 0 {
			band := snap.PixelRect{X: 0, Y: int(sp.LeftStartY), Width: int(sp.Left), Height: int(sp.LeftEndY) - int(sp.LeftStartY) + 1}
			left = max(left, overlap(bounds, band).Width)
		}
		if sp.Right > 0 {
			band := snap.PixelRect{X: rootW - int(sp.Right), Y: int(sp.RightStartY), Width: int(sp.Right), Height: int(sp.RightEndY) - int(sp.RightStartY) + 1}
			right = max(right, overlap(bounds, band).Width)
		}
	}

	if left == 0 && right == 0 && top == 0 && bottom == 0 {
		return bounds, false
	}

	usable := snap.PixelRect{
		X:      bounds.X + left,
		Y:      bounds.Y + top,
		Width:  max(bounds.Width-left-right, 1),
		Height: max(bounds.Height-top-bottom, 1),
	}
	return usable, true
}

// strutFor reads _NET_WM_STRUT_PARTIAL, widening a plain _NET_WM_STRUT to
// span the whole root edge.
func strutFor(c *Connection, win xproto.Window, rootW, rootH int) (*ewmh.WmStrutPartial, bool) {
	if sp, err := ewmh.WmStrutPartialGet(c.XUtil, win); err == nil {
		return sp, true
	}
	s, err := ewmh.WmStrutGet(c.XUtil, win)
	if err != nil {
		return nil, false
	}
	return &ewmh.WmStrutPartial{
		Left:       s.Left,
		Right:      s.Right,
		Top:        s.Top,
		Bottom:     s.Bottom,
		LeftEndY:   uint(rootH - 1),
		RightEndY:  uint(rootH - 1),
		TopEndX:    uint(rootW - 1),
		BottomEndX: uint(rootW - 1),
	}, true
}

func intersect(a, b snap.PixelRect) snap.PixelRect {
	x1 := max(a.X, b.X)
	y1 := max(a.Y, b.Y)
	x2 := min(a.X+a.Width, b.X+b.Width)
	y2 := min(a.Y+a.Height, b.Y+b.Height)
	return snap.PixelRect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func overlap(a, b snap.PixelRect) snap.PixelRect {
	r := intersect(a, b)
	if r.Width <= 0 || r.Height <= 0 {
		return snap.PixelRect{}
	}
	return r
}
