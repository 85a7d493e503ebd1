// Package snap computes where a window goes for a placement action.
//
// Geometry is float64 so that halves of an odd-width screen are exact.
// Integer backends convert with Rect.Pixels, which rounds edges rather
// than sizes so adjacent halves never gap or overlap.
package snap

import "math"

// Point is a location in screen coordinates, origin at the top-left.
type Point struct {
	X float64
	Y float64
}

// Size is a width and height in screen units.
type Size struct {
	Width  float64
	Height float64
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an origin plus a size.
type Rect struct {
	Origin Point
	Size   Size
}

// PixelRect is a Rect snapped to whole pixels.
type PixelRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Origin.X + r.Size.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Origin.Y + r.Size.Height }

// Pixels rounds each edge to the nearest pixel and derives the size from
// the rounded edges.
func (r Rect) Pixels() PixelRect {
	x0 := int(math.Round(r.Origin.X))
	y0 := int(math.Round(r.Origin.Y))
	x1 := int(math.Round(r.Right()))
	y1 := int(math.Round(r.Bottom()))
	return PixelRect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// RectFromPixels converts integer geometry reported by a window system.
func RectFromPixels(x, y, width, height int) Rect {
	return Rect{
		Origin: Point{X: float64(x), Y: float64(y)},
		Size:   Size{Width: float64(width), Height: float64(height)},
	}
}

// Target returns the rectangle a window should occupy inside frame for
// action. ok is false for NoOp; callers filter it before asking.
func Target(action Action, frame Rect) (target Rect, ok bool) {
	half := frame.Size.Width / 2

	switch action {
	case MoveLeft:
		return Rect{
			Origin: frame.Origin,
			Size:   Size{Width: half, Height: frame.Size.Height},
		}, true
	case MoveRight:
		return Rect{
			Origin: Point{X: frame.Origin.X + half, Y: frame.Origin.Y},
			Size:   Size{Width: half, Height: frame.Size.Height},
		}, true
	case Maximize:
		return Rect{Origin: frame.Origin, Size: frame.Size}, true
	default:
		return Rect{}, false
	}
}
