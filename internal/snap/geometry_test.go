package snap

import "testing"

func screen(w, h float64) Rect {
	return Rect{Size: Size{Width: w, Height: h}}
}

func within(r, frame Rect) bool {
	return r.Origin.X >= frame.Origin.X &&
		r.Origin.Y >= frame.Origin.Y &&
		r.Right() <= frame.Right() &&
		r.Bottom() <= frame.Bottom()
}

func TestTarget_1920x1080(t *testing.T) {
	frame := screen(1920, 1080)

	tests := []struct {
		action Action
		want   Rect
	}{
		{MoveLeft, Rect{Origin: Point{0, 0}, Size: Size{960, 1080}}},
		{MoveRight, Rect{Origin: Point{960, 0}, Size: Size{960, 1080}}},
		{Maximize, Rect{Origin: Point{0, 0}, Size: Size{1920, 1080}}},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			got, ok := Target(tt.action, frame)
			if !ok {
				t.Fatalf("expected ok for %s", tt.action)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestTarget_NoOpNotOK(t *testing.T) {
	if _, ok := Target(NoOp, screen(800, 600)); ok {
		t.Fatalf("expected NoOp to be rejected")
	}
}

func TestTarget_HalvesAndBounds(t *testing.T) {
	sizes := []Size{{1920, 1080}, {1921, 1080}, {1, 1}, {2560, 1440}, {1366.5, 768}}

	for _, s := range sizes {
		frame := Rect{Size: s}
		left, _ := Target(MoveLeft, frame)
		right, _ := Target(MoveRight, frame)
		full, _ := Target(Maximize, frame)

		if left.Size.Width != s.Width/2 || right.Size.Width != s.Width/2 {
			t.Fatalf("%v: expected halves of %v, got %v and %v", s, s.Width/2, left.Size.Width, right.Size.Width)
		}
		if left.Size.Height != s.Height || right.Size.Height != s.Height {
			t.Fatalf("%v: halves must keep full height", s)
		}
		if right.Origin.X != left.Right() {
			t.Fatalf("%v: right half must start where left ends (%v vs %v)", s, right.Origin.X, left.Right())
		}
		for _, r := range []Rect{left, right, full} {
			if !within(r, frame) {
				t.Fatalf("%v: %+v escapes the frame", s, r)
			}
		}
	}
}

func TestTarget_Idempotent(t *testing.T) {
	frame := screen(1440, 900)
	first, _ := Target(MoveLeft, frame)
	second, _ := Target(MoveLeft, frame)
	if first != second {
		t.Fatalf("expected repeat placement to match: %+v vs %+v", first, second)
	}
	if frame != screen(1440, 900) {
		t.Fatalf("frame mutated: %+v", frame)
	}
}

func TestTarget_OffsetFrame(t *testing.T) {
	frame := Rect{Origin: Point{X: 1920, Y: 25}, Size: Size{Width: 1280, Height: 775}}

	right, _ := Target(MoveRight, frame)
	want := Rect{Origin: Point{X: 2560, Y: 25}, Size: Size{Width: 640, Height: 775}}
	if right != want {
		t.Fatalf("expected %+v, got %+v", want, right)
	}
}

func TestPixels_OddWidthTilesExactly(t *testing.T) {
	frame := screen(1921, 1080)
	left, _ := Target(MoveLeft, frame)
	right, _ := Target(MoveRight, frame)

	lp := left.Pixels()
	rp := right.Pixels()

	// 960.5 rounds half away from zero, so the left half takes the extra pixel.
	if lp != (PixelRect{X: 0, Y: 0, Width: 961, Height: 1080}) {
		t.Fatalf("unexpected left pixels %+v", lp)
	}
	if rp != (PixelRect{X: 961, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("unexpected right pixels %+v", rp)
	}
	if lp.Width+rp.Width != 1921 {
		t.Fatalf("halves must sum to the frame width, got %d", lp.Width+rp.Width)
	}
}

func TestRectFromPixels(t *testing.T) {
	r := RectFromPixels(10, 20, 300, 400)
	if r.Pixels() != (PixelRect{X: 10, Y: 20, Width: 300, Height: 400}) {
		t.Fatalf("round trip mismatch: %+v", r.Pixels())
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{"left", MoveLeft, false},
		{" Right ", MoveRight, false},
		{"max", Maximize, false},
		{"full", Maximize, false},
		{"maximize", Maximize, false},
		{"down", NoOp, true},
		{"", NoOp, true},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseAction(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseAction(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
