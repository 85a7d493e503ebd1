package x11

import (
	"testing"

	"github.com/1broseidon/halfscreen/internal/snap"
)

func TestScreenContaining(t *testing.T) {
	screens := []Screen{
		{Name: "left", Bounds: snap.PixelRect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{Name: "right", Bounds: snap.PixelRect{X: 1920, Y: 0, Width: 2560, Height: 1440}},
	}

	if got := screenContaining(screens, 100, 100); got != 0 {
		t.Fatalf("expected left screen, got %d", got)
	}
	// Right edge is exclusive.
	if got := screenContaining(screens, 1920, 10); got != 1 {
		t.Fatalf("expected right screen, got %d", got)
	}
	if got := screenContaining(screens, 100, 1200); got != -1 {
		t.Fatalf("expected no screen below the left one, got %d", got)
	}
}

func TestOverlap(t *testing.T) {
	screen := snap.PixelRect{X: 1920, Y: 0, Width: 1920, Height: 1080}

	// A top panel spanning only the first screen does not touch the second.
	panel := snap.PixelRect{X: 0, Y: 0, Width: 1920, Height: 32}
	if got := overlap(screen, panel); got != (snap.PixelRect{}) {
		t.Fatalf("expected no overlap, got %+v", got)
	}

	// A bottom panel spanning both screens reserves its height on each.
	panel = snap.PixelRect{X: 0, Y: 1040, Width: 3840, Height: 40}
	got := overlap(screen, panel)
	if got.Height != 40 || got.Width != 1920 {
		t.Fatalf("expected 1920x40 overlap, got %+v", got)
	}
}

func TestIntersect(t *testing.T) {
	a := snap.PixelRect{X: 0, Y: 0, Width: 100, Height: 100}
	b := snap.PixelRect{X: 50, Y: 25, Width: 100, Height: 50}
	want := snap.PixelRect{X: 50, Y: 25, Width: 50, Height: 50}
	if got := intersect(a, b); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
