package platform

import (
	"testing"

	"github.com/1broseidon/halfscreen/internal/snap"
)

func TestSelectWindow(t *testing.T) {
	frame := snap.Rect{Size: snap.Size{Width: 1920, Height: 1080}}

	tests := []struct {
		name    string
		windows []Window
		wantID  WindowID
		wantOK  bool
	}{
		{
			name:   "empty",
			wantOK: false,
		},
		{
			name: "main flag wins over order",
			windows: []Window{
				{ID: 1, Title: "first"},
				{ID: 2, Title: "second", Main: true},
			},
			wantID: 2,
			wantOK: true,
		},
		{
			name: "main flag wins even untitled and off screen",
			windows: []Window{
				{ID: 1, Title: "titled"},
				{ID: 2, Main: true, Position: snap.Point{X: 5000}},
			},
			wantID: 2,
			wantOK: true,
		},
		{
			name: "fallback skips untitled",
			windows: []Window{
				{ID: 1, Title: ""},
				{ID: 2, Title: ""},
				{ID: 3, Title: "editor"},
			},
			wantID: 3,
			wantOK: true,
		},
		{
			name: "whitespace title counts as titled",
			windows: []Window{
				{ID: 1, Title: ""},
				{ID: 2, Title: "  "},
				{ID: 3, Title: "editor"},
			},
			wantID: 2,
			wantOK: true,
		},
		{
			name: "fallback skips windows on another screen",
			windows: []Window{
				{ID: 1, Title: "other screen", Position: snap.Point{X: 2500}},
				{ID: 2, Title: "here", Position: snap.Point{X: 1920}},
			},
			wantID: 2,
			wantOK: true,
		},
		{
			name: "nothing matches",
			windows: []Window{
				{ID: 1, Title: ""},
				{ID: 2, Title: "left of screen", Position: snap.Point{X: -10}},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectWindow(tt.windows, frame)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && got.ID != tt.wantID {
				t.Fatalf("expected window %d, got %d", tt.wantID, got.ID)
			}
		})
	}
}
