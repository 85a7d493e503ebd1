package platform

import "github.com/1broseidon/halfscreen/internal/snap"

// SelectWindow picks the window an action applies to: the window flagged
// main, otherwise the first titled window whose x position lies inside the
// frame's horizontal bounds. Untitled windows are transient (tooltips,
// hover tags) and never selected by the fallback. Only the empty string
// counts as untitled; a title of spaces is still a title.
func SelectWindow(windows []Window, frame snap.Rect) (Window, bool) {
	for _, w := range windows {
		if w.Main {
			return w, true
		}
	}
	for _, w := range windows {
		if w.Title == "" {
			continue
		}
		if inFrameHorizontally(w.Position, frame) {
			return w, true
		}
	}
	return Window{}, false
}

func inFrameHorizontally(p snap.Point, frame snap.Rect) bool {
	return frame.Origin.X <= p.X && p.X <= frame.Right()
}
