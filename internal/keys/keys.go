// Package keys turns raw key-down events into placement actions.
package keys

import (
	"strings"

	"github.com/1broseidon/halfscreen/internal/snap"
)

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	Control Modifier = 1 << iota
	Command          // Cmd on macOS, Super/Mod4 on X11
	Shift
	Option // Alt
	CapsLock
)

// Has reports whether every modifier in want is held.
func (m Modifier) Has(want Modifier) bool {
	return m&want == want
}

func (m Modifier) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, n := range []struct {
		mod  Modifier
		name string
	}{
		{Control, "ctrl"},
		{Command, "cmd"},
		{Shift, "shift"},
		{Option, "alt"},
		{CapsLock, "caps"},
	} {
		if m&n.mod != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// SpecialKey identifies a non-printable key. Only the arrows are grabbed;
// DownArrow and Function exist so other special keys classify as NoOp
// rather than being unrepresentable.
type SpecialKey int

const (
	None SpecialKey = iota
	LeftArrow
	RightArrow
	UpArrow
	DownArrow
	Function
)

func (k SpecialKey) String() string {
	switch k {
	case LeftArrow:
		return "left"
	case RightArrow:
		return "right"
	case UpArrow:
		return "up"
	case DownArrow:
		return "down"
	case Function:
		return "function"
	default:
		return "none"
	}
}

// Event is a key-down as seen by a global listener.
type Event struct {
	Key       SpecialKey
	Modifiers Modifier
}

// snapModifiers must all be held for any placement.
const snapModifiers = Control | Command

// Classify maps a key-down event to an action. Modifiers beyond ctrl and
// cmd are ignored.
func Classify(ev Event) snap.Action {
	if !ev.Modifiers.Has(snapModifiers) {
		return snap.NoOp
	}
	switch ev.Key {
	case LeftArrow:
		return snap.MoveLeft
	case RightArrow:
		return snap.MoveRight
	case UpArrow:
		return snap.Maximize
	default:
		return snap.NoOp
	}
}
