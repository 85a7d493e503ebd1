// Package hotkeys delivers global key-down events for the placement
// shortcuts (ctrl+cmd+arrow on macOS, ctrl+super+arrow on X11).
package hotkeys

import (
	"context"

	"github.com/1broseidon/halfscreen/internal/keys"
)

// Listener grabs the placement shortcuts system-wide.
type Listener interface {
	// Start begins delivering events. The channel is closed once ctx ends
	// and the listener has released its grabs.
	Start(ctx context.Context) (<-chan keys.Event, error)
}

// eventBuffer bounds how many key presses may queue while a placement runs.
const eventBuffer = 8
