package snap

import (
	"fmt"
	"strings"
)

// Action is a window placement request.
type Action int

const (
	NoOp Action = iota
	MoveLeft
	MoveRight
	Maximize
)

// Actions lists every action that produces a placement, in menu order.
var Actions = []Action{MoveLeft, MoveRight, Maximize}

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Maximize:
		return "maximize"
	default:
		return "noop"
	}
}

// ParseAction converts a user-supplied action name.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return MoveLeft, nil
	case "right":
		return MoveRight, nil
	case "maximize", "max", "full":
		return Maximize, nil
	default:
		return NoOp, fmt.Errorf("unknown action %q (expected left, right or maximize)", name)
	}
}
