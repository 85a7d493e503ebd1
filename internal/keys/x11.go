package keys

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
)

// ModifiersFromX11State translates the state field of an X key event.
// Mod1 is Alt and Mod4 is Super on every mainstream keymap.
func ModifiersFromX11State(state uint16) Modifier {
	var m Modifier
	if state&xproto.ModMaskControl != 0 {
		m |= Control
	}
	if state&xproto.ModMask4 != 0 {
		m |= Command
	}
	if state&xproto.ModMaskShift != 0 {
		m |= Shift
	}
	if state&xproto.ModMask1 != 0 {
		m |= Option
	}
	if state&xproto.ModMaskLock != 0 {
		m |= CapsLock
	}
	return m
}

// SpecialKeyFromKeysym maps an X11 keysym name such as "Left" or "KP_Left".
func SpecialKeyFromKeysym(name string) SpecialKey {
	name = strings.TrimPrefix(name, "KP_")
	switch name {
	case "Left":
		return LeftArrow
	case "Right":
		return RightArrow
	case "Up":
		return UpArrow
	case "Down":
		return DownArrow
	}
	if len(name) >= 2 && name[0] == 'F' && isDigits(name[1:]) {
		return Function
	}
	return None
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
