package hotkeys

import "github.com/1broseidon/halfscreen/internal/keys"

// ignoredModifiers may be held on top of ctrl+cmd without changing or
// blocking a shortcut.
var ignoredModifiers = []keys.Modifier{keys.Shift, keys.Option}

// modifierSubsets returns every combination of mods, starting with none.
// Listeners that match modifiers exactly register one binding per subset.
func modifierSubsets(mods []keys.Modifier) []keys.Modifier {
	out := make([]keys.Modifier, 0, 1<<len(mods))
	for subset := 0; subset < (1 << len(mods)); subset++ {
		var m keys.Modifier
		for bit := range mods {
			if subset&(1<<bit) != 0 {
				m |= mods[bit]
			}
		}
		out = append(out, m)
	}
	return out
}
