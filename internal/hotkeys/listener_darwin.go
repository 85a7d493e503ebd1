//go:build darwin

package hotkeys

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/1broseidon/halfscreen/internal/keys"
	"github.com/1broseidon/halfscreen/internal/platform"
	"golang.design/x/hotkey"
)

var darwinKeys = []struct {
	key     hotkey.Key
	special keys.SpecialKey
}{
	{hotkey.KeyLeft, keys.LeftArrow},
	{hotkey.KeyRight, keys.RightArrow},
	{hotkey.KeyUp, keys.UpArrow},
}

// carbonModifiers maps the tolerated extra modifiers to Carbon flags.
// Carbon hotkeys match modifiers exactly, so every subset of the extras
// gets its own registration.
var carbonModifiers = map[keys.Modifier]hotkey.Modifier{
	keys.Shift:  hotkey.ModShift,
	keys.Option: hotkey.ModOption,
}

func carbonMods(held keys.Modifier) []hotkey.Modifier {
	mods := []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModCmd}
	for _, m := range ignoredModifiers {
		if held.Has(m) {
			mods = append(mods, carbonModifiers[m])
		}
	}
	return mods
}

// CarbonListener registers the shortcuts with golang.design/x/hotkey.
type CarbonListener struct {
	log *slog.Logger
}

// New creates a macOS listener. The backend is unused; hotkeys do not
// depend on the accessibility connection.
func New(_ platform.Backend, logger *slog.Logger) (Listener, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CarbonListener{log: logger}, nil
}

// Start registers every binding and forwards keydowns until ctx ends.
func (l *CarbonListener) Start(ctx context.Context) (<-chan keys.Event, error) {
	events := make(chan keys.Event, eventBuffer)

	var (
		registered []*hotkey.Hotkey
		wg         sync.WaitGroup
	)
	unregisterAll := func() {
		for _, hk := range registered {
			if err := hk.Unregister(); err != nil {
				l.log.Debug("hotkey unregister failed", "hotkey", hk.String(), "error", err)
			}
		}
	}

	for _, k := range darwinKeys {
		for _, held := range modifierSubsets(ignoredModifiers) {
			hk := hotkey.New(carbonMods(held), k.key)
			if err := hk.Register(); err != nil {
				unregisterAll()
				return nil, fmt.Errorf("failed to register %s: %w", hk, err)
			}
			registered = append(registered, hk)
			l.log.Debug("hotkey registered", "hotkey", hk.String())

			ev := keys.Event{Key: k.special, Modifiers: keys.Control | keys.Command | held}
			wg.Add(1)
			go func(hk *hotkey.Hotkey) {
				defer wg.Done()
				for {
					select {
					case <-ctx.Done():
						return
					case _, ok := <-hk.Keydown():
						if !ok {
							return
						}
						select {
						case events <- ev:
						default:
							l.log.Warn("dropping key press; placement still running", "key", ev.Key.String())
						}
					}
				}
			}(hk)
		}
	}

	go func() {
		<-ctx.Done()
		unregisterAll()
		wg.Wait()
		close(events)
	}()

	return events, nil
}
