//go:build linux

package hotkeys

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/1broseidon/halfscreen/internal/keys"
	"github.com/1broseidon/halfscreen/internal/platform"
	"github.com/1broseidon/halfscreen/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// x11Bindings are grabbed on the root window. Extra modifiers are handled
// through xevent.IgnoreMods rather than separate grabs.
var x11Bindings = []string{
	"Control-Mod4-Left",
	"Control-Mod4-Right",
	"Control-Mod4-Up",
}

// connAccessor is implemented by backends that expose their X11 connection.
type connAccessor interface {
	Connection() *x11.Connection
}

// X11Listener grabs the shortcuts with xgbutil keybind.
type X11Listener struct {
	conn *x11.Connection
	log  *slog.Logger
}

var ignoreModsOnce sync.Once

// New creates a listener sharing the backend's X11 connection.
func New(backend platform.Backend, logger *slog.Logger) (Listener, error) {
	acc, ok := backend.(connAccessor)
	if !ok || acc.Connection() == nil {
		return nil, fmt.Errorf("hotkeys: backend has no X11 connection")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &X11Listener{conn: acc.Connection(), log: logger}, nil
}

// Start grabs the bindings and runs the X event loop on its own goroutine.
func (l *X11Listener) Start(ctx context.Context) (<-chan keys.Event, error) {
	xu := l.conn.XUtil
	root := l.conn.Root

	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	events := make(chan keys.Event, eventBuffer)
	handler := keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		e := keys.Event{
			Key:       keys.SpecialKeyFromKeysym(keybind.LookupString(xu, ev.State, ev.Detail)),
			Modifiers: keys.ModifiersFromX11State(ev.State),
		}
		select {
		case events <- e:
		default:
			l.log.Warn("dropping key press; placement still running", "key", e.Key.String())
		}
	})

	for _, seq := range x11Bindings {
		if err := handler.Connect(xu, root, seq, true); err != nil {
			keybind.Detach(xu, root)
			return nil, fmt.Errorf("failed to grab %s: %w", seq, err)
		}
		l.log.Debug("hotkey registered", "binding", seq)
	}

	go func() {
		<-ctx.Done()
		l.conn.Quit()
	}()
	go func() {
		defer close(events)
		l.conn.EventLoop()
		keybind.Detach(xu, root)
	}()

	return events, nil
}

// configureIgnoreMods makes grabs fire regardless of lock keys, Shift and
// Alt, so extra modifiers neither block nor change a shortcut.
func configureIgnoreMods(xu *xgbutil.XUtil) {
	base := []uint16{
		xproto.ModMaskLock,
		xproto.ModMaskShift,
		xproto.ModMask1,
	}
	for _, sym := range []string{"Num_Lock", "Scroll_Lock"} {
		if mask := modMaskForKeysym(xu, sym); mask != 0 && !containsMask(base, mask) {
			base = append(base, mask)
		}
	}

	ignore := make([]uint16, 0, 1<<len(base))
	for subset := 0; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func containsMask(masks []uint16, mask uint16) bool {
	for _, m := range masks {
		if m == mask {
			return true
		}
	}
	return false
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
