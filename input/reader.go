package input

import (
	"fmt"

	"github.com/nekotui/neko/terminal"
)

// ReadError wraps a driver failure surfaced during a read
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("input read: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Reader normalizes key events from a terminal driver
type Reader struct {
	driver terminal.Driver
}

// NewReader returns a reader over the given driver
func NewReader(d terminal.Driver) *Reader {
	return &Reader{driver: d}
}

// Get blocks until a recognized key arrives. Raw events that do not
// map to a normalized key are dropped and the read retried. Driver
// failures are returned as a ReadError.
func (r *Reader) Get() (Key, error) {
	for {
		ev, err := r.driver.ReadKey()
		if err != nil {
			return Key{}, &ReadError{Err: err}
		}
		if k := normalize(ev); k.Kind != KindNone {
			return k, nil
		}
	}
}

// normalize maps one raw event to its normalized key. Special keys map
// to their own kinds regardless of modifier state; character input
// resolves modifiers with Ctrl taking priority over Alt.
func normalize(ev terminal.Event) Key {
	switch ev.Key {
	case terminal.KeyRune:
		switch {
		case ev.Modifiers&terminal.ModCtrl != 0:
			return Ctrl(ev.Rune)
		case ev.Modifiers&terminal.ModAlt != 0:
			return Alt(ev.Rune)
		default:
			return Plain(ev.Rune)
		}
	case terminal.KeyUp:
		return Key{Kind: KindUp}
	case terminal.KeyDown:
		return Key{Kind: KindDown}
	case terminal.KeyLeft:
		return Key{Kind: KindLeft}
	case terminal.KeyRight:
		return Key{Kind: KindRight}
	case terminal.KeyEnter:
		return Key{Kind: KindEnter}
	case terminal.KeyEscape:
		return Key{Kind: KindEscape}
	case terminal.KeyTab, terminal.KeyBacktab:
		return Key{Kind: KindTab}
	case terminal.KeyBackspace:
		return Key{Kind: KindBackspace}
	case terminal.KeyDelete:
		return Key{Kind: KindDelete}
	case terminal.KeyHome:
		return Key{Kind: KindHome}
	case terminal.KeyEnd:
		return Key{Kind: KindEnd}
	case terminal.KeyPageUp:
		return Key{Kind: KindPageUp}
	case terminal.KeyPageDown:
		return Key{Kind: KindPageDown}
	case terminal.KeyInsert:
		return Key{Kind: KindInsert}
	}
	if ev.Key >= terminal.KeyF1 && ev.Key <= terminal.KeyF12 {
		return Function(int(ev.Key-terminal.KeyF1) + 1)
	}
	return Key{}
}
