// Package input normalizes raw terminal key events into a closed set
// of key values the host can match on directly.
package input

import "fmt"

// Kind classifies a normalized key
type Kind uint8

const (
	KindNone Kind = iota

	// Character input (check Key.Rune)
	KindPlain
	KindCtrl
	KindAlt

	// Arrows
	KindUp
	KindDown
	KindLeft
	KindRight

	// Special keys, mapped independent of modifiers
	KindEnter
	KindEscape
	KindTab
	KindBackspace
	KindDelete
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindInsert

	// Function keys (check Key.N)
	KindFunction
)

// Key is one normalized input event. It is a transient value returned
// from a read, never stored by the library.
type Key struct {
	Kind Kind
	Rune rune // KindPlain, KindCtrl, KindAlt
	N    int  // KindFunction: 1-12
}

// Plain returns the normalized value for an unmodified character
func Plain(r rune) Key {
	return Key{Kind: KindPlain, Rune: r}
}

// Ctrl returns the normalized value for Ctrl+r. The character is
// lower-cased: Ctrl+C and Ctrl+c are the same chord.
func Ctrl(r rune) Key {
	return Key{Kind: KindCtrl, Rune: lower(r)}
}

// Alt returns the normalized value for Alt+r
func Alt(r rune) Key {
	return Key{Kind: KindAlt, Rune: r}
}

// Function returns the normalized value for the F-key n
func Function(n int) Key {
	return Key{Kind: KindFunction, N: n}
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

var kindNames = map[Kind]string{
	KindUp:        "Up",
	KindDown:      "Down",
	KindLeft:      "Left",
	KindRight:     "Right",
	KindEnter:     "Enter",
	KindEscape:    "Escape",
	KindTab:       "Tab",
	KindBackspace: "Backspace",
	KindDelete:    "Delete",
	KindHome:      "Home",
	KindEnd:       "End",
	KindPageUp:    "PageUp",
	KindPageDown:  "PageDown",
	KindInsert:    "Insert",
}

// String returns a readable form for diagnostics
func (k Key) String() string {
	switch k.Kind {
	case KindPlain:
		return fmt.Sprintf("%q", k.Rune)
	case KindCtrl:
		return fmt.Sprintf("Ctrl+%c", k.Rune)
	case KindAlt:
		return fmt.Sprintf("Alt+%c", k.Rune)
	case KindFunction:
		return fmt.Sprintf("F%d", k.N)
	}
	if name, ok := kindNames[k.Kind]; ok {
		return name
	}
	return "None"
}
