package terminal

import "unicode/utf8"

// parseKey decodes the first key event in data. It returns the number
// of bytes consumed and the event. A consumed count of 0 means data
// holds an incomplete sequence and more bytes are needed. Unknown but
// syntactically complete sequences consume their bytes and yield
// KeyNone so stray reports do not leak into the stream as input.
func parseKey(data []byte) (int, Event) {
	if len(data) == 0 {
		return 0, Event{}
	}
	b := data[0]

	// Fast path: printable ASCII
	if b >= 0x20 && b < 0x7f {
		return 1, Event{Key: KeyRune, Rune: rune(b)}
	}

	// Escape sequence
	if b == 0x1b {
		return parseEscape(data)
	}

	// Control characters
	if b < 0x20 {
		return 1, parseControl(b)
	}

	// DEL
	if b == 0x7f {
		return 1, Event{Key: KeyBackspace}
	}

	// UTF-8 multibyte
	if !utf8.FullRune(data) {
		return 0, Event{}
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 {
		// Invalid start byte, swallow it
		return 1, Event{Key: KeyNone}
	}
	return size, Event{Key: KeyRune, Rune: r}
}

// parseEscape parses a sequence starting with ESC. Standalone ESC is
// resolved by the driver via read timeout, so a lone ESC byte here is
// reported as incomplete.
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, Event{Key: KeyEscape, Modifiers: ModAlt}
	}

	if data[1] == '[' {
		return parseCSI(data)
	}
	if data[1] == 'O' {
		return parseSS3(data)
	}

	// Alt+control character
	if data[1] < 0x20 {
		ev := parseControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev
	}

	// Alt+printable
	if data[1] >= 0x20 && data[1] < 0x7f {
		return 2, Event{Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}

	// ESC followed by a non-ASCII byte, swallow both
	return 2, Event{Key: KeyNone}
}

// parseCSI parses a CSI sequence (ESC [ params terminator)
func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	end := 2
	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}

	for end < maxScan {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			end++
			break
		}
		if b < 0x20 || b > 0x7e {
			// Malformed sequence, swallow what we scanned
			return end + 1, Event{Key: KeyNone}
		}
		end++
	}

	last := data[end-1]
	if !((last >= 'A' && last <= 'Z') || (last >= 'a' && last <= 'z') || last == '~') {
		if end >= 16 {
			// Oversized garbage, swallow it
			return end, Event{Key: KeyNone}
		}
		return 0, Event{} // Incomplete, wait for more data
	}

	if key, mod, ok := lookupCSI(data[2:end]); ok {
		return end, Event{Key: key, Modifiers: mod}
	}

	// Unknown but valid CSI syntax
	return end, Event{Key: KeyNone}
}

// parseSS3 parses an SS3 sequence (ESC O byte)
func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Key: key, Modifiers: mod}
	}
	// Unknown SS3, consume to prevent garbage
	return 3, Event{Key: KeyNone}
}

// parseControl maps C0 control bytes. Tab, Enter, Backspace and Escape
// take priority over their Ctrl-letter aliases.
func parseControl(b byte) Event {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return Event{Key: KeyRune, Rune: ' ', Modifiers: ModCtrl}
	case 0x08: // Ctrl+H
		return Event{Key: KeyBackspace}
	case 0x09: // Ctrl+I
		return Event{Key: KeyTab}
	case 0x0a, 0x0d: // LF, CR
		return Event{Key: KeyEnter}
	case 0x1b:
		return Event{Key: KeyEscape}
	case 0x1c:
		return Event{Key: KeyRune, Rune: '\\', Modifiers: ModCtrl}
	case 0x1d:
		return Event{Key: KeyRune, Rune: ']', Modifiers: ModCtrl}
	case 0x1e:
		return Event{Key: KeyRune, Rune: '^', Modifiers: ModCtrl}
	case 0x1f:
		return Event{Key: KeyRune, Rune: '_', Modifiers: ModCtrl}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Key: KeyRune, Rune: rune('a' + b - 1), Modifiers: ModCtrl}
	}
	return Event{Key: KeyNone}
}
