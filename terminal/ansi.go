package terminal

import (
	"bufio"
	"io"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiClear = []byte("\x1b[2J\x1b[H")
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: ?7l disables wrapping so a bottom-right write cannot scroll
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Color prefixes (24-bit)
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;Bm
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;Bm
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")

	// Attribute sequences
	csiAttrBold      = []byte("\x1b[1m")
	csiAttrDim       = []byte("\x1b[2m")
	csiAttrItalic    = []byte("\x1b[3m")
	csiAttrUnderline = []byte("\x1b[4m")
	csiAttrBlink     = []byte("\x1b[5m")
	csiAttrReverse   = []byte("\x1b[7m")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes a cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeStyle emits the SGR state for a style from scratch
func writeStyle(w *bufio.Writer, s Style) {
	w.Write(csiSGR0)
	if s.Attrs&AttrBold != 0 {
		w.Write(csiAttrBold)
	}
	if s.Attrs&AttrDim != 0 {
		w.Write(csiAttrDim)
	}
	if s.Attrs&AttrItalic != 0 {
		w.Write(csiAttrItalic)
	}
	if s.Attrs&AttrUnderline != 0 {
		w.Write(csiAttrUnderline)
	}
	if s.Attrs&AttrBlink != 0 {
		w.Write(csiAttrBlink)
	}
	if s.Attrs&AttrReverse != 0 {
		w.Write(csiAttrReverse)
	}
	if s.hasFg() {
		w.Write(csiFgRGB)
		writeInt(w, int(s.Fg.R))
		w.WriteByte(';')
		writeInt(w, int(s.Fg.G))
		w.WriteByte(';')
		writeInt(w, int(s.Fg.B))
		w.WriteByte('m')
	} else {
		w.Write(csiDefaultFg)
	}
	if s.hasBg() {
		w.Write(csiBgRGB)
		writeInt(w, int(s.Bg.R))
		w.WriteByte(';')
		writeInt(w, int(s.Bg.G))
		w.WriteByte(';')
		writeInt(w, int(s.Bg.B))
		w.WriteByte('m')
	} else {
		w.Write(csiDefaultBg)
	}
}

// EmergencyReset writes the restore sequences directly to w, bypassing
// all buffering. For crash paths where the driver state is suspect.
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	resetTerminalMode()
}
