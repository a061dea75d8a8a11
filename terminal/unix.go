//go:build unix

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// escapeTimeoutMs is how long a lone ESC byte may sit in the buffer
// before it is reported as a standalone Escape press rather than the
// start of a sequence.
const escapeTimeoutMs = 50

// ansiDriver implements Driver with direct ANSI output and raw stdin
// parsing. One instance per process; terminal modes are global state.
type ansiDriver struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	oldTerm *term.State

	writer *bufio.Writer
	frame  *frameBuffer

	// Last flushed cells for diffing
	front  []Cell
	frontW int
	frontH int

	// Input stream assembly. Grows past the read chunk only when a
	// sequence straddles a read boundary.
	buf []byte
}

// NewDriver returns the direct ANSI driver bound to the process
// stdin/stdout.
func NewDriver() Driver {
	return &ansiDriver{
		in:     os.Stdin,
		out:    os.Stdout,
		inFd:   int(os.Stdin.Fd()),
		outFd:  int(os.Stdout.Fd()),
		writer: bufio.NewWriterSize(os.Stdout, 65536),
		buf:    make([]byte, 0, 256),
	}
}

func (d *ansiDriver) EnterRawMode() error {
	if d.oldTerm != nil {
		return nil
	}
	if !term.IsTerminal(d.inFd) {
		return errors.New("stdin is not a terminal")
	}
	old, err := term.MakeRaw(d.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	d.oldTerm = old
	return nil
}

func (d *ansiDriver) ExitRawMode() error {
	if d.oldTerm == nil {
		return nil
	}
	err := term.Restore(d.inFd, d.oldTerm)
	d.oldTerm = nil
	if err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	return nil
}

func (d *ansiDriver) EnterAltScreen() error {
	d.writer.Write(csiAltScreenEnter)
	d.writer.Write(csiAutoWrapOff)
	return d.writer.Flush()
}

func (d *ansiDriver) ExitAltScreen() error {
	d.writer.Write(csiSGR0)
	d.writer.Write(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alternate buffer so the
	// main buffer keeps wrapping
	d.writer.Write(csiAutoWrapOn)
	return d.writer.Flush()
}

func (d *ansiDriver) Clear() error {
	d.writer.Write(csiClear)
	return d.writer.Flush()
}

func (d *ansiDriver) BeginFrame() (Surface, error) {
	w, h := d.Size()
	if d.frame == nil {
		d.frame = newFrameBuffer(w, h)
	} else if fw, fh := d.frame.Size(); fw != w || fh != h {
		d.frame.resize(w, h)
	} else {
		d.frame.clear()
	}
	return d.frame, nil
}

func (d *ansiDriver) Flush() error {
	if d.frame == nil {
		return errors.New("flush without an open frame")
	}
	fw, fh := d.frame.Size()
	if fw != d.frontW || fh != d.frontH {
		d.front = make([]Cell, fw*fh)
		d.frontW, d.frontH = fw, fh
		// Force a full repaint after resize
		d.writer.Write(csiClear)
	}

	w := d.writer
	var lastStyle Style
	styleValid := false
	cursorValid := false
	cx, cy := 0, 0

	for y := 0; y < fh; y++ {
		for x := 0; x < fw; {
			idx := y*fw + x
			cell := d.frame.cells[idx]
			if cellEqual(cell, d.front[idx]) {
				x++
				continue
			}
			r := cell.Rune
			st := cell.Style
			if r == 0 {
				// Cell went blank, erase it
				r = ' '
				st = StyleDefault
			}
			if !cursorValid || cx != x || cy != y {
				writeCursorPos(w, x, y)
			}
			if !styleValid || st != lastStyle {
				writeStyle(w, st)
				lastStyle = st
				styleValid = true
			}
			w.WriteRune(r)
			d.front[idx] = cell

			adv := runewidth.RuneWidth(r)
			if adv < 1 {
				adv = 1
			}
			if adv == 2 && x+1 < fw {
				// The glyph spills into the next cell; never erase it
				d.front[idx+1] = d.frame.cells[idx+1]
			}
			x += adv
			cx, cy = x, y
			cursorValid = true
		}
	}

	w.Write(csiSGR0)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("terminal flush: %w", err)
	}
	return nil
}

func (d *ansiDriver) ReadKey() (Event, error) {
	for {
		// Drain sequences already buffered
		if len(d.buf) > 0 {
			consumed, ev := parseKey(d.buf)
			if consumed > 0 {
				d.buf = append(d.buf[:0], d.buf[consumed:]...)
				if ev.Key != KeyNone {
					return ev, nil
				}
				continue
			}
		}

		n, err := d.poll(escapeTimeoutMs)
		if err != nil {
			return Event{}, fmt.Errorf("terminal read: %w", err)
		}
		if n == 0 {
			// Timeout. A pending lone ESC is a real Escape press.
			if len(d.buf) == 1 && d.buf[0] == 0x1b {
				d.buf = d.buf[:0]
				return Event{Key: KeyEscape}, nil
			}
			continue
		}

		if err := d.readInput(); err != nil {
			return Event{}, fmt.Errorf("terminal read: %w", err)
		}
	}
}

// poll waits for readable input with a timeout in milliseconds.
// Returns the number of ready descriptors (0 on timeout).
func (d *ansiDriver) poll(timeoutMs int) (int, error) {
	for {
		fds := []unix.PollFd{
			{Fd: int32(d.inFd), Events: unix.POLLIN},
		}
		n, err := unix.Poll(fds, timeoutMs)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, err
		}
		return n, nil
	}
}

// readInput appends available bytes to the assembly buffer
func (d *ansiDriver) readInput() error {
	var tmp [256]byte
	for {
		rn, err := unix.Read(d.inFd, tmp[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				return nil
			}
			return err
		}
		if rn == 0 {
			return errors.New("input closed")
		}
		d.buf = append(d.buf, tmp[:rn]...)
		return nil
	}
}

func (d *ansiDriver) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(d.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

func (d *ansiDriver) SetCursorVisible(visible bool) error {
	if visible {
		d.writer.Write(csiCursorShow)
	} else {
		d.writer.Write(csiCursorHide)
	}
	return d.writer.Flush()
}

func (d *ansiDriver) MoveCursor(x, y int) error {
	writeCursorPos(d.writer, x, y)
	return d.writer.Flush()
}
