package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ScreenDriver adapts a tcell.Screen to the Driver interface, for
// terminfo-dependent hosts and for simulation-screen tests.
//
// tcell couples raw mode and the alternate screen inside Screen.Init:
// whichever of EnterRawMode/EnterAltScreen runs first initializes the
// screen, and the screen is finalized when the last of the two exits.
type ScreenDriver struct {
	screen tcell.Screen
	frame  *frameBuffer

	inited bool
	rawOn  bool
	altOn  bool

	cursorVisible bool
	cursorX       int
	cursorY       int
}

// NewScreenDriver wraps an uninitialized tcell.Screen
func NewScreenDriver(s tcell.Screen) *ScreenDriver {
	return &ScreenDriver{screen: s}
}

func (d *ScreenDriver) ensureInit() error {
	if d.inited {
		return nil
	}
	if err := d.screen.Init(); err != nil {
		return err
	}
	d.inited = true
	return nil
}

func (d *ScreenDriver) teardownIfIdle() {
	if d.inited && !d.rawOn && !d.altOn {
		d.screen.Fini()
		d.inited = false
	}
}

func (d *ScreenDriver) EnterRawMode() error {
	if err := d.ensureInit(); err != nil {
		return err
	}
	d.rawOn = true
	return nil
}

func (d *ScreenDriver) ExitRawMode() error {
	d.rawOn = false
	d.teardownIfIdle()
	return nil
}

func (d *ScreenDriver) EnterAltScreen() error {
	if err := d.ensureInit(); err != nil {
		return err
	}
	d.altOn = true
	return nil
}

func (d *ScreenDriver) ExitAltScreen() error {
	d.altOn = false
	d.teardownIfIdle()
	return nil
}

func (d *ScreenDriver) Clear() error {
	if err := d.ensureInit(); err != nil {
		return err
	}
	d.screen.Clear()
	d.screen.Show()
	return nil
}

func (d *ScreenDriver) BeginFrame() (Surface, error) {
	if err := d.ensureInit(); err != nil {
		return nil, err
	}
	w, h := d.screen.Size()
	if d.frame == nil {
		d.frame = newFrameBuffer(w, h)
	} else if fw, fh := d.frame.Size(); fw != w || fh != h {
		d.frame.resize(w, h)
	} else {
		d.frame.clear()
	}
	return d.frame, nil
}

func (d *ScreenDriver) Flush() error {
	if d.frame == nil {
		return errors.New("flush without an open frame")
	}
	fw, fh := d.frame.Size()
	for y := 0; y < fh; y++ {
		for x := 0; x < fw; x++ {
			cell := d.frame.at(x, y)
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			d.screen.SetContent(x, y, r, nil, styleToTcell(cell.Style))
		}
	}
	if d.cursorVisible {
		d.screen.ShowCursor(d.cursorX, d.cursorY)
	}
	d.screen.Show()
	return nil
}

func (d *ScreenDriver) ReadKey() (Event, error) {
	if err := d.ensureInit(); err != nil {
		return Event{}, err
	}
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return Event{}, errors.New("event stream closed")
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			return eventFromTcell(key), nil
		}
		// Resize and mouse events are not key input
	}
}

func (d *ScreenDriver) Size() (int, int) {
	if err := d.ensureInit(); err != nil {
		return 80, 24
	}
	return d.screen.Size()
}

func (d *ScreenDriver) SetCursorVisible(visible bool) error {
	if err := d.ensureInit(); err != nil {
		return err
	}
	d.cursorVisible = visible
	if visible {
		d.screen.ShowCursor(d.cursorX, d.cursorY)
	} else {
		d.screen.HideCursor()
	}
	d.screen.Show()
	return nil
}

func (d *ScreenDriver) MoveCursor(x, y int) error {
	d.cursorX, d.cursorY = x, y
	if d.cursorVisible {
		if err := d.ensureInit(); err != nil {
			return err
		}
		d.screen.ShowCursor(x, y)
		d.screen.Show()
	}
	return nil
}

// eventFromTcell converts a tcell key event to the raw Event form.
// Enter, Tab, Backspace and Escape take priority over their
// Ctrl-letter aliases, matching the ANSI parser.
func eventFromTcell(ev *tcell.EventKey) Event {
	var mod Modifier
	m := ev.Modifiers()
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}

	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: ev.Rune(), Modifiers: mod}
	case tcell.KeyEnter:
		return Event{Key: KeyEnter, Modifiers: mod &^ ModCtrl}
	case tcell.KeyTab:
		return Event{Key: KeyTab, Modifiers: mod &^ ModCtrl}
	case tcell.KeyBacktab:
		return Event{Key: KeyBacktab, Modifiers: mod | ModShift}
	case tcell.KeyEscape:
		return Event{Key: KeyEscape, Modifiers: mod &^ ModCtrl}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Key: KeyBackspace, Modifiers: mod &^ ModCtrl}
	case tcell.KeyDelete:
		return Event{Key: KeyDelete, Modifiers: mod}
	case tcell.KeyUp:
		return Event{Key: KeyUp, Modifiers: mod}
	case tcell.KeyDown:
		return Event{Key: KeyDown, Modifiers: mod}
	case tcell.KeyLeft:
		return Event{Key: KeyLeft, Modifiers: mod}
	case tcell.KeyRight:
		return Event{Key: KeyRight, Modifiers: mod}
	case tcell.KeyHome:
		return Event{Key: KeyHome, Modifiers: mod}
	case tcell.KeyEnd:
		return Event{Key: KeyEnd, Modifiers: mod}
	case tcell.KeyPgUp:
		return Event{Key: KeyPageUp, Modifiers: mod}
	case tcell.KeyPgDn:
		return Event{Key: KeyPageDown, Modifiers: mod}
	case tcell.KeyInsert:
		return Event{Key: KeyInsert, Modifiers: mod}
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Event{
			Key:       KeyRune,
			Rune:      rune('a' + k - tcell.KeyCtrlA),
			Modifiers: mod | ModCtrl,
		}
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return Event{Key: KeyF1 + Key(k-tcell.KeyF1), Modifiers: mod}
	}

	return Event{Key: KeyNone}
}

// styleToTcell converts a Style for tcell rendering
func styleToTcell(s Style) tcell.Style {
	st := tcell.StyleDefault
	if s.hasFg() {
		st = st.Foreground(tcell.NewRGBColor(int32(s.Fg.R), int32(s.Fg.G), int32(s.Fg.B)))
	}
	if s.hasBg() {
		st = st.Background(tcell.NewRGBColor(int32(s.Bg.R), int32(s.Bg.G), int32(s.Bg.B)))
	}
	if s.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if s.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if s.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if s.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if s.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
