package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimDriver(t *testing.T) (*ScreenDriver, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	d := NewScreenDriver(sim)
	if err := d.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode: %v", err)
	}
	sim.SetSize(80, 24)
	return d, sim
}

func simRuneAt(t *testing.T, sim tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := sim.GetContents()
	if len(cells[y*w+x].Runes) == 0 {
		return 0
	}
	return cells[y*w+x].Runes[0]
}

func TestScreenDriverFlushWritesCells(t *testing.T) {
	d, sim := newSimDriver(t)
	defer d.ExitRawMode()

	surface, err := d.BeginFrame()
	if err != nil {
		t.Fatalf("BeginFrame: %v", err)
	}
	surface.SetCell(2, 1, 'A', StyleDefault)
	if err := d.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if r := simRuneAt(t, sim, 2, 1); r != 'A' {
		t.Errorf("cell (2,1) = %q, want 'A'", r)
	}
	if r := simRuneAt(t, sim, 0, 0); r != ' ' {
		t.Errorf("cell (0,0) = %q, want blank", r)
	}
}

func TestScreenDriverFrameClearsBetweenFrames(t *testing.T) {
	d, sim := newSimDriver(t)
	defer d.ExitRawMode()

	surface, _ := d.BeginFrame()
	surface.SetCell(0, 0, 'X', StyleDefault)
	d.Flush()

	// Second frame leaves the cell unset; flush must blank it
	surface, _ = d.BeginFrame()
	surface.SetCell(1, 0, 'Y', StyleDefault)
	d.Flush()

	if r := simRuneAt(t, sim, 0, 0); r != ' ' {
		t.Errorf("stale cell (0,0) = %q, want blank", r)
	}
	if r := simRuneAt(t, sim, 1, 0); r != 'Y' {
		t.Errorf("cell (1,0) = %q, want 'Y'", r)
	}
}

func TestScreenDriverReadKey(t *testing.T) {
	d, sim := newSimDriver(t)
	defer d.ExitRawMode()

	sim.InjectKey(tcell.KeyRune, 'c', tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 'c', tcell.ModCtrl)
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	want := []Event{
		{Key: KeyRune, Rune: 'c'},
		{Key: KeyRune, Rune: 'c', Modifiers: ModCtrl},
		{Key: KeyUp},
	}
	for i, w := range want {
		ev, err := d.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey %d: %v", i, err)
		}
		if ev != w {
			t.Errorf("event %d = %+v, want %+v", i, ev, w)
		}
	}
}

func TestScreenDriverCoupledLifecycle(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	d := NewScreenDriver(sim)

	if err := d.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode: %v", err)
	}
	if err := d.EnterAltScreen(); err != nil {
		t.Fatalf("EnterAltScreen: %v", err)
	}
	if !d.inited {
		t.Fatal("screen not initialized after enters")
	}

	// The screen stays up until the last mode exits
	if err := d.ExitAltScreen(); err != nil {
		t.Fatalf("ExitAltScreen: %v", err)
	}
	if !d.inited {
		t.Fatal("screen finalized while raw mode still active")
	}
	if err := d.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode: %v", err)
	}
	if d.inited {
		t.Fatal("screen still initialized after all exits")
	}
}

func TestEventFromTcellSpecials(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want Event
	}{
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, Event{Key: KeyEnter}},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, Event{Key: KeyEscape}},
		{"tab", tcell.KeyTab, 0, tcell.ModNone, Event{Key: KeyTab}},
		{"backspace2", tcell.KeyBackspace2, 0, tcell.ModNone, Event{Key: KeyBackspace}},
		{"f5", tcell.KeyF5, 0, tcell.ModNone, Event{Key: KeyF5}},
		{"ctrl-a", tcell.KeyCtrlA, 'a', tcell.ModCtrl, Event{Key: KeyRune, Rune: 'a', Modifiers: ModCtrl}},
		{"alt-rune", tcell.KeyRune, 'f', tcell.ModAlt, Event{Key: KeyRune, Rune: 'f', Modifiers: ModAlt}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := eventFromTcell(tcell.NewEventKey(tc.key, tc.r, tc.mod))
			if got != tc.want {
				t.Errorf("event = %+v, want %+v", got, tc.want)
			}
		})
	}
}
