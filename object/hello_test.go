package object

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/nekotui/neko/terminal"
)

func TestHelloWorldOnSimulationScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	driver := terminal.NewScreenDriver(sim)
	if err := driver.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode: %v", err)
	}
	defer driver.ExitRawMode()
	sim.SetSize(80, 24)

	reg := NewRegistry()
	reg.Add("text", NewText("Hello world!"), Point{X: 0, Y: 0})

	frame, err := driver.BeginFrame()
	if err != nil {
		t.Fatalf("BeginFrame: %v", err)
	}
	if err := reg.Draw("text", frame); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := driver.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	cells, width, _ := sim.GetContents()
	if width != 80 {
		t.Fatalf("width = %d, want 80", width)
	}
	for i, r := range "Hello world!" {
		got := cells[i] // Row 0 starts at index 0
		if len(got.Runes) == 0 || got.Runes[0] != r {
			t.Errorf("cell %d = %q, want %q", i, got.Runes, r)
		}
	}
}
