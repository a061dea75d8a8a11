package input

import (
	"errors"
	"testing"

	"github.com/nekotui/neko/terminal"
)

func TestCtrlLowercasesRune(t *testing.T) {
	if got, want := Ctrl('C'), Ctrl('c'); got != want {
		t.Errorf("Ctrl('C') = %v, want %v", got, want)
	}
	if got := Ctrl('c'); got.Kind != KindCtrl || got.Rune != 'c' {
		t.Errorf("Ctrl('c') = %+v", got)
	}
}

func TestNormalizeRunes(t *testing.T) {
	tests := []struct {
		name string
		ev   terminal.Event
		want Key
	}{
		{"plain", terminal.Event{Key: terminal.KeyRune, Rune: 'c'}, Plain('c')},
		{"ctrl", terminal.Event{Key: terminal.KeyRune, Rune: 'c', Modifiers: terminal.ModCtrl}, Ctrl('c')},
		{"alt", terminal.Event{Key: terminal.KeyRune, Rune: 'x', Modifiers: terminal.ModAlt}, Alt('x')},
		{"ctrl wins over alt", terminal.Event{Key: terminal.KeyRune, Rune: 'a', Modifiers: terminal.ModCtrl | terminal.ModAlt}, Ctrl('a')},
		{"shift leaves rune plain", terminal.Event{Key: terminal.KeyRune, Rune: 'C', Modifiers: terminal.ModShift}, Plain('C')},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.ev); got != tt.want {
				t.Errorf("normalize(%+v) = %+v, want %+v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestNormalizeSpecialsIgnoreModifiers(t *testing.T) {
	tests := []struct {
		name string
		ev   terminal.Event
		want Kind
	}{
		{"up", terminal.Event{Key: terminal.KeyUp}, KindUp},
		{"ctrl-up", terminal.Event{Key: terminal.KeyUp, Modifiers: terminal.ModCtrl}, KindUp},
		{"down", terminal.Event{Key: terminal.KeyDown}, KindDown},
		{"left", terminal.Event{Key: terminal.KeyLeft}, KindLeft},
		{"right", terminal.Event{Key: terminal.KeyRight}, KindRight},
		{"enter", terminal.Event{Key: terminal.KeyEnter}, KindEnter},
		{"escape", terminal.Event{Key: terminal.KeyEscape}, KindEscape},
		{"tab", terminal.Event{Key: terminal.KeyTab}, KindTab},
		{"backtab folds to tab", terminal.Event{Key: terminal.KeyBacktab, Modifiers: terminal.ModShift}, KindTab},
		{"backspace", terminal.Event{Key: terminal.KeyBackspace}, KindBackspace},
		{"delete", terminal.Event{Key: terminal.KeyDelete}, KindDelete},
		{"home", terminal.Event{Key: terminal.KeyHome}, KindHome},
		{"end", terminal.Event{Key: terminal.KeyEnd}, KindEnd},
		{"pageup", terminal.Event{Key: terminal.KeyPageUp}, KindPageUp},
		{"pagedown", terminal.Event{Key: terminal.KeyPageDown}, KindPageDown},
		{"insert", terminal.Event{Key: terminal.KeyInsert}, KindInsert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.ev); got.Kind != tt.want {
				t.Errorf("normalize(%+v).Kind = %v, want %v", tt.ev, got.Kind, tt.want)
			}
		})
	}
}

func TestNormalizeFunctionKeys(t *testing.T) {
	if got := normalize(terminal.Event{Key: terminal.KeyF1}); got != Function(1) {
		t.Errorf("F1 = %+v, want %+v", got, Function(1))
	}
	if got := normalize(terminal.Event{Key: terminal.KeyF12}); got != Function(12) {
		t.Errorf("F12 = %+v, want %+v", got, Function(12))
	}
}

func TestGetDropsUnrecognizedEvents(t *testing.T) {
	driver := terminal.NewMockDriver()
	driver.Events = []terminal.Event{
		{Key: terminal.KeyNone},
		{Key: terminal.KeyRune, Rune: 'q'},
	}
	reader := NewReader(driver)

	key, err := reader.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if key != Plain('q') {
		t.Errorf("key = %+v, want %+v", key, Plain('q'))
	}
	// Both events were consumed
	if got := len(driver.Ops); got != 2 {
		t.Errorf("driver saw %d reads, want 2", got)
	}
}

func TestGetWrapsDriverError(t *testing.T) {
	driver := terminal.NewMockDriver()
	reader := NewReader(driver)

	_, err := reader.Get()
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want ReadError", err)
	}
	if !errors.Is(err, terminal.ErrNoInput) {
		t.Errorf("err = %v, want wrapped %v", err, terminal.ErrNoInput)
	}
}

func TestCtrlCDistinctFromPlainC(t *testing.T) {
	driver := terminal.NewMockDriver()
	driver.Events = []terminal.Event{
		{Key: terminal.KeyRune, Rune: 'c', Modifiers: terminal.ModCtrl},
		{Key: terminal.KeyRune, Rune: 'c'},
	}
	reader := NewReader(driver)

	first, err := reader.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := reader.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first != Ctrl('c') {
		t.Errorf("first = %+v, want %+v", first, Ctrl('c'))
	}
	if second != Plain('c') {
		t.Errorf("second = %+v, want %+v", second, Plain('c'))
	}
	if first == second {
		t.Error("Ctrl('c') and Plain('c') compare equal")
	}
}
