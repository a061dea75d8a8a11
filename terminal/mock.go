package terminal

import "errors"

// ErrNoInput is returned by MockDriver.ReadKey when the scripted
// events are exhausted and no ReadErr is configured.
var ErrNoInput = errors.New("mock driver: no more input")

// MockDriver is a scripted Driver for tests. It records every
// operation in Ops, fails operations listed in FailOn, and replays
// Events from ReadKey.
type MockDriver struct {
	// Ops holds the operation names in call order: "clear",
	// "enter-raw", "exit-raw", "enter-alt", "exit-alt", "begin-frame",
	// "flush", "read-key", "cursor-show", "cursor-hide", "move-cursor"
	Ops []string

	// FailOn maps an operation name to the error it should return
	FailOn map[string]error

	// Events are replayed by ReadKey in order; afterwards ReadKey
	// returns ReadErr, or ErrNoInput when ReadErr is nil
	Events  []Event
	ReadErr error

	// Mode state maintained by the enter/exit calls
	RawActive bool
	AltActive bool

	Width  int
	Height int

	frame *frameBuffer
	next  int
}

// NewMockDriver returns a mock with an 80x24 surface
func NewMockDriver() *MockDriver {
	return &MockDriver{Width: 80, Height: 24}
}

func (m *MockDriver) record(op string) error {
	m.Ops = append(m.Ops, op)
	if m.FailOn != nil {
		if err, ok := m.FailOn[op]; ok {
			return err
		}
	}
	return nil
}

func (m *MockDriver) EnterRawMode() error {
	if err := m.record("enter-raw"); err != nil {
		return err
	}
	m.RawActive = true
	return nil
}

func (m *MockDriver) ExitRawMode() error {
	if err := m.record("exit-raw"); err != nil {
		return err
	}
	m.RawActive = false
	return nil
}

func (m *MockDriver) EnterAltScreen() error {
	if err := m.record("enter-alt"); err != nil {
		return err
	}
	m.AltActive = true
	return nil
}

func (m *MockDriver) ExitAltScreen() error {
	if err := m.record("exit-alt"); err != nil {
		return err
	}
	m.AltActive = false
	return nil
}

func (m *MockDriver) Clear() error {
	return m.record("clear")
}

func (m *MockDriver) BeginFrame() (Surface, error) {
	if err := m.record("begin-frame"); err != nil {
		return nil, err
	}
	if m.frame == nil {
		m.frame = newFrameBuffer(m.Width, m.Height)
	} else {
		m.frame.clear()
	}
	return m.frame, nil
}

func (m *MockDriver) Flush() error {
	return m.record("flush")
}

func (m *MockDriver) ReadKey() (Event, error) {
	if err := m.record("read-key"); err != nil {
		return Event{}, err
	}
	if m.next < len(m.Events) {
		ev := m.Events[m.next]
		m.next++
		return ev, nil
	}
	if m.ReadErr != nil {
		return Event{}, m.ReadErr
	}
	return Event{}, ErrNoInput
}

func (m *MockDriver) Size() (int, int) {
	return m.Width, m.Height
}

func (m *MockDriver) SetCursorVisible(visible bool) error {
	if visible {
		return m.record("cursor-show")
	}
	return m.record("cursor-hide")
}

func (m *MockDriver) MoveCursor(x, y int) error {
	return m.record("move-cursor")
}

// Cell returns the frame cell at (x, y) from the last begun frame
func (m *MockDriver) Cell(x, y int) Cell {
	if m.frame == nil {
		return Cell{}
	}
	return m.frame.at(x, y)
}
