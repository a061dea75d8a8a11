package terminal

// Driver abstracts the terminal operations the library depends on.
// Implementations: the direct ANSI driver (NewDriver) and the tcell
// adapter (NewScreenDriver).
//
// Enter/Exit pairs are symmetric. Callers own the ordering: exits must
// be invoked in the reverse of enter order.
type Driver interface {
	// Mode transitions
	EnterRawMode() error
	ExitRawMode() error
	EnterAltScreen() error
	ExitAltScreen() error

	// Clear erases the visible screen immediately, outside the frame
	// cycle.
	Clear() error

	// BeginFrame returns the surface for the next frame, sized to the
	// current terminal dimensions. Flush writes the completed frame.
	BeginFrame() (Surface, error)
	Flush() error

	// ReadKey blocks until a decoded key event arrives or the
	// underlying read fails.
	ReadKey() (Event, error)

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// Cursor control
	SetCursorVisible(visible bool) error
	MoveCursor(x, y int) error
}

// Surface receives cell writes for a single frame.
type Surface interface {
	// SetCell places a rune with style at the given cell. Writes
	// outside the surface bounds are discarded.
	SetCell(x, y int, r rune, style Style)

	// Size returns the surface dimensions in cells.
	Size() (width, height int)
}
