package terminal

// frameBuffer is the cell grid a single frame is composed into.
// It implements Surface.
type frameBuffer struct {
	width  int
	height int
	cells  []Cell
}

func newFrameBuffer(width, height int) *frameBuffer {
	f := &frameBuffer{}
	f.resize(width, height)
	return f
}

// resize adjusts dimensions and clears all cells
func (f *frameBuffer) resize(width, height int) {
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]Cell, size)
	} else {
		f.cells = f.cells[:size]
		for i := range f.cells {
			f.cells[i] = Cell{}
		}
	}
	f.width = width
	f.height = height
}

// clear resets all cells to unset
func (f *frameBuffer) clear() {
	for i := range f.cells {
		f.cells[i] = Cell{}
	}
}

// SetCell implements Surface
func (f *frameBuffer) SetCell(x, y int, r rune, style Style) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = Cell{Rune: r, Style: style}
}

// Size implements Surface
func (f *frameBuffer) Size() (int, int) {
	return f.width, f.height
}

func (f *frameBuffer) at(x, y int) Cell {
	return f.cells[y*f.width+x]
}
