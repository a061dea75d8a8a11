// Package object manages named drawable objects and their positions
// on the terminal grid.
package object

import (
	"github.com/mattn/go-runewidth"

	"github.com/nekotui/neko/terminal"
)

// Point is a cell coordinate on the terminal grid
type Point struct {
	X, Y int
}

// Drawable is the closed set of renderable content kinds. Rendering is
// a pure function of the drawable's content and the target position;
// drawables hold no reference to the surface they render on.
//
// The set is closed: adding a kind means adding a type in this package
// with a Render implementation. The registry and the session never
// inspect which kind they hold.
type Drawable interface {
	// Render writes the drawable onto s starting at p. Writes outside
	// the surface bounds are discarded by the surface.
	Render(s terminal.Surface, p Point)

	drawable()
}

// Text renders a styled string from its position, advancing by display
// width so wide runes occupy their two cells. Content is rendered
// as-is; empty or non-printable content is not validated.
type Text struct {
	Content string
	Style   terminal.Style
}

// NewText returns an unstyled text drawable
func NewText(content string) Text {
	return Text{Content: content}
}

// Styled returns a copy of the text with the given style
func (t Text) Styled(style terminal.Style) Text {
	t.Style = style
	return t
}

func (t Text) Render(s terminal.Surface, p Point) {
	x := p.X
	for _, r := range t.Content {
		s.SetCell(x, p.Y, r, t.Style)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		x += w
	}
}

func (Text) drawable() {}

// Block renders a solid rectangle of full-block runes. Width and
// Height below 1 are treated as 1.
type Block struct {
	Width  int
	Height int
	Style  terminal.Style
}

func (b Block) Render(s terminal.Surface, p Point) {
	w, h := b.Width, b.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.SetCell(p.X+dx, p.Y+dy, '█', b.Style)
		}
	}
}

func (Block) drawable() {}

// Air is an invisible placeholder; it renders nothing
type Air struct{}

func (Air) Render(terminal.Surface, Point) {}

func (Air) drawable() {}
