package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	attrFgSet     Attr = 1 << 6 // Fg is explicit (not terminal default)
	attrBgSet     Attr = 1 << 7 // Bg is explicit
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Style describes how a cell is rendered. The zero value uses the
// terminal's default foreground and background with no attributes.
type Style struct {
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// StyleDefault is the zero-value style
var StyleDefault = Style{}

// Foreground returns a copy of the style with an explicit foreground
func (s Style) Foreground(c RGB) Style {
	s.Fg = c
	s.Attrs |= attrFgSet
	return s
}

// Background returns a copy of the style with an explicit background
func (s Style) Background(c RGB) Style {
	s.Bg = c
	s.Attrs |= attrBgSet
	return s
}

// Bold returns a copy of the style with the bold attribute set
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Reverse returns a copy of the style with the reverse-video attribute set
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Underline returns a copy of the style with the underline attribute set
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

func (s Style) hasFg() bool { return s.Attrs&attrFgSet != 0 }
func (s Style) hasBg() bool { return s.Attrs&attrBgSet != 0 }

// Cell represents a single terminal cell. Rune 0 marks an unset cell
// that the flush pass skips.
type Cell struct {
	Rune  rune
	Style Style
}

func cellEqual(a, b Cell) bool {
	return a.Rune == b.Rune && a.Style == b.Style
}
