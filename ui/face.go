package ui

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
)

// Face pairs foreground and background colors with text attributes
type Face struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Resolved substitutes Default channels with the given default face's
// channels. Attributes are kept as-is. Idempotent.
func (f Face) Resolved(def Face) Face {
	if f.Fg == Default {
		f.Fg = def.Fg
	}
	if f.Bg == Default {
		f.Bg = def.Bg
	}
	return f
}
