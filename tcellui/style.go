package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/curtain/ui"
)

// faceStyle resolves a face against a default face into a tcell style.
// Attributes come from the face itself, resolution only fills color
// channels.
func faceStyle(f, def ui.Face) tcell.Style {
	r := f.Resolved(def)
	st := tcell.StyleDefault.
		Foreground(tcellColor(r.Fg)).
		Background(tcellColor(r.Bg))
	if f.Attrs&ui.AttrBold != 0 {
		st = st.Bold(true)
	}
	if f.Attrs&ui.AttrDim != 0 {
		st = st.Dim(true)
	}
	if f.Attrs&ui.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if f.Attrs&ui.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if f.Attrs&ui.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if f.Attrs&ui.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// tcellColor maps a color into tcell's model: named colors become the
// matching palette entries, explicit channels a 24-bit color.
func tcellColor(c ui.Color) tcell.Color {
	switch {
	case c.IsRGB():
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	case c.Base == ui.BaseDefault:
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c.Base) - 1)
}
