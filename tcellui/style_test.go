package tcellui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/curtain/ui"
)

func TestFaceStyle(t *testing.T) {
	def := ui.Face{Fg: ui.White, Bg: ui.Black}
	tests := []struct {
		name string
		face ui.Face
		want tcell.Style
	}{
		{"empty face inherits the default",
			ui.Face{},
			tcell.StyleDefault.Foreground(tcell.PaletteColor(7)).Background(tcell.PaletteColor(0))},
		{"own channels win over the default",
			ui.Face{Fg: ui.Red, Bg: ui.Blue},
			tcell.StyleDefault.Foreground(tcell.PaletteColor(1)).Background(tcell.PaletteColor(4))},
		{"rgb channels pass through",
			ui.Face{Fg: ui.RGB(0x11, 0x22, 0x33)},
			tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x11, 0x22, 0x33)).Background(tcell.PaletteColor(0))},
		{"bold and reverse",
			ui.Face{Fg: ui.Green, Attrs: ui.AttrBold | ui.AttrReverse},
			tcell.StyleDefault.Foreground(tcell.PaletteColor(2)).Background(tcell.PaletteColor(0)).Bold(true).Reverse(true)},
		{"remaining attributes",
			ui.Face{Attrs: ui.AttrDim | ui.AttrItalic | ui.AttrUnderline | ui.AttrBlink},
			tcell.StyleDefault.Foreground(tcell.PaletteColor(7)).Background(tcell.PaletteColor(0)).Dim(true).Italic(true).Underline(true).Blink(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := faceStyle(tt.face, def); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFaceStyleDefaultColors(t *testing.T) {
	got := faceStyle(ui.Face{}, ui.Face{})
	want := tcell.StyleDefault.Foreground(tcell.ColorDefault).Background(tcell.ColorDefault)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTcellColor(t *testing.T) {
	tests := []struct {
		name  string
		color ui.Color
		want  tcell.Color
	}{
		{"default", ui.Default, tcell.ColorDefault},
		{"black", ui.Black, tcell.PaletteColor(0)},
		{"red", ui.Red, tcell.PaletteColor(1)},
		{"blue is ansi slot four", ui.Blue, tcell.ColorNavy},
		{"white", ui.White, tcell.PaletteColor(7)},
		{"rgb", ui.RGB(1, 2, 3), tcell.NewRGBColor(1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tcellColor(tt.color); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
