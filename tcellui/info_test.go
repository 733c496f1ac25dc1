package tcellui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/curtain/ui"
)

func TestInfoShowInline(t *testing.T) {
	u, screen := newSimUI(t, 24, 80)
	u.InfoShow("", "hello\nworld", ui.Coord{Line: 5, Col: 10}, ui.Face{}, ui.InfoInline)

	if !u.infoOpen {
		t.Fatal("Expected an open info popup")
	}
	if u.infoPos != (ui.Coord{Line: 6, Col: 10}) {
		t.Errorf("Expected pos {6 10}, got %v", u.infoPos)
	}
	if u.infoSize != (ui.Coord{Line: 2, Col: 5}) {
		t.Errorf("Expected size {2 5}, got %v", u.infoSize)
	}

	u.Refresh()
	if r, _ := cellAt(t, screen, 10, 6); r != 'h' {
		t.Errorf("Expected first content rune, got %q", r)
	}
	if r, _ := cellAt(t, screen, 10, 7); r != 'w' {
		t.Errorf("Expected second line content, got %q", r)
	}
}

func TestInfoShowInlineAbove(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	u.InfoShow("", "hello\nworld", ui.Coord{Line: 5, Col: 10}, ui.Face{}, ui.InfoInlineAbove)

	if u.infoPos != (ui.Coord{Line: 3, Col: 10}) {
		t.Errorf("Expected pos {3 10}, got %v", u.infoPos)
	}
}

func TestInfoShowPromptBubble(t *testing.T) {
	u, screen := newSimUI(t, 24, 80)
	u.InfoShow("prompt", "hi", ui.Coord{}, ui.Face{Fg: ui.Black, Bg: ui.Yellow}, ui.InfoPrompt)

	if !u.infoOpen {
		t.Fatal("Expected an open info popup")
	}
	// Clippy is 8 columns and 8 rows; the bubble adds a titled frame
	if u.infoSize != (ui.Coord{Line: 7, Col: 20}) {
		t.Errorf("Expected size {7 20}, got %v", u.infoSize)
	}
	// Anchored at the status row end, flipped above it and pulled
	// inside the right edge
	if u.infoPos != (ui.Coord{Line: 16, Col: 60}) {
		t.Errorf("Expected pos {16 60}, got %v", u.infoPos)
	}

	u.Refresh()
	r, st := cellAt(t, screen, 70, 17)
	if r != 'h' {
		t.Errorf("Expected bubble content, got %q", r)
	}
	want := tcell.StyleDefault.Foreground(tcell.PaletteColor(0)).Background(tcell.PaletteColor(3))
	if st != want {
		t.Errorf("Expected the popup face, got %v", st)
	}
}

func TestInfoPromptAssistantOff(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	u.SetUIOptions(ui.Options{"assistant": "none"})
	u.InfoShow("", "hi", ui.Coord{}, ui.Face{}, ui.InfoPrompt)

	if !u.infoOpen {
		t.Fatal("Expected an open info popup")
	}
	// Just the bubble frame around one content line
	if u.infoSize != (ui.Coord{Line: 3, Col: 6}) {
		t.Errorf("Expected size {3 6}, got %v", u.infoSize)
	}
	if u.infoPos != (ui.Coord{Line: 20, Col: 74}) {
		t.Errorf("Expected pos {20 74}, got %v", u.infoPos)
	}
}

func TestInfoPromptTooNarrowIsDropped(t *testing.T) {
	u, _ := newSimUI(t, 24, 17)
	u.InfoShow("prompt", "hi", ui.Coord{}, ui.Face{}, ui.InfoPrompt)

	if u.infoOpen {
		t.Error("Expected no popup when the bubble cannot fit")
	}
}

func TestInfoMenuDocDocksRightOfMenu(t *testing.T) {
	u, screen := newSimUI(t, 24, 80)
	u.MenuShow([]string{"alpha", "beta"}, ui.Coord{Line: 5, Col: 10},
		menuSelFace, menuNormFace, ui.MenuInline)
	if u.menuPos != (ui.Coord{Line: 6, Col: 10}) {
		t.Fatalf("Expected menu at {6 10}, got %v", u.menuPos)
	}

	u.InfoShow("", "documentation for the selected completion",
		ui.Coord{Line: 5, Col: 10}, ui.Face{}, ui.InfoMenuDoc)

	if !u.infoOpen {
		t.Fatal("Expected an open info popup")
	}
	want := ui.Coord{Line: 6, Col: 10 + u.menuSize.Col}
	if u.infoPos != want {
		t.Errorf("Expected pos %v, got %v", want, u.infoPos)
	}

	u.Refresh()
	if r, _ := cellAt(t, screen, want.Col, want.Line); r != 'd' {
		t.Errorf("Expected docked content, got %q", r)
	}
}

func TestInfoMenuDocWrapsToRemainingWidth(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	u.MenuShow([]string{"alpha"}, ui.Coord{Line: 5, Col: 60},
		menuSelFace, menuNormFace, ui.MenuInline)

	long := strings.Repeat("word ", 10)
	u.InfoShow("", long, ui.Coord{Line: 5, Col: 60}, ui.Face{}, ui.InfoMenuDoc)

	if !u.infoOpen {
		t.Fatal("Expected an open info popup")
	}
	edge := u.menuPos.Col + u.menuSize.Col
	if u.infoSize.Col > u.cols-edge {
		t.Errorf("Expected content wrapped into %d columns, got %d", u.cols-edge, u.infoSize.Col)
	}
	if u.infoSize.Line < 2 {
		t.Error("Expected the long text to wrap onto multiple lines")
	}
}

func TestInfoMenuDocTooNarrowIsDropped(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	u.MenuShow([]string{"alpha"}, ui.Coord{Line: 5, Col: 74},
		menuSelFace, menuNormFace, ui.MenuInline)
	if !u.menuOpen {
		t.Fatal("Expected an open menu")
	}

	u.InfoShow("", "text", ui.Coord{Line: 5, Col: 74}, ui.Face{}, ui.InfoMenuDoc)
	if u.infoOpen {
		t.Error("Expected no popup beside a menu at the right edge")
	}
}

func TestInfoNeverCoversStatusRow(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	tall := strings.Repeat("x\n", 24)
	u.InfoShow("", tall, ui.Coord{Line: 22, Col: 0}, ui.Face{}, ui.InfoInline)

	if u.infoOpen {
		t.Error("Expected an oversized popup to be dropped")
	}
}

func TestInfoHide(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	u.InfoShow("", "text", ui.Coord{Line: 5, Col: 10}, ui.Face{}, ui.InfoInline)
	if !u.infoOpen {
		t.Fatal("Expected an open info popup")
	}

	u.InfoHide()
	if u.infoOpen {
		t.Error("Expected the popup gone")
	}
}
