package tcellui

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/curtain/tui"
	"github.com/lixenwraith/curtain/ui"
)

var (
	menuSelFace  = ui.Face{Fg: ui.White, Bg: ui.Blue}
	menuNormFace = ui.Face{}
)

func TestMenuShowPromptGeometry(t *testing.T) {
	u, screen := newSimUI(t, 24, 80)
	u.MenuShow([]string{"alpha", "beta", "gamma", "delta"}, ui.Coord{},
		menuSelFace, menuNormFace, ui.MenuPrompt)

	if !u.menuOpen {
		t.Fatal("Expected an open menu")
	}
	// One row of 13 six-column slots spanning the width, placed just
	// above the status row
	if u.menuPos != (ui.Coord{Line: 22, Col: 0}) {
		t.Errorf("Expected pos {22 0}, got %v", u.menuPos)
	}
	if u.menuSize != (ui.Coord{Line: 1, Col: 80}) {
		t.Errorf("Expected size {1 80}, got %v", u.menuSize)
	}
	if u.menuColumns != 13 {
		t.Errorf("Expected 13 columns, got %d", u.menuColumns)
	}
	if u.menuLines != 1 {
		t.Errorf("Expected 1 grid line, got %d", u.menuLines)
	}

	u.Refresh()
	if r, _ := cellAt(t, screen, 0, 22); r != 'a' {
		t.Errorf("Expected the first item at the origin, got %q", r)
	}
	if r, _ := cellAt(t, screen, 6, 22); r != 'b' {
		t.Errorf("Expected the second item in the next slot, got %q", r)
	}
	// Everything visible: the scrollbar thumb fills its track
	if r, _ := cellAt(t, screen, 79, 22); r != '█' {
		t.Errorf("Expected full scrollbar thumb, got %q", r)
	}
}

func TestMenuShowInlineGeometry(t *testing.T) {
	u, screen := newSimUI(t, 24, 80)
	u.MenuShow([]string{"alpha", "beta", "gamma", "delta"}, ui.Coord{Line: 5, Col: 10},
		menuSelFace, menuNormFace, ui.MenuInline)

	if !u.menuOpen {
		t.Fatal("Expected an open menu")
	}
	// A single column hanging off the anchor, one slot wider than the
	// longest item
	if u.menuPos != (ui.Coord{Line: 6, Col: 10}) {
		t.Errorf("Expected pos {6 10}, got %v", u.menuPos)
	}
	if u.menuSize != (ui.Coord{Line: 4, Col: 6}) {
		t.Errorf("Expected size {4 6}, got %v", u.menuSize)
	}
	if u.menuColumns != 1 {
		t.Errorf("Expected 1 column, got %d", u.menuColumns)
	}

	u.Refresh()
	if r, _ := cellAt(t, screen, 10, 6); r != 'a' {
		t.Errorf("Expected the first item at the anchor column, got %q", r)
	}
	if r, _ := cellAt(t, screen, 10, 7); r != 'b' {
		t.Errorf("Expected the second item on the next row, got %q", r)
	}
}

func TestMenuFlipsAboveWhenNoRoomBelow(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	u.MenuShow([]string{"one", "two", "three"}, ui.Coord{Line: 21, Col: 0},
		menuSelFace, menuNormFace, ui.MenuInline)

	// 22..24 would run into the status row, so the menu hangs upward
	if u.menuPos != (ui.Coord{Line: 18, Col: 0}) {
		t.Errorf("Expected pos {18 0}, got %v", u.menuPos)
	}
}

func TestMenuSelectScrollsMinimally(t *testing.T) {
	u, screen := newSimUI(t, 24, 80)
	items := make([]string, 30)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	u.MenuShow(items, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuInline)

	if u.menuSize.Line != 10 {
		t.Fatalf("Expected the menu capped at 10 rows, got %d", u.menuSize.Line)
	}
	if u.menuSelected != len(items) {
		t.Errorf("Expected no initial selection, got %d", u.menuSelected)
	}

	u.MenuSelect(25)
	if u.menuTop != 20 {
		t.Errorf("Expected scroll to 20, got %d", u.menuTop)
	}

	u.Refresh()
	selStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(7)).Background(tcell.PaletteColor(4))
	row := u.menuPos.Line + 25 - u.menuTop
	if r, st := cellAt(t, screen, u.menuPos.Col, row); r != 'i' || st != selStyle {
		t.Errorf("Expected the selected row highlighted, got %q %v", r, st)
	}
	if _, st := cellAt(t, screen, u.menuPos.Col, u.menuPos.Line); st == selStyle {
		t.Error("Expected unselected rows in the normal face")
	}

	// Scrolling down moved the thumb to the lower half of the track
	bar := u.menuPos.Col + u.menuSize.Col - 1
	if r, _ := cellAt(t, screen, bar, u.menuPos.Line+6); r != '█' {
		t.Errorf("Expected thumb at row 6, got %q", r)
	}
	if r, _ := cellAt(t, screen, bar, u.menuPos.Line); r != '░' {
		t.Errorf("Expected track at row 0, got %q", r)
	}

	u.MenuSelect(5)
	if u.menuTop != 5 {
		t.Errorf("Expected scroll back to 5, got %d", u.menuTop)
	}

	u.MenuSelect(-1)
	if u.menuSelected != -1 || u.menuTop != 0 {
		t.Errorf("Expected cleared selection at the top, got %d at %d", u.menuSelected, u.menuTop)
	}
	u.MenuSelect(99)
	if u.menuSelected != -1 {
		t.Errorf("Expected out-of-range to clear the selection, got %d", u.menuSelected)
	}
}

func TestMenuClipsWideItems(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	wide := make([]byte, 300)
	for i := range wide {
		wide[i] = 'w'
	}
	u.MenuShow([]string{string(wide)}, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuInline)

	if !u.menuOpen {
		t.Fatal("Expected an open menu")
	}
	if got := tui.StringWidth(u.menuItems[0]); got != 78 {
		t.Errorf("Expected the item clipped to 78 columns, got %d", got)
	}
	if u.menuSize.Col != 79 {
		t.Errorf("Expected width 79, got %d", u.menuSize.Col)
	}
}

func TestMenuIgnoresTinyBudget(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	u.MenuShow([]string{"x"}, ui.Coord{Line: 5, Col: 78},
		menuSelFace, menuNormFace, ui.MenuInline)

	if u.menuOpen {
		t.Error("Expected no menu when fewer than three columns remain")
	}
}

func TestMenuEmptyItemsHides(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	u.MenuShow([]string{"one"}, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuInline)
	if !u.menuOpen {
		t.Fatal("Expected an open menu")
	}

	u.MenuShow(nil, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuInline)
	if u.menuOpen {
		t.Error("Expected an empty item list to close the menu")
	}
}

func TestMenuHide(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	u.MenuShow([]string{"one", "two"}, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuInline)
	u.MenuHide()

	if u.menuOpen {
		t.Error("Expected the menu gone")
	}
	if len(u.menuItems) != 0 {
		t.Errorf("Expected no retained items, got %d", len(u.menuItems))
	}
	// Selecting without a menu is a no-op
	u.MenuSelect(0)
}

func TestMenuPromptWithStatusOnTop(t *testing.T) {
	u, _ := newSimUI(t, 24, 80)
	u.SetUIOptions(ui.Options{"status_on_top": "yes"})
	u.MenuShow([]string{"one"}, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuPrompt)

	// The prompt menu hangs under the status row at the top
	if u.menuPos != (ui.Coord{Line: 1, Col: 0}) {
		t.Errorf("Expected pos {1 0}, got %v", u.menuPos)
	}
}
