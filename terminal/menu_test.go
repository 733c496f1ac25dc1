package terminal

import (
	"fmt"
	"testing"

	"github.com/lixenwraith/curtain/tui"
	"github.com/lixenwraith/curtain/ui"
)

var (
	menuSelFace  = ui.Face{Fg: ui.White, Bg: ui.Blue}
	menuNormFace = ui.Face{}
)

func TestMenuShowPromptGeometry(t *testing.T) {
	u, _ := newTestUI(t, 24, 80)
	u.MenuShow([]string{"alpha", "beta", "gamma", "delta"}, ui.Coord{},
		menuSelFace, menuNormFace, ui.MenuPrompt)

	if !u.menu.valid() {
		t.Fatal("Expected an open menu")
	}
	// One row of 13 six-column slots spanning the width, placed just
	// above the status row
	if u.menu.pos != (ui.Coord{Line: 22, Col: 0}) {
		t.Errorf("Expected pos {22 0}, got %v", u.menu.pos)
	}
	if u.menu.size != (ui.Coord{Line: 1, Col: 80}) {
		t.Errorf("Expected size {1 80}, got %v", u.menu.size)
	}
	if u.menuColumns != 13 {
		t.Errorf("Expected 13 columns, got %d", u.menuColumns)
	}
	if u.menuLines != 1 {
		t.Errorf("Expected 1 grid line, got %d", u.menuLines)
	}

	if got := u.menu.grid[0].r; got != 'a' {
		t.Errorf("Expected first item at the origin, got %q", got)
	}
	if got := u.menu.grid[6].r; got != 'b' {
		t.Errorf("Expected second item in the next slot, got %q", got)
	}
	// Everything visible: the scrollbar thumb fills its track
	if got := u.menu.grid[79].r; got != '█' {
		t.Errorf("Expected full scrollbar thumb, got %q", got)
	}
}

func TestMenuShowInlineGeometry(t *testing.T) {
	u, _ := newTestUI(t, 24, 80)
	u.MenuShow([]string{"alpha", "beta", "gamma", "delta"}, ui.Coord{Line: 5, Col: 10},
		menuSelFace, menuNormFace, ui.MenuInline)

	if !u.menu.valid() {
		t.Fatal("Expected an open menu")
	}
	// A single column hanging off the anchor, one slot wider than the
	// longest item
	if u.menu.pos != (ui.Coord{Line: 6, Col: 10}) {
		t.Errorf("Expected pos {6 10}, got %v", u.menu.pos)
	}
	if u.menu.size != (ui.Coord{Line: 4, Col: 6}) {
		t.Errorf("Expected size {4 6}, got %v", u.menu.size)
	}
	if u.menuColumns != 1 {
		t.Errorf("Expected 1 column, got %d", u.menuColumns)
	}
}

func TestMenuFlipsAboveWhenNoRoomBelow(t *testing.T) {
	u, _ := newTestUI(t, 24, 80)
	u.MenuShow([]string{"one", "two", "three"}, ui.Coord{Line: 21, Col: 0},
		menuSelFace, menuNormFace, ui.MenuInline)

	// 22..24 would run into the status row, so the menu hangs upward
	if u.menu.pos != (ui.Coord{Line: 18, Col: 0}) {
		t.Errorf("Expected pos {18 0}, got %v", u.menu.pos)
	}
}

func TestMenuSelectScrollsMinimally(t *testing.T) {
	u, _ := newTestUI(t, 24, 80)
	items := make([]string, 30)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	u.MenuShow(items, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuInline)

	if u.menu.size.Line != 10 {
		t.Fatalf("Expected the menu capped at 10 rows, got %d", u.menu.size.Line)
	}
	if u.menuSelected != len(items) {
		t.Errorf("Expected no initial selection, got %d", u.menuSelected)
	}

	u.MenuSelect(25)
	if u.menuTop != 20 {
		t.Errorf("Expected scroll to 20, got %d", u.menuTop)
	}
	selPair := u.colors.pair(ui.White, ui.Blue)
	row := 25 - u.menuTop
	if got := u.menu.grid[row*u.menu.size.Col].pair; got != selPair {
		t.Errorf("Expected the selected row highlighted, got pair %d", got)
	}
	if got := u.menu.grid[0].pair; got == selPair {
		t.Error("Expected unselected rows in the normal face")
	}

	// Scrolling down moved the thumb to the lower half of the track
	bar := u.menu.size.Col - 1
	if got := u.menu.grid[6*u.menu.size.Col+bar].r; got != '█' {
		t.Errorf("Expected thumb at row 6, got %q", got)
	}
	if got := u.menu.grid[0*u.menu.size.Col+bar].r; got != '░' {
		t.Errorf("Expected track at row 0, got %q", got)
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
	u, _ := newTestUI(t, 24, 80)
	wide := make([]byte, 300)
	for i := range wide {
		wide[i] = 'w'
	}
	u.MenuShow([]string{string(wide)}, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuInline)

	if !u.menu.valid() {
		t.Fatal("Expected an open menu")
	}
	if got := tui.StringWidth(u.menuItems[0]); got != 78 {
		t.Errorf("Expected the item clipped to 78 columns, got %d", got)
	}
	if u.menu.size.Col != 79 {
		t.Errorf("Expected width 79, got %d", u.menu.size.Col)
	}
}

func TestMenuIgnoresTinyBudget(t *testing.T) {
	u, _ := newTestUI(t, 24, 80)
	u.MenuShow([]string{"x"}, ui.Coord{Line: 5, Col: 78},
		menuSelFace, menuNormFace, ui.MenuInline)

	if u.menu.valid() {
		t.Error("Expected no menu when fewer than three columns remain")
	}
}

func TestMenuEmptyItemsHides(t *testing.T) {
	u, _ := newTestUI(t, 24, 80)
	u.MenuShow([]string{"one"}, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuInline)
	if !u.menu.valid() {
		t.Fatal("Expected an open menu")
	}

	u.MenuShow(nil, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuInline)
	if u.menu.valid() {
		t.Error("Expected an empty item list to close the menu")
	}
}

func TestMenuHide(t *testing.T) {
	u, _ := newTestUI(t, 24, 80)
	u.MenuShow([]string{"one", "two"}, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuInline)
	u.MenuHide()

	if u.menu.valid() {
		t.Error("Expected the menu gone")
	}
	if len(u.menuItems) != 0 {
		t.Errorf("Expected no retained items, got %d", len(u.menuItems))
	}
	// Selecting without a menu is a no-op
	u.MenuSelect(0)
}

func TestMenuPromptWithStatusOnTop(t *testing.T) {
	u, _ := newTestUI(t, 24, 80)
	u.SetUIOptions(ui.Options{"status_on_top": "yes"})
	u.MenuShow([]string{"one"}, ui.Coord{}, menuSelFace, menuNormFace, ui.MenuPrompt)

	// The prompt menu hangs under the status row at the top
	if u.menu.pos != (ui.Coord{Line: 1, Col: 0}) {
		t.Errorf("Expected pos {1 0}, got %v", u.menu.pos)
	}
}
