// @focus: #tcell { menu }
package tcellui

import (
	"github.com/lixenwraith/curtain/tui"
	"github.com/lixenwraith/curtain/ui"
)

// Widest item kept when sizing menu columns
const menuItemWidthCap = 200

// MenuShow opens the completion menu. Prompt style spans the bottom of
// the screen in as many columns as fit; Inline style hangs a single
// column off the anchor. Geometry matches the direct backend cell for
// cell.
func (u *UI) MenuShow(items []string, anchor ui.Coord, selectedFace, normalFace ui.Face, style ui.MenuStyle) {
	u.menuFgFace = selectedFace
	u.menuBgFace = normalFace

	if len(items) == 0 {
		u.MenuHide()
		return
	}

	if style == ui.MenuPrompt {
		anchor = ui.Coord{Line: u.statusRow()}
	} else if u.statusOnTop {
		anchor.Line++
	}

	budget := u.cols - anchor.Col
	if budget <= 2 {
		return
	}
	maxLen := min(budget-2, menuItemWidthCap)

	u.menuItems = u.menuItems[:0]
	longest := 0
	for _, item := range items {
		kept := tui.Clip(item, maxLen)
		u.menuItems = append(u.menuItems, kept)
		longest = max(longest, tui.StringWidth(kept))
	}
	longest++

	columns := 1
	if style == ui.MenuPrompt {
		columns = max(1, (budget-1)/longest)
	}
	height := min(10, tui.CeilDiv(len(u.menuItems), columns))

	line := anchor.Line + 1
	if line+height >= u.dims.Line {
		line = anchor.Line - height
	}
	width := longest
	if style == ui.MenuPrompt {
		width = budget
	}

	u.menuPos = ui.Coord{Line: line, Col: anchor.Col}
	u.menuSize = ui.Coord{Line: height, Col: width}
	u.menuOpen = true
	u.menuColumns = columns
	u.menuLines = tui.CeilDiv(len(u.menuItems), columns)
	u.menuTop = 0
	u.menuSelected = len(u.menuItems) // nothing selected yet
	u.dirty = true
}

// MenuSelect moves the selection, scrolling the minimum needed to keep
// it visible. Out of range clears the selection and rewinds the scroll.
func (u *UI) MenuSelect(selected int) {
	if !u.menuOpen {
		return
	}
	if selected < 0 || selected >= len(u.menuItems) {
		u.menuSelected = -1
		u.menuTop = 0
	} else {
		u.menuSelected = selected
		selLine := selected / max(1, u.menuColumns)
		visible := u.menuSize.Line
		if selLine < u.menuTop {
			u.menuTop = selLine
		}
		if selLine >= u.menuTop+visible {
			u.menuTop = min(selLine, u.menuLines-visible)
		}
	}
	u.dirty = true
}

// MenuHide discards the menu
func (u *UI) MenuHide() {
	u.menuItems = u.menuItems[:0]
	u.menuSelected = -1
	u.menuOpen = false
	u.dirty = true
}

// composeMenu paints the item grid and the scrollbar column
func (u *UI) composeMenu() {
	if !u.menuOpen {
		return
	}
	fgStyle := faceStyle(u.menuFgFace, u.menuFgFace)
	bgStyle := faceStyle(u.menuBgFace, u.menuBgFace)

	visible := u.menuSize.Line
	colWidth := (u.menuSize.Col - 1) / max(1, u.menuColumns)
	markLine, markHeight := tui.MenuMark(visible, u.menuLines, u.menuTop)

	for line := 0; line < visible; line++ {
		row := u.menuPos.Line + line
		for col := 0; col < u.menuSize.Col; col++ {
			u.put(row, u.menuPos.Col+col, ' ', bgStyle)
		}

		for col := 0; col < u.menuColumns; col++ {
			idx := (u.menuTop+line)*u.menuColumns + col
			if idx >= len(u.menuItems) {
				break
			}
			st := bgStyle
			if idx == u.menuSelected {
				st = fgStyle
			}
			x := u.menuPos.Col + col*colWidth
			x = u.puts(row, x, tui.Clip(u.menuItems[idx], colWidth), st)
			for ; x < u.menuPos.Col+(col+1)*colWidth; x++ {
				u.put(row, x, ' ', st)
			}
		}

		mark := '░'
		if line >= markLine && line < markLine+markHeight {
			mark = '█'
		}
		u.put(row, u.menuPos.Col+u.menuSize.Col-1, mark, bgStyle)
	}
}
