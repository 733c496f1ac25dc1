// @focus: #terminal { menu }
package terminal

import (
	"github.com/lixenwraith/curtain/tui"
	"github.com/lixenwraith/curtain/ui"
)

// Widest item kept when sizing menu columns
const menuItemWidthCap = 200

// MenuShow opens the completion menu. Prompt style spans the bottom of
// the screen in as many columns as fit; Inline style hangs a single
// column off the anchor.
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

	u.menu.create(ui.Coord{Line: line, Col: anchor.Col}, ui.Coord{Line: height, Col: width})
	u.menuColumns = columns
	u.menuLines = tui.CeilDiv(len(u.menuItems), columns)
	u.menuTop = 0
	u.menuSelected = len(u.menuItems) // nothing selected yet
	u.drawMenu()
	u.dirty = true
}

// MenuSelect moves the selection, scrolling the minimum needed to keep
// it visible. Out of range clears the selection and rewinds the scroll.
func (u *UI) MenuSelect(selected int) {
	if !u.menu.valid() {
		return
	}
	if selected < 0 || selected >= len(u.menuItems) {
		u.menuSelected = -1
		u.menuTop = 0
	} else {
		u.menuSelected = selected
		selLine := selected / max(1, u.menuColumns)
		visible := u.menu.size.Line
		if selLine < u.menuTop {
			u.menuTop = selLine
		}
		if selLine >= u.menuTop+visible {
			u.menuTop = min(selLine, u.menuLines-visible)
		}
	}
	u.drawMenu()
	u.dirty = true
}

// MenuHide discards the menu
func (u *UI) MenuHide() {
	u.menuItems = u.menuItems[:0]
	u.menuSelected = -1
	u.menu.destroy()
	u.dirty = true
}

// drawMenu paints the item grid and the scrollbar column
func (u *UI) drawMenu() {
	if !u.menu.valid() {
		return
	}
	fgPair, fgAttrs := u.facePair(u.menuFgFace, u.menuFgFace)
	bgPair, bgAttrs := u.facePair(u.menuBgFace, u.menuBgFace)
	u.menu.bkgd = bgPair
	u.menu.clear()

	visible := u.menu.size.Line
	colWidth := (u.menu.size.Col - 1) / max(1, u.menuColumns)
	markLine, markHeight := tui.MenuMark(visible, u.menuLines, u.menuTop)

	for line := 0; line < visible; line++ {
		for col := 0; col < u.menuColumns; col++ {
			idx := (u.menuTop+line)*u.menuColumns + col
			if idx >= len(u.menuItems) {
				break
			}
			pair, attrs := bgPair, bgAttrs
			if idx == u.menuSelected {
				pair, attrs = fgPair, fgAttrs
			}
			x := col * colWidth
			x = u.menu.puts(line, x, tui.Clip(u.menuItems[idx], colWidth), pair, attrs)
			for ; x < (col+1)*colWidth; x++ {
				u.menu.put(line, x, ' ', pair, attrs)
			}
		}

		mark := '░'
		if line >= markLine && line < markLine+markHeight {
			mark = '█'
		}
		u.menu.put(line, u.menu.size.Col-1, mark, bgPair, bgAttrs)
	}
}
