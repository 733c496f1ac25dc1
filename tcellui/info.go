// @focus: #tcell { info }
package tcellui

import (
	"strings"

	"github.com/lixenwraith/curtain/tui"
	"github.com/lixenwraith/curtain/ui"
)

// InfoShow opens the info popup. Prompt style wraps the content in an
// assistant speech bubble by the status row; MenuDoc docks beside the
// open menu; the inline styles float near the anchor.
func (u *UI) InfoShow(title, content string, anchor ui.Coord, face ui.Face, style ui.InfoStyle) {
	text := content
	if style == ui.InfoPrompt {
		text = tui.InfoBox(title, content, u.cols, u.assistant)
		if text == "" {
			return
		}
		anchor = ui.Coord{Line: u.statusRow(), Col: u.cols - 1}
	} else {
		if u.statusOnTop {
			anchor.Line++
		}
		if style == ui.InfoMenuDoc && u.menuOpen {
			col := u.menuPos.Col + u.menuSize.Col
			maxWidth := u.cols - col
			if maxWidth < 4 {
				return
			}
			text = strings.Join(tui.WrapLines(content, maxWidth), "\n")
		}
	}

	size := tui.ContentExtent(text)
	var pos ui.Coord
	if style == ui.InfoMenuDoc && u.menuOpen {
		pos = ui.Coord{Line: u.menuPos.Line, Col: u.menuPos.Col + u.menuSize.Col}
	} else {
		var avoidPos, avoidSize ui.Coord
		if u.menuOpen {
			avoidPos, avoidSize = u.menuPos, u.menuSize
		}
		pos = tui.PopupPos(anchor, size, u.dims, avoidPos, avoidSize, style == ui.InfoInlineAbove)
	}

	// Never cover the status row
	if pos.Line+size.Line > u.dims.Line {
		return
	}

	u.infoText = text
	u.infoFace = face
	u.infoPos = pos
	u.infoSize = size
	u.infoOpen = true
	u.dirty = true
}

// InfoHide discards the info popup
func (u *UI) InfoHide() {
	u.infoOpen = false
	u.dirty = true
}

// composeInfo paints the popup text over its background rectangle
func (u *UI) composeInfo() {
	if !u.infoOpen {
		return
	}
	st := faceStyle(u.infoFace, u.infoFace)
	lines := strings.Split(u.infoText, "\n")
	for line := 0; line < u.infoSize.Line; line++ {
		row := u.infoPos.Line + line
		for col := 0; col < u.infoSize.Col; col++ {
			u.put(row, u.infoPos.Col+col, ' ', st)
		}
		if line < len(lines) {
			u.puts(row, u.infoPos.Col, lines[line], st)
		}
	}
}
