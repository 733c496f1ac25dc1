// @focus: #terminal { info }
package terminal

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
		if style == ui.InfoMenuDoc && u.menu.valid() {
			col := u.menu.pos.Col + u.menu.size.Col
			maxWidth := u.cols - col
			if maxWidth < 4 {
				return
			}
			text = strings.Join(tui.WrapLines(content, maxWidth), "\n")
		}
	}

	size := tui.ContentExtent(text)
	var pos ui.Coord
	if style == ui.InfoMenuDoc && u.menu.valid() {
		pos = ui.Coord{Line: u.menu.pos.Line, Col: u.menu.pos.Col + u.menu.size.Col}
	} else {
		var avoidPos, avoidSize ui.Coord
		if u.menu.valid() {
			avoidPos, avoidSize = u.menu.pos, u.menu.size
		}
		pos = tui.PopupPos(anchor, size, u.dims, avoidPos, avoidSize, style == ui.InfoInlineAbove)
	}

	// Never cover the status row
	if pos.Line+size.Line > u.dims.Line {
		return
	}

	u.info.create(pos, size)
	pair, attrs := u.facePair(face, face)
	u.info.bkgd = pair
	u.info.clear()
	for i, s := range strings.Split(text, "\n") {
		if i >= size.Line {
			break
		}
		u.info.puts(i, 0, s, pair, attrs)
	}
	u.dirty = true
}

// InfoHide discards the info popup
func (u *UI) InfoHide() {
	u.info.destroy()
	u.dirty = true
}
