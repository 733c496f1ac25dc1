// @focus: #terminal { draw }
package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/curtain/tui"
	"github.com/lixenwraith/curtain/ui"
)

// fillerFace paints the '~' markers on rows past the end of the buffer
var fillerFace = ui.Face{Fg: ui.Blue}

// Draw paints the content area into the main surface
func (u *UI) Draw(buffer ui.DisplayBuffer, defaultFace ui.Face) {
	u.checkResize(false)
	if !u.main.valid() {
		return
	}

	u.main.bkgd = u.colors.pair(defaultFace.Fg, defaultFace.Bg)

	offset := 0
	if u.statusOnTop {
		offset = 1
	}
	line := offset
	end := u.dims.Line + offset
	for _, l := range buffer.Lines {
		if line >= end {
			break
		}
		u.main.clearLineFrom(line, 0)
		u.drawLine(line, 0, l, defaultFace)
		line++
	}

	fillPair, fillAttrs := u.facePair(fillerFace, defaultFace)
	for ; line < end; line++ {
		u.main.clearLineFrom(line, 0)
		u.main.put(line, 0, '~', fillPair, fillAttrs)
	}
	u.dirty = true
}

// drawLine paints a display line onto the main surface starting at
// col, clipping at the right edge. An atom text ending in '\n' marks
// the end of content: when it fits, it is drawn without the newline
// plus one padding space in the same face.
func (u *UI) drawLine(row, col int, l ui.DisplayLine, def ui.Face) int {
	for _, atom := range l {
		if col >= u.main.size.Col {
			break
		}
		pair, attrs := u.facePair(atom.Face, def)
		text := atom.Text
		if strings.HasSuffix(text, "\n") {
			text = text[:len(text)-1]
			if runewidth.StringWidth(text) < u.main.size.Col-col {
				col = u.main.puts(row, col, text, pair, attrs)
				col = u.main.put(row, col, ' ', pair, attrs)
				continue
			}
		}
		col = u.main.puts(row, col, text, pair, attrs)
	}
	return col
}

// DrawStatus paints the status line and right-aligns the mode line,
// trimming its head behind a '…' when space runs out
func (u *UI) DrawStatus(status, mode ui.DisplayLine, defaultFace ui.Face) {
	u.checkResize(false)
	if !u.main.valid() {
		return
	}

	row := u.statusRow()
	u.main.bkgd = u.colors.pair(defaultFace.Fg, defaultFace.Bg)
	u.main.clearLineFrom(row, 0)
	u.drawLine(row, 0, status, defaultFace)

	modeWidth := mode.ColumnLength()
	remaining := u.cols - status.ColumnLength()
	if modeWidth < remaining {
		u.drawLine(row, u.cols-modeWidth, mode, defaultFace)
	} else if remaining > 2 {
		trimmed := tui.TrimLineHead(mode, modeWidth-(remaining-2))
		trimmed = append(ui.DisplayLine{{Text: "…"}}, trimmed...)
		u.drawLine(row, u.cols-(remaining-1), trimmed, defaultFace)
	}

	if u.setTitle {
		writeTitle(u.bw, mode.Text())
		u.bw.Flush()
	}
	u.dirty = true
}
