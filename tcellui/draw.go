// @focus: #tcell { draw }
package tcellui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/curtain/tui"
	"github.com/lixenwraith/curtain/ui"
)

// fillerFace paints the '~' markers on rows past the end of the buffer
var fillerFace = ui.Face{Fg: ui.Blue}

// Draw retains the content buffer for the next Refresh
func (u *UI) Draw(buffer ui.DisplayBuffer, defaultFace ui.Face) {
	u.content = buffer
	u.contentFace = defaultFace
	u.dirty = true
}

// DrawStatus retains the status and mode lines for the next Refresh
func (u *UI) DrawStatus(status, mode ui.DisplayLine, defaultFace ui.Face) {
	u.status = status
	u.mode = mode
	u.statusFace = defaultFace
	if u.setTitle {
		u.screen.SetTitle(mode.Text())
	}
	u.dirty = true
}

// composeContent paints the retained buffer into the content area, with
// '~' markers below the last line
func (u *UI) composeContent() {
	offset := 0
	if u.statusOnTop {
		offset = 1
	}
	line := offset
	end := u.dims.Line + offset
	for _, l := range u.content.Lines {
		if line >= end {
			break
		}
		u.drawLine(line, 0, l, u.contentFace)
		line++
	}
	fillStyle := faceStyle(fillerFace, u.contentFace)
	for ; line < end; line++ {
		u.put(line, 0, '~', fillStyle)
	}
}

// composeStatus paints the status row: the status line left-aligned,
// the mode line right-aligned, trimmed behind a '…' when space runs out
func (u *UI) composeStatus() {
	row := u.statusRow()
	st := faceStyle(ui.Face{}, u.statusFace)
	for col := 0; col < u.cols; col++ {
		u.put(row, col, ' ', st)
	}
	u.drawLine(row, 0, u.status, u.statusFace)

	modeWidth := u.mode.ColumnLength()
	remaining := u.cols - u.status.ColumnLength()
	if modeWidth < remaining {
		u.drawLine(row, u.cols-modeWidth, u.mode, u.statusFace)
	} else if remaining > 2 {
		trimmed := tui.TrimLineHead(u.mode, modeWidth-(remaining-2))
		trimmed = append(ui.DisplayLine{{Text: "…"}}, trimmed...)
		u.drawLine(row, u.cols-(remaining-1), trimmed, u.statusFace)
	}
}

// drawLine paints a display line starting at col, clipping at the right
// edge. An atom text ending in '\n' marks the end of content: when it
// fits, it is drawn without the newline plus one padding space in the
// atom's face.
func (u *UI) drawLine(row, col int, l ui.DisplayLine, def ui.Face) int {
	for _, atom := range l {
		if col >= u.cols {
			break
		}
		st := faceStyle(atom.Face, def)
		text := atom.Text
		if strings.HasSuffix(text, "\n") {
			text = text[:len(text)-1]
			if runewidth.StringWidth(text) < u.cols-col {
				col = u.puts(row, col, text, st)
				col = u.put(row, col, ' ', st)
				continue
			}
		}
		col = u.puts(row, col, text, st)
	}
	return col
}
