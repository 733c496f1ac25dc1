package tui

import "github.com/lixenwraith/curtain/ui"

// CeilDiv divides rounding up. CeilDiv(0, n) is 1, which callers rely
// on when sizing a window for an empty item list.
func CeilDiv(a, b int) int {
	return (a-1)/b + 1
}

// PopupPos places a popup of the given size near anchor on a screen.
// Placement prefers the line below the anchor (or above it when
// preferAbove is set and there is room), clamps to the right edge, and
// dodges the avoid rectangle (a zero avoidSize disables dodging): an
// overlapping popup moves above the rectangle, or below it when above
// would leave the screen.
func PopupPos(anchor, size, screen, avoidPos, avoidSize ui.Coord, preferAbove bool) ui.Coord {
	var pos ui.Coord
	if preferAbove {
		pos = anchor.Sub(ui.Coord{Line: size.Line})
		if pos.Line < 0 {
			preferAbove = false
		}
	}
	if !preferAbove {
		pos = anchor.Add(ui.Coord{Line: 1})
		if pos.Line+size.Line >= screen.Line {
			pos.Line = max(0, anchor.Line-size.Line)
		}
	}
	if pos.Col+size.Col >= screen.Col {
		pos.Col = max(0, screen.Col-size.Col)
	}

	if avoidSize != (ui.Coord{}) {
		rectBeg := avoidPos
		rectEnd := rectBeg.Add(avoidSize)
		end := pos.Add(size)
		if !(end.Line < rectBeg.Line || end.Col < rectBeg.Col ||
			pos.Line > rectEnd.Line || pos.Col > rectEnd.Col) {
			pos.Line = min(rectBeg.Line, anchor.Line) - size.Line
			if pos.Line < 0 {
				pos.Line = max(rectEnd.Line, anchor.Line)
			}
		}
	}
	return pos
}

// MenuMark computes the scrollbar thumb for a menu window showing
// visible of total rows, scrolled to top. The thumb height scales with
// the visible fraction and spans the whole track when nothing is hidden.
func MenuMark(visible, total, top int) (markLine, markHeight int) {
	if visible <= 0 || total <= 0 {
		return 0, 0
	}
	markHeight = min(CeilDiv(visible*visible, total), visible)
	markLine = (visible - markHeight) * top / max(1, total-visible)
	return markLine, markHeight
}
