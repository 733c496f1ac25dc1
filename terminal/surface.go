package terminal

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/curtain/ui"
)

// cell is one surface position. A zero rune renders as a space in the
// pair's background; wide runes occupy their own cell plus a zero-rune
// continuation cell.
type cell struct {
	r     rune
	pair  int16
	attrs ui.Attr
}

// surface is an off-screen cell rectangle composited into the frame at
// pos. The zero value is absent: every operation but create no-ops.
type surface struct {
	pos  ui.Coord
	size ui.Coord
	bkgd int16
	grid []cell
}

func (s *surface) valid() bool {
	return s.grid != nil
}

func (s *surface) create(pos, size ui.Coord) {
	if size.Line <= 0 || size.Col <= 0 {
		s.destroy()
		return
	}
	s.pos = pos
	s.size = size
	s.bkgd = 0
	s.grid = make([]cell, size.Line*size.Col)
}

func (s *surface) destroy() {
	*s = surface{}
}

// clear fills the whole surface with the background pair
func (s *surface) clear() {
	for i := range s.grid {
		s.grid[i] = cell{pair: s.bkgd}
	}
}

// clearLineFrom blanks a row from the given column to the right edge
func (s *surface) clearLineFrom(line, col int) {
	if !s.valid() || line < 0 || line >= s.size.Line {
		return
	}
	if col < 0 {
		col = 0
	}
	row := line * s.size.Col
	for i := col; i < s.size.Col; i++ {
		s.grid[row+i] = cell{pair: s.bkgd}
	}
}

// put writes one rune and returns the next column. Wide runes that
// would straddle the right edge are blanked instead.
func (s *surface) put(line, col int, r rune, pair int16, attrs ui.Attr) int {
	if !s.valid() || line < 0 || line >= s.size.Line || col < 0 || col >= s.size.Col {
		return col + 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return col
	}
	row := line * s.size.Col
	if w == 2 && col+1 >= s.size.Col {
		s.grid[row+col] = cell{pair: pair, attrs: attrs}
		return col + 1
	}
	s.grid[row+col] = cell{r: r, pair: pair, attrs: attrs}
	if w == 2 {
		s.grid[row+col+1] = cell{pair: pair, attrs: attrs}
	}
	return col + w
}

// puts writes a string starting at col, clipping at the right edge,
// and returns the column after the last written rune.
func (s *surface) puts(line, col int, text string, pair int16, attrs ui.Attr) int {
	for _, r := range text {
		if col >= s.size.Col {
			break
		}
		col = s.put(line, col, r, pair, attrs)
	}
	return col
}
