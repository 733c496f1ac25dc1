// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/curtain/ui"
)

// outCell is one physical cell of the composed frame, with pair
// handles already resolved to palette indexes (-1 = terminal default)
type outCell struct {
	r     rune
	fg    int16
	bg    int16
	attrs ui.Attr
}

// outputBuffer manages diffed terminal output against a front buffer
// mirroring the physical screen
type outputBuffer struct {
	front  []outCell
	width  int
	height int
	writer *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    int16
	lastBg    int16
	lastAttr  ui.Attr
	lastValid bool
}

func newOutputBuffer(w *bufio.Writer) *outputBuffer {
	return &outputBuffer{writer: w}
}

// resize updates buffer dimensions
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]outCell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height

	for i := range o.front {
		o.front[i] = outCell{}
	}
	o.lastValid = false
	o.cursorValid = false
}

// cellEqual compares two cells for equality (standalone for inlining).
// Blank cells only differ by background.
func cellEqual(a, b outCell) bool {
	if a.r != b.r || a.attrs != b.attrs {
		return false
	}
	if a.r == 0 {
		return a.bg == b.bg
	}
	return a.fg == b.fg && a.bg == b.bg
}

// flush writes the composed frame to the terminal, diffing against the
// front buffer
func (o *outputBuffer) flush(cells []outCell, width, height int) {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}

	expectedSize := width * height
	if len(cells) < expectedSize {
		return
	}

	w := o.writer

	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0

		for x < width {
			idx := rowStart + x
			newCell := cells[idx]

			if cellEqual(newCell, o.front[idx]) {
				x++
				continue
			}

			// Position cursor once for this dirty region
			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX = x
				o.cursorY = y
				o.cursorValid = true
			}

			// Write all contiguous dirty cells, emitting style only when changed
			for x < width {
				cidx := rowStart + x
				c := cells[cidx]

				if cellEqual(c, o.front[cidx]) {
					break
				}

				o.writeStyleCoalesced(w, c.fg, c.bg, c.attrs)

				r := c.r
				if r == 0 {
					r = ' '
				}
				rw := runewidth.RuneWidth(r)
				if rw < 1 {
					r = ' '
					rw = 1
				}
				if r < 0x80 {
					w.WriteByte(byte(r))
				} else {
					w.WriteRune(r)
				}

				o.front[cidx] = c
				o.cursorX += rw
				x++

				// A wide rune spills into the next cell; record its
				// continuation instead of overwriting the right half
				if rw == 2 && x < width {
					o.front[rowStart+x] = cells[rowStart+x]
					x++
				}
			}
		}
	}

	w.Write(csiSGR0)
	o.lastValid = false

	w.Flush()
}

// writeStyleCoalesced emits a single combined SGR sequence when style changes
func (o *outputBuffer) writeStyleCoalesced(w *bufio.Writer, fg, bg int16, attr ui.Attr) {
	fgChanged := !o.lastValid || fg != o.lastFg
	bgChanged := !o.lastValid || bg != o.lastBg
	attrChanged := !o.lastValid || attr != o.lastAttr

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	// Reset first when attributes change. Active attributes also take
	// this path: the minimal color form implies a reset, which would
	// drop them.
	if attrChanged || attr != 0 {
		w.Write(csi)

		// Reset
		w.WriteByte('0')

		if attr&ui.AttrBold != 0 {
			w.WriteByte(';')
			w.WriteByte('1')
		}
		if attr&ui.AttrDim != 0 {
			w.WriteByte(';')
			w.WriteByte('2')
		}
		if attr&ui.AttrItalic != 0 {
			w.WriteByte(';')
			w.WriteByte('3')
		}
		if attr&ui.AttrUnderline != 0 {
			w.WriteByte(';')
			w.WriteByte('4')
		}
		if attr&ui.AttrBlink != 0 {
			w.WriteByte(';')
			w.WriteByte('5')
		}
		if attr&ui.AttrReverse != 0 {
			w.WriteByte(';')
			w.WriteByte('7')
		}

		o.writeFgInline(w, fg)
		o.writeBgInline(w, bg)

		w.WriteByte('m')
	} else {
		// Only colors changed, emit minimal sequence
		if fgChanged && bgChanged {
			w.Write(csi)
			o.writeFgInline(w, fg)
			o.writeBgInline(w, bg)
			w.WriteByte('m')
		} else if fgChanged {
			o.writeFgFull(w, fg)
		} else if bgChanged {
			o.writeBgFull(w, bg)
		}
	}

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

// writeFgInline writes fg color parameters (no CSI prefix, no 'm' suffix)
func (o *outputBuffer) writeFgInline(w *bufio.Writer, fg int16) {
	w.WriteByte(';')
	switch {
	case fg < 0:
		w.WriteString("39")
	case fg < 8:
		w.WriteByte('3')
		w.WriteByte('0' + byte(fg))
	default:
		w.WriteString("38;5;")
		writeInt(w, int(fg))
	}
}

// writeBgInline writes bg color parameters (no CSI prefix, no 'm' suffix)
func (o *outputBuffer) writeBgInline(w *bufio.Writer, bg int16) {
	w.WriteByte(';')
	switch {
	case bg < 0:
		w.WriteString("49")
	case bg < 8:
		w.WriteByte('4')
		w.WriteByte('0' + byte(bg))
	default:
		w.WriteString("48;5;")
		writeInt(w, int(bg))
	}
}

// writeFgFull writes a complete fg color sequence
func (o *outputBuffer) writeFgFull(w *bufio.Writer, fg int16) {
	switch {
	case fg < 0:
		w.Write(csiDefaultFg)
	case fg < 8:
		w.Write(csi)
		w.WriteByte('3')
		w.WriteByte('0' + byte(fg))
		w.WriteByte('m')
	default:
		w.Write(csiFg256)
		writeInt(w, int(fg))
		w.WriteByte('m')
	}
}

// writeBgFull writes a complete bg color sequence
func (o *outputBuffer) writeBgFull(w *bufio.Writer, bg int16) {
	switch {
	case bg < 0:
		w.Write(csiDefaultBg)
	case bg < 8:
		w.Write(csi)
		w.WriteByte('4')
		w.WriteByte('0' + byte(bg))
		w.WriteByte('m')
	default:
		w.Write(csiBg256)
		writeInt(w, int(bg))
		w.WriteByte('m')
	}
}

// forceFullRedraw clears the front buffer to force a complete repaint
func (o *outputBuffer) forceFullRedraw() {
	for i := range o.front {
		o.front[i] = outCell{}
	}
	o.lastValid = false
	o.cursorValid = false
}

// clear writes a clear-screen in the terminal's default colors
func (o *outputBuffer) clear() {
	w := o.writer
	w.Write(csiSGR0)
	w.Write(csiClear)

	o.lastValid = false
	o.cursorValid = false
	w.Flush()

	for i := range o.front {
		o.front[i] = outCell{r: ' ', fg: -1, bg: -1}
	}
}
