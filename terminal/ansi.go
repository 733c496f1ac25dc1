// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping (cursor sticks at right edge), preventing scroll when writing to bottom-right corner
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Scroll region (DECSTBM); ESC[r resets to full screen
	csiScrollReset = []byte("\x1b[r")

	// Mouse reporting: button-event tracking with SGR extended coordinates
	csiMouseTrackOn  = []byte("\x1b[?1002h")
	csiMouseTrackOff = []byte("\x1b[?1002l")
	csiMouseSGROn    = []byte("\x1b[?1006h")
	csiMouseSGROff   = []byte("\x1b[?1006l")

	// Focus in/out reporting
	csiFocusOn  = []byte("\x1b[?1004h")
	csiFocusOff = []byte("\x1b[?1004l")

	// Color prefixes
	csiFg256     = []byte("\x1b[38;5;") // followed by N;m
	csiBg256     = []byte("\x1b[48;5;") // followed by N;m
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")

	// OSC sequences
	oscTitle      = []byte("\x1b]2;") // followed by text BEL
	oscColor      = []byte("\x1b]4;") // followed by idx;rgb:rr/gg/bb BEL
	oscColorReset = []byte("\x1b]104\x07")
	bel           = []byte("\x07")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

const hexDigits = "0123456789abcdef"

// writeHexByte writes a two-digit lowercase hex value
func writeHexByte(w *bufio.Writer, v uint8) {
	w.WriteByte(hexDigits[v>>4])
	w.WriteByte(hexDigits[v&0x0f])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeCursorForward writes cursor forward N positions
func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	if n == 1 {
		w.Write([]byte("\x1b[C"))
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('C')
}

// writeTitle emits an OSC 2 window title
func writeTitle(w *bufio.Writer, title string) {
	w.Write(oscTitle)
	w.WriteString(title)
	w.Write(bel)
}

// writePaletteRegister programs palette register idx via OSC 4
func writePaletteRegister(w *bufio.Writer, idx int, r, g, b uint8) {
	w.Write(oscColor)
	writeInt(w, idx)
	w.WriteString(";rgb:")
	writeHexByte(w, r)
	w.WriteByte('/')
	writeHexByte(w, g)
	w.WriteByte('/')
	writeHexByte(w, b)
	w.Write(bel)
}
