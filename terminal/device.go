package terminal

import (
	"io"
	"os"

	"github.com/lixenwraith/curtain/ui"
)

// Poll timeouts in milliseconds
const (
	pollForever = -1
	pollProbe   = 0
	// escDelay is the window for telling a lone ESC keypress apart from
	// the start of an escape sequence
	escDelay = 25
)

// Device abstracts the terminal byte source/sink so the decoder and
// renderer can run against a scripted double in tests.
type Device interface {
	// Init verifies the tty and enters raw mode
	Init() error

	// Fini restores the terminal mode. Safe to call multiple times.
	Fini()

	// ReadByte reads one byte, waiting up to timeoutMs milliseconds
	// (pollForever blocks). ok is false on timeout and on wake-pipe
	// interruption; err is set when the stream is gone.
	ReadByte(timeoutMs int) (b byte, ok bool, err error)

	// Poll reports input readability without consuming anything
	Poll(timeoutMs int) (bool, error)

	// Write sends raw bytes to the terminal
	Write(p []byte) (int, error)

	// Size returns the terminal extent as {rows, cols}
	Size() (ui.Coord, error)

	// Notify interrupts a blocked ReadByte or Poll from another
	// goroutine
	Notify()

	// Suspend stops the process group the way a shell job expects:
	// cooked mode, SIGTSTP, raw mode again once continued.
	Suspend() error
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if Fini cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseTrackOff)
	w.Write(csiMouseSGROff)
	w.Write(csiFocusOff)
	w.Write(oscColorReset)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
