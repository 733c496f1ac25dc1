//go:build unix

package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/curtain/ui"
)

// unixDevice drives the controlling terminal through stdin/stdout plus
// a self-pipe for cross-goroutine wakeups.
type unixDevice struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	wakeR *os.File
	wakeW *os.File
}

func newDevice() Device {
	return &unixDevice{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (d *unixDevice) Init() error {
	if !term.IsTerminal(d.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(d.inFd)
	if err != nil {
		return err
	}
	d.oldTerm = old

	r, w, err := os.Pipe()
	if err != nil {
		term.Restore(d.inFd, old)
		d.oldTerm = nil
		return err
	}
	unix.SetNonblock(int(r.Fd()), true)
	unix.SetNonblock(int(w.Fd()), true)
	d.wakeR, d.wakeW = r, w
	return nil
}

func (d *unixDevice) Fini() {
	if d.oldTerm != nil {
		term.Restore(d.inFd, d.oldTerm)
		d.oldTerm = nil
	}
	if d.wakeR != nil {
		d.wakeR.Close()
		d.wakeW.Close()
		d.wakeR, d.wakeW = nil, nil
	}
}

// poll waits for readability on the tty or the wake pipe. Wake bytes
// are drained here so a stale wakeup never satisfies a later poll.
func (d *unixDevice) poll(timeoutMs int) (ready bool, err error) {
	fds := []unix.PollFd{
		{Fd: int32(d.inFd), Events: unix.POLLIN},
	}
	if d.wakeR != nil {
		fds = append(fds, unix.PollFd{Fd: int32(d.wakeR.Fd()), Events: unix.POLLIN})
	}

	n, err := unix.Poll(fds, timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			// Signal delivery interrupts the wait; report not-ready so
			// the caller can run its checkpoint
			return false, nil
		}
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	if len(fds) > 1 && fds[1].Revents&unix.POLLIN != 0 {
		var drain [64]byte
		d.wakeR.Read(drain[:])
	}
	return fds[0].Revents&unix.POLLIN != 0, nil
}

func (d *unixDevice) ReadByte(timeoutMs int) (byte, bool, error) {
	ready, err := d.poll(timeoutMs)
	if err != nil {
		return 0, false, err
	}
	if !ready {
		return 0, false, nil
	}

	var buf [1]byte
	n, err := unix.Read(d.inFd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, err
	}
	if n == 0 {
		return 0, false, io.EOF
	}
	return buf[0], true, nil
}

func (d *unixDevice) Poll(timeoutMs int) (bool, error) {
	return d.poll(timeoutMs)
}

func (d *unixDevice) Write(p []byte) (int, error) {
	return d.out.Write(p)
}

func (d *unixDevice) Size() (ui.Coord, error) {
	ws, err := unix.IoctlGetWinsize(d.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return ui.Coord{}, err
	}
	return ui.Coord{Line: int(ws.Row), Col: int(ws.Col)}, nil
}

func (d *unixDevice) Notify() {
	if d.wakeW == nil {
		return
	}
	// A full pipe already holds a pending wakeup
	d.wakeW.Write([]byte{0})
}

func (d *unixDevice) Suspend() error {
	if d.oldTerm != nil {
		term.Restore(d.inFd, d.oldTerm)
	}

	// Stop the whole process group; execution resumes here on SIGCONT
	if err := unix.Kill(0, unix.SIGTSTP); err != nil {
		return err
	}

	old, err := term.MakeRaw(d.inFd)
	if err != nil {
		return err
	}
	d.oldTerm = old
	return nil
}

// resetTerminalMode attempts to restore the terminal to cooked mode.
// Best-effort for crash recovery; errors ignored.
func resetTerminalMode() {
	// Restore via /dev/tty, which works even if stdin was redirected
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if termios, err := unix.IoctlGetTermios(fd, unix.TCGETS); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			unix.IoctlSetTermios(fd, unix.TCSETS, termios)
		}
	}
}
