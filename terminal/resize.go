package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/curtain/ui"
)

// startResizeWatcher installs the SIGWINCH listener. The watcher only
// flags the change and wakes the device; all geometry work happens at
// the next checkpoint on the host goroutine.
func (u *UI) startResizeWatcher() {
	u.sigCh = make(chan os.Signal, 1)
	signal.Notify(u.sigCh, syscall.SIGWINCH)
	u.watchStop = make(chan struct{})
	u.watchDone = make(chan struct{})

	go func() {
		defer close(u.watchDone)
		for {
			select {
			case <-u.watchStop:
				return
			case <-u.sigCh:
				u.resizePending.Store(true)
				u.dev.Notify()
			}
		}
	}()
}

func (u *UI) stopResizeWatcher() {
	if u.watchStop == nil {
		return
	}
	signal.Stop(u.sigCh)
	close(u.watchStop)
	<-u.watchDone
	u.watchStop = nil
}

// checkResize applies a pending geometry change. Every input and draw
// entry point runs through here, so the change always lands between
// frames; any number of signals since the last checkpoint collapses
// into one cycle. The popups do not survive a resize; the host gets a
// Resize key and shows them again at the new geometry.
func (u *UI) checkResize(force bool) {
	if !u.resizePending.Swap(false) && !force {
		return
	}

	size, err := u.dev.Size()
	if err != nil {
		panic(fmt.Sprintf("terminal: size query failed mid-session: %v", err))
	}
	u.rows, u.cols = size.Line, size.Col
	u.dims = ui.Coord{Line: size.Line - 1, Col: size.Col}

	u.main.create(ui.Coord{}, size)
	u.menu.destroy()
	u.info.destroy()

	// Drop any scroll region the previous geometry pinned and repaint
	// from scratch
	u.bw.Write(csiScrollReset)
	u.out.clear()
	u.dirty = true

	u.pushKey(ui.Resize(u.dims))
}
