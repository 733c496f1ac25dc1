package terminal

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/curtain/tui"
	"github.com/lixenwraith/curtain/ui"
)

// 128KB output buffer keeps a full-screen repaint in one write
const outputBufferSize = 131072

// UI is the direct-ANSI backend. It owns the physical terminal between
// Init and Fini; apart from the readiness callback, methods are meant
// for the host's event-loop goroutine.
type UI struct {
	dev    Device
	bw     *bufio.Writer
	out    *outputBuffer
	colors *colorRegistry

	rows, cols int
	dims       ui.Coord

	main surface
	menu surface
	info surface

	frame []outCell
	dirty bool

	// menu state
	menuItems    []string
	menuSelected int
	menuColumns  int
	menuTop      int
	menuLines    int
	menuFgFace   ui.Face
	menuBgFace   ui.Face

	// decoder state
	unread  []byte
	pending []ui.Key
	closed  bool

	// resize bridge
	resizePending atomic.Bool
	sigCh         chan os.Signal
	watchStop     chan struct{}
	watchDone     chan struct{}

	// readiness callback
	cbMu       sync.Mutex
	onKey      func(ui.EventMode)
	cbArmed    atomic.Bool
	notifyStop chan struct{}
	notifyDone chan struct{}

	// options
	statusOnTop     bool
	setTitle        bool
	wheelDownButton int
	wheelUpButton   int
	assistant       []string

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New returns a UI over the controlling terminal
func New() *UI {
	return NewWithDevice(newDevice())
}

// NewWithDevice returns a UI over a custom device, mainly for tests
func NewWithDevice(dev Device) *UI {
	u := &UI{
		dev:             dev,
		wheelDownButton: 2,
		wheelUpButton:   4,
		setTitle:        true,
		assistant:       tui.AssistantClippy,
		menuSelected:    -1,
	}
	u.bw = bufio.NewWriterSize(dev, outputBufferSize)
	u.out = newOutputBuffer(u.bw)
	u.colors = newColorRegistry(u.bw, detectDynamicPalette())
	return u
}

// Init acquires the terminal and queues the initial Resize key
func (u *UI) Init() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.initialized {
		return nil
	}

	if err := u.dev.Init(); err != nil {
		return err
	}
	if _, err := u.dev.Size(); err != nil {
		u.dev.Fini()
		return fmt.Errorf("query terminal size: %w", err)
	}

	u.bw.Write(csiAltScreenEnter)
	u.bw.Write(csiCursorHide)
	u.bw.Write(csiAutoWrapOff)
	u.bw.Write(csiMouseSGROn)
	u.bw.Write(csiMouseTrackOn)
	u.bw.Write(csiFocusOn)
	u.bw.Flush()

	u.startResizeWatcher()
	u.checkResize(true)

	u.initialized = true

	// A callback registered before Init starts its notifier now.
	u.cbMu.Lock()
	hasCb := u.onKey != nil
	u.cbMu.Unlock()
	if hasCb {
		u.startNotifierLocked()
	}
	return nil
}

// Fini releases the terminal. Idempotent.
func (u *UI) Fini() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.initialized || u.finalized {
		return
	}

	u.stopNotifier()
	u.stopResizeWatcher()

	u.bw.Write(csiFocusOff)
	u.bw.Write(csiMouseTrackOff)
	u.bw.Write(csiMouseSGROff)
	u.colors.reset()
	u.bw.Write(csiCursorShow)
	u.bw.Write(csiAltScreenExit)
	u.bw.Write(csiAutoWrapOn)
	u.bw.Write(csiSGR0)
	u.bw.Flush()

	u.dev.Fini()
	u.finalized = true
}

// Abort restores the terminal for a dying process, without orderly
// teardown of goroutines or device state
func (u *UI) Abort() {
	EmergencyReset(u.dev)
}

// Dimensions returns the content area extent: physical rows minus the
// status row, by columns
func (u *UI) Dimensions() ui.Coord {
	return u.dims
}

// Refresh flushes accumulated changes to the terminal, if any
func (u *UI) Refresh() {
	if !u.dirty {
		return
	}
	u.compose()
	u.out.flush(u.frame, u.cols, u.rows)
	u.dirty = false
}

// compose layers the three surfaces into the back frame, resolving
// pair handles into palette indexes
func (u *UI) compose() {
	size := u.rows * u.cols
	if cap(u.frame) < size {
		u.frame = make([]outCell, size)
	} else {
		u.frame = u.frame[:size]
	}
	u.blit(&u.main)
	u.blit(&u.menu)
	u.blit(&u.info)
}

func (u *UI) blit(s *surface) {
	if !s.valid() {
		return
	}
	for line := 0; line < s.size.Line; line++ {
		y := s.pos.Line + line
		if y < 0 || y >= u.rows {
			continue
		}
		row := line * s.size.Col
		out := y * u.cols
		for col := 0; col < s.size.Col; col++ {
			x := s.pos.Col + col
			if x < 0 || x >= u.cols {
				continue
			}
			c := s.grid[row+col]
			fg, bg := u.colors.pairColors(c.pair)
			u.frame[out+x] = outCell{r: c.r, fg: fg, bg: bg, attrs: c.attrs}
		}
	}
}

// facePair resolves a face against a default face into a pair handle
func (u *UI) facePair(f, def ui.Face) (int16, ui.Attr) {
	r := f.Resolved(def)
	return u.colors.pair(r.Fg, r.Bg), f.Attrs
}

// statusRow is the physical row of the status line
func (u *UI) statusRow() int {
	if u.statusOnTop {
		return 0
	}
	return u.rows - 1
}

// SetUIOptions applies runtime options; unknown keys are ignored
func (u *UI) SetUIOptions(opts ui.Options) {
	switch opts.String("assistant", "clippy") {
	case "cat":
		u.assistant = tui.AssistantCat
	case "none", "off":
		u.assistant = nil
	default:
		u.assistant = tui.AssistantClippy
	}
	u.statusOnTop = opts.Bool("status_on_top", false)
	u.setTitle = opts.Bool("set_title", true)
	u.wheelDownButton = opts.Int("wheel_down_button", 2)
	u.wheelUpButton = opts.Int("wheel_up_button", 4)
	switch opts.String("palette", "") {
	case "dynamic":
		u.colors.dynamic = true
	case "static":
		u.colors.dynamic = false
	}
}

// SetInputCallback registers the readiness callback and starts the
// notifier on first use. The callback runs on the notifier goroutine.
func (u *UI) SetInputCallback(cb func(ui.EventMode)) {
	u.cbMu.Lock()
	u.onKey = cb
	u.cbMu.Unlock()
	if cb == nil {
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.startNotifierLocked()
}

// startNotifierLocked spawns the notifier goroutine once the terminal
// is live. Caller holds u.mu.
func (u *UI) startNotifierLocked() {
	if u.notifyStop != nil || !u.initialized || u.finalized {
		return
	}
	u.notifyStop = make(chan struct{})
	u.notifyDone = make(chan struct{})
	go u.notifyLoop(u.notifyStop, u.notifyDone)
}

// notifyLoop polls for readable input and fires the callback once per
// arming. A pending resize outranks readable bytes.
func (u *UI) notifyLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		default:
		}

		ready, err := u.dev.Poll(100)
		if err != nil {
			return
		}

		u.cbMu.Lock()
		cb := u.onKey
		u.cbMu.Unlock()
		if cb == nil || u.cbArmed.Load() {
			continue
		}

		if u.resizePending.Load() {
			u.cbArmed.Store(true)
			cb(ui.EventUrgent)
		} else if ready {
			u.cbArmed.Store(true)
			cb(ui.EventNormal)
		}
	}
}

// rearm lets the notifier fire again once the host polls for input
func (u *UI) rearm() {
	u.cbArmed.Store(false)
}

func (u *UI) stopNotifier() {
	if u.notifyStop == nil {
		return
	}
	close(u.notifyStop)
	u.dev.Notify()
	<-u.notifyDone
	u.notifyStop = nil
}

// suspend hands the terminal back to the shell for ctrl-z job control
// and reclaims it once the process continues
func (u *UI) suspend() {
	u.bw.Write(csiFocusOff)
	u.bw.Write(csiMouseTrackOff)
	u.bw.Write(csiMouseSGROff)
	u.bw.Write(csiCursorShow)
	u.bw.Write(csiAltScreenExit)
	u.bw.Write(csiAutoWrapOn)
	u.bw.Write(csiSGR0)
	u.bw.Flush()

	u.dev.Suspend()

	u.bw.Write(csiAltScreenEnter)
	u.bw.Write(csiCursorHide)
	u.bw.Write(csiAutoWrapOff)
	u.bw.Write(csiMouseSGROn)
	u.bw.Write(csiMouseTrackOn)
	u.bw.Write(csiFocusOn)
	u.bw.Flush()

	u.checkResize(true)
}
