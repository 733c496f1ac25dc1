package tcellui

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/curtain/tui"
	"github.com/lixenwraith/curtain/ui"
)

// UI is the tcell backend. It retains the host's last Draw and
// DrawStatus calls plus any open popups, and recomposites the whole
// frame on Refresh; tcell diffs against the physical screen. Apart from
// the readiness callback, methods are meant for the host's event-loop
// goroutine.
type UI struct {
	screen tcell.Screen

	rows, cols int
	dims       ui.Coord

	// retained frame
	content     ui.DisplayBuffer
	contentFace ui.Face
	status      ui.DisplayLine
	mode        ui.DisplayLine
	statusFace  ui.Face
	dirty       bool

	// menu state
	menuItems    []string
	menuSelected int
	menuColumns  int
	menuTop      int
	menuLines    int
	menuFgFace   ui.Face
	menuBgFace   ui.Face
	menuPos      ui.Coord
	menuSize     ui.Coord
	menuOpen     bool

	// info state
	infoText string
	infoFace ui.Face
	infoPos  ui.Coord
	infoSize ui.Coord
	infoOpen bool

	// input bridge
	events      chan tcell.Event
	pending     []ui.Key
	lastButtons tcell.ButtonMask

	// readiness callback
	cbMu    sync.Mutex
	onKey   func(ui.EventMode)
	cbArmed atomic.Bool

	// options
	statusOnTop bool
	setTitle    bool
	assistant   []string

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New returns a UI over a freshly allocated tcell screen
func New() (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen returns a UI over an existing screen, typically a
// tcell.SimulationScreen in tests
func NewWithScreen(screen tcell.Screen) *UI {
	return &UI{
		screen:       screen,
		setTitle:     true,
		assistant:    tui.AssistantClippy,
		menuSelected: -1,
	}
}

// Init acquires the screen, starts the event pump, and queues the
// initial Resize key
func (u *UI) Init() error {
	u.mu.Lock()
	if u.initialized {
		u.mu.Unlock()
		return nil
	}

	if err := u.screen.Init(); err != nil {
		u.mu.Unlock()
		return err
	}
	u.screen.EnableMouse()
	u.screen.EnableFocus()
	u.screen.HideCursor()

	w, h := u.screen.Size()
	u.setExtent(w, h)

	u.events = make(chan tcell.Event, 64)
	go u.pump()

	u.pushKey(ui.Resize(u.dims))
	u.initialized = true
	u.mu.Unlock()

	// a callback registered before Init learns about the queued resize
	u.cbMu.Lock()
	cb := u.onKey
	u.cbMu.Unlock()
	if cb != nil && !u.cbArmed.Swap(true) {
		cb(ui.EventUrgent)
	}
	return nil
}

// Fini releases the screen. Idempotent. The pump goroutine drains out
// once tcell's event loop shuts down.
func (u *UI) Fini() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.initialized || u.finalized {
		return
	}
	u.screen.Fini()
	u.finalized = true
}

// Abort restores the terminal for a dying process. tcell's Fini is its
// own emergency path; there is no raw device to reset underneath.
func (u *UI) Abort() {
	u.Fini()
}

// Dimensions returns the content area extent: physical rows minus the
// status row, by columns
func (u *UI) Dimensions() ui.Coord {
	return u.dims
}

// Refresh recomposites the retained frame and shows it, if anything
// changed since the last call
func (u *UI) Refresh() {
	if !u.dirty {
		return
	}
	u.screen.Fill(' ', faceStyle(ui.Face{}, u.contentFace))
	u.composeContent()
	u.composeStatus()
	u.composeMenu()
	u.composeInfo()
	u.screen.Show()
	u.dirty = false
}

// setExtent records the physical size and derives the content area
func (u *UI) setExtent(w, h int) {
	u.rows, u.cols = h, w
	u.dims = ui.Coord{Line: h - 1, Col: w}
}

// statusRow is the physical row of the status line
func (u *UI) statusRow() int {
	if u.statusOnTop {
		return 0
	}
	return u.rows - 1
}

// SetUIOptions applies runtime options; unknown keys are ignored. The
// wheel and palette knobs of the direct backend do not apply here, the
// tcell driver owns both concerns.
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
}

// put writes one rune through to the screen and returns the next
// column. Wide runes that would straddle the right edge are blanked.
func (u *UI) put(row, col int, r rune, st tcell.Style) int {
	if row < 0 || row >= u.rows || col < 0 || col >= u.cols {
		return col + 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return col
	}
	if w == 2 && col+1 >= u.cols {
		u.screen.SetContent(col, row, ' ', nil, st)
		return col + 1
	}
	u.screen.SetContent(col, row, r, nil, st)
	return col + w
}

// puts writes a string starting at col, clipping at the right edge,
// and returns the column after the last written rune.
func (u *UI) puts(row, col int, text string, st tcell.Style) int {
	for _, r := range text {
		if col >= u.cols {
			break
		}
		col = u.put(row, col, r, st)
	}
	return col
}
