package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/curtain/ui"
)

func TestResizeCheckpointCoalesces(t *testing.T) {
	u, dev := newTestUI(t, 24, 80)
	u.MenuShow([]string{"one", "two"}, ui.Coord{Line: 2, Col: 0},
		ui.Face{Fg: ui.White, Bg: ui.Blue}, ui.Face{}, ui.MenuInline)
	if !u.menu.valid() {
		t.Fatal("Expected an open menu")
	}

	dev.setSize(ui.Coord{Line: 30, Col: 100})
	u.resizePending.Store(true)
	u.resizePending.Store(true) // a burst of signals collapses into one checkpoint

	k := u.GetKey()
	if k.Code != ui.KeyResize {
		t.Fatalf("Expected resize key, got %v", k)
	}
	if k.Pos != (ui.Coord{Line: 29, Col: 100}) {
		t.Errorf("Expected dims {29 100}, got %v", k.Pos)
	}
	if u.Dimensions() != (ui.Coord{Line: 29, Col: 100}) {
		t.Errorf("Expected Dimensions {29 100}, got %v", u.Dimensions())
	}

	if u.main.size != (ui.Coord{Line: 30, Col: 100}) {
		t.Errorf("Expected main surface {30 100}, got %v", u.main.size)
	}
	if u.menu.valid() {
		t.Error("Expected the resize to drop the menu")
	}

	out := dev.written()
	if !strings.Contains(out, "\x1b[r") {
		t.Error("Expected a scroll region reset")
	}
	if !strings.Contains(out, "\x1b[2J") {
		t.Error("Expected a full clear")
	}

	if u.KeyAvailable() {
		t.Error("Expected a single resize key for the burst")
	}
}

func TestResizeAppliesBeforeDraw(t *testing.T) {
	u, dev := newTestUI(t, 5, 10)

	dev.setSize(ui.Coord{Line: 8, Col: 20})
	u.resizePending.Store(true)

	// Draw runs the checkpoint first, so the frame lands on the new
	// geometry
	buf := ui.DisplayBuffer{Lines: []ui.DisplayLine{{{Text: "resized\n"}}}}
	u.Draw(buf, ui.Face{})

	if u.main.size != (ui.Coord{Line: 8, Col: 20}) {
		t.Errorf("Expected main surface {8 20}, got %v", u.main.size)
	}
	if got := u.main.grid[0].r; got != 'r' {
		t.Errorf("Expected content at the new origin, got %q", got)
	}

	// The queued resize key is still delivered afterwards
	if k := u.GetKey(); k.Code != ui.KeyResize {
		t.Errorf("Expected resize key, got %v", k)
	}
}

func TestWatcherNotifiesDevice(t *testing.T) {
	u, dev := newTestUI(t, 24, 80)

	u.sigCh <- nil // stand-in for SIGWINCH delivery
	for i := 0; i < 100 && !u.resizePending.Load(); i++ {
		time.Sleep(time.Millisecond)
	}
	if !u.resizePending.Load() {
		t.Fatal("Expected the watcher to flag the resize")
	}

	dev.mu.Lock()
	notified := dev.notifies > 0
	dev.mu.Unlock()
	if !notified {
		t.Error("Expected the watcher to wake the device")
	}
}
