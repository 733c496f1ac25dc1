// @lixen: #focus{sys[input,events]} #tcell{translate}
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/curtain/ui"
)

// pump forwards tcell events into the bridge channel and wakes the
// readiness callback. It exits when tcell's event loop shuts down.
func (u *UI) pump() {
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			close(u.events)
			return
		}
		u.events <- ev
		u.wake(ev)
	}
}

// wake fires the callback once per arming. A resize outranks ordinary
// input, mirroring the direct backend's urgency split.
func (u *UI) wake(ev tcell.Event) {
	u.cbMu.Lock()
	cb := u.onKey
	u.cbMu.Unlock()
	if cb == nil || u.cbArmed.Load() {
		return
	}
	u.cbArmed.Store(true)
	if _, ok := ev.(*tcell.EventResize); ok {
		cb(ui.EventUrgent)
	} else {
		cb(ui.EventNormal)
	}
}

// SetInputCallback registers the single readiness callback. The
// callback runs on the pump goroutine; input already queued at
// registration time fires it immediately.
func (u *UI) SetInputCallback(cb func(ui.EventMode)) {
	u.cbMu.Lock()
	u.onKey = cb
	u.cbMu.Unlock()
	if cb == nil {
		return
	}
	if (len(u.pending) > 0 || len(u.events) > 0) && !u.cbArmed.Swap(true) {
		cb(ui.EventNormal)
	}
}

// rearm lets the callback fire again once the host polls for input
func (u *UI) rearm() {
	u.cbArmed.Store(false)
}

// pushKey queues a synthesized key ahead of translated events
func (u *UI) pushKey(k ui.Key) {
	u.pending = append(u.pending, k)
}

func (u *UI) popKey() (ui.Key, bool) {
	if len(u.pending) == 0 {
		return ui.Invalid, false
	}
	k := u.pending[0]
	u.pending = u.pending[1:]
	return k, true
}

// GetKey blocks for the next decoded key. Events with no key mapping
// are consumed and yield the Invalid key.
func (u *UI) GetKey() ui.Key {
	u.rearm()
	if k, ok := u.popKey(); ok {
		return k
	}
	ev, ok := <-u.events
	if !ok {
		return ui.Invalid
	}
	return u.translate(ev)
}

// KeyAvailable reports pending input without consuming anything
func (u *UI) KeyAvailable() bool {
	u.rearm()
	return len(u.pending) > 0 || len(u.events) > 0
}

// translate maps one tcell event to a key. Resizes apply their
// geometry change here, on the host goroutine, before surfacing.
func (u *UI) translate(ev tcell.Event) ui.Key {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.translateKey(ev)
	case *tcell.EventMouse:
		return u.translateMouse(ev)
	case *tcell.EventResize:
		return u.applyResize(ev)
	case *tcell.EventFocus:
		if ev.Focused {
			return ui.Key{Code: ui.KeyFocusIn}
		}
		return ui.Key{Code: ui.KeyFocusOut}
	}
	return ui.Invalid
}

// translateKey maps tcell's key model onto ours. Enter and tab arrive
// as their control runes, matching the byte-level decoder; backspace
// folds both BS and DEL variants.
func (u *UI) translateKey(ev *tcell.EventKey) ui.Key {
	var mod ui.Modifier
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= ui.ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= ui.ModCtrl
	}

	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		key := ui.Rune(ev.Rune())
		key.Mod = mod
		return key
	case tcell.KeyCtrlL:
		if mod&ui.ModAlt == 0 {
			// ctrl-l repaints the whole screen and is still delivered
			u.screen.Sync()
		}
		key := ui.Ctrl('l')
		key.Mod |= mod
		return key
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ui.Key{Code: ui.KeyBackspace, Mod: mod}
	case tcell.KeyEscape:
		return ui.Key{Code: ui.KeyEscape, Mod: mod}
	case tcell.KeyUp:
		return ui.Key{Code: ui.KeyUp, Mod: mod}
	case tcell.KeyDown:
		return ui.Key{Code: ui.KeyDown, Mod: mod}
	case tcell.KeyLeft:
		return ui.Key{Code: ui.KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return ui.Key{Code: ui.KeyRight, Mod: mod}
	case tcell.KeyPgUp:
		return ui.Key{Code: ui.KeyPageUp, Mod: mod}
	case tcell.KeyPgDn:
		return ui.Key{Code: ui.KeyPageDown, Mod: mod}
	case tcell.KeyHome:
		return ui.Key{Code: ui.KeyHome, Mod: mod}
	case tcell.KeyEnd:
		return ui.Key{Code: ui.KeyEnd, Mod: mod}
	case tcell.KeyDelete:
		return ui.Key{Code: ui.KeyDelete, Mod: mod}
	case tcell.KeyBacktab:
		return ui.Key{Code: ui.KeyBackTab, Mod: mod}
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return ui.Key{Code: ui.KeyF1 + ui.Keycode(k-tcell.KeyF1), Mod: mod}
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		key := ui.Ctrl('a' + rune(k-tcell.KeyCtrlA))
		key.Mod |= mod
		return key
	}
	return ui.Invalid
}

// translateMouse maps button state transitions onto press, release,
// move, and wheel keys. tcell reports state, not edges, so the primary
// button's previous state decides press versus release.
func (u *UI) translateMouse(ev *tcell.EventMouse) ui.Key {
	x, y := ev.Position()
	pos := ui.Coord{Line: y, Col: x}
	if u.statusOnTop {
		pos.Line--
	}

	btns := ev.Buttons()
	switch {
	case btns&tcell.WheelUp != 0:
		return ui.WheelUp(pos)
	case btns&tcell.WheelDown != 0:
		return ui.WheelDown(pos)
	}

	had := u.lastButtons&tcell.Button1 != 0
	has := btns&tcell.Button1 != 0
	u.lastButtons = btns
	switch {
	case has && !had:
		return ui.MousePress(pos)
	case had && !has:
		return ui.MouseRelease(pos)
	}
	return ui.MouseMove(pos)
}

// applyResize takes a size report into effect. The popups do not
// survive a resize; the host gets a Resize key and shows them again at
// the new geometry. Same-size reports are dropped.
func (u *UI) applyResize(ev *tcell.EventResize) ui.Key {
	w, h := ev.Size()
	if w == u.cols && h == u.rows {
		return ui.Invalid
	}
	u.setExtent(w, h)
	u.MenuHide()
	u.InfoHide()
	u.dirty = true
	return ui.Resize(u.dims)
}
