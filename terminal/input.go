package terminal

import (
	"github.com/lixenwraith/curtain/ui"
)

// pushKey queues a synthesized key ahead of device input
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

// readByte pulls one raw byte, draining the pushback stack first
func (u *UI) readByte(timeoutMs int) (byte, bool) {
	if n := len(u.unread); n > 0 {
		b := u.unread[n-1]
		u.unread = u.unread[:n-1]
		return b, true
	}
	if u.closed {
		return 0, false
	}
	b, ok, err := u.dev.ReadByte(timeoutMs)
	if err != nil {
		u.closed = true
		return 0, false
	}
	return b, ok
}

// GetKey blocks for the next decoded key. Undecodable input yields the
// Invalid key without disturbing later bytes.
func (u *UI) GetKey() ui.Key {
	for {
		u.checkResize(false)
		u.rearm()
		if k, ok := u.popKey(); ok {
			return k
		}
		b, ok := u.readByte(pollForever)
		if !ok {
			if u.closed {
				return ui.Invalid
			}
			// Woken for a checkpoint; loop back around
			continue
		}
		return u.decodeByte(b)
	}
}

// KeyAvailable reports pending input without consuming anything
func (u *UI) KeyAvailable() bool {
	u.checkResize(false)
	u.rearm()
	if len(u.pending) > 0 || len(u.unread) > 0 {
		return true
	}
	if u.closed {
		return false
	}
	ready, err := u.dev.Poll(pollProbe)
	if err != nil {
		u.closed = true
		return false
	}
	return ready
}

func (u *UI) decodeByte(b byte) ui.Key {
	switch {
	case b == 0x1b:
		return u.decodeEscape()
	case b == 12:
		// ctrl-l repaints the whole screen and is still delivered
		u.out.forceFullRedraw()
		u.dirty = true
		u.Refresh()
		return ui.Ctrl('l')
	case b == 26:
		// ctrl-z suspends the process group like a shell job
		u.suspend()
		return ui.Invalid
	case b == 8 || b == 127:
		return ui.Key{Code: ui.KeyBackspace}
	case b >= 1 && b <= 26:
		return ui.Ctrl('a' + rune(b) - 1)
	case b < 0x20:
		return ui.Invalid
	case b < 0x80:
		return ui.Rune(rune(b))
	default:
		return u.decodeUTF8(b)
	}
}

// decodeEscape disambiguates a lone ESC keypress from the start of an
// escape sequence by probing within the escDelay window.
func (u *UI) decodeEscape() ui.Key {
	b, ok := u.readByte(escDelay)
	if !ok {
		return ui.Key{Code: ui.KeyEscape}
	}
	switch {
	case b == '[':
		return u.decodeCSI()
	case b == 'O':
		return u.decodeSS3()
	case b == 0x1b:
		return ui.Key{Code: ui.KeyEscape, Mod: ui.ModAlt}
	case b == 8 || b == 127:
		return ui.Key{Code: ui.KeyBackspace, Mod: ui.ModAlt}
	case b >= 1 && b <= 26:
		return ui.CtrlAlt('a' + rune(b) - 1)
	case b < 0x20:
		return ui.Invalid
	case b < 0x80:
		return ui.Alt(rune(b))
	default:
		k := u.decodeUTF8(b)
		if k.Code == ui.KeyRune {
			k.Mod |= ui.ModAlt
		}
		return k
	}
}

// decodeCSI accumulates a CSI sequence and maps it through the
// capability table. Unknown complete sequences are consumed and yield
// Invalid so their tails never leak into the key stream.
func (u *UI) decodeCSI() ui.Key {
	var seq [16]byte
	n := 0
	for {
		b, ok := u.readByte(escDelay)
		if !ok {
			return ui.Invalid // truncated sequence
		}
		if n == 0 && b == '<' {
			return u.decodeSGRMouse()
		}
		if n == 0 && b == 'M' {
			return u.decodeX10Mouse()
		}
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			if n < len(seq) {
				seq[n] = b
				n++
				if k, ok := lookupCSI(seq[:n]); ok {
					return k
				}
			}
			return ui.Invalid
		}
		if b < 0x20 || b > 0x7e {
			return ui.Invalid
		}
		if n < len(seq) {
			seq[n] = b
			n++
			continue
		}
		// Oversized sequence: drain to the terminator
		for {
			b, ok := u.readByte(escDelay)
			if !ok || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
				return ui.Invalid
			}
		}
	}
}

func (u *UI) decodeSS3() ui.Key {
	b, ok := u.readByte(escDelay)
	if !ok {
		return ui.Alt('O')
	}
	var seq [1]byte
	seq[0] = b
	if k, ok := lookupSS3(seq[:]); ok {
		return k
	}
	return ui.Invalid
}

// decodeSGRMouse parses ESC [ < btn ; x ; y (M|m)
func (u *UI) decodeSGRMouse() ui.Key {
	var params [3]int
	idx := 0
	for {
		b, ok := u.readByte(escDelay)
		if !ok {
			return ui.Invalid
		}
		switch {
		case b >= '0' && b <= '9':
			params[idx] = params[idx]*10 + int(b-'0')
			if params[idx] > 9999 {
				return ui.Invalid
			}
		case b == ';':
			idx++
			if idx > 2 {
				return ui.Invalid
			}
		case b == 'M' || b == 'm':
			if idx != 2 {
				return ui.Invalid
			}
			pos := ui.Coord{Line: params[2] - 1, Col: params[1] - 1}
			return u.mouseKey(params[0], b == 'M', pos)
		default:
			return ui.Invalid
		}
	}
}

// decodeX10Mouse parses the legacy ESC [ M report: three payload bytes
// offset by 32
func (u *UI) decodeX10Mouse() ui.Key {
	var p [3]byte
	for i := range p {
		b, ok := u.readByte(escDelay)
		if !ok {
			return ui.Invalid
		}
		p[i] = b
	}
	raw := int(p[0]) - 32
	if raw < 0 {
		return ui.Invalid
	}
	pos := ui.Coord{Line: int(p[2]) - 33, Col: int(p[1]) - 33}
	press := true
	if raw&(32|64) == 0 && raw&3 == 3 {
		// X10 reports releases without the button; treat as the primary
		raw = 0
		press = false
	}
	return u.mouseKey(raw, press, pos)
}

// mouseKey maps a button report to a key. code is the wire button code
// with motion (32) and wheel (64) flags still set.
func (u *UI) mouseKey(code int, press bool, pos ui.Coord) ui.Key {
	if u.statusOnTop {
		pos.Line--
	}
	button := code&3 + 1
	if code&64 != 0 {
		button = 4 + code&3
	}
	switch {
	case code&32 != 0:
		return ui.MouseMove(pos)
	case button == 1 && press:
		return ui.MousePress(pos)
	case button == 1:
		return ui.MouseRelease(pos)
	case press && button == u.wheelDownButton:
		return ui.WheelDown(pos)
	case press && button == u.wheelUpButton:
		return ui.WheelUp(pos)
	}
	return ui.MouseMove(pos)
}

// decodeUTF8 assembles a multi-byte codepoint starting from its lead
// byte
func (u *UI) decodeUTF8(first byte) ui.Key {
	size := utf8SeqLen(first)
	if size <= 1 {
		return ui.Invalid
	}
	var buf [4]byte
	buf[0] = first
	for i := 1; i < size; i++ {
		b, ok := u.readByte(pollForever)
		if !ok {
			return ui.Invalid
		}
		buf[i] = b
	}
	r, n := decodeRune(buf[:size])
	if n != size {
		return ui.Invalid
	}
	return ui.Rune(r)
}

// utf8SeqLen returns the expected UTF-8 sequence length from the lead
// byte, 0 if invalid
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	if b&0xe0 == 0xc0 {
		return 2
	}
	if b&0xf0 == 0xe0 {
		return 3
	}
	if b&0xf8 == 0xf0 {
		return 4
	}
	return 0
}

// decodeRune decodes the first UTF-8 rune from data
func decodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return 0, 0
	}

	b := data[0]
	if b < 0x80 {
		return rune(b), 1
	}

	var size int
	var min rune
	var r rune

	switch {
	case b&0xe0 == 0xc0:
		size = 2
		min = 0x80
		r = rune(b & 0x1f)
	case b&0xf0 == 0xe0:
		size = 3
		min = 0x800
		r = rune(b & 0x0f)
	case b&0xf8 == 0xf0:
		size = 4
		min = 0x10000
		r = rune(b & 0x07)
	default:
		return 0xFFFD, 1
	}

	if len(data) < size {
		return 0xFFFD, 1
	}

	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0xFFFD, 1
		}
		r = r<<6 | rune(data[i]&0x3f)
	}

	if r < min {
		return 0xFFFD, 1 // Overlong encoding
	}

	return r, size
}
