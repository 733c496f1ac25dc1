// @focus: #input { keys }
package ui

import "fmt"

// Keycode identifies a decoded key
type Keycode uint16

const (
	KeyInvalid Keycode = iota
	KeyRune               // codepoint carried in Key.Rune

	// Named keys
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyBackTab

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Terminal focus reports
	KeyFocusIn
	KeyFocusOut

	// Queued by the resize checkpoint; Pos carries the new dimensions
	KeyResize

	// Mouse events; Pos carries the content-relative cell
	KeyMousePress
	KeyMouseRelease
	KeyMouseMove
	KeyWheelUp
	KeyWheelDown
)

// Modifier flags
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << 0
	ModAlt  Modifier = 1 << 1
)

// Key is one decoded input event. The zero value is the Invalid key,
// returned for undecodable input and consumed-but-meaningless sequences.
type Key struct {
	Code Keycode
	Rune rune // set when Code == KeyRune
	Mod  Modifier
	Pos  Coord // mouse cell, or new dimensions for KeyResize
}

// Invalid is the decode-failure sentinel
var Invalid = Key{}

func Rune(r rune) Key    { return Key{Code: KeyRune, Rune: r} }
func Ctrl(r rune) Key    { return Key{Code: KeyRune, Rune: r, Mod: ModCtrl} }
func Alt(r rune) Key     { return Key{Code: KeyRune, Rune: r, Mod: ModAlt} }
func CtrlAlt(r rune) Key { return Key{Code: KeyRune, Rune: r, Mod: ModCtrl | ModAlt} }

func MousePress(pos Coord) Key   { return Key{Code: KeyMousePress, Pos: pos} }
func MouseRelease(pos Coord) Key { return Key{Code: KeyMouseRelease, Pos: pos} }
func MouseMove(pos Coord) Key    { return Key{Code: KeyMouseMove, Pos: pos} }
func WheelUp(pos Coord) Key      { return Key{Code: KeyWheelUp, Pos: pos} }
func WheelDown(pos Coord) Key    { return Key{Code: KeyWheelDown, Pos: pos} }
func Resize(dim Coord) Key       { return Key{Code: KeyResize, Pos: dim} }

// IsMouse reports whether the key is a mouse event
func (k Key) IsMouse() bool {
	return k.Code >= KeyMousePress && k.Code <= KeyWheelDown
}

var keyNames = map[Keycode]string{
	KeyEscape:       "esc",
	KeyBackspace:    "backspace",
	KeyDelete:       "del",
	KeyUp:           "up",
	KeyDown:         "down",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeyPageUp:       "pageup",
	KeyPageDown:     "pagedown",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyBackTab:      "backtab",
	KeyFocusIn:      "focus-in",
	KeyFocusOut:     "focus-out",
	KeyMousePress:   "mouse-press",
	KeyMouseRelease: "mouse-release",
	KeyMouseMove:    "mouse-move",
	KeyWheelUp:      "wheel-up",
	KeyWheelDown:    "wheel-down",
}

// String renders the key in angle-bracket notation for diagnostics
func (k Key) String() string {
	switch {
	case k.Code == KeyRune:
		switch k.Mod {
		case ModCtrl:
			return fmt.Sprintf("<c-%c>", k.Rune)
		case ModAlt:
			return fmt.Sprintf("<a-%c>", k.Rune)
		case ModCtrl | ModAlt:
			return fmt.Sprintf("<c-a-%c>", k.Rune)
		}
		return string(k.Rune)
	case k.Code >= KeyF1 && k.Code <= KeyF12:
		return fmt.Sprintf("<f%d>", int(k.Code-KeyF1)+1)
	case k.IsMouse():
		return fmt.Sprintf("<%s:%d.%d>", keyNames[k.Code], k.Pos.Line, k.Pos.Col)
	case k.Code == KeyResize:
		return fmt.Sprintf("<resize:%dx%d>", k.Pos.Line, k.Pos.Col)
	}
	if name, ok := keyNames[k.Code]; ok {
		return "<" + name + ">"
	}
	return "<invalid>"
}
