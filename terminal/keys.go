// @focus: #sys { io } #input { keys }
package terminal

import (
	"github.com/lixenwraith/curtain/ui"
)

// escapeSequence maps the body of an escape sequence to a key.
// seq is everything after ESC [ (or ESC O), terminator included.
type escapeSequence struct {
	seq string
	key ui.Key
}

// Known CSI sequences (ESC [ ...)
var csiSequences = []escapeSequence{
	// Arrow keys
	{"A", ui.Key{Code: ui.KeyUp}},
	{"B", ui.Key{Code: ui.KeyDown}},
	{"C", ui.Key{Code: ui.KeyRight}},
	{"D", ui.Key{Code: ui.KeyLeft}},
	{"Z", ui.Key{Code: ui.KeyBackTab}}, // Shift+Tab

	// Arrow keys with modifiers (xterm style: ESC [ 1 ; mod X)
	{"1;3A", ui.Key{Code: ui.KeyUp, Mod: ui.ModAlt}},
	{"1;3B", ui.Key{Code: ui.KeyDown, Mod: ui.ModAlt}},
	{"1;3C", ui.Key{Code: ui.KeyRight, Mod: ui.ModAlt}},
	{"1;3D", ui.Key{Code: ui.KeyLeft, Mod: ui.ModAlt}},
	{"1;5A", ui.Key{Code: ui.KeyUp, Mod: ui.ModCtrl}},
	{"1;5B", ui.Key{Code: ui.KeyDown, Mod: ui.ModCtrl}},
	{"1;5C", ui.Key{Code: ui.KeyRight, Mod: ui.ModCtrl}},
	{"1;5D", ui.Key{Code: ui.KeyLeft, Mod: ui.ModCtrl}},

	// Navigation
	{"H", ui.Key{Code: ui.KeyHome}},
	{"F", ui.Key{Code: ui.KeyEnd}},
	{"1~", ui.Key{Code: ui.KeyHome}},
	{"4~", ui.Key{Code: ui.KeyEnd}},
	{"5~", ui.Key{Code: ui.KeyPageUp}},
	{"6~", ui.Key{Code: ui.KeyPageDown}},
	{"3~", ui.Key{Code: ui.KeyDelete}},

	// Function keys (xterm)
	{"11~", ui.Key{Code: ui.KeyF1}},
	{"12~", ui.Key{Code: ui.KeyF2}},
	{"13~", ui.Key{Code: ui.KeyF3}},
	{"14~", ui.Key{Code: ui.KeyF4}},
	{"15~", ui.Key{Code: ui.KeyF5}},
	{"17~", ui.Key{Code: ui.KeyF6}},
	{"18~", ui.Key{Code: ui.KeyF7}},
	{"19~", ui.Key{Code: ui.KeyF8}},
	{"20~", ui.Key{Code: ui.KeyF9}},
	{"21~", ui.Key{Code: ui.KeyF10}},
	{"23~", ui.Key{Code: ui.KeyF11}},
	{"24~", ui.Key{Code: ui.KeyF12}},

	// Function keys (vt style)
	{"[A", ui.Key{Code: ui.KeyF1}},
	{"[B", ui.Key{Code: ui.KeyF2}},
	{"[C", ui.Key{Code: ui.KeyF3}},
	{"[D", ui.Key{Code: ui.KeyF4}},
	{"[E", ui.Key{Code: ui.KeyF5}},

	// Focus reporting
	{"I", ui.Key{Code: ui.KeyFocusIn}},
	{"O", ui.Key{Code: ui.KeyFocusOut}},
}

// SS3 sequences (ESC O ...)
var ss3Sequences = []escapeSequence{
	{"A", ui.Key{Code: ui.KeyUp}},
	{"B", ui.Key{Code: ui.KeyDown}},
	{"C", ui.Key{Code: ui.KeyRight}},
	{"D", ui.Key{Code: ui.KeyLeft}},
	{"H", ui.Key{Code: ui.KeyHome}},
	{"F", ui.Key{Code: ui.KeyEnd}},
	{"P", ui.Key{Code: ui.KeyF1}},
	{"Q", ui.Key{Code: ui.KeyF2}},
	{"R", ui.Key{Code: ui.KeyF3}},
	{"S", ui.Key{Code: ui.KeyF4}},
}

var csiMap = buildSequenceMap(csiSequences)
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]ui.Key {
	m := make(map[string]ui.Key, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s.key
	}
	return m
}

// lookupCSI performs zero-alloc map lookup via compiler optimization.
// The string([]byte) conversion inline in map access does not allocate.
func lookupCSI(seq []byte) (ui.Key, bool) {
	k, ok := csiMap[string(seq)]
	return k, ok
}

// lookupSS3 performs zero-alloc map lookup
func lookupSS3(seq []byte) (ui.Key, bool) {
	k, ok := ss3Map[string(seq)]
	return k, ok
}
