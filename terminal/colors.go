// @focus: #terminal { colors }
package terminal

import (
	"bufio"
	"os"

	"github.com/lixenwraith/curtain/ui"
)

// rgb is a palette entry for distance math
type rgb struct {
	r, g, b uint8
}

// referencePalette is the xterm 256-color layout: 16 classic VGA
// entries, a 6x6x6 cube, then a 24-step grayscale ramp.
var referencePalette = buildReferencePalette()

func buildReferencePalette() [256]rgb {
	var p [256]rgb

	vga := [16]rgb{
		{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00},
		{0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
		{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80},
		{0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
		{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00},
		{0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
		{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff},
		{0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
	}
	copy(p[:16], vga[:])

	cube := [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = rgb{cube[r], cube[g], cube[b]}
				i++
			}
		}
	}

	for s := 0; s < 24; s++ {
		v := uint8(8 + 10*s)
		p[i] = rgb{v, v, v}
		i++
	}
	return p
}

// nearestPaletteIndex finds the reference entry with the smallest
// squared-Euclidean distance; the lowest index wins ties.
func nearestPaletteIndex(c ui.Color) int {
	best := 0
	bestDist := 1 << 30
	for i, e := range referencePalette {
		dr := int(c.R) - int(e.r)
		dg := int(c.G) - int(e.g)
		db := int(c.B) - int(e.b)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best = i
			bestDist = d
			if d == 0 {
				break
			}
		}
	}
	return best
}

// colorPair is a resolved (fg, bg) palette index pair; -1 means the
// terminal default.
type colorPair struct {
	fg, bg int16
}

// colorRegistry owns all color allocation for one UI session: the
// RGB-to-index mapping and the append-only pair table. Not shared
// between instances.
type colorRegistry struct {
	w       *bufio.Writer
	dynamic bool

	indexes    map[ui.Color]int16
	nextReg    int16
	programmed bool

	pairs     []colorPair
	pairIndex map[colorPair]int16
}

const firstDynamicRegister = 16

func newColorRegistry(w *bufio.Writer, dynamic bool) *colorRegistry {
	c := &colorRegistry{
		w:         w,
		dynamic:   dynamic,
		indexes:   make(map[ui.Color]int16),
		nextReg:   firstDynamicRegister,
		pairIndex: make(map[colorPair]int16),
	}
	// Pair 0 is (default, default), the background of a cleared screen
	c.pairs = append(c.pairs, colorPair{-1, -1})
	c.pairIndex[colorPair{-1, -1}] = 0
	return c
}

// detectDynamicPalette reports whether the terminal accepts palette
// register programming. The Linux console advertises it; everything
// else opts in via the palette UI option.
func detectDynamicPalette() bool {
	return os.Getenv("TERM") == "linux"
}

// colorIndex maps a color to a palette index, allocating a dynamic
// register or quantizing as the session allows. Idempotent per color.
func (c *colorRegistry) colorIndex(col ui.Color) int16 {
	if !col.IsRGB() {
		// BaseDefault is -1, the named colors follow in ANSI order
		return int16(col.Base) - 1
	}
	if idx, ok := c.indexes[col]; ok {
		return idx
	}

	var idx int16
	if c.dynamic {
		idx = c.nextReg
		c.nextReg++
		if c.nextReg >= 256 {
			// Exhausted: recycle, overwriting the oldest registers
			c.nextReg = firstDynamicRegister
		}
		writePaletteRegister(c.w, int(idx), col.R, col.G, col.B)
		c.programmed = true
	} else {
		idx = int16(nearestPaletteIndex(col))
	}
	c.indexes[col] = idx
	return idx
}

// pair returns the session handle for a (fg, bg) combination,
// allocating append-only on first sight.
func (c *colorRegistry) pair(fg, bg ui.Color) int16 {
	key := colorPair{c.colorIndex(fg), c.colorIndex(bg)}
	if p, ok := c.pairIndex[key]; ok {
		return p
	}
	p := int16(len(c.pairs))
	c.pairs = append(c.pairs, key)
	c.pairIndex[key] = p
	return p
}

// pairColors resolves a pair handle back to palette indexes
func (c *colorRegistry) pairColors(p int16) (fg, bg int16) {
	if int(p) >= len(c.pairs) {
		return -1, -1
	}
	def := c.pairs[p]
	return def.fg, def.bg
}

// reset reverts any programmed palette registers
func (c *colorRegistry) reset() {
	if c.programmed {
		c.w.Write(oscColorReset)
		c.programmed = false
	}
}
