package ui

import "fmt"

// ColorBase distinguishes the terminal default, the eight named ANSI
// colors, and explicit 24-bit values.
type ColorBase uint8

const (
	BaseDefault ColorBase = iota
	BaseBlack
	BaseRed
	BaseGreen
	BaseYellow
	BaseBlue
	BaseMagenta
	BaseCyan
	BaseWhite
	BaseRGB
)

// Color is a comparable value type usable as a map key.
// R, G, B are meaningful only when Base is BaseRGB.
type Color struct {
	Base    ColorBase
	R, G, B uint8
}

// Named color values
var (
	Default = Color{}
	Black   = Color{Base: BaseBlack}
	Red     = Color{Base: BaseRed}
	Green   = Color{Base: BaseGreen}
	Yellow  = Color{Base: BaseYellow}
	Blue    = Color{Base: BaseBlue}
	Magenta = Color{Base: BaseMagenta}
	Cyan    = Color{Base: BaseCyan}
	White   = Color{Base: BaseWhite}
)

// RGB returns an explicit 24-bit color
func RGB(r, g, b uint8) Color {
	return Color{Base: BaseRGB, R: r, G: g, B: b}
}

// IsRGB reports whether the color carries explicit channels
func (c Color) IsRGB() bool {
	return c.Base == BaseRGB
}

// Less defines a total order: base kind first, then channels.
// Useful when colors key a sorted structure or need deterministic output.
func (c Color) Less(o Color) bool {
	if c.Base == o.Base && c.Base == BaseRGB {
		if c.R != o.R {
			return c.R < o.R
		}
		if c.G != o.G {
			return c.G < o.G
		}
		return c.B < o.B
	}
	return c.Base < o.Base
}

var baseNames = [...]string{
	BaseDefault: "default",
	BaseBlack:   "black",
	BaseRed:     "red",
	BaseGreen:   "green",
	BaseYellow:  "yellow",
	BaseBlue:    "blue",
	BaseMagenta: "magenta",
	BaseCyan:    "cyan",
	BaseWhite:   "white",
}

// String returns the color's name, or "rgb:RRGGBB" for explicit values
func (c Color) String() string {
	if c.Base == BaseRGB {
		return fmt.Sprintf("rgb:%02x%02x%02x", c.R, c.G, c.B)
	}
	if int(c.Base) < len(baseNames) {
		return baseNames[c.Base]
	}
	return "default"
}
