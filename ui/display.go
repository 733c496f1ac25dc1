package ui

import "github.com/mattn/go-runewidth"

// DisplayAtom is a run of text under a single face. An atom whose text
// ends with '\n' marks the end of the host's content on that line; the
// renderer paints one padding space in the atom's face after the text.
type DisplayAtom struct {
	Face Face
	Text string
}

// DisplayLine is one screen line of atoms
type DisplayLine []DisplayAtom

// DisplayBuffer is the host-supplied content for the main area
type DisplayBuffer struct {
	Lines []DisplayLine
}

// ColumnLength returns the display width of the line in terminal
// columns. Control runes (including a trailing '\n') count as zero.
func (l DisplayLine) ColumnLength() int {
	n := 0
	for _, atom := range l {
		n += runewidth.StringWidth(atom.Text)
	}
	return n
}

// Text concatenates the atoms' text
func (l DisplayLine) Text() string {
	if len(l) == 1 {
		return l[0].Text
	}
	var s string
	for _, atom := range l {
		s += atom.Text
	}
	return s
}
