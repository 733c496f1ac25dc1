package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/curtain/ui"
)

// StringWidth returns the display width in terminal columns
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in … when cut
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// Clip shortens s to at most maxWidth columns without an ellipsis
func Clip(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// PadRight pads s with spaces to the given column width
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// WrapLines wraps text to fit width columns. '\n' forces a break; within
// a block, wrapping happens at the last space when possible, and words
// wider than the budget are split. Empty text yields one empty line.
func WrapLines(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	blocks := strings.Split(text, "\n")
	if len(blocks) > 1 && blocks[len(blocks)-1] == "" {
		blocks = blocks[:len(blocks)-1]
	}
	var lines []string
	for _, block := range blocks {
		lines = append(lines, wrapBlock([]rune(block), width)...)
	}
	return lines
}

func wrapBlock(runes []rune, width int) []string {
	var lines []string
	lineStart := 0
	lastSpace := -1
	col := 0

	i := 0
	for i < len(runes) {
		w := runewidth.RuneWidth(runes[i])
		if col+w > width && i > lineStart {
			wrapAt := i
			if lastSpace > lineStart {
				wrapAt = lastSpace
			}
			lines = append(lines, string(runes[lineStart:wrapAt]))
			lineStart = wrapAt
			if runes[lineStart] == ' ' {
				lineStart++
			}
			lastSpace = -1
			col = 0
			i = lineStart
			continue
		}
		if runes[i] == ' ' {
			lastSpace = i
		}
		col += w
		i++
	}
	lines = append(lines, string(runes[lineStart:]))
	return lines
}

// TrimLineHead drops the leading columns of a display line, splitting
// an atom when the cut lands inside it
func TrimLineHead(l ui.DisplayLine, cols int) ui.DisplayLine {
	var out ui.DisplayLine
	for _, atom := range l {
		if cols <= 0 {
			out = append(out, atom)
			continue
		}
		w := runewidth.StringWidth(atom.Text)
		if w <= cols {
			cols -= w
			continue
		}
		text := atom.Text
		for len(text) > 0 && cols > 0 {
			r, size := utf8.DecodeRuneInString(text)
			cols -= runewidth.RuneWidth(r)
			text = text[size:]
		}
		out = append(out, ui.DisplayAtom{Face: atom.Face, Text: text})
		cols = 0
	}
	return out
}

// ContentExtent measures a newline-separated block: total lines by the
// widest line. A trailing '\n' does not open a final empty line.
func ContentExtent(text string) ui.Coord {
	ext := ui.Coord{Line: 1}
	runes := []rune(text)
	col := 0
	for i, r := range runes {
		if r == '\n' {
			if i == len(runes)-1 {
				break
			}
			col = 0
			ext.Line++
		} else {
			col += runewidth.RuneWidth(r)
			if col > ext.Col {
				ext.Col = col
			}
		}
	}
	return ext
}
