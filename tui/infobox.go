package tui

import "strings"

// Assistant art for the prompt info box. The right edge of each row
// carries the speech bubble connector; the last row repeats under a
// tall bubble.
var AssistantClippy = []string{
	" ╭──╮   ",
	" │  │   ",
	" @  @  ╭",
	" ││ ││ │",
	" ││ ││ ╯",
	" │╰─╯│  ",
	" ╰───╯  ",
	"        ",
}

var AssistantCat = []string{
	"  ___            ",
	" (__ \\           ",
	"   / /          ╭",
	"  .' '·.        │",
	" '      ”       │",
	" ╰       /\\_/|  │",
	"  | .         \\ │",
	"  ╰_J`    | | | ╯",
	"      ' \\__- _/  ",
	"      \\_\\   \\_\\  ",
	"                 ",
}

// InfoBox renders a titled speech bubble next to the assistant art.
// maxWidth is the full budget including the assistant; when the bubble
// would get fewer than 4 columns the result is empty. Rows are
// newline-terminated.
func InfoBox(title, message string, maxWidth int, assistant []string) string {
	var asRows, asWidth int
	if len(assistant) > 0 {
		asRows = len(assistant)
		asWidth = StringWidth(assistant[0])
	}

	maxBubbleWidth := maxWidth - asWidth - 6
	if maxBubbleWidth < 4 {
		return ""
	}

	var lines []string
	if message != "" {
		lines = WrapLines(message, maxBubbleWidth)
	}

	bubbleWidth := StringWidth(title) + 2
	for _, line := range lines {
		bubbleWidth = max(bubbleWidth, StringWidth(line))
	}

	var b strings.Builder
	rows := max(asRows-1, len(lines)+2)
	for i := 0; i < rows; i++ {
		if asRows > 0 {
			b.WriteString(assistant[min(i, asRows-1)])
		}
		switch {
		case i == 0:
			if title == "" {
				b.WriteString("╭─")
				b.WriteString(strings.Repeat("─", bubbleWidth))
				b.WriteString("─╮")
			} else {
				dashes := bubbleWidth - StringWidth(title) - 2
				b.WriteString("╭─")
				b.WriteString(strings.Repeat("─", dashes/2))
				b.WriteString("┤")
				b.WriteString(title)
				b.WriteString("├")
				b.WriteString(strings.Repeat("─", dashes-dashes/2))
				b.WriteString("─╮")
			}
		case i < len(lines)+1:
			line := lines[i-1]
			b.WriteString("│ ")
			b.WriteString(line)
			b.WriteString(strings.Repeat(" ", bubbleWidth-StringWidth(line)))
			b.WriteString(" │")
		case i == len(lines)+1:
			b.WriteString("╰─")
			b.WriteString(strings.Repeat("─", bubbleWidth))
			b.WriteString("─╯")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
