package ui

// MenuStyle selects menu placement
type MenuStyle uint8

const (
	// MenuPrompt anchors a multi-column grid at the status row
	MenuPrompt MenuStyle = iota
	// MenuInline anchors a single column at the given coordinate
	MenuInline
)

// InfoStyle selects info popup placement and decoration
type InfoStyle uint8

const (
	// InfoPrompt shows a titled box (with optional assistant) near the status row
	InfoPrompt InfoStyle = iota
	// InfoInline shows wrapped text near the anchor, below preferred
	InfoInline
	// InfoInlineAbove prefers placement above the anchor
	InfoInlineAbove
	// InfoInlineBelow prefers placement below the anchor
	InfoInlineBelow
	// InfoMenuDoc docks the popup to the right edge of the open menu
	InfoMenuDoc
)

// EventMode tags an input-readiness callback invocation
type EventMode uint8

const (
	// EventNormal means input bytes are readable
	EventNormal EventMode = iota
	// EventUrgent means the wait was interrupted, typically by a resize
	EventUrgent
)

// UserInterface is the backend contract. A backend owns the physical
// terminal between Init (constructor-specific) and Fini; all methods
// are called from the host's event loop goroutine.
type UserInterface interface {
	// Draw paints the content area. Lines beyond the buffer are filled
	// with a '~' marker in an accent face. Marks the frame dirty.
	Draw(buffer DisplayBuffer, defaultFace Face)

	// DrawStatus paints the status line and right-aligns the mode line,
	// trimming its head behind a '…' when space runs out.
	DrawStatus(status, mode DisplayLine, defaultFace Face)

	// MenuShow opens the completion menu. selectedFace paints the
	// selected item, normalFace the rest.
	MenuShow(items []string, anchor Coord, selectedFace, normalFace Face, style MenuStyle)
	// MenuSelect moves the selection, scrolling the minimum needed to
	// keep it visible. Out-of-range clears the selection.
	MenuSelect(selected int)
	MenuHide()

	// InfoShow opens the info popup. The title is only rendered for
	// InfoPrompt style.
	InfoShow(title, content string, anchor Coord, face Face, style InfoStyle)
	InfoHide()

	// Dimensions returns the content area extent: physical rows minus
	// the status row, by columns.
	Dimensions() Coord

	// KeyAvailable reports pending input without consuming any
	KeyAvailable() bool
	// GetKey blocks for the next decoded key
	GetKey() Key

	// SetInputCallback registers the single readiness callback
	SetInputCallback(cb func(EventMode))

	// SetUIOptions applies runtime options; unknown keys are ignored
	SetUIOptions(opts Options)

	// Refresh flushes accumulated changes to the terminal, if any
	Refresh()

	// Abort restores the terminal without orderly teardown, for use
	// when the process is about to die
	Abort()

	// Fini releases the terminal. Idempotent.
	Fini()
}
