// Package tui holds the pure text and geometry helpers behind popup
// rendering: display-width arithmetic, word wrapping, popup placement,
// menu scrollbar metrics, and info box construction.
//
// Everything here is side-effect free and backend-independent.
package tui
