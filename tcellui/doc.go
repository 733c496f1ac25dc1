// @focus: #sys { term } #tcell { backend }
// Package tcellui is the tcell-based backend for ui.UserInterface.
//
// Where the terminal package drives the tty directly, this backend sits
// on a tcell.Screen and lets tcell own the wire protocol: terminfo,
// color downsampling, mouse decoding, and frame diffing. The UI keeps
// the last drawn content, status, and popups and recomposites the whole
// frame on Refresh; window geometry follows the tui helpers so popups
// land on the same cells as they do under the direct backend.
//
// Useful on terminals the direct backend misreads, and as the backend
// of choice for tests: a tcell.SimulationScreen drives the full stack
// without a tty.
package tcellui
