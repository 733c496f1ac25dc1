// Package ui defines the display model shared by all terminal backends:
// colors, faces, coordinates, keys, display lines, and the UserInterface
// contract a backend implements.
//
// The package is pure data and arithmetic; backends live in the terminal
// and tcellui packages.
package ui
