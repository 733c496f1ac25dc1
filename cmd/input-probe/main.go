package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/curtain/terminal"
	"github.com/lixenwraith/curtain/ui"
)

var timingFlag = flag.Bool("timing", false, "Show the delay between keys")

// Faces
var (
	headerFace = ui.Face{Fg: ui.Cyan, Attrs: ui.AttrBold}
	hintFace   = ui.Face{Attrs: ui.AttrDim}
	statusFace = ui.Face{Attrs: ui.AttrReverse}
)

func main() {
	// Panic recovery: restore the terminal before dying
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT-PROBE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	term := terminal.New()
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	// Decoded key log (last N entries)
	const maxLog = 32
	entries := make([]string, 0, maxLog)

	addEntry := func(s string) {
		if len(entries) >= maxLog {
			copy(entries, entries[1:])
			entries = entries[:maxLog-1]
		}
		entries = append(entries, s)
	}

	count := 0

	render := func() {
		dims := term.Dimensions()
		lines := []ui.DisplayLine{
			{
				{Face: headerFace, Text: "input probe"},
				{Face: hintFace, Text: "  press keys, click, scroll, resize"},
			},
			{},
		}

		// Clip the log to the rows below the header
		visible := dims.Line - 2
		if visible < 0 {
			visible = 0
		}
		show := entries
		if len(show) > visible {
			show = show[len(show)-visible:]
		}
		for _, e := range show {
			lines = append(lines, ui.DisplayLine{{Text: e}})
		}

		term.Draw(ui.DisplayBuffer{Lines: lines}, ui.Face{})
		status := ui.DisplayLine{{Text: fmt.Sprintf(" %d keys decoded", count)}}
		mode := ui.DisplayLine{{Text: "ctrl-q quits"}}
		term.DrawStatus(status, mode, statusFace)
		term.Refresh()
	}

	render()

	prev := time.Now()
	for {
		k := term.GetKey()
		if k == ui.Ctrl('q') || k == ui.Ctrl('c') {
			return
		}
		count++
		now := time.Now()
		if *timingFlag {
			ms := float64(now.Sub(prev).Microseconds()) / 1000.0
			addEntry(fmt.Sprintf("%4d  %8.1fms  %-16s %s", count, ms, k.String(), keyDetail(k)))
		} else {
			addEntry(fmt.Sprintf("%4d  %-16s %s", count, k.String(), keyDetail(k)))
		}
		prev = now
		render()
	}
}

// keyDetail renders the fields behind the angle-bracket notation
func keyDetail(k ui.Key) string {
	switch {
	case k == ui.Invalid:
		return "undecodable input"
	case k.Code == ui.KeyRune:
		return fmt.Sprintf("rune U+%04X  mod %s", k.Rune, modName(k.Mod))
	case k.IsMouse():
		return fmt.Sprintf("cell %d,%d", k.Pos.Line, k.Pos.Col)
	case k.Code == ui.KeyResize:
		return fmt.Sprintf("content %dx%d", k.Pos.Line, k.Pos.Col)
	default:
		return fmt.Sprintf("code %d  mod %s", k.Code, modName(k.Mod))
	}
}

func modName(m ui.Modifier) string {
	switch m {
	case ui.ModCtrl:
		return "ctrl"
	case ui.ModAlt:
		return "alt"
	case ui.ModCtrl | ui.ModAlt:
		return "ctrl+alt"
	}
	return "none"
}
