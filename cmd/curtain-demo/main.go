package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/lixenwraith/curtain/tcellui"
	"github.com/lixenwraith/curtain/terminal"
	"github.com/lixenwraith/curtain/ui"
)

var (
	backendFlag = flag.String("backend", "ansi", "UI backend: ansi or tcell")
	debugFlag   = flag.Bool("debug", false, "Write an event trace to logs/curtain-demo.log")
)

// Faces
var (
	baseFace    = ui.Face{Fg: ui.RGB(200, 200, 200), Bg: ui.RGB(20, 20, 30)}
	titleFace   = ui.Face{Fg: ui.RGB(100, 200, 220), Bg: ui.RGB(40, 50, 70), Attrs: ui.AttrBold}
	dimFace     = ui.Face{Fg: ui.RGB(100, 100, 100)}
	eolFace     = ui.Face{Fg: ui.Black, Bg: ui.RGB(80, 100, 140)}
	statusFace  = ui.Face{Fg: ui.Black, Bg: ui.Cyan}
	menuSelFace = ui.Face{Fg: ui.White, Bg: ui.Blue, Attrs: ui.AttrBold}
	menuFace    = ui.Face{Fg: ui.RGB(200, 200, 200), Bg: ui.RGB(40, 50, 70)}
	infoFace    = ui.Face{Fg: ui.Black, Bg: ui.RGB(255, 180, 100)}
)

// Completion candidates for the menu
var menuItems = []string{
	"buffer-next", "buffer-previous", "change-directory", "colorscheme",
	"declare-option", "define-command", "delete-buffer", "echo",
	"edit", "evaluate-commands", "execute-keys", "fail",
	"grep", "hook", "info", "make",
	"map", "quit", "rename-buffer", "set-option",
	"source", "spell", "write", "write-all",
}

const infoText = "The info popup word-wraps its content to the width left " +
	"between the anchor and the screen edge. The prompt style draws a " +
	"titled box near the status row, the inline styles hug the anchor, " +
	"and the menudoc style docks to the right edge of an open menu."

const docText = "Documentation for the selected completion, docked beside " +
	"the menu so it never covers the candidate list."

var assistants = []string{"clippy", "cat", "none"}

// Menu cycle states
const (
	menuClosed = iota
	menuPrompt
	menuInline
)

// Info cycle states
const (
	infoClosed = iota
	infoPrompt
	infoInline
	infoMenuDoc
)

// demo holds the interactive state between keys
type demo struct {
	ui        ui.UserInterface
	backend   string
	anchor    ui.Coord
	lastKey   ui.Key
	keyCount  int
	menuMode  int
	infoMode  int
	selected  int
	statusTop bool
	assistant int
}

func main() {
	// Panic recovery: restore the terminal before dying
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCURTAIN-DEMO CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	log.SetOutput(io.Discard)
	if *debugFlag {
		f, err := openLog("curtain-demo.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "debug log unavailable: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	var backend ui.UserInterface
	switch *backendFlag {
	case "ansi":
		u := terminal.New()
		if err := u.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
			os.Exit(1)
		}
		backend = u
	case "tcell":
		u, err := tcellui.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
			os.Exit(1)
		}
		if err := u.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
			os.Exit(1)
		}
		backend = u
	default:
		fmt.Fprintf(os.Stderr, "unknown backend %q (want ansi or tcell)\n", *backendFlag)
		os.Exit(1)
	}
	defer backend.Fini()

	d := &demo{
		ui:      backend,
		backend: *backendFlag,
		anchor:  ui.Coord{Line: 4, Col: 8},
	}
	d.applyOptions()
	log.Printf("backend %s, dimensions %v", d.backend, backend.Dimensions())

	for {
		d.draw()
		if !d.handle(backend.GetKey()) {
			return
		}
	}
}

// handle updates the demo state for one key. Returns false to quit.
func (d *demo) handle(k ui.Key) bool {
	d.lastKey = k
	d.keyCount++
	log.Printf("key %d: %s", d.keyCount, k)

	switch {
	case k == ui.Rune('q') || k == ui.Ctrl('c'):
		return false
	case k == ui.Rune('m'):
		d.menuMode = (d.menuMode + 1) % 3
		d.selected = 0
	case k == ui.Rune('i'):
		d.infoMode = (d.infoMode + 1) % 4
	case k == ui.Rune('j') || k.Code == ui.KeyDown || k.Code == ui.KeyWheelDown:
		d.moveSelection(1)
	case k == ui.Rune('k') || k.Code == ui.KeyUp || k.Code == ui.KeyWheelUp:
		d.moveSelection(-1)
	case k == ui.Rune('t'):
		d.statusTop = !d.statusTop
		d.applyOptions()
	case k == ui.Rune('a'):
		d.assistant = (d.assistant + 1) % len(assistants)
		d.applyOptions()
	case k.Code == ui.KeyMousePress:
		d.anchor = k.Pos
	}

	// Popups are dropped on resize, so reassert them every key
	d.syncPopups()
	return true
}

func (d *demo) moveSelection(delta int) {
	if d.menuMode == menuClosed {
		return
	}
	d.selected += delta
	if d.selected < 0 {
		d.selected = 0
	}
	if d.selected >= len(menuItems) {
		d.selected = len(menuItems) - 1
	}
}

func (d *demo) applyOptions() {
	// SGR terminals report the wheel as buttons 4/5
	d.ui.SetUIOptions(ui.Options{
		"assistant":         assistants[d.assistant],
		"status_on_top":     yesNo(d.statusTop),
		"set_title":         "yes",
		"wheel_down_button": "5",
	})
}

func (d *demo) syncPopups() {
	switch d.menuMode {
	case menuPrompt:
		d.ui.MenuShow(menuItems, ui.Coord{}, menuSelFace, menuFace, ui.MenuPrompt)
		d.ui.MenuSelect(d.selected)
	case menuInline:
		d.ui.MenuShow(menuItems, d.anchor, menuSelFace, menuFace, ui.MenuInline)
		d.ui.MenuSelect(d.selected)
	default:
		d.ui.MenuHide()
	}

	switch d.infoMode {
	case infoPrompt:
		d.ui.InfoShow("about", infoText, ui.Coord{}, infoFace, ui.InfoPrompt)
	case infoInline:
		d.ui.InfoShow("", infoText, d.anchor, infoFace, ui.InfoInline)
	case infoMenuDoc:
		d.ui.InfoShow("", docText, ui.Coord{}, infoFace, ui.InfoMenuDoc)
	default:
		d.ui.InfoHide()
	}
}

func (d *demo) draw() {
	d.ui.Draw(ui.DisplayBuffer{Lines: d.lines()}, baseFace)

	last := "none yet"
	if d.keyCount > 0 {
		last = d.lastKey.String()
	}
	status := ui.DisplayLine{
		{Text: fmt.Sprintf(" %d keys, last ", d.keyCount)},
		{Face: ui.Face{Attrs: ui.AttrBold}, Text: last},
	}
	dims := d.ui.Dimensions()
	mode := ui.DisplayLine{
		{Face: ui.Face{Attrs: ui.AttrBold}, Text: fmt.Sprintf("curtain %s %dx%d", d.backend, dims.Line, dims.Col)},
	}
	d.ui.DrawStatus(status, mode, statusFace)
	d.ui.Refresh()
}

func (d *demo) lines() []ui.DisplayLine {
	return []ui.DisplayLine{
		{{Face: titleFace, Text: " curtain backend demo "}},
		{},
		{
			{Face: baseFace, Text: "Atoms carry faces: "},
			{Face: ui.Face{Fg: ui.Red}, Text: "red"},
			{Face: baseFace, Text: ", "},
			{Face: ui.Face{Fg: ui.Green, Attrs: ui.AttrBold}, Text: "bold green"},
			{Face: baseFace, Text: ", "},
			{Face: ui.Face{Fg: ui.Blue, Attrs: ui.AttrReverse}, Text: "reverse blue"},
			{Face: baseFace, Text: ", "},
			{Face: ui.Face{Fg: ui.RGB(255, 140, 40)}, Text: "24-bit orange"},
		},
		{{Face: baseFace, Text: "Wide runes stay on the grid: 漢字テスト"}},
		{{Face: eolFace, Text: "A newline-terminated atom paints one eol space\n"}},
		{},
		{{Face: dimFace, Text: "  m      cycle the menu (prompt, inline)"}},
		{{Face: dimFace, Text: "  i      cycle the info popup (prompt, inline, menudoc)"}},
		{{Face: dimFace, Text: "  j/k    move the menu selection (wheel works too)"}},
		{{Face: dimFace, Text: "  t      flip the status row to the other edge"}},
		{{Face: dimFace, Text: "  a      cycle the prompt-info assistant"}},
		{{Face: dimFace, Text: "  click  re-anchor the inline popups"}},
		{{Face: dimFace, Text: "  q      quit (ctrl-c works too)"}},
	}
}

// openLog creates the logs directory and opens the trace file in it
func openLog(name string) (*os.File, error) {
	if err := os.MkdirAll("logs", 0755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join("logs", name))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
