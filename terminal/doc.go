// @focus: #sys { term }
// Package terminal is the direct-ANSI backend for ui.UserInterface.
//
// Features:
//   - Cell-level diffed rendering over three composited surfaces
//     (content, completion menu, info popup)
//   - Pull-based key decoder with escape disambiguation, SGR and
//     legacy mouse reports, and focus reporting
//   - Session-scoped color pair table with static 256-palette
//     quantization or dynamic register programming (OSC 4)
//   - SIGWINCH resize checkpointing
//   - Clean terminal restoration on exit, suspend, and panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with
// xterm-compatible terminals.
package terminal
