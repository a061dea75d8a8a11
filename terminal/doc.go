// Package terminal provides direct ANSI terminal control for the rest
// of the library.
//
// Features:
//   - Raw mode and alternate screen transitions as independent,
//     reversible steps
//   - Cell-buffered frame output with style coalescing
//   - Raw stdin input parsing with escape sequence handling
//   - A tcell.Screen adapter for terminfo-dependent environments and
//     simulation-screen tests
//   - Best-effort terminal restoration for crash paths
//
// The Unix driver bypasses terminfo/termcap entirely, emitting direct
// ANSI sequences. Target environments: Linux, macOS, BSDs with
// xterm-compatible terminals.
package terminal
