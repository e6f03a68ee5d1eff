// Package tui renders the markstorm editor in a terminal.
//
// The layout is a toolbar row, the document area, and a status row that
// doubles as the link prompt. Formatting shortcuts dispatch through the
// toolbar so the terminal UI and any other host share one code path.
package tui
