// Package terminal presents rendered frames on a terminal.
//
// Two backends implement Display:
//   - ANSI: direct escape sequences on a buffered writer, no raw mode
//   - Tcell: a tcell.Screen with key polling for q / Esc / Ctrl-C
//
// Frames are plain text: one byte per cell, rows separated by '\n'.
// Both backends home the cursor and overwrite the previous frame in place.
package terminal
