package terminal

import (
	"io"
	"os"
)

// EmergencyReset restores a sane terminal after a crash
// Writes reset sequences to w and re-enables cooked mode where supported
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiReset)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}
