package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Pre-allocated ANSI sequences
var (
	csiReset      = []byte("\x1b[0m")
	csiClear      = []byte("\x1b[2J\x1b[H")
	csiHome       = []byte("\x1b[H")
	csiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
)

// ANSI writes frames as raw text behind a cursor-home sequence
// The terminal stays in cooked mode so Ctrl-C reaches the process as SIGINT
type ANSI struct {
	out    io.Writer
	writer *bufio.Writer
	fd     int // -1 when out is not a terminal

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewANSI creates an ANSI display writing to w
func NewANSI(w io.Writer) *ANSI {
	a := &ANSI{
		out:    w,
		writer: bufio.NewWriterSize(w, 131072), // 128KB buffer
		fd:     -1,
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		a.fd = int(f.Fd())
	}
	return a
}

// Init hides the cursor and clears the screen
func (a *ANSI) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}

	a.writer.Write(csiCursorHide)
	a.writer.Write(csiClear)
	if err := a.writer.Flush(); err != nil {
		return err
	}

	a.initialized = true
	return nil
}

// Fini shows the cursor and resets attributes
func (a *ANSI) Fini() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized || a.finalized {
		return
	}

	a.writer.Write(csiReset)
	a.writer.Write(csiCursorShow)
	a.writer.WriteByte('\n')
	a.writer.Flush()
	a.finalized = true
}

// Size queries the terminal window size
func (a *ANSI) Size() (int, int) {
	if a.fd < 0 {
		return 0, 0
	}
	w, h, err := term.GetSize(a.fd)
	if err != nil {
		return 0, 0
	}
	return w, h
}

// Present writes one frame at the top-left corner
func (a *ANSI) Present(frame []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.writer.Write(csiHome)
	a.writer.Write(frame)
	return a.writer.Flush()
}

// Done returns nil, quitting is signal driven
func (a *ANSI) Done() <-chan struct{} {
	return nil
}
