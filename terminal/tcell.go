package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Tcell presents frames on a tcell.Screen and watches for quit keys
type Tcell struct {
	screen tcell.Screen
	style  tcell.Style

	done     chan struct{}
	doneOnce sync.Once

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcell wraps screen; a nil screen is created from the environment on Init
func NewTcell(screen tcell.Screen) *Tcell {
	return &Tcell{
		screen: screen,
		style:  tcell.StyleDefault,
		done:   make(chan struct{}),
	}
}

// Init initializes the screen, clears it and starts key polling
func (t *Tcell) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return err
	}

	t.screen.HideCursor()
	t.screen.Clear()
	t.screen.Show()

	go t.pollLoop()

	t.initialized = true
	return nil
}

// pollLoop runs until the screen is finalized
func (t *Tcell) pollLoop() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				t.doneOnce.Do(func() { close(t.done) })
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// isQuitKey matches Esc, Ctrl-C, q and Q
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'c' && ev.Modifiers()&tcell.ModCtrl != 0 {
			return true
		}
		return r == 'q' || r == 'Q'
	}
	return false
}

// Fini restores the terminal
func (t *Tcell) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}

// Size returns the screen dimensions
func (t *Tcell) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.screen == nil || !t.initialized {
		return 0, 0
	}
	return t.screen.Size()
}

// Present draws the frame from the top-left corner; '\n' starts a new row
func (t *Tcell) Present(frame []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	x, y := 0, 0
	for _, c := range frame {
		if c == '\n' {
			// Blank the rest of the row in case the frame is narrower than the screen
			for ; x < w; x++ {
				t.screen.SetContent(x, y, ' ', nil, t.style)
			}
			x = 0
			y++
			continue
		}
		if x < w && y < h {
			t.screen.SetContent(x, y, rune(c), nil, t.style)
		}
		x++
	}

	t.screen.Show()
	return nil
}

// Done is closed once q, Q, Esc or Ctrl-C is pressed
func (t *Tcell) Done() <-chan struct{} {
	return t.done
}
