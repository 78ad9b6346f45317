package terminal

import (
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// DetectColorMode inspects the environment for 24-bit color support
func DetectColorMode() ColorMode {
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}
	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Cell represents a single terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// ResizeEvent carries new terminal dimensions
type ResizeEvent struct {
	Width, Height int
}

// KeyEvent carries a decoded key press
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
}

// Event is a ResizeEvent or KeyEvent
type Event any

// Terminal provides cell-grid access to the display
type Terminal interface {
	// Init enters the alternate screen and hides the cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes the cell buffer to the terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Sync forces a full redraw
	Sync()

	// PollEvent blocks until the next input or resize event
	PollEvent() Event
}

// Screen is the tcell-backed Terminal implementation
type Screen struct {
	tc     tcell.Screen
	mode   ColorMode
	inited bool
}

// New creates a Screen with the requested color mode
func New(mode ColorMode) *Screen {
	if mode == ColorMode256 {
		// tcell reads this before screen creation
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
	return &Screen{mode: mode}
}

// ColorMode returns the mode the screen was created with
func (s *Screen) ColorMode() ColorMode {
	return s.mode
}

func (s *Screen) Init() error {
	tc, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := tc.Init(); err != nil {
		return err
	}
	tc.HideCursor()
	tc.Clear()
	s.tc = tc
	s.inited = true
	return nil
}

func (s *Screen) Fini() {
	if !s.inited {
		return
	}
	s.inited = false
	s.tc.Fini()
}

func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

func (s *Screen) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := cells[row+x]
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.tc.SetContent(x, y, r, nil, st)
		}
	}
	s.tc.Show()
}

func (s *Screen) Sync() {
	s.tc.Sync()
}

func (s *Screen) PollEvent() Event {
	for {
		switch ev := s.tc.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			return ResizeEvent{Width: w, Height: h}
		case *tcell.EventKey:
			return KeyEvent{Key: ev.Key(), Rune: ev.Rune()}
		case nil:
			return nil
		}
	}
}

// EmergencyReset writes raw escape sequences to restore a sane terminal
// after a crash, bypassing tcell entirely
func EmergencyReset(w io.Writer) {
	w.Write([]byte("\x1b[?25h"))   // show cursor
	w.Write([]byte("\x1b[?1049l")) // exit alternate screen
	w.Write([]byte("\x1b[0m"))     // reset attributes
	w.Write([]byte("\x1b[?7h"))    // autowrap on
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
