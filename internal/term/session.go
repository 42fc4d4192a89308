// Package term owns the terminal's display mode for the lifetime of the rain.
//
// Raw input, the alternate screen and cursor visibility are process-wide
// terminal state, so at most one [Session] may be open at a time. Opening a
// session acquires all three through tcell; [Session.Close] releases them and
// is safe to defer on every exit path, panics included:
//
//	s, err := term.Open(screen, cfg, rng, logger)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
package term

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/termrain/internal/config"
	"github.com/san-kum/termrain/internal/glyph"
)

// ErrSessionActive is returned by Open while another session is open.
var ErrSessionActive = errors.New("terminal session already active")

var active atomic.Bool

type Session struct {
	screen  tcell.Screen
	logger  *log.Logger
	once    sync.Once
	width   int
	height  int
	display []glyph.Stream
}

// NewScreen returns the default tcell screen for the controlling terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return screen, nil
}

// Open puts the terminal in raw mode on the alternate screen with the cursor
// hidden, then builds the initial display buffer for the current width.
func Open(screen tcell.Screen, cfg *config.Config, rng *rand.Rand, logger *log.Logger) (*Session, error) {
	if !active.CompareAndSwap(false, true) {
		return nil, ErrSessionActive
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	if err := screen.Init(); err != nil {
		active.Store(false)
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()

	width, height := screen.Size()
	s := &Session{
		screen:  screen,
		logger:  logger,
		width:   width,
		height:  height,
		display: glyph.NewGenerator(cfg).Generate(rng, width, cfg.StreamCount(width)),
	}

	logger.Printf("session: opened %dx%d with %d streams", width, height, len(s.display))
	return s, nil
}

func (s *Session) Screen() tcell.Screen { return s.screen }

// Size is the terminal size when the session was opened.
func (s *Session) Size() (int, int) { return s.width, s.height }

// Display is the initial display buffer. It is handed to the engine, which
// owns it from then on.
func (s *Session) Display() []glyph.Stream { return s.display }

// Close leaves raw mode, restores the primary screen and shows the cursor.
// Only the first call has any effect.
func (s *Session) Close() {
	s.once.Do(func() {
		s.screen.Fini()
		active.Store(false)
		s.logger.Printf("session: closed")
	})
}
