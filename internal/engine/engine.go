package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"

	"github.com/san-kum/termrain/internal/config"
	"github.com/san-kum/termrain/internal/event"
	"github.com/san-kum/termrain/internal/glyph"
	"github.com/san-kum/termrain/internal/render"
)

// Engine owns the display buffer and is the single consumer of the event
// queue. None of its state is touched from other goroutines.
type Engine struct {
	out     render.Sink
	rng     *rand.Rand
	cfg     *config.Config
	gen     *glyph.Generator
	palette render.Palette
	logger  *log.Logger

	width   int
	height  int
	display []glyph.Stream
	frames  int
}

func New(out render.Sink, rng *rand.Rand, cfg *config.Config, width, height int, display []glyph.Stream) *Engine {
	return &Engine{
		out:     out,
		rng:     rng,
		cfg:     cfg,
		gen:     glyph.NewGenerator(cfg),
		palette: render.PaletteGreen,
		logger:  log.New(io.Discard, "", 0),
		width:   width,
		height:  height,
		display: display,
	}
}

func (e *Engine) SetLogger(l *log.Logger) { e.logger = l }

func (e *Engine) Size() (int, int)        { return e.width, e.height }
func (e *Engine) Display() []glyph.Stream { return e.display }
func (e *Engine) Frames() int             { return e.frames }

// Run consumes events until Exit, until every producer is gone, or until ctx
// is cancelled. The queue is closed on return so producers stop on their next
// send.
func (e *Engine) Run(ctx context.Context, q *event.Queue) error {
	defer q.Close()

	for {
		ev, err := q.Recv(ctx)
		switch {
		case err == nil:
		case errors.Is(err, event.ErrDrained), errors.Is(err, event.ErrClosed):
			e.logger.Printf("engine: queue %v, stopping", err)
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			e.logger.Printf("engine: %v, stopping", err)
			return nil
		default:
			return fmt.Errorf("receive event: %w", err)
		}

		if e.Handle(ev) {
			e.logger.Printf("engine: exit after %d frames", e.frames)
			return nil
		}
	}
}

// Handle applies one event and reports whether the loop should stop.
func (e *Engine) Handle(ev event.Event) bool {
	switch ev.Kind {
	case event.Resize:
		e.logger.Printf("engine: resize %dx%d -> %dx%d", e.width, e.height, ev.Width, ev.Height)
		e.width, e.height = ev.Width, ev.Height
	case event.Redraw:
		if err := e.Frame(); err != nil {
			e.logger.Printf("engine: frame %d: %v", e.frames, err)
		}
	case event.Exit:
		return true
	}
	return false
}

// Advance moves g down by its velocity over dt seconds.
func Advance(g glyph.Glyph, dt float64) glyph.Glyph {
	g.Y += g.Vel * dt
	return g
}

// Frame advances every stream by one tick and draws it. A stream whose glyph
// passes the bottom edge is replaced as a whole after its glyphs are
// processed.
func (e *Engine) Frame() error {
	dt := e.cfg.Dt()
	bottom := float64(e.height)

	e.out.Clear()
	e.out.SetBackground(e.palette.BackgroundColor())

	for si, s := range e.display {
		regen := false
		n := len(s)
		for i := range s {
			s[i] = Advance(s[i], dt)
			g := &s[i]

			if g.Y > bottom {
				regen = true
				continue
			}
			if g.Y <= 0 {
				continue
			}

			col := int(g.X)
			row := int(math.Floor(g.Y))
			if col >= e.width || row >= e.height {
				continue
			}

			fg := e.palette.HeadColor()
			odds := e.cfg.HeadMutation
			if i > 0 {
				fg = e.palette.TrailColor(i, n)
				odds = e.cfg.TrailMutation
			}
			if e.rng.Intn(odds) == 0 {
				g.C = glyph.RandomChar(e.rng)
			}

			e.out.MoveTo(col, row)
			e.out.SetForeground(fg)
			e.out.WriteRune(g.C)
			e.out.ResetColor()
		}
		if regen {
			e.display[si] = e.gen.GenerateOne(e.rng, e.width)
		}
	}

	e.frames++
	return e.out.Flush()
}
