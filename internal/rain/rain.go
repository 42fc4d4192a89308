package rain

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/termrain/internal/config"
	"github.com/san-kum/termrain/internal/engine"
	"github.com/san-kum/termrain/internal/event"
	"github.com/san-kum/termrain/internal/render"
	"github.com/san-kum/termrain/internal/term"
)

type Options struct {
	Config *config.Config
	Seed   int64
	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		Config: config.DefaultConfig(),
		Seed:   time.Now().UnixNano(),
	}
}

// Run takes over the screen and animates until a quit key, ctx cancellation
// or the input side going away. The terminal is restored before Run returns,
// including when it panics.
func Run(ctx context.Context, screen tcell.Screen, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	session, err := term.Open(screen, cfg, rng, logger)
	if err != nil {
		return err
	}
	defer session.Close()

	width, height := session.Size()
	eng := engine.New(render.NewScreenSink(session.Screen()), rng, cfg, width, height, session.Display())
	eng.SetLogger(logger)

	q := event.NewQueue()
	ticker := &event.Ticker{Interval: cfg.TickInterval()}
	input := &event.InputListener{Poller: session.Screen()}

	go ticker.Run(q.NewSender())
	go input.Run(q.NewSender())

	logger.Printf("rain: running at %d fps, seed %d", cfg.FPS, opts.Seed)
	return eng.Run(ctx, q)
}
