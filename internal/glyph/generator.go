package glyph

import (
	"math/rand"

	"github.com/san-kum/termrain/internal/config"
)

// Generator draws new streams from a supplied random source.
type Generator struct {
	cfg *config.Config
}

func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate returns count independent streams.
func (g *Generator) Generate(rng *rand.Rand, width, count int) []Stream {
	streams := make([]Stream, 0, count)
	for i := 0; i < count; i++ {
		streams = append(streams, g.GenerateOne(rng, width))
	}
	return streams
}

// GenerateOne returns a stream entering from above the screen. The trail is
// contiguous: glyph i starts one row above glyph i-1.
func (g *Generator) GenerateOne(rng *rand.Rand, width int) Stream {
	if width < 1 {
		width = 1
	}

	x := rng.Float64() * float64(width)
	y := uniform(rng, g.cfg.MinEntryY, g.cfg.MaxEntryY)
	vel := uniform(rng, g.cfg.MinVelocity, g.cfg.MaxVelocity)
	n := g.cfg.MinLength + rng.Intn(g.cfg.MaxLength-g.cfg.MinLength)

	s := make(Stream, 0, n)
	for i := 0; i < n; i++ {
		s = append(s, New(x, y-float64(i), vel, RandomChar(rng)))
	}
	return s
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
