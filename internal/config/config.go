package config

import (
	"fmt"
	"time"
)

const (
	DefaultFPS              = 90
	DefaultMinEntryY        = -80.0
	DefaultMaxEntryY        = -10.0
	DefaultMinVelocity      = 5.0
	DefaultMaxVelocity      = 20.0
	DefaultMinLength        = 3
	DefaultMaxLength        = 13
	DefaultHeadMutation     = 10
	DefaultTrailMutation    = 15
	DefaultStreamsPerColumn = 2
)

// Config holds the constants of the rain effect. Ranges are half-open:
// [Min, Max).
type Config struct {
	FPS              int
	MinEntryY        float64
	MaxEntryY        float64
	MinVelocity      float64
	MaxVelocity      float64
	MinLength        int
	MaxLength        int
	HeadMutation     int // head redraws its character with odds 1 in HeadMutation per frame
	TrailMutation    int
	StreamsPerColumn int
}

func DefaultConfig() *Config {
	return &Config{
		FPS:              DefaultFPS,
		MinEntryY:        DefaultMinEntryY,
		MaxEntryY:        DefaultMaxEntryY,
		MinVelocity:      DefaultMinVelocity,
		MaxVelocity:      DefaultMaxVelocity,
		MinLength:        DefaultMinLength,
		MaxLength:        DefaultMaxLength,
		HeadMutation:     DefaultHeadMutation,
		TrailMutation:    DefaultTrailMutation,
		StreamsPerColumn: DefaultStreamsPerColumn,
	}
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.MinEntryY >= c.MaxEntryY {
		return fmt.Errorf("entry range [%g, %g) is empty", c.MinEntryY, c.MaxEntryY)
	}
	if c.MaxEntryY > 0 {
		return fmt.Errorf("entry range must start above the screen, got max %g", c.MaxEntryY)
	}
	if c.MinVelocity <= 0 || c.MinVelocity >= c.MaxVelocity {
		return fmt.Errorf("velocity range [%g, %g) must be positive and non-empty", c.MinVelocity, c.MaxVelocity)
	}
	if c.MinLength < 1 || c.MinLength >= c.MaxLength {
		return fmt.Errorf("length range [%d, %d) must be non-empty with at least one glyph", c.MinLength, c.MaxLength)
	}
	if c.HeadMutation <= 0 || c.TrailMutation <= 0 {
		return fmt.Errorf("mutation odds must be positive, got head=%d trail=%d", c.HeadMutation, c.TrailMutation)
	}
	if c.StreamsPerColumn <= 0 {
		return fmt.Errorf("streams per column must be positive, got %d", c.StreamsPerColumn)
	}
	return nil
}

// Dt is the simulated time of one frame, in seconds.
func (c *Config) Dt() float64 {
	return 1.0 / float64(c.FPS)
}

func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// StreamCount is the size of the display buffer for a screen of the given width.
func (c *Config) StreamCount(width int) int {
	if width < 0 {
		width = 0
	}
	return width * c.StreamsPerColumn
}
