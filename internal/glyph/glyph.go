package glyph

import "math/rand"

// Half-width katakana.
const (
	CharStart rune = 0xFF61
	CharEnd   rune = CharStart + 0x3C + 1
)

// Glyph is one falling character. X is the screen column and stays fixed,
// Y is the continuous row position.
type Glyph struct {
	X   float64
	Y   float64
	Vel float64
	C   rune
}

func New(x, y, vel float64, c rune) Glyph {
	return Glyph{X: x, Y: y, Vel: vel, C: c}
}

// Stream is a vertical trail of glyphs; index 0 is the head.
type Stream []Glyph

func (s Stream) Head() Glyph { return s[0] }

func RandomChar(rng *rand.Rand) rune {
	return CharStart + rune(rng.Intn(int(CharEnd-CharStart)))
}

func InRange(c rune) bool {
	return c >= CharStart && c < CharEnd
}
