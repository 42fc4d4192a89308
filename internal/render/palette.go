package render

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

// Palette colors the rain. The trail is a green ramp from TrailTop down by
// up to TrailSpan, with TrailTint in the red and blue channels.
type Palette struct {
	Name       string
	Head       lipgloss.Color
	Background lipgloss.Color
	TrailTint  int32
	TrailTop   int32
	TrailSpan  int32
}

var PaletteGreen = Palette{
	Name:       "green",
	Head:       lipgloss.Color("#96ff96"), // light green
	Background: lipgloss.Color("#000000"),
	TrailTint:  10,
	TrailTop:   255,
	TrailSpan:  200,
}

func (p Palette) HeadColor() tcell.Color {
	return tcellColor(p.Head)
}

func (p Palette) BackgroundColor() tcell.Color {
	return tcellColor(p.Background)
}

// TrailColor is the color of trail glyph i in a stream of n glyphs. Intensity
// falls off linearly with i/n.
func (p Palette) TrailColor(i, n int) tcell.Color {
	if n <= 0 {
		n = 1
	}
	g := p.TrailTop - p.TrailSpan*int32(i)/int32(n)
	if g < 0 {
		g = 0
	}
	return tcell.NewRGBColor(p.TrailTint, g, p.TrailTint)
}

var trueColor sync.Once

// tcellColor resolves c through lipgloss. The profile is pinned to true
// color: tcell does its own downsampling, and stdout is not a tty once the
// screen has taken over.
func tcellColor(c lipgloss.Color) tcell.Color {
	trueColor.Do(func() { lipgloss.SetColorProfile(termenv.TrueColor) })
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
