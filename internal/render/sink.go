package render

import "github.com/gdamore/tcell/v2"

// Sink is a buffered character-cell output. Nothing is visible until Flush.
type Sink interface {
	Clear()
	SetBackground(c tcell.Color)
	MoveTo(col, row int)
	SetForeground(c tcell.Color)
	WriteRune(r rune)
	ResetColor()
	Flush() error
}

// ScreenSink writes to a tcell screen. The cursor advances one cell per
// written rune.
type ScreenSink struct {
	screen   tcell.Screen
	style    tcell.Style
	col, row int
}

func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{screen: screen, style: tcell.StyleDefault}
}

func (s *ScreenSink) Clear() {
	s.screen.Clear()
}

func (s *ScreenSink) SetBackground(c tcell.Color) {
	s.style = s.style.Background(c)
	bg := tcell.StyleDefault.Background(c)
	s.screen.SetStyle(bg)
	s.screen.Fill(' ', bg)
}

func (s *ScreenSink) MoveTo(col, row int) {
	s.col, s.row = col, row
}

func (s *ScreenSink) SetForeground(c tcell.Color) {
	s.style = s.style.Foreground(c)
}

func (s *ScreenSink) WriteRune(r rune) {
	s.screen.SetContent(s.col, s.row, r, nil, s.style)
	s.col++
}

func (s *ScreenSink) ResetColor() {
	s.style = s.style.Foreground(tcell.ColorReset)
}

func (s *ScreenSink) Flush() error {
	s.screen.Show()
	return nil
}
