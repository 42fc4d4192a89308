package render

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Cell is one written character as seen by the Recorder.
type Cell struct {
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
	Char string `yaml:"char"`
	FG   string `yaml:"fg"`
}

// Frame is everything written between two flushes.
type Frame struct {
	Background string `yaml:"background"`
	Cleared    bool   `yaml:"cleared"`
	Cells      []Cell `yaml:"cells"`
}

// Recorder is a Sink that keeps flushed frames in memory instead of drawing
// them.
type Recorder struct {
	Frames []Frame

	cur      Frame
	fg       tcell.Color
	col, row int
}

func NewRecorder() *Recorder {
	return &Recorder{fg: tcell.ColorReset}
}

func (r *Recorder) Clear() {
	r.cur.Cleared = true
	r.cur.Cells = nil
}

func (r *Recorder) SetBackground(c tcell.Color) {
	r.cur.Background = colorName(c)
}

func (r *Recorder) MoveTo(col, row int) {
	r.col, r.row = col, row
}

func (r *Recorder) SetForeground(c tcell.Color) {
	r.fg = c
}

func (r *Recorder) WriteRune(c rune) {
	r.cur.Cells = append(r.cur.Cells, Cell{
		Col:  r.col,
		Row:  r.row,
		Char: string(c),
		FG:   colorName(r.fg),
	})
	r.col++
}

func (r *Recorder) ResetColor() {
	r.fg = tcell.ColorReset
}

func (r *Recorder) Flush() error {
	r.Frames = append(r.Frames, r.cur)
	r.cur = Frame{}
	return nil
}

// Last returns the most recently flushed frame.
func (r *Recorder) Last() (Frame, bool) {
	if len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

func (r *Recorder) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Frames); err != nil {
		return fmt.Errorf("encode frames: %w", err)
	}
	return enc.Close()
}

func LoadFrames(rd io.Reader) ([]Frame, error) {
	var frames []Frame
	if err := yaml.NewDecoder(rd).Decode(&frames); err != nil {
		return nil, fmt.Errorf("decode frames: %w", err)
	}
	return frames, nil
}

func colorName(c tcell.Color) string {
	if hex := c.Hex(); hex >= 0 {
		return fmt.Sprintf("#%06x", hex)
	}
	return "default"
}
