package event

import "fmt"

type Kind uint8

const (
	Redraw Kind = iota
	Resize
	Exit
)

func (k Kind) String() string {
	switch k {
	case Redraw:
		return "redraw"
	case Resize:
		return "resize"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is what producers hand to the engine. Width and Height are only set
// for Resize.
type Event struct {
	Kind   Kind
	Width  int
	Height int
}

func RedrawEvent() Event { return Event{Kind: Redraw} }

func ExitEvent() Event { return Event{Kind: Exit} }

func ResizeEvent(w, h int) Event {
	return Event{Kind: Resize, Width: w, Height: h}
}
