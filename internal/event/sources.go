package event

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Ticker emits Redraw at a fixed interval. It sleeps a full interval between
// sends and makes no attempt to correct for drift.
type Ticker struct {
	Interval time.Duration
}

// Run loops until the queue refuses a send, then drops tx.
func (t *Ticker) Run(tx *Sender) {
	defer tx.Close()
	for {
		time.Sleep(t.Interval)
		if err := tx.Send(RedrawEvent()); err != nil {
			return
		}
	}
}

// Poller is the blocking half of a tcell.Screen.
type Poller interface {
	PollEvent() tcell.Event
}

// InputListener turns terminal input into events. Only quit keys and resizes
// are forwarded.
type InputListener struct {
	Poller Poller
}

// Run blocks on the poller until a quit key is seen, the poller is shut down
// (nil event) or the queue refuses a send.
func (l *InputListener) Run(tx *Sender) {
	defer tx.Close()
	for {
		ev := l.Poller.PollEvent()
		if ev == nil {
			return
		}
		out, ok := translate(ev)
		if !ok {
			continue
		}
		if err := tx.Send(out); err != nil {
			return
		}
		if out.Kind == Exit {
			return
		}
	}
}

func translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuitKey(ev) {
			return ExitEvent(), true
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		return ResizeEvent(w, h), true
	}
	return Event{}, false
}

// IsQuitKey reports whether the key press ends the animation: q, Q or Ctrl-C.
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		return r == 'q' || r == 'Q'
	}
	return false
}
