package engine_test

import (
	"context"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/termrain/internal/config"
	"github.com/san-kum/termrain/internal/engine"
	"github.com/san-kum/termrain/internal/event"
	"github.com/san-kum/termrain/internal/glyph"
	"github.com/san-kum/termrain/internal/render"
)

var _ = Describe("Engine", func() {
	var (
		cfg *config.Config
		rec *render.Recorder
		rng *rand.Rand
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.FPS = 10
		rec = render.NewRecorder()
		rng = rand.New(rand.NewSource(1))
	})

	Describe("a stream entering from the top", func() {
		var eng *engine.Engine

		BeforeEach(func() {
			display := []glyph.Stream{{glyph.New(3.7, -1, 10, 'ｱ')}}
			eng = engine.New(rec, rng, cfg, 10, 5, display)
		})

		It("is not drawn while its head sits on row zero", func() {
			Expect(eng.Frame()).To(Succeed())

			head := eng.Display()[0][0]
			Expect(head.Y).To(Equal(0.0))

			frame, ok := rec.Last()
			Expect(ok).To(BeTrue())
			Expect(frame.Cells).To(BeEmpty())
		})

		It("is drawn at the floored row once it is inside the screen", func() {
			Expect(eng.Frame()).To(Succeed())
			Expect(eng.Frame()).To(Succeed())

			head := eng.Display()[0][0]
			Expect(head.Y).To(Equal(1.0))

			frame, _ := rec.Last()
			Expect(frame.Background).To(Equal("#000000"))
			Expect(frame.Cleared).To(BeTrue())
			Expect(frame.Cells).To(HaveLen(1))
			Expect(frame.Cells[0].Col).To(Equal(3))
			Expect(frame.Cells[0].Row).To(Equal(1))
			Expect(frame.Cells[0].FG).To(Equal("#96ff96"))
			Expect(glyph.InRange([]rune(frame.Cells[0].Char)[0])).To(BeTrue())
		})
	})

	Describe("a stream past the bottom edge", func() {
		It("is replaced as a whole with a fresh stream above the screen", func() {
			old := glyph.Stream{
				glyph.New(2, 6, 10, 'ｱ'),
				glyph.New(2, 5, 10, 'ｲ'),
				glyph.New(2, 4, 10, 'ｳ'),
			}
			eng := engine.New(rec, rng, cfg, 10, 5, []glyph.Stream{old})

			Expect(eng.Frame()).To(Succeed())

			fresh := eng.Display()[0]
			Expect(len(fresh)).To(BeNumerically(">=", cfg.MinLength))
			Expect(len(fresh)).To(BeNumerically("<", cfg.MaxLength))

			head := fresh[0]
			Expect(head.Y).To(BeNumerically(">=", cfg.MinEntryY))
			Expect(head.Y).To(BeNumerically("<", cfg.MaxEntryY))
			Expect(head.X).To(BeNumerically("<", 10))
			for _, g := range fresh {
				Expect(g.X).To(Equal(head.X))
				Expect(g.Vel).To(Equal(head.Vel))
			}
		})
	})

	Describe("the event loop", func() {
		var (
			eng     *engine.Engine
			q       *event.Queue
			tx      *event.Sender
			display []glyph.Stream
		)

		BeforeEach(func() {
			display = glyph.NewGenerator(cfg).Generate(rng, 10, 20)
			eng = engine.New(rec, rng, cfg, 10, 5, display)
			q = event.NewQueue()
			tx = q.NewSender()
		})

		It("stops on exit without touching events queued behind it", func() {
			Expect(tx.Send(event.ExitEvent())).To(Succeed())
			Expect(tx.Send(event.RedrawEvent())).To(Succeed())
			Expect(tx.Send(event.ResizeEvent(40, 20))).To(Succeed())

			Expect(eng.Run(context.Background(), q)).To(Succeed())

			Expect(eng.Frames()).To(Equal(0))
			w, h := eng.Size()
			Expect(w).To(Equal(10))
			Expect(h).To(Equal(5))
			Expect(rec.Frames).To(BeEmpty())
		})

		It("makes producers fail their next send once it returns", func() {
			Expect(tx.Send(event.ExitEvent())).To(Succeed())
			Expect(eng.Run(context.Background(), q)).To(Succeed())

			Expect(tx.Send(event.RedrawEvent())).To(MatchError(event.ErrClosed))
		})

		It("updates the stored size on resize and leaves the buffer alone", func() {
			before := make([]glyph.Stream, len(display))
			for i, s := range display {
				before[i] = append(glyph.Stream(nil), s...)
			}

			Expect(eng.Handle(event.ResizeEvent(40, 20))).To(BeFalse())

			w, h := eng.Size()
			Expect(w).To(Equal(40))
			Expect(h).To(Equal(20))
			Expect(eng.Display()).To(HaveLen(20))
			Expect(eng.Display()).To(Equal(before))
			Expect(rec.Frames).To(BeEmpty())
		})

		It("renders one frame per redraw", func() {
			for i := 0; i < 3; i++ {
				Expect(tx.Send(event.RedrawEvent())).To(Succeed())
			}
			Expect(tx.Send(event.ExitEvent())).To(Succeed())

			Expect(eng.Run(context.Background(), q)).To(Succeed())

			Expect(eng.Frames()).To(Equal(3))
			Expect(rec.Frames).To(HaveLen(3))
			Expect(eng.Display()).To(HaveLen(20))
		})

		It("stops when every producer has gone away", func() {
			Expect(tx.Send(event.RedrawEvent())).To(Succeed())
			tx.Close()

			Expect(eng.Run(context.Background(), q)).To(Succeed())
			Expect(eng.Frames()).To(Equal(1))
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			Expect(eng.Run(ctx, q)).To(Succeed())
			Expect(eng.Frames()).To(Equal(0))
		})
	})
})
