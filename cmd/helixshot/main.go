// Command helixshot renders a single frame of the helix animation to a PNG
// without opening a window.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/helix-visualization/internal/config"
	"github.com/iburimskiy/helix-visualization/internal/helix"
	"github.com/iburimskiy/helix-visualization/internal/render"
)

type options struct {
	width, height int
	scale         float64
	ticks         int
	pointerX      float64
	pointerY      float64
	idle          bool
	out           string
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	gg.SetLogger(logger)
	render.SetLogger(logger)

	var o options
	flag.IntVar(&o.width, "width", 800, "display width")
	flag.IntVar(&o.height, "height", 600, "display height")
	flag.Float64Var(&o.scale, "dpr", 1, "device pixel ratio")
	flag.IntVar(&o.ticks, "ticks", 120, "ticks to simulate before drawing")
	flag.Float64Var(&o.pointerX, "pointer-x", -1, "pointer x in display pixels (negative: centered)")
	flag.Float64Var(&o.pointerY, "pointer-y", -1, "pointer y in display pixels (negative: centered)")
	flag.BoolVar(&o.idle, "idle", false, "simulate with the idle preset")
	flag.StringVar(&o.out, "out", "helix.png", "output PNG path, - for stdout")
	flag.Parse()

	if err := run(o); err != nil {
		logger.Error("snapshot failed", "err", err)
		os.Exit(1)
	}
	logger.Info("snapshot written", "path", o.out, "ticks", o.ticks)
}

func run(o options) error {
	if o.width <= 0 || o.height <= 0 || o.ticks < 0 {
		return fmt.Errorf("%w: size %dx%d, ticks %d", config.ErrInvalid, o.width, o.height, o.ticks)
	}

	if o.out == "-" {
		return snapshot(os.Stdout, o)
	}
	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := snapshot(bw, o); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// simulate applies the window and pointer events, then advances exactly
// o.ticks ticks. With zero ticks the frame is the initial state.
func simulate(o options) (*helix.Engine, render.Background) {
	e := helix.NewEngine(helix.DefaultOptions())
	var bg render.Background

	in := helix.Input{
		Resized:       true,
		DisplayWidth:  o.width,
		DisplayHeight: o.height,
		Scale:         o.scale,
		Visibility:    helix.Active,
	}
	if o.idle {
		in.Visibility = helix.Idle
	}
	if o.pointerX >= 0 && o.pointerY >= 0 {
		s := helix.Measure(o.width, o.height, o.scale)
		in.PointerMoved = true
		in.PointerX, in.PointerY = s.Px(o.pointerX), s.Px(o.pointerY)
	}
	e.Handle(in)

	tick := helix.Input{Visibility: in.Visibility}
	for i := 0; i < o.ticks; i++ {
		e.Update(tick)
		bg.Advance()
	}
	return e, bg
}

func snapshot(w io.Writer, o options) error {
	e, bg := simulate(o)

	s := e.State().Surface
	r := render.NewRaster(s.Width, s.Height)
	defer r.Close()

	bg.Compose(s, r)
	e.Draw(r)
	return r.EncodePNG(w)
}
