package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/iburimskiy/helix-visualization/internal/helix"
)

func TestBackgroundDeterministic(t *testing.T) {
	s := helix.Measure(320, 200, 1)
	b := Background{Time: 42, Level: 0.3}

	var a1, a2 helix.Recorder
	b.Compose(s, &a1)
	b.Compose(s, &a2)
	if len(a1.Primitives) == 0 {
		t.Fatal("background drew nothing")
	}
	if !reflect.DeepEqual(a1.Primitives, a2.Primitives) {
		t.Error("background is not deterministic")
	}
}

func TestBackgroundGradientEnds(t *testing.T) {
	s := helix.Measure(100, 100, 1)
	var r helix.Recorder
	(&Background{}).Compose(s, &r)

	first := r.Primitives[0]
	if first.Color != gradientTop {
		t.Errorf("first band = %v, want %v", first.Color, gradientTop)
	}
	bands := 100 / bandHeight
	last := r.Primitives[bands-1]
	if last.Color == gradientTop || last.Y1 < 90 {
		t.Errorf("last band = %+v", last)
	}
	glow := r.Primitives[bands]
	if glow.Kind != helix.KindDot || glow.X1 != 50 || glow.Y1 != 50 {
		t.Errorf("glow = %+v, want centered dot", glow)
	}
}

func TestBackgroundLevelWidensGlow(t *testing.T) {
	s := helix.Measure(200, 200, 1)
	radius := func(level float64) float64 {
		var r helix.Recorder
		(&Background{Level: level}).Compose(s, &r)
		return r.Primitives[200/bandHeight].Width
	}
	if quiet, loud := radius(0), radius(1); loud <= quiet {
		t.Errorf("glow radius loud=%v quiet=%v, want loud > quiet", loud, quiet)
	}
}

func TestBackgroundAdvance(t *testing.T) {
	var b Background
	b.Advance()
	b.Advance()
	if b.Time != 2 {
		t.Errorf("Time = %v, want 2", b.Time)
	}
}

func TestLerp(t *testing.T) {
	a := color.NRGBA{R: 0, A: 255}
	b := color.NRGBA{R: 200, A: 255}
	if got := lerp(a, b, 0.5).R; got != 100 {
		t.Errorf("lerp R = %d, want 100", got)
	}
	if got := lerp(a, b, 3); got != b {
		t.Errorf("lerp clamps to %v, got %v", b, got)
	}
}

func TestRasterSnapshot(t *testing.T) {
	s := helix.Measure(160, 120, 1)
	r := NewRaster(s.Width, s.Height)
	defer r.Close()

	(&Background{}).Compose(s, r)
	e := helix.NewEngine(helix.DefaultOptions())
	e.Update(helix.Input{Resized: true, DisplayWidth: 160, DisplayHeight: 120, Scale: 1})
	e.Draw(r)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Errorf("bounds = %v, want 160x120", b)
	}
}

func TestRasterKeepsFirstError(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	r := NewRaster(8, 8)
	defer r.Close()

	first := errors.New("stroke failed")
	r.keep(nil)
	r.keep(first)
	r.keep(errors.New("fill failed"))
	if r.Err() != first {
		t.Errorf("Err() = %v, want %v", r.Err(), first)
	}
	if err := r.EncodePNG(&bytes.Buffer{}); !errors.Is(err, first) {
		t.Errorf("EncodePNG() error = %v, want %v", err, first)
	}
	out := buf.String()
	if strings.Count(out, "raster draw failed") != 1 || !strings.Contains(out, "stroke failed") {
		t.Errorf("log output = %q", out)
	}
}
