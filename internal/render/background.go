package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/helix-visualization/internal/helix"
)

var (
	gradientTop    = color.NRGBA{R: 0x0b, G: 0x0f, B: 0x14, A: 0xff}
	gradientBottom = color.NRGBA{R: 0x1a, G: 0x0d, B: 0x12, A: 0xff}
	glowColor      = color.NRGBA{R: 0xff, G: 0x24, B: 0x43, A: 0xff}
)

const (
	bandHeight   = 4
	glowRings    = 10
	glowAlpha    = 0.012
	strandStep   = 24
	strandWidth  = 2
	strandHalo   = 6
	levelPulse   = 60
	glowFraction = 0.45
)

// Background is the DNA-themed backdrop: a dark gradient, a slow breathing
// glow in the middle and five sine strands across the width.
type Background struct {
	Time float64
	// Level is the smoothed soundtrack level in [0, 1]; it widens the glow.
	Level float64
}

func (b *Background) Advance() { b.Time++ }

func (b *Background) Compose(s helix.Surface, dst helix.Canvas) {
	if s.Empty() {
		return
	}
	w, h := float64(s.Width), float64(s.Height)

	band := s.Px(bandHeight)
	for y := 0.0; y < h; y += band {
		dst.Line(0, y+band/2, w, y+band/2, band+1, lerp(gradientTop, gradientBottom, y/h))
	}

	cx, cy := w/2, h/2
	r := math.Min(w, h)*glowFraction + s.Px(math.Sin(b.Time/140)*10+b.Level*levelPulse)
	for k := 0; k < glowRings; k++ {
		rr := r * (1 - 0.8*float64(k)/glowRings)
		dst.Dot(cx, cy, rr, helix.WithAlpha(glowColor, glowAlpha))
	}

	step := s.Px(strandStep)
	for i := -2; i <= 2; i++ {
		amp := float64(120+i*15) / 10
		c := helix.WithAlpha(glowColor, 0.20+float64(i)*0.05)
		halo := helix.WithAlpha(c, 0.3)
		px, py := 0.0, cy+s.Px(math.Sin(b.Time/90+float64(i))*amp)
		for x := step; x <= w+step; x += step {
			y := cy + s.Px(math.Sin(x/s.Px(180)+b.Time/90+float64(i))*amp)
			dst.Line(px, py, x, y, s.Px(strandHalo), halo)
			dst.Line(px, py, x, y, s.Px(strandWidth), c)
			px, py = x, y
		}
	}
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
