package helix

import "image/color"

// Canvas is the drawing surface the compositor writes to. Coordinates and
// lengths are device pixels.
type Canvas interface {
	Line(x1, y1, x2, y2, width float64, c color.NRGBA)
	Dot(x, y, r float64, c color.NRGBA)
}

type PrimitiveKind int

const (
	KindLine PrimitiveKind = iota
	KindDot
)

// Primitive is one recorded draw call. Dots use X1/Y1 as center and Width
// as radius.
type Primitive struct {
	Kind   PrimitiveKind
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Color  color.NRGBA
}

// Recorder is a Canvas that keeps every call, for tests and for replaying a
// frame onto another backend.
type Recorder struct {
	Primitives []Primitive
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	r.Primitives = append(r.Primitives, Primitive{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

func (r *Recorder) Dot(x, y, radius float64, c color.NRGBA) {
	r.Primitives = append(r.Primitives, Primitive{Kind: KindDot, X1: x, Y1: y, Width: radius, Color: c})
}

// Replay draws the recorded primitives onto dst in order.
func (r *Recorder) Replay(dst Canvas) {
	for _, p := range r.Primitives {
		switch p.Kind {
		case KindLine:
			dst.Line(p.X1, p.Y1, p.X2, p.Y2, p.Width, p.Color)
		case KindDot:
			dst.Dot(p.X1, p.Y1, p.Width, p.Color)
		}
	}
}

func (r *Recorder) Reset() { r.Primitives = r.Primitives[:0] }

// WithAlpha returns c with its alpha scaled by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
