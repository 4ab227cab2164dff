package helix

import (
	"image/color"
	"math"
)

const (
	tiltStrength = 80
	tiltFactorX  = 0.4
	tiltFactorY  = 0.3

	layerOffsetX = 80
	layerOffsetY = 60

	// The band runs along (0.35, 0.65) per unit of sample offset.
	slopeX = 0.35
	slopeY = 0.65

	extraSteps = 20
	cullPad    = 200

	rungWidth   = 0.75
	rungAlpha   = 0.9
	markerSize  = 0.55
	markerAlpha = 0.85
	stubWidth   = 0.35
	stubAlpha   = 0.5
)

var (
	StrandColor = color.NRGBA{R: 0xff, G: 0x1e, B: 0x3c, A: 0xff}
	RungPalette = [3]color.NRGBA{
		{R: 0xff, G: 0x6b, B: 0x81, A: 0xff},
		{R: 0xff, G: 0x47, B: 0x57, A: 0xff},
		{R: 0xff, G: 0x1e, B: 0x3c, A: 0xff},
	}
)

// Frame is the snapshot a compositor pass reads. It is taken once per tick
// so every layer sees the same motion and pointer values.
type Frame struct {
	Surface  Surface
	Phase    float64
	DriftX   float64
	DriftY   float64
	PointerX float64
	PointerY float64
}

// Sample is one position along a layer's band. A and B are the two strand
// points; Sin and Cos give the strand direction at that position.
type Sample struct {
	Index    int
	X, Y     float64
	XA, YA   float64
	XB, YB   float64
	Sin, Cos float64
}

type Compositor struct {
	Layers  []LayerSpec
	Strand  color.NRGBA
	Palette [3]color.NRGBA
}

func NewCompositor(layers []LayerSpec) *Compositor {
	return &Compositor{
		Layers:  layers,
		Strand:  StrandColor,
		Palette: RungPalette,
	}
}

// Compose draws every layer in configured order.
func (c *Compositor) Compose(f Frame, dst Canvas) {
	if f.Surface.Empty() {
		return
	}
	for _, layer := range c.Layers {
		c.drawLayer(f, layer, dst)
	}
}

func (c *Compositor) drawLayer(f Frame, layer LayerSpec, dst Canvas) {
	s := f.Surface
	width := s.Px(layer.StrokeWidth)
	sep := s.Px(layer.Separation)

	Samples(f, layer, func(p Sample) {
		rung := c.Palette[floorModInt(p.Index+layer.Depth, len(c.Palette))]
		dst.Line(p.XA, p.YA, p.XB, p.YB, width*rungWidth, WithAlpha(rung, layer.Alpha*rungAlpha))

		marker := WithAlpha(c.Strand, layer.Alpha*markerAlpha)
		dst.Dot(p.XA, p.YA, width*markerSize, marker)
		dst.Dot(p.XB, p.YB, width*markerSize, marker)

		stub := WithAlpha(c.Strand, layer.Alpha*stubAlpha)
		dst.Line(p.XA, p.YA, p.XA+p.Sin*sep, p.YA+p.Cos*sep, width*stubWidth, stub)
		dst.Line(p.XB, p.YB, p.XB-p.Sin*sep, p.YB-p.Cos*sep, width*stubWidth, stub)
	})
}

// Anchor returns the layer's world-space origin: drift plus pointer tilt
// plus a fixed per-depth offset, wrapped into [0, size+wavelength).
func Anchor(f Frame, layer LayerSpec) (x, y float64) {
	s := f.Surface
	wave := s.Px(Wavelength)
	tiltX := f.PointerX * s.Px(tiltStrength)
	tiltY := f.PointerY * s.Px(tiltStrength)
	x = floorMod(f.DriftX+tiltX*tiltFactorX+s.Px(float64(layer.Depth)*layerOffsetX), float64(s.Width)+wave)
	y = floorMod(f.DriftY+tiltY*tiltFactorY+s.Px(float64(layer.Depth)*layerOffsetY), float64(s.Height)+wave)
	return x, y
}

// Samples walks the layer's band and calls fn for every sample that lands
// inside the padded viewport. Culled samples still consume their index.
func Samples(f Frame, layer LayerSpec, fn func(Sample)) {
	s := f.Surface
	if s.Empty() {
		return
	}
	amp := s.Px(layer.Amplitude)
	wave := s.Px(Wavelength)
	spacing := s.Px(RungSpacing)
	phase := f.Phase * layer.SpeedMultiplier
	baseX, baseY := Anchor(f, layer)
	steps := int(math.Ceil(float64(s.Width+s.Height)/spacing)) + extraSteps

	w, h := float64(s.Width), float64(s.Height)
	for i := -steps; i < steps; i++ {
		t := float64(i) * spacing
		x := baseX + t*slopeX
		y := baseY + t*slopeY
		if x < -cullPad || x > w+cullPad || y < -cullPad || y > h+cullPad {
			continue
		}
		theta := (t + phase) / wave * 2 * math.Pi
		sin, cos := math.Sincos(theta)
		fn(Sample{
			Index: i,
			X:     x,
			Y:     y,
			XA:    x + sin*amp,
			YA:    y + cos*amp,
			XB:    x - sin*amp,
			YB:    y - cos*amp,
			Sin:   sin,
			Cos:   cos,
		})
	}
}

// floorMod is modulo with the sign of the divisor.
func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	if m >= b {
		m = 0
	}
	return m
}

func floorModInt(a, b int) int {
	return ((a % b) + b) % b
}
