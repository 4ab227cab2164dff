package helix

import (
	"math"
	"reflect"
	"testing"
)

func centerFrame() Frame {
	return Frame{Surface: Measure(800, 600, 1)}
}

func TestFirstRungAtZeroPhase(t *testing.T) {
	f := centerFrame()
	layer := DefaultLayers()[0]

	var got *Sample
	Samples(f, layer, func(s Sample) {
		if s.Index == 0 {
			s := s
			got = &s
		}
	})
	if got == nil {
		t.Fatal("sample 0 was culled")
	}
	if got.X != 0 || got.Y != 0 {
		t.Errorf("anchor = (%v, %v), want (0, 0)", got.X, got.Y)
	}
	if got.XA != got.XB {
		t.Errorf("xA = %v, xB = %v, want equal", got.XA, got.XB)
	}
	if want := 2 * layer.Amplitude; got.YA-got.YB != want {
		t.Errorf("yA - yB = %v, want %v", got.YA-got.YB, want)
	}
}

func TestComposeDeterministic(t *testing.T) {
	f := Frame{
		Surface:  Measure(1280, 720, 2),
		Phase:    12345.6,
		DriftX:   -77.5,
		DriftY:   310.25,
		PointerX: 0.21,
		PointerY: -0.4,
	}
	c := NewCompositor(DefaultLayers())

	var a, b Recorder
	c.Compose(f, &a)
	c.Compose(f, &b)
	if len(a.Primitives) == 0 {
		t.Fatal("no primitives drawn")
	}
	if !reflect.DeepEqual(a.Primitives, b.Primitives) {
		t.Error("two passes over the same frame drew different primitives")
	}
}

func TestComposeEmptySurfaceIsInert(t *testing.T) {
	var r Recorder
	NewCompositor(DefaultLayers()).Compose(Frame{}, &r)
	if len(r.Primitives) != 0 {
		t.Errorf("drew %d primitives on an empty surface", len(r.Primitives))
	}
}

func TestRungColorFollowsSampleIndex(t *testing.T) {
	f := centerFrame()
	layers := DefaultLayers()
	c := NewCompositor(layers)

	var r Recorder
	c.Compose(f, &r)

	const perSample = 5
	k := 0
	culled := false
	for _, layer := range layers {
		steps := int(math.Ceil(float64(f.Surface.Width+f.Surface.Height)/RungSpacing)) + extraSteps
		first := true
		Samples(f, layer, func(s Sample) {
			if first && s.Index != -steps {
				culled = true
			}
			first = false
			want := WithAlpha(RungPalette[floorModInt(s.Index+layer.Depth, 3)], layer.Alpha*rungAlpha)
			rung := r.Primitives[k*perSample]
			if rung.Kind != KindLine || rung.Color != want {
				t.Errorf("layer %d sample %d: rung %+v, want color %v", layer.Depth, s.Index, rung, want)
			}
			k++
		})
	}
	if k*perSample != len(r.Primitives) {
		t.Errorf("primitives = %d, want %d", len(r.Primitives), k*perSample)
	}
	if !culled {
		t.Error("expected the band ends to be culled")
	}
}

func TestSampleElements(t *testing.T) {
	f := centerFrame()
	layer := DefaultLayers()[1]
	c := NewCompositor([]LayerSpec{layer})

	var r Recorder
	c.Compose(f, &r)

	var first Sample
	found := false
	Samples(f, layer, func(s Sample) {
		if !found {
			first, found = s, true
		}
	})
	if !found || len(r.Primitives) < 5 {
		t.Fatal("nothing drawn")
	}

	width := layer.StrokeWidth
	p := r.Primitives
	if p[0].X1 != first.XA || p[0].Y1 != first.YA || p[0].X2 != first.XB || p[0].Y2 != first.YB {
		t.Errorf("rung = %+v, want A->B of %+v", p[0], first)
	}
	if p[0].Width != width*rungWidth {
		t.Errorf("rung width = %v, want %v", p[0].Width, width*rungWidth)
	}
	for _, d := range p[1:3] {
		if d.Kind != KindDot || d.Width != width*markerSize {
			t.Errorf("marker = %+v, want dot radius %v", d, width*markerSize)
		}
	}
	stubA := p[3]
	if stubA.X2 != first.XA+first.Sin*layer.Separation || stubA.Y2 != first.YA+first.Cos*layer.Separation {
		t.Errorf("stub A ends at (%v, %v)", stubA.X2, stubA.Y2)
	}
	if stubA.Color != WithAlpha(StrandColor, layer.Alpha*stubAlpha) {
		t.Errorf("stub color = %v", stubA.Color)
	}
}

func TestAnchorWrapsNegativeDrift(t *testing.T) {
	f := centerFrame()
	f.DriftX = -10
	f.DriftY = -1000
	x, y := Anchor(f, DefaultLayers()[0])
	if x != 970 {
		t.Errorf("x = %v, want 970", x)
	}
	if want := floorMod(-1000, 780); y != want || y < 0 {
		t.Errorf("y = %v, want %v", y, want)
	}
}

func TestAnchorTilt(t *testing.T) {
	f := centerFrame()
	f.PointerX = 0.5
	f.PointerY = -0.5
	layer := DefaultLayers()[2]
	x, y := Anchor(f, layer)
	// 0.5*80*0.4 + 2*80 = 176 ; -0.5*80*0.3 + 2*60 = 108
	if math.Abs(x-176) > 1e-9 || math.Abs(y-108) > 1e-9 {
		t.Errorf("anchor = (%v, %v), want (176, 108)", x, y)
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{5, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
		{0, 3, 0},
		{990, 980, 10},
	}
	for _, tt := range tests {
		if got := floorMod(tt.a, tt.b); got != tt.want {
			t.Errorf("floorMod(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	if got := floorModInt(-4, 3); got != 2 {
		t.Errorf("floorModInt(-4, 3) = %d, want 2", got)
	}
}

func TestRecorderReplay(t *testing.T) {
	var src, dst Recorder
	NewCompositor(DefaultLayers()).Compose(centerFrame(), &src)
	src.Replay(&dst)
	if !reflect.DeepEqual(src.Primitives, dst.Primitives) {
		t.Error("replay differs from source")
	}
	src.Reset()
	if len(src.Primitives) != 0 {
		t.Error("Reset left primitives")
	}
}

func TestWithAlpha(t *testing.T) {
	c := StrandColor
	if got := WithAlpha(c, 0.5).A; got != 128 {
		t.Errorf("alpha = %d, want 128", got)
	}
	if got := WithAlpha(c, 2).A; got != 255 {
		t.Errorf("alpha = %d, want 255", got)
	}
	if got := WithAlpha(c, -1).A; got != 0 {
		t.Errorf("alpha = %d, want 0", got)
	}
}
