package helix

// Design values in CSS-style pixels; scaled by Surface.Px at draw time.
const (
	Amplitude   = 90
	Wavelength  = 180
	Separation  = 40
	RungSpacing = 24
	Thickness   = 2.6
	AlphaBase   = 0.85
)

// LayerSpec configures one depth layer of the helix.
type LayerSpec struct {
	Amplitude       float64
	Separation      float64
	StrokeWidth     float64
	Alpha           float64
	SpeedMultiplier float64
	Depth           int
}

// DefaultLayers returns the three stock layers in draw order.
func DefaultLayers() []LayerSpec {
	return []LayerSpec{
		{Amplitude: Amplitude * 0.75, Separation: Separation * 0.9, StrokeWidth: Thickness * 0.9, Alpha: AlphaBase * 0.7, SpeedMultiplier: 0.7, Depth: 0},
		{Amplitude: Amplitude, Separation: Separation, StrokeWidth: Thickness, Alpha: AlphaBase, SpeedMultiplier: 1.0, Depth: 1},
		{Amplitude: Amplitude * 1.2, Separation: Separation * 1.1, StrokeWidth: Thickness * 1.2, Alpha: AlphaBase * 0.6, SpeedMultiplier: 0.5, Depth: 2},
	}
}
