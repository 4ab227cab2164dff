package helix

import "math"

// Surface is the drawable area. Width and Height are device pixels; the
// display size is what the window reports before scaling.
type Surface struct {
	Width, Height               int
	DisplayWidth, DisplayHeight int
	DPR                         int
}

// Measure derives the surface for a display of the given logical size. The
// device scale factor is floored to an integer and clamped to at least 1;
// a NaN or infinite factor counts as 1.
func Measure(displayWidth, displayHeight int, scale float64) Surface {
	dpr := 1
	if scale >= 1 && !math.IsInf(scale, 1) {
		dpr = int(math.Floor(scale))
	}
	if displayWidth < 1 {
		displayWidth = 1
	}
	if displayHeight < 1 {
		displayHeight = 1
	}
	return Surface{
		Width:         displayWidth * dpr,
		Height:        displayHeight * dpr,
		DisplayWidth:  displayWidth,
		DisplayHeight: displayHeight,
		DPR:           dpr,
	}
}

// Px converts a design length into device pixels. Every DPR-dependent
// length in the package goes through here.
func (s Surface) Px(v float64) float64 {
	return v * float64(s.DPR)
}

func (s Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0 || s.DPR < 1
}
