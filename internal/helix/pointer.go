package helix

// PointerState holds the normalized pointer target and the eased position
// the compositor actually uses for tilt.
type PointerState struct {
	TargetX, TargetY   float64
	CurrentX, CurrentY float64
}

// SetTarget records a pointer position given in surface pixels. The result is
// relative to the surface center, roughly in [-0.5, 0.5].
func (p *PointerState) SetTarget(x, y float64, width, height int) {
	if width > 0 {
		p.TargetX = x/float64(width) - 0.5
	}
	if height > 0 {
		p.TargetY = y/float64(height) - 0.5
	}
}

// Ease moves the current position a fixed fraction toward the target.
func (p *PointerState) Ease(factor float64) {
	p.CurrentX += (p.TargetX - p.CurrentX) * factor
	p.CurrentY += (p.TargetY - p.CurrentY) * factor
}
