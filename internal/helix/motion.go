package helix

import "math"

// Visibility selects the motion preset.
type Visibility int

const (
	Active Visibility = iota
	Idle
)

func (v Visibility) String() string {
	switch v {
	case Active:
		return "active"
	case Idle:
		return "idle"
	}
	return "unknown"
}

// Preset is the (speed, velocity) tuple swapped on visibility changes.
// Velocities are magnitudes; the current direction is kept.
type Preset struct {
	Speed     float64
	VelocityX float64
	VelocityY float64
}

var (
	ActivePreset = Preset{Speed: 0.8, VelocityX: 1.4, VelocityY: 0.8}
	IdlePreset   = Preset{Speed: 0.35, VelocityX: 0.6, VelocityY: 0.4}
)

// bounceMargin is how far (design pixels) the drift may leave the surface
// before its velocity turns around.
const bounceMargin = 120

// MotionState is the per-frame scalar state of the animation.
//
// PhaseOffset grows without bound. At the preset speeds a float64 keeps
// sub-micro-pixel resolution for years of continuous running, so it is
// never wrapped.
type MotionState struct {
	PhaseOffset float64
	DriftX      float64
	DriftY      float64
	VelocityX   float64
	VelocityY   float64
	Speed       float64
}

func NewMotion(p Preset) MotionState {
	return MotionState{
		VelocityX: p.VelocityX,
		VelocityY: p.VelocityY,
		Speed:     p.Speed,
	}
}

// Advance moves the drift one tick and accumulates phase. A velocity
// component flips only while it still points away from the surface, so a
// drift stranded far outside (after a shrink) turns around once instead of
// oscillating in place.
func (m *MotionState) Advance(s Surface) {
	m.DriftX += m.VelocityX
	m.DriftY += m.VelocityY

	margin := s.Px(bounceMargin)
	if (m.DriftX < -margin && m.VelocityX < 0) || (m.DriftX > float64(s.Width)+margin && m.VelocityX > 0) {
		m.VelocityX = -m.VelocityX
	}
	if (m.DriftY < -margin && m.VelocityY < 0) || (m.DriftY > float64(s.Height)+margin && m.VelocityY > 0) {
		m.VelocityY = -m.VelocityY
	}

	m.PhaseOffset += m.Speed
}

// Apply swaps in a preset, keeping the sign of each velocity component.
func (m *MotionState) Apply(p Preset) {
	m.Speed = p.Speed
	m.VelocityX = math.Copysign(p.VelocityX, m.VelocityX)
	m.VelocityY = math.Copysign(p.VelocityY, m.VelocityY)
}
