package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen draws onto an ebiten image.
type Screen struct {
	Dst       *ebiten.Image
	AntiAlias bool
}

func (s Screen) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	vector.StrokeLine(s.Dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, s.AntiAlias)
}

func (s Screen) Dot(x, y, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.Dst, float32(x), float32(y), float32(r), c, s.AntiAlias)
}
