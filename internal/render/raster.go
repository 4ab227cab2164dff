package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// Raster draws into an offscreen gg context, for snapshots without a window.
type Raster struct {
	dc  *gg.Context
	err error
}

func NewRaster(width, height int) *Raster {
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	return &Raster{dc: dc}
}

func (r *Raster) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.keep(r.dc.Stroke())
}

func (r *Raster) Dot(x, y, radius float64, c color.NRGBA) {
	r.dc.SetColor(c)
	r.dc.DrawCircle(x, y, radius)
	r.keep(r.dc.Fill())
}

func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		Logger().Warn("raster draw failed", "err", err)
		r.err = err
	}
}

// Err returns the first drawing error, if any.
func (r *Raster) Err() error { return r.err }

func (r *Raster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return fmt.Errorf("draw: %w", r.err)
	}
	return r.dc.EncodePNG(w)
}

func (r *Raster) Close() error { return r.dc.Close() }
