package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/helix-visualization/internal/helix"
	"github.com/iburimskiy/helix-visualization/internal/orf"
)

const (
	trackMargin = 20
	glowWidth   = 12
	labelAscent = 11
)

var (
	labelFace  = text.NewGoXFace(basicfont.Face7x13)
	panelColor = color.NRGBA{R: 0x0b, G: 0x0f, B: 0x14, A: 160}
)

func (g *Game) loadTrack(path string) {
	t, err := orf.Load(path)
	if err != nil {
		// A broken track renders nothing; the rest of the scene is unaffected.
		g.track = orf.Track{}
		g.fail("orf track", err)
		return
	}
	g.track = t
	Logger().Info("orf track loaded", "instance", g.id, "path", path, "records", len(t.Records), "length", t.Length)
}

func (g *Game) openTrackDialog() {
	path, err := selectFile("Open ORF Track", "ORF track", "*.json")
	if err != nil {
		g.fail("file dialog", err)
		return
	}
	if path != "" {
		g.loadTrack(path)
	}
}

func (g *Game) openSoundtrackDialog() {
	path, err := selectFile("Open Soundtrack", "Audio", "*.wav", "*.mp3", "*.flac")
	if err != nil {
		g.fail("file dialog", err)
		return
	}
	if path == "" {
		return
	}
	if err := g.loadSoundtrack(path); err != nil {
		g.fail("soundtrack", err)
	}
}

// drawTrack lays the track out in logical pixels and scales it onto the
// bottom center of the device surface.
func (g *Game) drawTrack(screen *ebiten.Image) {
	if g.track.Empty() {
		return
	}
	s := g.engine.State().Surface
	if s.Empty() {
		return
	}

	pw := orf.PanelWidth(s.DisplayWidth)
	l := g.track.Layout(pw, orf.PanelHeight)
	ox := (float64(s.Width) - s.Px(float64(pw))) / 2
	oy := float64(s.Height) - s.Px(orf.PanelHeight+trackMargin)
	px := func(x float64) float32 { return float32(ox + s.Px(x)) }
	py := func(y float64) float32 { return float32(oy + s.Px(y)) }

	vector.DrawFilledRect(screen, px(0), py(0), float32(s.Px(float64(pw))), float32(s.Px(orf.PanelHeight)), panelColor, false)
	vector.StrokeLine(screen, px(l.AxisX1), py(l.AxisY), px(l.AxisX2), py(l.AxisY), float32(s.Px(1)), orf.AxisColor, true)

	for _, b := range l.Bars {
		vector.StrokeLine(screen, px(b.X1), py(b.Y), px(b.X2), py(b.Y), float32(s.Px(glowWidth)), helix.WithAlpha(b.Color, 0.35), true)
		vector.StrokeLine(screen, px(b.X1), py(b.Y), px(b.X2), py(b.Y), float32(s.Px(orf.BarWidth)), b.Color, true)

		op := &text.DrawOptions{}
		op.GeoM.Scale(float64(s.DPR), float64(s.DPR))
		op.GeoM.Translate(float64(px(b.LabelX)), float64(py(b.LabelY-labelAscent)))
		op.ColorScale.ScaleWithColor(orf.LabelColor)
		text.Draw(screen, b.Label, labelFace, op)
	}
}
