package game

import (
	"image"

	"github.com/faiface/beep"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/helix-visualization/internal/config"
	"github.com/iburimskiy/helix-visualization/internal/helix"
	"github.com/iburimskiy/helix-visualization/internal/orf"
	"github.com/iburimskiy/helix-visualization/internal/render"
)

// Game is one mounted visualization: the helix engine, its background, an
// optional ORF track and an optional soundtrack, driven by ebiten.
type Game struct {
	id string

	engine *helix.Engine
	bg     render.Background
	events eventTracker

	// set by Layout, consumed by Update
	display image.Point
	scale   float64

	track orf.Track

	audio       *soundtrack
	speakerRate beep.SampleRate
	level       float64
	muted       bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	showHUD bool
	lastErr error
}

// New builds a game from cfg. A soundtrack or track that fails to load is
// reported in the HUD and the log; the helix runs regardless.
func New(cfg config.Config) *Game {
	g := &Game{
		engine: helix.NewEngine(helix.Options{
			Easing: cfg.Motion.Easing,
			Active: preset(cfg.Motion.Active),
			Idle:   preset(cfg.Motion.Idle),
			Layers: helix.DefaultLayers(),
		}),
		id:      uuid.NewString(),
		scale:   1,
		prevKey: map[ebiten.Key]bool{},
		showHUD: cfg.HUD,
	}
	Logger().Info("visualization created", "instance", g.id)

	if cfg.ORF != "" {
		g.loadTrack(cfg.ORF)
	}
	if cfg.Soundtrack != "" {
		if err := g.loadSoundtrack(cfg.Soundtrack); err != nil {
			g.fail("soundtrack", err)
		}
	}
	return g
}

func preset(p config.Preset) helix.Preset {
	return helix.Preset{Speed: p.Speed, VelocityX: p.VelocityX, VelocityY: p.VelocityY}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.stopSoundtrack()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyO) {
		g.openTrackDialog()
	}
	if justPressed(ebiten.KeyS) {
		g.openSoundtrackDialog()
	}
	if justPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	cx, cy := ebiten.CursorPosition()
	before := g.engine.State()
	in := g.events.collect(before.Surface, g.display, g.scale, image.Pt(cx, cy), ebiten.IsFocused())
	g.engine.Update(in)

	after := g.engine.State()
	if in.Resized {
		Logger().Debug("surface resized", "instance", g.id,
			"width", after.Surface.Width, "height", after.Surface.Height, "dpr", after.Surface.DPR)
	}
	if after.Visibility != before.Visibility {
		Logger().Info("visibility changed", "instance", g.id, "mode", after.Visibility.String())
	}

	g.updateLevel()
	g.bg.Level = g.level
	g.bg.Advance()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Clear()
	dst := render.Screen{Dst: screen, AntiAlias: true}
	g.bg.Compose(g.engine.State().Surface, dst)
	g.engine.Draw(dst)
	g.drawTrack(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout renders at device resolution: the logical window size times the
// integer device pixel ratio.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	g.display = image.Pt(outsideWidth, outsideHeight)
	g.scale = scale
	s := helix.Measure(outsideWidth, outsideHeight, scale)
	return s.Width, s.Height
}

func (g *Game) fail(what string, err error) {
	g.lastErr = err
	Logger().Warn(what+" unavailable", "instance", g.id, "err", err)
}
