package game

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *Game) status() string {
	st := g.engine.State()
	status := fmt.Sprintf("%s | %dx%d@%dx | %.0f fps", st.Visibility, st.Surface.Width, st.Surface.Height, st.Surface.DPR, ebiten.ActualFPS())

	switch {
	case g.audio == nil:
		status += " | S: soundtrack"
	case g.muted:
		status += " | muted " + filepath.Base(g.audio.path) + " (M)"
	default:
		status += " | playing " + filepath.Base(g.audio.path) + " (M mutes)"
	}
	if g.track.Empty() {
		status += " | O: ORF track"
	} else {
		status += fmt.Sprintf(" | %d ORFs", len(g.track.Records))
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}
