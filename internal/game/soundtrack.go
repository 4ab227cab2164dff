package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/helix-visualization/internal/config"
)

// soundtrack is a looping background track: file -> loop -> tap -> ctrl.
type soundtrack struct {
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *visualTap
}

func decodeSoundtrack(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("unsupported soundtrack type %q", ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return f, streamer, format, nil
}

// loadSoundtrack replaces the current soundtrack and starts it looping.
func (g *Game) loadSoundtrack(path string) error {
	f, streamer, format, err := decodeSoundtrack(path)
	if err != nil {
		return err
	}

	t := newVisualTap(beep.Loop(-1, streamer), config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: g.muted}

	g.stopSoundtrack()
	if g.speakerRate != format.SampleRate {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		g.speakerRate = format.SampleRate
	}

	g.audio = &soundtrack{
		path:     path,
		file:     f,
		streamer: streamer,
		format:   format,
		ctrl:     ctrl,
		tap:      t,
	}
	speaker.Play(ctrl)

	Logger().Info("soundtrack started", "instance", g.id, "path", path, "rate", int(format.SampleRate))
	return nil
}

func (g *Game) stopSoundtrack() {
	if g.audio == nil {
		return
	}
	// Clear takes the speaker lock itself.
	speaker.Clear()
	_ = g.audio.streamer.Close()
	_ = g.audio.file.Close()
	g.audio = nil
	g.level = 0
}

func (g *Game) toggleMute() {
	g.muted = !g.muted
	if g.audio == nil {
		return
	}
	speaker.Lock()
	g.audio.ctrl.Paused = g.muted
	speaker.Unlock()
}

func (g *Game) updateLevel() {
	if g.audio == nil || g.muted {
		g.level *= config.SmoothingFactor
		return
	}
	mag := g.audio.tap.level(config.LevelWindow)
	g.level = config.SmoothingFactor*g.level + (1-config.SmoothingFactor)*mag
}
