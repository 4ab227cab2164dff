package main

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/helix-visualization/internal/config"
	"github.com/iburimskiy/helix-visualization/internal/helix"
)

func TestSnapshotScalesWithDPR(t *testing.T) {
	var buf bytes.Buffer
	err := snapshot(&buf, options{width: 120, height: 90, scale: 2, ticks: 5, pointerX: 30, pointerY: 30})
	if err != nil {
		t.Fatalf("snapshot() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 180 {
		t.Errorf("bounds = %v, want 240x180", b)
	}
}

func TestSimulateTickCount(t *testing.T) {
	tests := []struct {
		name  string
		ticks int
		idle  bool
		want  float64
	}{
		{"zero ticks", 0, false, 0},
		{"three ticks", 3, false, 3 * helix.ActivePreset.Speed},
		{"idle", 2, true, 2 * helix.IdlePreset.Speed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := simulate(options{width: 200, height: 100, scale: 1, ticks: tt.ticks, pointerX: 200, pointerY: 50, idle: tt.idle})
			s := e.State()
			if got := s.Motion.PhaseOffset; math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("phase = %v, want %v", got, tt.want)
			}
			if s.Surface.Width != 200 || s.Surface.Height != 100 {
				t.Errorf("surface = %+v, want 200x100", s.Surface)
			}
			if s.Pointer.TargetX != 0.5 {
				t.Errorf("pointer target x = %v, want 0.5", s.Pointer.TargetX)
			}
		})
	}
}

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	if err := run(options{width: 64, height: 48, scale: 1, ticks: 1, pointerX: -1, pointerY: -1, idle: true, out: out}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	info, err := os.Stat(out)
	if err != nil || info.Size() == 0 {
		t.Errorf("output missing or empty: %v", err)
	}
}

func TestRunRejectsBadSize(t *testing.T) {
	err := run(options{width: 0, height: 10, out: filepath.Join(t.TempDir(), "x.png")})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("error = %v, want ErrInvalid", err)
	}
}
