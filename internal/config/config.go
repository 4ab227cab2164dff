package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Helix - O: open ORF track, S: open soundtrack, M: mute, H: HUD, Esc/Q: quit"

	VisualRingSize  = 8192
	LevelWindow     = 2048
	SmoothingFactor = 0.6

	// Pointer easing per tick
	Easing = 0.07

	// Motion presets
	ActiveSpeed     = 0.8
	ActiveVelocityX = 1.4
	ActiveVelocityY = 0.8
	IdleSpeed       = 0.35
	IdleVelocityX   = 0.6
	IdleVelocityY   = 0.4
)

// ErrInvalid is returned by Validate and Load for unusable configuration.
var ErrInvalid = errors.New("config: invalid")

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Preset struct {
	Speed     float64 `toml:"speed"`
	VelocityX float64 `toml:"velocity_x"`
	VelocityY float64 `toml:"velocity_y"`
}

type Motion struct {
	Easing float64 `toml:"easing"`
	Active Preset  `toml:"active"`
	Idle   Preset  `toml:"idle"`
}

// Config is the runtime configuration of the visualizer. Zero values are
// never used directly; start from Default.
type Config struct {
	Window     Window `toml:"window"`
	Motion     Motion `toml:"motion"`
	Soundtrack string `toml:"soundtrack"`
	ORF        string `toml:"orf"`
	LogLevel   string `toml:"log_level"`
	HUD        bool   `toml:"hud"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Motion: Motion{
			Easing: Easing,
			Active: Preset{Speed: ActiveSpeed, VelocityX: ActiveVelocityX, VelocityY: ActiveVelocityY},
			Idle:   Preset{Speed: IdleSpeed, VelocityX: IdleVelocityX, VelocityY: IdleVelocityY},
		},
		LogLevel: "info",
		HUD:      true,
	}
}

// Load reads a TOML file on top of the defaults. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Motion.Easing <= 0 || c.Motion.Easing > 1 {
		return fmt.Errorf("%w: easing %v outside (0, 1]", ErrInvalid, c.Motion.Easing)
	}
	for name, p := range map[string]Preset{"active": c.Motion.Active, "idle": c.Motion.Idle} {
		if p.Speed < 0 || p.VelocityX < 0 || p.VelocityY < 0 {
			return fmt.Errorf("%w: %s preset must be non-negative", ErrInvalid, name)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
