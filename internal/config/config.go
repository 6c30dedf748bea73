package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Rosettes - hover to spin, click to pulse"

	// Ornament decoration
	RayCount        = 60
	RayStrokeWidth  = 2
	RingCountMax    = 7
	BorderVertices  = 8
	BorderScale     = 1.2
	BackgroundScale = 1.05
	RingStrokeAlpha = 100

	// Vine-and-pearl border
	VineSegment         = 10.0
	VineAmplitude       = 4.0
	VineFrequency       = 4.0
	PearlHighlightAlpha = 200

	// Animation
	ShrinkFactor   = 0.5
	AnimationSpeed = 0.06
	SnapThreshold  = 1.0
	MinRotation    = 0.01
	MaxRotation    = 0.03
)

// RingPalette is cycled by ring index, outermost ring first.
var RingPalette = [8]color.NRGBA{
	{255, 100, 100, 255},
	{100, 255, 100, 255},
	{100, 100, 255, 255},
	{255, 255, 100, 255},
	{255, 100, 255, 255},
	{100, 255, 255, 255},
	{255, 150, 50, 255},
	{150, 50, 255, 255},
}

// Config is the startup configuration. It is read once and never changes
// while the program runs.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Ornament OrnamentConfig `yaml:"ornament"`
	Layout   LayoutConfig   `yaml:"layout"`
	Sound    SoundConfig    `yaml:"sound"`

	// Background is the clear color as #rrggbb.
	Background string `yaml:"background"`

	// FadeIn is the fade-in duration in seconds after the field is rebuilt.
	// Zero disables it.
	FadeIn float64 `yaml:"fadeIn"`

	// Seed for decoration randomness. Zero picks a time-based seed.
	Seed uint64 `yaml:"seed"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type OrnamentConfig struct {
	Radius            float64 `yaml:"radius"`
	Layers            int     `yaml:"layers"`
	ParticlesPerLayer int     `yaml:"particlesPerLayer"`
	VineThickness     float64 `yaml:"vineThickness"`
	PearlSize         float64 `yaml:"pearlSize"`
}

// LayoutConfig drives the tiling. RowPitch and the overscan counts are
// tuning knobs for density, not derived from the geometry.
type LayoutConfig struct {
	Angle       float64 `yaml:"angle"` // degrees
	Spacing     float64 `yaml:"spacing"`
	RowPitch    float64 `yaml:"rowPitch"`
	ColOverscan int     `yaml:"colOverscan"`
	RowOverscan int     `yaml:"rowOverscan"`
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Ornament: OrnamentConfig{
			Radius:            100,
			Layers:            8,
			ParticlesPerLayer: 40,
			VineThickness:     4,
			PearlSize:         15,
		},
		Layout: LayoutConfig{
			Angle:       7,
			Spacing:     400,
			RowPitch:    2.3,
			ColOverscan: 2,
			RowOverscan: 4,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Background: "#055376",
		FadeIn:     0.4,
	}
}

// Load reads a YAML file on top of Default. An empty path returns the
// defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects parameters that would make the layout degenerate or
// the ornaments meaningless.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	o := c.Ornament
	if !(o.Radius > 0) {
		errs = append(errs, fmt.Errorf("ornament radius must be > 0, got %v", o.Radius))
	}
	if o.Layers < 1 {
		errs = append(errs, fmt.Errorf("ornament layers must be >= 1, got %d", o.Layers))
	}
	if o.ParticlesPerLayer < 1 {
		errs = append(errs, fmt.Errorf("particlesPerLayer must be >= 1, got %d", o.ParticlesPerLayer))
	}
	if o.VineThickness < 0 || o.PearlSize < 0 {
		errs = append(errs, fmt.Errorf("vineThickness and pearlSize must be >= 0"))
	}

	l := c.Layout
	if !(l.Spacing > 0) || math.IsInf(l.Spacing, 0) {
		errs = append(errs, fmt.Errorf("layout spacing must be a positive number, got %v", l.Spacing))
	}
	if !(l.Angle > 0 && l.Angle < 90) {
		errs = append(errs, fmt.Errorf("layout angle must be in (0, 90) degrees, got %v", l.Angle))
	}
	if !(l.RowPitch > 0) {
		errs = append(errs, fmt.Errorf("layout rowPitch must be > 0, got %v", l.RowPitch))
	}
	if l.ColOverscan < 0 || l.RowOverscan < 0 {
		errs = append(errs, fmt.Errorf("layout overscan must be >= 0, got cols=%d rows=%d", l.ColOverscan, l.RowOverscan))
	}

	if _, err := ParseHexColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if c.FadeIn < 0 {
		errs = append(errs, fmt.Errorf("fadeIn must be >= 0, got %v", c.FadeIn))
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound volume must be in [0, 1], got %v", c.Sound.Volume))
	}

	return errors.Join(errs...)
}

// BackgroundColor returns the parsed clear color, falling back to black.
func (c *Config) BackgroundColor() color.RGBA {
	col, err := ParseHexColor(c.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return col
}

// ParseHexColor parses "#rrggbb" or "#rgb".
func ParseHexColor(s string) (color.RGBA, error) {
	col := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &col.R, &col.G, &col.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &col.R, &col.G, &col.B)
		col.R *= 17
		col.G *= 17
		col.B *= 17
	default:
		err = fmt.Errorf("invalid length")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return col, nil
}
