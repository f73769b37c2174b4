// Package config loads render parameter files for the sprite pipelines.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/gogpu/sprite"
)

// Config holds the render parameters for both asset pipelines.
// Load overlays a YAML file on the defaults, so a file only needs the
// fields it wants to change.
type Config struct {
	Glow GlowConfig `yaml:"glow"`
	Icon IconConfig `yaml:"icon"`
}

// PointConfig is a 2D coordinate in a parameter file.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GlowConfig is the glow section of a parameter file.
type GlowConfig struct {
	Size   int         `yaml:"size"`
	Center PointConfig `yaml:"center"`
	Radius float64     `yaml:"radius"`
	Alpha  float64     `yaml:"alpha"`
	Blur   float64     `yaml:"blur"`
	Power  float64     `yaml:"power"`
}

// IconConfig is the icon section of a parameter file.
type IconConfig struct {
	Size        int           `yaml:"size"`
	Scale       int           `yaml:"scale"`
	StrokeWidth float64       `yaml:"strokeWidth"`
	Samples     int           `yaml:"samples"`
	Foreground  string        `yaml:"foreground"`
	Curve       []PointConfig `yaml:"curve"`
}

// Default returns a config populated with the stock parameters.
func Default() *Config {
	g := sprite.DefaultGlowParams()
	i := sprite.DefaultIconParams()
	return &Config{
		Glow: GlowConfig{
			Size:   g.Size,
			Center: PointConfig{X: g.Center.X, Y: g.Center.Y},
			Radius: g.Radius,
			Alpha:  g.Alpha,
			Blur:   g.Blur,
			Power:  g.Power,
		},
		Icon: IconConfig{
			Size:        i.Size,
			Scale:       i.Scale,
			StrokeWidth: i.StrokeWidth,
			Samples:     i.Samples,
			Foreground:  "#ffffff",
			Curve: []PointConfig{
				{X: i.Curve.P0.X, Y: i.Curve.P0.Y},
				{X: i.Curve.P1.X, Y: i.Curve.P1.Y},
				{X: i.Curve.P2.X, Y: i.Curve.P2.Y},
				{X: i.Curve.P3.X, Y: i.Curve.P3.Y},
			},
		},
	}
}

// Load reads a YAML parameter file and overlays it on the defaults.
// An empty path returns the defaults unchanged; a path that does not
// exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// GlowParams converts the glow section into validated render parameters.
func (c *Config) GlowParams() (sprite.GlowParams, error) {
	p := sprite.GlowParams{
		Size:   c.Glow.Size,
		Center: sprite.Pt(c.Glow.Center.X, c.Glow.Center.Y),
		Radius: c.Glow.Radius,
		Alpha:  c.Glow.Alpha,
		Blur:   c.Glow.Blur,
		Power:  c.Glow.Power,
	}
	if err := p.Validate(); err != nil {
		return sprite.GlowParams{}, err
	}
	return p, nil
}

// IconParams converts the icon section into validated render parameters.
func (c *Config) IconParams() (sprite.IconParams, error) {
	if len(c.Icon.Curve) != 4 {
		return sprite.IconParams{}, fmt.Errorf(
			"config: icon curve needs exactly 4 control points, got %d", len(c.Icon.Curve))
	}
	fg, err := parseForeground(c.Icon.Foreground)
	if err != nil {
		return sprite.IconParams{}, err
	}
	p := sprite.IconParams{
		Size:        c.Icon.Size,
		Scale:       c.Icon.Scale,
		StrokeWidth: c.Icon.StrokeWidth,
		Samples:     c.Icon.Samples,
		Curve: sprite.NewCubicBez(
			sprite.Pt(c.Icon.Curve[0].X, c.Icon.Curve[0].Y),
			sprite.Pt(c.Icon.Curve[1].X, c.Icon.Curve[1].Y),
			sprite.Pt(c.Icon.Curve[2].X, c.Icon.Curve[2].Y),
			sprite.Pt(c.Icon.Curve[3].X, c.Icon.Curve[3].Y),
		),
		Foreground: fg,
	}
	if err := p.Validate(); err != nil {
		return sprite.IconParams{}, err
	}
	return p, nil
}

// parseForeground validates a hex color string before handing it to
// sprite.Hex, which itself is lenient.
func parseForeground(s string) (sprite.RGBA, error) {
	t := strings.TrimPrefix(s, "#")
	switch len(t) {
	case 3, 4, 6, 8:
	default:
		return sprite.RGBA{}, fmt.Errorf("config: invalid foreground color %q", s)
	}
	for _, r := range t {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return sprite.RGBA{}, fmt.Errorf("config: invalid foreground color %q", s)
		}
	}
	return sprite.Hex(s), nil
}
