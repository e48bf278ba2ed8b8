package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Output formats
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// Stdout is the output path that writes to standard output
const Stdout = "-"

// Config is the full tracer configuration, decoded from TOML
type Config struct {
	Image    ImageConfig    `toml:"image"`
	Gradient GradientConfig `toml:"gradient"`
	Output   OutputConfig   `toml:"output"`
	Render   RenderConfig   `toml:"render"`
	Preview  PreviewConfig  `toml:"preview"`
	Chime    ChimeConfig    `toml:"chime"`
}

type ImageConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type GradientConfig struct {
	// Constant blue channel, unit range
	Blue float32 `toml:"blue"`
}

type OutputConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
	// Gamma encodes linear shader output as sRGB
	Gamma bool `toml:"gamma"`
}

type RenderConfig struct {
	Parallel bool `toml:"parallel"`
}

type PreviewConfig struct {
	Enabled bool `toml:"enabled"`
}

type ChimeConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
}

// Default reproduces the reference gradient: 256x256, blue 0.25, P3 on stdout
func Default() *Config {
	return &Config{
		Image:    ImageConfig{Width: 256, Height: 256},
		Gradient: GradientConfig{Blue: 0.25},
		Output:   OutputConfig{Path: Stdout, Format: FormatPPM},
		Chime:    ChimeConfig{Volume: 0.5, SampleRate: 44100},
	}
}

// Load decodes the TOML file at path over Default and validates the result
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over Default, rejecting unknown keys like Load
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges; the gradient divides by width-1 and height-1 so both must exceed 1
func (c *Config) Validate() error {
	if c.Image.Width < 2 || c.Image.Height < 2 {
		return fmt.Errorf("%w: image size %dx%d, each side must be at least 2", ErrInvalid, c.Image.Width, c.Image.Height)
	}
	if c.Gradient.Blue < 0 || c.Gradient.Blue > 1 {
		return fmt.Errorf("%w: gradient.blue %g outside [0, 1]", ErrInvalid, c.Gradient.Blue)
	}
	switch c.Output.Format {
	case FormatPPM, FormatPNG:
	default:
		return fmt.Errorf("%w: output.format %q, want %q or %q", ErrInvalid, c.Output.Format, FormatPPM, FormatPNG)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("%w: output.path is empty", ErrInvalid)
	}
	if c.Chime.Volume < 0 || c.Chime.Volume > 1 {
		return fmt.Errorf("%w: chime.volume %g outside [0, 1]", ErrInvalid, c.Chime.Volume)
	}
	if c.Chime.SampleRate <= 0 {
		return fmt.Errorf("%w: chime.sample_rate %d", ErrInvalid, c.Chime.SampleRate)
	}
	return nil
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// WriteFile encodes cfg to path, replacing any existing file
func WriteFile(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, cfg); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
