package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/xmastree/internal/blink"
	"github.com/san-kum/xmastree/internal/tree"
	"github.com/san-kum/xmastree/internal/typewriter"
)

const (
	DefaultPalette = "classic"
	DefaultBackend = "beep"
	DefaultVolume  = 0.0
)

var Backends = []string{"beep", "portaudio", "none"}

type Config struct {
	Palette  string            `yaml:"palette"`
	Colors   map[string]string `yaml:"colors,omitempty"`
	Trunk    map[string]string `yaml:"trunk,omitempty"`
	Template []string          `yaml:"template"`
	Lyrics   []string          `yaml:"lyrics"`
	Timing   TimingConfig      `yaml:"timing"`
	Audio    AudioConfig       `yaml:"audio"`
	LogFile  string            `yaml:"log_file,omitempty"`
}

type TimingConfig struct {
	Blink time.Duration `yaml:"blink"`
	Char  time.Duration `yaml:"char"`
	Line  time.Duration `yaml:"line"`
}

type AudioConfig struct {
	Backend string  `yaml:"backend"`
	File    string  `yaml:"file,omitempty"`
	Volume  float64 `yaml:"volume"`
}

func DefaultConfig() *Config {
	return &Config{
		Palette:  DefaultPalette,
		Template: append([]string(nil), tree.DefaultTemplate...),
		Lyrics:   append([]string(nil), typewriter.DefaultLyrics...),
		Timing: TimingConfig{
			Blink: blink.DefaultInterval,
			Char:  typewriter.DefaultCharDelay,
			Line:  typewriter.DefaultLineDelay,
		},
		Audio: AudioConfig{
			Backend: DefaultBackend,
			Volume:  DefaultVolume,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if len(c.Template) == 0 {
		return ErrEmptyTemplate
	}
	if c.Timing.Blink <= 0 || c.Timing.Char <= 0 || c.Timing.Line <= 0 {
		return fmt.Errorf("%w: blink=%v char=%v line=%v", ErrTiming, c.Timing.Blink, c.Timing.Char, c.Timing.Line)
	}
	if _, ok := tree.GetPalette(c.Palette); !ok {
		return fmt.Errorf("%w: %q (available: %v)", ErrUnknownPalette, c.Palette, tree.PaletteNames())
	}
	if !validBackend(c.Audio.Backend) {
		return fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, c.Audio.Backend, Backends)
	}
	for key := range c.Colors {
		if len([]rune(key)) != 1 {
			return fmt.Errorf("%w: color key %q", ErrBadKey, key)
		}
	}
	for key := range c.Trunk {
		if len([]rune(key)) != 1 {
			return fmt.Errorf("%w: trunk key %q", ErrBadKey, key)
		}
	}
	return nil
}

// GetPalette resolves the named preset and applies color overrides.
// Call Validate first.
func (c *Config) GetPalette() tree.Palette {
	p, ok := tree.GetPalette(c.Palette)
	if !ok {
		p = tree.PaletteClassic.Clone()
	}
	for key, color := range c.Colors {
		id := []rune(key)[0]
		if id == tree.GenericTag {
			p.Generic = color
			continue
		}
		p.Stars[id] = color
	}
	for key, color := range c.Trunk {
		p.Trunk[[]rune(key)[0]] = color
	}
	return p
}

func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
