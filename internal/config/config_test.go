package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/xmastree/internal/tree"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Palette != "classic" {
		t.Errorf("expected palette classic, got %s", cfg.Palette)
	}
	if cfg.Timing.Blink != 500*time.Millisecond {
		t.Errorf("expected blink 500ms, got %v", cfg.Timing.Blink)
	}
	if cfg.Timing.Char != 80*time.Millisecond || cfg.Timing.Line != 500*time.Millisecond {
		t.Errorf("unexpected typing delays %v/%v", cfg.Timing.Char, cfg.Timing.Line)
	}
	if len(cfg.Template) != len(tree.DefaultTemplate) {
		t.Error("default template not carried over")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultConfigDoesNotAlias(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Template[0] = "changed"
	if tree.DefaultTemplate[0] == "changed" {
		t.Error("default config shares its template with the tree package")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	data := []byte(`
palette: frost
colors:
  "1": "#000001"
  "*": "#eeeeee"
timing:
  blink: 250ms
lyrics:
  - "Jingle bells"
audio:
  backend: none
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Timing.Blink != 250*time.Millisecond {
		t.Errorf("expected blink 250ms, got %v", cfg.Timing.Blink)
	}
	if cfg.Timing.Char != 80*time.Millisecond {
		t.Errorf("unset char delay should keep default, got %v", cfg.Timing.Char)
	}
	if len(cfg.Lyrics) != 1 || cfg.Lyrics[0] != "Jingle bells" {
		t.Errorf("expected lyrics replaced, got %v", cfg.Lyrics)
	}
	if len(cfg.Template) != len(tree.DefaultTemplate) {
		t.Error("unset template should keep default")
	}

	p := cfg.GetPalette()
	if p.StarColor('1') != "#000001" {
		t.Errorf("expected override for 1, got %s", p.StarColor('1'))
	}
	if p.StarColor('2') != tree.PaletteFrost.Stars['2'] {
		t.Errorf("expected frost color for 2, got %s", p.StarColor('2'))
	}
	if p.Generic != "#eeeeee" {
		t.Errorf("expected generic override, got %s", p.Generic)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	cfg := DefaultConfig()
	cfg.Audio.File = "song.mp3"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Audio.File != "song.mp3" {
		t.Errorf("expected audio file to survive, got %q", loaded.Audio.File)
	}
	if loaded.Timing != cfg.Timing {
		t.Errorf("timing mismatch: %+v vs %+v", loaded.Timing, cfg.Timing)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty template", func(c *Config) { c.Template = nil }, ErrEmptyTemplate},
		{"zero blink", func(c *Config) { c.Timing.Blink = 0 }, ErrTiming},
		{"negative line", func(c *Config) { c.Timing.Line = -time.Second }, ErrTiming},
		{"palette", func(c *Config) { c.Palette = "nope" }, ErrUnknownPalette},
		{"backend", func(c *Config) { c.Audio.Backend = "alsa" }, ErrUnknownBackend},
		{"color key", func(c *Config) { c.Colors = map[string]string{"12": "#fff"} }, ErrBadKey},
		{"trunk key", func(c *Config) { c.Trunk = map[string]string{"": "#fff"} }, ErrBadKey},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("timing: [oops"), 0644)

	if _, err := Load(path); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}
