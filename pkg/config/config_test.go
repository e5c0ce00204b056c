package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/layout"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Canvas != layout.DefaultCanvas() {
		t.Errorf("Canvas = %+v", cfg.Canvas)
	}
	if cfg.Batch.Concurrency != DefaultConcurrency {
		t.Errorf("Concurrency = %d", cfg.Batch.Concurrency)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, `
[canvas]
width = 720

[log]
level = "debug"
`)

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := layout.Canvas{Width: 720, Height: layout.DefaultCanvasHeight, Margin: layout.DefaultMargin}
	if cfg.Canvas != want {
		t.Errorf("Canvas = %+v, want %+v", cfg.Canvas, want)
	}
	if lvl, _ := cfg.LogLevel(); lvl != log.DebugLevel {
		t.Errorf("LogLevel() = %v, want debug", lvl)
	}
	if cfg.Preview.Scale != 1 || !cfg.Preview.ShowMargin || !cfg.Preview.Cache {
		t.Errorf("Preview = %+v, want defaults", cfg.Preview)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("optional Load() error: %v", err)
	}
	if cfg.Source != "" || cfg.Canvas != layout.DefaultCanvas() {
		t.Errorf("got %+v, want defaults", cfg)
	}

	_, err = Load(path, false)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("required Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"syntax", `[canvas`, errors.ErrCodeInvalidConfig},
		{"unknown key", "[canvas]\ndepth = 3\n", errors.ErrCodeInvalidConfig},
		{"bad level", "[log]\nlevel = \"loud\"\n", errors.ErrCodeInvalidConfig},
		{"zero concurrency", "[batch]\nconcurrency = 0\n", errors.ErrCodeInvalidConfig},
		{"negative scale", "[preview]\nscale = -1.0\n", errors.ErrCodeInvalidConfig},
		{"margin too big", "[canvas]\nmargin = 500\n", errors.ErrCodeInvalidCanvas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body), false)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Load() error = %v, want %s", err, tt.code)
			}
			if cfg.Canvas != layout.DefaultCanvas() {
				t.Errorf("failed Load() should return defaults, got %+v", cfg.Canvas)
			}
		})
	}
}

func TestPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	want := filepath.Join("/tmp/custom-config", AppName, FileName)
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}

func TestPathHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".config", AppName, FileName)
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Canvas.Margin = 12
	cfg.Batch.Concurrency = 9

	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Source") {
		t.Errorf("Source must not be encoded:\n%s", buf.String())
	}

	got, err := Load(writeConfig(t, buf.String()), false)
	if err != nil {
		t.Fatalf("Load() error: %v\n%s", err, buf.String())
	}
	if got.Canvas.Margin != 12 || got.Batch.Concurrency != 9 {
		t.Errorf("got %+v", got)
	}
}
