package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Motwg/RandomForest/pkg/errors"
	"github.com/Motwg/RandomForest/tree"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	want := tree.Params{K: 70, KDiv: 1.6, MaxDepth: 3, EntropyThreshold: 0.2, InfoGainThreshold: 0.02}
	if cfg.TreeParams() != want {
		t.Errorf("TreeParams() = %+v, want %+v", cfg.TreeParams(), want)
	}
	if cfg.Forest.Trees != 101 || cfg.Forest.Validate != 10 {
		t.Errorf("forest = %+v", cfg.Forest)
	}
	if cfg.Forest.Seed != nil {
		t.Error("defaults should not pin a seed")
	}
	if len(cfg.ForestOptions()) != 4 {
		t.Errorf("ForestOptions() has %d options, want 4", len(cfg.ForestOptions()))
	}
}

func TestDecodeOverridesDefaults(t *testing.T) {
	input := `
data:
  train: data/train.csv
  output: out.db
  charset: windows-1250
forest:
  trees: 11
  k_div: 2
  seed: 42
log:
  level: debug
  console: true
render:
  tree_png: tree.png
`
	cfg, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.Train != "data/train.csv" || cfg.Data.Movies != "movies.csv" || cfg.Data.Output != "out.db" {
		t.Errorf("data = %+v", cfg.Data)
	}
	if cfg.Forest.Trees != 11 || cfg.Forest.KDiv != 2 || cfg.Forest.K != 70 {
		t.Errorf("forest = %+v", cfg.Forest)
	}
	if cfg.Forest.Seed == nil || *cfg.Forest.Seed != 42 {
		t.Errorf("seed = %v", cfg.Forest.Seed)
	}
	if len(cfg.ForestOptions()) != 5 {
		t.Errorf("ForestOptions() has %d options, want 5 with a seed", len(cfg.ForestOptions()))
	}
	if opts := cfg.LogOptions(); opts.Level != "debug" || !opts.Console || opts.MaxSizeMB != 100 {
		t.Errorf("LogOptions() = %+v", opts)
	}
	if cfg.Render.TreePNG != "tree.png" || cfg.Render.StatsPNG != "" {
		t.Errorf("render = %+v", cfg.Render)
	}
	if files := cfg.Files(); files.Charset != "windows-1250" || files.Task != "task.csv" {
		t.Errorf("Files() = %+v", files)
	}
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader("\n  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Forest.Trees != 101 {
		t.Errorf("empty config should keep defaults, got %+v", cfg.Forest)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		validation bool
	}{
		{"unknown key", "forest:\n  tress: 3\n", false},
		{"bad type", "forest:\n  trees: many\n", false},
		{"zero trees", "forest:\n  trees: 0\n", true},
		{"negative validate", "forest:\n  validate: -1\n", true},
		{"negative k", "forest:\n  k: -5\n", true},
		{"negative k_div", "forest:\n  k_div: -1\n", true},
		{"bad level", "log:\n  level: loud\n", true},
		{"empty output", "data:\n  output: \"\"\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			var validation *errors.ValidationError
			if errors.As(err, &validation) != tt.validation {
				t.Errorf("ValidationError = %v, want %v (err: %v)", !tt.validation, tt.validation, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg.Forest.Trees != 101 {
		t.Fatalf("Load(\"\") = %+v, %v", cfg, err)
	}

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("forest:\n  max_depth: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Forest.MaxDepth != 5 {
		t.Errorf("MaxDepth = %d, want 5", cfg.Forest.MaxDepth)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
