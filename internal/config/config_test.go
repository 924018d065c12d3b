package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parseDash(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultDashConfig()) {
		t.Errorf("embedded defaults differ from DefaultDashConfig():\n%+v\n%+v", cfg, DefaultDashConfig())
	}
}

func TestLoadDashCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	doc := []byte("difficulty:\n  tiers:\n    easy: 4\nrun:\n  end_hold: 500ms\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDash(path)
	if err != nil {
		t.Fatalf("LoadDash() failed: %v", err)
	}

	if cfg.Difficulty.Tiers[TierEasy] != 4 {
		t.Errorf("easy speed = %v, expected 4", cfg.Difficulty.Tiers[TierEasy])
	}
	if cfg.Difficulty.Tiers[TierHard] != 7 {
		t.Errorf("hard speed should keep its default, got %v", cfg.Difficulty.Tiers[TierHard])
	}
	if cfg.Run.EndHold != 500*time.Millisecond {
		t.Errorf("end hold = %v, expected 500ms", cfg.Run.EndHold)
	}
	if cfg.Run.Lives != 3 {
		t.Errorf("lives should keep default 3, got %d", cfg.Run.Lives)
	}
}

func TestLoadDashRejectsInvalidCustomConfig(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"inverted distance range", "obstacles:\n  min_distance: 300\n  max_distance: 150\n"},
		{"zero lives", "run:\n  lives: 0\n"},
		{"duplicate skin", "skins:\n  - {name: a}\n  - {name: a}\n"},
		{"no free skin", "skins:\n  - {name: a, glyph: x, color: red, price: 3}\n"},
		{"malformed yaml", "world: [1, 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dash.yaml")
			if err := os.WriteFile(path, []byte(tc.doc), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadDash(path); err == nil {
				t.Error("LoadDash() should fail")
			}
		})
	}
}

func TestLoadDashMissingCustomPath(t *testing.T) {
	if _, err := LoadDash(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadDash() should fail for a missing custom path")
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{"easy", TierEasy, false},
		{"Medium", TierMedium, false},
		{" hard ", TierHard, false},
		{"normal", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseTier(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownTier) {
				t.Errorf("ParseTier(%q) error = %v, expected ErrUnknownTier", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseTier(%q) = %q, %v; expected %q", tc.in, got, err, tc.want)
		}
	}
}

func TestInitialSpeed(t *testing.T) {
	d := DefaultDashConfig().Difficulty

	for tier, want := range map[Tier]float64{TierEasy: 3, TierMedium: 5, TierHard: 7} {
		got, err := d.InitialSpeed(tier)
		if err != nil || got != want {
			t.Errorf("InitialSpeed(%s) = %v, %v; expected %v", tier, got, err, want)
		}
	}

	if _, err := d.InitialSpeed("insane"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("InitialSpeed(insane) error = %v, expected ErrUnknownTier", err)
	}
}
