// Package config holds the demo's preferences: loop rate settings, window
// size and overlay toggles. Preferences live in a YAML file next to the
// process working directory and can be overridden per-run with environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Path is the preferences file location, relative to the working directory.
const Path = "config/demo.yaml"

// Environment variables overriding the file values.
const (
	EnvTargetFPS = "DEMO_TARGET_FPS"
	EnvCappedFPS = "DEMO_CAPPED_FPS"
	EnvShowStats = "DEMO_SHOW_STATS"
)

// Prefs holds demo preferences. Persisted across runs; in-loop rate changes
// made with the keyboard are not written back unless Save is called.
type Prefs struct {
	TargetFPS    uint32 `yaml:"target_fps"`
	CappedFPS    bool   `yaml:"capped_fps"`
	WindowWidth  int32  `yaml:"window_width"`
	WindowHeight int32  `yaml:"window_height"`
	ShowStats    bool   `yaml:"show_stats"`
	StatsLog     string `yaml:"stats_log,omitempty"`
}

// Default returns the default demo preferences: 60 FPS capped, a modest
// window, stats overlay on.
func Default() Prefs {
	return Prefs{
		TargetFPS:    60,
		CappedFPS:    true,
		WindowWidth:  960,
		WindowHeight: 540,
		ShowStats:    true,
	}
}

// Load reads preferences from Path and applies environment overrides. A
// missing or invalid file falls back to Default() without error; a zero
// target rate is normalized to the default.
func Load() Prefs {
	p := Default()
	if data, err := os.ReadFile(Path); err == nil {
		if err := yaml.Unmarshal(data, &p); err != nil {
			p = Default()
		}
	}
	applyEnv(&p)
	if p.TargetFPS == 0 {
		p.TargetFPS = Default().TargetFPS
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		d := Default()
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	return p
}

// Save writes preferences to Path, creating the config directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.WriteFile(Path, data, 0644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// applyEnv overrides prefs from the environment. Unparseable values are
// ignored in favor of the file/default values.
func applyEnv(p *Prefs) {
	if v := os.Getenv(EnvTargetFPS); v != "" {
		if fps, err := strconv.ParseUint(v, 10, 32); err == nil {
			p.TargetFPS = uint32(fps)
		}
	}
	if v := os.Getenv(EnvCappedFPS); v != "" {
		if capped, err := strconv.ParseBool(v); err == nil {
			p.CappedFPS = capped
		}
	}
	if v := os.Getenv(EnvShowStats); v != "" {
		if show, err := strconv.ParseBool(v); err == nil {
			p.ShowStats = show
		}
	}
}
