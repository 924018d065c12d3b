package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDash loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/dash.yaml -> ./configs/dash.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that cannot be read or fails validation is an error;
// the implicit locations are skipped when broken.
func LoadDash(customPath string) (DashConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DashConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDash(data)
		if err != nil {
			return DashConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("dash.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDash(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "dash.yaml")); err == nil {
		if cfg, err := parseDash(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseDash(defaultDashYAML)
	if err != nil {
		return DefaultDashConfig(), nil
	}
	return cfg, nil
}

// parseDash decodes YAML over the defaults and validates the result.
func parseDash(data []byte) (DashConfig, error) {
	cfg := DefaultDashConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DashConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DashConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c DashConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.FPS <= 0 {
		errs = append(errs, fmt.Errorf("world.fps must be positive, got %d", c.World.FPS))
	}
	if c.Obstacles.MinDistance <= 0 || c.Obstacles.MinDistance > c.Obstacles.MaxDistance {
		errs = append(errs, fmt.Errorf("obstacle distance range [%d, %d] is invalid",
			c.Obstacles.MinDistance, c.Obstacles.MaxDistance))
	}
	if c.Obstacles.ChanceDivisor <= 0 {
		errs = append(errs, errors.New("obstacles.chance_divisor must be positive"))
	}
	if c.Obstacles.MinChance > c.Obstacles.MaxChance {
		errs = append(errs, errors.New("obstacles.min_chance exceeds max_chance"))
	}
	if c.Coins.ChancePercent < 0 || c.Coins.ChancePercent > 100 {
		errs = append(errs, fmt.Errorf("coins.chance_percent must be within 0..100, got %d", c.Coins.ChancePercent))
	}
	if c.Coins.MaxPerRun < 0 {
		errs = append(errs, errors.New("coins.max_per_run must not be negative"))
	}
	for _, t := range Tiers() {
		if speed, ok := c.Difficulty.Tiers[t]; !ok || speed <= 0 {
			errs = append(errs, fmt.Errorf("difficulty.tiers.%s must be a positive speed", t))
		}
	}
	if c.Difficulty.ThresholdStep <= 0 {
		errs = append(errs, errors.New("difficulty.threshold_step must be positive"))
	}
	if c.Difficulty.SpeedIncrement < 0 {
		errs = append(errs, errors.New("difficulty.speed_increment must not be negative"))
	}
	if c.Run.Lives <= 0 {
		errs = append(errs, fmt.Errorf("run.lives must be positive, got %d", c.Run.Lives))
	}
	seen := make(map[string]bool, len(c.Skins))
	free := 0
	for _, s := range c.Skins {
		if s.Price == 0 {
			free++
		}
		if s.Name == "" {
			errs = append(errs, errors.New("skin without a name"))
			continue
		}
		if seen[s.Name] {
			errs = append(errs, fmt.Errorf("duplicate skin %q", s.Name))
		}
		seen[s.Name] = true
		if s.Price < 0 {
			errs = append(errs, fmt.Errorf("skin %q has a negative price", s.Name))
		}
	}
	// A new player owns nothing, so at least one skin must be free.
	if free == 0 {
		errs = append(errs, errors.New("skins must include at least one free skin"))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
