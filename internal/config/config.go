// Package config provides YAML-based configuration for the dash runner:
// world geometry, physics constants, spawn tuning, difficulty tiers and
// the skin catalog.
package config

import "time"

// DashConfig contains all tunables for a run and the cosmetic catalog.
type DashConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Coins      CoinConfig       `yaml:"coins"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Run        RunConfig        `yaml:"run"`
	Skins      []SkinConfig     `yaml:"skins"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
}

// PlayerConfig defines the avatar box and its physics.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartOffset  float64 `yaml:"start_offset"`  // initial y = world height - start_offset
	GroundOffset float64 `yaml:"ground_offset"` // ground line = world height - ground_offset
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
}

// ObstacleConfig defines obstacle geometry and spawn tuning.
type ObstacleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MinDistance    int     `yaml:"min_distance"`
	MaxDistance    int     `yaml:"max_distance"`
	SpawnMargin    float64 `yaml:"spawn_margin"`    // first anchor = world width + spawn_margin
	DespawnX       float64 `yaml:"despawn_x"`       // removed once x drops below this
	GroundOffset   float64 `yaml:"ground_offset"`   // low lane y = world height - ground_offset
	ElevatedOffset float64 `yaml:"elevated_offset"` // high lane y = world height - elevated_offset
	ChanceDivisor  int     `yaml:"chance_divisor"`  // chance = clamp(score / divisor, min, max)
	MinChance      int     `yaml:"min_chance"`
	MaxChance      int     `yaml:"max_chance"`
	ChanceScale    int     `yaml:"chance_scale"` // roll passes when draw < chance * scale
}

// CoinConfig defines coin geometry and spawn tuning.
type CoinConfig struct {
	Size          float64 `yaml:"size"`
	SpawnMargin   float64 `yaml:"spawn_margin"`
	HeightOffset  float64 `yaml:"height_offset"` // y = world height - height_offset
	Speed         float64 `yaml:"speed"`
	DespawnX      float64 `yaml:"despawn_x"`
	ChancePercent int     `yaml:"chance_percent"`
	MaxPerRun     int     `yaml:"max_per_run"`
}

// DifficultyConfig maps tiers to starting speeds and defines escalation.
type DifficultyConfig struct {
	Tiers          map[Tier]float64 `yaml:"tiers"`
	FirstThreshold int              `yaml:"first_threshold"`
	ThresholdStep  int              `yaml:"threshold_step"`
	SpeedIncrement float64          `yaml:"speed_increment"`
}

// RunConfig defines lives and terminal conditions.
type RunConfig struct {
	Lives        int           `yaml:"lives"`
	VictoryScore int           `yaml:"victory_score"`
	EndHold      time.Duration `yaml:"end_hold"`
}

// SkinConfig describes one cosmetic skin. Price 0 means always unlocked.
type SkinConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	Price int    `yaml:"price"`
}

// GroundY returns the player's ground line.
func (c DashConfig) GroundY() float64 {
	return c.World.Height - c.Player.GroundOffset
}
