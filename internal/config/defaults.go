package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the built-in configuration.
// It mirrors defaults/dash.yaml and backs it up if the embed cannot be parsed.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		World: WorldConfig{Width: 800, Height: 600, FPS: 60},
		Player: PlayerConfig{
			X:            10,
			Width:        50,
			Height:       50,
			StartOffset:  100,
			GroundOffset: 50,
			Gravity:      0.5,
			JumpImpulse:  -15,
		},
		Obstacles: ObstacleConfig{
			Width:          50,
			Height:         50,
			MinDistance:    150,
			MaxDistance:    300,
			SpawnMargin:    50,
			DespawnX:       -50,
			GroundOffset:   50,
			ElevatedOffset: 200,
			ChanceDivisor:  400,
			MinChance:      1,
			MaxChance:      10,
			ChanceScale:    2,
		},
		Coins: CoinConfig{
			Size:          30,
			SpawnMargin:   50,
			HeightOffset:  80,
			Speed:         1,
			DespawnX:      -30,
			ChancePercent: 2,
			MaxPerRun:     5,
		},
		Difficulty: DifficultyConfig{
			Tiers: map[Tier]float64{
				TierEasy:   3,
				TierMedium: 5,
				TierHard:   7,
			},
			FirstThreshold: 1000,
			ThresholdStep:  1000,
			SpeedIncrement: 0.2,
		},
		Run: RunConfig{
			Lives:        3,
			VictoryScore: 4000,
			EndHold:      2 * time.Second,
		},
		Skins: []SkinConfig{
			{Name: "Skin 1", Glyph: "■", Color: "green"},
			{Name: "Skin 2", Glyph: "●", Color: "cyan"},
			{Name: "Skin 3", Glyph: "◆", Color: "magenta"},
			{Name: "Skin 4", Glyph: "▣", Color: "orange"},
			{Name: "Skin 5", Glyph: "☻", Color: "white"},
			{Name: "Бобер", Glyph: "B", Color: "orange", Price: 5},
			{Name: "Шлепа", Glyph: "Ш", Color: "yellow", Price: 5},
			{Name: "Огузок", Glyph: "O", Color: "bright_yellow", Price: 10},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultDashYAML
}
