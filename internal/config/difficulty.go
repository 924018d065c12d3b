package config

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is a named difficulty preset.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// ErrUnknownTier is returned for a difficulty name outside the known tiers.
var ErrUnknownTier = errors.New("unknown difficulty tier")

// Tiers lists the tiers in menu order.
func Tiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// ParseTier resolves a tier name. It never falls back to a default.
func ParseTier(name string) (Tier, error) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(name))); t {
	case TierEasy, TierMedium, TierHard:
		return t, nil
	default:
		return "", fmt.Errorf("config: %w %q (want easy, medium or hard)", ErrUnknownTier, name)
	}
}

// Title returns the display name of the tier.
func (t Tier) Title() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	default:
		return string(t)
	}
}

// InitialSpeed returns the starting obstacle speed for a tier.
func (d DifficultyConfig) InitialSpeed(t Tier) (float64, error) {
	speed, ok := d.Tiers[t]
	if !ok {
		return 0, fmt.Errorf("config: %w %q", ErrUnknownTier, t)
	}
	return speed, nil
}
