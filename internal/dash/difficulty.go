package dash

import "github.com/vovakirdan/tui-dash/internal/config"

// DifficultyModel owns the run's shared obstacle speed.
// Speed starts at the tier's value and rises by a fixed increment each time
// the score reaches the next threshold. It never decreases.
type DifficultyModel struct {
	initial   float64
	increment float64
	step      int
	threshold int
	raises    int
}

// NewDifficultyModel builds the model for a tier. Unknown tiers are an error.
func NewDifficultyModel(cfg config.DifficultyConfig, tier config.Tier) (*DifficultyModel, error) {
	speed, err := cfg.InitialSpeed(tier)
	if err != nil {
		return nil, err
	}
	return &DifficultyModel{
		initial:   speed,
		increment: cfg.SpeedIncrement,
		step:      cfg.ThresholdStep,
		threshold: cfg.FirstThreshold,
	}, nil
}

// Speed returns the current obstacle speed in world units per tick.
func (d *DifficultyModel) Speed() float64 {
	return d.initial + float64(d.raises)*d.increment
}

// NextThreshold returns the score at which the next raise happens.
func (d *DifficultyModel) NextThreshold() int {
	return d.threshold
}

// Escalate checks the score against the pending threshold and raises the
// speed at most once per call.
func (d *DifficultyModel) Escalate(score int) bool {
	if score < d.threshold {
		return false
	}
	d.raises++
	d.threshold += d.step
	return true
}
