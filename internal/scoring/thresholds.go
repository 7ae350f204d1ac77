package scoring

import (
	"fmt"

	"github.com/spigell/hh-assessor/internal/catalog"
)

const (
	// DefaultStrengthThreshold is the lowest percentage classified as a strength.
	DefaultStrengthThreshold = 0.80
	// DefaultDevelopingThreshold is the lowest percentage classified as developing.
	DefaultDevelopingThreshold = 0.50
)

// Thresholds are the cut points between levels, as fractions of the maximum.
type Thresholds struct {
	Strength   float64 `mapstructure:"strength" json:"strength"`
	Developing float64 `mapstructure:"developing" json:"developing"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Strength:   DefaultStrengthThreshold,
		Developing: DefaultDevelopingThreshold,
	}
}

func (t Thresholds) Validate() error {
	if t.Developing <= 0 || t.Strength > 1 || t.Developing >= t.Strength {
		return fmt.Errorf("thresholds must satisfy 0 < developing (%.2f) < strength (%.2f) <= 1", t.Developing, t.Strength)
	}
	return nil
}

// Classify maps an unrounded percentage to its level.
func (t Thresholds) Classify(pct float64) catalog.Level {
	switch {
	case pct >= t.Strength:
		return catalog.LevelStrength
	case pct >= t.Developing:
		return catalog.LevelDeveloping
	default:
		return catalog.LevelGrowthArea
	}
}
