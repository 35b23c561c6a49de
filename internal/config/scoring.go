package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"skill-path/internal/domain/gap"
	"skill-path/internal/domain/recommend"
)

// ScoringConfig carries the hand-tuned weights and path-shaping knobs.
// The YAML file is optional; absent values keep the defaults so a fresh
// checkout runs without any config file.
type ScoringConfig struct {
	GapWeights    gap.Weights            `yaml:"gap_weights"`
	ScoreWeights  recommend.ScoreWeights `yaml:"score_weights"`
	MaxPhases     int                    `yaml:"max_phases"`
	WeeksPerSkill float64                `yaml:"weeks_per_skill"`
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		GapWeights:    gap.DefaultWeights(),
		ScoreWeights:  recommend.DefaultScoreWeights(),
		MaxPhases:     5,
		WeeksPerSkill: 1.5,
	}
}

// LoadScoringConfig reads the scoring YAML. A missing file returns the
// defaults without error.
func LoadScoringConfig(path string) (ScoringConfig, error) {
	cfg := DefaultScoringConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultScoringConfig(), err
	}

	if cfg.MaxPhases <= 0 {
		cfg.MaxPhases = 5
	}
	if cfg.WeeksPerSkill <= 0 {
		cfg.WeeksPerSkill = 1.5
	}
	return cfg, nil
}
