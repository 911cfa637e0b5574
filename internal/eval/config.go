package eval

// Thresholds is the per-difficulty minimum similarity required before a
// local fuzzy verdict is trusted instead of deferring to the semantic
// fallback.
type Thresholds struct {
	Beginner     float64 `yaml:"beginner" json:"beginner"`
	Intermediate float64 `yaml:"intermediate" json:"intermediate"`
	Advanced     float64 `yaml:"advanced" json:"advanced"`
}

// Bands are the global similarity cutoffs applied once confidence is
// met: at or above AlwaysCorrect any difficulty passes ("minor typo");
// between BeginnerPass and AlwaysCorrect only beginners pass.
type Bands struct {
	AlwaysCorrect float64 `yaml:"always_correct" json:"always_correct"`
	BeginnerPass  float64 `yaml:"beginner_pass" json:"beginner_pass"`
}

// Config bundles the only tunable tables in the engine. Hosts override
// it at construction; the zero value is not usable, start from
// DefaultConfig.
type Config struct {
	Thresholds Thresholds `yaml:"thresholds" json:"thresholds"`
	Bands      Bands      `yaml:"bands" json:"bands"`
}

// DefaultConfig returns the stock tables. At advanced the confidence
// threshold already equals the always-correct band, so the fuzzy tier
// only resolves near-exact answers locally and defers the rest.
func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{
			Beginner:     0.70,
			Intermediate: 0.85,
			Advanced:     0.95,
		},
		Bands: Bands{
			AlwaysCorrect: 0.95,
			BeginnerPass:  0.85,
		},
	}
}

// ThresholdFor resolves a difficulty tag to its confidence threshold.
// Unknown tags resolve to intermediate; grading must never hard-fail a
// submission over a bad enum value.
func (c Config) ThresholdFor(difficulty string) float64 {
	switch difficulty {
	case DifficultyBeginner:
		return c.Thresholds.Beginner
	case DifficultyAdvanced:
		return c.Thresholds.Advanced
	default:
		return c.Thresholds.Intermediate
	}
}
