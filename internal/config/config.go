package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lingua-eval/internal/eval"
)

type Config struct {
	Port string

	// FallbackEngine selects the default semantic provider: "gpt",
	// "gemini", or "none" to grade with local tiers only.
	FallbackEngine string

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	// Eval holds the threshold and band tables, defaults overridden by
	// the optional EVAL_CONFIG_FILE.
	Eval eval.Config
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "8000"),

		FallbackEngine: getEnv("FALLBACK_ENGINE", "gpt"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		Eval: eval.DefaultConfig(),
	}

	if path := os.Getenv("EVAL_CONFIG_FILE"); path != "" {
		ec, err := LoadEvalConfig(path)
		if err != nil {
			return nil, err
		}
		cfg.Eval = ec
	}
	return cfg, nil
}

// LoadEvalConfig reads a YAML threshold/band override file. Fields left
// out keep their defaults; bad values are rejected here so the engine
// never runs with an unusable table.
func LoadEvalConfig(path string) (eval.Config, error) {
	ec := eval.DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return ec, fmt.Errorf("read eval config: %w", err)
	}
	if err := yaml.Unmarshal(b, &ec); err != nil {
		return ec, fmt.Errorf("parse eval config %s: %w", path, err)
	}
	if err := validate(ec); err != nil {
		return ec, fmt.Errorf("eval config %s: %w", path, err)
	}
	return ec, nil
}

func validate(ec eval.Config) error {
	ratios := map[string]float64{
		"thresholds.beginner":     ec.Thresholds.Beginner,
		"thresholds.intermediate": ec.Thresholds.Intermediate,
		"thresholds.advanced":     ec.Thresholds.Advanced,
		"bands.always_correct":    ec.Bands.AlwaysCorrect,
		"bands.beginner_pass":     ec.Bands.BeginnerPass,
	}
	for name, v := range ratios {
		if v <= 0 || v > 1 {
			return fmt.Errorf("%s must be in (0,1], got %v", name, v)
		}
	}
	if ec.Bands.BeginnerPass > ec.Bands.AlwaysCorrect {
		return fmt.Errorf("bands.beginner_pass %v exceeds bands.always_correct %v", ec.Bands.BeginnerPass, ec.Bands.AlwaysCorrect)
	}
	return nil
}
