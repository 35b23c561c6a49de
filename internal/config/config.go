package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	App  AppConfig
	Data DataConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// DataConfig points at the flat-file model inputs. Everything is loaded
// once at startup; no other persistence exists.
type DataConfig struct {
	RulesDir     string
	TaxonomyPath string
	JobsPath     string
	ScoringPath  string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Data = DataConfig{
		RulesDir:     opt("RULES_DIR", "data/processed"),
		TaxonomyPath: opt("TAXONOMY_PATH", "data/processed/skill_taxonomy.csv"),
		JobsPath:     opt("JOBS_PATH", "data/processed/jobs.csv"),
		ScoringPath:  opt("SCORING_CONFIG", "scoring.yaml"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
