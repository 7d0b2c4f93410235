// Package config loads runtime configuration from the environment, with an
// optional .env file for local runs.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"neurostat/internal/errors"
)

// Config is the full runtime configuration.
type Config struct {
	Paths    PathsConfig
	Database DatabaseConfig
	Analysis AnalysisConfig
}

// PathsConfig locates the inputs and outputs of a run.
type PathsConfig struct {
	Catalog string
	Mask    string
	Atlas   string
	Output  string
}

// DatabaseConfig configures the optional Postgres catalog source. When URL
// is empty, the catalog is read from the file in Paths.Catalog.
type DatabaseConfig struct {
	URL string
}

// AnalysisConfig tunes the analysis itself.
type AnalysisConfig struct {
	Parallelism int
	SkipAnova   bool
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		logrus.Debug("loaded .env file")
	}
	cfg := &Config{
		Paths: PathsConfig{
			Catalog: os.Getenv("NEUROSTAT_CATALOG"),
			Mask:    os.Getenv("NEUROSTAT_MASK"),
			Atlas:   os.Getenv("NEUROSTAT_ATLAS"),
			Output:  getEnvDefault("NEUROSTAT_OUTPUT", "output"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("NEUROSTAT_DATABASE_URL"),
		},
		Analysis: AnalysisConfig{
			Parallelism: getEnvInt("NEUROSTAT_PARALLELISM", 0),
			SkipAnova:   getEnvBool("NEUROSTAT_SKIP_ANOVA", false),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Paths.Mask == "" {
		return errors.ConfigInvalid("NEUROSTAT_MASK is required")
	}
	if c.Paths.Catalog == "" && c.Database.URL == "" {
		return errors.ConfigInvalid("set NEUROSTAT_CATALOG or NEUROSTAT_DATABASE_URL")
	}
	if c.Analysis.Parallelism < 0 {
		return errors.ConfigInvalid("NEUROSTAT_PARALLELISM must not be negative")
	}
	return nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithField("key", key).Warn("ignoring non-integer environment value")
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.WithField("key", key).Warn("ignoring non-boolean environment value")
		return fallback
	}
	return b
}
