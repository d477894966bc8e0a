// Package config resolves run settings from the environment. Command-line
// flags take precedence; this package supplies their defaults.
package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix (CGMLST_DISTS_THREADS, ...).
const Prefix = "CGMLST_DISTS"

// Config holds every tunable with its default.
type Config struct {
	Quiet       bool   `envconfig:"QUIET" default:"false"`
	CSV         bool   `envconfig:"CSV" default:"false"`
	Mode        int    `envconfig:"MODE" default:"3"`
	MaxDistance uint   `envconfig:"MAX_DISTANCE" default:"9999"`
	Threads     int    `envconfig:"THREADS" default:"1"`
	Output      string `envconfig:"OUTPUT" default:"tsv"`
	MaxRows     int    `envconfig:"MAX_ROWS" default:"100000"`
	// MaxMemory is a size such as "8GiB"; "auto" uses physical RAM and
	// "0" disables the check.
	MaxMemory   string `envconfig:"MAX_MEMORY" default:"auto"`
	MetricsFile string `envconfig:"METRICS_FILE"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"console"`
	LogLevel    string `envconfig:"LOG_LEVEL"`

	S3Endpoint string `envconfig:"S3_ENDPOINT" default:"s3.amazonaws.com"`
	S3Region   string `envconfig:"S3_REGION"`
	S3Insecure bool   `envconfig:"S3_INSECURE" default:"false"`
}

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set are never overridden by .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
