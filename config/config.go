// Package config loads runtime settings from the environment and an optional .env file
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/constants"
	"github.com/lixenwraith/brain-trainer/locale"
	"github.com/lixenwraith/brain-trainer/storage"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "BRAIN_"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every runtime setting
type Config struct {
	// Storage
	Store       storage.Backend `env:"STORE"        envDefault:"file"`
	DataDir     string          `env:"DATA_DIR"     envDefault:"data"`
	SQLitePath  string          `env:"SQLITE_PATH"  envDefault:"data/brain.db"`
	RedisAddr   string          `env:"REDIS_ADDR"   envDefault:"localhost:6379"`
	RedisDB     int             `env:"REDIS_DB"     envDefault:"0"`
	RedisPrefix string          `env:"REDIS_PREFIX" envDefault:"brain-trainer:"`

	// Games
	Seed              uint64        `env:"SEED"`
	GridSize          int           `env:"GRID_SIZE"           envDefault:"5"`
	ColorWordDuration time.Duration `env:"COLOR_WORD_DURATION" envDefault:"60s"`

	// Presentation
	Audio  bool   `env:"AUDIO"  envDefault:"true"`
	Volume int    `env:"VOLUME" envDefault:"50"`
	Locale string `env:"LOCALE" envDefault:"en"`

	// Diagnostics
	Debug    bool   `env:"DEBUG"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir   string `env:"LOG_DIR"   envDefault:"logs"`
}

// Load reads the optional .env files then parses the environment
// Missing .env files are ignored, variables already set win over file values
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	switch c.Store {
	case storage.BackendFile, storage.BackendSQLite, storage.BackendRedis, storage.BackendMemory:
	default:
		return fmt.Errorf("%w: store %q", ErrInvalidConfig, c.Store)
	}
	if c.GridSize < 1 || c.GridSize > constants.MaxNumberHuntGridSize {
		return fmt.Errorf("%w: grid size %d not in 1..%d", ErrInvalidConfig, c.GridSize, constants.MaxNumberHuntGridSize)
	}
	if c.ColorWordDuration < time.Second {
		return fmt.Errorf("%w: color word duration %s below 1s", ErrInvalidConfig, c.ColorWordDuration)
	}
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("%w: volume %d not in 0..100", ErrInvalidConfig, c.Volume)
	}
	if _, ok := locale.ParseTag(c.Locale); !ok {
		return fmt.Errorf("%w: locale %q", ErrInvalidConfig, c.Locale)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// StorageOptions returns the backend selection for storage.Open
func (c Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:     c.Store,
		DataDir:     c.DataDir,
		SQLitePath:  c.SQLitePath,
		RedisAddr:   c.RedisAddr,
		RedisDB:     c.RedisDB,
		RedisPrefix: c.RedisPrefix,
	}
}

// Level returns the parsed log level, info when unparsable
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
