package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/brain-trainer/config"
	"github.com/lixenwraith/brain-trainer/storage"
)

// flagValues holds command line overrides, applied over the environment only when set
type flagValues struct {
	envFile    string
	store      string
	dataDir    string
	sqlitePath string
	redisAddr  string
	seed       uint64
	grid       int
	duration   string
	locale     string
	volume     int
	noAudio    bool
	debug      bool
	ephemeral  bool
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&flagValues{})
}

// buildRootCmd binds every flag to f
func buildRootCmd(f *flagValues) *cobra.Command {
	root := &cobra.Command{
		Use:   "brain-trainer",
		Short: "Brain training mini-games for the terminal",
		Long: `Brain training mini-games for the terminal:

  Color Word    name the ink color, not the word, before time runs out
  Number Hunt   find 1, 2, 3... on a shuffled grid as fast as you can
  Memory Match  reveal every pair of a shuffled board

Best results are kept between runs.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runPlay(cmd.Context(), cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.envFile, "env-file", "", "read settings from this .env file instead of ./.env")
	pf.StringVar(&f.store, "store", "", "score store backend: file, sqlite, redis, memory")
	pf.StringVar(&f.dataDir, "data-dir", "", "directory of the file store")
	pf.StringVar(&f.sqlitePath, "sqlite-path", "", "database file of the sqlite store")
	pf.StringVar(&f.redisAddr, "redis-addr", "", "address of the redis store")
	pf.BoolVar(&f.ephemeral, "ephemeral", false, "keep scores in memory only")
	pf.StringVar(&f.locale, "locale", "", "UI language: en, sv")
	pf.BoolVar(&f.debug, "debug", false, "write a debug log under the log directory")

	fl := root.Flags()
	fl.Uint64Var(&f.seed, "seed", 0, "random seed, 0 picks one from the clock")
	fl.IntVar(&f.grid, "grid", 0, "number hunt grid size")
	fl.StringVar(&f.duration, "duration", "", "color word round length, e.g. 60s")
	fl.IntVar(&f.volume, "volume", 0, "master volume 0-100")
	fl.BoolVar(&f.noAudio, "no-audio", false, "disable sound cues")

	root.AddCommand(newScoresCmd(f), newVersionCmd())
	return root
}

// loadConfig reads the environment then applies the flags the user set
func loadConfig(cmd *cobra.Command, f *flagValues) (config.Config, error) {
	var files []string
	if f.envFile != "" {
		files = append(files, f.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return config.Config{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("store") {
		cfg.Store = storage.Backend(f.store)
	}
	if fl.Changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if fl.Changed("sqlite-path") {
		cfg.SQLitePath = f.sqlitePath
	}
	if fl.Changed("redis-addr") {
		cfg.RedisAddr = f.redisAddr
	}
	if f.ephemeral {
		cfg.Store = storage.BackendMemory
	}
	if fl.Changed("locale") {
		cfg.Locale = f.locale
	}
	if fl.Changed("debug") {
		cfg.Debug = f.debug
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("grid") {
		cfg.GridSize = f.grid
	}
	if fl.Changed("duration") {
		d, err := time.ParseDuration(f.duration)
		if err != nil {
			return config.Config{}, fmt.Errorf("--duration: %w", err)
		}
		cfg.ColorWordDuration = d
	}
	if fl.Changed("volume") {
		cfg.Volume = f.volume
	}
	if f.noAudio {
		cfg.Audio = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
