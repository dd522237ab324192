// Package storage provides the durable key-value backends the score record persists through.
//
// Backends:
//   - file:   one JSON document per key under a data directory (default)
//   - sqlite: a single kv table in a pure-Go SQLite database
//   - redis:  plain string keys under a namespace prefix
//   - memory: process-local map, used by tests and --ephemeral play
//
// Every backend satisfies score.Store.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/score"
)

var (
	ErrStoreClosed    = errors.New("store closed")
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrEmptyKey       = errors.New("empty key")
)

// Backend names a storage implementation
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// Options selects and configures a backend
type Options struct {
	Backend     Backend
	DataDir     string // file backend directory
	SQLitePath  string // sqlite backend database file
	RedisAddr   string
	RedisDB     int
	RedisPrefix string
}

// Open creates the configured backend
func Open(ctx context.Context, opts Options, logger zerolog.Logger) (score.Store, error) {
	logger = logger.With().Str("backend", string(opts.Backend)).Logger()

	var (
		st  score.Store
		err error
	)
	switch opts.Backend {
	case BackendFile, "":
		st, err = NewFileStore(opts.DataDir)
	case BackendSQLite:
		st, err = NewSQLiteStore(ctx, opts.SQLitePath)
	case BackendRedis:
		st, err = NewRedisStore(ctx, opts.RedisAddr, opts.RedisDB, opts.RedisPrefix)
	case BackendMemory:
		st = NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("score store opened")
	return st, nil
}
