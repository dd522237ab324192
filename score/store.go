package score

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Store is the durable key-value capability scores persist through
type Store interface {
	// Get returns the raw value, false when the key has never been set
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Load reads the score record, falling back to the default record on any failure
// Failures are logged, never returned: a broken store must not keep the games from starting
func Load(ctx context.Context, st Store, logger zerolog.Logger) Record {
	data, ok, err := st.Get(ctx, RecordKey)
	switch {
	case err != nil:
		logger.Warn().Err(err).Msg("score record unreadable, using defaults")
		return DefaultRecord()
	case !ok:
		logger.Debug().Msg("no score record stored, using defaults")
		return DefaultRecord()
	}

	r, err := Decode(data)
	if err != nil {
		logger.Warn().Err(err).Msg("score record malformed, using defaults")
		return DefaultRecord()
	}
	return r
}

// Save writes the score record
func Save(ctx context.Context, st Store, r Record) error {
	data, err := Encode(r)
	if err != nil {
		return fmt.Errorf("encode score record: %w", err)
	}
	if err := st.Set(ctx, RecordKey, data); err != nil {
		return fmt.Errorf("store score record: %w", err)
	}
	return nil
}
