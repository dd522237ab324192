// Package controller owns navigation, the active game session and the score record
package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/audio"
	"github.com/lixenwraith/brain-trainer/board"
	"github.com/lixenwraith/brain-trainer/constants"
	"github.com/lixenwraith/brain-trainer/game"
	"github.com/lixenwraith/brain-trainer/score"
)

// View is the screen currently shown
type View int

const (
	ViewMenu View = iota
	ViewColorWord
	ViewNumberHunt
	ViewMemoryMatch
	ViewHighScores
)

func (v View) String() string {
	switch v {
	case ViewColorWord:
		return "color_word"
	case ViewNumberHunt:
		return "number_hunt"
	case ViewMemoryMatch:
		return "memory_match"
	case ViewHighScores:
		return "high_scores"
	default:
		return "menu"
	}
}

// viewFor maps a game to its screen
func viewFor(t game.GameType) View {
	switch t {
	case game.ColorWord:
		return ViewColorWord
	case game.NumberHunt:
		return ViewNumberHunt
	default:
		return ViewMemoryMatch
	}
}

// CuePlayer receives sound cues, satisfied by *audio.SoundManager
type CuePlayer interface {
	Play(cue audio.Cue)
}

type nopCues struct{}

func (nopCues) Play(audio.Cue) {}

// Options configures the sessions the controller builds
type Options struct {
	Source   board.Source
	Palette  []board.Color
	Icons    []board.Icon
	GridSize int
	Timing   game.Timing
	// SaveTimeout bounds one store write
	SaveTimeout time.Duration
}

// DefaultOptions returns the stock boards and delays with a time seeded source
func DefaultOptions() Options {
	return Options{
		Source:      board.NewSource(0),
		Palette:     board.DefaultPalette,
		Icons:       board.DefaultIcons,
		GridSize:    constants.NumberHuntGridSize,
		Timing:      game.DefaultTiming(),
		SaveTimeout: 2 * time.Second,
	}
}

func (o Options) validate() error {
	if o.Source == nil {
		return errors.New("nil random source")
	}
	if err := board.ValidatePalette(o.Palette); err != nil {
		return err
	}
	if len(o.Icons) == 0 {
		return board.ErrNoIcons
	}
	if o.GridSize < 1 {
		return fmt.Errorf("%w: %d", board.ErrInvalidGridSize, o.GridSize)
	}
	return o.Timing.Validate()
}

// Controller is the single writer of the score record
// Not safe for concurrent use, every call comes from the event loop
type Controller struct {
	opts   Options
	store  score.Store
	cues   CuePlayer
	logger zerolog.Logger

	view   View
	active game.Session
	record score.Record
	last   *game.Result
}

// New loads the stored record and opens on the menu
// A nil cue player disables sound cues
func New(ctx context.Context, store score.Store, cues CuePlayer, opts Options, logger zerolog.Logger) (*Controller, error) {
	if store == nil {
		return nil, errors.New("nil score store")
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("controller options: %w", err)
	}
	if cues == nil {
		cues = nopCues{}
	}
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = 2 * time.Second
	}

	logger = logger.With().Str("component", "controller").Logger()
	c := &Controller{
		opts:   opts,
		store:  store,
		cues:   cues,
		logger: logger,
		view:   ViewMenu,
		record: score.Load(ctx, store, logger),
	}
	c.logger.Debug().Interface("record", c.record).Msg("scores loaded")
	return c, nil
}

// Start replaces any active session with a new one of type t
// The replaced session is closed without a result
func (c *Controller) Start(now time.Time, t game.GameType) error {
	c.discard("replaced")

	var (
		s   game.Session
		err error
	)
	switch t {
	case game.ColorWord:
		s, err = game.NewColorWordSession(now, c.opts.Source, c.opts.Palette, c.opts.Timing, c.logger)
	case game.NumberHunt:
		s, err = game.NewNumberHuntSession(c.opts.Source, c.opts.GridSize, c.logger)
	case game.MemoryMatch:
		s, err = game.NewMemoryMatchSession(c.opts.Source, c.opts.Icons, c.opts.Timing, c.logger)
	default:
		return fmt.Errorf("start: unknown game type %q", t)
	}
	if err != nil {
		return fmt.Errorf("start %s: %w", t, err)
	}

	c.active = s
	c.view = viewFor(t)
	c.logger.Info().Str("session", s.ID()).Str("game", string(t)).Msg("game started")
	c.collect()
	return nil
}

// Update drives the active session to now and collects a finished result
func (c *Controller) Update(now time.Time) {
	if c.active == nil {
		return
	}
	c.active.Update(now)
	c.collect()
}

// SubmitOption answers the color/word problem with the option at index
func (c *Controller) SubmitOption(now time.Time, index int) bool {
	s, ok := c.active.(*game.ColorWordSession)
	if !ok {
		return false
	}
	accepted := s.SubmitOption(now, index)
	c.collect()
	return accepted
}

// TapCell taps a number hunt cell
func (c *Controller) TapCell(now time.Time, index int) bool {
	s, ok := c.active.(*game.NumberHuntSession)
	if !ok {
		return false
	}
	hit := s.TapCell(now, index)
	c.collect()
	return hit
}

// Flip turns a memory card
func (c *Controller) Flip(now time.Time, index int) bool {
	s, ok := c.active.(*game.MemoryMatchSession)
	if !ok {
		return false
	}
	accepted := s.Flip(now, index)
	c.collect()
	return accepted
}

// Back returns to the menu, an unfinished game is discarded without a result
func (c *Controller) Back() {
	c.discard("abandoned")
	c.view = ViewMenu
}

// ShowHighScores switches to the high score view, discarding any running game
func (c *Controller) ShowHighScores() {
	c.discard("abandoned")
	c.view = ViewHighScores
}

// DismissResult clears the last result banner, the record is untouched
func (c *Controller) DismissResult() {
	c.last = nil
}

// Scores returns the current best record
func (c *Controller) Scores() score.Record {
	return c.record
}

// LastResult returns the most recently finished result until dismissed
func (c *Controller) LastResult() (game.Result, bool) {
	if c.last == nil {
		return game.Result{}, false
	}
	return *c.last, true
}

// Active returns the running session, nil on the menu and high score views
func (c *Controller) Active() game.Session {
	return c.active
}

// View returns the current screen
func (c *Controller) View() View {
	return c.view
}

// Close cancels the active session, the store is owned by the caller
func (c *Controller) Close() {
	c.discard("shutdown")
}

func (c *Controller) discard(reason string) {
	if c.active == nil {
		return
	}
	c.active.Close()
	c.logger.Info().Str("session", c.active.ID()).Str("game", string(c.active.Type())).Str("reason", reason).Msg("game discarded")
	c.active = nil
}

// collect forwards queued session events as cues and completes a finished session
func (c *Controller) collect() {
	if c.active == nil {
		return
	}
	for _, e := range c.active.DrainEvents() {
		if cue, ok := cueFor(e.Type); ok {
			c.cues.Play(cue)
		}
	}

	res, ok := c.active.Result()
	if !ok {
		return
	}
	c.active.Close()
	c.active = nil
	c.complete(res)
}

// complete merges a result, persists the record and returns to the menu
func (c *Controller) complete(res game.Result) {
	merged := score.Merge(c.record, res)
	improved := !merged.Equal(c.record)
	c.record = merged
	c.last = &res
	c.view = ViewMenu

	c.logger.Info().Str("game", string(res.GameType)).Int64("value", res.Value).Bool("record", improved).Msg("game completed")

	ctx, cancel := context.WithTimeout(context.Background(), c.opts.SaveTimeout)
	defer cancel()
	if err := score.Save(ctx, c.store, c.record); err != nil {
		// in-memory record stays authoritative for this process
		c.logger.Error().Err(err).Msg("score record not persisted")
	}
}

func cueFor(t game.EventType) (audio.Cue, bool) {
	switch t {
	case game.EventCorrect:
		return audio.CueCorrect, true
	case game.EventIncorrect:
		return audio.CueIncorrect, true
	case game.EventMatch:
		return audio.CueMatch, true
	case game.EventMismatch:
		return audio.CueMismatch, true
	case game.EventFinished:
		return audio.CueFinish, true
	default:
		return 0, false
	}
}
