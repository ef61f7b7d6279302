package engine

import (
	"connect4/game"
	"connect4/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Update describes one applied move and the board it produced.
type Update struct {
	Column int
	Player game.CellState
	Board  *game.Board
	Hash   uint64
}

// UpdateGetter returns the next pending update without blocking. ok is false when none is pending.
type UpdateGetter func() (u Update, ok bool)

type Engine interface {
	// Init starts a new game and returns its empty board
	Init() (*game.Board, UpdateGetter)
	// Play drops a disc for the player to move
	Play(column int) error
	Board() *game.Board
	History() []Update
}

type config struct {
	dims      game.Dimensions
	logger    zerolog.Logger
	seed      uint64
	collector metrics.Collector
}

type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		dims:      game.Dimensions{Rows: game.StandardRows, Cols: game.StandardCols},
		logger:    log.Logger,
		seed:      1,
		collector: metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithDimensions(rows, cols int) Option {
	return func(c *config) {
		c.dims = game.Dimensions{Rows: rows, Cols: cols}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithSeed seeds the random fallback used when a player fails to move.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(c *config) {
		c.collector = collector
	}
}
