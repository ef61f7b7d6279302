// Package tournament runs a single-elimination bracket of best-of matches between players.
package tournament

import (
	"connect4/game"
	"connect4/meta"
	"connect4/metrics"
	"connect4/player"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrNoEntrants    = errors.New("tournament needs at least one entrant")
	ErrInvalidConfig = errors.New("invalid tournament configuration")
	ErrNoChampion    = errors.New("every remaining player was eliminated")
	ErrStalled       = errors.New("round did not shrink the field")
)

type GameResult struct {
	GameNumber int    `json:"game_number"`
	Red        string `json:"red"`
	Yellow     string `json:"yellow"`
	Winner     string `json:"winner"` // Empty on a draw
}

type MatchResult struct {
	MatchNumber int          `json:"match_number"`
	Player1     string       `json:"player_1"`
	Player2     string       `json:"player_2"`
	Wins1       int          `json:"wins_1"`
	Wins2       int          `json:"wins_2"`
	Games       []GameResult `json:"games"`
	Winner      string       `json:"winner"` // Empty when neither or both advance
	TieBreak    string       `json:"tie_break,omitempty"`
}

type RoundResult struct {
	RoundNumber int           `json:"round_number"`
	Population  []string      `json:"population"` // Before any bye player is added
	Matches     []MatchResult `json:"matches"`
}

type Result struct {
	StartedAt   time.Time            `json:"started_at"`
	Champion    string               `json:"champion"`
	Rounds      []RoundResult        `json:"rounds"`
	Stats       metrics.RunMetric    `json:"stats"`
	GameRecords []metrics.GameRecord `json:"-"`
	MoveRecords []metrics.MoveRecord `json:"-"`
}

type config struct {
	gamesPerMatch int
	winsToAdvance int
	parallelism   int
	seed          uint64
	tieBreaker    TieBreaker
	dims          game.Dimensions
	logger        zerolog.Logger
}

type Option func(*config)

func WithGamesPerMatch(games int) Option {
	return func(c *config) {
		c.gamesPerMatch = games
	}
}

func WithWinsToAdvance(wins int) Option {
	return func(c *config) {
		c.winsToAdvance = wins
	}
}

// WithParallelism sets how many matches of a round run at once.
func WithParallelism(matches int) Option {
	return func(c *config) {
		c.parallelism = matches
	}
}

// WithSeed seeds the bracket draw, colour assignment, bye players and fallbacks.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func WithTieBreaker(tb TieBreaker) Option {
	return func(c *config) {
		c.tieBreaker = tb
	}
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

func newConfig(opts []Option) (config, error) {
	cfg := config{
		gamesPerMatch: meta.GAMES_PER_MATCH,
		winsToAdvance: meta.WINS_TO_ADVANCE,
		parallelism:   meta.PARALLEL_MATCHES,
		seed:          1,
		tieBreaker:    CoinFlip,
		dims:          game.Dimensions{Rows: game.StandardRows, Cols: game.StandardCols},
		logger:        log.Logger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case cfg.gamesPerMatch < 1:
		return cfg, fmt.Errorf("%w: games per match must be positive, got %d", ErrInvalidConfig, cfg.gamesPerMatch)
	case cfg.winsToAdvance < 1:
		return cfg, fmt.Errorf("%w: wins to advance must be positive, got %d", ErrInvalidConfig, cfg.winsToAdvance)
	case cfg.parallelism < 1:
		return cfg, fmt.Errorf("%w: parallelism must be positive, got %d", ErrInvalidConfig, cfg.parallelism)
	case cfg.tieBreaker == nil:
		return cfg, fmt.Errorf("%w: missing tie breaker", ErrInvalidConfig)
	}
	if _, err := game.NewBoard(cfg.dims.Rows, cfg.dims.Cols); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Run plays rounds until one player remains. Each round pairs a shuffled field, adding a random
// bye player when the field is odd, and every round must eliminate at least one player.
func Run(ctx context.Context, entrants []player.Player, opts ...Option) (*Result, error) {
	if len(entrants) == 0 {
		return nil, ErrNoEntrants
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	collector := metrics.NewCollector()
	collector.Start()

	result := &Result{StartedAt: time.Now().UTC()}
	population := slices.Clone(entrants)
	byes := 0
	gameID := 0

	cfg.logger.Info().Msgf("starting tournament with %d players...", len(population))

	for round := 1; len(population) > 1; round++ {
		roundResult := RoundResult{RoundNumber: round, Population: labels(population)}
		cfg.logger.Info().Msgf("starting round %d with %d players...", round, len(population))

		if len(population)%2 == 1 {
			byes++
			bye := player.NewRandom(fmt.Sprintf("%s %d", meta.BYE_PLAYER_NAME, byes), rng.Uint64())
			cfg.logger.Info().Msgf("odd field - adding %s", player.Label(bye))
			population = append(population, bye)
		}
		rng.Shuffle(len(population), func(i, j int) {
			population[i], population[j] = population[j], population[i]
		})

		// Seeds are drawn before any match starts so scheduling cannot change the outcome
		pairings := make([]pairing, len(population)/2)
		for i := range pairings {
			pairings[i] = pairing{
				round:  round,
				number: i + 1,
				first:  population[2*i],
				second: population[2*i+1],
				seed:   rng.Uint64(),
			}
		}

		outcomes, err := playRound(ctx, cfg, pairings, collector)
		if err != nil {
			return nil, err
		}

		next := []player.Player{}
		for _, o := range outcomes {
			roundResult.Matches = append(roundResult.Matches, o.result)
			next = append(next, o.advancing...)
			for i, g := range o.games {
				gameID++
				result.GameRecords = append(result.GameRecords, metrics.GameRecord{
					ID:         gameID,
					Round:      round,
					Match:      o.result.MatchNumber,
					Game:       i + 1,
					GameMetric: g.game,
				})
				for _, mm := range g.moves {
					result.MoveRecords = append(result.MoveRecords, metrics.MoveRecord{
						Game:       gameID,
						MoveMetric: mm,
					})
				}
			}
		}
		result.Rounds = append(result.Rounds, roundResult)
		cfg.logger.Info().Msgf("completed round %d, %d players advance", round, len(next))

		if len(next) == 0 {
			return nil, ErrNoChampion
		}
		if len(next) >= len(roundResult.Population) {
			return nil, fmt.Errorf("%w: round %d kept %d of %d players", ErrStalled, round, len(next), len(roundResult.Population))
		}
		population = next
	}

	result.Champion = player.Label(population[0])
	result.Stats = collector.Complete()
	cfg.logger.Info().Msgf("completed tournament, champion: %s", result.Champion)

	return result, nil
}

// playRound runs every pairing with at most cfg.parallelism goroutines alive, keeping pairing order.
func playRound(ctx context.Context, cfg config, pairings []pairing, collector metrics.Collector) ([]matchOutcome, error) {
	outcomes := make([]matchOutcome, len(pairings))
	errs := make([]error, len(pairings))
	sem := make(chan struct{}, cfg.parallelism)

	var wg sync.WaitGroup
	for i, p := range pairings {
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i], errs[i] = playMatch(ctx, cfg, p, collector)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func labels(players []player.Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = player.Label(p)
	}
	return names
}
