package engine

import (
	"connect4/game"
	"connect4/metrics"
	"connect4/player"
	"context"
	"slices"
	"time"

	"golang.org/x/exp/rand"
)

// Run plays one full game between red and yellow. A player that errors or asks for an illegal
// column has a random legal column played for it instead.
func Run(ctx context.Context, red, yellow player.Player, opts ...Option) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e, err := NewLocalEngine(opts...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	cfg := e.cfg
	rng := rand.New(rand.NewSource(cfg.seed))
	players := map[game.CellState]player.Player{
		game.Red:    red,
		game.Yellow: yellow,
	}

	gameMetric := metrics.GameMetric{
		Red:       player.Label(red),
		Yellow:    player.Label(yellow),
		StartTime: time.Now(),
	}
	logger := cfg.logger.With().Str("red", gameMetric.Red).Str("yellow", gameMetric.Yellow).Logger()
	logger.Info().Msg("game started")

	board, _ := e.Init()
	var moveMetrics []metrics.MoveMetric
	for step := 1; !board.IsTerminal(); step++ {
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, err
		}

		colour, _ := board.PlayerToMove()
		current := players[colour]

		start := time.Now()
		column, moveErr := current.NextMove(ctx, board)
		thinkTime := time.Since(start)
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, err
		}

		legal := board.LegalMoves()
		fallback := moveErr != nil || !slices.Contains(legal, column)
		if fallback {
			requested := column
			column = legal[rng.Intn(len(legal))]
			logger.Warn().Err(moveErr).
				Str("player", current.Name()).
				Int("requested", requested).
				Int("column", column).
				Msg("player failed to move - playing a random legal column")
			gameMetric.Fallbacks++
			cfg.collector.AddFallback()
		}

		if err := e.Play(column); err != nil {
			return gameMetric, moveMetrics, err
		}
		board = e.Board()
		cfg.collector.AddMove()

		logger.Debug().Int("step", step).Stringer("colour", colour).Int("column", column).Uint64("hash", board.Hash()).Msg("move played")
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:      step,
			Player:    player.Label(current),
			Colour:    colour,
			Column:    column,
			Hash:      board.Hash(),
			ThinkTime: thinkTime,
			Fallback:  fallback,
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.FinalHash = board.Hash()
	gameMetric.Outcome = board.Phase().String()
	if winner, ok := board.Winner(); ok {
		gameMetric.WinningColour = winner
		gameMetric.Winner = player.Label(players[winner])
	}
	cfg.collector.AddGame()

	logger.Info().Str("outcome", gameMetric.Outcome).Int("moves", gameMetric.TotalMoves).Msg("game finished")
	return gameMetric, moveMetrics, nil
}
