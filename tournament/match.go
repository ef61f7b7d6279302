package tournament

import (
	"connect4/engine"
	"connect4/game"
	"connect4/metrics"
	"connect4/player"
	"context"
	"fmt"

	"golang.org/x/exp/rand"
)

// TieOutcome says who advances from a match with level wins.
type TieOutcome int

const (
	AdvanceFirst TieOutcome = iota
	AdvanceSecond
	AdvanceNeither
	AdvanceBoth
)

func (o TieOutcome) String() string {
	switch o {
	case AdvanceFirst:
		return "first"
	case AdvanceSecond:
		return "second"
	case AdvanceNeither:
		return "neither"
	case AdvanceBoth:
		return "both"
	}
	return fmt.Sprintf("TieOutcome(%d)", int(o))
}

// TieBreaker settles a match whose wins are level once every game has been played.
// It may be called from several goroutines at once, each with its own rng.
type TieBreaker func(first, second player.Player, rng *rand.Rand) TieOutcome

// CoinFlip advances one of the two players at random.
func CoinFlip(_, _ player.Player, rng *rand.Rand) TieOutcome {
	if rng.Intn(2) == 0 {
		return AdvanceFirst
	}
	return AdvanceSecond
}

type pairing struct {
	round  int
	number int
	first  player.Player
	second player.Player
	seed   uint64
}

type gameOutcome struct {
	game  metrics.GameMetric
	moves []metrics.MoveMetric
}

type matchOutcome struct {
	result    MatchResult
	advancing []player.Player
	games     []gameOutcome
}

// playMatch plays up to gamesPerMatch games, stopping once a player reaches winsToAdvance.
// Colours are drawn at random for every game.
func playMatch(ctx context.Context, cfg config, p pairing, collector metrics.Collector) (matchOutcome, error) {
	rng := rand.New(rand.NewSource(p.seed))
	logger := cfg.logger.With().Int("round", p.round).Int("match", p.number).Logger()

	outcome := matchOutcome{
		result: MatchResult{
			MatchNumber: p.number,
			Player1:     player.Label(p.first),
			Player2:     player.Label(p.second),
			Games:       []GameResult{},
		},
	}
	result := &outcome.result

	logger.Info().Msgf("starting match between %s and %s...", result.Player1, result.Player2)

	for g := 1; g <= cfg.gamesPerMatch && result.Wins1 < cfg.winsToAdvance && result.Wins2 < cfg.winsToAdvance; g++ {
		// swapped puts the second player on red
		swapped := rng.Intn(2) == 1
		red, yellow := p.first, p.second
		if swapped {
			red, yellow = yellow, red
		}

		gameMetric, moveMetrics, err := engine.Run(ctx, red, yellow,
			engine.WithDimensions(cfg.dims.Rows, cfg.dims.Cols),
			engine.WithLogger(logger),
			engine.WithSeed(rng.Uint64()),
			engine.WithCollector(collector),
		)
		if err != nil {
			return matchOutcome{}, fmt.Errorf("round %d match %d game %d: %w", p.round, p.number, g, err)
		}

		// Wins are credited by seat. The same player may hold both seats.
		won := gameMetric.WinningColour == game.Red || gameMetric.WinningColour == game.Yellow
		if won {
			if (gameMetric.WinningColour == game.Red) != swapped {
				result.Wins1++
			} else {
				result.Wins2++
			}
		}

		result.Games = append(result.Games, GameResult{
			GameNumber: g,
			Red:        gameMetric.Red,
			Yellow:     gameMetric.Yellow,
			Winner:     gameMetric.Winner,
		})
		outcome.games = append(outcome.games, gameOutcome{game: gameMetric, moves: moveMetrics})

		if !won {
			logger.Info().Msgf("completed game %d as a draw", g)
		} else {
			logger.Info().Msgf("completed game %d with winner: %s", g, gameMetric.Winner)
		}
	}

	switch {
	case result.Wins1 > result.Wins2:
		outcome.advancing = []player.Player{p.first}
	case result.Wins2 > result.Wins1:
		outcome.advancing = []player.Player{p.second}
	default:
		tie := cfg.tieBreaker(p.first, p.second, rng)
		result.TieBreak = tie.String()
		logger.Info().Msgf("tied match %d-%d settled: %s advances", result.Wins1, result.Wins2, tie)
		switch tie {
		case AdvanceFirst:
			outcome.advancing = []player.Player{p.first}
		case AdvanceSecond:
			outcome.advancing = []player.Player{p.second}
		case AdvanceBoth:
			outcome.advancing = []player.Player{p.first, p.second}
		case AdvanceNeither:
		default:
			return matchOutcome{}, fmt.Errorf("%w: unknown tie outcome %d", ErrInvalidConfig, int(tie))
		}
	}
	if len(outcome.advancing) == 1 {
		result.Winner = player.Label(outcome.advancing[0])
	}

	logger.Info().Msgf("completed match %d-%d", result.Wins1, result.Wins2)
	return outcome, nil
}
