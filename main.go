package main

import (
	"connect4/game"
	"connect4/meta"
	"connect4/metrics"
	"connect4/player"
	"connect4/tournament"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	rows := flag.Int("rows", game.StandardRows, "Board rows")
	cols := flag.Int("cols", game.StandardCols, "Board columns")
	randoms := flag.Int("random", 3, "Number of random players in the field")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the bracket and the random players")
	games := flag.Int("games", meta.GAMES_PER_MATCH, "Maximum games per match")
	parallel := flag.Int("parallel", meta.PARALLEL_MATCHES, "Number of matches played at once")
	out := flag.String("out", meta.RESULTS_DIR, "Directory for tournament results")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	entrants := []player.Player{
		player.NewLeftmost("Leftmost"),
		player.NewFaulty("Faulty"),
	}
	for i := 0; i < *randoms; i++ {
		entrants = append(entrants, player.NewRandom(fmt.Sprintf("Random bot %d", i+1), *seed+uint64(i)+1))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().Uint64("seed", *seed).Msgf("running tournament on a %dx%d board...", *rows, *cols)
	result, err := tournament.Run(ctx, entrants,
		tournament.WithDimensions(*rows, *cols),
		tournament.WithSeed(*seed),
		tournament.WithGamesPerMatch(*games),
		tournament.WithWinsToAdvance(*games/2+1),
		tournament.WithParallelism(*parallel),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	writer, err := metrics.NewWriter(*out, "tournament")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create results writer")
	}
	if err = writer.WriteGameRecords(result.GameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err = writer.WriteMoveRecords(result.MoveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
	if err = writer.WriteSummary(result); err != nil {
		log.Fatal().Err(err).Msg("failed to write tournament summary")
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored tournament results")

	printStandings(os.Stdout, result)
}
