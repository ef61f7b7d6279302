package main

import (
	"connect4/tournament"
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// printStandings renders the bracket round by round. Colours are dropped when w is not a terminal.
func printStandings(w io.Writer, result *tournament.Result) {
	output := termenv.NewOutput(w)

	fmt.Fprintln(w, output.String("CONNECT FOUR TOURNAMENT").Bold().Foreground(output.Color("6")))
	for _, round := range result.Rounds {
		fmt.Fprintln(w, output.String(fmt.Sprintf("Round %d - %d players", round.RoundNumber, len(round.Population))).Bold())
		for _, m := range round.Matches {
			outcome := output.String(m.Winner).Foreground(output.Color("2")).String()
			if m.Winner == "" {
				outcome = output.String("no single winner").Faint().String()
			}
			if m.TieBreak != "" {
				outcome += fmt.Sprintf(" (tie, %s advances)", m.TieBreak)
			}
			fmt.Fprintf(w, "  Match %d: %s vs %s  %d-%d  -> %s\n", m.MatchNumber, m.Player1, m.Player2, m.Wins1, m.Wins2, outcome)
		}
	}
	fmt.Fprintf(w, "Champion: %s\n", output.String(result.Champion).Bold().Foreground(output.Color("3")))
}
