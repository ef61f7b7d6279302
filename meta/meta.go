// meta/meta.go
package meta

// GAMES_PER_MATCH defines the maximum number of games in a match.
const GAMES_PER_MATCH = 3

// WINS_TO_ADVANCE defines the wins that end a match early.
const WINS_TO_ADVANCE = 2

// PARALLEL_MATCHES defines the number of matches of a round played at once.
const PARALLEL_MATCHES = 4

// RESULTS_DIR defines where tournament results are written.
const RESULTS_DIR = "results"

// BYE_PLAYER_NAME names the random player added to odd rounds.
const BYE_PLAYER_NAME = "Random"
