package engine

import (
	"connect4/game"
	"errors"
	"fmt"
	"sync"
)

var errNotInitialised = errors.New("engine is not initialised - call Init first")

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	cfg      config
	mu       sync.Mutex
	board    *game.Board
	history  []Update
	updateCh chan Update
	gameOver bool
}

// NewLocalEngine validates the configured dimensions. The game itself starts with Init.
func NewLocalEngine(opts ...Option) (*LocalEngine, error) {
	cfg := newConfig(opts)
	if _, err := game.NewBoard(cfg.dims.Rows, cfg.dims.Cols); err != nil {
		return nil, err
	}
	return &LocalEngine{cfg: cfg}, nil
}

func (e *LocalEngine) Init() (*game.Board, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	board, _ := game.NewBoard(e.cfg.dims.Rows, e.cfg.dims.Cols)
	// A game never has more moves than cells, so Play never blocks on the buffer
	updateCh := make(chan Update, e.cfg.dims.Rows*e.cfg.dims.Cols)

	e.board = board
	e.history = nil
	e.updateCh = updateCh
	e.gameOver = false

	return board, func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

func (e *LocalEngine) Play(column int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.board == nil {
		return errNotInitialised
	}
	if e.gameOver {
		return fmt.Errorf("game is over - no moves allowed: %w", game.ErrGameNotInProgress)
	}

	player, _ := e.board.PlayerToMove()
	next, err := e.board.ApplyMove(column)
	if err != nil {
		return fmt.Errorf("illegal move %d: %w", column, err)
	}
	e.board = next

	u := Update{
		Column: column,
		Player: player,
		Board:  next,
		Hash:   next.Hash(),
	}
	e.history = append(e.history, u)
	e.updateCh <- u

	if next.IsTerminal() {
		e.gameOver = true
		close(e.updateCh)
	}

	return nil
}

func (e *LocalEngine) Board() *game.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board
}

// History returns every update of the current game, oldest first.
func (e *LocalEngine) History() []Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	history := make([]Update, len(e.history))
	copy(history, e.history)
	return history
}
