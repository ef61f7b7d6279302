package player

import (
	"connect4/game"
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
)

const builtinAuthor = "connect4"

var (
	ErrNoLegalMoves    = errors.New("no legal moves available")
	ErrScriptExhausted = errors.New("scripted player has no moves left")
	errDeliberateFault = errors.New("faulty player refuses to move")
)

// Player picks the column to play for the colour to move on a board.
type Player interface {
	Name() string
	Author() string
	NextMove(ctx context.Context, b *game.Board) (int, error)
}

// Label formats a player as "<name> by <author>".
func Label(p Player) string {
	return fmt.Sprintf("%s by %s", p.Name(), p.Author())
}

// legalMoves returns the legal moves of b, or an error if the player should not be asked.
func legalMoves(ctx context.Context, b *game.Board) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrNoLegalMoves
	}
	return moves, nil
}

// Random plays a uniformly random legal column.
type Random struct {
	name string
	mu   sync.Mutex
	rng  *rand.Rand
}

func NewRandom(name string, seed uint64) *Random {
	return &Random{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Name() string   { return r.name }
func (r *Random) Author() string { return builtinAuthor }

func (r *Random) NextMove(ctx context.Context, b *game.Board) (int, error) {
	moves, err := legalMoves(ctx, b)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return moves[r.rng.Intn(len(moves))], nil
}

// Leftmost always plays the lowest legal column.
type Leftmost struct {
	name string
}

func NewLeftmost(name string) *Leftmost {
	return &Leftmost{name: name}
}

func (l *Leftmost) Name() string   { return l.name }
func (l *Leftmost) Author() string { return builtinAuthor }

func (l *Leftmost) NextMove(ctx context.Context, b *game.Board) (int, error) {
	moves, err := legalMoves(ctx, b)
	if err != nil {
		return 0, err
	}
	return moves[0], nil
}

// Scripted plays a fixed list of columns in order, whether legal or not.
type Scripted struct {
	name    string
	mu      sync.Mutex
	columns []int
	next    int
}

func NewScripted(name string, columns ...int) *Scripted {
	return &Scripted{name: name, columns: columns}
}

func (s *Scripted) Name() string   { return s.name }
func (s *Scripted) Author() string { return builtinAuthor }

func (s *Scripted) NextMove(ctx context.Context, b *game.Board) (int, error) {
	if _, err := legalMoves(ctx, b); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.columns) {
		return 0, ErrScriptExhausted
	}
	column := s.columns[s.next]
	s.next++
	return column, nil
}

// Faulty never produces a move. The engine has to recover on its behalf.
type Faulty struct {
	name string
}

func NewFaulty(name string) *Faulty {
	return &Faulty{name: name}
}

func (f *Faulty) Name() string   { return f.name }
func (f *Faulty) Author() string { return builtinAuthor }

func (f *Faulty) NextMove(ctx context.Context, b *game.Board) (int, error) {
	if _, err := legalMoves(ctx, b); err != nil {
		return 0, err
	}
	return 0, errDeliberateFault
}
