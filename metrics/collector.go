package metrics

import (
	"connect4/game"
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step      int
	Player    string // Player label
	Colour    game.CellState
	Column    int
	Hash      uint64
	ThinkTime time.Duration
	Fallback  bool // Column was chosen by the engine
}

type GameMetric struct {
	Red           string // Player label
	Yellow        string // Player label
	Winner        string // Player label, empty on a draw
	WinningColour game.CellState
	Outcome       string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
	Fallbacks     int
	FinalHash     uint64
}

// RunMetric aggregates every game played while a collector was running.
type RunMetric struct {
	Games     int           `json:"games"`
	Moves     int           `json:"moves"`
	Fallbacks int           `json:"fallbacks"`
	Duration  time.Duration `json:"duration"`
}

// Collector counts games, moves and fallbacks. Implementations are safe for concurrent use.
type Collector interface {
	Start()
	AddGame()
	AddMove()
	AddFallback()
	Complete() RunMetric
}

type collector struct {
	startTime time.Time
	games     atomic.Int32
	moves     atomic.Int32
	fallbacks atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddGame() {
	m.games.Add(1)
}

func (m *collector) AddMove() {
	m.moves.Add(1)
}

func (m *collector) AddFallback() {
	m.fallbacks.Add(1)
}

func (m *collector) Complete() RunMetric {
	return RunMetric{
		Games:     int(m.games.Load()),
		Moves:     int(m.moves.Load()),
		Fallbacks: int(m.fallbacks.Load()),
		Duration:  time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()              {}
func (m *dummyCollector) AddGame()            {}
func (m *dummyCollector) AddMove()            {}
func (m *dummyCollector) AddFallback()        {}
func (m *dummyCollector) Complete() RunMetric { return RunMetric{} }
