package game

// Phase tags a board as in progress, won or drawn. The set of phases is closed.
type Phase interface {
	isPhase()
	String() string
}

// InProgress is the phase of a game that still accepts moves.
type InProgress struct {
	Player CellState // Colour to move next
}

// Victory is the terminal phase of a game where Winner connected four.
type Victory struct {
	Winner CellState
}

// Draw is the terminal phase of a full board without a winner.
type Draw struct{}

func (InProgress) isPhase() {}
func (Victory) isPhase()    {}
func (Draw) isPhase()       {}

func (p InProgress) String() string { return "InProgress(" + p.Player.String() + ")" }
func (p Victory) String() string    { return "Victory(" + p.Winner.String() + ")" }
func (Draw) String() string         { return "Draw" }
