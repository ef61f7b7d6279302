package game

// CellState is the colour of a disc. The zero value is not a colour: boards use it
// internally for an empty slot and never hand it out.
type CellState uint8

const (
	empty  CellState = iota // 0
	Red                     // 1
	Yellow                  // 2
)

// Other returns the opposing colour.
func (c CellState) Other() CellState {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return empty
	}
}

// Bit is the canonical hashing bit of the colour (Red = 1, Yellow = 0).
func (c CellState) Bit() uint64 {
	if c == Red {
		return 1
	}
	return 0
}

func (c CellState) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	default:
		return "Empty"
	}
}
