package dweller

// Position represents a cell on the board. X is the column, Y the row.
type Position struct {
	X, Y int
}

// Direction represents movement direction.
type Direction int

const (
	No Direction = iota
	Up
	Down
	Left
	Right
)

// Opposite returns the reverse of d, or No when d has no reverse.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return No
}

// DirectionFor maps a key press to a movement direction.
// Unrecognized keys map to No.
func DirectionFor(key string) Direction {
	switch key {
	case "up", "w", "W", "k":
		return Up
	case "down", "s", "S", "j":
		return Down
	case "left", "a", "A", "h":
		return Left
	case "right", "d", "D", "l":
		return Right
	}
	return No
}
