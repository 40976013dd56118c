package dweller

import (
	"math/rand"

	"github.com/vinser/snaked/internal/grid"
)

// Food is a single edible cell on the board.
type Food struct {
	pos Position
	rng *rand.Rand
}

// NewFood places food at p. The rng drives respawn cell sampling.
func NewFood(p Position, rng *rand.Rand) *Food {
	return &Food{pos: p, rng: rng}
}

// Pos returns the food's current cell.
func (f *Food) Pos() Position {
	return f.pos
}

// IsAt reports whether the food occupies p.
func (f *Food) IsAt(p Position) bool {
	return f.pos == p
}

// Update reports whether the snake's head sits on the food. When it does,
// the food relocates to a uniformly random cell not occupied by the snake.
// If the snake covers the whole board there is nowhere to go and the food
// stays put; the eaten result still reports true.
func (f *Food) Update(size grid.Size, snake *Snake) bool {
	if !f.IsAt(snake.Head()) {
		return false
	}
	if snake.Len() >= size.Area() {
		return true
	}
	for {
		p := Position{X: f.rng.Intn(size.Cols), Y: f.rng.Intn(size.Rows)}
		if !snake.Occupies(p) {
			f.pos = p
			return true
		}
	}
}
