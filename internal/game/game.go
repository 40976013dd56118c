// Package game composes the snake, the food and the board into one
// turn-based simulation, independent of any terminal concerns.
package game

import (
	"math/rand"

	"github.com/vinser/snaked/internal/dweller"
	"github.com/vinser/snaked/internal/grid"
)

// State is the game lifecycle state.
type State int

const (
	Running State = iota
	GameOver
)

// foodOffset is how far from the board center the first food appears.
const foodOffset = 5

// Game owns the board size, one snake and one food for the whole session.
type Game struct {
	size  grid.Size
	snake *dweller.Snake
	food  *dweller.Food
	state State
}

// New returns a running game: a two-segment snake centered on the board
// heading right, and food at a fixed offset from center, clamped in bounds.
func New(size grid.Size, speed int, rng *rand.Rand) *Game {
	cx, cy := size.Center()
	fx, fy := cx+foodOffset, cy+foodOffset
	if fx > size.Cols-1 {
		fx = size.Cols - 1
	}
	if fy > size.Rows-1 {
		fy = size.Rows - 1
	}
	return &Game{
		size:  size,
		snake: dweller.NewSnake(dweller.Position{X: cx, Y: cy}, speed),
		food:  dweller.NewFood(dweller.Position{X: fx, Y: fy}, rng),
	}
}

// Size returns the board size.
func (g *Game) Size() grid.Size {
	return g.size
}

// Snake returns the game's snake.
func (g *Game) Snake() *dweller.Snake {
	return g.snake
}

// Food returns the game's food.
func (g *Game) Food() *dweller.Food {
	return g.food
}

// State returns Running or GameOver.
func (g *Game) State() State {
	return g.state
}

// Input maps a key press to a direction change. Unrecognized keys and
// reversals are no-ops.
func (g *Game) Input(key string) {
	g.snake.SetDirection(dweller.DirectionFor(key))
}

// Update runs one tick: the snake advances, and on success the food checks
// the new head. A collision flips the game to GameOver and returns false.
// Eating sets the snake's pending-growth flag, which the NEXT tick's advance
// converts into growth, score and speed-up.
func (g *Game) Update() bool {
	if g.state == GameOver {
		return false
	}
	if !g.snake.Advance(g.size) {
		g.state = GameOver
		return false
	}
	g.snake.SetJustAte(g.food.Update(g.size, g.snake))
	return true
}
