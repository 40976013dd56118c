package game

import (
	"math/rand"
	"testing"

	"github.com/vinser/snaked/internal/dweller"
	"github.com/vinser/snaked/internal/grid"
)

func newTestGame() *Game {
	return New(grid.Size{Rows: 10, Cols: 10}, 500, rand.New(rand.NewSource(1)))
}

func TestNewGame(t *testing.T) {
	g := newTestGame()

	if g.State() != Running {
		t.Errorf("state = %v; want Running", g.State())
	}
	if g.Snake().Len() != 2 {
		t.Errorf("snake length = %d; want 2", g.Snake().Len())
	}
	if g.Snake().Head() != (dweller.Position{X: 5, Y: 5}) {
		t.Errorf("head = %v; want (5,5)", g.Snake().Head())
	}
	if g.Snake().Heading() != dweller.Right {
		t.Errorf("heading = %v; want Right", g.Snake().Heading())
	}
	fp := g.Food().Pos()
	if !g.Size().Contains(fp.X, fp.Y) {
		t.Errorf("food out of bounds: %v", fp)
	}
}

func TestFoodOffsetClampedOnSmallBoard(t *testing.T) {
	g := New(grid.Size{Rows: 4, Cols: 4}, 500, rand.New(rand.NewSource(1)))
	fp := g.Food().Pos()
	if !g.Size().Contains(fp.X, fp.Y) {
		t.Errorf("food out of bounds on small board: %v", fp)
	}
}

// Snake at [(5,5),(4,5)] heading right with food one cell ahead: the first
// tick eats, the second one grows.
func TestEatThenGrowNextTick(t *testing.T) {
	g := newTestGame()
	g.food = dweller.NewFood(dweller.Position{X: 6, Y: 5}, rand.New(rand.NewSource(1)))

	if !g.Update() {
		t.Fatal("first Update() = false; want running")
	}
	if g.Snake().Head() != (dweller.Position{X: 6, Y: 5}) {
		t.Errorf("head = %v; want (6,5)", g.Snake().Head())
	}
	if !g.Snake().JustAte() {
		t.Fatal("justAte not set after eating tick")
	}
	// Growth lands on the next tick, not the eating one.
	if g.Snake().Len() != 2 || g.Snake().Score() != 0 {
		t.Errorf("growth applied early: len=%d score=%d", g.Snake().Len(), g.Snake().Score())
	}

	if !g.Update() {
		t.Fatal("second Update() = false; want running")
	}
	if g.Snake().Len() != 3 {
		t.Errorf("length = %d after growth tick; want 3", g.Snake().Len())
	}
	if g.Snake().Score() != 1 {
		t.Errorf("score = %d; want 1", g.Snake().Score())
	}
	if g.Snake().Speed() != 450 {
		t.Errorf("speed = %d; want 450", g.Snake().Speed())
	}
}

func TestEdgeCollisionEndsGame(t *testing.T) {
	g := newTestGame()
	g.Input("up")
	for i := 0; i < 5; i++ {
		if !g.Update() {
			t.Fatalf("Update() = false on tick %d; head not yet at edge", i)
		}
	}
	// Head now at (5,0) heading up.
	if g.Snake().Head() != (dweller.Position{X: 5, Y: 0}) {
		t.Fatalf("head = %v; want (5,0)", g.Snake().Head())
	}
	segments := g.Snake().Len()
	if g.Update() {
		t.Fatal("Update() = true at top edge; want game over")
	}
	if g.State() != GameOver {
		t.Errorf("state = %v; want GameOver", g.State())
	}
	if g.Snake().Len() != segments {
		t.Errorf("segments changed on game over: %d -> %d", segments, g.Snake().Len())
	}
	// Further updates stay terminal.
	if g.Update() {
		t.Error("Update() = true after GameOver")
	}
}

func TestUnrecognizedInputIsNoOp(t *testing.T) {
	g := newTestGame()
	g.Input("x")
	if g.Snake().Heading() != dweller.Right {
		t.Errorf("heading changed on unrecognized input: %v", g.Snake().Heading())
	}
	if !g.Update() {
		t.Error("Update() = false after unrecognized input")
	}
}

func TestReversalInputIgnored(t *testing.T) {
	g := newTestGame()
	g.Input("left") // reverse of initial Right
	if g.Snake().Heading() != dweller.Right {
		t.Errorf("heading = %v; want Right (reversal debounced)", g.Snake().Heading())
	}
}
