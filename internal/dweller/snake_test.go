package dweller

import (
	"testing"

	"github.com/vinser/snaked/internal/grid"
)

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name    string
		heading Direction
		input   Direction
		want    Direction
	}{
		{"up from right", Right, Up, Up},
		{"down from right", Right, Down, Down},
		{"left from up", Up, Left, Left},
		{"reverse right to left", Right, Left, Right},
		{"reverse left to right", Left, Right, Left},
		{"reverse up to down", Up, Down, Up},
		{"reverse down to up", Down, Up, Down},
		{"same direction", Right, Right, Right},
		{"no direction keeps heading", Right, No, Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(Position{X: 5, Y: 5}, 500)
			s.heading = tt.heading
			s.SetDirection(tt.input)
			if s.Heading() != tt.want {
				t.Errorf("heading = %v; want %v", s.Heading(), tt.want)
			}
		})
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		key  string
		want Direction
	}{
		{"up", Up}, {"w", Up}, {"k", Up},
		{"down", Down}, {"s", Down}, {"j", Down},
		{"left", Left}, {"a", Left}, {"h", Left},
		{"right", Right}, {"d", Right}, {"l", Right},
		{"x", No}, {"enter", No}, {"", No},
	}

	for _, tt := range tests {
		if got := DirectionFor(tt.key); got != tt.want {
			t.Errorf("DirectionFor(%q) = %v; want %v", tt.key, got, tt.want)
		}
	}
}

func TestAdvanceEdgeCollision(t *testing.T) {
	size := grid.Size{Rows: 10, Cols: 10}

	tests := []struct {
		name    string
		head    Position
		heading Direction
	}{
		{"top edge heading up", Position{X: 5, Y: 0}, Up},
		{"bottom edge heading down", Position{X: 5, Y: 9}, Down},
		{"left edge heading left", Position{X: 0, Y: 5}, Left},
		{"right edge heading right", Position{X: 9, Y: 5}, Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Snake{body: []Position{tt.head}, heading: tt.heading, speed: 500}
			before := append([]Position(nil), s.Body()...)
			if s.Advance(size) {
				t.Fatal("Advance() = true at boundary; want game over")
			}
			if len(s.Body()) != len(before) || s.Head() != before[0] {
				t.Errorf("body mutated on edge collision: %v -> %v", before, s.Body())
			}
		})
	}
}

func TestAdvanceSelfCollision(t *testing.T) {
	size := grid.Size{Rows: 10, Cols: 10}
	// Head at (5,5) heading left; (4,5) is part of the body.
	s := &Snake{
		body:    []Position{{5, 5}, {5, 4}, {4, 4}, {4, 5}, {4, 6}},
		heading: Left,
		speed:   500,
	}
	if s.Advance(size) {
		t.Fatal("Advance() = true into own body; want game over")
	}
	if s.Len() != 5 {
		t.Errorf("body length changed on self collision: %d", s.Len())
	}
}

func TestAdvanceGrowth(t *testing.T) {
	size := grid.Size{Rows: 10, Cols: 10}
	s := NewSnake(Position{X: 5, Y: 5}, 500)
	s.SetJustAte(true)

	if !s.Advance(size) {
		t.Fatal("Advance() = false; want success")
	}
	if s.Len() != 3 {
		t.Errorf("length = %d after growth; want 3", s.Len())
	}
	if s.Score() != 1 {
		t.Errorf("score = %d; want 1", s.Score())
	}
	if s.Speed() != 450 {
		t.Errorf("speed = %d; want 450", s.Speed())
	}
	if s.JustAte() {
		t.Error("justAte not consumed by Advance")
	}
}

func TestAdvanceNoGrowth(t *testing.T) {
	size := grid.Size{Rows: 10, Cols: 10}
	s := NewSnake(Position{X: 5, Y: 5}, 500)

	if !s.Advance(size) {
		t.Fatal("Advance() = false; want success")
	}
	if s.Len() != 2 {
		t.Errorf("length = %d; want 2", s.Len())
	}
	if s.Head() != (Position{X: 6, Y: 5}) {
		t.Errorf("head = %v; want (6,5)", s.Head())
	}
	if s.Score() != 0 || s.Speed() != 500 {
		t.Errorf("score/speed changed without eating: %d/%d", s.Score(), s.Speed())
	}
}

func TestSpeedDecrementDiminishes(t *testing.T) {
	// speed -= speed/10 uses integer division, so below 10 the
	// decrement collapses to zero and the speed freezes.
	size := grid.Size{Rows: 100, Cols: 100}
	s := NewSnake(Position{X: 50, Y: 50}, 10)
	s.SetJustAte(true)
	s.Advance(size)
	if s.Speed() != 9 {
		t.Fatalf("speed = %d; want 9", s.Speed())
	}
	s.SetJustAte(true)
	s.Advance(size)
	if s.Speed() != 9 {
		t.Errorf("speed = %d; want 9 (frozen)", s.Speed())
	}
}

func TestOccupies(t *testing.T) {
	s := &Snake{body: []Position{{5, 5}, {5, 4}, {5, 3}}}
	if !s.Occupies(Position{5, 4}) {
		t.Error("Occupies(body segment) = false")
	}
	if s.Occupies(Position{6, 5}) {
		t.Error("Occupies(free cell) = true")
	}
}

func TestHeadPanicsOnEmptyBody(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Head() on empty body did not panic")
		}
	}()
	s := &Snake{}
	s.Head()
}
