package dweller

import (
	"github.com/vinser/snaked/internal/grid"
)

// Snake is the player-controlled crawler. The body is an ordered slice of
// cells with the head at index 0; movement pushes a new head and pops the
// tail, so segments never move individually.
type Snake struct {
	body    []Position
	heading Direction
	justAte bool
	score   int
	speed   int // tick interval in milliseconds, smaller is faster
}

// NewSnake returns a two-segment snake with its head at head, heading Right.
func NewSnake(head Position, speed int) *Snake {
	return &Snake{
		body:    []Position{head, {X: head.X - 1, Y: head.Y}},
		heading: Right,
		speed:   speed,
	}
}

// Head returns the snake's head cell.
func (s *Snake) Head() Position {
	if len(s.body) == 0 {
		panic("dweller: snake has no body")
	}
	return s.body[0]
}

// Body returns the snake's segments, head first.
func (s *Snake) Body() []Position {
	return s.body
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the snake's current direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Score returns the number of food items eaten.
func (s *Snake) Score() int {
	return s.score
}

// Speed returns the current tick interval in milliseconds.
func (s *Snake) Speed() int {
	return s.speed
}

// SetJustAte marks whether the snake ate on the tick that just completed.
// Growth and scoring apply on the following Advance call.
func (s *Snake) SetJustAte(ate bool) {
	s.justAte = ate
}

// JustAte reports the pending-growth flag.
func (s *Snake) JustAte() bool {
	return s.justAte
}

// SetDirection updates the heading unless the new direction is the exact
// reverse of the current one. Reversals are silently ignored: turning back
// into the neck would be an instant self-collision, so the input is treated
// as a bounce, not a fault.
func (s *Snake) SetDirection(d Direction) {
	if d == No || d == s.heading.Opposite() {
		return
	}
	s.heading = d
}

// Occupies reports whether p coincides with any body segment.
func (s *Snake) Occupies(p Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// atEdge reports whether the head already sits on the boundary row or column
// in the direction of travel. The check runs before translation: a snake
// heading right is stopped when its head column is Cols-1, not after leaving
// the board.
func (s *Snake) atEdge(size grid.Size) bool {
	head := s.Head()
	switch s.heading {
	case Up:
		return head.Y <= 0
	case Down:
		return head.Y >= size.Rows-1
	case Left:
		return head.X <= 0
	case Right:
		return head.X >= size.Cols-1
	}
	return false
}

// Advance moves the snake one cell along its heading. It returns false when
// the move collides with the board edge or the snake's own body; the body is
// left untouched in that case. On success the new head is pushed; if the
// snake ate on the previous tick the tail is kept (net growth of one), the
// score increments and the tick interval shrinks by a tenth.
func (s *Snake) Advance(size grid.Size) bool {
	if s.atEdge(size) {
		return false
	}

	newHead := s.Head()
	switch s.heading {
	case Up:
		newHead.Y--
	case Down:
		newHead.Y++
	case Left:
		newHead.X--
	case Right:
		newHead.X++
	}

	if s.Occupies(newHead) {
		return false
	}

	s.body = append([]Position{newHead}, s.body...)
	if s.justAte {
		s.score++
		s.speed -= s.speed / 10
		s.justAte = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return true
}
