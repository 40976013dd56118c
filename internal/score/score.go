package score

// Score tracks the current game value and the session high score.
type Score struct {
	value int
	high  int
	nick  string
}

func NewScore() *Score {
	return &Score{}
}

func (s *Score) Set(value int) {
	s.value = value
}

func (s *Score) Get() int {
	return s.value
}

func (s *Score) Reset() {
	s.value = 0
}

func (s *Score) GetHigh() int {
	return s.high
}

func (s *Score) SetHigh(value int) {
	s.high = value
}

func (s *Score) SetHighNick(value string) {
	s.nick = value
}

func (s *Score) GetHighNick() string {
	return s.nick
}

// IsHigh reports whether the current value beats the session high score.
func (s *Score) IsHigh() bool {
	return s.value > s.high
}
