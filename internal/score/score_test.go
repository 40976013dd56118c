package score

import "testing"

func TestScore(t *testing.T) {
	s := NewScore()
	s.Set(3)
	if s.Get() != 3 {
		t.Errorf("Get() = %d; want 3", s.Get())
	}
	s.SetHigh(10)
	if s.IsHigh() {
		t.Error("IsHigh() = true with 3 vs high 10")
	}
	s.Set(11)
	if !s.IsHigh() {
		t.Error("IsHigh() = false with 11 vs high 10")
	}
	s.Reset()
	if s.Get() != 0 {
		t.Errorf("Get() = %d after Reset; want 0", s.Get())
	}
	if s.GetHigh() != 10 {
		t.Errorf("GetHigh() = %d after Reset; want 10", s.GetHigh())
	}
}
