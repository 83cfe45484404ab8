package hunger

import "testing"

func TestBandThresholds(t *testing.T) {
	cases := []struct {
		value int
		band  Band
	}{
		{0, WellFed}, {200, WellFed}, {201, Satiated}, {400, Satiated},
		{401, Hungry}, {700, Hungry}, {701, Starving}, {900, Starving}, {901, Dying}, {1000, Dying},
	}
	for _, c := range cases {
		s := NewSystem()
		s.Value = c.value
		s.updateBand()
		if s.Band() != c.band {
			t.Errorf("value %d -> band %v, want %v", c.value, s.Band(), c.band)
		}
	}
}

func TestIncreaseClampsAtMax(t *testing.T) {
	s := NewSystem()
	s.Increase(5000)
	if s.Value != Max {
		t.Fatalf("Value = %d, want %d", s.Value, Max)
	}
}

func TestDecreaseClampsAtZero(t *testing.T) {
	s := NewSystem()
	s.Decrease(5000)
	if s.Value != 0 {
		t.Fatalf("Value = %d, want 0", s.Value)
	}
}

func TestIsSufferingPenalties(t *testing.T) {
	s := NewSystem()
	s.Value = 750
	s.updateBand()
	if !s.IsSufferingPenalties() {
		t.Fatal("starving band should suffer penalties")
	}
	s.Value = 100
	s.updateBand()
	if s.IsSufferingPenalties() {
		t.Fatal("well-fed band should not suffer penalties")
	}
}
