package dice

import "testing"

func TestRollWithinBounds(t *testing.T) {
	d := New(1)
	for i := 0; i < 500; i++ {
		v := d.Roll(3, 8)
		if v < 3 || v > 8 {
			t.Fatalf("roll %d out of [3,8]", v)
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 50; i++ {
		if a.D20() != b.D20() {
			t.Fatalf("sequences diverged at roll %d", i)
		}
	}
}

func TestFixedSequenceThenFallsBack(t *testing.T) {
	d := NewFixed(7, 15, 12, 3)
	got := []int{d.D20(), d.D20(), d.D20()}
	want := []int{15, 12, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("roll %d = %d, want %d", i, got[i], want[i])
		}
	}
	// fourth roll falls back to the seeded generator, still within bounds.
	if v := d.D20(); v < 1 || v > 20 {
		t.Fatalf("fallback roll %d out of range", v)
	}
}
