package id

import "testing"

func TestNextIsMonotonic(t *testing.T) {
	g := NewGenerator()
	prev := g.Next()
	for i := 0; i < 100; i++ {
		cur := g.Next()
		if cur <= prev {
			t.Fatalf("id %d did not increase past %d", cur, prev)
		}
		prev = cur
	}
}

func TestAdvancePast(t *testing.T) {
	g := NewGenerator()
	g.AdvancePast(500)
	if got := g.Next(); got <= 500 {
		t.Fatalf("Next() = %d, want > 500", got)
	}
}
