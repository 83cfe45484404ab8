package buff

import (
	"testing"

	"rogue-engine/internal/entity"
)

func TestAddHigherValueResetsDuration(t *testing.T) {
	var l List
	l.Add(Buff{Type: Shield, Value: 2, TurnsRemaining: 10})
	l.Add(Buff{Type: Shield, Value: 4, TurnsRemaining: 2})
	if got := l.Value(Shield); got != 4 {
		t.Fatalf("value = %d, want 4", got)
	}
	// source resets duration to the new (higher-value) buff's duration,
	// it does not extend to max(10,2) — see DESIGN.md.
	for _, b := range l.Items() {
		if b.Type == Shield && b.TurnsRemaining != 2 {
			t.Fatalf("duration = %d, want 2 (reset, not maxed)", b.TurnsRemaining)
		}
	}
}

func TestAddLowerOrEqualValueExtendsDuration(t *testing.T) {
	var l List
	l.Add(Buff{Type: Shield, Value: 4, TurnsRemaining: 2})
	l.Add(Buff{Type: Shield, Value: 4, TurnsRemaining: 10})
	for _, b := range l.Items() {
		if b.Type == Shield && b.TurnsRemaining != 10 {
			t.Fatalf("duration = %d, want 10 (maxed)", b.TurnsRemaining)
		}
	}
}

func TestTickExpiresAndClearsMirroredState(t *testing.T) {
	var l List
	l.Add(Buff{Type: Invisibility, Value: 1, TurnsRemaining: 1})
	cleared := l.Tick()
	if l.Has(Invisibility) {
		t.Fatal("invisibility should have expired")
	}
	if len(cleared) != 1 || cleared[0] != entity.IsInvisible {
		t.Fatalf("cleared = %v, want [IsInvisible]", cleared)
	}
}

func TestRemoveBrokenByAttacking(t *testing.T) {
	var l List
	l.Add(Buff{Type: Invisibility, Value: 1, TurnsRemaining: 20})
	l.Add(Buff{Type: Bless, Value: 1, TurnsRemaining: 6})
	l.RemoveBrokenByAttacking()
	if l.Has(Invisibility) {
		t.Fatal("invisibility should break on attack")
	}
	if !l.Has(Bless) {
		t.Fatal("bless should survive an attack")
	}
}

func TestACBonusOnlyCountsACAffectingBuffs(t *testing.T) {
	var l List
	l.Add(Buff{Type: Shield, Value: 4, TurnsRemaining: 5})
	l.Add(Buff{Type: Bless, Value: 1, TurnsRemaining: 6})
	if got := l.ACBonus(); got != -4 {
		t.Fatalf("ACBonus = %d, want -4", got)
	}
}

func TestHitModifierSumsBless(t *testing.T) {
	var l List
	l.Add(Buff{Type: Bless, Value: 1, TurnsRemaining: 6})
	if got := l.HitModifier(); got != 1 {
		t.Fatalf("HitModifier = %d, want 1", got)
	}
}

func TestBuffDecayAbsentAfterNTurns(t *testing.T) {
	var l List
	l.Add(Buff{Type: Bless, Value: 1, TurnsRemaining: 3})
	for i := 0; i < 3; i++ {
		l.Tick()
	}
	if l.Has(Bless) {
		t.Fatal("buff should be gone after its duration elapses")
	}
}
