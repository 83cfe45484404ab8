// Package buff implements the data-driven buff/effect system, grounded
// verbatim on original_source/src/Systems/BuffSystem.{h,cpp}.
//
// Four static maps replace the per-type switch statements the C++ original
// still had in places: which buff mirrors to a creature state flag, which
// buffs affect armor class, which buffs break when their owner attacks, and
// each buff's flat hit-roll modifier.
package buff

import "rogue-engine/internal/entity"

// Type enumerates buff kinds per spec.md §3.
type Type int

const (
	Shield Type = iota
	Bless
	Invisibility
	FireResistance
	ColdResistance
	LightningResistance
	PoisonResistance
	Regeneration
	Confusion
	Sanctuary
	Entangled
)

// Buff is one active effect on a creature.
type Buff struct {
	Type           Type
	Value          int
	TurnsRemaining int
	IsSetEffect    bool
}

// stateMirror maps a buff type to the creature state flag it turns on while
// active, per original_source's buff_state_effects map.
var stateMirror = map[Type]entity.State{
	Invisibility: entity.IsInvisible,
	Confusion:    entity.IsConfused,
	Entangled:    entity.IsEntangled,
}

// acAffecting lists buffs whose Value contributes (negated, since lower AC is
// better) to armor class, per original_source's ac_affecting_buffs.
var acAffecting = map[Type]bool{
	Shield: true,
	Bless:  false,
}

// brokenByAttacking lists buffs removed the instant their owner lands a
// successful attack, per original_source's buffs_broken_by_attacking.
var brokenByAttacking = map[Type]bool{
	Invisibility: true,
	Sanctuary:    true,
}

// hitModifiers maps a buff type to its flat bonus to the attacker's hit roll,
// per original_source's buff_hit_modifiers (BLESS = +1).
var hitModifiers = map[Type]int{
	Bless: 1,
}

// DamageResistance maps a damage type to the buff that grants a percentage
// reduction against it, per original_source's damage_resistance_buffs.
var DamageResistance = map[entity.DamageType]Type{
	entity.Fire:      FireResistance,
	entity.Cold:      ColdResistance,
	entity.Lightning: LightningResistance,
	entity.Poison:    PoisonResistance,
}

// List is a creature's active buffs.
type List struct {
	items []Buff
}

// Add inserts or merges a buff following original_source's add_buff: if a
// buff of the same type is already present, the higher value wins; the
// literal source code RESETS duration to the new value when the incoming
// value is strictly higher, and only extends to max(old,new) in the
// weaker-or-equal branch. spec.md's prose describes uniform max-extension;
// we follow the source's actual branching per DESIGN.md's resolution.
func (l *List) Add(b Buff) {
	for i := range l.items {
		if l.items[i].Type != b.Type {
			continue
		}
		existing := &l.items[i]
		if b.Value > existing.Value {
			existing.Value = b.Value
			existing.TurnsRemaining = b.TurnsRemaining
		} else {
			if b.TurnsRemaining > existing.TurnsRemaining {
				existing.TurnsRemaining = b.TurnsRemaining
			}
		}
		existing.IsSetEffect = existing.IsSetEffect || b.IsSetEffect
		return
	}
	l.items = append(l.items, b)
}

// Has reports whether a buff of the given type is active.
func (l *List) Has(t Type) bool {
	for _, b := range l.items {
		if b.Type == t {
			return true
		}
	}
	return false
}

// Value returns the active value for a buff type, or 0 if absent.
func (l *List) Value(t Type) int {
	for _, b := range l.items {
		if b.Type == t {
			return b.Value
		}
	}
	return 0
}

// Tick decrements every buff's duration by 1, removing expired buffs and
// reporting which state-mirrored types were cleared (their mirror state
// should be removed by the caller from the owning creature).
func (l *List) Tick() []entity.State {
	var cleared []entity.State
	kept := l.items[:0]
	for _, b := range l.items {
		b.TurnsRemaining--
		if b.TurnsRemaining <= 0 {
			if st, ok := stateMirror[b.Type]; ok {
				cleared = append(cleared, st)
			}
			continue
		}
		kept = append(kept, b)
	}
	l.items = kept
	return cleared
}

// RemoveBrokenByAttacking removes buffs that break on the owner's successful
// attack (invisibility, sanctuary), reporting any state-mirrors to clear.
func (l *List) RemoveBrokenByAttacking() []entity.State {
	var cleared []entity.State
	kept := l.items[:0]
	for _, b := range l.items {
		if brokenByAttacking[b.Type] {
			if st, ok := stateMirror[b.Type]; ok {
				cleared = append(cleared, st)
			}
			continue
		}
		kept = append(kept, b)
	}
	l.items = kept
	return cleared
}

// ACBonus sums AC-affecting buffs, negated (AC improves downward).
func (l *List) ACBonus() int {
	total := 0
	for _, b := range l.items {
		if acAffecting[b.Type] {
			total -= b.Value
		}
	}
	return total
}

// HitModifier sums the flat hit-roll bonus from active buffs (BLESS, etc).
func (l *List) HitModifier() int {
	total := 0
	for _, b := range l.items {
		total += hitModifiers[b.Type]
	}
	return total
}

// ResistancePct returns the percentage damage reduction against dt granted
// by an active resistance buff, 0 if none.
func (l *List) ResistancePct(dt entity.DamageType) int {
	t, ok := DamageResistance[dt]
	if !ok {
		return 0
	}
	return l.Value(t)
}

// Items exposes a read-only snapshot of the active buffs, e.g. for save/load.
func (l *List) Items() []Buff {
	return append([]Buff(nil), l.items...)
}

// Restore replaces the buff list wholesale, used by load.
func (l *List) Restore(items []Buff) {
	l.items = append([]Buff(nil), items...)
}
