// Package spell implements the spell registry, rest-time memorization, and
// cast effect execution, grounded verbatim on
// original_source/src/Systems/SpellSystem.cpp.
package spell

import (
	"rogue-engine/internal/buff"
	"rogue-engine/internal/combat"
	"rogue-engine/internal/dice"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/target"
	"rogue-engine/internal/world"
)

// ID identifies a spell in the registry.
type ID string

const (
	CureLightWounds ID = "cure_light_wounds"
	Bless           ID = "bless"
	Sanctuary       ID = "sanctuary"
	HoldPerson      ID = "hold_person"
	Silence         ID = "silence"
	MagicMissile    ID = "magic_missile"
	Shield          ID = "shield"
	Sleep           ID = "sleep"
	Invisibility    ID = "invisibility"
	Web             ID = "web"
)

// Class is which caster type can learn a spell.
type Class int

const (
	ClassCleric Class = iota
	ClassWizard
	ClassBoth
)

// Definition is a spell's static registry entry, per SpellSystem.cpp's
// SpellDefinition table.
type Definition struct {
	ID          ID
	Name        string
	Level       int
	Class       Class
	Description string
}

// Table is the spell registry, grounded verbatim on get_spell_table().
var Table = map[ID]Definition{
	CureLightWounds: {CureLightWounds, "Cure Light Wounds", 1, ClassCleric, "Heals 1d8 HP"},
	Bless:           {Bless, "Bless", 1, ClassCleric, "+1 to hit for 6 turns"},
	Sanctuary:       {Sanctuary, "Sanctuary", 1, ClassCleric, "Enemies ignore you for 3 turns"},
	HoldPerson:      {HoldPerson, "Hold Person", 2, ClassCleric, "Paralyze target for 4 turns"},
	Silence:         {Silence, "Silence", 2, ClassCleric, "Prevent target from casting"},
	MagicMissile:    {MagicMissile, "Magic Missile", 1, ClassWizard, "1d4+1 force damage, auto-hit"},
	Shield:          {Shield, "Shield", 1, ClassWizard, "+4 AC for 5 turns"},
	Sleep:           {Sleep, "Sleep", 1, ClassWizard, "Put weak enemies to sleep"},
	Invisibility:    {Invisibility, "Invisibility", 2, ClassWizard, "Become invisible for 20 turns"},
	Web:             {Web, "Web", 2, ClassWizard, "Create webs to trap enemies"},
}

// clericSlots and wizardSlots are the AD&D 2e spell-slots-per-caster-level
// progression tables, ported verbatim from get_spell_slots.
var clericSlots = [][]int{
	{1}, {2}, {2, 1}, {3, 2}, {3, 3, 1}, {3, 3, 2}, {3, 3, 2, 1}, {3, 3, 3, 2}, {4, 4, 3, 2, 1}, {4, 4, 3, 3, 2},
}

var wizardSlots = [][]int{
	{1}, {2}, {2, 1}, {3, 2}, {4, 2, 1}, {4, 2, 2}, {4, 3, 2, 1}, {4, 3, 3, 2}, {4, 3, 3, 2, 1}, {4, 4, 3, 2, 2},
}

// CasterClass distinguishes a player's spellcasting class, separate from
// Class (a spell's allowed caster) since NONE casters have no slots at all.
type CasterClass int

const (
	CasterNone CasterClass = iota
	CasterCleric
	CasterWizard
)

// SpellSlots returns the per-spell-level slot counts for a caster at level,
// capped at the table's level-10 row like the source's std::min(level, 10).
func SpellSlots(class CasterClass, level int) []int {
	var table [][]int
	switch class {
	case CasterCleric:
		table = clericSlots
	case CasterWizard:
		table = wizardSlots
	default:
		return nil
	}
	idx := level
	if idx > 10 {
		idx = 10
	}
	idx--
	if idx < 0 || idx >= len(table) {
		return nil
	}
	return table[idx]
}

// AvailableSpells lists every registry spell castable by class at or below
// maxSpellLevel, per get_available_spells.
func AvailableSpells(class CasterClass, maxSpellLevel int) []ID {
	var want Class
	switch class {
	case CasterCleric:
		want = ClassCleric
	case CasterWizard:
		want = ClassWizard
	default:
		return nil
	}
	var out []ID
	for id, def := range Table {
		if (def.Class == want || def.Class == ClassBoth) && def.Level <= maxSpellLevel {
			out = append(out, id)
		}
	}
	return out
}

// Memorize fills memorizedSpells top-down from the available-spells list,
// per spec.md §4.11's "rest-time memorization" rule and show_memorization_menu.
func Memorize(class CasterClass, level int) []ID {
	slots := SpellSlots(class, level)
	if len(slots) == 0 {
		return nil
	}
	available := AvailableSpells(class, len(slots))
	var memorized []ID
	for spellLevel := 1; spellLevel <= len(slots); spellLevel++ {
		remaining := slots[spellLevel-1]
		for _, id := range available {
			if remaining <= 0 {
				break
			}
			if Table[id].Level == spellLevel {
				memorized = append(memorized, id)
				remaining--
			}
		}
	}
	return memorized
}

// NumMissiles implements calculate_num_missiles: 1 at level 1, +1 every 2
// levels, capped at 5.
func NumMissiles(casterLevel int) int {
	n := 1 + (casterLevel-1)/2
	if n > 5 {
		n = 5
	}
	return n
}

// CastResult reports what a cast produced, for the caller to log/animate —
// the core never draws, per spec.md §1.
type CastResult struct {
	Success  bool
	Message  string
	Damage   int
	Affected int
}

// Cast dispatches to the spell's effect implementation, per cast_spell's
// switch. Unimplemented registry entries (Sanctuary/HoldPerson/Silence/Web,
// referenced in SpellSystem.cpp's table but whose cast_* bodies are TODO
// stubs there too) report failure without consuming the caster's memorized
// slot, matching the source's behavior exactly.
func Cast(id ID, caster *entity.Creature, allCreatures []*entity.Creature, m *world.Map, d *dice.Dice) CastResult {
	switch id {
	case CureLightWounds:
		return castCureLightWounds(caster, d)
	case Bless:
		return castBless(caster)
	case MagicMissile:
		return castMagicMissile(caster, allCreatures, m, d)
	case Shield:
		return castShield(caster)
	case Sleep:
		return castSleep(allCreatures, m, d)
	case Invisibility:
		return castInvisibility(caster)
	default:
		return CastResult{Message: "Spell not implemented yet."}
	}
}

func castCureLightWounds(caster *entity.Creature, d *dice.Dice) CastResult {
	if caster.Destructible == nil {
		return CastResult{}
	}
	healing := d.Roll(1, 8)
	before := caster.Destructible.HP
	caster.Destructible.HP += healing
	caster.Destructible.Clamp()
	actual := caster.Destructible.HP - before
	return CastResult{Success: true, Message: "Cure Light Wounds!", Damage: -actual}
}

func castBless(caster *entity.Creature) CastResult {
	caster.Buffs.Add(buff.Buff{Type: buff.Bless, Value: 1, TurnsRemaining: 6})
	return CastResult{Success: true, Message: "Bless! +1 to hit for 6 turns."}
}

func castShield(caster *entity.Creature) CastResult {
	caster.Buffs.Add(buff.Buff{Type: buff.Shield, Value: 4, TurnsRemaining: 5})
	return CastResult{Success: true, Message: "Shield! +4 AC for 5 turns."}
}

func castInvisibility(caster *entity.Creature) CastResult {
	caster.Buffs.Add(buff.Buff{Type: buff.Invisibility, Value: 1, TurnsRemaining: 20})
	caster.States.Add(entity.IsInvisible)
	return CastResult{Success: true, Message: "Invisibility! You fade from view for 20 turns."}
}

// castMagicMissile fires each missile at the nearest still-living visible
// creature, matching cast_magic_missile's behavior in
// original_source/src/Systems/SpellSystem.cpp:256-325: targets are sorted by
// distance once, then every missile re-scans that same sorted list for the
// first target not yet dead, so damage concentrates on the nearest victim and
// only spills onto the next-nearest once the current one is killed.
func castMagicMissile(caster *entity.Creature, all []*entity.Creature, m *world.Map, d *dice.Dice) CastResult {
	targets := target.NNearestVisible(caster, all, m, len(all))
	if len(targets) == 0 {
		return CastResult{Message: "No valid target in sight!"}
	}
	total := 0
	for i := 0; i < NumMissiles(caster.Level); i++ {
		var tgt *entity.Creature
		for _, t := range targets {
			if !t.IsDead() {
				tgt = t
				break
			}
		}
		if tgt == nil {
			break
		}
		dmg := d.Roll(1, 4) + 1
		total += combat.TakeDamage(tgt, dmg, entity.Magic)
	}
	return CastResult{Success: true, Message: "Magic Missile!", Damage: total}
}

// castSleep implements cast_sleep's literal "affect creatures with low HP
// simulating HD" approximation: instantly kills each visible creature whose
// hp_max fits within the shrinking 2d8 HD budget (4 hp per HD).
func castSleep(all []*entity.Creature, m *world.Map, d *dice.Dice) CastResult {
	hdBudget := d.Roll(2, 8)
	affected := 0
	for _, c := range all {
		if c.Destructible == nil || c.IsDead() || !m.IsInFOV(c.Position) {
			continue
		}
		if c.Destructible.HPMax > hdBudget*4 {
			continue
		}
		combat.TakeDamage(c, 9999, entity.Magic)
		affected++
		hdBudget -= c.Destructible.HPMax / 4
		if hdBudget <= 0 {
			break
		}
	}
	if affected == 0 {
		return CastResult{Message: "Sleep spell has no effect on these creatures."}
	}
	return CastResult{Success: true, Message: "Sleep!", Affected: affected}
}
