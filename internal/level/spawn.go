package level

import "rogue-engine/internal/dice"

// MonsterSpawnTable is a registry entry for a level-scaled monster kind,
// per spec.md §4.10. Kind is a registry lookup key, not a display string.
type MonsterSpawnTable struct {
	Kind       string
	BaseWeight int
	LevelMin   int
	LevelMax   int
	Scaling    float64
}

// ItemSpawnTable mirrors MonsterSpawnTable for floor items, plus the
// category used by treasure-room guaranteed drops.
type ItemSpawnTable struct {
	Kind       string
	BaseWeight int
	LevelMin   int
	LevelMax   int
	Scaling    float64
	Category   string // weapon|scroll|potion|food
}

// EffectiveWeight implements spec.md §4.10's level-scaling formula:
// base * (1 + scaling*(level-1)), zero outside [levelMin, levelMax],
// otherwise clamped to at least 1.
func EffectiveWeight(base, levelMin, levelMax, level int, scaling float64) int {
	if level < levelMin || level > levelMax {
		return 0
	}
	w := int(float64(base) * (1 + scaling*float64(level-1)))
	if w < 1 {
		w = 1
	}
	return w
}

// PickMonster performs a cumulative-weight roll over entries at the given
// dungeon level, grounded on the teacher's selectWeightedTier in
// combat/loot.go. Returns false if every entry weighs zero at this level.
func PickMonster(d *dice.Dice, entries []MonsterSpawnTable, dungeonLevel int) (MonsterSpawnTable, bool) {
	total := 0
	weights := make([]int, len(entries))
	for i, e := range entries {
		weights[i] = EffectiveWeight(e.BaseWeight, e.LevelMin, e.LevelMax, dungeonLevel, e.Scaling)
		total += weights[i]
	}
	if total == 0 {
		return MonsterSpawnTable{}, false
	}
	roll := d.Roll(1, total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll <= cumulative {
			return entries[i], true
		}
	}
	return entries[len(entries)-1], true
}

// PickItem is PickMonster's twin over the item registry.
func PickItem(d *dice.Dice, entries []ItemSpawnTable, dungeonLevel int) (ItemSpawnTable, bool) {
	total := 0
	weights := make([]int, len(entries))
	for i, e := range entries {
		weights[i] = EffectiveWeight(e.BaseWeight, e.LevelMin, e.LevelMax, dungeonLevel, e.Scaling)
		total += weights[i]
	}
	if total == 0 {
		return ItemSpawnTable{}, false
	}
	roll := d.Roll(1, total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll <= cumulative {
			return entries[i], true
		}
	}
	return entries[len(entries)-1], true
}

// PickItemsByCategory filters to a single category and picks count entries
// by weight, for a treasure room's "1-5 extra items chosen by category"
// rule (spec.md §4.10).
func PickItemsByCategory(d *dice.Dice, entries []ItemSpawnTable, dungeonLevel int, category string, count int) []ItemSpawnTable {
	var pool []ItemSpawnTable
	for _, e := range entries {
		if e.Category == category {
			pool = append(pool, e)
		}
	}
	var picked []ItemSpawnTable
	for i := 0; i < count; i++ {
		e, ok := PickItem(d, pool, dungeonLevel)
		if !ok {
			break
		}
		picked = append(picked, e)
	}
	return picked
}

// MaxCreatures caps the simultaneous living-creature count that gates
// monster spawning, per spec.md §4.10 ("called every 2 turns if creature
// count < 10").
const MaxCreatures = 10

// MonsterSpawnIntervalTurns is how often the spawn check runs.
const MonsterSpawnIntervalTurns = 2

// ShouldSpawnMonsters reports whether this turn is a spawn-check turn and
// the creature count still has headroom.
func ShouldSpawnMonsters(turn, creatureCount int) bool {
	return turn%MonsterSpawnIntervalTurns == 0 && creatureCount < MaxCreatures
}

// TreasureRoomChancePct scales linearly with dungeon level within spec.md
// §4.10's 5-25% band, reaching 25% by the final level.
func TreasureRoomChancePct(dungeonLevel int) int {
	pct := 5 + (20*(dungeonLevel-1))/(FinalLevel-1)
	if pct > 25 {
		pct = 25
	}
	if pct < 5 {
		pct = 5
	}
	return pct
}

// RollTreasureRoom reports whether this room becomes a treasure room, and if
// so how many extra items and guardian monsters to place, per spec.md §4.10
// ("1-5 extra items... plus 0-3 guardian monsters").
func RollTreasureRoom(d *dice.Dice, dungeonLevel int) (isTreasure bool, extraItems, guardians int) {
	if d.Roll(1, 100) > TreasureRoomChancePct(dungeonLevel) {
		return false, 0, 0
	}
	return true, d.Roll(1, 5), d.Roll(0, 3)
}
