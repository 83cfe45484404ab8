// Package level implements the dungeon-level counter and the level-scaled
// weighted spawn tables, grounded on spec.md §4.10 and on the teacher's
// cumulative-weight selection in combat/loot.go.
package level

import "rogue-engine/internal/entity"

// FinalLevel is the floor the Amulet of Yendor is placed on.
const FinalLevel = 10

// Manager tracks the dungeon-level counter and the per-level shopkeeper
// count, per spec.md §4.10 ("dungeon_level int starts at 1, ends at 10").
type Manager struct {
	DungeonLevel              int
	ShopkeepersOnCurrentLevel int
}

// NewManager starts a fresh run on dungeon level 1.
func NewManager() *Manager {
	return &Manager{DungeonLevel: 1}
}

// IsFinalLevel reports whether the current level is where the Amulet sits.
func (m *Manager) IsFinalLevel() bool {
	return m.DungeonLevel >= FinalLevel
}

// Advance implements Level-manager.advance_to_next_level: heal the player to
// half their max hp, bump the dungeon-level counter, and reset the
// per-level shopkeeper count. Map regeneration is the caller's job (the
// level manager has no map reference, per spec.md §9's context-passing
// design).
func (m *Manager) Advance(player *entity.Creature) {
	if player.Destructible != nil {
		half := player.Destructible.HPMax / 2
		if half < 1 {
			half = 1
		}
		if player.Destructible.HP < half {
			player.Destructible.HP = half
		}
		player.Destructible.Clamp()
	}
	m.DungeonLevel++
	m.ShopkeepersOnCurrentLevel = 0
}
