// Package ai implements per-creature decision variants, grounded on
// original_source/src/Ai/AiMonster.cpp, AiShopkeeper.cpp, AiMimic.cpp, and
// the AiSpider.h/AiSpider.cpp constant block (AiSpider.cpp itself retains
// only its constants, not its method bodies, so the spider ambush/web
// mechanics are built to match that declared shape rather than ported
// verbatim).
package ai

import (
	"rogue-engine/internal/combat"
	"rogue-engine/internal/dice"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/world"
)

// TrackingTurns is how long a monster continues pathing to the player's
// last-known position after losing sight, per original_source.
const TrackingTurns = 3

// MeleeState is the mutable per-monster melee AI state.
type MeleeState struct {
	MoveCount int
}

// Env bundles the read-only world context every AI update needs.
type Env struct {
	Map      *world.Map
	Player   *entity.Creature
	Dice     *dice.Dice
	Occupied world.Occupied

	// Objects is the owning Context's general object list (spec.md §3's
	// "object list (webs, etc.)"), passed by pointer so Web Spinner AI can
	// append newly spun webs to it.
	Objects *[]*world.Web

	// FloorItems is the owning Context's floor item list, passed by pointer
	// so Mimic AI can consume nearby items.
	FloorItems *[]*entity.Item
}

// UpdateMelee runs one turn of the default monster AI, grounded verbatim on
// AiMonster::update/moveOrAttack.
func UpdateMelee(owner *entity.Creature, st *MeleeState, env Env) {
	if owner.IsDead() {
		return
	}

	if env.Map.IsInFOV(owner.Position) {
		st.MoveCount = TrackingTurns
	} else if st.MoveCount > 0 {
		st.MoveCount--
	}

	distance := owner.TileDistance(env.Player.Position)

	switch {
	case st.MoveCount > 0:
		moveOrAttack(owner, env.Player.Position, env)
	case distance <= 15:
		if env.Dice.Chance(6, 1) {
			moveOrAttack(owner, env.Player.Position, env)
		} else if env.Dice.Chance(10, 1) {
			wander(owner, env)
		}
	default:
		if env.Dice.Chance(20, 1) {
			wander(owner, env)
		}
	}
}

func moveOrAttack(owner *entity.Creature, target geom.Vec2, env Env) {
	distance := owner.TileDistance(target)
	if distance <= 1 {
		combat.Attack(owner, env.Player, env.Dice)
		return
	}
	path := env.Map.AStar(owner.Position, target, owner.CanSwim(), env.Occupied)
	if len(path) > 1 && (env.Occupied == nil || !env.Occupied(path[1])) {
		owner.Position = path[1]
	}
}

func wander(owner *entity.Creature, env Env) {
	dy := env.Dice.Roll(-1, 1)
	dx := env.Dice.Roll(-1, 1)
	if dy == 0 && dx == 0 {
		return
	}
	next := owner.Position.Add(geom.Vec2{Y: dy, X: dx})
	if env.Map.CanWalk(next, owner.CanSwim()) && (env.Occupied == nil || !env.Occupied(next)) {
		owner.Position = next
	}
}
