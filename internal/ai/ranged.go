package ai

import (
	"rogue-engine/internal/combat"
	"rogue-engine/internal/entity"
)

// RangedState is per-monster ranged AI state: same tracking counter shape as
// melee, plus the min/max effective firing distance, per spec.md §4.9.
type RangedState struct {
	MoveCount  int
	MinRange   int
	MaxRange   int
}

// UpdateRanged fires a projectile at the player when within [MinRange,
// MaxRange] and in line of sight; backs away if too close; otherwise paths
// in like a melee monster. Grounded on spec.md §4.9's ranged-AI prose (no
// AiMonsterRanged.cpp file was retrieved in the pack).
func UpdateRanged(owner *entity.Creature, st *RangedState, env Env) {
	if owner.IsDead() {
		return
	}
	if env.Map.IsInFOV(owner.Position) {
		st.MoveCount = TrackingTurns
	} else if st.MoveCount > 0 {
		st.MoveCount--
	}
	if st.MoveCount <= 0 {
		return
	}

	distance := owner.TileDistance(env.Player.Position)
	switch {
	case distance < st.MinRange:
		backAway(owner, env)
	case distance <= st.MaxRange && hasLineOfSight(owner, env):
		owner.States.Add(entity.IsRanged)
		combat.Attack(owner, env.Player, env.Dice)
	default:
		moveOrAttack(owner, env.Player.Position, env)
	}
}

func backAway(owner *entity.Creature, env Env) {
	step := env.Player.Position.Step(owner.Position)
	next := owner.Position.Add(step)
	if env.Map.CanWalk(next, owner.CanSwim()) && (env.Occupied == nil || !env.Occupied(next)) {
		owner.Position = next
	}
}

// hasLineOfSight is a coarse check reusing the FOV bitmap computed from the
// player's own position: the ranged monster can see the player iff the
// player's FOV pass also lights the monster's tile (FOV is symmetric).
func hasLineOfSight(owner *entity.Creature, env Env) bool {
	return env.Map.IsInFOV(owner.Position)
}
