package ai

import (
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
)

const maxTradeDistance = 1

// ShopkeeperState mirrors AiShopkeeper's fields verbatim: a one-shot
// "approached" latch plus a trade-menu-open flag the core toggles and the
// outer UI layer owns the lifetime of, per spec.md §9's note to separate the
// trade-request event from transient UI menu state.
type ShopkeeperState struct {
	MoveCount         int
	TradeMenuOpen     bool
	HasApproachedOnce bool
}

// ShopkeeperResult reports whether this update opened a trade request, for
// the caller to surface to the UI layer.
type ShopkeeperResult struct {
	OpenTrade bool
}

// UpdateShopkeeper runs one turn of AiShopkeeper::update/moveOrTrade verbatim.
func UpdateShopkeeper(owner *entity.Creature, st *ShopkeeperState, env Env) ShopkeeperResult {
	if owner.IsDead() {
		return ShopkeeperResult{}
	}

	distance := owner.TileDistance(env.Player.Position)
	if distance > maxTradeDistance {
		st.TradeMenuOpen = false
	}

	if st.HasApproachedOnce {
		return tryTrade(owner, st, distance)
	}

	if env.Map.IsInFOV(owner.Position) {
		if st.MoveCount == 0 {
			st.MoveCount = TrackingTurns
			st.HasApproachedOnce = true
		}
	} else if st.MoveCount > 0 {
		st.MoveCount--
	}

	if st.MoveCount > 0 {
		shopkeeperMoveToward(owner, env.Player.Position, env)
	}
	return ShopkeeperResult{}
}

func tryTrade(owner *entity.Creature, st *ShopkeeperState, distance int) ShopkeeperResult {
	if distance <= maxTradeDistance && !st.TradeMenuOpen {
		st.TradeMenuOpen = true
		st.MoveCount = 0
		return ShopkeeperResult{OpenTrade: true}
	}
	return ShopkeeperResult{}
}

// shopkeeperMoveToward follows AiShopkeeper::moveToTarget's diagonal-first
// priority order, refusing to step onto the player's own tile.
func shopkeeperMoveToward(owner *entity.Creature, target geom.Vec2, env Env) {
	step := owner.Position.Step(target)
	moves := []geom.Vec2{step, {Y: 0, X: step.X}, {Y: step.Y, X: 0}}
	for _, m := range moves {
		if m.Y == 0 && m.X == 0 {
			continue
		}
		next := owner.Position.Add(m)
		if next.Equal(target) {
			continue
		}
		if !env.Map.CanWalk(next, owner.CanSwim()) {
			continue
		}
		if env.Occupied != nil && env.Occupied(next) {
			continue
		}
		owner.Position = next
		return
	}
}
