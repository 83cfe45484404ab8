package ai

import (
	"rogue-engine/internal/buff"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/world"
)

// Spider AI constants, ported from the declared fields and constant block in
// original_source/src/Ai/AiSpider.h and AiSpider.cpp (AMBUSH_*, POISON_*): the
// header and constant block survived the retrieval pass intact, but the
// method bodies implementing ambush/poison-cooldown did not, so the
// mechanics below are built to match that declared shape rather than ported
// verbatim.
const (
	AmbushDurationTurns = 5  // AMBUSH_DURATION
	AmbushChancePct     = 30 // AMBUSH_CHANCE
	PoisonCooldownTurns = 6  // POISON_COOLDOWN
)

// cardinalDirs are the four orthogonal offsets used by isGoodAmbushSpot.
var cardinalDirs = [4]geom.Vec2{{Y: -1, X: 0}, {Y: 1, X: 0}, {Y: 0, X: -1}, {Y: 0, X: 1}}

// SpiderVariant distinguishes the three poison-chance stat blocks from
// original_source/src/Ai/Spider.cpp.
type SpiderVariant int

const (
	SpiderSmall SpiderVariant = iota
	SpiderGiant
	SpiderWebSpinner
)

// PoisonChancePct returns the per-hit poison-on-bite chance, per Spider.cpp:
// small spiders 25%, giant spiders and web-spinners 15%.
func (v SpiderVariant) PoisonChancePct() int {
	switch v {
	case SpiderSmall:
		return 25
	default:
		return 15
	}
}

// SpiderState is melee-shaped state plus the variant tag driving poison
// odds, ambush bookkeeping (AiSpider's ambushCounter/isAmbushing/
// poisonCooldown), and web-spinning bookkeeping (AiWebSpinner's webCooldown
// and per-spider web cap).
type SpiderState struct {
	Melee   MeleeState
	Variant SpiderVariant

	IsAmbushing bool
	AmbushTurns int
	PoisonCD    int

	WebCD       int
	WebsCreated int
}

// UpdateSpider runs the spider's turn: while unseen it may settle into an
// ambush near a wall (AMBUSH_CHANCE), holding position until the player
// wanders adjacent for a bonus-to-hit surprise attack; otherwise it falls
// back to AiMonster-style tracking/melee movement and rolls its variant's
// poison chance on any successful bite, gated by POISON_COOLDOWN. Web
// Spinners additionally spin a web on their own tile when off cooldown and
// the player is 2 to 6 tiles away (see updateWebSpinner).
func UpdateSpider(owner *entity.Creature, st *SpiderState, env Env) {
	if owner.IsDead() {
		return
	}

	if st.PoisonCD > 0 {
		st.PoisonCD--
	}

	distance := owner.TileDistance(env.Player.Position)

	if st.Variant == SpiderWebSpinner {
		updateWebSpinner(owner, st, env, distance)
	}

	if st.IsAmbushing {
		if distance <= 1 {
			ambushAttack(owner, st, env)
			return
		}
		st.AmbushTurns--
		if st.AmbushTurns <= 0 {
			st.IsAmbushing = false
		}
		return
	}

	if !env.Map.IsInFOV(owner.Position) && distance > 1 &&
		isGoodAmbushSpot(owner.Position, env) && env.Dice.Roll(1, 100) <= AmbushChancePct {
		st.IsAmbushing = true
		st.AmbushTurns = AmbushDurationTurns
		return
	}

	before := env.Player.Destructible
	var hpBefore int
	if before != nil {
		hpBefore = before.HP
	}

	UpdateMelee(owner, &st.Melee, env)

	if distance > 1 || before == nil || before.HP >= hpBefore || st.PoisonCD > 0 {
		return
	}
	if env.Dice.Roll(1, 100) <= st.Variant.PoisonChancePct() {
		env.Player.States.Add(entity.IsConfused)
		st.PoisonCD = PoisonCooldownTurns
	}
}

// isGoodAmbushSpot reports whether pos sits against at least one wall,
// matching AiSpider::isGoodAmbushSpot's "prefers walls and corners" intent.
func isGoodAmbushSpot(pos geom.Vec2, env Env) bool {
	for _, d := range cardinalDirs {
		if env.Map.IsWall(pos.Add(d)) {
			return true
		}
	}
	return false
}

// ambushAttack spends the stored ambush as a surprise attack with a brief
// to-hit bonus (reusing the existing Bless buff machinery for the bonus),
// then drops out of ambush mode regardless of outcome.
func ambushAttack(owner *entity.Creature, st *SpiderState, env Env) {
	owner.Buffs.Add(buff.Buff{Type: buff.Bless, Value: 1, TurnsRemaining: 1})
	moveOrAttack(owner, env.Player.Position, env)
	st.IsAmbushing = false
	st.AmbushTurns = 0
}

// updateWebSpinner spins a web near the spider's current position once
// WEB_COOLDOWN turns have passed, up to MAX_WEBS per spider, per
// AiWebSpinner::tryCreateWeb/shouldCreateWeb's declared shape.
func updateWebSpinner(owner *entity.Creature, st *SpiderState, env Env, distance int) {
	if st.WebCD > 0 {
		st.WebCD--
		return
	}
	if st.WebsCreated >= world.MaxWebsPerSpider || env.Objects == nil {
		return
	}
	if distance < 2 || distance > 6 {
		return
	}
	if env.Map.At(owner.Position).Kind != world.Floor {
		return
	}
	for _, w := range *env.Objects {
		if w.Position.Equal(owner.Position) {
			return
		}
	}

	*env.Objects = append(*env.Objects, &world.Web{
		Position:  owner.Position,
		Strength:  world.WebStrength,
		TurnsLeft: world.WebDecayTurns,
	})
	st.WebsCreated++
	st.WebCD = world.WebCooldownTurns
}
