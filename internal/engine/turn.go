package engine

import (
	"strconv"
	"strings"

	"rogue-engine/internal/ai"
	"rogue-engine/internal/combat"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/hunger"
	"rogue-engine/internal/id"
	"rogue-engine/internal/level"
	"rogue-engine/internal/world"
)

// runTurn implements spec.md §5's NEW_TURN phase exactly: recompute map
// visibility, update every live creature's AI over a snapshot of the
// creature list, tick hunger, reap the dead, compact floor items, spawn
// replacements, advance the turn counter, return to IDLE.
func (ctx *Context) runTurn() {
	ctx.Status = StatusNewTurn
	ctx.Map.ComputeFOV(ctx.Player.Position, world.FOVRadius)

	snapshot := ctx.Creatures
	env := ai.Env{
		Map: ctx.Map, Player: ctx.Player, Dice: ctx.Dice, Occupied: ctx.occupied,
		Objects: &ctx.Objects, FloorItems: &ctx.FloorItems,
	}

	for _, c := range snapshot {
		if c.IsDead() {
			continue
		}
		ctx.updateCreatureAI(c, env)
	}

	ctx.tickBuffs(ctx.Player)
	for _, c := range snapshot {
		if !c.IsDead() {
			ctx.tickBuffs(c)
		}
	}

	for _, msg := range hunger.ApplyTo(ctx.Hunger, ctx.Player, ctx.Dice) {
		ctx.log(msg)
	}
	if ctx.Player.IsDead() {
		ctx.Status = StatusDefeat
	}

	ctx.reapDead()
	ctx.compactFloorItems()
	ctx.decayWebs()

	if level.ShouldSpawnMonsters(ctx.Turn, len(ctx.Creatures)) {
		ctx.spawnMonster()
	}

	ctx.Turn++
	if ctx.Status == StatusNewTurn {
		ctx.Status = StatusIdle
	}
}

func (ctx *Context) updateCreatureAI(c *entity.Creature, env ai.Env) {
	st := ctx.stateFor(c)
	switch c.AI {
	case entity.AIMelee:
		ai.UpdateMelee(c, &st.melee, env)
	case entity.AIRanged:
		ai.UpdateRanged(c, &st.ranged, env)
	case entity.AIShopkeeper:
		res := ai.UpdateShopkeeper(c, &st.shopkeeper, env)
		if res.OpenTrade {
			ctx.log(c.Display.Name + " offers to trade.")
		}
	case entity.AISpider:
		// The registry only tags the coarse "spider family" AIKind; the
		// giant-vs-small poison-chance split is read off the display name
		// since no separate enum column exists for it (see DESIGN.md).
		if strings.Contains(c.Display.Name, "giant") {
			st.spider.Variant = ai.SpiderGiant
		} else {
			st.spider.Variant = ai.SpiderSmall
		}
		ai.UpdateSpider(c, &st.spider, env)
	case entity.AIWebSpinner:
		st.spider.Variant = ai.SpiderWebSpinner
		ai.UpdateSpider(c, &st.spider, env)
	case entity.AIMimic:
		ai.UpdateMimic(c, &st.mimic, env)
	}
}

// tickBuffs decays every active buff by one turn, removes expired states,
// and recomputes armor class so a lapsed SHIELD buff stops contributing.
func (ctx *Context) tickBuffs(c *entity.Creature) {
	expired := c.Buffs.Tick()
	for _, st := range expired {
		c.States.Remove(st)
	}
	if c.Destructible != nil {
		combat.RecomputeArmorClass(c, ctx.equipmentBonus(c))
	}
}

// equipmentBonus sums a creature's worn armor/shield/helm/best-ring bonus.
// Monsters carry no Equipment, so they contribute zero (their BaseArmorClass
// already reflects their natural hide).
func (ctx *Context) equipmentBonus(c *entity.Creature) combat.EquipmentBonus {
	if c.Equipment == nil || c.Inventory == nil {
		return combat.EquipmentBonus{}
	}
	var bonus combat.EquipmentBonus
	byID := make(map[id.ID]*entity.Item, len(c.Inventory.Items))
	for _, it := range c.Inventory.Items {
		byID[it.ID] = it
	}
	if it, ok := byID[c.Equipment.Slots[entity.SlotBody]]; ok {
		bonus.Body = it.ACBonus
	}
	if it, ok := byID[c.Equipment.Slots[entity.SlotLeftHand]]; ok {
		bonus.Shield = it.ACBonus
	}
	if it, ok := byID[c.Equipment.Slots[entity.SlotHead]]; ok {
		bonus.Helm = it.ACBonus
	}
	best := 0
	for _, slot := range []entity.Slot{entity.SlotRightRing, entity.SlotLeftRing} {
		if it, ok := byID[c.Equipment.Slots[slot]]; ok && it.ACBonus < best {
			best = it.ACBonus
		}
	}
	bonus.BestRing = best
	return bonus
}

// reapDead removes dead creatures from the live list, awarding XP and
// dropping a corpse item for each, per spec.md §4.5 and the "iteration over
// a snapshot, reap after" ordering rule in §5.
func (ctx *Context) reapDead() {
	alive := ctx.Creatures[:0]
	for _, c := range ctx.Creatures {
		if !c.IsDead() {
			alive = append(alive, c)
			continue
		}
		res := combat.Die(c, ctx.Player, ctx.Gen)
		if res.Corpse != nil {
			ctx.FloorItems = append(ctx.FloorItems, res.Corpse)
		}
		if res.XPAward > 0 {
			ctx.log(c.Display.Name + " dies. You gain " + strconv.Itoa(res.XPAward) + " XP.")
		}
		if res.PlayerLevel {
			ctx.log("You feel stronger!")
		}
		delete(ctx.ai, c.ID)
	}
	ctx.Creatures = alive
}

// decayWebs ticks down every spun web's remaining lifetime, dropping any
// that have expired, per Web.TurnsLeft.
func (ctx *Context) decayWebs() {
	alive := ctx.Objects[:0]
	for _, w := range ctx.Objects {
		w.TurnsLeft--
		if w.TurnsLeft > 0 {
			alive = append(alive, w)
		}
	}
	ctx.Objects = alive
}

// compactFloorItems drops nil entries left behind by pick-up, per spec.md
// §5's "compact floor-inventory (drop nulls)" step. Our floor list never
// actually holds nils (RemoveByID-style operations splice instead), so this
// is a defensive no-op kept to mirror the spec's named step precisely.
func (ctx *Context) compactFloorItems() {
	kept := ctx.FloorItems[:0]
	for _, it := range ctx.FloorItems {
		if it != nil {
			kept = append(kept, it)
		}
	}
	ctx.FloorItems = kept
}
