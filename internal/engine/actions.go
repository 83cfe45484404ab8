package engine

import (
	"strconv"

	"rogue-engine/internal/buff"
	"rogue-engine/internal/combat"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/hunger"
	"rogue-engine/internal/id"
	"rogue-engine/internal/inventory"
	"rogue-engine/internal/shop"
	"rogue-engine/internal/spell"
	"rogue-engine/internal/target"
	"rogue-engine/internal/world"
)

// ActionResult reports what an ingress action produced, per spec.md §6:
// each action returns success plus whether it ended the turn.
type ActionResult struct {
	Success  bool
	EndsTurn bool
	Message  string
}

func (ctx *Context) finish(success, endsTurn bool, msg string) ActionResult {
	if msg != "" {
		ctx.log(msg)
	}
	if success && endsTurn && ctx.Status != StatusDefeat {
		ctx.runTurn()
	}
	return ActionResult{Success: success, EndsTurn: endsTurn && success, Message: msg}
}

func (ctx *Context) creatureAt(pos geom.Vec2) *entity.Creature {
	for _, c := range ctx.Creatures {
		if !c.IsDead() && c.Position.Equal(pos) {
			return c
		}
	}
	return nil
}

// Move steps the player one tile in dir: attacks an occupying creature,
// opens a closed door, or walks, per spec.md §6's move() ingress contract.
func (ctx *Context) Move(dir geom.Vec2) ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	if ctx.Player.States.Has(entity.IsEntangled) {
		return ctx.finish(true, true, "You struggle against the web!")
	}
	dest := ctx.Player.Position.Add(dir)
	if !ctx.Map.InBounds(dest) {
		return ActionResult{}
	}

	if other := ctx.creatureAt(dest); other != nil {
		res := combat.Attack(ctx.Player, other, ctx.Dice)
		return ctx.resolveAttack(res, other)
	}

	if ctx.Map.At(dest).Kind == world.ClosedDoor {
		ctx.Map.OpenDoor(dest)
		return ctx.finish(true, true, "You open the door.")
	}

	if !ctx.Map.CanWalk(dest, ctx.Player.CanSwim()) {
		return ActionResult{}
	}
	ctx.Player.Position = dest
	if w := ctx.webAt(dest); w != nil {
		return ctx.finish(true, true, ctx.springWeb(w))
	}
	return ctx.finish(true, true, "")
}

// webAt finds the web object occupying pos, if any.
func (ctx *Context) webAt(pos geom.Vec2) *world.Web {
	for _, w := range ctx.Objects {
		if w.Position.Equal(pos) {
			return w
		}
	}
	return nil
}

// springWeb resolves the player stepping into a web: a WEB_TRAP_CHANCE roll
// decides whether they're fully entangled for Web.Strength turns, per
// AiSpider.h's declared WEB_TRAP_CHANCE constant.
func (ctx *Context) springWeb(w *world.Web) string {
	if !ctx.Dice.Chance(world.WebTrapChancePct, 1) {
		return "You push through a sticky web."
	}
	ctx.Player.Buffs.Add(buff.Buff{Type: buff.Entangled, Value: 1, TurnsRemaining: w.Strength})
	ctx.Player.States.Add(entity.IsEntangled)
	return "You stumble into a web and are entangled!"
}

func (ctx *Context) resolveAttack(res combat.AttackResult, victim *entity.Creature) ActionResult {
	switch res.Outcome {
	case combat.OutcomeTradeRedirect:
		return ctx.finish(true, false, victim.Display.Name+" refuses to fight. Trade instead?")
	case combat.OutcomeInVain:
		return ctx.finish(false, false, "Nothing happens.")
	case combat.OutcomeMiss:
		return ctx.finish(true, true, "You miss the "+victim.Display.Name+".")
	case combat.OutcomeNoEffect:
		return ctx.finish(true, true, "Your attack has no effect.")
	case combat.OutcomeHit:
		msg := "You hit the " + victim.Display.Name + " for " + strconv.Itoa(res.Damage) + " damage."
		return ctx.finish(true, true, msg)
	default:
		return ctx.finish(true, false, "Nothing happens.")
	}
}

// Wait always succeeds and advances the turn, per spec.md §6.
func (ctx *Context) Wait() ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	return ctx.finish(true, true, "")
}

// PickUp takes the item at the player's position into their inventory,
// per spec.md §6's pick_up().
func (ctx *Context) PickUp() ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	idx := -1
	for i, it := range ctx.FloorItems {
		if it.Position.Equal(ctx.Player.Position) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ctx.finish(false, false, "There is nothing here.")
	}
	item := ctx.FloorItems[idx]
	if err := inventory.Add(ctx.Player.Inventory, item, ctx.Bus); err != nil {
		return ctx.finish(false, false, "Your pack is full.")
	}
	ctx.FloorItems = append(ctx.FloorItems[:idx], ctx.FloorItems[idx+1:]...)
	return ctx.finish(true, true, "You pick up the "+item.Display.Name+".")
}

// Drop removes itemID from the player's inventory onto the floor, per
// spec.md §6's drop(item_id).
func (ctx *Context) Drop(itemID id.ID) ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	item, err := inventory.RemoveByID(ctx.Player.Inventory, itemID, ctx.Bus)
	if err != nil {
		return ctx.finish(false, false, "You aren't carrying that.")
	}
	item.Position = ctx.Player.Position
	ctx.FloorItems = append(ctx.FloorItems, item)
	return ctx.finish(true, true, "You drop the "+item.Display.Name+".")
}

func (ctx *Context) findCarried(itemID id.ID) *entity.Item {
	for _, it := range ctx.Player.Inventory.Items {
		if it.ID == itemID {
			return it
		}
	}
	return nil
}

// Equip moves an inventory item into its equipment slot (determined from
// the item's class), per spec.md §6's equip(item_id). Equipping is a
// menu-driven action in the source and does not itself consume a turn.
func (ctx *Context) Equip(itemID id.ID) ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	item := ctx.findCarried(itemID)
	if item == nil {
		return ctx.finish(false, false, "You aren't carrying that.")
	}
	if _, err := inventory.Equip(ctx.Player, item); err != nil {
		return ctx.finish(false, false, "You can't equip that there.")
	}
	ctx.Player.SyncRangedState(func(i id.ID) bool {
		if it := ctx.findCarried(i); it != nil {
			return it.IsRangedWpn
		}
		return false
	})
	combat.RecomputeArmorClass(ctx.Player, ctx.equipmentBonus(ctx.Player))
	return ctx.finish(true, false, "You equip the "+item.Display.Name+".")
}

// Unequip clears slot, syncing IS_RANGED and armor class afterward, per
// spec.md §6's equip/unequip pairing.
func (ctx *Context) Unequip(slot entity.Slot) ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	if inventory.Unequip(ctx.Player, slot) == 0 {
		return ctx.finish(false, false, "Nothing is equipped there.")
	}
	ctx.Player.SyncRangedState(func(i id.ID) bool {
		if it := ctx.findCarried(i); it != nil {
			return it.IsRangedWpn
		}
		return false
	})
	combat.RecomputeArmorClass(ctx.Player, ctx.equipmentBonus(ctx.Player))
	return ctx.finish(true, false, "You unequip that.")
}

// UseItem resolves a consumable's effect against the resolved target, per
// spec.md §6's use_item(item_id).
func (ctx *Context) UseItem(itemID id.ID, mode target.Mode, tilePick geom.Vec2) ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	item := ctx.findCarried(itemID)
	if item == nil {
		return ctx.finish(false, false, "You aren't carrying that.")
	}

	msg, ok := ctx.applyPickable(item, mode, tilePick)
	if !ok {
		return ctx.finish(false, false, msg)
	}
	inventory.RemoveByID(ctx.Player.Inventory, itemID, ctx.Bus)
	return ctx.finish(true, true, msg)
}

func (ctx *Context) applyPickable(item *entity.Item, mode target.Mode, tilePick geom.Vec2) (string, bool) {
	switch item.Pickable {
	case entity.PickableHealer:
		if ctx.Player.Destructible == nil {
			return "Nothing happens.", false
		}
		before := ctx.Player.Destructible.HP
		ctx.Player.Destructible.HP += item.HealAmount
		ctx.Player.Destructible.Clamp()
		return "You feel better (+" + strconv.Itoa(ctx.Player.Destructible.HP-before) + " HP).", true
	case entity.PickableFood, entity.PickableCorpseFood:
		ctx.Hunger.Decrease(item.Nutrition)
		return "That was satisfying.", true
	case entity.PickableGold:
		ctx.Player.Gold += item.GoldAmount
		return "You found " + strconv.Itoa(item.GoldAmount) + " gold.", true
	case entity.PickableConfusion, entity.PickableLightningBolt, entity.PickableFireball:
		return ctx.applyOffensivePickable(item, mode, tilePick)
	case entity.PickableTeleport:
		room, ok := ctx.Map.RandomRoom(ctx.Dice)
		if !ok {
			return "Nothing happens.", false
		}
		pos, ok := ctx.Map.RandomWalkableInRoom(ctx.Dice, room)
		if !ok {
			return "Nothing happens.", false
		}
		ctx.Player.Position = pos
		return "You are teleported away!", true
	case entity.PickableStatBoost:
		ctx.Player.Abilities.STR++
		return "You feel stronger!", true
	default:
		return "Nothing happens.", false
	}
}

func (ctx *Context) applyOffensivePickable(item *entity.Item, mode target.Mode, tilePick geom.Vec2) (string, bool) {
	_, pos, err := target.Resolve(mode, ctx.Player, ctx.Creatures, ctx.Map, tilePick)
	if err != nil {
		return "No valid target.", false
	}
	victim := ctx.creatureAt(pos)
	if victim == nil {
		return "No valid target.", false
	}
	switch item.Pickable {
	case entity.PickableConfusion:
		victim.States.Add(entity.IsConfused)
		return victim.Display.Name + " looks confused.", true
	case entity.PickableLightningBolt, entity.PickableFireball:
		dealt := combat.TakeDamage(victim, item.Damage, entity.Fire)
		return victim.Display.Name + " is struck for " + strconv.Itoa(dealt) + " damage.", true
	}
	return "Nothing happens.", false
}

// CastSpell resolves a memorized spell, per spec.md §6's cast_spell(spell_id).
func (ctx *Context) CastSpell(spellID spell.ID) ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	slot := -1
	for i, s := range ctx.Player.MemorizedSpells {
		if s == string(spellID) {
			slot = i
			break
		}
	}
	if slot < 0 {
		return ctx.finish(false, false, "That spell isn't memorized.")
	}

	res := spell.Cast(spellID, ctx.Player, append([]*entity.Creature{ctx.Player}, ctx.Creatures...), ctx.Map, ctx.Dice)
	if !res.Success {
		return ctx.finish(false, false, res.Message)
	}
	ctx.Player.MemorizedSpells = append(ctx.Player.MemorizedSpells[:slot], ctx.Player.MemorizedSpells[slot+1:]...)
	return ctx.finish(true, true, res.Message)
}

// Rest heals the player partway and advances the turn, refusing per
// spec.md §4.12's three preconditions.
func (ctx *Context) Rest() ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	d := ctx.Player.Destructible
	if d == nil {
		return ctx.finish(false, false, "You can't rest.")
	}
	if d.HP >= d.HPMax {
		return ctx.finish(false, false, "You are already at full health.")
	}
	for _, c := range ctx.Creatures {
		if !c.IsDead() && c.TileDistance(ctx.Player.Position) <= 5 && ctx.Map.IsInFOV(c.Position) {
			return ctx.finish(false, false, "You cannot rest with enemies nearby.")
		}
	}
	if ctx.Hunger.Band() >= hunger.Starving {
		return ctx.finish(false, false, "You are too hungry to rest.")
	}
	heal := d.HPMax / 5
	if heal < 1 {
		heal = 1
	}
	d.HP += heal
	d.Clamp()
	ctx.Hunger.Increase(50)
	return ctx.finish(true, true, "You rest and recover "+strconv.Itoa(heal)+" HP.")
}

// Descend advances to the next dungeon level, only when the player stands
// on the stairs, per spec.md §6's descend() and §4.14's progression cycle.
func (ctx *Context) Descend() ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	if !ctx.Player.Position.Equal(ctx.Stairs) {
		return ctx.finish(false, false, "There are no stairs here.")
	}
	if ctx.Level.IsFinalLevel() {
		ctx.Status = StatusVictory
		ctx.log("You escape the dungeon victorious!")
		return ActionResult{Success: true, Message: "You escape the dungeon victorious!"}
	}
	ctx.Level.Advance(ctx.Player)
	ctx.descendToNewLevel()
	return ctx.finish(true, false, "You descend to level "+strconv.Itoa(ctx.Level.DungeonLevel)+".")
}

// descendToNewLevel regenerates the map for the bumped dungeon-level
// counter and repopulates it, since internal/level's Advance has no map
// reference (spec.md §9's context-passing design keeps map regeneration
// the engine's responsibility).
func (ctx *Context) descendToNewLevel() {
	m, genResult := world.Generate(world.GenOptions{Seed: ctx.Seed + int64(ctx.Level.DungeonLevel)})
	ctx.Map = m
	ctx.Rooms = m.Rooms
	ctx.Stairs = genResult.StairsPos
	ctx.Player.Position = genResult.PlayerPos
	ctx.Creatures = nil
	ctx.FloorItems = nil
	ctx.ai = nil
	ctx.Map.ComputeFOV(ctx.Player.Position, world.FOVRadius)
	ctx.populateInitialLevel()
}

// OpenDoor opens a closed door adjacent to the player in dir, per spec.md
// §6's open_door(dir).
func (ctx *Context) OpenDoor(dir geom.Vec2) ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	pos := ctx.Player.Position.Add(dir)
	if !ctx.Map.OpenDoor(pos) {
		return ctx.finish(false, false, "There is no closed door there.")
	}
	return ctx.finish(true, true, "You open the door.")
}

// CloseDoor closes an open door adjacent to the player in dir, per
// spec.md §6's close_door(dir).
func (ctx *Context) CloseDoor(dir geom.Vec2) ActionResult {
	if ctx.Status != StatusIdle {
		return ActionResult{}
	}
	pos := ctx.Player.Position.Add(dir)
	if !ctx.Map.CloseDoor(pos) {
		return ctx.finish(false, false, "There is no open door there.")
	}
	return ctx.finish(true, true, "You close the door.")
}

// Trade executes a shop transaction against a latched shopkeeper. Not part
// of spec.md §6's named ingress list (the source's trade menu is UI-owned),
// but exposed here since internal/ai's shopkeeper update already signals
// OpenTrade and something must let a caller complete the exchange.
func (ctx *Context) Trade(s *shop.Shop, itemID id.ID, buying bool) ActionResult {
	if buying {
		var bought *entity.Item
		for _, it := range s.Inventory.Items {
			if it.ID == itemID {
				bought = it
				break
			}
		}
		if bought == nil {
			return ActionResult{}
		}
		price := s.BuyPrice(bought)
		if ctx.Player.Gold < price {
			return ActionResult{Message: "You can't afford that."}
		}
		if err := inventory.Add(ctx.Player.Inventory, bought, ctx.Bus); err != nil {
			return ActionResult{Message: "Your pack is full."}
		}
		inventory.RemoveByID(s.Inventory, itemID, ctx.Bus)
		ctx.Player.Gold -= price
		return ActionResult{Success: true, Message: "Bought " + bought.Display.Name + "."}
	}

	sold := ctx.findCarried(itemID)
	if sold == nil {
		return ActionResult{}
	}
	price := s.SellPrice(sold)
	inventory.RemoveByID(ctx.Player.Inventory, itemID, ctx.Bus)
	ctx.Player.Gold += price
	return ActionResult{Success: true, Message: "Sold " + sold.Display.Name + " for " + strconv.Itoa(price) + " gold."}
}
