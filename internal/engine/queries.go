package engine

import (
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/world"
)

// TileInfo is the egress shape for one queried map cell, per spec.md §6's
// tile_info(pos) -> (kind, explored, in_fov, cost).
type TileInfo struct {
	Kind     world.Kind
	Explored bool
	InFOV    bool
	Cost     int
}

// TileInfo reports a single cell's static/visibility state without exposing
// the Map type itself across the engine boundary.
func (ctx *Context) TileInfo(pos geom.Vec2) TileInfo {
	t := ctx.Map.At(pos)
	return TileInfo{
		Kind:     t.Kind,
		Explored: ctx.Map.IsExplored(pos),
		InFOV:    ctx.Map.IsInFOV(pos),
		Cost:     t.Cost(),
	}
}

// VisibleCreature is one renderable creature record, per spec.md §6's
// creatures_in_fov() -> [{pos,glyph,color,name}].
type VisibleCreature struct {
	Pos   geom.Vec2
	Glyph string
	Color int
	Name  string
}

// CreaturesInFOV lists every living creature currently in the player's
// field of view, the player's own tile excluded (the renderer draws '@'
// separately).
func (ctx *Context) CreaturesInFOV() []VisibleCreature {
	var out []VisibleCreature
	for _, c := range ctx.Creatures {
		if c.IsDead() || !ctx.Map.IsInFOV(c.Position) {
			continue
		}
		out = append(out, VisibleCreature{
			Pos:   c.Position,
			Glyph: c.Display.Glyph,
			Color: c.Display.Color,
			Name:  c.Display.Name,
		})
	}
	return out
}

// EquippedItem names what sits in one equipment slot, for the player_state
// query's "equipped" field.
type EquippedItem struct {
	Slot entity.Slot
	Name string
}

// PlayerStateSnapshot is the egress shape for spec.md §6's
// player_state() -> {hp,hp_max,ac,thac0,abilities,hunger,level,xp,gold,equipped}.
type PlayerStateSnapshot struct {
	HP, HPMax  int
	AC, Thac0  int
	Abilities  entity.Abilities
	Hunger     int
	HungerBand string
	Level      int
	XP         int
	Gold       int
	Equipped   []EquippedItem
}

var hungerBandNames = map[int]string{
	0: "well fed",
	1: "satiated",
	2: "hungry",
	3: "starving",
	4: "dying",
}

// PlayerState reports the player's full queryable status.
func (ctx *Context) PlayerState() PlayerStateSnapshot {
	p := ctx.Player
	snap := PlayerStateSnapshot{
		Abilities: p.Abilities,
		Hunger:    ctx.Hunger.Value,
		Level:     p.Level,
		XP:        p.XP,
		Gold:      p.Gold,
	}
	snap.HungerBand = hungerBandNames[int(ctx.Hunger.Band())]
	if p.Destructible != nil {
		snap.HP = p.Destructible.HP
		snap.HPMax = p.Destructible.HPMax
		snap.AC = p.Destructible.ArmorClass
		snap.Thac0 = p.Destructible.Thac0
	}
	if p.Equipment != nil {
		byID := make(map[uint64]*entity.Item, len(p.Inventory.Items))
		for _, it := range p.Inventory.Items {
			byID[uint64(it.ID)] = it
		}
		for slot, itemID := range p.Equipment.Slots {
			if itemID == 0 {
				continue
			}
			if it, ok := byID[uint64(itemID)]; ok {
				snap.Equipped = append(snap.Equipped, EquippedItem{Slot: entity.Slot(slot), Name: it.Display.Name})
			}
		}
	}
	return snap
}

// DrainMessages returns every log message produced since the last call and
// advances the drain offset, per spec.md §6's drain_messages().
func (ctx *Context) DrainMessages() []string {
	pending := ctx.messages[ctx.drainOffset:]
	out := append([]string(nil), pending...)
	ctx.drainOffset = len(ctx.messages)
	return out
}
