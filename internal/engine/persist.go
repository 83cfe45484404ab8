package engine

import (
	"rogue-engine/internal/dice"
	"rogue-engine/internal/id"
	"rogue-engine/internal/inventory"
	"rogue-engine/internal/registry"
	"rogue-engine/internal/save"
	"rogue-engine/internal/world"
)

// Capture converts the live Context into a save.Snapshot, per spec.md
// §4.15's save-document field list.
func (ctx *Context) Capture() *save.Snapshot {
	return save.Capture(&save.World{
		Map:        ctx.Map,
		Stairs:     ctx.Stairs,
		Player:     ctx.Player,
		Creatures:  ctx.Creatures,
		FloorItems: ctx.FloorItems,
		Objects:    ctx.Objects,
		Messages:   ctx.messages,
		Hunger:     ctx.Hunger,
		Level:      ctx.Level,
		Turn:       ctx.Turn,
	})
}

// SaveGame captures and atomically writes the current state to path.
func (ctx *Context) SaveGame(path string) error {
	return save.Write(path, ctx.Capture())
}

// LoadGame reads a snapshot from path and rebuilds a running Context from
// it. The map is restored from its persisted tiles rather than regenerated
// (spec.md §4.15: regenerating would destroy topology); FOV, spawn tables,
// and per-creature AI bookkeeping are derived state the snapshot doesn't
// carry and must be recomputed after restore.
func LoadGame(path string, gen *id.Generator, reg *registry.Registry) (*Context, error) {
	snap, err := save.Load(path)
	if err != nil {
		return nil, err
	}
	w := save.Restore(snap, gen)

	monsterTables, err := reg.SpawnTables()
	if err != nil {
		return nil, err
	}
	itemTables, err := reg.ItemSpawnTables()
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Map:           w.Map,
		Stairs:        w.Stairs,
		Rooms:         w.Map.Rooms,
		Player:        w.Player,
		Creatures:     w.Creatures,
		FloorItems:    w.FloorItems,
		Objects:       w.Objects,
		messages:      w.Messages,
		Hunger:        w.Hunger,
		Level:         w.Level,
		Turn:          w.Turn,
		Seed:          w.Map.Seed,
		Status:        StatusIdle,
		Dice:          dice.New(w.Map.Seed),
		Gen:           gen,
		Reg:           reg,
		Bus:           &inventory.Bus{},
		monsterTables: monsterTables,
		itemTables:    itemTables,
	}
	ctx.drainOffset = len(ctx.messages)
	ctx.Map.ComputeFOV(ctx.Player.Position, world.FOVRadius)
	return ctx, nil
}
