package save

import (
	"os"
	"path/filepath"
	"testing"

	"rogue-engine/internal/buff"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/hunger"
	"rogue-engine/internal/id"
	"rogue-engine/internal/level"
	"rogue-engine/internal/world"
)

func buildWorld(t *testing.T) (*World, *id.Generator) {
	t.Helper()
	gen := id.NewGenerator()

	m := world.NewEmpty(10, 10, 42)
	m.SetKind(geom.Vec2{Y: 5, X: 5}, world.Floor)
	m.Rooms = []world.Rect{{Begin: geom.Vec2{Y: 1, X: 1}, End: geom.Vec2{Y: 8, X: 8}}}

	player := entity.NewCreature(gen, entity.Display{Name: "you", Glyph: "@"}, geom.Vec2{Y: 5, X: 5})
	player.AI = entity.AIPlayer
	player.Abilities = entity.Abilities{STR: 16, DEX: 14, CON: 12, INT: 10, WIS: 10, CHA: 8}
	player.Destructible = &entity.Destructible{HP: 12, HPMax: 20, ArmorClass: 9, Thac0: 19}
	player.Attacker = &entity.Attacker{Min: 1, Max: 4}
	player.Buffs.Add(buff.Buff{Type: buff.Bless, Value: 1, TurnsRemaining: 6})
	player.States.Add(entity.IsRanged)
	player.Inventory = entity.NewInventory(26)
	player.Inventory.Items = append(player.Inventory.Items, &entity.Item{ID: gen.Next(), Class: entity.ClassRing, ItemID: "ring_protection"})
	player.Equipment = &entity.Equipment{}
	player.Equipment.Slots[entity.SlotRightRing] = player.Inventory.Items[0].ID

	mon := entity.NewCreature(gen, entity.Display{Name: "goblin"}, geom.Vec2{Y: 3, X: 3})
	mon.AI = entity.AIMelee
	mon.Destructible = &entity.Destructible{HP: 7, HPMax: 7, ArmorClass: 10, Thac0: 20}

	floorItem := &entity.Item{ID: gen.Next(), ItemID: "potion_healing", Position: geom.Vec2{Y: 2, X: 2}, Class: entity.ClassPotion}

	hungerSys := hunger.NewSystem()
	hungerSys.Increase(123)

	lvl := level.NewManager()
	lvl.DungeonLevel = 3
	lvl.ShopkeepersOnCurrentLevel = 1

	web := &world.Web{Position: geom.Vec2{Y: 4, X: 4}, Strength: 3, TurnsLeft: 17}

	w := &World{
		Map:        m,
		Stairs:     geom.Vec2{Y: 8, X: 8},
		Player:     player,
		Creatures:  []*entity.Creature{mon},
		FloorItems: []*entity.Item{floorItem},
		Objects:    []*world.Web{web},
		Messages:   []string{"You enter the dungeon."},
		Hunger:     hungerSys,
		Level:      lvl,
		Turn:       42,
	}
	return w, gen
}

func TestCaptureRestoreRoundTripsCoreState(t *testing.T) {
	w, _ := buildWorld(t)
	snap := Capture(w)

	gen2 := id.NewGenerator()
	restored := Restore(snap, gen2)

	if restored.Map.Width != 10 || restored.Map.Height != 10 || restored.Map.Seed != 42 {
		t.Fatalf("map dims/seed mismatch: %+v", restored.Map)
	}
	if restored.Map.At(geom.Vec2{Y: 5, X: 5}).Kind != world.Floor {
		t.Fatal("restored map should preserve tile kinds exactly, not regenerate")
	}
	if len(restored.Map.Rooms) != 1 {
		t.Fatalf("rooms = %d, want 1", len(restored.Map.Rooms))
	}

	if restored.Player.Position != w.Player.Position {
		t.Fatal("player position should round-trip")
	}
	if restored.Player.Destructible.HP != 12 || restored.Player.Destructible.HPMax != 20 {
		t.Fatal("player destructible should round-trip")
	}
	if !restored.Player.Buffs.Has(buff.Bless) {
		t.Fatal("player buffs should round-trip")
	}
	if !restored.Player.States.Has(entity.IsRanged) {
		t.Fatal("player states should round-trip")
	}
	if len(restored.Player.Inventory.Items) != 1 || restored.Player.Inventory.Items[0].ItemID != "ring_protection" {
		t.Fatal("player inventory should round-trip")
	}
	if restored.Player.Equipment.Slots[entity.SlotRightRing] != restored.Player.Inventory.Items[0].ID {
		t.Fatal("equipment slot should point at the same restored item id")
	}

	if len(restored.Creatures) != 1 || restored.Creatures[0].Display.Name != "goblin" {
		t.Fatal("creature list should round-trip")
	}
	if len(restored.FloorItems) != 1 || restored.FloorItems[0].ItemID != "potion_healing" {
		t.Fatal("floor items should round-trip")
	}

	value, band, shown := restored.Hunger.Snapshot()
	if value != 123 {
		t.Fatalf("hunger value = %d, want 123", value)
	}
	_ = band
	_ = shown

	if restored.Level.DungeonLevel != 3 || restored.Level.ShopkeepersOnCurrentLevel != 1 {
		t.Fatal("level manager should round-trip")
	}
	if restored.Turn != 42 {
		t.Fatal("turn counter should round-trip")
	}
	if len(restored.Messages) != 1 {
		t.Fatal("message log backlog should round-trip")
	}

	if len(restored.Objects) != 1 {
		t.Fatalf("webs = %d, want 1", len(restored.Objects))
	}
	if restored.Objects[0].Position != (geom.Vec2{Y: 4, X: 4}) || restored.Objects[0].Strength != 3 || restored.Objects[0].TurnsLeft != 17 {
		t.Fatalf("web should round-trip unchanged, got %+v", restored.Objects[0])
	}
}

func TestAdvancePastGeneratorAfterLoad(t *testing.T) {
	w, gen := buildWorld(t)
	highest := gen.Next() // bump past everything allocated in buildWorld
	w.Creatures[0].ID = highest
	snap := Capture(w)

	gen2 := id.NewGenerator()
	Restore(snap, gen2)

	next := gen2.Next()
	if next <= highest {
		t.Fatalf("generator should be advanced past highest seen id %d, got %d", highest, next)
	}
}

func TestWriteLoadRoundTripsThroughDisk(t *testing.T) {
	w, _ := buildWorld(t)
	snap := Capture(w)

	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := Write(path, snap); err != nil {
		t.Fatalf("Write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Seed != snap.Seed || loaded.TurnCounter != snap.TurnCounter {
		t.Fatal("loaded snapshot should match the written one")
	}

	if err := Delete(path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("save file should be gone after Delete")
	}
}

func TestDeleteMissingFileIsNotAnError(t *testing.T) {
	if err := Delete(filepath.Join(t.TempDir(), "nope.sav")); err != nil {
		t.Fatalf("Delete of a missing file should be a no-op: %v", err)
	}
}
