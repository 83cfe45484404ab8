package engine

import (
	"path/filepath"
	"testing"

	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/id"
	"rogue-engine/internal/registry"
	"rogue-engine/internal/world"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.db")
	db, err := registry.OpenRaw(path)
	if err != nil {
		t.Fatalf("OpenRaw: %v", err)
	}
	if err := registry.CreateTables(db); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}
	if err := registry.Seed(db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	db.Close()

	r, err := registry.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func newTestGame(t *testing.T) *Context {
	t.Helper()
	reg := newTestRegistry(t)
	ctx, err := NewGame(id.NewGenerator(), reg, 42)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return ctx
}

func TestWaitAlwaysEndsTurn(t *testing.T) {
	ctx := newTestGame(t)
	turn := ctx.Turn
	res := ctx.Wait()
	if !res.Success || !res.EndsTurn {
		t.Fatalf("Wait() = %+v, want success+endsTurn", res)
	}
	if ctx.Turn != turn+1 {
		t.Fatalf("Turn = %d, want %d", ctx.Turn, turn+1)
	}
}

func TestMoveIntoWallFails(t *testing.T) {
	ctx := newTestGame(t)
	turn := ctx.Turn
	dest := ctx.Player.Position.Add(geom.Vec2{Y: -1})
	ctx.Map.SetKind(dest, world.Wall)

	res := ctx.Move(geom.Vec2{Y: -1})
	if res.Success {
		t.Fatal("Move into a forced wall tile should fail")
	}
	if res.EndsTurn {
		t.Fatal("a failed Move must not end the turn")
	}
	if ctx.Turn != turn {
		t.Fatalf("Turn = %d, want unchanged %d", ctx.Turn, turn)
	}
}

func TestPickUpAndDropRoundTrip(t *testing.T) {
	ctx := newTestGame(t)
	item := &entity.Item{ID: ctx.Gen.Next(), Display: entity.Display{Name: "dagger"}, Position: ctx.Player.Position, Class: entity.ClassWeapon}
	ctx.FloorItems = append(ctx.FloorItems, item)

	res := ctx.PickUp()
	if !res.Success {
		t.Fatalf("PickUp() = %+v, want success", res)
	}
	if len(ctx.Player.Inventory.Items) != 1 {
		t.Fatalf("inventory len = %d, want 1", len(ctx.Player.Inventory.Items))
	}
	for _, it := range ctx.FloorItems {
		if it.ID == item.ID {
			t.Fatal("picked-up item should be removed from the floor")
		}
	}

	res = ctx.Drop(item.ID)
	if !res.Success {
		t.Fatalf("Drop() = %+v, want success", res)
	}
	found := false
	for _, it := range ctx.FloorItems {
		if it.ID == item.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("dropped item should reappear on the floor")
	}
}

func TestPickUpFailsOnEmptyTile(t *testing.T) {
	ctx := newTestGame(t)
	res := ctx.PickUp()
	if res.Success {
		t.Fatal("PickUp() on an empty tile should fail")
	}
}

func TestEquipRecomputesArmorClass(t *testing.T) {
	ctx := newTestGame(t)
	before := ctx.Player.Destructible.ArmorClass
	armor := &entity.Item{ID: ctx.Gen.Next(), Display: entity.Display{Name: "chain mail"}, Class: entity.ClassArmor, ACBonus: -4}
	ctx.Player.Inventory.Items = append(ctx.Player.Inventory.Items, armor)

	res := ctx.Equip(armor.ID)
	if !res.Success {
		t.Fatalf("Equip() = %+v, want success", res)
	}
	if res.EndsTurn {
		t.Fatal("Equip is menu-driven and must not end the turn")
	}
	if ctx.Player.Destructible.ArmorClass >= before {
		t.Fatalf("AC = %d, want better than %d after equipping armor", ctx.Player.Destructible.ArmorClass, before)
	}
}

func TestUseItemHealerRestoresHPAndConsumesItem(t *testing.T) {
	ctx := newTestGame(t)
	ctx.Player.Destructible.HP = 5
	potion := &entity.Item{ID: ctx.Gen.Next(), Display: entity.Display{Name: "potion"}, Class: entity.ClassPotion, Pickable: entity.PickableHealer, HealAmount: 10}
	ctx.Player.Inventory.Items = append(ctx.Player.Inventory.Items, potion)

	res := ctx.UseItem(potion.ID, 0, geom.Vec2{})
	if !res.Success {
		t.Fatalf("UseItem() = %+v, want success", res)
	}
	if ctx.Player.Destructible.HP != 15 {
		t.Fatalf("HP = %d, want 15", ctx.Player.Destructible.HP)
	}
	for _, it := range ctx.Player.Inventory.Items {
		if it.ID == potion.ID {
			t.Fatal("consumed item should leave the inventory")
		}
	}
}

func TestRestRefusesAtFullHealth(t *testing.T) {
	ctx := newTestGame(t)
	res := ctx.Rest()
	if res.Success {
		t.Fatal("Rest() at full HP should fail")
	}
}

func TestRestRefusesWithNearbyVisibleEnemy(t *testing.T) {
	ctx := newTestGame(t)
	ctx.Player.Destructible.HP = 1
	enemy := entity.NewCreature(ctx.Gen, entity.Display{Name: "goblin"}, ctx.Player.Position.Add(geom.Vec2{Y: 1}))
	enemy.Destructible = &entity.Destructible{HP: 5, HPMax: 5}
	ctx.Creatures = append(ctx.Creatures, enemy)
	ctx.Map.ComputeFOV(ctx.Player.Position, 99)

	res := ctx.Rest()
	if res.Success {
		t.Fatal("Rest() with a visible enemy nearby should fail")
	}
}

func TestDescendFailsWithoutStairs(t *testing.T) {
	ctx := newTestGame(t)
	if ctx.Player.Position.Equal(ctx.Stairs) {
		ctx.Player.Position = ctx.Player.Position.Add(geom.Vec2{Y: 1})
	}
	res := ctx.Descend()
	if res.Success {
		t.Fatal("Descend() off the stairs should fail")
	}
}

func TestDescendAdvancesDungeonLevel(t *testing.T) {
	ctx := newTestGame(t)
	ctx.Player.Position = ctx.Stairs
	level := ctx.Level.DungeonLevel
	res := ctx.Descend()
	if !res.Success {
		t.Fatalf("Descend() = %+v, want success", res)
	}
	if ctx.Level.DungeonLevel != level+1 {
		t.Fatalf("DungeonLevel = %d, want %d", ctx.Level.DungeonLevel, level+1)
	}
	if ctx.Player.Position.Equal(ctx.Stairs) {
		t.Fatal("player should spawn away from the new level's stairs")
	}
}

func TestDrainMessagesOnlyReturnsNewEntries(t *testing.T) {
	ctx := newTestGame(t)
	ctx.log("first")
	first := ctx.DrainMessages()
	if len(first) != 1 || first[0] != "first" {
		t.Fatalf("first drain = %v, want [first]", first)
	}
	if msgs := ctx.DrainMessages(); len(msgs) != 0 {
		t.Fatalf("second drain = %v, want none", msgs)
	}
	ctx.log("second")
	if msgs := ctx.DrainMessages(); len(msgs) != 1 || msgs[0] != "second" {
		t.Fatalf("third drain = %v, want [second]", msgs)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	ctx := newTestGame(t)
	ctx.Player.Gold = 77
	path := filepath.Join(t.TempDir(), "game.sav")
	if err := ctx.SaveGame(path); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	loaded, err := LoadGame(path, id.NewGenerator(), newTestRegistry(t))
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if loaded.Player.Gold != 77 {
		t.Fatalf("loaded gold = %d, want 77", loaded.Player.Gold)
	}
	if !loaded.Map.IsInFOV(loaded.Player.Position) {
		t.Fatal("loaded player position should be recomputed into FOV")
	}
}
