package ai

import (
	"testing"

	"rogue-engine/internal/dice"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/id"
	"rogue-engine/internal/world"
)

func openMap(t *testing.T, w, h int) *world.Map {
	t.Helper()
	m := world.NewEmpty(w, h, 1)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.SetKind(geom.Vec2{Y: y, X: x}, world.Floor)
		}
	}
	m.ComputeFOV(geom.Vec2{Y: h / 2, X: w / 2}, 50)
	return m
}

func newPlayer(gen *id.Generator, pos geom.Vec2) *entity.Creature {
	c := entity.NewCreature(gen, entity.Display{Name: "player"}, pos)
	c.AI = entity.AIPlayer
	c.Destructible = &entity.Destructible{HP: 20, HPMax: 20, ArmorClass: 10}
	return c
}

func newMonster(gen *id.Generator, pos geom.Vec2) *entity.Creature {
	c := entity.NewCreature(gen, entity.Display{Name: "monster"}, pos)
	c.Destructible = &entity.Destructible{HP: 10, HPMax: 10, ArmorClass: 10, Thac0: 20}
	c.Attacker = &entity.Attacker{Min: 1, Max: 4}
	c.Abilities.STR = 12
	return c
}

func TestUpdateMeleeChasesWhenTracking(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 15})
	mon := newMonster(gen, geom.Vec2{Y: 10, X: 10})

	st := &MeleeState{}
	env := Env{Map: m, Player: player, Dice: dice.New(1)}

	m.ComputeFOV(mon.Position, world.FOVRadius)
	UpdateMelee(mon, st, env)

	if st.MoveCount != TrackingTurns {
		t.Fatalf("MoveCount = %d, want %d once spotted", st.MoveCount, TrackingTurns)
	}
	if mon.Position.Equal(geom.Vec2{Y: 10, X: 10}) {
		t.Fatal("monster should have stepped toward the player")
	}
}

func TestUpdateMeleeAttacksWhenAdjacent(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 11})
	mon := newMonster(gen, geom.Vec2{Y: 10, X: 10})
	st := &MeleeState{MoveCount: TrackingTurns}
	env := Env{Map: m, Player: player, Dice: dice.NewFixed(1, 20, 4)}

	UpdateMelee(mon, st, env)

	if player.Destructible.HP == player.Destructible.HPMax {
		t.Fatal("expected the fixed d20=20 roll to land a hit")
	}
}

func TestUpdateRangedBacksAwayWhenTooClose(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 10})
	mon := newMonster(gen, geom.Vec2{Y: 10, X: 11})
	m.ComputeFOV(mon.Position, world.FOVRadius)

	st := &RangedState{MoveCount: TrackingTurns, MinRange: 3, MaxRange: 6}
	env := Env{Map: m, Player: player, Dice: dice.New(1)}

	UpdateRanged(mon, st, env)

	if mon.Position.X <= 11 {
		t.Fatal("archer should retreat when the player closes to melee range")
	}
}

func TestUpdateRangedFiresWithinRange(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 10})
	mon := newMonster(gen, geom.Vec2{Y: 10, X: 14})
	m.ComputeFOV(mon.Position, 50)

	st := &RangedState{MoveCount: TrackingTurns, MinRange: 2, MaxRange: 6}
	env := Env{Map: m, Player: player, Dice: dice.NewFixed(1, 20, 4)}

	UpdateRanged(mon, st, env)

	if mon.Position.X != 14 {
		t.Fatal("archer should hold position and fire, not move")
	}
	if player.Destructible.HP == player.Destructible.HPMax {
		t.Fatal("expected the fixed d20=20 roll to land a hit")
	}
}

func TestUpdateShopkeeperStaysPassiveBeforeApproach(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 10})
	keeper := newMonster(gen, geom.Vec2{Y: 10, X: 14})
	m.ComputeFOV(keeper.Position, 50)

	st := &ShopkeeperState{}
	env := Env{Map: m, Player: player, Dice: dice.New(1)}

	res := UpdateShopkeeper(keeper, st, env)
	if res.OpenTrade {
		t.Fatal("first-sight update should not open trade yet")
	}
	if !st.HasApproachedOnce {
		t.Fatal("spotting the player should latch HasApproachedOnce")
	}
}

func TestUpdateShopkeeperOpensTradeWhenAdjacent(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 10})
	keeper := newMonster(gen, geom.Vec2{Y: 10, X: 11})

	st := &ShopkeeperState{HasApproachedOnce: true}
	env := Env{Map: m, Player: player, Dice: dice.New(1)}

	res := UpdateShopkeeper(keeper, st, env)
	if !res.OpenTrade {
		t.Fatal("adjacent shopkeeper with prior approach should open trade")
	}
	if !st.TradeMenuOpen {
		t.Fatal("TradeMenuOpen should be set")
	}
}

func TestUpdateSpiderPoisonsOnHit(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 11})
	spider := newMonster(gen, geom.Vec2{Y: 10, X: 10})

	st := &SpiderState{Melee: MeleeState{MoveCount: TrackingTurns}, Variant: SpiderSmall}
	env := Env{Map: m, Player: player, Dice: dice.NewFixed(1, 20, 4, 1)}

	UpdateSpider(spider, st, env)

	if !player.States.Has(entity.IsConfused) {
		t.Fatal("a 1-in-100 poison roll under a 25% chance should land")
	}
}

func TestUpdateMimicStaysDisguisedUntilAdjacent(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 15})
	mimic := newMonster(gen, geom.Vec2{Y: 10, X: 10})
	st := &MimicState{}
	env := Env{Map: m, Player: player, Dice: dice.New(1)}

	UpdateMimic(mimic, st, env)
	if !st.IsDisguised() {
		t.Fatal("mimic should remain disguised while the player is far away")
	}

	player.Position = geom.Vec2{Y: 10, X: 11}
	UpdateMimic(mimic, st, env)
	if st.IsDisguised() {
		t.Fatal("mimic should reveal itself once the player is adjacent")
	}
}

func TestUpdateMimicNeverRedisguises(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 11})
	mimic := newMonster(gen, geom.Vec2{Y: 10, X: 10})
	st := &MimicState{Phase: MimicRevealed}
	env := Env{Map: m, Player: player, Dice: dice.New(1)}

	player.Position = geom.Vec2{Y: 10, X: 19}
	UpdateMimic(mimic, st, env)
	if st.IsDisguised() {
		t.Fatal("a revealed mimic must never re-disguise")
	}
}

func TestUpdateMimicConsumesNearbyItemAndBoostsHealth(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 5, X: 5})
	mimic := newMonster(gen, geom.Vec2{Y: 10, X: 10})
	mimic.Destructible = &entity.Destructible{HP: 10, HPMax: 10, ArmorClass: 10}

	potion := &entity.Item{ID: gen.Next(), Class: entity.ClassPotion, Position: geom.Vec2{Y: 10, X: 10}}
	floor := []*entity.Item{potion}

	st := &MimicState{Phase: MimicRevealed, ConsumptionCooldown: ConsumptionCooldownTurns}
	env := Env{Map: m, Player: player, Dice: dice.New(1), FloorItems: &floor}

	UpdateMimic(mimic, st, env)

	if st.ItemsConsumed != 1 {
		t.Fatalf("ItemsConsumed = %d, want 1", st.ItemsConsumed)
	}
	if len(floor) != 0 {
		t.Fatalf("consumed item should be removed from the floor, got %d left", len(floor))
	}
	if mimic.Destructible.HPMax != 11 || mimic.Destructible.HP != 11 {
		t.Fatalf("potion consumption should grant +1 max/current HP, got %+v", mimic.Destructible)
	}
}

func TestUpdateMimicTransformsIntoGreaterMimicAfterFiveItems(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 5, X: 5})
	mimic := newMonster(gen, geom.Vec2{Y: 10, X: 10})
	mimic.Destructible = &entity.Destructible{HP: 10, HPMax: 10, ArmorClass: 10}

	st := &MimicState{Phase: MimicRevealed, ItemsConsumed: ItemsForTransformation - 1, ConsumptionCooldown: ConsumptionCooldownTurns}
	potion := &entity.Item{ID: gen.Next(), Class: entity.ClassPotion, Position: geom.Vec2{Y: 10, X: 10}}
	floor := []*entity.Item{potion}
	env := Env{Map: m, Player: player, Dice: dice.New(1), FloorItems: &floor}

	UpdateMimic(mimic, st, env)

	if !st.IsGreater {
		t.Fatal("consuming the 5th item should transform the mimic into a greater mimic")
	}
	if mimic.Display.Name != "greater mimic" {
		t.Fatalf("greater mimic should rename itself, got %q", mimic.Display.Name)
	}
}

func TestUpdateSpiderEntersAmbushWhenHiddenAndUnseen(t *testing.T) {
	gen := id.NewGenerator()
	m := world.NewEmpty(20, 20, 1)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			m.SetKind(geom.Vec2{Y: y, X: x}, world.Floor)
		}
	}
	player := newPlayer(gen, geom.Vec2{Y: 15, X: 15})
	spider := newMonster(gen, geom.Vec2{Y: 1, X: 1})
	m.ComputeFOV(player.Position, world.FOVRadius)

	st := &SpiderState{Variant: SpiderSmall}
	// The ambush-entry roll is the first (and only) die rolled on this path;
	// fix it to land so the test doesn't depend on the seeded RNG's output.
	env := Env{Map: m, Player: player, Dice: dice.NewFixed(1, 1)}

	UpdateSpider(spider, st, env)

	if !st.IsAmbushing {
		t.Fatal("an unseen spider against a wall, far from the player, should roll into ambush")
	}
	if st.AmbushTurns != AmbushDurationTurns {
		t.Fatalf("AmbushTurns = %d, want %d", st.AmbushTurns, AmbushDurationTurns)
	}
}

func TestUpdateSpiderAmbushAttacksWhenPlayerCloses(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 11})
	spider := newMonster(gen, geom.Vec2{Y: 10, X: 10})

	st := &SpiderState{Variant: SpiderSmall, IsAmbushing: true, AmbushTurns: 3}
	env := Env{Map: m, Player: player, Dice: dice.NewFixed(1, 20, 4)}

	UpdateSpider(spider, st, env)

	if st.IsAmbushing {
		t.Fatal("landing the ambush attack should clear IsAmbushing")
	}
	if player.Destructible.HP == player.Destructible.HPMax {
		t.Fatal("expected the ambush attack to land a hit")
	}
}

func TestUpdateWebSpinnerCreatesWebNearSpider(t *testing.T) {
	gen := id.NewGenerator()
	m := openMap(t, 20, 20)
	player := newPlayer(gen, geom.Vec2{Y: 10, X: 6})
	spider := newMonster(gen, geom.Vec2{Y: 10, X: 10})

	st := &SpiderState{Variant: SpiderWebSpinner}
	var objects []*world.Web
	env := Env{Map: m, Player: player, Dice: dice.New(1), Objects: &objects}

	UpdateSpider(spider, st, env)

	if len(objects) != 1 {
		t.Fatalf("webs created = %d, want 1", len(objects))
	}
	if objects[0].Position != spider.Position {
		t.Fatalf("web should be spun at the spider's position, got %+v", objects[0].Position)
	}
	if st.WebsCreated != 1 || st.WebCD != world.WebCooldownTurns {
		t.Fatalf("state = %+v, want WebsCreated=1 WebCD=%d", st, world.WebCooldownTurns)
	}
}
