package level

import (
	"testing"

	"rogue-engine/internal/dice"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/id"
)

func TestEffectiveWeightZeroOutsideBounds(t *testing.T) {
	if w := EffectiveWeight(10, 3, 6, 2, 0.1); w != 0 {
		t.Fatalf("weight below levelMin = %d, want 0", w)
	}
	if w := EffectiveWeight(10, 3, 6, 8, 0.1); w != 0 {
		t.Fatalf("weight above levelMax = %d, want 0", w)
	}
}

func TestEffectiveWeightScalesAndClamps(t *testing.T) {
	w := EffectiveWeight(10, 1, 10, 1, 0.5)
	if w != 10 {
		t.Fatalf("weight at level 1 = %d, want base 10", w)
	}
	w = EffectiveWeight(10, 1, 10, 3, 0.5)
	if w != 20 {
		t.Fatalf("weight at level 3 = %d, want 20 (10*(1+0.5*2))", w)
	}
	if w := EffectiveWeight(1, 1, 10, 1, -10); w < 1 {
		t.Fatalf("weight = %d, want clamped to at least 1", w)
	}
}

func TestPickMonsterOnlyChoosesInBoundsEntries(t *testing.T) {
	entries := []MonsterSpawnTable{
		{Kind: "goblin", BaseWeight: 10, LevelMin: 1, LevelMax: 10},
		{Kind: "dragon", BaseWeight: 10, LevelMin: 8, LevelMax: 10},
	}
	d := dice.New(1)
	for i := 0; i < 50; i++ {
		pick, ok := PickMonster(d, entries, 2)
		if !ok {
			t.Fatal("expected a pick at level 2")
		}
		if pick.Kind != "goblin" {
			t.Fatalf("pick = %s, want goblin (dragon is out of level bounds)", pick.Kind)
		}
	}
}

func TestPickMonsterNoneWhenAllZero(t *testing.T) {
	entries := []MonsterSpawnTable{{Kind: "dragon", BaseWeight: 10, LevelMin: 9, LevelMax: 10}}
	_, ok := PickMonster(dice.New(1), entries, 1)
	if ok {
		t.Fatal("expected no pick when every entry is out of bounds")
	}
}

func TestShouldSpawnMonstersRespectsIntervalAndCap(t *testing.T) {
	if ShouldSpawnMonsters(3, 2) {
		t.Fatal("odd turn should not trigger a spawn check")
	}
	if !ShouldSpawnMonsters(4, 2) {
		t.Fatal("even turn under the cap should trigger a spawn check")
	}
	if ShouldSpawnMonsters(4, MaxCreatures) {
		t.Fatal("at the creature cap, spawning should be suppressed")
	}
}

func TestTreasureRoomChanceStaysInBand(t *testing.T) {
	if p := TreasureRoomChancePct(1); p != 5 {
		t.Fatalf("level 1 chance = %d, want 5", p)
	}
	if p := TreasureRoomChancePct(FinalLevel); p != 25 {
		t.Fatalf("final level chance = %d, want 25", p)
	}
}

func TestAdvanceHealsToHalfAndIncrementsLevel(t *testing.T) {
	gen := id.NewGenerator()
	player := entity.NewCreature(gen, entity.Display{}, geom.Vec2{})
	player.Destructible = &entity.Destructible{HP: 5, HPMax: 20}
	mgr := NewManager()
	mgr.ShopkeepersOnCurrentLevel = 2

	mgr.Advance(player)

	if player.Destructible.HP != 10 {
		t.Fatalf("HP after advance = %d, want half of HPMax (10)", player.Destructible.HP)
	}
	if mgr.DungeonLevel != 2 {
		t.Fatalf("DungeonLevel = %d, want 2", mgr.DungeonLevel)
	}
	if mgr.ShopkeepersOnCurrentLevel != 0 {
		t.Fatal("ShopkeepersOnCurrentLevel should reset to 0")
	}
}

func TestIsFinalLevel(t *testing.T) {
	mgr := &Manager{DungeonLevel: FinalLevel}
	if !mgr.IsFinalLevel() {
		t.Fatal("expected level 10 to report final")
	}
}
