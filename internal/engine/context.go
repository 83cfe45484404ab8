// Package engine wires world/entity/combat/ai/buff/hunger/level/save/shop/
// target/spell/inventory into the single-threaded turn loop spec.md §5
// describes, replacing the teacher's global `Game game;` singleton with an
// explicit Context struct threaded through every operation, per spec.md §9's
// "context-passing migration" design note.
package engine

import (
	"rogue-engine/internal/ai"
	"rogue-engine/internal/dice"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/hunger"
	"rogue-engine/internal/id"
	"rogue-engine/internal/inventory"
	"rogue-engine/internal/level"
	"rogue-engine/internal/registry"
	"rogue-engine/internal/world"
)

// Status is the game-state machine spec.md §3's GameState owns.
type Status int

const (
	StatusStartup Status = iota
	StatusIdle
	StatusNewTurn
	StatusVictory
	StatusDefeat
)

// aiState bundles every per-creature AI variant's mutable state. Creatures
// only ever populate the field matching their AIKind; the rest stay zero.
// A single struct (rather than an interface{} keyed by kind) keeps Context's
// bookkeeping map allocation-free per lookup.
type aiState struct {
	melee      ai.MeleeState
	ranged     ai.RangedState
	shopkeeper ai.ShopkeeperState
	spider     ai.SpiderState
	mimic      ai.MimicState
}

// Context is the borrowed-references struct every turn operation receives,
// per spec.md §9's GameContext& design note.
type Context struct {
	Map    *world.Map
	Stairs geom.Vec2
	Rooms  []world.Rect

	Player     *entity.Creature
	Creatures  []*entity.Creature
	FloorItems []*entity.Item

	// Objects is spec.md §3's GameState "object list (webs, etc.)", currently
	// populated by Web Spinner-spun webs (see internal/ai's spider AI and
	// internal/world.Web).
	Objects []*world.Web

	Hunger *hunger.System
	Level  *level.Manager

	Status      Status
	Turn        int
	Seed        int64
	messages    []string
	drainOffset int

	Dice *dice.Dice
	Gen  *id.Generator
	Reg  *registry.Registry
	Bus  *inventory.Bus

	ai map[id.ID]*aiState

	monsterTables []level.MonsterSpawnTable
	itemTables    []level.ItemSpawnTable
}

func (ctx *Context) log(msg string) {
	ctx.messages = append(ctx.messages, msg)
}

func (ctx *Context) stateFor(c *entity.Creature) *aiState {
	if ctx.ai == nil {
		ctx.ai = make(map[id.ID]*aiState)
	}
	st, ok := ctx.ai[c.ID]
	if !ok {
		st = &aiState{}
		ctx.ai[c.ID] = st
	}
	return st
}

// NewGame builds a fresh dungeon level and populates it with the player and
// an initial wave of monsters/items, per spec.md §2's "initialize-new-game
// populates from procedural generator" lifecycle note.
func NewGame(gen *id.Generator, reg *registry.Registry, seed int64) (*Context, error) {
	m, genResult := world.Generate(world.GenOptions{Seed: seed})

	player := entity.NewCreature(gen, entity.Display{Glyph: "@", Name: "player", Color: 15}, genResult.PlayerPos)
	player.Abilities = entity.Abilities{STR: 16, DEX: 14, CON: 15, INT: 12, WIS: 12, CHA: 12}
	player.Level = 1
	player.Destructible = &entity.Destructible{HP: 20, HPMax: 20, HPBase: 20, Thac0: 20, ArmorClass: 10, BaseArmorClass: 10}
	player.Attacker = &entity.Attacker{Min: 1, Max: 4, DamageType: entity.Physical, Display: "fists"}
	player.AI = entity.AIPlayer
	player.Inventory = entity.NewInventory(26)
	player.Equipment = &entity.Equipment{}

	ctx := &Context{
		Map:    m,
		Stairs: genResult.StairsPos,
		Rooms:  m.Rooms,
		Player: player,
		Hunger: hunger.NewSystem(),
		Level:  level.NewManager(),
		Status: StatusStartup,
		Seed:   seed,
		Dice:   dice.New(seed),
		Gen:    gen,
		Reg:    reg,
		Bus:    &inventory.Bus{},
	}

	monsterTables, err := reg.SpawnTables()
	if err != nil {
		return nil, err
	}
	itemTables, err := reg.ItemSpawnTables()
	if err != nil {
		return nil, err
	}
	ctx.monsterTables = monsterTables
	ctx.itemTables = itemTables

	ctx.Map.ComputeFOV(ctx.Player.Position, world.FOVRadius)
	ctx.populateInitialLevel()
	ctx.Status = StatusIdle
	return ctx, nil
}

// populateInitialLevel spawns a handful of monsters and floor items at
// construction time, the same weighted tables runTurn's mid-run spawner
// reuses every MonsterSpawnIntervalTurns.
func (ctx *Context) populateInitialLevel() {
	const initialMonsters = 6
	const initialItems = 8
	for i := 0; i < initialMonsters; i++ {
		ctx.spawnMonster()
	}
	for i := 0; i < initialItems; i++ {
		ctx.spawnItem()
	}
}

func (ctx *Context) occupied(pos geom.Vec2) bool {
	if ctx.Player.Position.Equal(pos) {
		return true
	}
	for _, c := range ctx.Creatures {
		if !c.IsDead() && c.Position.Equal(pos) {
			return true
		}
	}
	return false
}

func (ctx *Context) spawnMonster() bool {
	entry, ok := level.PickMonster(ctx.Dice, ctx.monsterTables, ctx.Level.DungeonLevel)
	if !ok {
		return false
	}
	def, err := ctx.Reg.GetMonster(entry.Kind)
	if err != nil {
		return false
	}
	room, ok := ctx.Map.RandomRoom(ctx.Dice)
	if !ok {
		return false
	}
	pos, ok := ctx.Map.RandomWalkableInRoom(ctx.Dice, room, ctx.Player.Position)
	if !ok || ctx.occupied(pos) {
		return false
	}
	c := registry.InstantiateMonster(ctx.Gen, *def, pos)
	ctx.Creatures = append(ctx.Creatures, c)
	if c.AI == entity.AIShopkeeper {
		ctx.Level.ShopkeepersOnCurrentLevel++
	}
	return true
}

func (ctx *Context) spawnItem() bool {
	entry, ok := level.PickItem(ctx.Dice, ctx.itemTables, ctx.Level.DungeonLevel)
	if !ok {
		return false
	}
	def, err := ctx.Reg.GetItem(entry.Kind)
	if err != nil {
		return false
	}
	room, ok := ctx.Map.RandomRoom(ctx.Dice)
	if !ok {
		return false
	}
	pos, ok := ctx.Map.RandomWalkableInRoom(ctx.Dice, room)
	if !ok {
		return false
	}
	item := registry.InstantiateItem(ctx.Gen, *def, pos)
	ctx.FloorItems = append(ctx.FloorItems, item)
	return true
}
