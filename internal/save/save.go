// Package save implements the single-file JSON snapshot/restore described in
// spec.md §4.15, grounded on the teacher's flat-struct SaveFile plus its
// read/write helpers in types/save.go and cmd/server/api/saves.go.
package save

import (
	"encoding/json"
	"fmt"
	"os"

	"rogue-engine/internal/buff"
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/hunger"
	"rogue-engine/internal/id"
	"rogue-engine/internal/level"
	"rogue-engine/internal/world"
)

// Version is bumped whenever the schema below changes shape. spec.md §6
// notes the original format carries no version field at all ("current
// omission means load is unversioned and brittle"); we add one rather than
// repeat that defect.
const Version = 1

// FileName is the single save-file name spec.md §6 mandates.
const FileName = "game.sav"

// TileRecord is one map cell's persisted state.
type TileRecord struct {
	Kind     int  `json:"kind"`
	Explored bool `json:"explored"`
}

// RoomRecord is a persisted room rectangle.
type RoomRecord struct {
	BeginY int `json:"begin_y"`
	BeginX int `json:"begin_x"`
	EndY   int `json:"end_y"`
	EndX   int `json:"end_x"`
}

// EnhancementRecord mirrors entity.Enhancement.
type EnhancementRecord struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
	Bonus  int    `json:"bonus"`
}

// ItemRecord is one persisted entity.Item, floor-owned or inventory-owned.
type ItemRecord struct {
	ID          uint64             `json:"id"`
	Name        string             `json:"name"`
	Glyph       string             `json:"glyph"`
	Color       int                `json:"color"`
	PosY        int                `json:"pos_y"`
	PosX        int                `json:"pos_x"`
	Class       int                `json:"class"`
	ItemID      string             `json:"item_id"`
	Value       int                `json:"value"`
	Enhance     *EnhancementRecord `json:"enhance,omitempty"`
	Pickable    int                `json:"pickable"`
	Nutrition   int                `json:"nutrition,omitempty"`
	HealAmount  int                `json:"heal_amount,omitempty"`
	RangeTiles  int                `json:"range_tiles,omitempty"`
	Damage      int                `json:"damage,omitempty"`
	DurationTr  int                `json:"duration_turns,omitempty"`
	GoldAmount  int                `json:"gold_amount,omitempty"`
	ACBonus     int                `json:"ac_bonus,omitempty"`
	WeaponMin   int                `json:"weapon_min,omitempty"`
	WeaponMax   int                `json:"weapon_max,omitempty"`
	IsRangedWpn bool               `json:"is_ranged_weapon,omitempty"`
}

// BuffRecord mirrors one buff.Buff.
type BuffRecord struct {
	Type           int  `json:"type"`
	Value          int  `json:"value"`
	TurnsRemaining int  `json:"turns_remaining"`
	IsSetEffect    bool `json:"is_set_effect"`
}

// DestructibleRecord mirrors entity.Destructible.
type DestructibleRecord struct {
	HP               int    `json:"hp"`
	HPMax            int    `json:"hp_max"`
	HPBase           int    `json:"hp_base"`
	LastConstitution int    `json:"last_constitution"`
	DamageReduction  int    `json:"damage_reduction"`
	Thac0            int    `json:"thac0"`
	ArmorClass       int    `json:"armor_class"`
	BaseArmorClass   int    `json:"base_armor_class"`
	TempHP           int    `json:"temp_hp"`
	CorpseName       string `json:"corpse_name"`
	XPAward          int    `json:"xp_award"`
}

// AttackerRecord mirrors entity.Attacker.
type AttackerRecord struct {
	Min        int    `json:"min"`
	Max        int    `json:"max"`
	Display    string `json:"display"`
	DamageType int    `json:"damage_type"`
}

// CreatureRecord is one persisted entity.Creature — player or monster, tagged
// by AI kind so load can rebuild whichever AI state struct applies, per
// spec.md §4.15 ("each with an AI-type tag and destructible-type tag driving
// variant reconstruction").
type CreatureRecord struct {
	ID        uint64   `json:"id"`
	Name      string   `json:"name"`
	Glyph     string   `json:"glyph"`
	Color     int      `json:"color"`
	PosY      int      `json:"pos_y"`
	PosX      int      `json:"pos_x"`
	STR       int      `json:"str"`
	DEX       int      `json:"dex"`
	CON       int      `json:"con"`
	INT       int      `json:"int"`
	WIS       int      `json:"wis"`
	CHA       int      `json:"cha"`
	Level     int      `json:"level"`
	XP        int      `json:"xp"`
	Gold      int      `json:"gold"`
	Gender    string   `json:"gender"`
	States    []int    `json:"states"`
	AIKind    int      `json:"ai_kind"`
	MemSpells []string `json:"memorized_spells,omitempty"`

	Destructible *DestructibleRecord `json:"destructible,omitempty"`
	Attacker     *AttackerRecord     `json:"attacker,omitempty"`
	Buffs        []BuffRecord        `json:"buffs,omitempty"`

	Inventory []ItemRecord `json:"inventory,omitempty"`
	Equipment []uint64     `json:"equipment,omitempty"` // indexed by entity.Slot, 0 = empty
}

// HungerRecord mirrors hunger.System's private snapshot.
type HungerRecord struct {
	Value               int  `json:"value"`
	Band                int  `json:"band"`
	WellFedMessageShown bool `json:"well_fed_message_shown"`
}

// LevelRecord mirrors level.Manager.
type LevelRecord struct {
	DungeonLevel              int `json:"dungeon_level"`
	ShopkeepersOnCurrentLevel int `json:"shopkeepers_on_current_level"`
}

// WebRecord mirrors one world.Web, per spec.md §3's "object list (webs,
// etc.)" — without this a save/load round trip would silently dissolve every
// Web Spinner web still on the floor.
type WebRecord struct {
	PosY      int `json:"pos_y"`
	PosX      int `json:"pos_x"`
	Strength  int `json:"strength"`
	TurnsLeft int `json:"turns_left"`
}

// Snapshot is the complete save document, per spec.md §4.15's field list.
type Snapshot struct {
	SchemaVersion int `json:"schema_version"`

	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`
	Tiles  []TileRecord `json:"tiles"`
	Rooms  []RoomRecord `json:"rooms"`

	StairsY int `json:"stairs_y"`
	StairsX int `json:"stairs_x"`

	Player     CreatureRecord   `json:"player"`
	Creatures  []CreatureRecord `json:"creatures"`
	FloorItems []ItemRecord     `json:"floor_items"`
	Objects    []WebRecord      `json:"objects,omitempty"`

	Messages []string `json:"messages"`

	Hunger HungerRecord `json:"hunger"`
	Level  LevelRecord  `json:"level"`

	TurnCounter int `json:"turn_counter"`
}

// Write atomically serializes snap to path: it writes to a temp file in the
// same directory and renames over the destination, so a crash mid-write
// never leaves a truncated save, unlike the teacher's direct os.Create.
func Write(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("save: marshal: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("save: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save: rename into place: %w", err)
	}
	return nil
}

// Load reads and decodes a Snapshot from path.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("save: read: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("save: CORRUPT_SAVE: %w", err)
	}
	return &snap, nil
}

// Delete removes the save file, per spec.md §4.6's "player death deletes the
// save file" rule. Missing file is not an error.
func Delete(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("save: delete: %w", err)
	}
	return nil
}

func itemToRecord(it *entity.Item) ItemRecord {
	rec := ItemRecord{
		ID:          uint64(it.ID),
		Name:        it.Display.Name,
		Glyph:       it.Display.Glyph,
		Color:       it.Display.Color,
		PosY:        it.Position.Y,
		PosX:        it.Position.X,
		Class:       int(it.Class),
		ItemID:      it.ItemID,
		Value:       it.Value,
		Pickable:    int(it.Pickable),
		Nutrition:   it.Nutrition,
		HealAmount:  it.HealAmount,
		RangeTiles:  it.RangeTiles,
		Damage:      it.Damage,
		DurationTr:  it.DurationTr,
		GoldAmount:  it.GoldAmount,
		ACBonus:     it.ACBonus,
		WeaponMin:   it.WeaponMin,
		WeaponMax:   it.WeaponMax,
		IsRangedWpn: it.IsRangedWpn,
	}
	if it.Enhance != nil {
		rec.Enhance = &EnhancementRecord{Prefix: it.Enhance.Prefix, Suffix: it.Enhance.Suffix, Bonus: it.Enhance.Bonus}
	}
	return rec
}

func recordToItem(rec ItemRecord) *entity.Item {
	it := &entity.Item{
		ID:          id.ID(rec.ID),
		Display:     entity.Display{Name: rec.Name, Glyph: rec.Glyph, Color: rec.Color},
		Position:    geom.Vec2{Y: rec.PosY, X: rec.PosX},
		Class:       entity.ItemClass(rec.Class),
		ItemID:      rec.ItemID,
		Value:       rec.Value,
		Pickable:    entity.PickableKind(rec.Pickable),
		Nutrition:   rec.Nutrition,
		HealAmount:  rec.HealAmount,
		RangeTiles:  rec.RangeTiles,
		Damage:      rec.Damage,
		DurationTr:  rec.DurationTr,
		GoldAmount:  rec.GoldAmount,
		ACBonus:     rec.ACBonus,
		WeaponMin:   rec.WeaponMin,
		WeaponMax:   rec.WeaponMax,
		IsRangedWpn: rec.IsRangedWpn,
	}
	if rec.Enhance != nil {
		it.Enhance = &entity.Enhancement{Prefix: rec.Enhance.Prefix, Suffix: rec.Enhance.Suffix, Bonus: rec.Enhance.Bonus}
	}
	return it
}

func creatureToRecord(c *entity.Creature) CreatureRecord {
	rec := CreatureRecord{
		ID:        uint64(c.ID),
		Name:      c.Display.Name,
		Glyph:     c.Display.Glyph,
		Color:     c.Display.Color,
		PosY:      c.Position.Y,
		PosX:      c.Position.X,
		STR:       c.Abilities.STR,
		DEX:       c.Abilities.DEX,
		CON:       c.Abilities.CON,
		INT:       c.Abilities.INT,
		WIS:       c.Abilities.WIS,
		CHA:       c.Abilities.CHA,
		Level:     c.Level,
		XP:        c.XP,
		Gold:      c.Gold,
		Gender:    c.Gender,
		AIKind:    int(c.AI),
		MemSpells: c.MemorizedSpells,
	}
	for st, on := range c.States {
		if on {
			rec.States = append(rec.States, int(st))
		}
	}
	if c.Destructible != nil {
		d := c.Destructible
		rec.Destructible = &DestructibleRecord{
			HP: d.HP, HPMax: d.HPMax, HPBase: d.HPBase,
			LastConstitution: d.LastConstitution, DamageReduction: d.DamageReduction,
			Thac0: d.Thac0, ArmorClass: d.ArmorClass, BaseArmorClass: d.BaseArmorClass,
			TempHP: d.TempHP, CorpseName: d.CorpseName, XPAward: d.XPAward,
		}
	}
	if c.Attacker != nil {
		rec.Attacker = &AttackerRecord{
			Min: c.Attacker.Min, Max: c.Attacker.Max,
			Display: c.Attacker.Display, DamageType: int(c.Attacker.DamageType),
		}
	}
	for _, b := range c.Buffs.Items() {
		rec.Buffs = append(rec.Buffs, BuffRecord{
			Type: int(b.Type), Value: b.Value,
			TurnsRemaining: b.TurnsRemaining, IsSetEffect: b.IsSetEffect,
		})
	}
	if c.Inventory != nil {
		for _, it := range c.Inventory.Items {
			rec.Inventory = append(rec.Inventory, itemToRecord(it))
		}
	}
	if c.Equipment != nil {
		rec.Equipment = make([]uint64, len(c.Equipment.Slots))
		for i, v := range c.Equipment.Slots {
			rec.Equipment[i] = uint64(v)
		}
	}
	return rec
}

func recordToCreature(rec CreatureRecord) *entity.Creature {
	c := &entity.Creature{
		ID:        id.ID(rec.ID),
		Display:   entity.Display{Name: rec.Name, Glyph: rec.Glyph, Color: rec.Color},
		Position:  geom.Vec2{Y: rec.PosY, X: rec.PosX},
		Abilities: entity.Abilities{STR: rec.STR, DEX: rec.DEX, CON: rec.CON, INT: rec.INT, WIS: rec.WIS, CHA: rec.CHA},
		Level:     rec.Level,
		XP:        rec.XP,
		Gold:      rec.Gold,
		Gender:    rec.Gender,
		States:    entity.NewStateSet(),
		AI:        entity.AIKind(rec.AIKind),
		MemorizedSpells: rec.MemSpells,
	}
	for _, st := range rec.States {
		c.States.Add(entity.State(st))
	}
	if rec.Destructible != nil {
		d := rec.Destructible
		c.Destructible = &entity.Destructible{
			HP: d.HP, HPMax: d.HPMax, HPBase: d.HPBase,
			LastConstitution: d.LastConstitution, DamageReduction: d.DamageReduction,
			Thac0: d.Thac0, ArmorClass: d.ArmorClass, BaseArmorClass: d.BaseArmorClass,
			TempHP: d.TempHP, CorpseName: d.CorpseName, XPAward: d.XPAward,
		}
	}
	if rec.Attacker != nil {
		c.Attacker = &entity.Attacker{
			Min: rec.Attacker.Min, Max: rec.Attacker.Max,
			Display: rec.Attacker.Display, DamageType: entity.DamageType(rec.Attacker.DamageType),
		}
	}
	var buffs []buff.Buff
	for _, b := range rec.Buffs {
		buffs = append(buffs, buff.Buff{
			Type: buff.Type(b.Type), Value: b.Value,
			TurnsRemaining: b.TurnsRemaining, IsSetEffect: b.IsSetEffect,
		})
	}
	c.Buffs.Restore(buffs)
	if rec.Inventory != nil || rec.Equipment != nil {
		c.Inventory = entity.NewInventory(26)
		for _, ir := range rec.Inventory {
			c.Inventory.Items = append(c.Inventory.Items, recordToItem(ir))
		}
	}
	if rec.Equipment != nil {
		c.Equipment = &entity.Equipment{}
		for i, v := range rec.Equipment {
			if i < len(c.Equipment.Slots) {
				c.Equipment.Slots[i] = id.ID(v)
			}
		}
	}
	return c
}

// World is the live mutable state the rest of the engine operates on; Capture
// and Restore translate between it and the flat Snapshot document.
type World struct {
	Map        *world.Map
	Stairs     geom.Vec2
	Player     *entity.Creature
	Creatures  []*entity.Creature
	FloorItems []*entity.Item
	Objects    []*world.Web
	Messages   []string
	Hunger     *hunger.System
	Level      *level.Manager
	Turn       int
}

// Capture builds a Snapshot from the live world state.
func Capture(w *World) *Snapshot {
	snap := &Snapshot{
		SchemaVersion: Version,
		Width:         w.Map.Width,
		Height:        w.Map.Height,
		Seed:          w.Map.Seed,
		StairsY:       w.Stairs.Y,
		StairsX:       w.Stairs.X,
		Player:        creatureToRecord(w.Player),
		Messages:      append([]string(nil), w.Messages...),
		TurnCounter:   w.Turn,
	}
	for _, t := range w.Map.Tiles() {
		snap.Tiles = append(snap.Tiles, TileRecord{Kind: int(t.Kind), Explored: t.Explored})
	}
	for _, r := range w.Map.Rooms {
		snap.Rooms = append(snap.Rooms, RoomRecord{BeginY: r.Begin.Y, BeginX: r.Begin.X, EndY: r.End.Y, EndX: r.End.X})
	}
	for _, c := range w.Creatures {
		snap.Creatures = append(snap.Creatures, creatureToRecord(c))
	}
	for _, it := range w.FloorItems {
		snap.FloorItems = append(snap.FloorItems, itemToRecord(it))
	}
	for _, web := range w.Objects {
		snap.Objects = append(snap.Objects, WebRecord{
			PosY: web.Position.Y, PosX: web.Position.X,
			Strength: web.Strength, TurnsLeft: web.TurnsLeft,
		})
	}
	value, band, shown := w.Hunger.Snapshot()
	snap.Hunger = HungerRecord{Value: value, Band: int(band), WellFedMessageShown: shown}
	snap.Level = LevelRecord{DungeonLevel: w.Level.DungeonLevel, ShopkeepersOnCurrentLevel: w.Level.ShopkeepersOnCurrentLevel}
	return snap
}

// Restore rebuilds live world state from a Snapshot, reconstructing the map
// from its persisted tiles rather than regenerating it, per spec.md §4.15.
// The caller must run world.Map.ComputeFOV once from the restored player
// position afterward to repopulate the FOV bitmap.
func Restore(snap *Snapshot, gen *id.Generator) *World {
	tiles := make([]world.Tile, len(snap.Tiles))
	for i, tr := range snap.Tiles {
		tiles[i] = world.Tile{Kind: world.Kind(tr.Kind), Explored: tr.Explored}
	}
	rooms := make([]world.Rect, len(snap.Rooms))
	for i, rr := range snap.Rooms {
		rooms[i] = world.Rect{Begin: geom.Vec2{Y: rr.BeginY, X: rr.BeginX}, End: geom.Vec2{Y: rr.EndY, X: rr.EndX}}
	}
	m := world.Restore(snap.Width, snap.Height, snap.Seed, tiles, rooms)

	w := &World{
		Map:      m,
		Stairs:   geom.Vec2{Y: snap.StairsY, X: snap.StairsX},
		Player:   recordToCreature(snap.Player),
		Messages: append([]string(nil), snap.Messages...),
		Hunger:   hunger.Restore(snap.Hunger.Value, hunger.Band(snap.Hunger.Band), snap.Hunger.WellFedMessageShown),
		Level:    &level.Manager{DungeonLevel: snap.Level.DungeonLevel, ShopkeepersOnCurrentLevel: snap.Level.ShopkeepersOnCurrentLevel},
		Turn:     snap.TurnCounter,
	}
	maxSeen := snap.Player.ID
	for _, cr := range snap.Creatures {
		c := recordToCreature(cr)
		w.Creatures = append(w.Creatures, c)
		if cr.ID > maxSeen {
			maxSeen = cr.ID
		}
		for _, ir := range cr.Inventory {
			if ir.ID > maxSeen {
				maxSeen = ir.ID
			}
		}
	}
	for _, ir := range snap.FloorItems {
		w.FloorItems = append(w.FloorItems, recordToItem(ir))
		if ir.ID > maxSeen {
			maxSeen = ir.ID
		}
	}
	for _, wr := range snap.Objects {
		w.Objects = append(w.Objects, &world.Web{
			Position:  geom.Vec2{Y: wr.PosY, X: wr.PosX},
			Strength:  wr.Strength,
			TurnsLeft: wr.TurnsLeft,
		})
	}
	for _, ir := range snap.Player.Inventory {
		if ir.ID > maxSeen {
			maxSeen = ir.ID
		}
	}
	gen.AdvancePast(id.ID(maxSeen))
	return w
}
