package registry

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// CreateTables issues the DDL for every table the game engine reads,
// directly grounded on cmd/codex/migration.go's createTables: one
// CREATE TABLE IF NOT EXISTS per table, safe to re-run.
func CreateTables(db *sql.DB) error {
	log.Println("creating registry database tables...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS monsters (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			glyph TEXT NOT NULL,
			color INTEGER NOT NULL,
			str INTEGER NOT NULL, dex INTEGER NOT NULL, con INTEGER NOT NULL,
			int INTEGER NOT NULL, wis INTEGER NOT NULL, cha INTEGER NOT NULL,
			hp INTEGER NOT NULL,
			ac INTEGER NOT NULL,
			thac0 INTEGER NOT NULL,
			damage_min INTEGER NOT NULL,
			damage_max INTEGER NOT NULL,
			damage_type INTEGER NOT NULL DEFAULT 0,
			ai_kind INTEGER NOT NULL,
			xp_award INTEGER NOT NULL DEFAULT 0,
			corpse_name TEXT,
			base_weight INTEGER NOT NULL DEFAULT 1,
			level_min INTEGER NOT NULL DEFAULT 1,
			level_max INTEGER NOT NULL DEFAULT 10,
			scaling REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			glyph TEXT NOT NULL,
			color INTEGER NOT NULL,
			item_class INTEGER NOT NULL,
			pickable INTEGER NOT NULL DEFAULT 0,
			value INTEGER NOT NULL DEFAULT 0,
			nutrition INTEGER NOT NULL DEFAULT 0,
			heal_amount INTEGER NOT NULL DEFAULT 0,
			range_tiles INTEGER NOT NULL DEFAULT 0,
			damage INTEGER NOT NULL DEFAULT 0,
			duration_turns INTEGER NOT NULL DEFAULT 0,
			gold_amount INTEGER NOT NULL DEFAULT 0,
			ac_bonus INTEGER NOT NULL DEFAULT 0,
			weapon_min INTEGER NOT NULL DEFAULT 0,
			weapon_max INTEGER NOT NULL DEFAULT 0,
			is_ranged_wpn INTEGER NOT NULL DEFAULT 0,
			base_weight INTEGER NOT NULL DEFAULT 1,
			level_min INTEGER NOT NULL DEFAULT 1,
			level_max INTEGER NOT NULL DEFAULT 10,
			scaling REAL NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS spells (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			level INTEGER NOT NULL,
			class TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS npcs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			title TEXT,
			shop_type TEXT NOT NULL,
			shop_level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS shop_pricing (
			shop_type TEXT NOT NULL,
			quality TEXT NOT NULL,
			markup_pct INTEGER NOT NULL,
			sellback_pct INTEGER NOT NULL,
			PRIMARY KEY (shop_type, quality)
		)`,

		`CREATE TABLE IF NOT EXISTS generation_weights (
			category TEXT PRIMARY KEY,
			data TEXT NOT NULL
		)`,
	}

	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %v\n%s", err, table)
		}
	}

	log.Println("registry tables created")
	return nil
}

// monsterSeed and itemSeed are the starter content shipped with the engine:
// every monster AIKind (melee, ranged, spider, web spinner, mimic,
// shopkeeper) appears, but only the potion, scroll, weapon, armor, food and
// gold item classes do. A real deployment grows these tables independently; this
// seed only exists so roguedata -migrate produces an immediately playable
// database.
type monsterSeedRow struct {
	id, name, glyph                        string
	color                                  int
	str, dex, con, intel, wis, cha         int
	hp, ac, thac0, dmgMin, dmgMax          int
	damageType, aiKind, xpAward            int
	corpseName                             string
	baseWeight, levelMin, levelMax         int
	scaling                                float64
}

var monsterSeed = []monsterSeedRow{
	{"rat", "rat", "r", 1, 3, 12, 10, 2, 10, 3, 4, 9, 20, 1, 2, 0, 2, 1, "rat corpse", 10, 1, 3, 0},
	{"goblin", "goblin", "g", 2, 10, 12, 11, 8, 8, 6, 7, 19, 19, 1, 6, 0, 2, 5, "goblin corpse", 8, 1, 5, 0.2},
	{"orc", "orc", "o", 2, 14, 10, 14, 8, 8, 8, 15, 17, 17, 1, 8, 0, 2, 15, "orc corpse", 6, 2, 7, 0.2},
	{"giant_spider", "giant spider", "s", 3, 10, 16, 10, 4, 10, 4, 12, 17, 18, 1, 6, 4, 5, 12, "spider corpse", 5, 3, 8, 0.25},
	{"web_spinner", "web spinner", "s", 3, 8, 14, 10, 6, 10, 4, 10, 17, 18, 1, 4, 4, 6, 10, "web spinner corpse", 4, 3, 8, 0.25},
	{"skeleton_archer", "skeleton archer", "k", 7, 8, 14, 10, 6, 10, 6, 13, 16, 17, 1, 6, 0, 3, 18, "pile of bones", 6, 4, 9, 0.2},
	{"mimic", "treasure chest", "$", 6, 16, 8, 16, 5, 8, 4, 22, 15, 15, 2, 8, 0, 7, 40, "mimic corpse", 2, 5, 10, 0.3},
	{"shopkeeper", "shopkeeper", "@", 4, 10, 10, 12, 10, 10, 12, 20, 15, 18, 1, 4, 0, 4, 0, "shopkeeper's body", 0, 1, 10, 0},
	{"orc_chieftain", "orc chieftain", "O", 2, 17, 10, 16, 10, 10, 10, 30, 14, 15, 2, 10, 0, 2, 60, "chieftain's corpse", 2, 6, 10, 0.3},
}

type itemSeedRow struct {
	id, name, glyph                               string
	color, class, pickable                        int
	value, nutrition, heal, rangeT, dmg, duration int
	gold, acBonus, wMin, wMax                     int
	ranged                                         bool
	baseWeight, levelMin, levelMax                int
	scaling                                        float64
	category                                       string
}

// Field order: id, name, glyph, color, class, pickable, value, nutrition,
// heal, rangeTiles, dmg, duration, gold, acBonus, weaponMin, weaponMax,
// ranged, baseWeight, levelMin, levelMax, scaling, category.
var itemSeed = []itemSeedRow{
	{"potion_healing", "potion of healing", "!", 5, 0, 1, 50, 0, 8, 0, 0, 0, 0, 0, 0, 0, false, 10, 1, 10, 0, "potion"},
	{"scroll_confusion", "scroll of confusion", "?", 7, 1, 4, 80, 0, 0, 0, 0, 10, 0, 0, 0, 0, false, 5, 1, 10, 0, "scroll"},
	{"ration", "food ration", "%", 3, 4, 7, 15, 6, 0, 0, 0, 0, 0, 0, 0, 0, false, 15, 1, 10, 0, "food"},
	{"dagger", "dagger", "/", 15, 2, 9, 10, 0, 0, 0, 0, 0, 0, 0, 2, 5, false, 8, 1, 6, 0, "weapon"},
	{"long_sword", "long sword", "/", 15, 2, 9, 75, 0, 0, 0, 0, 0, 0, 0, 3, 10, false, 6, 2, 10, 0.1, "weapon"},
	{"short_bow", "short bow", ")", 15, 2, 9, 60, 0, 0, 8, 0, 0, 0, 0, 2, 6, true, 4, 2, 10, 0.1, "weapon"},
	{"leather_armor", "leather armor", "[", 15, 3, 10, 50, 0, 0, 0, 0, 0, 0, -1, 0, 0, false, 8, 1, 6, 0, "armor"},
	{"chain_mail", "chain mail", "[", 15, 3, 10, 150, 0, 0, 0, 0, 0, 0, -4, 0, 0, false, 4, 3, 10, 0.15, "armor"},
	{"gold_pile", "pile of gold", "$", 11, 5, 8, 0, 0, 0, 0, 0, 0, 20, 0, 0, 0, false, 12, 1, 10, 0, "treasure"},
}

// Seed inserts the starter monster/item/npc/shop-pricing rows; it writes no
// generation_weights rows.
// Re-running Seed is safe: every insert uses INSERT OR REPLACE.
func Seed(db *sql.DB) error {
	for _, m := range monsterSeed {
		_, err := db.Exec(`
			INSERT OR REPLACE INTO monsters
			(id, name, glyph, color, str, dex, con, int, wis, cha, hp, ac, thac0,
			 damage_min, damage_max, damage_type, ai_kind, xp_award, corpse_name,
			 base_weight, level_min, level_max, scaling)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		`, m.id, m.name, m.glyph, m.color, m.str, m.dex, m.con, m.intel, m.wis, m.cha,
			m.hp, m.ac, m.thac0, m.dmgMin, m.dmgMax, m.damageType, m.aiKind, m.xpAward, m.corpseName,
			m.baseWeight, m.levelMin, m.levelMax, m.scaling)
		if err != nil {
			return fmt.Errorf("failed to seed monster %s: %v", m.id, err)
		}
	}

	for _, it := range itemSeed {
		rangedInt := 0
		if it.ranged {
			rangedInt = 1
		}
		_, err := db.Exec(`
			INSERT OR REPLACE INTO items
			(id, name, glyph, color, item_class, pickable, value, nutrition,
			 heal_amount, range_tiles, damage, duration_turns, gold_amount,
			 ac_bonus, weapon_min, weapon_max, is_ranged_wpn,
			 base_weight, level_min, level_max, scaling, category)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		`, it.id, it.name, it.glyph, it.color, it.class, it.pickable, it.value, it.nutrition,
			it.heal, it.rangeT, it.dmg, it.duration, it.gold,
			it.acBonus, it.wMin, it.wMax, rangedInt,
			it.baseWeight, it.levelMin, it.levelMax, it.scaling, it.category)
		if err != nil {
			return fmt.Errorf("failed to seed item %s: %v", it.id, err)
		}
	}

	shopkeeperSeed := []struct {
		id, name, title, shopType string
		shopLevel                 int
	}{
		{"shopkeeper_weaponsmith", "Gorrim", "the weaponsmith", "weapon", 1},
		{"shopkeeper_armorer", "Thessaly", "the armorer", "armor", 1},
		{"shopkeeper_alchemist", "Ode", "the alchemist", "potion", 1},
	}
	for _, n := range shopkeeperSeed {
		_, err := db.Exec(`
			INSERT OR REPLACE INTO npcs (id, name, title, shop_type, shop_level)
			VALUES (?,?,?,?,?)
		`, n.id, n.name, n.title, n.shopType, n.shopLevel)
		if err != nil {
			return fmt.Errorf("failed to seed npc %s: %v", n.id, err)
		}
	}

	pricingSeed := []struct {
		shopType, quality   string
		markupPct, sellback int
	}{
		{"any", "poor", 70, 35},
		{"any", "average", 100, 50},
		{"any", "good", 130, 65},
		{"any", "excellent", 160, 80},
	}
	for _, p := range pricingSeed {
		_, err := db.Exec(`
			INSERT OR REPLACE INTO shop_pricing (shop_type, quality, markup_pct, sellback_pct)
			VALUES (?,?,?,?)
		`, p.shopType, p.quality, p.markupPct, p.sellback)
		if err != nil {
			return fmt.Errorf("failed to seed shop pricing %s/%s: %v", p.shopType, p.quality, err)
		}
	}

	log.Println("registry tables seeded")
	return nil
}
