package registry

import (
	"fmt"

	"rogue-engine/internal/entity"
	"rogue-engine/internal/level"
)

// MonsterDefinition is a row of the monsters table: the static stat block a
// spawner instantiates a entity.Creature from, plus the spawn-weighting
// columns consumed by internal/level. AIKind/DamageType are stored as their
// int values, mirroring the teacher's "properties TEXT" JSON-blob columns
// for the fields that don't need their own indexed column.
type MonsterDefinition struct {
	ID         string
	Name       string
	Glyph      string
	Color      int
	STR        int
	DEX        int
	CON        int
	INT        int
	WIS        int
	CHA        int
	HP         int
	AC         int
	Thac0      int
	DamageMin  int
	DamageMax  int
	DamageType entity.DamageType
	AIKind     entity.AIKind
	XPAward    int
	CorpseName string

	BaseWeight int
	LevelMin   int
	LevelMax   int
	Scaling    float64
}

// GetMonster retrieves a single monster definition by id.
func (r *Registry) GetMonster(monsterID string) (*MonsterDefinition, error) {
	var d MonsterDefinition
	var damageType, aiKind int
	err := r.db.QueryRow(`
		SELECT id, name, glyph, color, str, dex, con, int, wis, cha,
		       hp, ac, thac0, damage_min, damage_max, damage_type, ai_kind,
		       xp_award, corpse_name, base_weight, level_min, level_max, scaling
		FROM monsters WHERE id = ?
	`, monsterID).Scan(&d.ID, &d.Name, &d.Glyph, &d.Color, &d.STR, &d.DEX, &d.CON, &d.INT, &d.WIS, &d.CHA,
		&d.HP, &d.AC, &d.Thac0, &d.DamageMin, &d.DamageMax, &damageType, &aiKind,
		&d.XPAward, &d.CorpseName, &d.BaseWeight, &d.LevelMin, &d.LevelMax, &d.Scaling)
	if err != nil {
		return nil, fmt.Errorf("monster not found: %s: %v", monsterID, err)
	}
	d.DamageType = entity.DamageType(damageType)
	d.AIKind = entity.AIKind(aiKind)
	return &d, nil
}

// ListMonsters returns every monster definition, for the spawn table and
// for the roguedata CLI's listing/validation commands.
func (r *Registry) ListMonsters() ([]MonsterDefinition, error) {
	rows, err := r.db.Query(`
		SELECT id, name, glyph, color, str, dex, con, int, wis, cha,
		       hp, ac, thac0, damage_min, damage_max, damage_type, ai_kind,
		       xp_award, corpse_name, base_weight, level_min, level_max, scaling
		FROM monsters
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list monsters: %v", err)
	}
	defer rows.Close()

	var out []MonsterDefinition
	for rows.Next() {
		var d MonsterDefinition
		var damageType, aiKind int
		if err := rows.Scan(&d.ID, &d.Name, &d.Glyph, &d.Color, &d.STR, &d.DEX, &d.CON, &d.INT, &d.WIS, &d.CHA,
			&d.HP, &d.AC, &d.Thac0, &d.DamageMin, &d.DamageMax, &damageType, &aiKind,
			&d.XPAward, &d.CorpseName, &d.BaseWeight, &d.LevelMin, &d.LevelMax, &d.Scaling); err != nil {
			return nil, fmt.Errorf("failed to scan monster row: %v", err)
		}
		d.DamageType = entity.DamageType(damageType)
		d.AIKind = entity.AIKind(aiKind)
		out = append(out, d)
	}
	return out, rows.Err()
}

// SpawnTables converts every monster definition into the level package's
// weighted-spawn entry, keyed by ID so the spawner can look the full
// definition back up once PickMonster has chosen a Kind.
func (r *Registry) SpawnTables() ([]level.MonsterSpawnTable, error) {
	defs, err := r.ListMonsters()
	if err != nil {
		return nil, err
	}
	tables := make([]level.MonsterSpawnTable, 0, len(defs))
	for _, d := range defs {
		tables = append(tables, level.MonsterSpawnTable{
			Kind:       d.ID,
			BaseWeight: d.BaseWeight,
			LevelMin:   d.LevelMin,
			LevelMax:   d.LevelMax,
			Scaling:    d.Scaling,
		})
	}
	return tables, nil
}
