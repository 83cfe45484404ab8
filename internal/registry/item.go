package registry

import (
	"fmt"

	"rogue-engine/internal/entity"
	"rogue-engine/internal/level"
)

// ItemDefinition is a row of the items table: the static template a spawner
// instantiates an entity.Item from, plus the spawn-weighting columns
// internal/level consumes.
type ItemDefinition struct {
	ID          string
	Name        string
	Glyph       string
	Color       int
	Class       entity.ItemClass
	Pickable    entity.PickableKind
	Value       int
	Nutrition   int
	HealAmount  int
	RangeTiles  int
	Damage      int
	DurationTr  int
	GoldAmount  int
	ACBonus     int
	WeaponMin   int
	WeaponMax   int
	IsRangedWpn bool

	BaseWeight int
	LevelMin   int
	LevelMax   int
	Scaling    float64
	Category   string
}

// GetItem retrieves a single item definition by id.
func (r *Registry) GetItem(itemID string) (*ItemDefinition, error) {
	var d ItemDefinition
	var class, pickable int
	var isRanged int
	err := r.db.QueryRow(`
		SELECT id, name, glyph, color, item_class, pickable, value,
		       nutrition, heal_amount, range_tiles, damage, duration_turns,
		       gold_amount, ac_bonus, weapon_min, weapon_max, is_ranged_wpn,
		       base_weight, level_min, level_max, scaling, category
		FROM items WHERE id = ?
	`, itemID).Scan(&d.ID, &d.Name, &d.Glyph, &d.Color, &class, &pickable, &d.Value,
		&d.Nutrition, &d.HealAmount, &d.RangeTiles, &d.Damage, &d.DurationTr,
		&d.GoldAmount, &d.ACBonus, &d.WeaponMin, &d.WeaponMax, &isRanged,
		&d.BaseWeight, &d.LevelMin, &d.LevelMax, &d.Scaling, &d.Category)
	if err != nil {
		return nil, fmt.Errorf("item not found: %s: %v", itemID, err)
	}
	d.Class = entity.ItemClass(class)
	d.Pickable = entity.PickableKind(pickable)
	d.IsRangedWpn = isRanged != 0
	return &d, nil
}

// ListItems returns every item definition.
func (r *Registry) ListItems() ([]ItemDefinition, error) {
	rows, err := r.db.Query(`
		SELECT id, name, glyph, color, item_class, pickable, value,
		       nutrition, heal_amount, range_tiles, damage, duration_turns,
		       gold_amount, ac_bonus, weapon_min, weapon_max, is_ranged_wpn,
		       base_weight, level_min, level_max, scaling, category
		FROM items
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %v", err)
	}
	defer rows.Close()

	var out []ItemDefinition
	for rows.Next() {
		var d ItemDefinition
		var class, pickable, isRanged int
		if err := rows.Scan(&d.ID, &d.Name, &d.Glyph, &d.Color, &class, &pickable, &d.Value,
			&d.Nutrition, &d.HealAmount, &d.RangeTiles, &d.Damage, &d.DurationTr,
			&d.GoldAmount, &d.ACBonus, &d.WeaponMin, &d.WeaponMax, &isRanged,
			&d.BaseWeight, &d.LevelMin, &d.LevelMax, &d.Scaling, &d.Category); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %v", err)
		}
		d.Class = entity.ItemClass(class)
		d.Pickable = entity.PickableKind(pickable)
		d.IsRangedWpn = isRanged != 0
		out = append(out, d)
	}
	return out, rows.Err()
}

// ItemSpawnTables converts every item definition into the level package's
// weighted-spawn entry.
func (r *Registry) ItemSpawnTables() ([]level.ItemSpawnTable, error) {
	defs, err := r.ListItems()
	if err != nil {
		return nil, err
	}
	tables := make([]level.ItemSpawnTable, 0, len(defs))
	for _, d := range defs {
		tables = append(tables, level.ItemSpawnTable{
			Kind:       d.ID,
			BaseWeight: d.BaseWeight,
			LevelMin:   d.LevelMin,
			LevelMax:   d.LevelMax,
			Scaling:    d.Scaling,
			Category:   d.Category,
		})
	}
	return tables, nil
}
