package registry

import "fmt"

// ShopPricingRow is a shop_pricing table row: which shop.Type/Quality pair a
// row configures, mirroring the teacher's ShopPricingRules JSON blob but
// normalized into columns since our markup table is small and fixed-shape.
type ShopPricingRow struct {
	ShopType    string
	Quality     string
	MarkupPct   int
	SellbackPct int
}

// ShopPricing lists every configured shop pricing row. roguedata's
// validation command loads it to confirm the table is readable; it does not
// compare the rows with internal/shop's hardcoded tiers.
func (r *Registry) ShopPricing() ([]ShopPricingRow, error) {
	rows, err := r.db.Query(`SELECT shop_type, quality, markup_pct, sellback_pct FROM shop_pricing`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shop pricing: %v", err)
	}
	defer rows.Close()

	var out []ShopPricingRow
	for rows.Next() {
		var row ShopPricingRow
		if err := rows.Scan(&row.ShopType, &row.Quality, &row.MarkupPct, &row.SellbackPct); err != nil {
			return nil, fmt.Errorf("failed to scan shop pricing row: %v", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// NPCRow is an npcs table row: a shopkeeper's name/title/shop configuration,
// mirroring the teacher's NPCData/ShopConfig but narrowed to what a
// dungeon-crawl shopkeeper actually needs.
type NPCRow struct {
	ID        string
	Name      string
	Title     string
	ShopType  string
	ShopLevel int
}

// GetNPC retrieves a single shopkeeper definition by id.
func (r *Registry) GetNPC(npcID string) (*NPCRow, error) {
	var n NPCRow
	err := r.db.QueryRow(`
		SELECT id, name, title, shop_type, shop_level FROM npcs WHERE id = ?
	`, npcID).Scan(&n.ID, &n.Name, &n.Title, &n.ShopType, &n.ShopLevel)
	if err != nil {
		return nil, fmt.Errorf("npc not found: %s: %v", npcID, err)
	}
	return &n, nil
}

// ListNPCs returns every shopkeeper definition.
func (r *Registry) ListNPCs() ([]NPCRow, error) {
	rows, err := r.db.Query(`SELECT id, name, title, shop_type, shop_level FROM npcs`)
	if err != nil {
		return nil, fmt.Errorf("failed to list npcs: %v", err)
	}
	defer rows.Close()

	var out []NPCRow
	for rows.Next() {
		var n NPCRow
		if err := rows.Scan(&n.ID, &n.Name, &n.Title, &n.ShopType, &n.ShopLevel); err != nil {
			return nil, fmt.Errorf("failed to scan npc row: %v", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// GenerationWeightsRow is a generation_weights table row: the base weight and
// level band for a single monster or item spawn-table entry, stored as a
// JSON blob in the teacher's analogous table and decoded the same way here.
type GenerationWeightsRow struct {
	Category string // "monster" or "item"
	Data     string // raw JSON, returned undecoded; decoding is up to the caller
}

// GenerationWeights returns the raw JSON blob rows, for callers that want the
// teacher's exact "fetch blob, json.Unmarshal into a typed struct" idiom
// instead of the column-per-field monsters/items tables above.
func (r *Registry) GenerationWeights() ([]GenerationWeightsRow, error) {
	rows, err := r.db.Query(`SELECT category, data FROM generation_weights`)
	if err != nil {
		return nil, fmt.Errorf("failed to query generation weights: %v", err)
	}
	defer rows.Close()

	var out []GenerationWeightsRow
	for rows.Next() {
		var row GenerationWeightsRow
		if err := rows.Scan(&row.Category, &row.Data); err != nil {
			return nil, fmt.Errorf("failed to scan generation weights row: %v", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
