package main

import (
	"fmt"

	"rogue-engine/internal/registry"
)

// Issue reports one data-integrity problem found while loading a table,
// mirroring the teacher's validation.Issue shape (cmd/codex/validation).
type Issue struct {
	Category string
	Message  string
}

// ValidationResult tallies every Issue found across the registry's tables.
type ValidationResult struct {
	Issues     []Issue
	ErrorCount int
}

func (r *ValidationResult) fail(category string, err error) {
	r.Issues = append(r.Issues, Issue{Category: category, Message: err.Error()})
	r.ErrorCount++
}

// runValidate opens the registry and loads every table it serves to the
// engine, reporting any row that fails to parse or reference a valid
// dependent row (spawn tables reference monster/item ids that must exist).
func runValidate(dbPath string) (*ValidationResult, error) {
	fmt.Println("🔍 running registry data validation...")
	reg, err := registry.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer reg.Close()

	result := &ValidationResult{}

	monsters, err := reg.ListMonsters()
	if err != nil {
		result.fail("monsters", err)
	}
	monsterIDs := make(map[string]bool, len(monsters))
	for _, m := range monsters {
		monsterIDs[m.ID] = true
	}

	items, err := reg.ListItems()
	if err != nil {
		result.fail("items", err)
	}
	itemIDs := make(map[string]bool, len(items))
	for _, it := range items {
		itemIDs[it.ID] = true
	}

	if spawnTables, err := reg.SpawnTables(); err != nil {
		result.fail("spawn_tables", err)
	} else {
		for _, t := range spawnTables {
			if !monsterIDs[t.Kind] {
				result.fail("spawn_tables", fmt.Errorf("monster spawn table references unknown monster %q", t.Kind))
			}
		}
	}

	if itemTables, err := reg.ItemSpawnTables(); err != nil {
		result.fail("item_spawn_tables", err)
	} else {
		for _, t := range itemTables {
			if !itemIDs[t.Kind] {
				result.fail("item_spawn_tables", fmt.Errorf("item spawn table references unknown item %q", t.Kind))
			}
		}
	}

	if _, err := reg.ShopPricing(); err != nil {
		result.fail("shop_pricing", err)
	}
	if _, err := reg.ListNPCs(); err != nil {
		result.fail("npcs", err)
	}
	if _, err := reg.GenerationWeights(); err != nil {
		result.fail("generation_weights", err)
	}

	fmt.Printf("   monsters: %d, items: %d\n", len(monsters), len(items))
	return result, nil
}

func printValidation(result *ValidationResult) {
	fmt.Printf("\n📊 validation results:\n")
	fmt.Printf("   issues: %d\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Printf("   ❌ [%s] %s\n", issue.Category, issue.Message)
	}
	if result.ErrorCount == 0 {
		fmt.Println("\n✅ validation passed!")
	} else {
		fmt.Printf("\n❌ validation failed with %d error(s)\n", result.ErrorCount)
	}
}
