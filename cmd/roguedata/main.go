// Command roguedata is the offline migration/validation tool for the
// registry database, grounded on the teacher's cmd/codex -migrate/-validate
// flags (cmd/codex/main.go): the game server (cmd/roguectl) only ever reads
// from the database, so schema creation, seeding, and data-integrity
// checks live in this separate binary.
package main

import (
	"flag"
	"fmt"
	"os"

	"rogue-engine/internal/registry"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "create tables and seed the registry database, then exit")
	validateFlag := flag.Bool("validate", false, "load every table and report integrity issues, then exit")
	dbPath := flag.String("db", "roguedata.db", "path to the registry sqlite database")
	flag.Parse()

	if !*migrateFlag && !*validateFlag {
		fmt.Println("usage: roguedata -migrate | -validate [-db path]")
		os.Exit(1)
	}

	if *migrateFlag {
		if err := runMigrate(*dbPath); err != nil {
			fmt.Printf("❌ migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ migration completed successfully!")
	}

	if *validateFlag {
		result, err := runValidate(*dbPath)
		if err != nil {
			fmt.Printf("❌ validation failed to run: %v\n", err)
			os.Exit(1)
		}
		printValidation(result)
		if result.ErrorCount > 0 {
			os.Exit(1)
		}
	}
}

func runMigrate(dbPath string) error {
	fmt.Println("🔄 running database migration...")
	db, err := registry.OpenRaw(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("  creating tables")
	if err := registry.CreateTables(db); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	fmt.Println("  seeding registry data")
	if err := registry.Seed(db); err != nil {
		return fmt.Errorf("seeding data: %w", err)
	}
	return nil
}
