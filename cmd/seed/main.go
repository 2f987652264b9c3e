// Loads the sample sermons, events and ministries into the configured database.
package main

import (
	"flag"
	"log"

	"bethesda_backend/internals/configs"
	database "bethesda_backend/internals/databases"
	"bethesda_backend/internals/seeds"
)

func main() {
	dir := flag.String("dir", "internals/seeds/data", "Directory holding sermons.json, events.json and ministries.json")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	// ⚙️ seeders
	if err := seeds.RunAllSeeds(db, *dir); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Println("[SEED] ✅ done")
}
