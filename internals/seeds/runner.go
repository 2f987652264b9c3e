package seeds

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"bethesda_backend/internals/seeds/events"
	"bethesda_backend/internals/seeds/ministries"
	"bethesda_backend/internals/seeds/sermons"

	"gorm.io/gorm"
)

// RunAllSeeds loads sermons.json, events.json and ministries.json from dir.
// Missing files are skipped; rows already present are left alone.
func RunAllSeeds(db *gorm.DB, dir string) error {
	steps := []struct {
		file string
		run  func(*gorm.DB, string) (int, error)
	}{
		{"sermons.json", sermons.SeedSermonsFromJSON},
		{"events.json", events.SeedEventsFromJSON},
		{"ministries.json", ministries.SeedMinistriesFromJSON},
	}

	for _, s := range steps {
		path := filepath.Join(dir, s.file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("[SEED] %s not found, skipped", path)
			continue
		}
		if _, err := s.run(db, path); err != nil {
			return fmt.Errorf("seed %s: %w", s.file, err)
		}
	}
	return nil
}
