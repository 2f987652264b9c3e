package ministries

import (
	"fmt"
	"log"

	"bethesda_backend/internals/features/ministries/model"
	"bethesda_backend/internals/seeds/seedutil"

	"gorm.io/gorm"
)

type MinistrySeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// SeedMinistriesFromJSON inserts ministries whose name is not stored yet.
func SeedMinistriesFromJSON(db *gorm.DB, filePath string) (int, error) {
	var rows []MinistrySeed
	if err := seedutil.ReadJSON(filePath, &rows); err != nil {
		return 0, err
	}

	var names []string
	if err := db.Model(&model.MinistryModel{}).Pluck("name", &names).Error; err != nil {
		return 0, fmt.Errorf("load existing ministries: %w", err)
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}

	var fresh []model.MinistryModel
	for _, r := range rows {
		if seen[r.Name] {
			log.Printf("[SEED] ℹ️ ministry %q exists, skipped", r.Name)
			continue
		}
		seen[r.Name] = true

		status := r.Status
		if status == "" {
			status = model.MinistryStatusActive
		}
		fresh = append(fresh, model.MinistryModel{
			MinistryName:        r.Name,
			MinistryDescription: r.Description,
			MinistryStatus:      status,
		})
	}

	if len(fresh) == 0 {
		log.Println("[SEED] ℹ️ no new ministries")
		return 0, nil
	}
	if err := db.Create(&fresh).Error; err != nil {
		return 0, fmt.Errorf("insert ministries: %w", err)
	}
	log.Printf("[SEED] ✅ inserted %d ministries", len(fresh))
	return len(fresh), nil
}
