package sermons

import (
	"fmt"
	"log"

	"bethesda_backend/internals/features/sermons/model"
	"bethesda_backend/internals/seeds/seedutil"

	"gorm.io/gorm"
)

type SermonSeed struct {
	Title              string  `json:"title"`
	Speaker            string  `json:"speaker"`
	Date               string  `json:"date"`
	Description        string  `json:"description"`
	AudioURL           string  `json:"audio_url"`
	VideoURL           string  `json:"video_url"`
	NotesURL           string  `json:"notes_url"`
	ImageURL           string  `json:"image_url"`
	ScriptureReference string  `json:"scripture_reference"`
	Series             *string `json:"series"`
	Status             string  `json:"status"`
}

// SeedSermonsFromJSON inserts sermons whose title+date is not stored yet.
func SeedSermonsFromJSON(db *gorm.DB, filePath string) (int, error) {
	var rows []SermonSeed
	if err := seedutil.ReadJSON(filePath, &rows); err != nil {
		return 0, err
	}

	var existing []model.SermonModel
	if err := db.Select("title", "date").Find(&existing).Error; err != nil {
		return 0, fmt.Errorf("load existing sermons: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[seedutil.DateKey(s.SermonTitle, s.SermonDate)] = true
	}

	var fresh []model.SermonModel
	for _, r := range rows {
		date, err := seedutil.ParseDate(r.Date)
		if err != nil {
			return 0, fmt.Errorf("sermon %q: %w", r.Title, err)
		}
		key := seedutil.DateKey(r.Title, date)
		if seen[key] {
			log.Printf("[SEED] ℹ️ sermon %q (%s) exists, skipped", r.Title, r.Date)
			continue
		}
		seen[key] = true

		status := r.Status
		if status == "" {
			status = model.SermonStatusPublished
		}
		fresh = append(fresh, model.SermonModel{
			SermonTitle:              r.Title,
			SermonSpeaker:            r.Speaker,
			SermonDate:               date,
			SermonDescription:        r.Description,
			SermonAudioURL:           r.AudioURL,
			SermonVideoURL:           r.VideoURL,
			SermonNotesURL:           r.NotesURL,
			SermonImageURL:           r.ImageURL,
			SermonScriptureReference: r.ScriptureReference,
			SermonSeries:             r.Series,
			SermonStatus:             status,
		})
	}

	if len(fresh) == 0 {
		log.Println("[SEED] ℹ️ no new sermons")
		return 0, nil
	}
	if err := db.Create(&fresh).Error; err != nil {
		return 0, fmt.Errorf("insert sermons: %w", err)
	}
	log.Printf("[SEED] ✅ inserted %d sermons", len(fresh))
	return len(fresh), nil
}
