package events

import (
	"fmt"
	"log"

	"bethesda_backend/internals/features/events/model"
	"bethesda_backend/internals/seeds/seedutil"

	"gorm.io/gorm"
)

type EventSeed struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	Date                 string `json:"date"`
	StartTime            string `json:"start_time"`
	EndTime              string `json:"end_time"`
	Location             string `json:"location"`
	ImageURL             string `json:"image_url"`
	Category             string `json:"category"`
	RegistrationRequired bool   `json:"registration_required"`
	MaxAttendees         *int   `json:"max_attendees"`
	Status               string `json:"status"`
}

// SeedEventsFromJSON inserts events whose title+date is not stored yet.
func SeedEventsFromJSON(db *gorm.DB, filePath string) (int, error) {
	var rows []EventSeed
	if err := seedutil.ReadJSON(filePath, &rows); err != nil {
		return 0, err
	}

	var existing []model.EventModel
	if err := db.Select("title", "date").Find(&existing).Error; err != nil {
		return 0, fmt.Errorf("load existing events: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[seedutil.DateKey(e.EventTitle, e.EventDate)] = true
	}

	var fresh []model.EventModel
	for _, r := range rows {
		date, err := seedutil.ParseDate(r.Date)
		if err != nil {
			return 0, fmt.Errorf("event %q: %w", r.Title, err)
		}
		start, err := seedutil.ParseClock(r.StartTime)
		if err != nil {
			return 0, fmt.Errorf("event %q start: %w", r.Title, err)
		}
		end, err := seedutil.ParseClock(r.EndTime)
		if err != nil {
			return 0, fmt.Errorf("event %q end: %w", r.Title, err)
		}

		key := seedutil.DateKey(r.Title, date)
		if seen[key] {
			log.Printf("[SEED] ℹ️ event %q (%s) exists, skipped", r.Title, r.Date)
			continue
		}
		seen[key] = true

		status := r.Status
		if status == "" {
			status = model.EventStatusPublished
		}
		fresh = append(fresh, model.EventModel{
			EventTitle:                r.Title,
			EventDescription:          r.Description,
			EventDate:                 date,
			EventStartTime:            start,
			EventEndTime:              end,
			EventLocation:             r.Location,
			EventImageURL:             r.ImageURL,
			EventCategory:             r.Category,
			EventRegistrationRequired: r.RegistrationRequired,
			EventMaxAttendees:         r.MaxAttendees,
			EventStatus:               status,
		})
	}

	if len(fresh) == 0 {
		log.Println("[SEED] ℹ️ no new events")
		return 0, nil
	}
	if err := db.Create(&fresh).Error; err != nil {
		return 0, fmt.Errorf("insert events: %w", err)
	}
	log.Printf("[SEED] ✅ inserted %d events", len(fresh))
	return len(fresh), nil
}
