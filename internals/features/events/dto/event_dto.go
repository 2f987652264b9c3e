package dto

import (
	"fmt"
	"strings"
	"time"

	"bethesda_backend/internals/features/events/model"

	"gorm.io/datatypes"
)

const (
	DateLayout = "2006-01-02"

	TypeUpcoming = "upcoming"
	TypePast     = "past"
	TypeAll      = "all"
)

// EventListQuery is bound from ?type=&category=
type EventListQuery struct {
	Type     string `query:"type"`
	Category string `query:"category"`
}

// Normalize lower-cases type and defaults it to upcoming.
func (q *EventListQuery) Normalize() {
	q.Type = strings.ToLower(strings.TrimSpace(q.Type))
	if q.Type == "" {
		q.Type = TypeUpcoming
	}
	q.Category = strings.TrimSpace(q.Category)
}

func (q *EventListQuery) ValidType() bool {
	switch q.Type {
	case TypeUpcoming, TypePast, TypeAll:
		return true
	}
	return false
}

type EventResponse struct {
	ID                   uint    `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Date                 string  `json:"date"`
	StartTime            *string `json:"start_time"`
	EndTime              *string `json:"end_time"`
	Location             string  `json:"location"`
	ImageURL             string  `json:"image_url"`
	Category             string  `json:"category"`
	RegistrationRequired bool    `json:"registration_required"`
	MaxAttendees         *int    `json:"max_attendees"`
}

// CategoryCount is one row of GET /api/events/categories/list
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// FormatClock renders a TIME column as HH:MM; nil stays nil.
func FormatClock(t *datatypes.Time) *string {
	if t == nil {
		return nil
	}
	d := time.Duration(*t)
	s := fmt.Sprintf("%02d:%02d", int(d/time.Hour), int((d%time.Hour)/time.Minute))
	return &s
}

func ToEventResponse(m *model.EventModel) EventResponse {
	return EventResponse{
		ID:                   m.EventID,
		Title:                m.EventTitle,
		Description:          m.EventDescription,
		Date:                 time.Time(m.EventDate).Format(DateLayout),
		StartTime:            FormatClock(m.EventStartTime),
		EndTime:              FormatClock(m.EventEndTime),
		Location:             m.EventLocation,
		ImageURL:             m.EventImageURL,
		Category:             m.EventCategory,
		RegistrationRequired: m.EventRegistrationRequired,
		MaxAttendees:         m.EventMaxAttendees,
	}
}

func ToEventResponseList(models []model.EventModel) []EventResponse {
	result := make([]EventResponse, 0, len(models))
	for i := range models {
		result = append(result, ToEventResponse(&models[i]))
	}
	return result
}
