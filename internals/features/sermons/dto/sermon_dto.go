package dto

import (
	"strings"
	"time"

	"bethesda_backend/internals/features/sermons/model"
)

const DateLayout = "2006-01-02"

// SermonListQuery is bound from ?series=&speaker=
type SermonListQuery struct {
	Series  string `query:"series"`
	Speaker string `query:"speaker"`
}

func (q *SermonListQuery) Normalize() {
	q.Series = strings.TrimSpace(q.Series)
	q.Speaker = strings.TrimSpace(q.Speaker)
}

type SermonResponse struct {
	ID                 uint    `json:"id"`
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
	Views              int64   `json:"views"`
}

// SeriesCount is one row of GET /api/sermons/series/list
type SeriesCount struct {
	Series string `json:"series"`
	Count  int64  `json:"count"`
}

// SpeakerCount is one row of GET /api/sermons/speakers/list
type SpeakerCount struct {
	Speaker string `json:"speaker"`
	Count   int64  `json:"count"`
}

func ToSermonResponse(m *model.SermonModel) SermonResponse {
	return SermonResponse{
		ID:                 m.SermonID,
		Title:              m.SermonTitle,
		Speaker:            m.SermonSpeaker,
		Date:               time.Time(m.SermonDate).Format(DateLayout),
		Description:        m.SermonDescription,
		AudioURL:           m.SermonAudioURL,
		VideoURL:           m.SermonVideoURL,
		NotesURL:           m.SermonNotesURL,
		ImageURL:           m.SermonImageURL,
		ScriptureReference: m.SermonScriptureReference,
		Series:             m.SermonSeries,
		Views:              m.SermonViews,
	}
}

func ToSermonResponseList(models []model.SermonModel) []SermonResponse {
	result := make([]SermonResponse, 0, len(models))
	for i := range models {
		result = append(result, ToSermonResponse(&models[i]))
	}
	return result
}
