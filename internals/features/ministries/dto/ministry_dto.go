package dto

import (
	"strings"

	"bethesda_backend/internals/features/ministries/model"
)

// MinistryListQuery is bound from ?status=; only "active" is served publicly.
type MinistryListQuery struct {
	Status string `query:"status"`
}

func (q *MinistryListQuery) Normalize() {
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	if q.Status == "" {
		q.Status = model.MinistryStatusActive
	}
}

type MinistryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func ToMinistryResponse(m *model.MinistryModel) MinistryResponse {
	return MinistryResponse{
		ID:          m.MinistryID,
		Name:        m.MinistryName,
		Description: m.MinistryDescription,
		Status:      m.MinistryStatus,
	}
}

func ToMinistryResponseList(models []model.MinistryModel) []MinistryResponse {
	result := make([]MinistryResponse, 0, len(models))
	for i := range models {
		result = append(result, ToMinistryResponse(&models[i]))
	}
	return result
}
