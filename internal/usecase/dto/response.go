package dto

import "github.com/facility-finder/internal/domain"

// FacilityListResponse - ответ поиска мест
type FacilityListResponse struct {
	Facilities []domain.Facility `json:"facilities"`
	Total      int               `json:"total"`
}

// NewFacilityListResponse never returns a nil facilities list.
func NewFacilityListResponse(facilities []domain.Facility) FacilityListResponse {
	if facilities == nil {
		facilities = []domain.Facility{}
	}
	return FacilityListResponse{
		Facilities: facilities,
		Total:      len(facilities),
	}
}
