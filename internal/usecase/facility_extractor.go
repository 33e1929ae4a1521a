package usecase

import (
	"github.com/facility-finder/internal/domain"
	"github.com/facility-finder/internal/pkg/utils"
	"github.com/tidwall/gjson"
)

// FacilityExtractor разбирает ответ поиска провайдера в список мест
type FacilityExtractor struct {
	mapper *FacilityMapper
}

// NewFacilityExtractor создает FacilityExtractor
func NewFacilityExtractor(mapper *FacilityMapper) *FacilityExtractor {
	return &FacilityExtractor{mapper: mapper}
}

// Extract maps every entry of "places" in provider order, attaches the distance
// from the caller's point when both sides have coordinates, then applies the
// client-side filters. A payload without "places" yields an empty slice.
func (e *FacilityExtractor) Extract(payload []byte, qc domain.QueryContext) []domain.Facility {
	places := gjson.GetBytes(payload, "places")
	if !places.IsArray() {
		return []domain.Facility{}
	}

	refLat, refLon, hasRef := qc.ReferencePoint()

	facilities := make([]domain.Facility, 0, len(places.Array()))
	places.ForEach(func(_, place gjson.Result) bool {
		f := e.mapper.Map(place)

		if hasRef {
			if lat, lon, ok := f.Location.Coordinates(); ok {
				d := utils.DistanceKm(refLat, refLon, lat, lon)
				f.DistanceKm = &d
				f.Location = &domain.Location{Latitude: &lat, Longitude: &lon}
			}
		}

		facilities = append(facilities, f)
		return true
	})

	return ApplyFilters(facilities, qc)
}
