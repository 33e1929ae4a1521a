package usecase

import (
	"fmt"

	"github.com/facility-finder/internal/domain"
	"github.com/tidwall/gjson"
)

// photoMaxHeightPx - высота изображения в ссылке на медиа
const photoMaxHeightPx = 800

// FacilityMapper преобразует объект места провайдера в domain.Facility
type FacilityMapper struct {
	apiKey       string
	mediaBaseURL string
}

// NewFacilityMapper создает FacilityMapper
func NewFacilityMapper(apiKey, mediaBaseURL string) *FacilityMapper {
	return &FacilityMapper{
		apiKey:       apiKey,
		mediaBaseURL: mediaBaseURL,
	}
}

// MapJSON maps a raw place payload. Empty or invalid input yields an empty Facility.
func (m *FacilityMapper) MapJSON(raw []byte) domain.Facility {
	return m.Map(gjson.ParseBytes(raw))
}

// Map переносит каждое присутствующее поле места; отсутствующие остаются nil
func (m *FacilityMapper) Map(place gjson.Result) domain.Facility {
	var f domain.Facility
	if !place.IsObject() {
		return f
	}

	f.ID = optString(place, "id")

	if name := optString(place, "displayName.text"); name != nil {
		f.Name = name
	} else {
		f.Name = optString(place, "name")
	}

	if types := place.Get("types"); types.IsArray() {
		f.Types = make([]string, 0, len(types.Array()))
		types.ForEach(func(_, t gjson.Result) bool {
			f.Types = append(f.Types, t.String())
			return true
		})
	}

	f.BusinessStatus = optString(place, "businessStatus")
	f.FormattedAddress = optString(place, "formattedAddress")

	if loc := place.Get("location"); loc.Exists() {
		f.Location = &domain.Location{
			Latitude:  optFloat(loc, "latitude"),
			Longitude: optFloat(loc, "longitude"),
		}
	}

	f.NationalPhoneNumber = optString(place, "nationalPhoneNumber")
	f.WebsiteURI = optString(place, "websiteUri")
	f.GoogleMapsURI = optString(place, "googleMapsUri")
	f.Rating = optFloat(place, "rating")

	if count := place.Get("userRatingCount"); count.Exists() {
		v := int(count.Int())
		f.UserRatingCount = &v
	}

	if hours := place.Get("regularOpeningHours"); hours.IsObject() {
		if oh, ok := hours.Value().(map[string]interface{}); ok {
			f.RegularOpeningHours = oh
		}
	}

	f.ImageURL = m.photoURL(place.Get("photos"))

	return f
}

// photoURL builds the media link from the first photo only.
func (m *FacilityMapper) photoURL(photos gjson.Result) *string {
	if !photos.IsArray() {
		return nil
	}
	list := photos.Array()
	if len(list) == 0 {
		return nil
	}
	name := list[0].Get("name")
	if !name.Exists() {
		return nil
	}

	link := fmt.Sprintf("%s/%s/media?maxHeightPx=%d&key=%s",
		m.mediaBaseURL,
		name.String(),
		photoMaxHeightPx,
		m.apiKey,
	)
	return &link
}

func optString(r gjson.Result, path string) *string {
	v := r.Get(path)
	if !v.Exists() {
		return nil
	}
	s := v.String()
	return &s
}

func optFloat(r gjson.Result, path string) *float64 {
	v := r.Get(path)
	if !v.Exists() {
		return nil
	}
	f := v.Float()
	return &f
}
