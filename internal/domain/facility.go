package domain

import (
	"strconv"
	"strings"
)

// Facility - нормализованная запись о месте, полученном от провайдера.
// Все поля независимо опциональны.
type Facility struct {
	ID                  *string                `json:"id,omitempty"`
	Name                *string                `json:"name,omitempty"`
	Types               []string               `json:"types,omitempty"`
	BusinessStatus      *string                `json:"businessStatus,omitempty"`
	FormattedAddress    *string                `json:"formattedAddress,omitempty"`
	Location            *Location              `json:"location,omitempty"`
	DistanceKm          *float64               `json:"distanceKm,omitempty"`
	NationalPhoneNumber *string                `json:"nationalPhoneNumber,omitempty"`
	WebsiteURI          *string                `json:"websiteUri,omitempty"`
	GoogleMapsURI       *string                `json:"googleMapsUri,omitempty"`
	Rating              *float64               `json:"rating,omitempty"`
	UserRatingCount     *int                   `json:"userRatingCount,omitempty"`
	RegularOpeningHours map[string]interface{} `json:"regularOpeningHours,omitempty"`
	ImageURL            *string                `json:"imageUrl,omitempty"`
}

// IsEmpty reports whether no field is populated.
func (f *Facility) IsEmpty() bool {
	return f.ID == nil && f.Name == nil && f.Types == nil && f.BusinessStatus == nil &&
		f.FormattedAddress == nil && f.Location == nil && f.DistanceKm == nil &&
		f.NationalPhoneNumber == nil && f.WebsiteURI == nil && f.GoogleMapsURI == nil &&
		f.Rating == nil && f.UserRatingCount == nil && f.RegularOpeningHours == nil &&
		f.ImageURL == nil
}

// HasType - есть ли у места тег категории (без учета регистра)
func (f *Facility) HasType(tags ...string) bool {
	for _, t := range f.Types {
		for _, tag := range tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
	}
	return false
}

// Location - координаты места; провайдер может прислать только одну из них
type Location struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Coordinates returns both coordinates when they are present.
func (l *Location) Coordinates() (lat, lon float64, ok bool) {
	if l == nil || l.Latitude == nil || l.Longitude == nil {
		return 0, 0, false
	}
	return *l.Latitude, *l.Longitude, true
}

// Ключи QueryContext
const (
	QueryLatitude  = "latitude"
	QueryLongitude = "longitude"
	QueryDistance  = "distance"
	QueryMinRating = "minRating"
	QueryOpenNow   = "openNow"
	QueryLanguage  = "language"
	QueryLimit     = "limit"
)

// QueryKeys - все распознаваемые параметры запроса
var QueryKeys = []string{
	QueryLatitude,
	QueryLongitude,
	QueryDistance,
	QueryMinRating,
	QueryOpenNow,
	QueryLanguage,
	QueryLimit,
}

// QueryContext - сырые параметры запроса клиента. Значения разбираются лениво
// и каждым потребителем по-своему.
type QueryContext map[string]string

// NewQueryContext keeps only recognized, non-empty keys from params.
func NewQueryContext(params map[string]string) QueryContext {
	qc := make(QueryContext, len(QueryKeys))
	for _, key := range QueryKeys {
		if v, ok := params[key]; ok && v != "" {
			qc[key] = v
		}
	}
	return qc
}

// Has reports whether the key is present.
func (qc QueryContext) Has(key string) bool {
	_, ok := qc[key]
	return ok
}

// Float parses the value of key. present is false when the key is absent;
// err is set when it is present but not a number.
func (qc QueryContext) Float(key string) (value float64, present bool, err error) {
	raw, ok := qc[key]
	if !ok {
		return 0, false, nil
	}
	value, err = strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return value, true, err
}

// Int is the integer counterpart of Float.
func (qc QueryContext) Int(key string) (value int, present bool, err error) {
	raw, ok := qc[key]
	if !ok {
		return 0, false, nil
	}
	value, err = strconv.Atoi(strings.TrimSpace(raw))
	return value, true, err
}

// ReferencePoint returns the caller's coordinates when both parse.
func (qc QueryContext) ReferencePoint() (lat, lon float64, ok bool) {
	lat, latOK, latErr := qc.Float(QueryLatitude)
	lon, lonOK, lonErr := qc.Float(QueryLongitude)
	if !latOK || !lonOK || latErr != nil || lonErr != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// Language - язык/кухня, для которых поиск идет через текстовый запрос
type Language string

const (
	LanguageChinese    Language = "chinese"
	LanguageVietnamese Language = "vietnamese"
	LanguageIndonesian Language = "indonesian"
)

var languageTypes = map[Language][]string{
	LanguageChinese:    {"chinese_restaurant"},
	LanguageVietnamese: {"vietnamese_restaurant", "asian_restaurant"},
	LanguageIndonesian: {"indonesian_restaurant", "asian_restaurant"},
}

// ParseLanguage matches s case-insensitively against the recognized languages.
func ParseLanguage(s string) (Language, bool) {
	for lang := range languageTypes {
		if strings.EqualFold(s, string(lang)) {
			return lang, true
		}
	}
	return "", false
}

// MatchingTypes - теги провайдера, подходящие под язык
func (l Language) MatchingTypes() []string {
	return languageTypes[l]
}

// Title returns the language name with the first letter capitalized.
func (l Language) Title() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}
