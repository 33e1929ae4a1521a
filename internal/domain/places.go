package domain

// PlacesEndpoint - вариант эндпоинта провайдера
type PlacesEndpoint int

const (
	EndpointNearbySearch PlacesEndpoint = iota + 1
	EndpointTextSearch
	EndpointDetailLookup
)

func (e PlacesEndpoint) String() string {
	switch e {
	case EndpointNearbySearch:
		return "nearby_search"
	case EndpointTextSearch:
		return "text_search"
	case EndpointDetailLookup:
		return "detail_lookup"
	default:
		return "unknown"
	}
}

// PlacesRequest - запрос к провайдеру, помеченный эндпоинтом
type PlacesRequest interface {
	Endpoint() PlacesEndpoint
}

// LatLng - центр окружности в теле запроса
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Circle struct {
	Center LatLng  `json:"center"`
	Radius float64 `json:"radius"` // meters
}

type LocationRestriction struct {
	Circle Circle `json:"circle"`
}

// NewCircleRestriction builds a circular restriction around (lat, lon).
func NewCircleRestriction(lat, lon, radiusMeters float64) LocationRestriction {
	return LocationRestriction{
		Circle: Circle{
			Center: LatLng{Latitude: lat, Longitude: lon},
			Radius: radiusMeters,
		},
	}
}

// NearbySearchRequest - тело POST places:searchNearby
type NearbySearchRequest struct {
	LocationRestriction LocationRestriction `json:"locationRestriction"`
	MaxResultCount      int                 `json:"maxResultCount"`
}

func (NearbySearchRequest) Endpoint() PlacesEndpoint { return EndpointNearbySearch }

// TextSearchRequest - тело POST places:searchText
type TextSearchRequest struct {
	TextQuery           string               `json:"textQuery"`
	MaxResultCount      int                  `json:"maxResultCount"`
	LocationRestriction *LocationRestriction `json:"locationRestriction,omitempty"`
}

func (TextSearchRequest) Endpoint() PlacesEndpoint { return EndpointTextSearch }

// DetailLookupRequest - GET places/{id}
type DetailLookupRequest struct {
	PlaceID string
	Fields  string
}

func (DetailLookupRequest) Endpoint() PlacesEndpoint { return EndpointDetailLookup }
