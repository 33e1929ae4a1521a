package dto

// NearbyFacilitiesRequest - запрос на поиск мест в радиусе 5 км от точки
type NearbyFacilitiesRequest struct {
	Latitude  float64 `query:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `query:"longitude" validate:"min=-180,max=180"`
	Page      int     `query:"page" validate:"omitempty,min=0"`
	Limit     int     `query:"limit" validate:"omitempty,min=1,max=20"`
}

// FacilityDetailRequest - запрос деталей места
type FacilityDetailRequest struct {
	ID string `params:"id" validate:"required,max=512"`
}
