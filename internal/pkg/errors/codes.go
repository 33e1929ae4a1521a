package errors

import "net/http"

var (
	ErrFacilityQueryFailed = New(
		"FACILITY_QUERY_FAILED",
		"facility query failed",
		http.StatusBadGateway,
	)

	ErrFacilitySearchFailed = New(
		"FACILITY_SEARCH_FAILED",
		"facility search failed",
		http.StatusBadGateway,
	)

	ErrFacilityNotFound = New(
		"FACILITY_NOT_FOUND",
		"Facility not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
