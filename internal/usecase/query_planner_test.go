package usecase_test

import (
	"encoding/json"
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facility-finder/internal/domain"
	"github.com/facility-finder/internal/pkg/errors"
	"github.com/facility-finder/internal/usecase"
)

func TestQueryPlanner_PlanNearby(t *testing.T) {
	planner := usecase.NewQueryPlanner(false)

	req := planner.PlanNearby(-37.8136, 144.9631, 10)

	assert.Equal(t, domain.EndpointNearbySearch, req.Endpoint())
	assert.Equal(t, 5000.0, req.LocationRestriction.Circle.Radius)
	assert.Equal(t, 10, req.MaxResultCount)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"locationRestriction": {
			"circle": {"center": {"latitude": -37.8136, "longitude": 144.9631}, "radius": 5000}
		},
		"maxResultCount": 10
	}`, string(body))
}

func TestQueryPlanner_PlanDetail(t *testing.T) {
	req := usecase.NewQueryPlanner(false).PlanDetail("ChIJ123")

	assert.Equal(t, domain.EndpointDetailLookup, req.Endpoint())
	assert.Equal(t, "ChIJ123", req.PlaceID)
	assert.Equal(t, "*", req.Fields)
}

func TestQueryPlanner_PlanSearch_Language(t *testing.T) {
	planner := usecase.NewQueryPlanner(false)

	tests := []struct {
		name          string
		params        domain.QueryContext
		expectedQuery string
		expectedLimit int
	}{
		{
			name:          "vietnamese",
			params:        domain.QueryContext{domain.QueryLanguage: "vietnamese"},
			expectedQuery: "Vietnamese near Melbourne",
			expectedLimit: 20,
		},
		{
			name:          "mixed case chinese with limit",
			params:        domain.QueryContext{domain.QueryLanguage: "ChInEsE", domain.QueryLimit: "7"},
			expectedQuery: "Chinese near Melbourne",
			expectedLimit: 7,
		},
		{
			name: "indonesian ignores coordinates",
			params: domain.QueryContext{
				domain.QueryLanguage:  "indonesian",
				domain.QueryLatitude:  "-37.8136",
				domain.QueryLongitude: "144.9631",
			},
			expectedQuery: "Indonesian near Melbourne",
			expectedLimit: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planner.PlanSearch(tt.params)
			require.NoError(t, err)

			req, ok := plan.(domain.TextSearchRequest)
			require.True(t, ok, "expected text search, got %T", plan)
			assert.Equal(t, tt.expectedQuery, req.TextQuery)
			assert.Equal(t, tt.expectedLimit, req.MaxResultCount)
			assert.Nil(t, req.LocationRestriction)
		})
	}
}

func TestQueryPlanner_PlanSearch_LocationAwareText(t *testing.T) {
	planner := usecase.NewQueryPlanner(true)

	t.Run("restriction added when both coordinates present", func(t *testing.T) {
		plan, err := planner.PlanSearch(domain.QueryContext{
			domain.QueryLanguage:  "chinese",
			domain.QueryLatitude:  "-37.8136",
			domain.QueryLongitude: "144.9631",
			domain.QueryDistance:  "2",
		})
		require.NoError(t, err)

		req := plan.(domain.TextSearchRequest)
		assert.Equal(t, "Chinese near Melbourne", req.TextQuery)
		require.NotNil(t, req.LocationRestriction)
		assert.Equal(t, 2000.0, req.LocationRestriction.Circle.Radius)
		assert.Equal(t, -37.8136, req.LocationRestriction.Circle.Center.Latitude)
	})

	t.Run("no restriction without coordinates", func(t *testing.T) {
		plan, err := planner.PlanSearch(domain.QueryContext{domain.QueryLanguage: "chinese"})
		require.NoError(t, err)

		assert.Nil(t, plan.(domain.TextSearchRequest).LocationRestriction)
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		_, err := planner.PlanSearch(domain.QueryContext{
			domain.QueryLanguage:  "chinese",
			domain.QueryLatitude:  "-137",
			domain.QueryLongitude: "144.9631",
		})
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})
}

func TestQueryPlanner_PlanSearch_Nearby(t *testing.T) {
	planner := usecase.NewQueryPlanner(false)

	tests := []struct {
		name           string
		params         domain.QueryContext
		expectedRadius float64
		expectedLimit  int
	}{
		{
			name:           "default distance and limit",
			params:         domain.QueryContext{domain.QueryLatitude: "-37.8136", domain.QueryLongitude: "144.9631"},
			expectedRadius: 5000,
			expectedLimit:  20,
		},
		{
			name: "distance in km converted to meters",
			params: domain.QueryContext{
				domain.QueryLatitude:  "-37.8136",
				domain.QueryLongitude: "144.9631",
				domain.QueryDistance:  "2.5",
				domain.QueryLimit:     "15",
			},
			expectedRadius: 2500,
			expectedLimit:  15,
		},
		{
			name: "unknown language falls through to nearby",
			params: domain.QueryContext{
				domain.QueryLatitude:  "-37.8136",
				domain.QueryLongitude: "144.9631",
				domain.QueryLanguage:  "french",
			},
			expectedRadius: 5000,
			expectedLimit:  20,
		},
		{
			name: "unparsable limit falls back",
			params: domain.QueryContext{
				domain.QueryLatitude:  "-37.8136",
				domain.QueryLongitude: "144.9631",
				domain.QueryLimit:     "lots",
			},
			expectedRadius: 5000,
			expectedLimit:  20,
		},
		{
			name: "non-positive limit falls back",
			params: domain.QueryContext{
				domain.QueryLatitude:  "-37.8136",
				domain.QueryLongitude: "144.9631",
				domain.QueryLimit:     "0",
			},
			expectedRadius: 5000,
			expectedLimit:  20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planner.PlanSearch(tt.params)
			require.NoError(t, err)

			req, ok := plan.(domain.NearbySearchRequest)
			require.True(t, ok, "expected nearby search, got %T", plan)
			assert.Equal(t, tt.expectedRadius, req.LocationRestriction.Circle.Radius)
			assert.Equal(t, tt.expectedLimit, req.MaxResultCount)
			assert.Equal(t, -37.8136, req.LocationRestriction.Circle.Center.Latitude)
			assert.Equal(t, 144.9631, req.LocationRestriction.Circle.Center.Longitude)
		})
	}
}

func TestQueryPlanner_PlanSearch_Errors(t *testing.T) {
	planner := usecase.NewQueryPlanner(false)

	tests := []struct {
		name     string
		params   domain.QueryContext
		expected *errors.AppError
	}{
		{
			name:     "missing latitude",
			params:   domain.QueryContext{domain.QueryLongitude: "144.9631"},
			expected: errors.ErrInvalidCoordinates,
		},
		{
			name:     "missing longitude",
			params:   domain.QueryContext{domain.QueryLatitude: "-37.8136"},
			expected: errors.ErrInvalidCoordinates,
		},
		{
			name:     "latitude out of range",
			params:   domain.QueryContext{domain.QueryLatitude: "95", domain.QueryLongitude: "144.9631"},
			expected: errors.ErrInvalidCoordinates,
		},
		{
			name:     "longitude out of range",
			params:   domain.QueryContext{domain.QueryLatitude: "-37.8136", domain.QueryLongitude: "181"},
			expected: errors.ErrInvalidCoordinates,
		},
		{
			name: "unparsable distance",
			params: domain.QueryContext{
				domain.QueryLatitude:  "-37.8136",
				domain.QueryLongitude: "144.9631",
				domain.QueryDistance:  "far",
			},
			expected: errors.ErrInvalidRequest,
		},
		{
			name: "negative distance",
			params: domain.QueryContext{
				domain.QueryLatitude:  "-37.8136",
				domain.QueryLongitude: "144.9631",
				domain.QueryDistance:  "-1",
			},
			expected: errors.ErrInvalidRequest,
		},
		{
			name: "NaN distance",
			params: domain.QueryContext{
				domain.QueryLatitude:  "-37.8136",
				domain.QueryLongitude: "144.9631",
				domain.QueryDistance:  "NaN",
			},
			expected: errors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planner.PlanSearch(tt.params)

			assert.Nil(t, plan)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestQueryPlanner_PlanSearch_UnparsableLatitudeKeepsCause(t *testing.T) {
	_, err := usecase.NewQueryPlanner(false).PlanSearch(domain.QueryContext{
		domain.QueryLatitude:  "abc",
		domain.QueryLongitude: "144.9631",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)

	var numErr *strconv.NumError
	assert.True(t, stderrors.As(err, &numErr))

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "latitude", appErr.Details["field"])
}

func TestTextQuery(t *testing.T) {
	assert.Equal(t, "Vietnamese near Melbourne", usecase.TextQuery(domain.LanguageVietnamese))
	assert.Equal(t, "Indonesian near Melbourne", usecase.TextQuery(domain.LanguageIndonesian))
}
