package handler_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/facility-finder/internal/config"
	httpDelivery "github.com/facility-finder/internal/delivery/http"
	"github.com/facility-finder/internal/delivery/http/handler"
	"github.com/facility-finder/internal/domain"
	"github.com/facility-finder/internal/usecase"
)

type MockPlacesRepository struct {
	mock.Mock
}

func (m *MockPlacesRepository) SearchNearby(ctx context.Context, req domain.NearbySearchRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPlacesRepository) SearchText(ctx context.Context, req domain.TextSearchRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPlacesRepository) GetPlace(ctx context.Context, req domain.DetailLookupRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func setupServer(repo *MockPlacesRepository) *httpDelivery.Server {
	cfg := &config.Config{
		Places: config.PlacesConfig{
			APIKey:       "test_key",
			MediaBaseURL: config.DefaultPlacesBaseURL,
		},
	}
	logger := zap.NewNop()

	uc := usecase.NewFacilityUseCase(repo, &cfg.Places, logger)
	return httpDelivery.NewServer(cfg, logger, handler.NewFacilityHandler(uc, logger))
}

func doGet(t *testing.T, srv *httpDelivery.Server, target string) (int, envelope) {
	t.Helper()

	resp, err := srv.App().Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env
}

const placesBody = `{"places": [
	{"id": "A", "displayName": {"text": "Queen Victoria Market"}, "location": {"latitude": -37.8076, "longitude": 144.9568}, "rating": 4.5},
	{"id": "B", "displayName": {"text": "Hosier Lane"}, "rating": 4.2}
]}`

func TestFacilityHandler_GetNearby(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		repo.On("SearchNearby", mock.Anything, mock.MatchedBy(func(req domain.NearbySearchRequest) bool {
			return req.MaxResultCount == 5 && req.LocationRestriction.Circle.Radius == 5000
		})).Return([]byte(placesBody), nil)

		status, env := doGet(t, srv, "/api/v1/facilities/nearby?latitude=-37.8136&longitude=144.9631&page=2&limit=5")

		assert.Equal(t, 200, status)
		var data struct {
			Facilities []domain.Facility `json:"facilities"`
			Total      int               `json:"total"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, 2, data.Total)
		require.Len(t, data.Facilities, 2)
		require.NotNil(t, data.Facilities[0].DistanceKm)
		assert.Nil(t, data.Facilities[1].DistanceKm)
		assert.EqualValues(t, 2, env.Meta["page"])
		repo.AssertExpectations(t)
	})

	t.Run("default limit reported in meta", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		repo.On("SearchNearby", mock.Anything, mock.MatchedBy(func(req domain.NearbySearchRequest) bool {
			return req.MaxResultCount == usecase.DefaultSearchLimit
		})).Return([]byte(placesBody), nil)

		status, env := doGet(t, srv, "/api/v1/facilities/nearby?latitude=-37.8136&longitude=144.9631")

		assert.Equal(t, 200, status)
		assert.EqualValues(t, usecase.DefaultSearchLimit, env.Meta["limit"])
		repo.AssertExpectations(t)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		status, env := doGet(t, srv, "/api/v1/facilities/nearby?latitude=-37.8136")

		assert.Equal(t, 400, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_COORDINATES", env.Error.Code)
		repo.AssertNotCalled(t, "SearchNearby", mock.Anything, mock.Anything)
	})

	t.Run("limit out of range", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		status, env := doGet(t, srv, "/api/v1/facilities/nearby?latitude=-37.8136&longitude=144.9631&limit=50")

		assert.Equal(t, 400, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	})

	t.Run("provider failure", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		repo.On("SearchNearby", mock.Anything, mock.Anything).Return(nil, stderrors.New("boom"))

		status, env := doGet(t, srv, "/api/v1/facilities/nearby?latitude=-37.8136&longitude=144.9631")

		assert.Equal(t, 502, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FACILITY_QUERY_FAILED", env.Error.Code)
	})
}

func TestFacilityHandler_Search(t *testing.T) {
	t.Run("language search ignores unknown params", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		repo.On("SearchText", mock.Anything, domain.TextSearchRequest{
			TextQuery:      "Chinese near Melbourne",
			MaxResultCount: 3,
		}).Return([]byte(`{"places": [
			{"id": "1", "displayName": {"text": "Dumpling House"}, "types": ["chinese_restaurant"]},
			{"id": "2", "displayName": {"text": "Taco Bar"}, "types": ["mexican_restaurant"]}
		]}`), nil)

		status, env := doGet(t, srv, "/api/v1/facilities/search?language=chinese&limit=3&foo=bar")

		assert.Equal(t, 200, status)
		assert.EqualValues(t, 1, env.Meta["total"])
		repo.AssertExpectations(t)
	})

	t.Run("nearby search with filters", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		repo.On("SearchNearby", mock.Anything, mock.MatchedBy(func(req domain.NearbySearchRequest) bool {
			return req.LocationRestriction.Circle.Radius == 3000
		})).Return([]byte(placesBody), nil)

		status, env := doGet(t, srv, "/api/v1/facilities/search?latitude=-37.8136&longitude=144.9631&distance=3&minRating=4.4")

		assert.Equal(t, 200, status)
		assert.EqualValues(t, 1, env.Meta["total"])
	})

	t.Run("invalid latitude", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		status, env := doGet(t, srv, "/api/v1/facilities/search?latitude=abc&longitude=144.9631")

		assert.Equal(t, 400, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_COORDINATES", env.Error.Code)
		assert.Equal(t, "latitude", env.Error.Details["field"])
	})

	t.Run("invalid distance", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		status, env := doGet(t, srv, "/api/v1/facilities/search?latitude=-37.8&longitude=144.9&distance=0")

		assert.Equal(t, 400, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	})
}

func TestFacilityHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		repo.On("GetPlace", mock.Anything, domain.DetailLookupRequest{PlaceID: "ChIJ123", Fields: "*"}).
			Return([]byte(`{"id": "ChIJ123", "displayName": {"text": "Melbourne Museum"}}`), nil)

		status, env := doGet(t, srv, "/api/v1/facilities/ChIJ123")

		assert.Equal(t, 200, status)
		var facility domain.Facility
		require.NoError(t, json.Unmarshal(env.Data, &facility))
		require.NotNil(t, facility.Name)
		assert.Equal(t, "Melbourne Museum", *facility.Name)
	})

	t.Run("empty facility is not found", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		repo.On("GetPlace", mock.Anything, mock.Anything).Return(nil, nil)

		status, env := doGet(t, srv, "/api/v1/facilities/missing")

		assert.Equal(t, 404, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FACILITY_NOT_FOUND", env.Error.Code)
	})

	t.Run("provider failure", func(t *testing.T) {
		repo := new(MockPlacesRepository)
		srv := setupServer(repo)

		repo.On("GetPlace", mock.Anything, mock.Anything).Return(nil, stderrors.New("status 500"))

		status, env := doGet(t, srv, "/api/v1/facilities/ChIJ123")

		assert.Equal(t, 502, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FACILITY_QUERY_FAILED", env.Error.Code)
	})
}
