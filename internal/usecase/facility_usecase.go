package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/facility-finder/internal/config"
	"github.com/facility-finder/internal/domain"
	"github.com/facility-finder/internal/domain/repository"
	"github.com/facility-finder/internal/pkg/errors"
	"github.com/facility-finder/internal/pkg/metrics"
	"github.com/facility-finder/internal/pkg/utils"
)

// FacilityUseCase - поиск мест через провайдера: планирование запроса,
// нормализация ответа и клиентская фильтрация
type FacilityUseCase struct {
	placesRepo repository.PlacesRepository
	planner    *QueryPlanner
	mapper     *FacilityMapper
	extractor  *FacilityExtractor
	logger     *zap.Logger
}

// NewFacilityUseCase - создание нового FacilityUseCase
func NewFacilityUseCase(
	placesRepo repository.PlacesRepository,
	cfg *config.PlacesConfig,
	logger *zap.Logger,
) *FacilityUseCase {
	mapper := NewFacilityMapper(cfg.APIKey, cfg.MediaBaseURL)

	return &FacilityUseCase{
		placesRepo: placesRepo,
		planner:    NewQueryPlanner(cfg.LocationAwareTextSearch),
		mapper:     mapper,
		extractor:  NewFacilityExtractor(mapper),
		logger:     logger,
	}
}

// GetNearbyFacilities - места в радиусе 5 км от точки.
// page принимается, но не используется: провайдер отдает одну страницу.
func (uc *FacilityUseCase) GetNearbyFacilities(
	ctx context.Context,
	lat, lon float64,
	page, limit int,
) ([]domain.Facility, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	uc.logger.Debug("Nearby facilities requested",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Int("page", page),
		zap.Int("limit", limit))

	payload, err := uc.placesRepo.SearchNearby(ctx, uc.planner.PlanNearby(lat, lon, limit))
	if err != nil {
		uc.logger.Error("Failed to query nearby facilities", zap.Error(err))
		return nil, errors.ErrFacilityQueryFailed.Wrap(err)
	}

	qc := domain.QueryContext{
		domain.QueryLatitude:  strconv.FormatFloat(lat, 'f', -1, 64),
		domain.QueryLongitude: strconv.FormatFloat(lon, 'f', -1, 64),
	}

	facilities := uc.extractor.Extract(payload, qc)
	metrics.FacilitiesReturned.WithLabelValues("nearby").Observe(float64(len(facilities)))

	return facilities, nil
}

// GetFacilityDetail - детали одного места без фильтрации и расстояния.
// Если провайдер ничего не вернул, результат - пустой Facility.
func (uc *FacilityUseCase) GetFacilityDetail(ctx context.Context, id string) (*domain.Facility, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"field": "id"})
	}

	payload, err := uc.placesRepo.GetPlace(ctx, uc.planner.PlanDetail(id))
	if err != nil {
		uc.logger.Error("Failed to query facility detail",
			zap.String("id", id),
			zap.Error(err))
		return nil, errors.ErrFacilityQueryFailed.Wrap(err)
	}

	facility := uc.mapper.MapJSON(payload)
	return &facility, nil
}

// SearchFacilities - параметризованный поиск: текстовый для распознанного языка,
// иначе поиск в окружности вокруг latitude/longitude радиусом distance (км)
func (uc *FacilityUseCase) SearchFacilities(ctx context.Context, qc domain.QueryContext) ([]domain.Facility, error) {
	plan, err := uc.planner.PlanSearch(qc)
	if err != nil {
		uc.logger.Debug("Rejected search parameters", zap.Error(err))
		return nil, err
	}

	var payload []byte
	switch req := plan.(type) {
	case domain.TextSearchRequest:
		uc.logger.Debug("Dispatching text search",
			zap.String("text_query", req.TextQuery),
			zap.Int("limit", req.MaxResultCount),
			zap.Bool("location_restricted", req.LocationRestriction != nil))
		payload, err = uc.placesRepo.SearchText(ctx, req)
	case domain.NearbySearchRequest:
		uc.logger.Debug("Dispatching nearby search",
			zap.Float64("radius_m", req.LocationRestriction.Circle.Radius),
			zap.Int("limit", req.MaxResultCount))
		payload, err = uc.placesRepo.SearchNearby(ctx, req)
	default:
		err = fmt.Errorf("unsupported places request %T", plan)
	}
	if err != nil {
		uc.logger.Error("Failed to search facilities",
			zap.String("endpoint", plan.Endpoint().String()),
			zap.Error(err))
		return nil, errors.ErrFacilitySearchFailed.Wrap(err)
	}

	facilities := uc.extractor.Extract(payload, qc)
	metrics.FacilitiesReturned.WithLabelValues("search").Observe(float64(len(facilities)))

	return facilities, nil
}
