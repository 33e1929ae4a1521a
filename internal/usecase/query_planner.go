package usecase

import (
	"fmt"
	"math"

	"github.com/facility-finder/internal/domain"
	"github.com/facility-finder/internal/pkg/errors"
	"github.com/facility-finder/internal/pkg/utils"
)

const (
	// NearbyRadiusMeters - фиксированный радиус для GetNearbyFacilities
	NearbyRadiusMeters = 5000.0

	DefaultSearchLimit      = 20
	DefaultSearchDistanceKm = 5.0

	detailAllFields = "*"
	textSearchArea  = "Melbourne"
)

// QueryPlanner выбирает эндпоинт провайдера и строит тело запроса
type QueryPlanner struct {
	locationAwareTextSearch bool
}

// NewQueryPlanner создает QueryPlanner. locationAwareTextSearch добавляет окружность
// клиента к текстовому поиску по языку, если переданы обе координаты.
func NewQueryPlanner(locationAwareTextSearch bool) *QueryPlanner {
	return &QueryPlanner{locationAwareTextSearch: locationAwareTextSearch}
}

// PlanNearby строит поиск в окружности фиксированного радиуса
func (p *QueryPlanner) PlanNearby(lat, lon float64, limit int) domain.NearbySearchRequest {
	return domain.NearbySearchRequest{
		LocationRestriction: domain.NewCircleRestriction(lat, lon, NearbyRadiusMeters),
		MaxResultCount:      limit,
	}
}

// PlanDetail строит запрос деталей места со всеми полями
func (p *QueryPlanner) PlanDetail(id string) domain.DetailLookupRequest {
	return domain.DetailLookupRequest{
		PlaceID: id,
		Fields:  detailAllFields,
	}
}

// PlanSearch returns either a domain.TextSearchRequest (recognized language) or a
// domain.NearbySearchRequest built from the caller's coordinates and distance.
func (p *QueryPlanner) PlanSearch(qc domain.QueryContext) (domain.PlacesRequest, error) {
	limit := parseLimit(qc)

	if lang, ok := domain.ParseLanguage(qc[domain.QueryLanguage]); ok {
		return p.planTextSearch(lang, limit, qc)
	}

	restriction, err := parseRestriction(qc)
	if err != nil {
		return nil, err
	}

	return domain.NearbySearchRequest{
		LocationRestriction: restriction,
		MaxResultCount:      limit,
	}, nil
}

// TextQuery - фиксированный текстовый запрос для языка
func TextQuery(lang domain.Language) string {
	return fmt.Sprintf("%s near %s", lang.Title(), textSearchArea)
}

func (p *QueryPlanner) planTextSearch(lang domain.Language, limit int, qc domain.QueryContext) (domain.PlacesRequest, error) {
	req := domain.TextSearchRequest{
		TextQuery:      TextQuery(lang),
		MaxResultCount: limit,
	}

	if p.locationAwareTextSearch && qc.Has(domain.QueryLatitude) && qc.Has(domain.QueryLongitude) {
		restriction, err := parseRestriction(qc)
		if err != nil {
			return nil, err
		}
		req.LocationRestriction = &restriction
	}

	return req, nil
}

// parseLimit never fails: missing, unparsable or non-positive values fall back to the default.
func parseLimit(qc domain.QueryContext) int {
	limit, present, err := qc.Int(domain.QueryLimit)
	if !present || err != nil || limit <= 0 {
		return DefaultSearchLimit
	}
	return limit
}

func parseRestriction(qc domain.QueryContext) (domain.LocationRestriction, error) {
	lat, err := requireFloat(qc, domain.QueryLatitude)
	if err != nil {
		return domain.LocationRestriction{}, err
	}
	lon, err := requireFloat(qc, domain.QueryLongitude)
	if err != nil {
		return domain.LocationRestriction{}, err
	}
	if !utils.ValidateCoordinates(lat, lon) {
		return domain.LocationRestriction{}, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			domain.QueryLatitude:  qc[domain.QueryLatitude],
			domain.QueryLongitude: qc[domain.QueryLongitude],
		})
	}

	distanceKm := DefaultSearchDistanceKm
	if d, present, err := qc.Float(domain.QueryDistance); present {
		if err != nil || !(d > 0) || math.IsInf(d, 1) {
			return domain.LocationRestriction{}, errors.ErrInvalidRequest.
				WithDetails(map[string]interface{}{"field": domain.QueryDistance}).
				Wrap(fmt.Errorf("invalid distance %q", qc[domain.QueryDistance]))
		}
		distanceKm = d
	}

	return domain.NewCircleRestriction(lat, lon, distanceKm*1000), nil
}

func requireFloat(qc domain.QueryContext, key string) (float64, error) {
	v, present, err := qc.Float(key)
	if !present {
		return 0, errors.ErrInvalidCoordinates.
			WithDetails(map[string]interface{}{"field": key}).
			Wrap(fmt.Errorf("%s is required", key))
	}
	if err != nil {
		return 0, errors.ErrInvalidCoordinates.
			WithDetails(map[string]interface{}{"field": key}).
			Wrap(err)
	}
	return v, nil
}
