package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/facility-finder/internal/domain"
	"github.com/facility-finder/internal/pkg/errors"
	"github.com/facility-finder/internal/pkg/utils"
	"github.com/facility-finder/internal/pkg/validator"
	"github.com/facility-finder/internal/usecase"
	"github.com/facility-finder/internal/usecase/dto"
)

// FacilityHandler - обработчик запросов поиска мест
type FacilityHandler struct {
	facilityUC *usecase.FacilityUseCase
	logger     *zap.Logger
}

// NewFacilityHandler - создание нового FacilityHandler
func NewFacilityHandler(facilityUC *usecase.FacilityUseCase, logger *zap.Logger) *FacilityHandler {
	return &FacilityHandler{
		facilityUC: facilityUC,
		logger:     logger,
	}
}

// GetNearby godoc
// @Summary Места рядом с точкой
// @Description Возвращает места в радиусе 5 км от точки. Параметр page принимается, но не влияет на результат.
// @Tags Facilities
// @Produce json
// @Param latitude query number true "Широта (-90..90)"
// @Param longitude query number true "Долгота (-180..180)"
// @Param page query int false "Номер страницы (игнорируется)" default(0)
// @Param limit query int false "Максимальное количество результатов (1..20)" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.FacilityListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/facilities/nearby [get]
func (h *FacilityHandler) GetNearby(c *fiber.Ctx) error {
	if c.Query(domain.QueryLatitude) == "" || c.Query(domain.QueryLongitude) == "" {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"required": []string{domain.QueryLatitude, domain.QueryLongitude},
		}))
	}

	var req dto.NearbyFacilitiesRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	facilities, err := h.facilityUC.GetNearbyFacilities(c.UserContext(), req.Latitude, req.Longitude, req.Page, req.Limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = usecase.DefaultSearchLimit
	}

	result := dto.NewFacilityListResponse(facilities)
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Page:  req.Page,
		Limit: limit,
	})
}

// Search godoc
// @Summary Параметризованный поиск мест
// @Description Для распознанного языка (chinese, vietnamese, indonesian) выполняется текстовый поиск, иначе поиск в радиусе distance км вокруг точки. Результаты фильтруются по minRating, openNow и language.
// @Tags Facilities
// @Produce json
// @Param latitude query number false "Широта; обязательна без language"
// @Param longitude query number false "Долгота; обязательна без language"
// @Param distance query number false "Радиус поиска, км" default(5)
// @Param minRating query number false "Минимальный рейтинг"
// @Param openNow query string false "true - только работающие места"
// @Param language query string false "chinese, vietnamese или indonesian"
// @Param limit query int false "Максимальное количество результатов" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.FacilityListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/facilities/search [get]
func (h *FacilityHandler) Search(c *fiber.Ctx) error {
	qc := domain.NewQueryContext(c.Queries())

	facilities, err := h.facilityUC.SearchFacilities(c.UserContext(), qc)
	if err != nil {
		return utils.SendError(c, err)
	}

	result := dto.NewFacilityListResponse(facilities)
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetByID godoc
// @Summary Детали места
// @Description Возвращает все известные провайдеру поля места
// @Tags Facilities
// @Produce json
// @Param id path string true "ID места провайдера"
// @Success 200 {object} utils.SuccessResponse{data=domain.Facility}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/facilities/{id} [get]
func (h *FacilityHandler) GetByID(c *fiber.Ctx) error {
	var req dto.FacilityDetailRequest
	if err := c.ParamsParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	facility, err := h.facilityUC.GetFacilityDetail(c.UserContext(), req.ID)
	if err != nil {
		return utils.SendError(c, err)
	}

	if facility.IsEmpty() {
		return utils.SendError(c, errors.ErrFacilityNotFound.WithDetails(map[string]interface{}{
			"id": req.ID,
		}))
	}

	return utils.SendSuccess(c, facility, nil)
}
