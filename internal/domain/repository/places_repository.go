package repository

import (
	"context"

	"github.com/facility-finder/internal/domain"
)

// PlacesRepository определяет методы для работы с API провайдера мест.
// Ответы возвращаются как сырой JSON: нормализация выполняется в usecase.
type PlacesRepository interface {
	// SearchNearby выполняет POST places:searchNearby
	SearchNearby(ctx context.Context, req domain.NearbySearchRequest) ([]byte, error)

	// SearchText выполняет POST places:searchText
	SearchText(ctx context.Context, req domain.TextSearchRequest) ([]byte, error)

	// GetPlace выполняет GET places/{id}; nil без ошибки, если провайдер вернул пустое тело
	GetPlace(ctx context.Context, req domain.DetailLookupRequest) ([]byte, error)
}
