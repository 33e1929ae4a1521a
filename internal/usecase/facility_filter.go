package usecase

import (
	"github.com/facility-finder/internal/domain"
)

const operationalStatus = "OPERATIONAL"

// FacilityPredicate - клиентский фильтр; true означает, что место остается в выдаче
type FacilityPredicate func(f *domain.Facility) bool

// BuildFilters собирает предикаты, применимые к параметрам запроса.
// Нераспознанные или неразбираемые значения фильтров игнорируются.
func BuildFilters(qc domain.QueryContext) []FacilityPredicate {
	var filters []FacilityPredicate

	if minRating, present, err := qc.Float(domain.QueryMinRating); present && err == nil && minRating > 0 {
		filters = append(filters, minRatingFilter(minRating))
	}

	if qc[domain.QueryOpenNow] == "true" {
		filters = append(filters, openNowFilter)
	}

	if lang, ok := domain.ParseLanguage(qc[domain.QueryLanguage]); ok {
		filters = append(filters, languageFilter(lang))
	}

	return filters
}

// ApplyFilters оставляет места, прошедшие все фильтры, сохраняя порядок
func ApplyFilters(facilities []domain.Facility, qc domain.QueryContext) []domain.Facility {
	filters := BuildFilters(qc)

	result := make([]domain.Facility, 0, len(facilities))
	for i := range facilities {
		if matchesAll(&facilities[i], filters) {
			result = append(result, facilities[i])
		}
	}
	return result
}

func matchesAll(f *domain.Facility, filters []FacilityPredicate) bool {
	for _, keep := range filters {
		if !keep(f) {
			return false
		}
	}
	return true
}

func minRatingFilter(threshold float64) FacilityPredicate {
	return func(f *domain.Facility) bool {
		return f.Rating != nil && *f.Rating >= threshold
	}
}

func openNowFilter(f *domain.Facility) bool {
	return f.BusinessStatus != nil && *f.BusinessStatus == operationalStatus
}

func languageFilter(lang domain.Language) FacilityPredicate {
	tags := lang.MatchingTypes()
	return func(f *domain.Facility) bool {
		return f.HasType(tags...)
	}
}
