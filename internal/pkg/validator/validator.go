package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/facility-finder/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры. Ошибки полей возвращаются как ErrInvalidRequest
// с деталями вида {"fields": {"Latitude": "max"}}.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest.Wrap(err)
	}

	fields := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Tag()
	}

	return errors.ErrInvalidRequest.
		WithDetails(map[string]interface{}{"fields": fields}).
		Wrap(err)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
