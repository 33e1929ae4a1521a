package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Wrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")

	err := ErrFacilityQueryFailed.Wrap(cause)

	assert.True(t, stderrors.Is(err, ErrFacilityQueryFailed))
	assert.False(t, stderrors.Is(err, ErrFacilitySearchFailed))
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "facility query failed")
	assert.Contains(t, err.Error(), "connection refused")

	// predefined error stays untouched
	assert.Nil(t, ErrFacilityQueryFailed.Unwrap())
}

func TestAppError_WrapKeepsParseError(t *testing.T) {
	_, parseErr := strconv.ParseFloat("north", 64)

	var wrapped error = ErrInvalidCoordinates.Wrap(parseErr)

	var numErr *strconv.NumError
	assert.True(t, stderrors.As(wrapped, &numErr))

	var appErr *AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestAppError_WithDetails(t *testing.T) {
	err := ErrInvalidRequest.WithDetails(map[string]interface{}{"field": "limit"})

	assert.Equal(t, "limit", err.Details["field"])
	assert.Empty(t, ErrInvalidRequest.Details)
}
