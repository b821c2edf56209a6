package validator

import (
	"testing"

	domainerrors "localguide/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewPayload struct {
	EntityType string `json:"entityType" validate:"required,oneof=spot landmark"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&reviewPayload{EntityType: "spot", Rating: 5}))
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&reviewPayload{EntityType: "museum", Rating: 9})
	require.Error(t, err)

	var baseErr *domainerrors.BaseError
	require.ErrorAs(t, err, &baseErr)
	assert.Equal(t, 400, baseErr.HTTPCode())
	assert.Equal(t, "Invalid input", baseErr.Message())
	assert.Equal(t, "entityType:oneof, rating:max", baseErr.Details())
}
