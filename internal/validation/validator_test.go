package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/cinescope/cinescope-server/internal/errors"
)

type queryInput struct {
	Query string  `query:"q" validate:"required,min=1,max=10"`
	Kind  string  `query:"type" validate:"omitempty,oneof=movie tv"`
	Page  int     `json:"page" validate:"gte=1,lte=500"`
	Score float64 `json:"score" validate:"gte=0,lte=10"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(queryInput{Query: "alien", Page: 1}))
}

func TestValidate_FieldNamesFromTags(t *testing.T) {
	v := New()

	err := v.Validate(queryInput{Query: "", Kind: "book", Page: 0, Score: 11})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["q"])
	assert.Equal(t, "must be one of: movie tv", details["type"])
	assert.Equal(t, "must be greater than or equal to 1", details["page"])
	assert.Equal(t, "must be less than or equal to 10", details["score"])
}

func TestValidate_StringLength(t *testing.T) {
	v := New()

	err := v.Validate(queryInput{Query: "far too long query", Page: 1})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	details := domainErr.Details.(map[string]string)
	assert.Equal(t, "must not exceed 10 characters", details["q"])
}
