package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/mediatrackapp/mediatrack-server/internal/errors"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=10"`
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Kind  string `json:"kind" validate:"omitempty,oneof=wishlist owned"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{Name: "movies", Color: "#ef4444", Kind: "owned"})
	assert.NoError(t, err)
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{Color: "red", Kind: "borrowed"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok, "details should be a field error map")

	// JSON tag names, not struct field names.
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "color")
	assert.Contains(t, details, "kind")
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "must be one of: wishlist owned", details["kind"])
}

func TestValidate_OmitemptySkipsZeroValues(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{Name: "ok"})
	assert.NoError(t, err)
}
