package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", Clone(ErrUpstream, "Failed to load departments."))

	appErr := FromError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, "UPSTREAM_ERROR", appErr.Code)
	assert.Equal(t, "Failed to load departments.", appErr.Message)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	appErr := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Nil(t, FromError(nil))
}

func TestClonedErrorsMatchSentinel(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Rewrap(ErrUpstream, cause, "Failed to save teacher.")

	assert.True(t, errors.Is(err, ErrUpstream))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to save teacher.: dial tcp: refused", err.Error())
}
