package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassificationWithErrorsIs(t *testing.T) {
	assert.ErrorIs(t, NewNotFound("profile", "a@x.com"), ErrNotFound)
	assert.ErrorIs(t, NewMissingParameter("skill"), ErrMissingParameter)
	assert.ErrorIs(t, NewConflict("profile", "email", "a@x.com"), ErrConflict)
	assert.ErrorIs(t, NewInternal("query failed", errors.New("boom")), ErrInternal)
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("get profile failed: %w", NewNotFound("profile", "a@x.com"))
	assert.ErrorIs(t, err, ErrNotFound)

	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "profile not found", appErr.Message)
}

func TestToHTTPStatus_FlattensEverythingTo400(t *testing.T) {
	for _, err := range []error{
		NewNotFound("profile", "a@x.com"),
		NewMissingParameter("q"),
		NewConflict("profile", "email", "a@x.com"),
		NewInternal("query failed", errors.New("boom")),
		errors.New("plain"),
	} {
		assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(err))
	}
}

func TestMissingParameterMessageFormat(t *testing.T) {
	assert.Equal(t, "Missing skill parameter", NewMissingParameter("skill").Message)
	assert.Equal(t, "Missing q parameter", NewMissingParameter("q").Message)
}

func TestWireMessage(t *testing.T) {
	assert.Equal(t, "profile not found", WireMessage(NewNotFound("profile", "a@x.com")))
	assert.Equal(t, "profile not found", WireMessage(fmt.Errorf("wrapped: %w", NewNotFound("profile", "a@x.com"))))
	assert.Equal(t, "plain", WireMessage(errors.New("plain")))
}
