package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Unknown request type", UnknownIntent().Error())
	assert.Equal(t, "Patient ID is required", MissingField("Patient ID").Error())
	assert.Equal(t, "Patient not found", NotFound("Patient").Error())
	assert.Equal(t, "Patient already exists", AlreadyExists("Patient").Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("Patient").HTTPStatus())
	assert.Equal(t, http.StatusConflict, AlreadyExists("Patient").HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, UnknownIntent().HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, InvalidEnum("bad severity").HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, Unavailable("no helicopter").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Internal(fmt.Errorf("boom")).HTTPStatus())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrNotFound, CodeOf(NotFound("Patient")))
	assert.Equal(t, ErrNotFound, CodeOf(fmt.Errorf("wrapped: %w", NotFound("Patient"))))
	assert.Equal(t, ErrInternal, CodeOf(fmt.Errorf("plain")))
}

func TestAsAppError(t *testing.T) {
	appErr := AsAppError(fmt.Errorf("plain"))
	assert.Equal(t, ErrInternal, appErr.Code)
	assert.ErrorContains(t, appErr, "plain")

	orig := NotFound("Patient")
	assert.Same(t, orig, AsAppError(orig))
}
