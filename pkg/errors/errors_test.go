package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = NewValidation("SAMPLE_FAILED", "sample failed")

func TestIs(t *testing.T) {
	assert.ErrorIs(t, errSample, errSample)

	wrapped := fmt.Errorf("use case: %w", errSample)
	assert.ErrorIs(t, wrapped, errSample)

	withCause := errSample.WithCause(stderrors.New("driver said no"))
	assert.ErrorIs(t, withCause, errSample)

	other := NewValidation("OTHER_FAILED", "other failed")
	assert.NotErrorIs(t, other, errSample)
}

func TestWithCauseDoesNotMutateSingleton(t *testing.T) {
	cause := stderrors.New("driver said no")
	annotated := errSample.WithCause(cause)

	assert.Nil(t, errSample.Cause)
	assert.Equal(t, cause, stderrors.Unwrap(annotated))
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{NewValidation("V", "v"), http.StatusBadRequest},
		{NewNotFound("N", "n"), http.StatusNotFound},
		{NewAuthorization("Z", "z"), http.StatusForbidden},
		{NewAuthentication("A", "a"), http.StatusUnauthorized},
		{NewConflict("C", "c"), http.StatusConflict},
		{NewInternal("load thing", stderrors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.StatusCode())
		assert.Equal(t, tt.status, StatusOf(tt.err))
	}

	assert.Equal(t, http.StatusInternalServerError, StatusOf(stderrors.New("plain")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrorCode("SAMPLE_FAILED"), GetCode(errSample))
	assert.Equal(t, ErrorCode("SAMPLE_FAILED"), GetCode(fmt.Errorf("wrapped: %w", errSample)))
	assert.Equal(t, ErrorCode("INTERNAL_ERROR"), GetCode(stderrors.New("plain")))
}
