package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"atoll/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("Please fill in all required fields."), code: http.StatusBadRequest, message: "Please fill in all required fields."},
		{name: "bad request from error", err: failure.BadRequest(errors.New("invalid date")), code: http.StatusBadRequest, message: "invalid date"},
		{name: "unauthorized", err: failure.Unauthorized("Invalid Security PIN for Aishath"), code: http.StatusUnauthorized, message: "Invalid Security PIN for Aishath"},
		{name: "not found", err: failure.NotFound("room not found"), code: http.StatusNotFound, message: "room not found"},
		{name: "forbidden", err: failure.Forbidden("invalid api key"), code: http.StatusForbidden, message: "invalid api key"},
		{name: "too many requests", err: failure.TooManyRequests("slow down"), code: http.StatusTooManyRequests, message: "slow down"},
		{name: "service unavailable", err: failure.ServiceUnavailable("storage not configured"), code: http.StatusServiceUnavailable, message: "storage not configured"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError, message: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
	assert.NoError(t, failure.WithDetail(nil, "ignored"))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to create booking: %w", failure.Unauthorized("nope"))

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}

func TestWithDetail(t *testing.T) {
	draft := map[string]string{"guest_name": "A Silva"}

	err := failure.WithDetail(failure.Unauthorized("Invalid Security PIN for Hassan"), draft)

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	assert.Equal(t, "Invalid Security PIN for Hassan", err.Error())
	assert.Equal(t, draft, failure.GetDetail(err))

	plain := failure.WithDetail(errors.New("disk on fire"), draft)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(plain))
	assert.Equal(t, draft, failure.GetDetail(plain))

	assert.Nil(t, failure.GetDetail(failure.NotFound("x")))
}
