package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidation("x").Kind.Status())
	assert.Equal(t, http.StatusConflict, NewConflict("x").Kind.Status())
	assert.Equal(t, http.StatusUnauthorized, NewAuth("x").Kind.Status())
	assert.Equal(t, http.StatusNotFound, NewNotFound("x").Kind.Status())
	assert.Equal(t, http.StatusInternalServerError, NewServer("x", nil).Kind.Status())
}

func TestAsClassifiesWrappedErrors(t *testing.T) {
	err := fmt.Errorf("signup: %w", NewConflict("Email already exists"))
	got := As(err)
	assert.Equal(t, Conflict, got.Kind)
	assert.Equal(t, "Email already exists", got.Message)
}

func TestAsTreatsUnknownErrorsAsServer(t *testing.T) {
	cause := errors.New("connection refused")
	got := As(cause)
	assert.Equal(t, Server, got.Kind)
	assert.Equal(t, "Server error", got.Message)
	assert.ErrorIs(t, got, cause)
}
