package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", Validation("items is required"), http.StatusBadRequest, "items is required"},
		{"auth", Auth("invalid credentials"), http.StatusUnauthorized, "invalid credentials"},
		{"forbidden", Forbidden("access denied"), http.StatusForbidden, "access denied"},
		{"not found", NotFound("order not found"), http.StatusNotFound, "order not found"},
		{"conflict", Conflict("already reviewed"), http.StatusConflict, "already reviewed"},
		{"internal messages are masked", Internal("dsn leak"), http.StatusInternalServerError, "internal server error"},
		{"unclassified errors are masked", fmt.Errorf("dial tcp: refused"), http.StatusInternalServerError, "internal server error"},
		{"wrapped domain error keeps its kind", fmt.Errorf("create review: %w", Conflict("already reviewed")), http.StatusConflict, "create review: already reviewed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("x")))
	assert.Equal(t, KindInternal, KindOf(fmt.Errorf("plain")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrap: %w", NotFound("x"))))
}
