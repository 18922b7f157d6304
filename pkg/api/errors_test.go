package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/skillforge/skillforge/pkg/services"
)

func TestAbortWithServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation error", services.NewValidationError("user_id", "is required"), http.StatusBadRequest},
		{"wrapped validation error", fmt.Errorf("create survey: %w", services.NewValidationError("years", "must be >= 0")), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load session: %w", services.ErrNotFound), http.StatusNotFound},
		{"terminal session", services.ErrSessionTerminal, http.StatusConflict},
		{"precondition failed", services.ErrPreconditionFailed, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"generation busy", services.ErrGenerationBusy, http.StatusTooManyRequests},
		{"generation exhausted", services.ErrGenerationExhausted, http.StatusBadGateway},
		{"unexpected error", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			abortWithServiceError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}

	t.Run("internal errors never leak details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		abortWithServiceError(c, errors.New("password=hunter2 rejected"))

		assert.NotContains(t, rec.Body.String(), "hunter2")
	})
}
