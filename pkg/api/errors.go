package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillforge/skillforge/pkg/services"
)

// abortWithServiceError maps service-layer errors to HTTP error responses.
func abortWithServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrSessionTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": "session is completed and immutable"})
	case errors.Is(err, services.ErrPreconditionFailed):
		c.JSON(http.StatusConflict, gin.H{"error": "operation not allowed in current session state"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrGenerationBusy):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "generation capacity exhausted, retry later"})
	case errors.Is(err, services.ErrGenerationExhausted):
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation produced no usable questions"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
