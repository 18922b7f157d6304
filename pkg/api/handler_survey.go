package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillforge/skillforge/pkg/models"
	"github.com/skillforge/skillforge/pkg/services"
)

// CreateSurvey handles POST /api/v1/surveys
func (s *Server) CreateSurvey(c *gin.Context) {
	var req models.CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	survey, err := s.surveys.CreateSurvey(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSurveyResponse(survey))
}

// LatestSurvey handles GET /api/v1/surveys/latest?user_id=...
func (s *Server) LatestSurvey(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		abortWithServiceError(c, services.NewValidationError("user_id", "required"))
		return
	}

	survey, err := s.surveys.LatestSurvey(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSurveyResponse(survey))
}
