package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillforge/skillforge/pkg/models"
	"github.com/skillforge/skillforge/pkg/services"
)

// GenerateQuestions handles POST /api/v1/questions/generate
func (s *Server) GenerateQuestions(c *gin.Context) {
	var req models.GenerateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	round, err := s.generation.GenerateRound(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toGenerateResponse(round))
}

// GenerateAdaptiveQuestions handles POST /api/v1/questions/generate-adaptive
func (s *Server) GenerateAdaptiveQuestions(c *gin.Context) {
	var req GenerateAdaptiveBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	round, err := s.generation.GenerateAdaptiveRound(c.Request.Context(), req.UserID, req.PriorSessionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toGenerateResponse(round))
}

func toGenerateResponse(round *services.GeneratedRound) GenerateResponse {
	return GenerateResponse{
		Session:       toSessionResponse(round.Session),
		Questions:     toQuestionResponses(round.Questions),
		Partial:       round.Partial,
		AttemptNumber: round.Attempts,
		TotalTokens:   round.Tokens.TotalTokens,
	}
}
