package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ScoreAnswer handles POST /api/v1/answers/score — immediate feedback for a
// single stored answer, without persisting a verdict. The batch round scoring
// stays authoritative.
func (s *Server) ScoreAnswer(c *gin.Context) {
	var req ScoreAnswerBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, explanation, err := s.scoring.ScoreAnswer(c.Request.Context(), req.SessionID, req.QuestionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ScoreAnswerResponse{
		AnswerScore: *score,
		Explanation: explanation,
	})
}
