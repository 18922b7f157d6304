package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/pkg/services"
)

// GetSession handles GET /api/v1/sessions/:id
func (s *Server) GetSession(c *gin.Context) {
	sess, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(sess))
}

// UpdateSessionStatus handles PUT /api/v1/sessions/:id/status
func (s *Server) UpdateSessionStatus(c *gin.Context) {
	var req UpdateStatusBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := c.Param("id")
	var (
		sess *ent.AssessmentSession
		err  error
	)
	switch req.Status {
	case "paused":
		sess, err = s.sessions.PauseSession(c.Request.Context(), sessionID)
	case "in_progress":
		sess, err = s.sessions.ResumeSession(c.Request.Context(), sessionID)
	case "completed":
		sess, err = s.sessions.CompleteSession(c.Request.Context(), sessionID)
	default:
		err = services.NewValidationError("status", "must be one of in_progress, paused, completed")
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(sess))
}

// TimeStatus handles GET /api/v1/sessions/:id/time-status
func (s *Server) TimeStatus(c *gin.Context) {
	status, err := s.sessions.TimeStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ResumeLatestSession handles GET /api/v1/sessions/resume?user_id=...
func (s *Server) ResumeLatestSession(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		abortWithServiceError(c, services.NewValidationError("user_id", "required"))
		return
	}

	resumable, err := s.sessions.ResumeLatest(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	answers := make([]AnswerStateResponse, 0, len(resumable.Answers))
	for _, a := range resumable.Answers {
		answers = append(answers, AnswerStateResponse{
			QuestionID:     a.QuestionID,
			UserAnswer:     a.UserAnswer,
			ResponseTimeMS: a.ResponseTimeMs,
			SavedAt:        a.SavedAt,
		})
	}

	c.JSON(http.StatusOK, ResumeResponse{
		Session:   toSessionResponse(resumable.Session),
		Questions: toQuestionResponses(resumable.Questions),
		Answers:   answers,
		Time:      resumable.Time,
	})
}

// Autosave handles POST /api/v1/sessions/:id/autosave
func (s *Server) Autosave(c *gin.Context) {
	var req AutosaveBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.autosave.Autosave(c.Request.Context(), services.AutosaveRequest{
		SessionID:      c.Param("id"),
		QuestionID:     req.QuestionID,
		UserAnswer:     req.UserAnswer,
		ResponseTimeMS: req.ResponseTimeMS,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ScoreRound handles POST /api/v1/sessions/:id/score
func (s *Server) ScoreRound(c *gin.Context) {
	score, err := s.scoring.ScoreRound(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}
