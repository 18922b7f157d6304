// Package api exposes the assessment engine over HTTP.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillforge/skillforge/pkg/database"
	"github.com/skillforge/skillforge/pkg/services"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	db         *database.Client
	surveys    *services.SurveyService
	sessions   *services.SessionService
	generation *services.GenerationService
	autosave   *services.AutosaveService
	scoring    *services.ScoringService
}

// NewServer creates a new API server
func NewServer(
	db *database.Client,
	surveys *services.SurveyService,
	sessions *services.SessionService,
	generation *services.GenerationService,
	autosave *services.AutosaveService,
	scoring *services.ScoringService,
) *Server {
	return &Server{
		db:         db,
		surveys:    surveys,
		sessions:   sessions,
		generation: generation,
		autosave:   autosave,
		scoring:    scoring,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), SecurityHeaders())

	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/surveys", s.CreateSurvey)
		v1.GET("/surveys/latest", s.LatestSurvey)

		v1.POST("/questions/generate", s.GenerateQuestions)
		v1.POST("/questions/generate-adaptive", s.GenerateAdaptiveQuestions)

		v1.GET("/sessions/resume", s.ResumeLatestSession)
		v1.GET("/sessions/:id", s.GetSession)
		v1.PUT("/sessions/:id/status", s.UpdateSessionStatus)
		v1.GET("/sessions/:id/time-status", s.TimeStatus)
		v1.POST("/sessions/:id/autosave", s.Autosave)
		v1.POST("/sessions/:id/score", s.ScoreRound)

		v1.POST("/answers/score", s.ScoreAnswer)
	}

	return r
}
