// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/skillforge/skillforge/pkg/config"
	"github.com/skillforge/skillforge/pkg/services"
)

// Service periodically deletes abandoned sessions: non-completed rounds the
// user walked away from. Completed sessions are history and never touched.
// Deletion is idempotent and safe to run from multiple pods.
type Service struct {
	config         *config.RetentionConfig
	sessionService *services.SessionService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, sessionService *services.SessionService) *Service {
	return &Service{
		config:         cfg,
		sessionService: sessionService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"abandoned_after", s.config.AbandonedAfter,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.deleteAbandonedSessions()

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.deleteAbandonedSessions()
		}
	}
}

func (s *Service) deleteAbandonedSessions() {
	count, err := s.sessionService.DeleteAbandonedSessions(context.Background(), s.config.AbandonedAfter)
	if err != nil {
		slog.Error("Retention: abandoned session cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted abandoned sessions", "count", count)
	}
}
