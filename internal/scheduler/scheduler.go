package scheduler

import (
	"context"
	"time"

	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type eventSweeper interface {
	SweepExpired(ctx context.Context) ([]*domain.Event, error)
}

// Scheduler periodically force-ends active events whose scheduled end time
// has passed.
type Scheduler struct {
	eventService eventSweeper
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService eventSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweep scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweep scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	ended, err := s.eventService.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range ended {
		s.logger.Info("event force-ended by sweep",
			logger.String("event_id", e.ID),
			logger.String("title", e.Title),
		)
	}
}
