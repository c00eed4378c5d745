package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/teamconnect/teamconnect/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AttendanceService struct {
	repo             ports.AttendanceRepo
	eventRepo        ports.EventRepo
	userRepo         ports.UserRepo
	notificationRepo ports.NotificationRepo
	notifier         ports.PushNotifier
	logger           logger.Logger
}

func NewAttendanceService(
	repo ports.AttendanceRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notificationRepo ports.NotificationRepo,
	notifier ports.PushNotifier,
	logger logger.Logger,
) *AttendanceService {
	return &AttendanceService{
		repo:             repo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		logger:           logger,
	}
}

// RecordAttendance is a toggle: with no row it opens the first interval, with
// an open interval it closes it, with a closed one it opens a new interval.
// The cumulative duration equals the sum of all closed intervals whichever
// path a session takes.
func (s *AttendanceService) RecordAttendance(ctx context.Context, eventID, userID string, pin *string) (*domain.Attendance, domain.AttendanceAction, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, "", fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("check user: %w", err)
	}

	current, err := s.repo.GetByEventAndUser(ctx, eventID, userID)
	switch {
	case err == nil && current.Present():
		closed, err := s.repo.Close(ctx, eventID, userID)
		if err != nil {
			return nil, "", fmt.Errorf("close attendance: %w", err)
		}

		s.logger.Info("attendance interval closed",
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
			logger.Int("duration_minutes", closed.DurationMinutes),
		)

		return closed, domain.AttendanceLeft, nil

	case err == nil:
		if err := checkPIN(event, pin); err != nil {
			return nil, "", err
		}

		reopened, err := s.repo.Reopen(ctx, eventID, userID)
		if err != nil {
			return nil, "", fmt.Errorf("reopen attendance: %w", err)
		}

		s.logger.Info("attendance interval reopened",
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
		)

		return reopened, domain.AttendanceRejoined, nil

	case errors.Is(err, domain.ErrAttendanceNotFound):
		if err := checkPIN(event, pin); err != nil {
			return nil, "", err
		}

		opened, err := s.repo.Open(ctx, eventID, userID)
		if err != nil {
			return nil, "", fmt.Errorf("open attendance: %w", err)
		}

		s.logger.Info("attendance opened",
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
		)

		s.notifyJoined(ctx, user, event)

		return opened, domain.AttendanceJoined, nil

	default:
		return nil, "", fmt.Errorf("get attendance: %w", err)
	}
}

// Leave closes the open interval explicitly. The reason is diagnostic only,
// it is never persisted.
func (s *AttendanceService) Leave(ctx context.Context, eventID, userID, reason string) (*domain.Attendance, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	closed, err := s.repo.Close(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("attendee left event",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("reason", reason),
		logger.Int("duration_minutes", closed.DurationMinutes),
	)

	return closed, nil
}

func (s *AttendanceService) Get(ctx context.Context, eventID, userID string) (*domain.Attendance, error) {
	return s.repo.GetByEventAndUser(ctx, eventID, userID)
}

func (s *AttendanceService) notifyJoined(ctx context.Context, user *domain.User, event *domain.Event) {
	n := &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Type:      domain.NotificationEventJoined,
		Message:   fmt.Sprintf("You joined %q.", event.Title),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error("failed to create join notification",
			logger.String("event_id", event.ID),
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	go s.notifier.NotifyEventJoined(context.WithoutCancel(ctx), user, event)
}

func checkPIN(event *domain.Event, pin *string) error {
	if event.Visibility != domain.VisibilityPrivate {
		return nil
	}
	if event.PIN == nil {
		return nil
	}
	if pin == nil || *pin != *event.PIN {
		return domain.ErrWrongPIN
	}
	return nil
}
