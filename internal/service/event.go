package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/teamconnect/teamconnect/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo             ports.EventRepo
	attendanceRepo   ports.AttendanceRepo
	userRepo         ports.UserRepo
	notificationRepo ports.NotificationRepo
	notifier         ports.PushNotifier
	logger           logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	attendanceRepo ports.AttendanceRepo,
	userRepo ports.UserRepo,
	notificationRepo ports.NotificationRepo,
	notifier ports.PushNotifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:             repo,
		attendanceRepo:   attendanceRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		logger:           logger,
	}
}

func (s *EventService) Create(ctx context.Context, ownerID string, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateEventInput(input.Title, input.StartsAt, input.EndsAt, input.Visibility, input.PIN, input.Capacity); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Visibility:  input.Visibility,
		PIN:         input.PIN,
		Capacity:    input.Capacity,
		Status:      domain.EventStatusScheduled,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	attendees, err := s.attendanceRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	details.Attendees = make([]domain.Attendance, len(attendees))
	for i, a := range attendees {
		details.Attendees[i] = *a
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) Update(ctx context.Context, eventID, requesterID string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}

	if err := validateEventInput(input.Title, input.StartsAt, input.EndsAt, input.Visibility, input.PIN, input.Capacity); err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Location = input.Location
	event.StartsAt = input.StartsAt
	event.EndsAt = input.EndsAt
	event.Visibility = input.Visibility
	event.PIN = input.PIN
	event.Capacity = input.Capacity

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, eventID, requesterID string) error {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OwnerID != requesterID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", eventID),
		logger.String("owner_id", requesterID),
	)

	return nil
}

// StartMeeting moves the event to active. Calling it again while the meeting
// is running is a no-op success; an ended event is rejected, transitions are
// monotonic.
func (s *EventService) StartMeeting(ctx context.Context, eventID, requesterID string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}

	started, err := s.repo.MarkStarted(ctx, eventID, uuid.New().String())
	if err != nil {
		return nil, err
	}

	s.logger.Info("meeting started",
		logger.String("event_id", eventID),
		logger.String("meeting_id", derefString(started.MeetingID)),
	)

	return started, nil
}

// EndMeeting moves the event to ended and notifies every participant still
// present. The transition is guarded on current status, so a sweep racing a
// manual end notifies at most once.
func (s *EventService) EndMeeting(ctx context.Context, eventID, requesterID string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}

	ended, err := s.repo.MarkEnded(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("meeting ended",
		logger.String("event_id", eventID),
		logger.String("owner_id", requesterID),
	)

	present, err := s.attendanceRepo.ListPresent(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to list participants for end notification",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return ended, nil
	}

	message := fmt.Sprintf("The meeting for %q has been ended by the host.", ended.Title)
	s.fanOut(ctx, ended, present, domain.NotificationOther, message)

	return ended, nil
}

// SweepExpired force-ends every active event whose scheduled end has passed
// and notifies its attendees. Events are processed independently: a fan-out
// failure on one event is logged and does not touch the others.
func (s *EventService) SweepExpired(ctx context.Context) ([]*domain.Event, error) {
	ended, err := s.repo.EndOverdue(ctx)
	if err != nil {
		return nil, fmt.Errorf("end overdue: %w", err)
	}

	if len(ended) == 0 {
		return nil, nil
	}

	s.logger.Info("overdue events ended",
		logger.Int("count", len(ended)),
	)

	for _, e := range ended {
		attendees, err := s.attendanceRepo.ListByEvent(ctx, e.ID)
		if err != nil {
			s.logger.Error("failed to list attendees for sweep notification",
				logger.String("event_id", e.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		message := fmt.Sprintf("The event %q has ended.", e.Title)
		s.fanOut(ctx, e, attendees, domain.NotificationEventEnded, message)
	}

	return ended, nil
}

// fanOut persists one notification per attendee and forwards each to the
// push channel in the background. Per-recipient failures are logged only.
func (s *EventService) fanOut(ctx context.Context, event *domain.Event, attendees []*domain.Attendance, typ domain.NotificationType, message string) {
	for _, a := range attendees {
		n := &domain.Notification{
			ID:        uuid.New().String(),
			UserID:    a.UserID,
			Type:      typ,
			Message:   message,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			s.logger.Error("failed to create end notification",
				logger.String("event_id", event.ID),
				logger.String("user_id", a.UserID),
				logger.String("error", err.Error()),
			)
			continue
		}

		go s.push(context.WithoutCancel(ctx), event, a.UserID, typ)
	}
}

func (s *EventService) push(ctx context.Context, event *domain.Event, userID string, typ domain.NotificationType) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for push notification",
			logger.String("user_id", userID),
		)
		return
	}

	switch typ {
	case domain.NotificationEventEnded:
		s.notifier.NotifyEventEnded(ctx, user, event)
	default:
		s.notifier.NotifyMeetingEnded(ctx, user, event)
	}
}

func validateEventInput(title string, startsAt, endsAt time.Time, visibility domain.Visibility, pin *string, capacity *int) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !endsAt.After(startsAt) {
		return fmt.Errorf("%w: ends_at must be after starts_at", domain.ErrValidation)
	}
	if endsAt.Before(time.Now()) {
		return fmt.Errorf("%w: ends_at must be in the future", domain.ErrValidation)
	}
	if capacity != nil && *capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	switch visibility {
	case domain.VisibilityPublic, domain.VisibilityPrivate:
	default:
		return fmt.Errorf("%w: visibility must be public or private", domain.ErrValidation)
	}
	if visibility == domain.VisibilityPrivate && (pin == nil || *pin == "") {
		return fmt.Errorf("%w: private events require a pin", domain.ErrValidation)
	}

	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
