package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teamconnect/teamconnect/internal/certificate"
	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/teamconnect/teamconnect/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CertificateService struct {
	repo             ports.CertificateRepo
	eventRepo        ports.EventRepo
	attendanceRepo   ports.AttendanceRepo
	userRepo         ports.UserRepo
	notificationRepo ports.NotificationRepo
	notifier         ports.PushNotifier
	renderer         *certificate.Renderer
	logger           logger.Logger
}

func NewCertificateService(
	repo ports.CertificateRepo,
	eventRepo ports.EventRepo,
	attendanceRepo ports.AttendanceRepo,
	userRepo ports.UserRepo,
	notificationRepo ports.NotificationRepo,
	notifier ports.PushNotifier,
	renderer *certificate.Renderer,
	logger logger.Logger,
) *CertificateService {
	return &CertificateService{
		repo:             repo,
		eventRepo:        eventRepo,
		attendanceRepo:   attendanceRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		renderer:         renderer,
		logger:           logger,
	}
}

// Send issues certificates for an ended event. In "all" mode the recipients
// are all registered attendees, where existing holders are reported as
// skipped; in explicit mode the given ids intersected with the registered
// set, where existing holders get a reissue. Recipients are processed one by
// one and a failure on one is recorded in the report without stopping the
// rest.
func (s *CertificateService) Send(ctx context.Context, eventID, requesterID string, target domain.SendTarget) (*domain.SendReport, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}
	if event.Status != domain.EventStatusEnded {
		return nil, domain.ErrEventNotEnded
	}

	recipients, explicit, err := s.resolveRecipients(ctx, eventID, target)
	if err != nil {
		return nil, err
	}

	report := &domain.SendReport{Details: make([]domain.RecipientResult, 0, len(recipients))}
	if len(recipients) == 0 {
		s.logger.Info("no eligible certificate recipients",
			logger.String("event_id", eventID),
		)
		return report, nil
	}

	for _, userID := range recipients {
		res := s.processRecipient(ctx, event, userID, explicit)
		report.Details = append(report.Details, res)

		switch res.Outcome {
		case domain.OutcomeCreated:
			report.Created++
		case domain.OutcomeUpdated:
			report.Updated++
		case domain.OutcomeSkipped:
			report.Skipped++
		case domain.OutcomeError:
			report.Errors++
		}
	}

	s.logger.Info("certificates sent",
		logger.String("event_id", eventID),
		logger.Int("created", report.Created),
		logger.Int("updated", report.Updated),
		logger.Int("skipped", report.Skipped),
		logger.Int("errors", report.Errors),
	)

	return report, nil
}

// resolveRecipients returns the recipient ids and whether they were targeted
// explicitly. Ids not registered for the event are dropped silently.
func (s *CertificateService) resolveRecipients(ctx context.Context, eventID string, target domain.SendTarget) ([]string, bool, error) {
	if !target.All {
		registered, err := s.attendanceRepo.FilterRegistered(ctx, eventID, dedupe(target.UserIDs))
		if err != nil {
			return nil, false, fmt.Errorf("filter recipients: %w", err)
		}
		return registered, true, nil
	}

	attendees, err := s.attendanceRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, false, fmt.Errorf("list attendees: %w", err)
	}

	recipients := make([]string, 0, len(attendees))
	for _, a := range attendees {
		recipients = append(recipients, a.UserID)
	}

	return recipients, false, nil
}

func (s *CertificateService) processRecipient(ctx context.Context, event *domain.Event, userID string, explicit bool) domain.RecipientResult {
	now := time.Now().UTC()

	_, err := s.repo.GetByEventAndUser(ctx, event.ID, userID)
	switch {
	case errors.Is(err, domain.ErrCertificateNotFound):
		cert := &domain.Certificate{
			ID:          uuid.New().String(),
			EventID:     event.ID,
			UserID:      userID,
			IssuedAt:    now,
			DownloadRef: downloadRef(event.ID, userID),
		}
		if err := s.repo.Create(ctx, cert); err != nil {
			return recipientError(userID, err)
		}

		s.notifyIssued(ctx, event, userID, false)

		return domain.RecipientResult{UserID: userID, Outcome: domain.OutcomeCreated}

	case err != nil:
		return recipientError(userID, err)

	case explicit:
		if err := s.repo.Touch(ctx, event.ID, userID, now); err != nil {
			return recipientError(userID, err)
		}

		s.notifyIssued(ctx, event, userID, true)

		return domain.RecipientResult{UserID: userID, Outcome: domain.OutcomeUpdated}

	default:
		// "all" mode never reissues; the holder keeps the original document.
		return domain.RecipientResult{UserID: userID, Outcome: domain.OutcomeSkipped}
	}
}

func recipientError(userID string, err error) domain.RecipientResult {
	return domain.RecipientResult{
		UserID:  userID,
		Outcome: domain.OutcomeError,
		Error:   err.Error(),
	}
}

func (s *CertificateService) notifyIssued(ctx context.Context, event *domain.Event, userID string, reissued bool) {
	message := fmt.Sprintf("Your certificate for %q is available.", event.Title)
	if reissued {
		message = fmt.Sprintf("Your certificate for %q has been reissued.", event.Title)
	}

	n := &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      domain.NotificationCertificateAvailable,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error("failed to create certificate notification",
			logger.String("event_id", event.ID),
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}

	go func(ctx context.Context) {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			s.logger.Error("failed to get user for certificate push",
				logger.String("user_id", userID),
			)
			return
		}
		s.notifier.NotifyCertificateIssued(ctx, user, event, reissued)
	}(context.WithoutCancel(ctx))
}

func (s *CertificateService) Template(ctx context.Context, eventID, requesterID string) (string, error) {
	event, err := s.ownedEvent(ctx, eventID, requesterID)
	if err != nil {
		return "", err
	}

	if event.TemplateID == nil || *event.TemplateID == "" {
		return certificate.DefaultTemplateID, nil
	}
	return *event.TemplateID, nil
}

// SetTemplate stores the selector as given; unknown ids are tolerated and
// fall back to the default layout at render time.
func (s *CertificateService) SetTemplate(ctx context.Context, eventID, requesterID, templateID string) error {
	if templateID == "" {
		return fmt.Errorf("%w: template_id is required", domain.ErrValidation)
	}

	if _, err := s.ownedEvent(ctx, eventID, requesterID); err != nil {
		return err
	}

	if !s.renderer.Has(templateID) {
		s.logger.Warn("unknown certificate template selected",
			logger.String("event_id", eventID),
			logger.String("template_id", templateID),
		)
	}

	return s.eventRepo.SetTemplate(ctx, eventID, templateID)
}

// Render produces the certificate document for (event, user). The caller
// must be the certificate owner or the event owner.
func (s *CertificateService) Render(ctx context.Context, eventID, userID, callerID string) ([]byte, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if callerID != userID && callerID != event.OwnerID {
		return nil, domain.ErrForbidden
	}

	cert, err := s.repo.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	recipient, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get recipient: %w", err)
	}

	issuer, err := s.userRepo.GetByID(ctx, event.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get issuer: %w", err)
	}

	templateID := certificate.DefaultTemplateID
	if event.TemplateID != nil && *event.TemplateID != "" {
		templateID = *event.TemplateID
	}

	return s.renderer.Render(templateID, certificate.Document{
		RecipientName:  recipient.Name,
		RecipientEmail: recipient.Email,
		EventTitle:     event.Title,
		EventDate:      event.StartsAt.Format("2 January 2006"),
		IssuedAt:       cert.IssuedAt.Format("2 January 2006"),
		IssuerName:     issuer.Name,
	})
}

func (s *CertificateService) ListByEvent(ctx context.Context, eventID, requesterID string) ([]*domain.Certificate, error) {
	if _, err := s.ownedEvent(ctx, eventID, requesterID); err != nil {
		return nil, err
	}

	return s.repo.ListByEvent(ctx, eventID)
}

func (s *CertificateService) ListByUser(ctx context.Context, userID string) ([]*domain.Certificate, error) {
	return s.repo.ListByUser(ctx, userID)
}

// EligibleAttendees lists registered attendees who do not hold a certificate
// yet, i.e. those a send-to-all would issue a new certificate for.
func (s *CertificateService) EligibleAttendees(ctx context.Context, eventID, requesterID string) ([]*domain.Attendance, error) {
	if _, err := s.ownedEvent(ctx, eventID, requesterID); err != nil {
		return nil, err
	}

	attendees, err := s.attendanceRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	holders, err := s.repo.HolderIDs(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list holders: %w", err)
	}

	held := make(map[string]struct{}, len(holders))
	for _, id := range holders {
		held[id] = struct{}{}
	}

	res := make([]*domain.Attendance, 0, len(attendees))
	for _, a := range attendees {
		if _, ok := held[a.UserID]; ok {
			continue
		}
		res = append(res, a)
	}

	return res, nil
}

func (s *CertificateService) ownedEvent(ctx context.Context, eventID, requesterID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func downloadRef(eventID, userID string) string {
	return fmt.Sprintf("/api/events/%s/certificates/download?user_id=%s", eventID, userID)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
