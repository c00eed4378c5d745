package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teamconnect/teamconnect/internal/certificate"
	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/teamconnect/teamconnect/internal/service/ports/mocks"
)

func newCertificateService(t *testing.T) (*CertificateService, *mocks.MockCertificateRepo, *mocks.MockEventRepo, *mocks.MockAttendanceRepo, *mocks.MockUserRepo, *mocks.MockNotificationRepo, *mocks.MockPushNotifier) {
	t.Helper()
	repo := mocks.NewMockCertificateRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	attendanceRepo := mocks.NewMockAttendanceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notificationRepo := mocks.NewMockNotificationRepo(t)
	notifier := mocks.NewMockPushNotifier(t)

	renderer, err := certificate.NewRenderer()
	require.NoError(t, err)

	svc := NewCertificateService(repo, eventRepo, attendanceRepo, userRepo, notificationRepo, notifier, renderer, newTestLogger(t))
	return svc, repo, eventRepo, attendanceRepo, userRepo, notificationRepo, notifier
}

func endedEvent() *domain.Event {
	return &domain.Event{
		ID:       "e1",
		OwnerID:  "owner-1",
		Title:    "Go Workshop",
		StartsAt: time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
		Status:   domain.EventStatusEnded,
	}
}

func TestCertificateService_Send_Forbidden(t *testing.T) {
	svc, _, eventRepo, _, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)

	_, err := svc.Send(context.Background(), "e1", "intruder", domain.SendTarget{All: true})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCertificateService_Send_EventNotEnded(t *testing.T) {
	svc, _, eventRepo, _, _, _, _ := newCertificateService(t)

	active := endedEvent()
	active.Status = domain.EventStatusActive
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(active, nil)

	_, err := svc.Send(context.Background(), "e1", "owner-1", domain.SendTarget{All: true})

	assert.ErrorIs(t, err, domain.ErrEventNotEnded)
}

func TestCertificateService_Send_AllSkipsHolders(t *testing.T) {
	svc, repo, eventRepo, attendanceRepo, userRepo, notificationRepo, notifier := newCertificateService(t)

	event := endedEvent()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	attendanceRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.Attendance{
		{EventID: "e1", UserID: "u1"},
		{EventID: "e1", UserID: "u2"},
		{EventID: "e1", UserID: "u3"},
	}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrCertificateNotFound)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u2").Return(&domain.Certificate{
		ID:      "c2",
		EventID: "e1",
		UserID:  "u2",
	}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u3").Return(nil, domain.ErrCertificateNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)
	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u3").Return(&domain.User{ID: "u3"}, nil)
	notifier.EXPECT().NotifyCertificateIssued(mock.Anything, mock.Anything, event, false).Return().Times(2)

	report, err := svc.Send(context.Background(), "e1", "owner-1", domain.SendTarget{All: true})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Zero(t, report.Updated)
	assert.Equal(t, 1, report.Skipped)
	assert.Zero(t, report.Errors)
	require.Len(t, report.Details, 3)
	assert.Equal(t, domain.OutcomeSkipped, report.Details[1].Outcome)

	time.Sleep(50 * time.Millisecond) // goroutine push
}

func TestCertificateService_Send_AllSecondRunSkipsEveryone(t *testing.T) {
	svc, repo, eventRepo, attendanceRepo, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)
	attendanceRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.Attendance{
		{EventID: "e1", UserID: "u1"},
		{EventID: "e1", UserID: "u2"},
	}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(&domain.Certificate{
		ID:      "c1",
		EventID: "e1",
		UserID:  "u1",
	}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u2").Return(&domain.Certificate{
		ID:      "c2",
		EventID: "e1",
		UserID:  "u2",
	}, nil)

	report, err := svc.Send(context.Background(), "e1", "owner-1", domain.SendTarget{All: true})

	require.NoError(t, err)
	assert.Zero(t, report.Created)
	assert.Zero(t, report.Updated)
	assert.Equal(t, 2, report.Skipped)
	assert.Zero(t, report.Errors)
	require.Len(t, report.Details, 2)
	assert.Equal(t, domain.OutcomeSkipped, report.Details[0].Outcome)
	assert.Equal(t, domain.OutcomeSkipped, report.Details[1].Outcome)
}

func TestCertificateService_Send_ExplicitReissues(t *testing.T) {
	svc, repo, eventRepo, attendanceRepo, userRepo, notificationRepo, notifier := newCertificateService(t)

	event := endedEvent()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	attendanceRepo.EXPECT().FilterRegistered(mock.Anything, "e1", []string{"u1"}).Return([]string{"u1"}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(&domain.Certificate{
		ID:      "c1",
		EventID: "e1",
		UserID:  "u1",
	}, nil)
	repo.EXPECT().Touch(mock.Anything, "e1", "u1", mock.Anything).Return(nil)
	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	notifier.EXPECT().NotifyCertificateIssued(mock.Anything, mock.Anything, event, true).Return()

	report, err := svc.Send(context.Background(), "e1", "owner-1", domain.SendTarget{UserIDs: []string{"u1"}})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	assert.Zero(t, report.Created)

	time.Sleep(50 * time.Millisecond)
}

func TestCertificateService_Send_ExplicitDropsUnregistered(t *testing.T) {
	svc, _, eventRepo, attendanceRepo, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)
	attendanceRepo.EXPECT().FilterRegistered(mock.Anything, "e1", []string{"ghost"}).Return([]string{}, nil)

	report, err := svc.Send(context.Background(), "e1", "owner-1", domain.SendTarget{UserIDs: []string{"ghost"}})

	require.NoError(t, err)
	assert.True(t, report.Empty())
	assert.Empty(t, report.Details)
}

func TestCertificateService_Send_RecipientFailureIsIsolated(t *testing.T) {
	svc, repo, eventRepo, attendanceRepo, userRepo, notificationRepo, notifier := newCertificateService(t)

	event := endedEvent()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	attendanceRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.Attendance{
		{EventID: "e1", UserID: "u1"},
		{EventID: "e1", UserID: "u2"},
	}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrCertificateNotFound)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u2").Return(nil, domain.ErrCertificateNotFound)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.Certificate) bool {
		return c.UserID == "u1"
	})).Return(errors.New("insert failed"))
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.Certificate) bool {
		return c.UserID == "u2"
	})).Return(nil)
	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	notifier.EXPECT().NotifyCertificateIssued(mock.Anything, mock.Anything, event, false).Return()

	report, err := svc.Send(context.Background(), "e1", "owner-1", domain.SendTarget{All: true})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Errors)
	require.Len(t, report.Details, 2)
	assert.Equal(t, domain.OutcomeError, report.Details[0].Outcome)
	assert.NotEmpty(t, report.Details[0].Error)
	assert.Equal(t, domain.OutcomeCreated, report.Details[1].Outcome)

	time.Sleep(50 * time.Millisecond)
}

func TestCertificateService_Send_DedupesExplicitIDs(t *testing.T) {
	svc, _, eventRepo, attendanceRepo, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)
	attendanceRepo.EXPECT().FilterRegistered(mock.Anything, "e1", []string{"u1"}).Return([]string{}, nil)

	_, err := svc.Send(context.Background(), "e1", "owner-1", domain.SendTarget{UserIDs: []string{"u1", "u1", "u1"}})

	require.NoError(t, err)
}

func TestCertificateService_Template_Default(t *testing.T) {
	svc, _, eventRepo, _, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)

	id, err := svc.Template(context.Background(), "e1", "owner-1")

	require.NoError(t, err)
	assert.Equal(t, certificate.DefaultTemplateID, id)
}

func TestCertificateService_Template_Stored(t *testing.T) {
	svc, _, eventRepo, _, _, _, _ := newCertificateService(t)

	event := endedEvent()
	tmpl := "modern"
	event.TemplateID = &tmpl
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	id, err := svc.Template(context.Background(), "e1", "owner-1")

	require.NoError(t, err)
	assert.Equal(t, "modern", id)
}

func TestCertificateService_SetTemplate_Empty(t *testing.T) {
	svc, _, _, _, _, _, _ := newCertificateService(t)

	err := svc.SetTemplate(context.Background(), "e1", "owner-1", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCertificateService_SetTemplate_UnknownIDIsStored(t *testing.T) {
	svc, _, eventRepo, _, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)
	eventRepo.EXPECT().SetTemplate(mock.Anything, "e1", "nonexistent").Return(nil)

	err := svc.SetTemplate(context.Background(), "e1", "owner-1", "nonexistent")

	require.NoError(t, err)
}

func TestCertificateService_SetTemplate_Forbidden(t *testing.T) {
	svc, _, eventRepo, _, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)

	err := svc.SetTemplate(context.Background(), "e1", "intruder", "classic")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCertificateService_Render_Success(t *testing.T) {
	svc, repo, eventRepo, _, userRepo, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(&domain.Certificate{
		ID:       "c1",
		EventID:  "e1",
		UserID:   "u1",
		IssuedAt: time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC),
	}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Alice Smith", Email: "alice@example.com"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "owner-1").Return(&domain.User{ID: "owner-1", Name: "Bob Host"}, nil)

	doc, err := svc.Render(context.Background(), "e1", "u1", "u1")

	require.NoError(t, err)
	assert.Contains(t, string(doc), "Alice Smith")
	assert.Contains(t, string(doc), "Go Workshop")
}

func TestCertificateService_Render_Forbidden(t *testing.T) {
	svc, _, eventRepo, _, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)

	_, err := svc.Render(context.Background(), "e1", "u1", "stranger")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCertificateService_Render_OwnerCanDownloadForAttendee(t *testing.T) {
	svc, repo, eventRepo, _, userRepo, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(&domain.Certificate{
		ID:      "c1",
		EventID: "e1",
		UserID:  "u1",
	}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Alice"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "owner-1").Return(&domain.User{ID: "owner-1", Name: "Bob"}, nil)

	_, err := svc.Render(context.Background(), "e1", "u1", "owner-1")

	require.NoError(t, err)
}

func TestCertificateService_Render_CertificateNotFound(t *testing.T) {
	svc, repo, eventRepo, _, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrCertificateNotFound)

	_, err := svc.Render(context.Background(), "e1", "u1", "u1")

	assert.ErrorIs(t, err, domain.ErrCertificateNotFound)
}

func TestCertificateService_Render_FallsBackToDefaultTemplate(t *testing.T) {
	svc, repo, eventRepo, _, userRepo, _, _ := newCertificateService(t)

	event := endedEvent()
	tmpl := "deleted-layout"
	event.TemplateID = &tmpl
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(&domain.Certificate{
		ID:      "c1",
		EventID: "e1",
		UserID:  "u1",
	}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Alice"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "owner-1").Return(&domain.User{ID: "owner-1", Name: "Bob"}, nil)

	doc, err := svc.Render(context.Background(), "e1", "u1", "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestCertificateService_EligibleAttendees_ExcludesHolders(t *testing.T) {
	svc, repo, eventRepo, attendanceRepo, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)
	attendanceRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.Attendance{
		{EventID: "e1", UserID: "u1"},
		{EventID: "e1", UserID: "u2"},
	}, nil)
	repo.EXPECT().HolderIDs(mock.Anything, "e1").Return([]string{"u1"}, nil)

	eligible, err := svc.EligibleAttendees(context.Background(), "e1", "owner-1")

	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "u2", eligible[0].UserID)
}

func TestCertificateService_ListByEvent_Forbidden(t *testing.T) {
	svc, _, eventRepo, _, _, _, _ := newCertificateService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(endedEvent(), nil)

	_, err := svc.ListByEvent(context.Background(), "e1", "intruder")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
