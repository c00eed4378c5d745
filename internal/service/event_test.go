package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/teamconnect/teamconnect/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockAttendanceRepo, *mocks.MockUserRepo, *mocks.MockNotificationRepo, *mocks.MockPushNotifier) {
	t.Helper()
	repo := mocks.NewMockEventRepo(t)
	attendanceRepo := mocks.NewMockAttendanceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notificationRepo := mocks.NewMockNotificationRepo(t)
	notifier := mocks.NewMockPushNotifier(t)

	svc := NewEventService(repo, attendanceRepo, userRepo, notificationRepo, notifier, newTestLogger(t))
	return svc, repo, attendanceRepo, userRepo, notificationRepo, notifier
}

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:      "Sprint Review",
		StartsAt:   time.Now().Add(time.Hour),
		EndsAt:     time.Now().Add(2 * time.Hour),
		Visibility: domain.VisibilityPublic,
	}
}

func TestEventService_Create_Success(t *testing.T) {
	svc, repo, _, _, _, _ := newEventService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), "owner-1", validEventInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "owner-1", event.OwnerID)
	assert.Equal(t, domain.EventStatusScheduled, event.Status)
}

func TestEventService_Create_Validation(t *testing.T) {
	svc, _, _, _, _, _ := newEventService(t)

	cases := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"empty title", func(in *domain.CreateEventInput) { in.Title = "" }},
		{"ends before starts", func(in *domain.CreateEventInput) { in.EndsAt = in.StartsAt.Add(-time.Minute) }},
		{"ends in the past", func(in *domain.CreateEventInput) {
			in.StartsAt = time.Now().Add(-2 * time.Hour)
			in.EndsAt = time.Now().Add(-time.Hour)
		}},
		{"non-positive capacity", func(in *domain.CreateEventInput) { zero := 0; in.Capacity = &zero }},
		{"unknown visibility", func(in *domain.CreateEventInput) { in.Visibility = "secret" }},
		{"private without pin", func(in *domain.CreateEventInput) { in.Visibility = domain.VisibilityPrivate }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validEventInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), "owner-1", input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Update_Forbidden(t *testing.T) {
	svc, repo, _, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OwnerID: "owner-1"}, nil)

	_, err := svc.Update(context.Background(), "e1", "intruder", domain.UpdateEventInput(validEventInput()))

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Delete_Forbidden(t *testing.T) {
	svc, repo, _, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OwnerID: "owner-1"}, nil)

	err := svc.Delete(context.Background(), "e1", "intruder")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Delete_Success(t *testing.T) {
	svc, repo, _, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OwnerID: "owner-1"}, nil)
	repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	err := svc.Delete(context.Background(), "e1", "owner-1")

	require.NoError(t, err)
}

func TestEventService_StartMeeting_Success(t *testing.T) {
	svc, repo, _, _, _, _ := newEventService(t)

	meetingID := "m-1"
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OwnerID: "owner-1"}, nil)
	repo.EXPECT().MarkStarted(mock.Anything, "e1", mock.Anything).Return(&domain.Event{
		ID:        "e1",
		OwnerID:   "owner-1",
		Status:    domain.EventStatusActive,
		MeetingID: &meetingID,
	}, nil)

	started, err := svc.StartMeeting(context.Background(), "e1", "owner-1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusActive, started.Status)
	require.NotNil(t, started.MeetingID)
}

func TestEventService_StartMeeting_Forbidden(t *testing.T) {
	svc, repo, _, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OwnerID: "owner-1"}, nil)

	_, err := svc.StartMeeting(context.Background(), "e1", "intruder")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_StartMeeting_AlreadyEnded(t *testing.T) {
	svc, repo, _, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OwnerID: "owner-1"}, nil)
	repo.EXPECT().MarkStarted(mock.Anything, "e1", mock.Anything).Return(nil, domain.ErrMeetingAlreadyEnded)

	_, err := svc.StartMeeting(context.Background(), "e1", "owner-1")

	assert.ErrorIs(t, err, domain.ErrMeetingAlreadyEnded)
}

func TestEventService_EndMeeting_NotifiesPresent(t *testing.T) {
	svc, repo, attendanceRepo, userRepo, notificationRepo, notifier := newEventService(t)

	ended := &domain.Event{ID: "e1", OwnerID: "owner-1", Title: "Standup", Status: domain.EventStatusEnded}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OwnerID: "owner-1"}, nil)
	repo.EXPECT().MarkEnded(mock.Anything, "e1").Return(ended, nil)
	attendanceRepo.EXPECT().ListPresent(mock.Anything, "e1").Return([]*domain.Attendance{
		{EventID: "e1", UserID: "u1"},
		{EventID: "e1", UserID: "u2"},
	}, nil)
	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	notifier.EXPECT().NotifyMeetingEnded(mock.Anything, mock.Anything, ended).Return().Times(2)

	got, err := svc.EndMeeting(context.Background(), "e1", "owner-1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusEnded, got.Status)

	time.Sleep(50 * time.Millisecond) // goroutine push
}

func TestEventService_EndMeeting_NotActive(t *testing.T) {
	svc, repo, _, _, _, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OwnerID: "owner-1"}, nil)
	repo.EXPECT().MarkEnded(mock.Anything, "e1").Return(nil, domain.ErrMeetingNotActive)

	_, err := svc.EndMeeting(context.Background(), "e1", "owner-1")

	assert.ErrorIs(t, err, domain.ErrMeetingNotActive)
}

func TestEventService_EndMeeting_ListPresentFailureIsNotFatal(t *testing.T) {
	svc, repo, attendanceRepo, _, _, _ := newEventService(t)

	ended := &domain.Event{ID: "e1", OwnerID: "owner-1", Title: "Standup", Status: domain.EventStatusEnded}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OwnerID: "owner-1"}, nil)
	repo.EXPECT().MarkEnded(mock.Anything, "e1").Return(ended, nil)
	attendanceRepo.EXPECT().ListPresent(mock.Anything, "e1").Return(nil, errors.New("db down"))

	got, err := svc.EndMeeting(context.Background(), "e1", "owner-1")

	require.NoError(t, err)
	assert.Equal(t, ended, got)
}

func TestEventService_SweepExpired_NothingOverdue(t *testing.T) {
	svc, repo, _, _, _, _ := newEventService(t)

	repo.EXPECT().EndOverdue(mock.Anything).Return(nil, nil)

	ended, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, ended)
}

func TestEventService_SweepExpired_NotifiesAttendees(t *testing.T) {
	svc, repo, attendanceRepo, userRepo, notificationRepo, notifier := newEventService(t)

	overdue := &domain.Event{ID: "e1", Title: "Workshop", Status: domain.EventStatusEnded}
	repo.EXPECT().EndOverdue(mock.Anything).Return([]*domain.Event{overdue}, nil)
	attendanceRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.Attendance{
		{EventID: "e1", UserID: "u1"},
	}, nil)
	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	notifier.EXPECT().NotifyEventEnded(mock.Anything, mock.Anything, overdue).Return()

	ended, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	require.Len(t, ended, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestEventService_SweepExpired_IsolatesPerEventFailures(t *testing.T) {
	svc, repo, attendanceRepo, userRepo, notificationRepo, notifier := newEventService(t)

	first := &domain.Event{ID: "e1", Title: "First"}
	second := &domain.Event{ID: "e2", Title: "Second"}
	repo.EXPECT().EndOverdue(mock.Anything).Return([]*domain.Event{first, second}, nil)
	attendanceRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, errors.New("db down"))
	attendanceRepo.EXPECT().ListByEvent(mock.Anything, "e2").Return([]*domain.Attendance{
		{EventID: "e2", UserID: "u2"},
	}, nil)
	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	notifier.EXPECT().NotifyEventEnded(mock.Anything, mock.Anything, second).Return()

	ended, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, ended, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestEventService_SweepExpired_EndOverdueError(t *testing.T) {
	svc, repo, _, _, _, _ := newEventService(t)

	repo.EXPECT().EndOverdue(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.SweepExpired(context.Background())

	require.Error(t, err)
}

func TestEventService_GetDetails_IncludesAttendees(t *testing.T) {
	svc, repo, attendanceRepo, _, _, _ := newEventService(t)

	details := &domain.EventDetails{Event: domain.Event{ID: "e1", Title: "Demo"}}
	repo.EXPECT().GetDetails(mock.Anything, "e1").Return(details, nil)
	attendanceRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.Attendance{
		{EventID: "e1", UserID: "u1", DurationMinutes: 30},
	}, nil)

	got, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	require.Len(t, got.Attendees, 1)
	assert.Equal(t, 30, got.Attendees[0].DurationMinutes)
}
