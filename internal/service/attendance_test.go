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
)

func newAttendanceService(t *testing.T) (*AttendanceService, *mocks.MockAttendanceRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockNotificationRepo, *mocks.MockPushNotifier) {
	t.Helper()
	repo := mocks.NewMockAttendanceRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notificationRepo := mocks.NewMockNotificationRepo(t)
	notifier := mocks.NewMockPushNotifier(t)

	svc := NewAttendanceService(repo, eventRepo, userRepo, notificationRepo, notifier, newTestLogger(t))
	return svc, repo, eventRepo, userRepo, notificationRepo, notifier
}

func TestAttendanceService_Record_FirstJoin(t *testing.T) {
	svc, repo, eventRepo, userRepo, notificationRepo, notifier := newAttendanceService(t)

	event := &domain.Event{ID: "e1", Title: "Standup", Visibility: domain.VisibilityPublic}
	user := &domain.User{ID: "u1", Username: "alice"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrAttendanceNotFound)
	repo.EXPECT().Open(mock.Anything, "e1", "u1").Return(&domain.Attendance{
		EventID:  "e1",
		UserID:   "u1",
		JoinedAt: time.Now(),
	}, nil)
	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyEventJoined(mock.Anything, user, event).Return()

	attendance, action, err := svc.RecordAttendance(context.Background(), "e1", "u1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceJoined, action)
	assert.True(t, attendance.Present())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestAttendanceService_Record_ToggleClosesOpenInterval(t *testing.T) {
	svc, repo, eventRepo, userRepo, _, _ := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(&domain.Attendance{
		EventID:  "e1",
		UserID:   "u1",
		JoinedAt: time.Now().Add(-45 * time.Minute),
	}, nil)

	left := time.Now()
	repo.EXPECT().Close(mock.Anything, "e1", "u1").Return(&domain.Attendance{
		EventID:         "e1",
		UserID:          "u1",
		LeftAt:          &left,
		DurationMinutes: 45,
	}, nil)

	attendance, action, err := svc.RecordAttendance(context.Background(), "e1", "u1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceLeft, action)
	assert.False(t, attendance.Present())
	assert.Equal(t, 45, attendance.DurationMinutes)
}

func TestAttendanceService_Record_RejoinAccumulates(t *testing.T) {
	svc, repo, eventRepo, userRepo, _, _ := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	left := time.Now().Add(-10 * time.Minute)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(&domain.Attendance{
		EventID:         "e1",
		UserID:          "u1",
		LeftAt:          &left,
		DurationMinutes: 30,
	}, nil)
	repo.EXPECT().Reopen(mock.Anything, "e1", "u1").Return(&domain.Attendance{
		EventID:         "e1",
		UserID:          "u1",
		JoinedAt:        time.Now(),
		DurationMinutes: 30,
	}, nil)

	attendance, action, err := svc.RecordAttendance(context.Background(), "e1", "u1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceRejoined, action)
	assert.True(t, attendance.Present())
	assert.Equal(t, 30, attendance.DurationMinutes)
}

func TestAttendanceService_Record_PrivateEventWrongPIN(t *testing.T) {
	svc, repo, eventRepo, userRepo, _, _ := newAttendanceService(t)

	pin := "4242"
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:         "e1",
		Visibility: domain.VisibilityPrivate,
		PIN:        &pin,
	}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrAttendanceNotFound)

	wrong := "0000"
	_, _, err := svc.RecordAttendance(context.Background(), "e1", "u1", &wrong)

	assert.ErrorIs(t, err, domain.ErrWrongPIN)
}

func TestAttendanceService_Record_PrivateEventMissingPIN(t *testing.T) {
	svc, repo, eventRepo, userRepo, _, _ := newAttendanceService(t)

	pin := "4242"
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:         "e1",
		Visibility: domain.VisibilityPrivate,
		PIN:        &pin,
	}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrAttendanceNotFound)

	_, _, err := svc.RecordAttendance(context.Background(), "e1", "u1", nil)

	assert.ErrorIs(t, err, domain.ErrWrongPIN)
}

func TestAttendanceService_Record_PrivateEventCorrectPIN(t *testing.T) {
	svc, repo, eventRepo, userRepo, notificationRepo, notifier := newAttendanceService(t)

	pin := "4242"
	event := &domain.Event{ID: "e1", Visibility: domain.VisibilityPrivate, PIN: &pin}
	user := &domain.User{ID: "u1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrAttendanceNotFound)
	repo.EXPECT().Open(mock.Anything, "e1", "u1").Return(&domain.Attendance{EventID: "e1", UserID: "u1"}, nil)
	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyEventJoined(mock.Anything, user, event).Return()

	given := "4242"
	_, action, err := svc.RecordAttendance(context.Background(), "e1", "u1", &given)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceJoined, action)

	time.Sleep(50 * time.Millisecond)
}

func TestAttendanceService_Record_CloseNeedsNoPIN(t *testing.T) {
	svc, repo, eventRepo, userRepo, _, _ := newAttendanceService(t)

	pin := "4242"
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:         "e1",
		Visibility: domain.VisibilityPrivate,
		PIN:        &pin,
	}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(&domain.Attendance{
		EventID: "e1",
		UserID:  "u1",
	}, nil)

	left := time.Now()
	repo.EXPECT().Close(mock.Anything, "e1", "u1").Return(&domain.Attendance{
		EventID: "e1",
		UserID:  "u1",
		LeftAt:  &left,
	}, nil)

	_, action, err := svc.RecordAttendance(context.Background(), "e1", "u1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceLeft, action)
}

func TestAttendanceService_Record_EventFull(t *testing.T) {
	svc, repo, eventRepo, userRepo, _, _ := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrAttendanceNotFound)
	repo.EXPECT().Open(mock.Anything, "e1", "u1").Return(nil, domain.ErrEventFull)

	_, _, err := svc.RecordAttendance(context.Background(), "e1", "u1", nil)

	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestAttendanceService_Record_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _, _, _ := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, _, err := svc.RecordAttendance(context.Background(), "missing", "u1", nil)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestAttendanceService_Leave_Success(t *testing.T) {
	svc, repo, eventRepo, _, _, _ := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)

	left := time.Now()
	repo.EXPECT().Close(mock.Anything, "e1", "u1").Return(&domain.Attendance{
		EventID:         "e1",
		UserID:          "u1",
		LeftAt:          &left,
		DurationMinutes: 12,
	}, nil)

	attendance, err := svc.Leave(context.Background(), "e1", "u1", "connection dropped")

	require.NoError(t, err)
	assert.Equal(t, 12, attendance.DurationMinutes)
}

func TestAttendanceService_Leave_AlreadyLeft(t *testing.T) {
	svc, repo, eventRepo, _, _, _ := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	repo.EXPECT().Close(mock.Anything, "e1", "u1").Return(nil, domain.ErrAlreadyLeft)

	_, err := svc.Leave(context.Background(), "e1", "u1", "")

	assert.ErrorIs(t, err, domain.ErrAlreadyLeft)
}

func TestAttendanceService_Leave_NeverRegistered(t *testing.T) {
	svc, repo, eventRepo, _, _, _ := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	repo.EXPECT().Close(mock.Anything, "e1", "u1").Return(nil, domain.ErrAttendanceNotFound)

	_, err := svc.Leave(context.Background(), "e1", "u1", "")

	assert.ErrorIs(t, err, domain.ErrAttendanceNotFound)
}

func TestAttendanceService_Record_UnexpectedLookupError(t *testing.T) {
	svc, repo, eventRepo, userRepo, _, _ := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").Return(nil, errors.New("db down"))

	_, _, err := svc.RecordAttendance(context.Background(), "e1", "u1", nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAttendanceNotFound)
}
