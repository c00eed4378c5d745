package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/teamconnect/teamconnect/internal/handler/dto"
	hmocks "github.com/teamconnect/teamconnect/internal/handler/mocks"
	"github.com/teamconnect/teamconnect/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const testSecret = "test-secret"

type testMocks struct {
	event        *hmocks.MockEventSvc
	attendance   *hmocks.MockAttendanceSvc
	certificate  *hmocks.MockCertificateSvc
	notification *hmocks.MockNotificationSvc
	user         *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		event:        hmocks.NewMockEventSvc(t),
		attendance:   hmocks.NewMockAttendanceSvc(t),
		certificate:  hmocks.NewMockCertificateSvc(t),
		notification: hmocks.NewMockNotificationSvc(t),
		user:         hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.event, m.attendance, m.certificate, m.notification, m.user)

	r := ginext.New("test")
	api := r.Group("/api")
	api.POST("/users", h.CreateUser)

	authed := api.Group("")
	authed.Use(middleware.Auth(testSecret))
	{
		authed.POST("/events", h.CreateEvent)
		authed.GET("/events", h.ListEvents)
		authed.GET("/events/:id", h.GetEvent)
		authed.POST("/events/:id/start", h.StartMeeting)
		authed.POST("/events/:id/end", h.EndMeeting)
		authed.POST("/events/:id/attendance", h.RecordAttendance)
		authed.POST("/events/:id/leave", h.LeaveEvent)
		authed.POST("/events/:id/certificates/send", h.SendCertificates)
		authed.GET("/events/:id/certificates/template", h.GetTemplate)
		authed.GET("/events/:id/certificates/download", h.DownloadCertificate)
		authed.GET("/certificates", h.ListMyCertificates)
		authed.GET("/notifications", h.ListNotifications)
		authed.POST("/notifications/:id/read", h.MarkNotificationRead)
	}

	return m, r
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_RejectsMissingToken(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_RejectsBadToken(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events", "Bearer not-a-token", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()

	event := &domain.Event{
		ID:         uuid.New().String(),
		OwnerID:    caller,
		Title:      "Sprint Review",
		StartsAt:   time.Now().Add(time.Hour),
		EndsAt:     time.Now().Add(2 * time.Hour),
		Visibility: domain.VisibilityPublic,
		Status:     domain.EventStatusScheduled,
	}

	m.event.EXPECT().Create(mock.Anything, caller, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", bearer(t, caller), dto.CreateEventRequest{
		Title:      "Sprint Review",
		StartsAt:   event.StartsAt.Format(time.RFC3339),
		EndsAt:     event.EndsAt.Format(time.RFC3339),
		Visibility: "public",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sprint Review", resp.Title)
	assert.Equal(t, caller, resp.OwnerID)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)
	caller := uuid.New().String()

	w := doJSON(t, r, http.MethodPost, "/api/events", bearer(t, caller), dto.CreateEventRequest{
		Title:      "X",
		StartsAt:   "not-a-date",
		EndsAt:     time.Now().Add(time.Hour).Format(time.RFC3339),
		Visibility: "public",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidVisibility(t *testing.T) {
	_, r := setupRouter(t)
	caller := uuid.New().String()

	w := doJSON(t, r, http.MethodPost, "/api/events", bearer(t, caller), map[string]any{
		"title":      "X",
		"starts_at":  time.Now().Format(time.RFC3339),
		"ends_at":    time.Now().Add(time.Hour).Format(time.RFC3339),
		"visibility": "secret",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", bearer(t, uuid.New().String()), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)
	eventID := uuid.New().String()

	m.event.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, bearer(t, uuid.New().String()), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_EndMeeting_Conflict(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	m.event.EXPECT().EndMeeting(mock.Anything, eventID, caller).Return(nil, domain.ErrMeetingNotActive)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/end", bearer(t, caller), nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_StartMeeting_Forbidden(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	m.event.EXPECT().StartMeeting(mock.Anything, eventID, caller).Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/start", bearer(t, caller), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Attendance ---

func TestHandler_RecordAttendance_EmptyBody(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	m.attendance.EXPECT().RecordAttendance(mock.Anything, eventID, caller, (*string)(nil)).Return(&domain.Attendance{
		EventID:  eventID,
		UserID:   caller,
		JoinedAt: time.Now(),
	}, domain.AttendanceJoined, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/attendance", bearer(t, caller), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RecordAttendanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "joined", resp.Action)
	assert.True(t, resp.Attendance.Present)
}

func TestHandler_RecordAttendance_WrongPIN(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	m.attendance.EXPECT().RecordAttendance(mock.Anything, eventID, caller, mock.Anything).Return(nil, domain.AttendanceAction(""), domain.ErrWrongPIN)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/attendance", bearer(t, caller), dto.RecordAttendanceRequest{PIN: strPtr("0000")})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_LeaveEvent_AlreadyLeft(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	m.attendance.EXPECT().Leave(mock.Anything, eventID, caller, "done for today").Return(nil, domain.ErrAlreadyLeft)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/leave", bearer(t, caller), dto.LeaveEventRequest{Reason: "done for today"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Certificates ---

func TestHandler_SendCertificates_MissingTarget(t *testing.T) {
	_, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/certificates/send", bearer(t, caller), dto.SendCertificatesRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SendCertificates_All(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	report := &domain.SendReport{
		Created: 2,
		Details: []domain.RecipientResult{
			{UserID: "u1", Outcome: domain.OutcomeCreated},
			{UserID: "u2", Outcome: domain.OutcomeCreated},
		},
	}
	m.certificate.EXPECT().Send(mock.Anything, eventID, caller, domain.SendTarget{All: true}).Return(report, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/certificates/send", bearer(t, caller), dto.SendCertificatesRequest{SendToAll: true})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SendReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Created)
	assert.Empty(t, resp.Message)
}

func TestHandler_SendCertificates_NoRecipients(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	m.certificate.EXPECT().Send(mock.Anything, eventID, caller, mock.Anything).Return(&domain.SendReport{Details: []domain.RecipientResult{}}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/certificates/send", bearer(t, caller), dto.SendCertificatesRequest{SendToAll: true})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SendReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "no eligible recipients", resp.Message)
}

func TestHandler_SendCertificates_NotEnded(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	m.certificate.EXPECT().Send(mock.Anything, eventID, caller, mock.Anything).Return(nil, domain.ErrEventNotEnded)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/certificates/send", bearer(t, caller), dto.SendCertificatesRequest{SendToAll: true})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DownloadCertificate_DefaultsToCaller(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	m.certificate.EXPECT().Render(mock.Anything, eventID, caller, caller).Return([]byte("<html>certificate</html>"), nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/certificates/download", bearer(t, caller), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "certificate")
}

func TestHandler_DownloadCertificate_Forbidden(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	other := uuid.New().String()
	eventID := uuid.New().String()

	m.certificate.EXPECT().Render(mock.Anything, eventID, other, caller).Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/certificates/download?user_id="+other, bearer(t, caller), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetTemplate(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	eventID := uuid.New().String()

	m.certificate.EXPECT().Template(mock.Anything, eventID, caller).Return("classic", nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/certificates/template", bearer(t, caller), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TemplateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "classic", resp.TemplateID)
}

func TestHandler_ListMyCertificates(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()

	m.certificate.EXPECT().ListByUser(mock.Anything, caller).Return([]*domain.Certificate{
		{ID: uuid.New().String(), EventID: uuid.New().String(), UserID: caller, IssuedAt: time.Now()},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/certificates", bearer(t, caller), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CertificateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Notifications ---

func TestHandler_MarkNotificationRead(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	id := uuid.New().String()

	m.notification.EXPECT().MarkRead(mock.Anything, id, caller).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/notifications/"+id+"/read", bearer(t, caller), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MarkNotificationRead_NotFound(t *testing.T) {
	m, r := setupRouter(t)
	caller := uuid.New().String()
	id := uuid.New().String()

	m.notification.EXPECT().MarkRead(mock.Anything, id, caller).Return(domain.ErrNotificationNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/notifications/"+id+"/read", bearer(t, caller), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_NoTokenRequired(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:       uuid.New().String(),
		Username: "alice",
		Name:     "Alice Smith",
		Email:    "alice@example.com",
	}
	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Username: "alice",
		Name:     "Alice Smith",
		Email:    "alice@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_BadEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Username: "alice",
		Name:     "Alice Smith",
		Email:    "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func strPtr(s string) *string {
	return &s
}
