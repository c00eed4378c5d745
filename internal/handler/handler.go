package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/teamconnect/teamconnect/internal/handler/dto"
	"github.com/teamconnect/teamconnect/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, ownerID string, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, eventID, requesterID string, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, eventID, requesterID string) error
	StartMeeting(ctx context.Context, eventID, requesterID string) (*domain.Event, error)
	EndMeeting(ctx context.Context, eventID, requesterID string) (*domain.Event, error)
}

type AttendanceSvc interface {
	RecordAttendance(ctx context.Context, eventID, userID string, pin *string) (*domain.Attendance, domain.AttendanceAction, error)
	Leave(ctx context.Context, eventID, userID, reason string) (*domain.Attendance, error)
}

type CertificateSvc interface {
	Send(ctx context.Context, eventID, requesterID string, target domain.SendTarget) (*domain.SendReport, error)
	Template(ctx context.Context, eventID, requesterID string) (string, error)
	SetTemplate(ctx context.Context, eventID, requesterID, templateID string) error
	Render(ctx context.Context, eventID, userID, callerID string) ([]byte, error)
	ListByEvent(ctx context.Context, eventID, requesterID string) ([]*domain.Certificate, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Certificate, error)
	EligibleAttendees(ctx context.Context, eventID, requesterID string) ([]*domain.Attendance, error)
}

type NotificationSvc interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService        EventSvc
	attendanceService   AttendanceSvc
	certificateService  CertificateSvc
	notificationService NotificationSvc
	userService         UserSvc
}

func NewHandler(
	eventService EventSvc,
	attendanceService AttendanceSvc,
	certificateService CertificateSvc,
	notificationService NotificationSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		eventService:        eventService,
		attendanceService:   attendanceService,
		certificateService:  certificateService,
		notificationService: notificationService,
		userService:         userService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := eventInput(req.Title, req.Description, req.Location, req.StartsAt, req.EndsAt, req.Visibility, req.PIN, req.Capacity)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := eventInput(req.Title, req.Description, req.Location, req.StartsAt, req.EndsAt, req.Visibility, req.PIN, req.Capacity)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, middleware.UserID(c), domain.UpdateEventInput(input))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Meetings

func (h *Handler) StartMeeting(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	event, err := h.eventService.StartMeeting(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) EndMeeting(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	event, err := h.eventService.EndMeeting(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Attendance

func (h *Handler) RecordAttendance(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.RecordAttendanceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	attendance, action, err := h.attendanceService.RecordAttendance(c.Request.Context(), id, middleware.UserID(c), req.PIN)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RecordAttendanceResponse{
		Action:     string(action),
		Attendance: dto.ToAttendanceResponse(attendance),
	})
}

func (h *Handler) LeaveEvent(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.LeaveEventRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	attendance, err := h.attendanceService.Leave(c.Request.Context(), id, middleware.UserID(c), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(attendance))
}

// Certificates

func (h *Handler) SendCertificates(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.SendCertificatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if !req.SendToAll && len(req.UserIDs) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "either send_to_all or user_ids must be provided",
		})
		return
	}

	report, err := h.certificateService.Send(c.Request.Context(), id, middleware.UserID(c), domain.SendTarget{
		All:     req.SendToAll,
		UserIDs: req.UserIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSendReportResponse(report))
}

func (h *Handler) GetTemplate(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	templateID, err := h.certificateService.Template(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TemplateResponse{EventID: id, TemplateID: templateID})
}

func (h *Handler) SetTemplate(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.SetTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.certificateService.SetTemplate(c.Request.Context(), id, middleware.UserID(c), req.TemplateID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TemplateResponse{EventID: id, TemplateID: req.TemplateID})
}

func (h *Handler) DownloadCertificate(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	userID := c.Query("user_id")
	if userID == "" {
		userID = middleware.UserID(c)
	}
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	doc, err := h.certificateService.Render(c.Request.Context(), id, userID, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

func (h *Handler) ListEventCertificates(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	certs, err := h.certificateService.ListByEvent(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		resp = append(resp, dto.ToCertificateResponse(cert))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListMyCertificates(c *ginext.Context) {
	certs, err := h.certificateService.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		resp = append(resp, dto.ToCertificateResponse(cert))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListEligibleAttendees(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	attendees, err := h.certificateService.EligibleAttendees(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendanceResponse, 0, len(attendees))
	for _, a := range attendees {
		resp = append(resp, dto.ToAttendanceResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// Notifications

func (h *Handler) ListNotifications(c *ginext.Context) {
	notifications, err := h.notificationService.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) MarkNotificationRead(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid notification id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "read"})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := pathID(c, "id", "invalid user id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAttendanceNotFound),
		errors.Is(err, domain.ErrCertificateNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrWrongPIN):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrMeetingNotActive),
		errors.Is(err, domain.ErrMeetingAlreadyEnded),
		errors.Is(err, domain.ErrEventNotEnded),
		errors.Is(err, domain.ErrAlreadyLeft):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func pathID(c *ginext.Context, param, msg string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func eventInput(title, description, location, startsAt, endsAt, visibility string, pin *string, capacity *int) (domain.CreateEventInput, error) {
	starts, err := time.Parse(time.RFC3339, startsAt)
	if err != nil {
		return domain.CreateEventInput{}, errors.New("invalid starts_at format, expected RFC3339")
	}

	ends, err := time.Parse(time.RFC3339, endsAt)
	if err != nil {
		return domain.CreateEventInput{}, errors.New("invalid ends_at format, expected RFC3339")
	}

	return domain.CreateEventInput{
		Title:       title,
		Description: description,
		Location:    location,
		StartsAt:    starts,
		EndsAt:      ends,
		Visibility:  domain.Visibility(visibility),
		PIN:         pin,
		Capacity:    capacity,
	}, nil
}
