package dto

import (
	"time"

	"github.com/teamconnect/teamconnect/internal/domain"
)

type EventResponse struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"owner_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	StartsAt     string  `json:"starts_at"`
	EndsAt       string  `json:"ends_at"`
	Visibility   string  `json:"visibility"`
	Capacity     *int    `json:"capacity"`
	Participants int     `json:"participants"`
	Status       string  `json:"status"`
	MeetingID    *string `json:"meeting_id,omitempty"`
	TemplateID   *string `json:"template_id,omitempty"`
	StartedAt    *string `json:"started_at,omitempty"`
	EndedAt      *string `json:"ended_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type EventDetailsResponse struct {
	Event     EventResponse        `json:"event"`
	FreeSpots *int                 `json:"free_spots"`
	Attendees []AttendanceResponse `json:"attendees"`
}

type AttendanceResponse struct {
	EventID         string  `json:"event_id"`
	UserID          string  `json:"user_id"`
	JoinedAt        string  `json:"joined_at"`
	LeftAt          *string `json:"left_at,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Present         bool    `json:"present"`
}

type RecordAttendanceResponse struct {
	Action     string             `json:"action"`
	Attendance AttendanceResponse `json:"attendance"`
}

type CertificateResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	UserID      string `json:"user_id"`
	IssuedAt    string `json:"issued_at"`
	Paid        bool   `json:"paid"`
	Price       int    `json:"price"`
	DownloadRef string `json:"download_ref"`
}

type SendReportResponse struct {
	Created int                      `json:"created"`
	Updated int                      `json:"updated"`
	Skipped int                      `json:"skipped"`
	Errors  int                      `json:"errors"`
	Details []domain.RecipientResult `json:"details"`
	Message string                   `json:"message,omitempty"`
}

type TemplateResponse struct {
	EventID    string `json:"event_id"`
	TemplateID string `json:"template_id"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		Title:        e.Title,
		Description:  e.Description,
		Location:     e.Location,
		StartsAt:     e.StartsAt.Format(time.RFC3339),
		EndsAt:       e.EndsAt.Format(time.RFC3339),
		Visibility:   string(e.Visibility),
		Capacity:     e.Capacity,
		Participants: e.Participants,
		Status:       string(e.Status),
		MeetingID:    e.MeetingID,
		TemplateID:   e.TemplateID,
		StartedAt:    formatTimePtr(e.StartedAt),
		EndedAt:      formatTimePtr(e.EndedAt),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	attendees := make([]AttendanceResponse, 0, len(d.Attendees))
	for _, a := range d.Attendees {
		attendees = append(attendees, ToAttendanceResponse(&a))
	}

	return EventDetailsResponse{
		Event:     ToEventResponse(&d.Event),
		FreeSpots: d.FreeSpots,
		Attendees: attendees,
	}
}

func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		EventID:         a.EventID,
		UserID:          a.UserID,
		JoinedAt:        a.JoinedAt.Format(time.RFC3339),
		LeftAt:          formatTimePtr(a.LeftAt),
		DurationMinutes: a.DurationMinutes,
		Present:         a.Present(),
	}
}

func ToCertificateResponse(c *domain.Certificate) CertificateResponse {
	return CertificateResponse{
		ID:          c.ID,
		EventID:     c.EventID,
		UserID:      c.UserID,
		IssuedAt:    c.IssuedAt.Format(time.RFC3339),
		Paid:        c.Paid,
		Price:       c.Price,
		DownloadRef: c.DownloadRef,
	}
}

func ToSendReportResponse(r *domain.SendReport) SendReportResponse {
	resp := SendReportResponse{
		Created: r.Created,
		Updated: r.Updated,
		Skipped: r.Skipped,
		Errors:  r.Errors,
		Details: r.Details,
	}
	if r.Empty() {
		resp.Message = "no eligible recipients"
	}
	return resp
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Name:           u.Name,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
