package domain

import "time"

type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusActive    EventStatus = "active"
	EventStatusEnded     EventStatus = "ended"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type Event struct {
	ID           string      `json:"id"`
	OwnerID      string      `json:"owner_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Location     string      `json:"location"`
	StartsAt     time.Time   `json:"starts_at"`
	EndsAt       time.Time   `json:"ends_at"`
	Visibility   Visibility  `json:"visibility"`
	PIN          *string     `json:"-"`
	Capacity     *int        `json:"capacity"` // nil = unlimited
	Participants int         `json:"participants"`
	Status       EventStatus `json:"status"`
	MeetingID    *string     `json:"meeting_id"` // set only while active
	TemplateID   *string     `json:"template_id"`
	StartedAt    *time.Time  `json:"started_at"`
	EndedAt      *time.Time  `json:"ended_at"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type EventDetails struct {
	Event     Event        `json:"event"`
	FreeSpots *int         `json:"free_spots"` // nil when capacity is unlimited
	Attendees []Attendance `json:"attendees"`
}

type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Visibility  Visibility
	PIN         *string
	Capacity    *int
}

type UpdateEventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Visibility  Visibility
	PIN         *string
	Capacity    *int
}
