package domain

import "time"

// Attendance is the per-(event, user) presence record. A NULL LeftAt means
// the user is currently present; DurationMinutes accumulates the lengths of
// all closed intervals and never decreases.
type Attendance struct {
	EventID         string     `json:"event_id"`
	UserID          string     `json:"user_id"`
	JoinedAt        time.Time  `json:"joined_at"`
	LeftAt          *time.Time `json:"left_at"`
	DurationMinutes int        `json:"duration_minutes"`
}

func (a *Attendance) Present() bool {
	return a.LeftAt == nil
}

// AttendanceAction reports which side of the join/leave toggle a
// record-attendance call took.
type AttendanceAction string

const (
	AttendanceJoined   AttendanceAction = "joined"
	AttendanceLeft     AttendanceAction = "left"
	AttendanceRejoined AttendanceAction = "rejoined"
)
