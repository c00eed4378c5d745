package domain

import "time"

type NotificationType string

const (
	NotificationEventJoined          NotificationType = "EVENT_JOINED"
	NotificationEventEnded           NotificationType = "EVENT_ENDED"
	NotificationCertificateAvailable NotificationType = "CERTIFICATE_AVAILABLE"
	NotificationOther                NotificationType = "OTHER"
)

// Notification is a persisted, user-owned message. Rows are append-only
// except for the read flag.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
