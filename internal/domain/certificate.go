package domain

import "time"

type Certificate struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	IssuedAt    time.Time `json:"issued_at"`
	Paid        bool      `json:"paid"`
	Price       int       `json:"price"` // minor units, 0 for free certificates
	DownloadRef string    `json:"download_ref"`
}

// SendTarget selects certificate recipients: every eligible attendee, or an
// explicit id set.
type SendTarget struct {
	All     bool
	UserIDs []string
}

type SendOutcome string

const (
	OutcomeCreated SendOutcome = "created"
	OutcomeUpdated SendOutcome = "updated"
	OutcomeSkipped SendOutcome = "skipped"
	OutcomeError   SendOutcome = "error"
)

type RecipientResult struct {
	UserID  string      `json:"user_id"`
	Outcome SendOutcome `json:"outcome"`
	Error   string      `json:"error,omitempty"`
}

type SendReport struct {
	Created int               `json:"created"`
	Updated int               `json:"updated"`
	Skipped int               `json:"skipped"`
	Errors  int               `json:"errors"`
	Details []RecipientResult `json:"details"`
}

func (r *SendReport) Empty() bool {
	return len(r.Details) == 0
}
