package ports

import (
	"context"

	"github.com/teamconnect/teamconnect/internal/domain"
)

type AttendanceRepo interface {
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Attendance, error)
	// Open creates the attendance row and increments the event's participant
	// counter, failing with domain.ErrEventFull when capacity is reached.
	Open(ctx context.Context, eventID, userID string) (*domain.Attendance, error)
	// Reopen starts a new interval on an existing row (joined_at = now,
	// left_at cleared) with the same capacity-guarded counter increment.
	Reopen(ctx context.Context, eventID, userID string) (*domain.Attendance, error)
	// Close ends the open interval: adds the elapsed whole minutes to the
	// cumulative duration, sets left_at and decrements the counter.
	Close(ctx context.Context, eventID, userID string) (*domain.Attendance, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendance, error)
	ListPresent(ctx context.Context, eventID string) ([]*domain.Attendance, error)
	// FilterRegistered returns the subset of userIDs registered for the
	// event, preserving database order. Unknown ids are dropped silently.
	FilterRegistered(ctx context.Context, eventID string, userIDs []string) ([]string, error)
}
