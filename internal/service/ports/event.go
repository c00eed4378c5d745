package ports

import (
	"context"

	"github.com/teamconnect/teamconnect/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	// MarkStarted moves a scheduled event to active. Re-invocation while
	// already active is a no-op success; an ended event yields
	// domain.ErrMeetingAlreadyEnded.
	MarkStarted(ctx context.Context, eventID, meetingID string) (*domain.Event, error)
	// MarkEnded moves an active event to ended, guarded on current status so
	// concurrent callers transition at most once. A non-active event yields
	// domain.ErrMeetingNotActive.
	MarkEnded(ctx context.Context, eventID string) (*domain.Event, error)
	// EndOverdue transitions every active event whose scheduled end has
	// passed and returns the transitioned rows.
	EndOverdue(ctx context.Context) ([]*domain.Event, error)
	SetTemplate(ctx context.Context, eventID, templateID string) error
}
