package ports

import (
	"context"

	"github.com/teamconnect/teamconnect/internal/domain"
)

// PushNotifier forwards persisted notifications to the user's push channel.
// Delivery is best-effort; implementations log failures and never return them.
type PushNotifier interface {
	NotifyEventJoined(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyMeetingEnded(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyEventEnded(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyCertificateIssued(ctx context.Context, user *domain.User, event *domain.Event, reissued bool)
}
