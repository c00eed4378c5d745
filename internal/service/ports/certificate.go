package ports

import (
	"context"
	"time"

	"github.com/teamconnect/teamconnect/internal/domain"
)

type CertificateRepo interface {
	Create(ctx context.Context, c *domain.Certificate) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Certificate, error)
	// Touch refreshes issued_at on an existing certificate (reissue).
	Touch(ctx context.Context, eventID, userID string, issuedAt time.Time) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Certificate, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Certificate, error)
	// HolderIDs returns the ids of users already holding a certificate for
	// the event.
	HolderIDs(ctx context.Context, eventID string) ([]string, error)
}
