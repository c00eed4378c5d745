package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const certificateColumns = `id, event_id, user_id, issued_at, paid, price, download_ref`

type CertificateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCertificateRepo(db *dbpg.DB) *CertificateRepository {
	return &CertificateRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CertificateRepository) Create(ctx context.Context, c *domain.Certificate) error {
	query := `INSERT INTO certificates (id, event_id, user_id, issued_at, paid, price, download_ref)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.EventID, c.UserID, c.IssuedAt, c.Paid, c.Price, c.DownloadRef,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Unique (event_id, user_id): a concurrent send already created
			// this certificate.
			return fmt.Errorf("certificate already exists: %w", err)
		}
		return fmt.Errorf("insert certificate: %w", err)
	}

	return nil
}

func (r *CertificateRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + `
			  FROM certificates
			  WHERE event_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get certificate: %w", err)
	}

	var c domain.Certificate
	if err = row.Scan(&c.ID, &c.EventID, &c.UserID, &c.IssuedAt, &c.Paid, &c.Price, &c.DownloadRef); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("scan certificate: %w", err)
	}

	return &c, nil
}

func (r *CertificateRepository) Touch(ctx context.Context, eventID, userID string, issuedAt time.Time) error {
	query := `UPDATE certificates SET issued_at = $3 WHERE event_id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, userID, issuedAt)
	if err != nil {
		return fmt.Errorf("touch certificate: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("touch certificate rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCertificateNotFound
	}

	return nil
}

func (r *CertificateRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + `
			  FROM certificates
			  WHERE event_id = $1
			  ORDER BY issued_at DESC`

	return r.list(ctx, query, eventID)
}

func (r *CertificateRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + `
			  FROM certificates
			  WHERE user_id = $1
			  ORDER BY issued_at DESC`

	return r.list(ctx, query, userID)
}

func (r *CertificateRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Certificate, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()

	var res []*domain.Certificate
	for rows.Next() {
		var c domain.Certificate
		if err = rows.Scan(&c.ID, &c.EventID, &c.UserID, &c.IssuedAt, &c.Paid, &c.Price, &c.DownloadRef); err != nil {
			return nil, fmt.Errorf("scan certificate: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CertificateRepository) HolderIDs(ctx context.Context, eventID string) ([]string, error) {
	query := `SELECT user_id FROM certificates WHERE event_id = $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list certificate holders: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan holder id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}
