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

const attendanceColumns = `event_id, user_id, joined_at, left_at, duration_minutes`

type AttendanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendanceRepo(db *dbpg.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AttendanceRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + `
			  FROM attendance
			  WHERE event_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}

	var a domain.Attendance
	if err = row.Scan(&a.EventID, &a.UserID, &a.JoinedAt, &a.LeftAt, &a.DurationMinutes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("scan attendance: %w", err)
	}

	return &a, nil
}

func (r *AttendanceRepository) Open(ctx context.Context, eventID, userID string) (*domain.Attendance, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = reserveSpot(ctx, tx, eventID); err != nil {
		return nil, err
	}

	joined := time.Now().UTC()
	query := `INSERT INTO attendance (event_id, user_id, joined_at, duration_minutes)
			  VALUES ($1, $2, $3, 0)`
	if _, err = tx.ExecContext(ctx, query, eventID, userID, joined); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost a race with another open of the same pair; the caller
			// re-reads and toggles accordingly.
			return nil, fmt.Errorf("attendance already open: %w", err)
		}
		return nil, fmt.Errorf("insert attendance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &domain.Attendance{
		EventID:  eventID,
		UserID:   userID,
		JoinedAt: joined,
	}, nil
}

func (r *AttendanceRepository) Reopen(ctx context.Context, eventID, userID string) (*domain.Attendance, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = reserveSpot(ctx, tx, eventID); err != nil {
		return nil, err
	}

	query := `UPDATE attendance
			  SET joined_at = now(), left_at = NULL
			  WHERE event_id = $1 AND user_id = $2 AND left_at IS NOT NULL
			  RETURNING ` + attendanceColumns

	var a domain.Attendance
	err = tx.QueryRowContext(ctx, query, eventID, userID).
		Scan(&a.EventID, &a.UserID, &a.JoinedAt, &a.LeftAt, &a.DurationMinutes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("reopen attendance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &a, nil
}

func (r *AttendanceRepository) Close(ctx context.Context, eventID, userID string) (*domain.Attendance, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Whole elapsed minutes accumulate into the running total; the guard on
	// left_at keeps the duration monotonic under concurrent closes.
	query := `UPDATE attendance
			  SET duration_minutes = duration_minutes
					+ GREATEST(0, FLOOR(EXTRACT(EPOCH FROM (now() - joined_at)) / 60))::int,
			      left_at = now()
			  WHERE event_id = $1 AND user_id = $2 AND left_at IS NULL
			  RETURNING ` + attendanceColumns

	var a domain.Attendance
	err = tx.QueryRowContext(ctx, query, eventID, userID).
		Scan(&a.EventID, &a.UserID, &a.JoinedAt, &a.LeftAt, &a.DurationMinutes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.diagnoseClose(ctx, tx, eventID, userID)
		}
		return nil, fmt.Errorf("close attendance: %w", err)
	}

	release := `UPDATE events SET participants = GREATEST(participants - 1, 0), updated_at = now()
				WHERE id = $1`
	if _, err = tx.ExecContext(ctx, release, eventID); err != nil {
		return nil, fmt.Errorf("release spot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &a, nil
}

func (r *AttendanceRepository) diagnoseClose(ctx context.Context, tx *sql.Tx, eventID, userID string) error {
	var exists bool
	check := `SELECT EXISTS (SELECT 1 FROM attendance WHERE event_id = $1 AND user_id = $2)`
	if err := tx.QueryRowContext(ctx, check, eventID, userID).Scan(&exists); err != nil {
		return fmt.Errorf("check attendance: %w", err)
	}
	if exists {
		return domain.ErrAlreadyLeft
	}
	return domain.ErrAttendanceNotFound
}

func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + `
			  FROM attendance
			  WHERE event_id = $1
			  ORDER BY joined_at`

	return r.list(ctx, query, eventID)
}

func (r *AttendanceRepository) ListPresent(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + `
			  FROM attendance
			  WHERE event_id = $1 AND left_at IS NULL
			  ORDER BY joined_at`

	return r.list(ctx, query, eventID)
}

func (r *AttendanceRepository) FilterRegistered(ctx context.Context, eventID string, userIDs []string) ([]string, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := `SELECT user_id FROM attendance
			  WHERE event_id = $1 AND user_id = ANY($2)
			  ORDER BY joined_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("filter registered: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan registered id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

func (r *AttendanceRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Attendance, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var res []*domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		if err = rows.Scan(&a.EventID, &a.UserID, &a.JoinedAt, &a.LeftAt, &a.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

// reserveSpot locks the event row, enforces the capacity cap and increments
// the live participant counter.
func reserveSpot(ctx context.Context, tx *sql.Tx, eventID string) error {
	var capacity *int
	var participants int
	lock := `SELECT capacity, participants FROM events WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lock, eventID).Scan(&capacity, &participants); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if capacity != nil && participants >= *capacity {
		return domain.ErrEventFull
	}

	take := `UPDATE events SET participants = participants + 1, updated_at = now() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, take, eventID); err != nil {
		return fmt.Errorf("take spot: %w", err)
	}

	return nil
}
