package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/teamconnect/teamconnect/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, owner_id, title, description, location, starts_at, ends_at,
		visibility, pin, capacity, participants, status, meeting_id, template_id,
		started_at, ended_at, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type eventScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row eventScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Title, &e.Description, &e.Location,
		&e.StartsAt, &e.EndsAt, &e.Visibility, &e.PIN, &e.Capacity,
		&e.Participants, &e.Status, &e.MeetingID, &e.TemplateID,
		&e.StartedAt, &e.EndedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, owner_id, title, description, location, starts_at, ends_at,
				visibility, pin, capacity, participants, status, template_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $12, $13, $13)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.OwnerID, e.Title, e.Description, e.Location,
		e.StartsAt, e.EndsAt, e.Visibility, e.PIN, e.Capacity,
		e.Status, e.TemplateID, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	e, err := r.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	details := &domain.EventDetails{Event: *e}
	if e.Capacity != nil {
		free := *e.Capacity - e.Participants
		if free < 0 {
			free = 0
		}
		details.FreeSpots = &free
	}

	return details, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, location = $4, starts_at = $5, ends_at = $6,
			      visibility = $7, pin = $8, capacity = $9, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.StartsAt, e.EndsAt,
		e.Visibility, e.PIN, e.Capacity,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) MarkStarted(ctx context.Context, eventID, meetingID string) (*domain.Event, error) {
	// Guarded on status: re-applying while active keeps the original meeting
	// id and started_at, an ended event never matches.
	query := `UPDATE events
			  SET status = $2,
			      meeting_id = COALESCE(meeting_id, $3),
			      started_at = COALESCE(started_at, now()),
			      updated_at = now()
			  WHERE id = $1 AND status IN ($4, $2)
			  RETURNING ` + eventColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		eventID, domain.EventStatusActive, meetingID, domain.EventStatusScheduled,
	)
	if err != nil {
		return nil, fmt.Errorf("start meeting: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.diagnoseTransition(ctx, eventID, domain.ErrMeetingAlreadyEnded)
		}
		return nil, fmt.Errorf("scan started event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) MarkEnded(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `UPDATE events
			  SET status = $2, meeting_id = NULL, ended_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING ` + eventColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		eventID, domain.EventStatusEnded, domain.EventStatusActive,
	)
	if err != nil {
		return nil, fmt.Errorf("end meeting: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.diagnoseTransition(ctx, eventID, domain.ErrMeetingNotActive)
		}
		return nil, fmt.Errorf("scan ended event: %w", err)
	}

	return e, nil
}

// diagnoseTransition tells a missing event apart from a guard mismatch after
// a zero-row transition update.
func (r *EventRepository) diagnoseTransition(ctx context.Context, eventID string, stateErr error) error {
	var status string
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM events WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("check event status: %w", err)
	}
	if err := row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("scan event status: %w", err)
	}
	return stateErr
}

func (r *EventRepository) EndOverdue(ctx context.Context) ([]*domain.Event, error) {
	query := `UPDATE events
			  SET status = $2, meeting_id = NULL, ended_at = now(), updated_at = now()
			  WHERE status = $1 AND ends_at < now()
			  RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.EventStatusActive, domain.EventStatusEnded,
	)
	if err != nil {
		return nil, fmt.Errorf("end overdue events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan overdue event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) SetTemplate(ctx context.Context, eventID, templateID string) error {
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy,
		`UPDATE events SET template_id = $2, updated_at = now() WHERE id = $1`,
		eventID, templateID,
	)
	if err != nil {
		return fmt.Errorf("set template: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set template rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
