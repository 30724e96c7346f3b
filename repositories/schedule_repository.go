package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/velez94/scoringames-sub000/models"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleRepository stores the schedule aggregate as one JSONB document
// per row. Generation and round advancement always replace the whole
// payload, matching the all-or-nothing lifecycle of the aggregate.
type ScheduleRepository interface {
	Create(ctx context.Context, exec SQLExecutor, schedule *models.Schedule) error
	GetByID(ctx context.Context, exec SQLExecutor, eventID, scheduleID string) (*models.Schedule, error)
	ListByEvent(ctx context.Context, exec SQLExecutor, eventID string) ([]*models.Schedule, error)
	Update(ctx context.Context, exec SQLExecutor, schedule *models.Schedule) error
	UnpublishAllByEvent(ctx context.Context, exec SQLExecutor, eventID string) error
	SetPublished(ctx context.Context, exec SQLExecutor, eventID, scheduleID string, published bool) error
	Delete(ctx context.Context, exec SQLExecutor, eventID, scheduleID string) error
}

type postgresScheduleRepository struct {
	db *sql.DB
}

func NewPostgresScheduleRepository(db *sql.DB) ScheduleRepository {
	return &postgresScheduleRepository{db: db}
}

func (r *postgresScheduleRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresScheduleRepository) Create(ctx context.Context, exec SQLExecutor, schedule *models.Schedule) error {
	executor := r.getExecutor(exec)
	payload, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule payload: %w", err)
	}

	query := `
		INSERT INTO schedules (id, event_id, payload, published, generated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = executor.ExecContext(ctx, query,
		schedule.ID, schedule.EventID, payload, schedule.Published, schedule.GeneratedAt,
	)
	return err
}

func (r *postgresScheduleRepository) scanSchedule(rowScanner interface{ Scan(...interface{}) error }) (*models.Schedule, error) {
	var payload []byte
	var published bool
	if err := rowScanner.Scan(&payload, &published); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	var schedule models.Schedule
	if err := json.Unmarshal(payload, &schedule); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schedule payload: %w", err)
	}
	// The column is authoritative: publish flips it without rewriting the
	// payload.
	schedule.Published = published
	return &schedule, nil
}

func (r *postgresScheduleRepository) GetByID(ctx context.Context, exec SQLExecutor, eventID, scheduleID string) (*models.Schedule, error) {
	executor := r.getExecutor(exec)
	query := `SELECT payload, published FROM schedules WHERE event_id = $1 AND id = $2`
	return r.scanSchedule(executor.QueryRowContext(ctx, query, eventID, scheduleID))
}

func (r *postgresScheduleRepository) ListByEvent(ctx context.Context, exec SQLExecutor, eventID string) ([]*models.Schedule, error) {
	executor := r.getExecutor(exec)
	query := `SELECT payload, published FROM schedules WHERE event_id = $1 ORDER BY generated_at DESC`
	rows, err := executor.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]*models.Schedule, 0)
	for rows.Next() {
		s, errScan := r.scanSchedule(rows)
		if errScan != nil {
			return nil, errScan
		}
		schedules = append(schedules, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *postgresScheduleRepository) Update(ctx context.Context, exec SQLExecutor, schedule *models.Schedule) error {
	executor := r.getExecutor(exec)
	payload, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule payload: %w", err)
	}

	query := `
		UPDATE schedules
		SET payload = $1, published = $2, generated_at = $3
		WHERE event_id = $4 AND id = $5`
	result, err := executor.ExecContext(ctx, query,
		payload, schedule.Published, schedule.GeneratedAt, schedule.EventID, schedule.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrScheduleNotFound)
}

func (r *postgresScheduleRepository) UnpublishAllByEvent(ctx context.Context, exec SQLExecutor, eventID string) error {
	executor := r.getExecutor(exec)
	query := `UPDATE schedules SET published = FALSE WHERE event_id = $1`
	_, err := executor.ExecContext(ctx, query, eventID)
	return err
}

func (r *postgresScheduleRepository) SetPublished(ctx context.Context, exec SQLExecutor, eventID, scheduleID string, published bool) error {
	executor := r.getExecutor(exec)
	query := `UPDATE schedules SET published = $1 WHERE event_id = $2 AND id = $3`
	result, err := executor.ExecContext(ctx, query, published, eventID, scheduleID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrScheduleNotFound)
}

func (r *postgresScheduleRepository) Delete(ctx context.Context, exec SQLExecutor, eventID, scheduleID string) error {
	executor := r.getExecutor(exec)
	query := `DELETE FROM schedules WHERE event_id = $1 AND id = $2`
	result, err := executor.ExecContext(ctx, query, eventID, scheduleID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrScheduleNotFound)
}
