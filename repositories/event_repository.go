package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/velez94/scoringames-sub000/models"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.Event, error)
	ListDays(ctx context.Context, exec SQLExecutor, eventID string) ([]models.CompetitionDay, error)
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

func (r *postgresEventRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresEventRepository) GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.Event, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, created_at FROM events WHERE id = $1`

	var e models.Event
	err := executor.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *postgresEventRepository) ListDays(ctx context.Context, exec SQLExecutor, eventID string) ([]models.CompetitionDay, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, event_id, date, start_time FROM event_days WHERE event_id = $1 ORDER BY date`
	rows, err := executor.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]models.CompetitionDay, 0)
	for rows.Next() {
		var d models.CompetitionDay
		if err := rows.Scan(&d.ID, &d.EventID, &d.Date, &d.StartTime); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}
