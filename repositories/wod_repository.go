package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/velez94/scoringames-sub000/models"
)

var ErrWODNotFound = errors.New("wod not found")

type WODRepository interface {
	GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.WOD, error)
	ListByEvent(ctx context.Context, exec SQLExecutor, eventID string) ([]models.WOD, error)
}

type postgresWODRepository struct {
	db *sql.DB
}

func NewPostgresWODRepository(db *sql.DB) WODRepository {
	return &postgresWODRepository{db: db}
}

func (r *postgresWODRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func scanWOD(rowScanner interface{ Scan(...interface{}) error }) (*models.WOD, error) {
	var w models.WOD
	err := rowScanner.Scan(&w.ID, &w.EventID, &w.Name, pq.Array(&w.Movements), &w.TimeCapMinutes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWODNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *postgresWODRepository) GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.WOD, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, event_id, name, movements, time_cap_minutes FROM wods WHERE id = $1`
	return scanWOD(executor.QueryRowContext(ctx, query, id))
}

func (r *postgresWODRepository) ListByEvent(ctx context.Context, exec SQLExecutor, eventID string) ([]models.WOD, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, event_id, name, movements, time_cap_minutes FROM wods WHERE event_id = $1 ORDER BY name, id`
	rows, err := executor.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wods := make([]models.WOD, 0)
	for rows.Next() {
		w, errScan := scanWOD(rows)
		if errScan != nil {
			return nil, errScan
		}
		wods = append(wods, *w)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return wods, nil
}
