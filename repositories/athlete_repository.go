package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/velez94/scoringames-sub000/models"
)

var ErrAthleteNotFound = errors.New("athlete not found")

// AthleteRepository reads the athlete roster. Rows are written by the
// back office; this service only consumes them, in registration order.
type AthleteRepository interface {
	GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.Athlete, error)
	ListByEvent(ctx context.Context, exec SQLExecutor, eventID string) ([]models.Athlete, error)
	ListByCategory(ctx context.Context, exec SQLExecutor, categoryID string) ([]models.Athlete, error)
}

type postgresAthleteRepository struct {
	db *sql.DB
}

func NewPostgresAthleteRepository(db *sql.DB) AthleteRepository {
	return &postgresAthleteRepository{db: db}
}

func (r *postgresAthleteRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const athleteColumns = `id, first_name, last_name, alias, category_id, event_id, created_at`

func scanAthlete(rowScanner interface{ Scan(...interface{}) error }) (*models.Athlete, error) {
	var a models.Athlete
	err := rowScanner.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Alias, &a.CategoryID, &a.EventID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresAthleteRepository) GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.Athlete, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + athleteColumns + ` FROM athletes WHERE id = $1`
	return scanAthlete(executor.QueryRowContext(ctx, query, id))
}

func (r *postgresAthleteRepository) ListByEvent(ctx context.Context, exec SQLExecutor, eventID string) ([]models.Athlete, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + athleteColumns + ` FROM athletes WHERE event_id = $1 ORDER BY created_at, id`
	return r.list(ctx, executor, query, eventID)
}

func (r *postgresAthleteRepository) ListByCategory(ctx context.Context, exec SQLExecutor, categoryID string) ([]models.Athlete, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + athleteColumns + ` FROM athletes WHERE category_id = $1 ORDER BY created_at, id`
	return r.list(ctx, executor, query, categoryID)
}

func (r *postgresAthleteRepository) list(ctx context.Context, executor SQLExecutor, query string, arg interface{}) ([]models.Athlete, error) {
	rows, err := executor.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	athletes := make([]models.Athlete, 0)
	for rows.Next() {
		a, errScan := scanAthlete(rows)
		if errScan != nil {
			return nil, errScan
		}
		athletes = append(athletes, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return athletes, nil
}
