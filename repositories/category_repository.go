package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/velez94/scoringames-sub000/models"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.Category, error)
	ListByEvent(ctx context.Context, exec SQLExecutor, eventID string) ([]models.Category, error)
}

type postgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) CategoryRepository {
	return &postgresCategoryRepository{db: db}
}

func (r *postgresCategoryRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func scanCategory(rowScanner interface{ Scan(...interface{}) error }) (*models.Category, error) {
	var c models.Category
	err := rowScanner.Scan(&c.ID, &c.EventID, &c.Name, &c.MaxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresCategoryRepository) GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.Category, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, event_id, name, max_participants FROM categories WHERE id = $1`
	return scanCategory(executor.QueryRowContext(ctx, query, id))
}

func (r *postgresCategoryRepository) ListByEvent(ctx context.Context, exec SQLExecutor, eventID string) ([]models.Category, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, event_id, name, max_participants FROM categories WHERE event_id = $1 ORDER BY name, id`
	rows, err := executor.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		c, errScan := scanCategory(rows)
		if errScan != nil {
			return nil, errScan
		}
		categories = append(categories, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
