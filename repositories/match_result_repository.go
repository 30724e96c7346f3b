package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/velez94/scoringames-sub000/models"
)

// MatchResultRepository is the append-only match history brackets and
// standings are replayed from. Results are never updated or deleted.
type MatchResultRepository interface {
	BatchCreate(ctx context.Context, exec SQLExecutor, results []models.MatchResult) error
	ListByCategory(ctx context.Context, exec SQLExecutor, scheduleID, categoryID string) ([]models.MatchResult, error)
}

type postgresMatchResultRepository struct {
	db *sql.DB
}

func NewPostgresMatchResultRepository(db *sql.DB) MatchResultRepository {
	return &postgresMatchResultRepository{db: db}
}

func (r *postgresMatchResultRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchResultRepository) BatchCreate(ctx context.Context, exec SQLExecutor, results []models.MatchResult) error {
	if len(results) == 0 {
		return nil
	}
	executor := r.getExecutor(exec)

	stmt, err := executor.PrepareContext(ctx, `
		INSERT INTO match_results
		    (schedule_id, category_id, match_id, winner_id, loser_id, filter_number, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return fmt.Errorf("BatchCreate failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, res := range results {
		if res.SubmittedAt.IsZero() {
			res.SubmittedAt = time.Now()
		}
		_, err = stmt.ExecContext(ctx,
			res.ScheduleID, res.CategoryID, res.MatchID, res.WinnerID,
			res.LoserID, res.FilterNumber, res.SubmittedAt,
		)
		if err != nil {
			return fmt.Errorf("BatchCreate failed for match %s: %w", res.MatchID, err)
		}
	}
	return nil
}

func (r *postgresMatchResultRepository) ListByCategory(ctx context.Context, exec SQLExecutor, scheduleID, categoryID string) ([]models.MatchResult, error) {
	executor := r.getExecutor(exec)
	query := `
		SELECT id, schedule_id, category_id, match_id, winner_id, loser_id, filter_number, submitted_at
		FROM match_results
		WHERE schedule_id = $1 AND category_id = $2
		ORDER BY id`
	rows, err := executor.QueryContext(ctx, query, scheduleID, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.MatchResult, 0)
	for rows.Next() {
		var res models.MatchResult
		err := rows.Scan(&res.ID, &res.ScheduleID, &res.CategoryID, &res.MatchID,
			&res.WinnerID, &res.LoserID, &res.FilterNumber, &res.SubmittedAt)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
