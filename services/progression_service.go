package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/velez94/scoringames-sub000/live"
	"github.com/velez94/scoringames-sub000/metrics"
	"github.com/velez94/scoringames-sub000/models"
	"github.com/velez94/scoringames-sub000/repositories"
	"github.com/velez94/scoringames-sub000/scheduling"
)

// ProgressionService advances VERSUS brackets: it accepts a complete
// round of results, computes the survivors and appends the next round's
// sessions to the schedule.
type ProgressionService interface {
	SubmitRound(ctx context.Context, eventID, scheduleID, categoryID string, filter int, results []models.MatchResult) (*models.Schedule, error)
}

type progressionService struct {
	db              *sql.DB
	roster          RosterService
	scheduleRepo    repositories.ScheduleRepository
	matchResultRepo repositories.MatchResultRepository
	hub             *live.Hub
	logger          *slog.Logger
	now             func() time.Time

	// Per-bracket locks serialize concurrent submissions for the same
	// category so two referees cannot advance the same round twice.
	bracketMu sync.Mutex
	brackets  map[string]*sync.Mutex
}

func NewProgressionService(
	db *sql.DB,
	roster RosterService,
	scheduleRepo repositories.ScheduleRepository,
	matchResultRepo repositories.MatchResultRepository,
	hub *live.Hub,
	logger *slog.Logger,
) ProgressionService {
	return &progressionService{
		db:              db,
		roster:          roster,
		scheduleRepo:    scheduleRepo,
		matchResultRepo: matchResultRepo,
		hub:             hub,
		logger:          logger,
		now:             time.Now,
		brackets:        make(map[string]*sync.Mutex),
	}
}

func (s *progressionService) bracketLock(eventID, scheduleID, categoryID string) *sync.Mutex {
	key := eventID + "/" + scheduleID + "/" + categoryID
	s.bracketMu.Lock()
	defer s.bracketMu.Unlock()
	mu, ok := s.brackets[key]
	if !ok {
		mu = &sync.Mutex{}
		s.brackets[key] = mu
	}
	return mu
}

func (s *progressionService) SubmitRound(ctx context.Context, eventID, scheduleID, categoryID string, filter int, results []models.MatchResult) (*models.Schedule, error) {
	mu := s.bracketLock(eventID, scheduleID, categoryID)
	mu.Lock()
	defer mu.Unlock()

	schedule, err := s.scheduleRepo.GetByID(ctx, nil, eventID, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule.Config.CompetitionMode != models.ModeVersus {
		return nil, ErrNotVersusSchedule
	}

	history, err := s.matchResultRepo.ListByCategory(ctx, nil, scheduleID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match history: %w", err)
	}

	if scheduling.RoundRecorded(history, filter) {
		if scheduling.SameResults(history, filter, results) {
			// Identical resubmission, e.g. a retried request. Nothing to do.
			return schedule, nil
		}
		return nil, fmt.Errorf("%w: category %s round %d", scheduling.ErrImmutableRound, categoryID, filter)
	}

	if err := scheduling.ValidateRoundSubmission(schedule, categoryID, filter, results); err != nil {
		return nil, err
	}

	submittedAt := s.now()
	for i := range results {
		results[i].ScheduleID = scheduleID
		results[i].CategoryID = categoryID
		results[i].SubmittedAt = submittedAt
	}

	if filter < schedule.Config.RoundsFor(categoryID) {
		if err := s.appendNextRound(ctx, schedule, categoryID, filter, results); err != nil {
			return nil, err
		}
	}

	if err := s.persist(ctx, schedule, results); err != nil {
		return nil, err
	}

	metrics.RoundsAdvanced.Inc()
	s.logger.Info("round advanced",
		"event_id", eventID, "schedule_id", scheduleID,
		"category_id", categoryID, "filter", filter, "results", len(results))

	if s.hub != nil {
		s.hub.BroadcastToRoom(live.EventRoom(eventID), live.EventRoundAdvanced, schedule)
	}
	return schedule, nil
}

// appendNextRound builds the sessions for round filter+1 from the round's
// survivors and packs them onto the schedule's existing days.
func (s *progressionService) appendNextRound(ctx context.Context, schedule *models.Schedule, categoryID string, filter int, results []models.MatchResult) error {
	survivorIDs := scheduling.Survivors(schedule, schedule.Config, categoryID, filter, results)

	roster, err := s.roster.LoadRoster(ctx, schedule.EventID)
	if err != nil {
		return err
	}

	var category models.Category
	found := false
	for _, c := range roster.Categories {
		if c.ID == categoryID {
			category = c
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("category %s: %w", categoryID, repositories.ErrCategoryNotFound)
	}

	byID := make(map[string]models.Athlete, len(roster.Athletes))
	for _, a := range roster.Athletes {
		byID[a.ID] = a
	}
	survivors := make([]models.Athlete, 0, len(survivorIDs))
	for _, id := range survivorIDs {
		if a, ok := byID[id]; ok {
			survivors = append(survivors, a)
		}
	}

	sessions, err := scheduling.NextRoundSessions(schedule.Config, category, survivors, filter, roster)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}

	planner := scheduling.NewDayPlanner(schedule.Config)
	schedule.Days = planner.AppendSessions(schedule.Days, sessions, s.now())
	return nil
}

// persist writes the round's results and the updated schedule atomically.
func (s *progressionService) persist(ctx context.Context, schedule *models.Schedule, results []models.MatchResult) (err error) {
	tx, beginErr := s.db.BeginTx(ctx, nil)
	if beginErr != nil {
		return fmt.Errorf("failed to begin transaction: %w", beginErr)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error("rollback failed", "error", rbErr, "cause", err)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	if err = s.matchResultRepo.BatchCreate(ctx, tx, results); err != nil {
		return err
	}
	err = s.scheduleRepo.Update(ctx, tx, schedule)
	return err
}
