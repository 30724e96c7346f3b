package services

import (
	"context"
	"fmt"

	"github.com/velez94/scoringames-sub000/models"
	"github.com/velez94/scoringames-sub000/repositories"
	"github.com/velez94/scoringames-sub000/scheduling"
)

// StandingsService derives live bracket standings from the recorded
// match history. Standings are never stored; every read replays the
// history, so they cannot drift from the results.
type StandingsService interface {
	ComputeStandings(ctx context.Context, eventID, scheduleID, categoryID string) ([]models.AthleteStanding, error)
}

type standingsService struct {
	scheduleRepo    repositories.ScheduleRepository
	matchResultRepo repositories.MatchResultRepository
}

func NewStandingsService(
	scheduleRepo repositories.ScheduleRepository,
	matchResultRepo repositories.MatchResultRepository,
) StandingsService {
	return &standingsService{
		scheduleRepo:    scheduleRepo,
		matchResultRepo: matchResultRepo,
	}
}

func (s *standingsService) ComputeStandings(ctx context.Context, eventID, scheduleID, categoryID string) ([]models.AthleteStanding, error) {
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

	return scheduling.ComputeStandings(history), nil
}
