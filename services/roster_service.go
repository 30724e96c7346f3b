package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/velez94/scoringames-sub000/repositories"
	"github.com/velez94/scoringames-sub000/scheduling"
)

// RosterService loads everything the scheduler needs to know about an
// event in one call.
type RosterService interface {
	LoadRoster(ctx context.Context, eventID string) (scheduling.Roster, error)
}

type rosterService struct {
	eventRepo    repositories.EventRepository
	categoryRepo repositories.CategoryRepository
	athleteRepo  repositories.AthleteRepository
	wodRepo      repositories.WODRepository
}

func NewRosterService(
	eventRepo repositories.EventRepository,
	categoryRepo repositories.CategoryRepository,
	athleteRepo repositories.AthleteRepository,
	wodRepo repositories.WODRepository,
) RosterService {
	return &rosterService{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		athleteRepo:  athleteRepo,
		wodRepo:      wodRepo,
	}
}

// LoadRoster fans the four independent reads out concurrently. The event
// lookup doubles as the existence check: an unknown event fails the whole
// group with ErrEventNotFound.
func (s *rosterService) LoadRoster(ctx context.Context, eventID string) (scheduling.Roster, error) {
	var roster scheduling.Roster

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := s.eventRepo.GetByID(gCtx, nil, eventID); err != nil {
			return fmt.Errorf("failed to load event %s: %w", eventID, err)
		}
		return nil
	})

	g.Go(func() error {
		categories, err := s.categoryRepo.ListByEvent(gCtx, nil, eventID)
		if err != nil {
			return fmt.Errorf("failed to load categories for event %s: %w", eventID, err)
		}
		roster.Categories = categories
		return nil
	})

	g.Go(func() error {
		athletes, err := s.athleteRepo.ListByEvent(gCtx, nil, eventID)
		if err != nil {
			return fmt.Errorf("failed to load athletes for event %s: %w", eventID, err)
		}
		roster.Athletes = athletes
		return nil
	})

	g.Go(func() error {
		wods, err := s.wodRepo.ListByEvent(gCtx, nil, eventID)
		if err != nil {
			return fmt.Errorf("failed to load wods for event %s: %w", eventID, err)
		}
		roster.WODs = wods
		return nil
	})

	g.Go(func() error {
		days, err := s.eventRepo.ListDays(gCtx, nil, eventID)
		if err != nil {
			return fmt.Errorf("failed to load competition days for event %s: %w", eventID, err)
		}
		roster.Days = days
		return nil
	})

	if err := g.Wait(); err != nil {
		return scheduling.Roster{}, err
	}
	return roster, nil
}
