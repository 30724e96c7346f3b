package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/velez94/scoringames-sub000/models"
)

// Roster is the read-only event input owned by external collaborators:
// who competes, in what, and on which days.
type Roster struct {
	Categories []models.Category
	Athletes   []models.Athlete
	WODs       []models.WOD
	Days       []models.CompetitionDay
}

// AthletesOf returns a category's athletes in registration order.
func (r Roster) AthletesOf(categoryID string) []models.Athlete {
	var out []models.Athlete
	for _, a := range r.Athletes {
		if a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out
}

func (r Roster) WODByID(id string) (models.WOD, bool) {
	for _, w := range r.WODs {
		if w.ID == id {
			return w, true
		}
	}
	return models.WOD{}, false
}

// BuildSchedule generates the complete timetable for an event: every
// (category x workout) combination under the configured mode, packed into
// days by the capacity planner. Pure: no side effects beyond the returned
// aggregate. Categories with zero athletes are skipped silently; for
// VERSUS only round 1 is emitted, later rounds are appended as results
// arrive.
func BuildSchedule(eventID string, cfg models.ScheduleConfig, roster Roster, now time.Time) (*models.Schedule, error) {
	cfg = cfg.Normalized()

	strategy, err := ForMode(cfg.CompetitionMode)
	if err != nil {
		return nil, err
	}
	if cfg.CompetitionMode == models.ModeVersus {
		if err := validateVersusConfig(cfg, roster); err != nil {
			return nil, err
		}
	}

	var sessions []models.Session
	for _, category := range roster.Categories {
		athletes := roster.AthletesOf(category.ID)
		if len(athletes) == 0 {
			continue
		}

		switch cfg.CompetitionMode {
		case models.ModeVersus:
			if len(athletes) < 2 {
				// A one-athlete bracket has nothing to play.
				continue
			}
			wodID := cfg.WODForRound(category.ID, 1)
			wod, _ := roster.WODByID(wodID)
			built, err := strategy.BuildSessions(BuildParams{
				Category: category,
				Athletes: athletes,
				WOD:      wod,
				Filter:   1,
				Config:   cfg,
			})
			if err != nil {
				return nil, err
			}
			sessions = append(sessions, built...)
		default:
			for _, wod := range roster.WODs {
				built, err := strategy.BuildSessions(BuildParams{
					Category: category,
					Athletes: athletes,
					WOD:      wod,
					Config:   cfg,
				})
				if err != nil {
					return nil, err
				}
				sessions = append(sessions, built...)
			}
		}
	}

	planner := NewDayPlanner(cfg)
	days := planner.PlaceSessions(roster.Days, sessions, now)

	return &models.Schedule{
		ID:          uuid.NewString(),
		EventID:     eventID,
		Config:      cfg,
		GeneratedAt: now,
		Published:   false,
		Days:        days,
	}, nil
}

// validateVersusConfig checks every configured round of every competing
// category before a single session is built, so generation either
// produces the whole schedule or nothing.
func validateVersusConfig(cfg models.ScheduleConfig, roster Roster) error {
	for _, category := range roster.Categories {
		if len(roster.AthletesOf(category.ID)) < 2 {
			continue
		}
		rounds := cfg.RoundsFor(category.ID)
		if rounds <= 0 {
			return fmt.Errorf("%w: category %s", ErrInvalidRoundCount, category.ID)
		}
		for round := 1; round <= rounds; round++ {
			wodID := cfg.WODForRound(category.ID, round)
			if wodID == "" {
				return fmt.Errorf("%w: category %s round %d", ErrMissingWODMapping, category.ID, round)
			}
			if _, ok := roster.WODByID(wodID); !ok {
				return fmt.Errorf("%w: category %s round %d wod %s", ErrWODNotFound, category.ID, round, wodID)
			}
		}
	}
	return nil
}
