package scheduling

import (
	"fmt"

	"github.com/velez94/scoringames-sub000/models"
)

// BuildParams carries everything a mode strategy needs to partition one
// category's athletes for one workout. Filter is the bracket round number
// and is only meaningful for VERSUS.
type BuildParams struct {
	Category models.Category
	Athletes []models.Athlete
	WOD      models.WOD
	Filter   int
	Config   models.ScheduleConfig
}

// SessionStrategy builds the sessions of one (category, workout) pair.
// Strategies are stateless and pure: a category with zero athletes yields
// no sessions, never an error, and no session ever has zero athletes.
type SessionStrategy interface {
	Name() string
	BuildSessions(params BuildParams) ([]models.Session, error)
}

// ForMode resolves the strategy for a competition mode.
func ForMode(mode models.CompetitionMode) (SessionStrategy, error) {
	switch mode {
	case models.ModeHeats:
		return NewHeatsStrategy(), nil
	case models.ModeVersus:
		return NewVersusStrategy(), nil
	case models.ModeSimultaneous:
		return NewSimultaneousStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// heatDuration is the time budget of a single heat: the workout's time
// cap when it has one, the configured default otherwise.
func heatDuration(wod models.WOD, cfg models.ScheduleConfig) int {
	if wod.TimeCapMinutes > 0 {
		return wod.TimeCapMinutes
	}
	return cfg.HeatDurationMinutes
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
