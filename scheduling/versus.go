package scheduling

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/velez94/scoringames-sub000/models"
)

// VersusStrategy builds one single-elimination bracket round as a session
// of 1v1 matches. Pairing order is registration order, no seeding; an odd
// athlete count produces exactly one bye assigned to the last unpaired
// athlete.
type VersusStrategy struct{}

func NewVersusStrategy() SessionStrategy {
	return &VersusStrategy{}
}

func (s *VersusStrategy) Name() string {
	return "Versus"
}

func (s *VersusStrategy) BuildSessions(params BuildParams) ([]models.Session, error) {
	athletes := params.Athletes
	if len(athletes) == 0 {
		return nil, nil
	}
	if params.Filter < 1 {
		return nil, fmt.Errorf("versus round number must be >= 1, got %d", params.Filter)
	}
	cfg := params.Config

	matches := make([]models.Match, 0, ceilDiv(len(athletes), 2))
	contested := 0
	for i := 0; i+1 < len(athletes); i += 2 {
		a2 := athletes[i+1].ID
		matches = append(matches, models.Match{
			ID:           uuid.NewString(),
			Athlete1:     athletes[i].ID,
			Athlete2:     &a2,
			FilterNumber: params.Filter,
		})
		contested++
	}
	if len(athletes)%2 == 1 {
		matches = append(matches, models.Match{
			ID:           uuid.NewString(),
			Athlete1:     athletes[len(athletes)-1].ID,
			FilterNumber: params.Filter,
		})
	}

	// Byes take no floor time; only contested matches count toward the
	// session duration.
	duration := cfg.MatchDurationMinutes * ceilDiv(contested, cfg.ConcurrentMatches)
	filter := params.Filter

	session := models.Session{
		ID:           uuid.NewString(),
		CategoryID:   params.Category.ID,
		WODID:        params.WOD.ID,
		Mode:         models.ModeVersus,
		Duration:     duration,
		FilterNumber: &filter,
		Matches:      matches,
	}
	return []models.Session{session}, nil
}
