package scheduling

import (
	"github.com/google/uuid"
	"github.com/velez94/scoringames-sub000/models"
)

// SimultaneousStrategy puts the whole category on the floor at once: one
// session, one heat, duration bounded by the workout time cap alone.
type SimultaneousStrategy struct{}

func NewSimultaneousStrategy() SessionStrategy {
	return &SimultaneousStrategy{}
}

func (s *SimultaneousStrategy) Name() string {
	return "Simultaneous"
}

func (s *SimultaneousStrategy) BuildSessions(params BuildParams) ([]models.Session, error) {
	athletes := params.Athletes
	if len(athletes) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(athletes))
	for _, a := range athletes {
		ids = append(ids, a.ID)
	}
	one := 1

	session := models.Session{
		ID:            uuid.NewString(),
		CategoryID:    params.Category.ID,
		WODID:         params.WOD.ID,
		Mode:          models.ModeSimultaneous,
		Duration:      heatDuration(params.WOD, params.Config),
		NumberOfHeats: &one,
		Heats:         []models.Heat{{ID: uuid.NewString(), Athletes: ids}},
	}
	return []models.Session{session}, nil
}
