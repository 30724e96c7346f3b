package scheduling

import (
	"github.com/google/uuid"
	"github.com/velez94/scoringames-sub000/models"
)

// HeatsStrategy partitions a category into fixed-size heats. Elimination
// between HEATS rounds is result-driven: the caller passes the survivor
// list of the previous round in params.Athletes, the strategy itself is
// stateless per call.
type HeatsStrategy struct{}

func NewHeatsStrategy() SessionStrategy {
	return &HeatsStrategy{}
}

func (s *HeatsStrategy) Name() string {
	return "Heats"
}

func (s *HeatsStrategy) BuildSessions(params BuildParams) ([]models.Session, error) {
	athletes := params.Athletes
	if len(athletes) == 0 {
		return nil, nil
	}
	cfg := params.Config

	perHeat := cfg.AthletesPerHeat
	if perHeat <= 0 {
		perHeat = len(athletes)
	}

	heats := make([]models.Heat, 0, ceilDiv(len(athletes), perHeat))
	for start := 0; start < len(athletes); start += perHeat {
		end := start + perHeat
		if end > len(athletes) {
			end = len(athletes)
		}
		ids := make([]string, 0, end-start)
		for _, a := range athletes[start:end] {
			ids = append(ids, a.ID)
		}
		heats = append(heats, models.Heat{ID: uuid.NewString(), Athletes: ids})
	}

	// Heats sharing the floor run in parallel, so the session only pays
	// for ceil(heats / concurrency) heat slots.
	numHeats := len(heats)
	duration := heatDuration(params.WOD, cfg) * ceilDiv(numHeats, cfg.ConcurrentHeats)

	session := models.Session{
		ID:            uuid.NewString(),
		CategoryID:    params.Category.ID,
		WODID:         params.WOD.ID,
		Mode:          models.ModeHeats,
		Duration:      duration,
		NumberOfHeats: &numHeats,
		Heats:         heats,
	}
	return []models.Session{session}, nil
}
