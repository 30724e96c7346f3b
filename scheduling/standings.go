package scheduling

import (
	"sort"

	"github.com/velez94/scoringames-sub000/models"
)

// ComputeStandings replays one category's match-result history and ranks
// every athlete seen in it. Pure and recomputed from scratch on every
// query, so it is always consistent with the stored history. Athletes
// still standing rank above the eliminated; within each group a deeper
// current round wins, then more wins; exact ties keep fold order (stable
// sort).
func ComputeStandings(history []models.MatchResult) []models.AthleteStanding {
	byID := make(map[string]*models.AthleteStanding)
	var order []string

	touch := func(athleteID string) *models.AthleteStanding {
		if s, ok := byID[athleteID]; ok {
			return s
		}
		s := &models.AthleteStanding{AthleteID: athleteID, CurrentRound: 1}
		byID[athleteID] = s
		order = append(order, athleteID)
		return s
	}

	for _, res := range history {
		winner := touch(res.WinnerID)
		winner.Wins++
		if next := res.FilterNumber + 1; next > winner.CurrentRound {
			winner.CurrentRound = next
		}

		if res.LoserID == nil {
			continue
		}
		loser := touch(*res.LoserID)
		loser.Losses++
		loser.Eliminated = true
		round := res.FilterNumber
		loser.EliminatedInRound = &round
	}

	standings := make([]models.AthleteStanding, 0, len(order))
	for _, id := range order {
		standings = append(standings, *byID[id])
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Eliminated != b.Eliminated {
			return !a.Eliminated
		}
		if a.CurrentRound != b.CurrentRound {
			return a.CurrentRound > b.CurrentRound
		}
		return a.Wins > b.Wins
	})

	for i := range standings {
		standings[i].Placement = i + 1
	}
	return standings
}
