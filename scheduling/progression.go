package scheduling

import (
	"fmt"

	"github.com/velez94/scoringames-sub000/models"
)

// ValidateRoundSubmission checks that a submission covers every contested
// match of the round exactly once and that winners and losers actually
// belong to their matches. Partial rounds are rejected outright; there is
// no partial-round state.
func ValidateRoundSubmission(sched *models.Schedule, categoryID string, filter int, results []models.MatchResult) error {
	sessions := sched.SessionsForRound(categoryID, filter)
	if len(sessions) == 0 {
		return fmt.Errorf("%w: category %s filter %d", ErrRoundNotFound, categoryID, filter)
	}

	contested := make(map[string]models.Match)
	for _, sess := range sessions {
		for _, m := range sess.Matches {
			if !m.IsBye() {
				contested[m.ID] = m
			}
		}
	}

	seen := make(map[string]bool, len(results))
	for _, res := range results {
		if res.FilterNumber != filter {
			return fmt.Errorf("%w: result for match %s carries filter %d", ErrIncompleteRound, res.MatchID, res.FilterNumber)
		}
		m, ok := contested[res.MatchID]
		if !ok {
			return fmt.Errorf("%w: unknown or bye match %s", ErrIncompleteRound, res.MatchID)
		}
		if seen[res.MatchID] {
			return fmt.Errorf("%w: duplicate result for match %s", ErrIncompleteRound, res.MatchID)
		}
		seen[res.MatchID] = true

		a1, a2 := m.Athlete1, *m.Athlete2
		if res.WinnerID != a1 && res.WinnerID != a2 {
			return fmt.Errorf("%w: winner %s is not in match %s", ErrIncompleteRound, res.WinnerID, m.ID)
		}
		if res.LoserID != nil && *res.LoserID != a1 && *res.LoserID != a2 {
			return fmt.Errorf("%w: loser %s is not in match %s", ErrIncompleteRound, *res.LoserID, m.ID)
		}
	}

	if len(seen) != len(contested) {
		return fmt.Errorf("%w: got %d results for %d matches", ErrIncompleteRound, len(seen), len(contested))
	}
	return nil
}

// RoundRecorded reports whether the category's history already contains
// results for the given filter.
func RoundRecorded(history []models.MatchResult, filter int) bool {
	for _, res := range history {
		if res.FilterNumber == filter {
			return true
		}
	}
	return false
}

// SameResults reports whether a resubmission is identical to what the
// history already holds for the round, making it a safe no-op.
func SameResults(history []models.MatchResult, filter int, results []models.MatchResult) bool {
	recorded := make(map[string]string)
	for _, res := range history {
		if res.FilterNumber == filter {
			recorded[res.MatchID] = res.WinnerID
		}
	}
	if len(recorded) != len(results) {
		return false
	}
	for _, res := range results {
		winner, ok := recorded[res.MatchID]
		if !ok || winner != res.WinnerID {
			return false
		}
	}
	return true
}

// Survivors computes the athletes advancing out of a validated round, in
// bracket order: winners and byes first, then wildcard losers when the
// elimination rule leaves more slots than winners. The bracket shrinks to
// max(1, remaining - eliminate) under an explicit rule and to
// ceil(remaining/2) under the default halving.
func Survivors(sched *models.Schedule, cfg models.ScheduleConfig, categoryID string, filter int, results []models.MatchResult) []string {
	winnerOf := make(map[string]string, len(results))
	for _, res := range results {
		winnerOf[res.MatchID] = res.WinnerID
	}

	var advancers, losers []string
	remaining := 0
	for _, sess := range sched.SessionsForRound(categoryID, filter) {
		for _, m := range sess.Matches {
			if m.IsBye() {
				remaining++
				advancers = append(advancers, m.Athlete1)
				continue
			}
			remaining += 2
			winner := winnerOf[m.ID]
			advancers = append(advancers, winner)
			if winner == m.Athlete1 {
				losers = append(losers, *m.Athlete2)
			} else {
				losers = append(losers, m.Athlete1)
			}
		}
	}

	target := ceilDiv(remaining, 2)
	if rule, ok := cfg.RuleFor(categoryID, filter); ok {
		target = remaining - rule.Eliminate
		if target < 1 {
			target = 1
		}
	}

	if len(advancers) > target {
		return advancers[:target]
	}
	for _, loser := range losers {
		if len(advancers) >= target {
			break
		}
		advancers = append(advancers, loser)
	}
	return advancers
}

// NextRoundSessions builds the bracket sessions for the round after
// filter from its survivors. A nil return with no error means the bracket
// is down to a single athlete and nothing is left to play.
func NextRoundSessions(cfg models.ScheduleConfig, category models.Category, survivors []models.Athlete, filter int, roster Roster) ([]models.Session, error) {
	if len(survivors) < 2 {
		return nil, nil
	}
	next := filter + 1
	wodID := cfg.WODForRound(category.ID, next)
	if wodID == "" {
		return nil, fmt.Errorf("%w: category %s round %d", ErrMissingWODMapping, category.ID, next)
	}
	wod, ok := roster.WODByID(wodID)
	if !ok {
		return nil, fmt.Errorf("%w: category %s round %d wod %s", ErrWODNotFound, category.ID, next, wodID)
	}

	strategy := NewVersusStrategy()
	return strategy.BuildSessions(BuildParams{
		Category: category,
		Athletes: survivors,
		WOD:      wod,
		Filter:   next,
		Config:   cfg,
	})
}
