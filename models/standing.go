package models

// AthleteStanding is the derived bracket record of one athlete within a
// category. It is recomputed from the match-result history on every query
// and never stored.
type AthleteStanding struct {
	AthleteID         string `json:"athlete_id"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	CurrentRound      int    `json:"current_round"`
	Eliminated        bool   `json:"eliminated"`
	EliminatedInRound *int   `json:"eliminated_in_round,omitempty"`
	Placement         int    `json:"placement"`
}
