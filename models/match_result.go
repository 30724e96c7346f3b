package models

import "time"

// MatchResult records the outcome of one contested VERSUS match. LoserID
// is nil only for results imported for bye matches, which submitters do
// not normally send.
type MatchResult struct {
	ID           int64     `json:"id,omitempty" db:"id"`
	ScheduleID   string    `json:"schedule_id" db:"schedule_id"`
	CategoryID   string    `json:"category_id" db:"category_id"`
	MatchID      string    `json:"match_id" db:"match_id"`
	WinnerID     string    `json:"winner_id" db:"winner_id"`
	LoserID      *string   `json:"loser_id,omitempty" db:"loser_id"`
	FilterNumber int       `json:"filter_number" db:"filter_number"`
	SubmittedAt  time.Time `json:"submitted_at,omitempty" db:"submitted_at"`
}
