package models

import "time"

type Event struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Optional linked entities, populated by services.
	Days       []CompetitionDay `json:"days,omitempty" db:"-"`
	Categories []Category       `json:"categories,omitempty" db:"-"`
}

// CompetitionDay is one calendar day the event runs on. StartTime, when
// set, overrides the schedule-wide start time for that day ("09:00").
type CompetitionDay struct {
	ID        string    `json:"id" db:"id"`
	EventID   string    `json:"event_id" db:"event_id"`
	Date      time.Time `json:"date" db:"date"`
	StartTime *string   `json:"start_time,omitempty" db:"start_time"`
}
