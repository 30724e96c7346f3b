package models

import "time"

// CompetitionMode selects how a category's athletes are grouped into
// sessions, mirroring the mode ENUM used by the organizer frontend.
type CompetitionMode string

const (
	ModeHeats        CompetitionMode = "HEATS"
	ModeVersus       CompetitionMode = "VERSUS"
	ModeSimultaneous CompetitionMode = "SIMULTANEOUS"
)

// Schedule is the generated timetable for one event. It is produced whole
// by a single generation call and mutated only by round advancement; the
// JSON shape is the wire format served to frontends as-is.
type Schedule struct {
	ID          string         `json:"id"`
	EventID     string         `json:"event_id"`
	Config      ScheduleConfig `json:"config"`
	GeneratedAt time.Time      `json:"generated_at"`
	Published   bool           `json:"published"`
	Days        []ScheduleDay  `json:"days"`
}

type ScheduleDay struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	TotalDuration int       `json:"total_duration"` // minutes, sessions plus transitions

	// WithinTimeLimit is false when at least one session on this day runs
	// past the configured window. Overflow is reported, never dropped.
	WithinTimeLimit bool      `json:"within_time_limit"`
	Sessions        []Session `json:"sessions"`
}

// Session is a block of time for one category and workout on one day,
// holding either heats (HEATS/SIMULTANEOUS) or matches (VERSUS).
type Session struct {
	ID            string          `json:"id"`
	DayID         string          `json:"day_id,omitempty"`
	CategoryID    string          `json:"category_id"`
	WODID         string          `json:"wod_id"`
	Mode          CompetitionMode `json:"competition_mode"`
	StartTime     time.Time       `json:"start_time"`
	Duration      int             `json:"duration"` // minutes
	HeatNumber    *int            `json:"heat_number,omitempty"`
	NumberOfHeats *int            `json:"number_of_heats,omitempty"`
	FilterNumber  *int            `json:"filter_number,omitempty"` // VERSUS round
	Heats         []Heat          `json:"heats,omitempty"`
	Matches       []Match         `json:"matches,omitempty"`
}

type Heat struct {
	ID       string   `json:"id"`
	Athletes []string `json:"athletes"`
}

// Match is a 1v1 pairing. Athlete2 == nil means a bye: Athlete1 advances
// without competing and no result is expected for the match.
type Match struct {
	ID           string  `json:"id"`
	Athlete1     string  `json:"athlete1"`
	Athlete2     *string `json:"athlete2,omitempty"`
	FilterNumber int     `json:"filter_number"`
}

func (m Match) IsBye() bool {
	return m.Athlete2 == nil
}

// AthleteIDs lists the athletes appearing in the session, heats and
// matches alike, in slot order.
func (s Session) AthleteIDs() []string {
	var ids []string
	for _, h := range s.Heats {
		ids = append(ids, h.Athletes...)
	}
	for _, m := range s.Matches {
		ids = append(ids, m.Athlete1)
		if m.Athlete2 != nil {
			ids = append(ids, *m.Athlete2)
		}
	}
	return ids
}

// SessionsForRound returns the sessions of one category tagged with the
// given VERSUS filter number, across all days.
func (sch *Schedule) SessionsForRound(categoryID string, filter int) []Session {
	var out []Session
	for _, day := range sch.Days {
		for _, sess := range day.Sessions {
			if sess.CategoryID != categoryID || sess.FilterNumber == nil {
				continue
			}
			if *sess.FilterNumber == filter {
				out = append(out, sess)
			}
		}
	}
	return out
}
