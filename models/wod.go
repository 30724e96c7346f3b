package models

// WOD is the workout of the day athletes compete on. TimeCapMinutes, when
// positive, bounds how long a heat running this workout can take and
// overrides the configured default heat duration.
type WOD struct {
	ID             string   `json:"id" db:"id"`
	EventID        string   `json:"event_id" db:"event_id"`
	Name           string   `json:"name" db:"name"`
	Movements      []string `json:"movements" db:"movements"`
	TimeCapMinutes int      `json:"time_cap_minutes,omitempty" db:"time_cap_minutes"`
}
