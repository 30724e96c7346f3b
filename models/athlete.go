package models

import "time"

type Athlete struct {
	ID         string    `json:"id" db:"id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	Alias      *string   `json:"alias,omitempty" db:"alias"`
	CategoryID string    `json:"category_id" db:"category_id"`
	EventID    string    `json:"event_id" db:"event_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

func (a Athlete) DisplayName() string {
	if a.Alias != nil && *a.Alias != "" {
		return *a.Alias
	}
	return a.FirstName + " " + a.LastName
}
