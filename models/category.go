package models

type Category struct {
	ID              string `json:"id" db:"id"`
	EventID         string `json:"event_id" db:"event_id"`
	Name            string `json:"name" db:"name"`
	MaxParticipants *int   `json:"max_participants,omitempty" db:"max_participants"`
}
