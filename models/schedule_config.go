package models

// EliminationRule configures one VERSUS round of a category. Eliminate is
// how many athletes are cut after the round; Wildcards is how many of the
// cut slots are given back to losers (best placed first).
type EliminationRule struct {
	Filter    int `json:"filter"`
	Eliminate int `json:"eliminate"`
	Wildcards int `json:"wildcards,omitempty"`
}

// ScheduleConfig is the per-generation request configuration. Map keys are
// category IDs; HeatWODMapping is keyed by category then round number.
type ScheduleConfig struct {
	CompetitionMode CompetitionMode `json:"competition_mode"`

	StartTime string `json:"start_time"` // "HH:MM", first session of the first day
	Timezone  string `json:"timezone,omitempty"`

	MaxDayHours     float64 `json:"max_day_hours"`
	LunchBreakHours float64 `json:"lunch_break_hours"`
	TransitionTime  int     `json:"transition_time"` // minutes between sessions
	SetupTime       int     `json:"setup_time"`      // minutes before the first session

	HeatDurationMinutes  int `json:"heat_duration_minutes,omitempty"`
	MatchDurationMinutes int `json:"match_duration_minutes,omitempty"`

	// HEATS
	AthletesPerHeat             int `json:"athletes_per_heat,omitempty"`
	ConcurrentHeats             int `json:"concurrent_heats,omitempty"`
	AthletesEliminatedPerFilter int `json:"athletes_eliminated_per_filter,omitempty"`

	// VERSUS
	CategoryHeats            map[string]int               `json:"category_heats,omitempty"`
	CategoryEliminationRules map[string][]EliminationRule `json:"category_elimination_rules,omitempty"`
	HeatWODMapping           map[string]map[int]string    `json:"heat_wod_mapping,omitempty"`
	ConcurrentMatches        int                          `json:"concurrent_matches,omitempty"`
}

const (
	DefaultStartTime     = "09:00"
	DefaultMaxDayHours   = 8
	DefaultHeatDuration  = 12
	DefaultMatchDuration = 8
)

// Normalized returns a copy with zero values replaced by defaults so the
// scheduling core never divides by zero on concurrency factors.
func (c ScheduleConfig) Normalized() ScheduleConfig {
	if c.StartTime == "" {
		c.StartTime = DefaultStartTime
	}
	if c.MaxDayHours <= 0 {
		c.MaxDayHours = DefaultMaxDayHours
	}
	if c.HeatDurationMinutes <= 0 {
		c.HeatDurationMinutes = DefaultHeatDuration
	}
	if c.MatchDurationMinutes <= 0 {
		c.MatchDurationMinutes = DefaultMatchDuration
	}
	if c.ConcurrentHeats <= 0 {
		c.ConcurrentHeats = 1
	}
	if c.ConcurrentMatches <= 0 {
		c.ConcurrentMatches = 1
	}
	return c
}

// RoundsFor returns the configured bracket depth for a category, 0 when
// the category has no VERSUS configuration.
func (c ScheduleConfig) RoundsFor(categoryID string) int {
	if c.CategoryHeats == nil {
		return 0
	}
	return c.CategoryHeats[categoryID]
}

// RuleFor returns the explicit elimination rule for a round, if any.
func (c ScheduleConfig) RuleFor(categoryID string, filter int) (EliminationRule, bool) {
	for _, rule := range c.CategoryEliminationRules[categoryID] {
		if rule.Filter == filter {
			return rule, true
		}
	}
	return EliminationRule{}, false
}

// WODForRound returns the workout mapped to a category's round, "" when
// the mapping is missing.
func (c ScheduleConfig) WODForRound(categoryID string, filter int) string {
	rounds, ok := c.HeatWODMapping[categoryID]
	if !ok {
		return ""
	}
	return rounds[filter]
}

// UsableMinutes is the daily window available for sessions after the
// lunch break is taken out.
func (c ScheduleConfig) UsableMinutes() int {
	usable := (c.MaxDayHours - c.LunchBreakHours) * 60
	if usable < 0 {
		usable = 0
	}
	return int(usable)
}
