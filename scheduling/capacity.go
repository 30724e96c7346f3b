package scheduling

import (
	"time"

	"github.com/google/uuid"
	"github.com/velez94/scoringames-sub000/models"
)

// DayPlanner packs sessions into competition days with a greedy running
// clock. The clock starts setupTime minutes after the day start, each
// session consumes its duration plus the transition time, and a session
// that would cross the usable window rolls over to the next day. No
// reordering is attempted: sessions are placed in the order requested.
type DayPlanner struct {
	cfg models.ScheduleConfig
	loc *time.Location
}

func NewDayPlanner(cfg models.ScheduleConfig) *DayPlanner {
	loc := time.UTC
	if cfg.Timezone != "" {
		if l, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = l
		}
	}
	return &DayPlanner{cfg: cfg, loc: loc}
}

// PlaceSessions distributes sessions across the event's pre-existing days
// in date order, synthesizing next-calendar-day entries once those run
// out. fallback anchors the first synthesized day when the event has no
// days at all.
func (p *DayPlanner) PlaceSessions(days []models.CompetitionDay, sessions []models.Session, fallback time.Time) []models.ScheduleDay {
	out := make([]models.ScheduleDay, 0, len(days))
	idx := 0
	dayNum := 0
	lastDate := p.dateOnly(fallback)

	for idx < len(sessions) {
		id, start := p.dayStart(days, dayNum, lastDate)
		lastDate = p.dateOnly(start)

		day, next := p.fillDay(id, start, sessions, idx)
		out = append(out, day)
		idx = next
		dayNum++
	}
	return out
}

// AppendSessions continues an already-placed schedule: the final day is
// extended while sessions still fit its window, the rest spill onto new
// synthesized days. Used when a bracket round is appended to a schedule.
func (p *DayPlanner) AppendSessions(days []models.ScheduleDay, sessions []models.Session, fallback time.Time) []models.ScheduleDay {
	idx := 0
	usable := p.cfg.UsableMinutes()

	if len(days) > 0 {
		last := &days[len(days)-1]
		if len(last.Sessions) > 0 && last.WithinTimeLimit {
			base := last.Sessions[0].StartTime.Add(-p.minutes(p.cfg.SetupTime))
			clock := last.TotalDuration
			for idx < len(sessions) {
				s := sessions[idx]
				needed := s.Duration + p.cfg.TransitionTime
				if clock+needed > usable {
					break
				}
				s.StartTime = base.Add(p.minutes(clock))
				s.DayID = last.ID
				last.Sessions = append(last.Sessions, s)
				clock += needed
				idx++
			}
			last.TotalDuration = clock
		}
	}

	if idx < len(sessions) {
		lastDate := p.dateOnly(fallback)
		if len(days) > 0 {
			lastDate = p.dateOnly(days[len(days)-1].Date)
		}
		for idx < len(sessions) {
			date := lastDate.AddDate(0, 0, 1)
			id, start := uuid.NewString(), p.combine(date, p.cfg.StartTime)
			lastDate = date

			day, next := p.fillDay(id, start, sessions, idx)
			days = append(days, day)
			idx = next
		}
	}
	return days
}

// fillDay places sessions onto one day starting at idx and returns the
// index of the first session that did not fit. A session too large for an
// empty day is still placed, alone, and the day is flagged.
func (p *DayPlanner) fillDay(id string, start time.Time, sessions []models.Session, idx int) (models.ScheduleDay, int) {
	day := models.ScheduleDay{
		ID:              id,
		Date:            p.dateOnly(start),
		WithinTimeLimit: true,
	}
	usable := p.cfg.UsableMinutes()
	clock := p.cfg.SetupTime

	for idx < len(sessions) {
		s := sessions[idx]
		needed := s.Duration + p.cfg.TransitionTime
		if clock+needed > usable {
			if len(day.Sessions) > 0 {
				break
			}
			// Oversized for any day: schedule it anyway and report the
			// overflow instead of failing generation.
			day.WithinTimeLimit = false
		}
		s.StartTime = start.Add(p.minutes(clock))
		s.DayID = day.ID
		day.Sessions = append(day.Sessions, s)
		clock += needed
		idx++
		if !day.WithinTimeLimit {
			break
		}
	}
	day.TotalDuration = clock
	return day, idx
}

// dayStart resolves the absolute start of the nth day: a pre-existing
// event day when available, the calendar day after the last one otherwise.
func (p *DayPlanner) dayStart(days []models.CompetitionDay, n int, lastDate time.Time) (string, time.Time) {
	if n < len(days) {
		d := days[n]
		startAt := p.cfg.StartTime
		if d.StartTime != nil && *d.StartTime != "" {
			startAt = *d.StartTime
		}
		return d.ID, p.combine(d.Date, startAt)
	}
	return uuid.NewString(), p.combine(lastDate.AddDate(0, 0, 1), p.cfg.StartTime)
}

func (p *DayPlanner) combine(date time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		t, _ = time.Parse("15:04", models.DefaultStartTime)
	}
	d := date.In(p.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, p.loc)
}

func (p *DayPlanner) dateOnly(t time.Time) time.Time {
	d := t.In(p.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, p.loc)
}

func (p *DayPlanner) minutes(m int) time.Duration {
	return time.Duration(m) * time.Minute
}
