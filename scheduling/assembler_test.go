package scheduling_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/velez94/scoringames-sub000/models"
	"github.com/velez94/scoringames-sub000/scheduling"
)

func twoDayRoster() scheduling.Roster {
	athletes := append(rosterAthletes("rx-men", 10), rosterAthletes("rx-women", 6)...)
	return scheduling.Roster{
		Categories: []models.Category{
			{ID: "rx-men", EventID: "event-1", Name: "RX Men"},
			{ID: "rx-women", EventID: "event-1", Name: "RX Women"},
			{ID: "masters", EventID: "event-1", Name: "Masters"}, // nobody registered
		},
		Athletes: athletes,
		WODs: []models.WOD{
			{ID: "wod-1", EventID: "event-1", Name: "Fran", Movements: []string{"thruster", "pull-up"}},
			{ID: "wod-2", EventID: "event-1", Name: "Grace", Movements: []string{"clean and jerk"}},
		},
		Days: []models.CompetitionDay{
			{ID: "day-1", EventID: "event-1", Date: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)},
			{ID: "day-2", EventID: "event-1", Date: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestBuildSchedule(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	Convey("Given a two-category roster in HEATS mode", t, func() {
		roster := twoDayRoster()
		cfg := models.ScheduleConfig{
			CompetitionMode: models.ModeHeats,
			StartTime:       "09:00",
			MaxDayHours:     8,
			LunchBreakHours: 1,
			TransitionTime:  5,
			AthletesPerHeat: 4,
		}

		Convey("When the schedule is generated", func() {
			sched, err := scheduling.BuildSchedule("event-1", cfg, roster, now)
			So(err, ShouldBeNil)

			Convey("Then it covers every (category, wod) pair with athletes", func() {
				var sessions []models.Session
				for _, day := range sched.Days {
					sessions = append(sessions, day.Sessions...)
				}
				So(sessions, ShouldHaveLength, 4) // 2 categories x 2 wods

				Convey("And the empty category is skipped silently", func() {
					for _, s := range sessions {
						So(s.CategoryID, ShouldNotEqual, "masters")
					}
				})
			})

			Convey("Then sessions only hold athletes of their own category", func() {
				byCategory := map[string]map[string]bool{}
				for _, a := range roster.Athletes {
					if byCategory[a.CategoryID] == nil {
						byCategory[a.CategoryID] = map[string]bool{}
					}
					byCategory[a.CategoryID][a.ID] = true
				}
				for _, day := range sched.Days {
					for _, s := range day.Sessions {
						for _, id := range s.AthleteIDs() {
							So(byCategory[s.CategoryID][id], ShouldBeTrue)
						}
					}
				}
			})

			Convey("Then each category session covers its roster exactly", func() {
				for _, day := range sched.Days {
					for _, s := range day.Sessions {
						ids := s.AthleteIDs()
						want := roster.AthletesOf(s.CategoryID)
						So(ids, ShouldHaveLength, len(want))
						seen := map[string]bool{}
						for _, id := range ids {
							So(seen[id], ShouldBeFalse)
							seen[id] = true
						}
					}
				}
			})

			Convey("Then the schedule metadata is set", func() {
				So(sched.EventID, ShouldEqual, "event-1")
				So(sched.Published, ShouldBeFalse)
				So(sched.GeneratedAt, ShouldResemble, now)
				So(sched.ID, ShouldNotBeEmpty)
			})

			Convey("Then every day honors the capacity invariant or is flagged", func() {
				for _, day := range sched.Days {
					if day.WithinTimeLimit {
						So(day.TotalDuration, ShouldBeLessThanOrEqualTo, sched.Config.UsableMinutes())
					}
				}
			})
		})

		Convey("When the mode is unknown", func() {
			bad := cfg
			bad.CompetitionMode = "LADDER"
			_, err := scheduling.BuildSchedule("event-1", bad, roster, now)

			Convey("Then generation fails before building anything", func() {
				So(err, ShouldWrap, scheduling.ErrUnknownMode)
			})
		})
	})

	Convey("Given a VERSUS configuration", t, func() {
		roster := twoDayRoster()
		cfg := models.ScheduleConfig{
			CompetitionMode: models.ModeVersus,
			StartTime:       "09:00",
			MaxDayHours:     8,
			CategoryHeats:   map[string]int{"rx-men": 2, "rx-women": 2},
			HeatWODMapping: map[string]map[int]string{
				"rx-men":   {1: "wod-1", 2: "wod-2"},
				"rx-women": {1: "wod-1", 2: "wod-2"},
			},
		}

		Convey("When the schedule is generated", func() {
			sched, err := scheduling.BuildSchedule("event-1", cfg, roster, now)
			So(err, ShouldBeNil)

			Convey("Then only round 1 sessions exist", func() {
				for _, day := range sched.Days {
					for _, s := range day.Sessions {
						So(s.FilterNumber, ShouldNotBeNil)
						So(*s.FilterNumber, ShouldEqual, 1)
						So(s.WODID, ShouldEqual, "wod-1")
					}
				}
			})
		})

		Convey("When a round has no mapped workout", func() {
			broken := cfg
			broken.HeatWODMapping = map[string]map[int]string{
				"rx-men":   {1: "wod-1"},
				"rx-women": {1: "wod-1", 2: "wod-2"},
			}
			_, err := scheduling.BuildSchedule("event-1", broken, roster, now)

			Convey("Then generation is rejected as a configuration error", func() {
				So(err, ShouldWrap, scheduling.ErrMissingWODMapping)
			})
		})

		Convey("When a competing category has no round count", func() {
			broken := cfg
			broken.CategoryHeats = map[string]int{"rx-men": 2}
			_, err := scheduling.BuildSchedule("event-1", broken, roster, now)

			Convey("Then generation is rejected", func() {
				So(err, ShouldWrap, scheduling.ErrInvalidRoundCount)
			})
		})

		Convey("When a mapped workout does not exist", func() {
			broken := cfg
			broken.HeatWODMapping = map[string]map[int]string{
				"rx-men":   {1: "wod-1", 2: "wod-9"},
				"rx-women": {1: "wod-1", 2: "wod-2"},
			}
			_, err := scheduling.BuildSchedule("event-1", broken, roster, now)

			Convey("Then generation is rejected", func() {
				So(err, ShouldWrap, scheduling.ErrWODNotFound)
			})
		})
	})
}
