package scheduling_test

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/velez94/scoringames-sub000/models"
	"github.com/velez94/scoringames-sub000/scheduling"
)

func rosterAthletes(categoryID string, n int) []models.Athlete {
	out := make([]models.Athlete, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Athlete{
			ID:         fmt.Sprintf("%s-athlete-%d", categoryID, i+1),
			FirstName:  fmt.Sprintf("First%d", i+1),
			LastName:   fmt.Sprintf("Last%d", i+1),
			CategoryID: categoryID,
		})
	}
	return out
}

func TestHeatsStrategy(t *testing.T) {
	Convey("Given the HEATS strategy", t, func() {
		strategy := scheduling.NewHeatsStrategy()
		category := models.Category{ID: "rx-men", Name: "RX Men"}
		wod := models.WOD{ID: "wod-1", Name: "Fran"}
		cfg := models.ScheduleConfig{
			CompetitionMode:     models.ModeHeats,
			AthletesPerHeat:     4,
			HeatDurationMinutes: 10,
		}.Normalized()

		Convey("When 10 athletes are split into heats of 4", func() {
			sessions, err := strategy.BuildSessions(scheduling.BuildParams{
				Category: category,
				Athletes: rosterAthletes("rx-men", 10),
				WOD:      wod,
				Config:   cfg,
			})
			So(err, ShouldBeNil)
			So(sessions, ShouldHaveLength, 1)

			Convey("Then it produces 3 heats sized 4, 4 and 2", func() {
				heats := sessions[0].Heats
				So(heats, ShouldHaveLength, 3)
				So(heats[0].Athletes, ShouldHaveLength, 4)
				So(heats[1].Athletes, ShouldHaveLength, 4)
				So(heats[2].Athletes, ShouldHaveLength, 2)
				So(*sessions[0].NumberOfHeats, ShouldEqual, 3)
			})

			Convey("And every registered athlete appears exactly once", func() {
				seen := map[string]int{}
				for _, id := range sessions[0].AthleteIDs() {
					seen[id]++
				}
				So(seen, ShouldHaveLength, 10)
				for _, count := range seen {
					So(count, ShouldEqual, 1)
				}
			})

			Convey("And the session pays for every heat sequentially", func() {
				So(sessions[0].Duration, ShouldEqual, 30)
			})
		})

		Convey("When two heats can run concurrently", func() {
			concurrent := cfg
			concurrent.ConcurrentHeats = 2
			sessions, err := strategy.BuildSessions(scheduling.BuildParams{
				Category: category,
				Athletes: rosterAthletes("rx-men", 10),
				WOD:      wod,
				Config:   concurrent,
			})
			So(err, ShouldBeNil)

			Convey("Then 3 heats cost two heat slots", func() {
				So(sessions[0].Duration, ShouldEqual, 20)
			})
		})

		Convey("When the workout carries a time cap", func() {
			capped := wod
			capped.TimeCapMinutes = 7
			sessions, err := strategy.BuildSessions(scheduling.BuildParams{
				Category: category,
				Athletes: rosterAthletes("rx-men", 4),
				WOD:      capped,
				Config:   cfg,
			})
			So(err, ShouldBeNil)

			Convey("Then the cap overrides the default heat duration", func() {
				So(sessions[0].Duration, ShouldEqual, 7)
			})
		})

		Convey("When the category has no athletes", func() {
			sessions, err := strategy.BuildSessions(scheduling.BuildParams{
				Category: category,
				WOD:      wod,
				Config:   cfg,
			})

			Convey("Then it yields no sessions and no error", func() {
				So(err, ShouldBeNil)
				So(sessions, ShouldBeEmpty)
			})
		})
	})
}

func TestSimultaneousStrategy(t *testing.T) {
	Convey("Given the SIMULTANEOUS strategy", t, func() {
		strategy := scheduling.NewSimultaneousStrategy()
		category := models.Category{ID: "scaled", Name: "Scaled"}
		wod := models.WOD{ID: "wod-2", Name: "Murph", TimeCapMinutes: 45}
		cfg := models.ScheduleConfig{CompetitionMode: models.ModeSimultaneous}.Normalized()

		Convey("When a category of 9 runs a capped workout", func() {
			sessions, err := strategy.BuildSessions(scheduling.BuildParams{
				Category: category,
				Athletes: rosterAthletes("scaled", 9),
				WOD:      wod,
				Config:   cfg,
			})
			So(err, ShouldBeNil)
			So(sessions, ShouldHaveLength, 1)

			Convey("Then everyone is in a single heat", func() {
				So(sessions[0].Heats, ShouldHaveLength, 1)
				So(sessions[0].Heats[0].Athletes, ShouldHaveLength, 9)
				So(*sessions[0].NumberOfHeats, ShouldEqual, 1)
			})

			Convey("And the duration is the time cap alone", func() {
				So(sessions[0].Duration, ShouldEqual, 45)
			})
		})
	})
}
