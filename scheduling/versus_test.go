package scheduling_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/velez94/scoringames-sub000/models"
	"github.com/velez94/scoringames-sub000/scheduling"
)

func TestVersusStrategy(t *testing.T) {
	Convey("Given the VERSUS strategy", t, func() {
		strategy := scheduling.NewVersusStrategy()
		category := models.Category{ID: "elite", Name: "Elite"}
		wod := models.WOD{ID: "wod-3", Name: "Isabel"}
		cfg := models.ScheduleConfig{
			CompetitionMode:      models.ModeVersus,
			MatchDurationMinutes: 8,
		}.Normalized()

		Convey("When round 1 pairs 5 athletes", func() {
			sessions, err := strategy.BuildSessions(scheduling.BuildParams{
				Category: category,
				Athletes: rosterAthletes("elite", 5),
				WOD:      wod,
				Filter:   1,
				Config:   cfg,
			})
			So(err, ShouldBeNil)
			So(sessions, ShouldHaveLength, 1)
			matches := sessions[0].Matches

			Convey("Then it produces 2 matches and exactly one bye", func() {
				So(matches, ShouldHaveLength, 3)
				byes := 0
				for _, m := range matches {
					if m.IsBye() {
						byes++
					}
				}
				So(byes, ShouldEqual, 1)
			})

			Convey("And the bye goes to the last unpaired athlete", func() {
				last := matches[len(matches)-1]
				So(last.IsBye(), ShouldBeTrue)
				So(last.Athlete1, ShouldEqual, "elite-athlete-5")
			})

			Convey("And pairing follows registration order", func() {
				So(matches[0].Athlete1, ShouldEqual, "elite-athlete-1")
				So(*matches[0].Athlete2, ShouldEqual, "elite-athlete-2")
				So(matches[1].Athlete1, ShouldEqual, "elite-athlete-3")
				So(*matches[1].Athlete2, ShouldEqual, "elite-athlete-4")
			})

			Convey("And every match is tagged with the round", func() {
				for _, m := range matches {
					So(m.FilterNumber, ShouldEqual, 1)
				}
				So(*sessions[0].FilterNumber, ShouldEqual, 1)
			})

			Convey("And only contested matches cost floor time", func() {
				So(sessions[0].Duration, ShouldEqual, 16)
			})
		})

		Convey("When matches run in parallel lanes", func() {
			parallel := cfg
			parallel.ConcurrentMatches = 2
			sessions, err := strategy.BuildSessions(scheduling.BuildParams{
				Category: category,
				Athletes: rosterAthletes("elite", 8),
				WOD:      wod,
				Filter:   2,
				Config:   parallel,
			})
			So(err, ShouldBeNil)

			Convey("Then 4 matches cost two slots", func() {
				So(sessions[0].Duration, ShouldEqual, 16)
			})
		})

		Convey("When the round number is missing", func() {
			_, err := strategy.BuildSessions(scheduling.BuildParams{
				Category: category,
				Athletes: rosterAthletes("elite", 4),
				WOD:      wod,
				Config:   cfg,
			})

			Convey("Then the build is rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the category has no athletes", func() {
			sessions, err := strategy.BuildSessions(scheduling.BuildParams{
				Category: category,
				WOD:      wod,
				Filter:   1,
				Config:   cfg,
			})

			Convey("Then it yields no sessions and no error", func() {
				So(err, ShouldBeNil)
				So(sessions, ShouldBeEmpty)
			})
		})
	})
}
