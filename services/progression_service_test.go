package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/velez94/scoringames-sub000/models"
	"github.com/velez94/scoringames-sub000/scheduling"
)

// resultsForRound reports athlete1 as the winner of every contested match
// of the round, mirroring what a referee submission looks like.
func resultsForRound(sched *models.Schedule, categoryID string, filter int) []models.MatchResult {
	var results []models.MatchResult
	for _, sess := range sched.SessionsForRound(categoryID, filter) {
		for _, m := range sess.Matches {
			if m.IsBye() {
				continue
			}
			loser := *m.Athlete2
			results = append(results, models.MatchResult{
				MatchID:      m.ID,
				WinnerID:     m.Athlete1,
				LoserID:      &loser,
				FilterNumber: filter,
			})
		}
	}
	return results
}

func versusFixture(t *testing.T, cfg models.ScheduleConfig) (*models.Schedule, *fakeScheduleRepo, *fakeMatchResultRepo) {
	t.Helper()
	roster := eventRoster()
	sched, err := scheduling.BuildSchedule("event-1", cfg, roster, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("failed to build fixture schedule: %v", err)
	}
	return sched, newFakeScheduleRepo(sched), &fakeMatchResultRepo{}
}

func TestProgressionServiceSubmitRound(t *testing.T) {
	Convey("Given a two-round VERSUS bracket of four athletes", t, func() {
		db, mock, err := sqlmock.New()
		So(err, ShouldBeNil)
		defer db.Close()

		sched, schedRepo, resultRepo := versusFixture(t, versusConfig())
		svc := NewProgressionService(db, &fakeRosterService{roster: eventRoster()}, schedRepo, resultRepo, nil, discardLogger())

		round1 := resultsForRound(sched, "elite", 1)
		So(round1, ShouldHaveLength, 2)

		Convey("A complete round advances the bracket", func() {
			mock.ExpectBegin()
			mock.ExpectCommit()

			updated, err := svc.SubmitRound(context.Background(), "event-1", sched.ID, "elite", 1, round1)

			So(err, ShouldBeNil)
			So(mock.ExpectationsWereMet(), ShouldBeNil)

			Convey("The results are stamped and persisted", func() {
				So(resultRepo.created, ShouldHaveLength, 2)
				So(resultRepo.created[0].ScheduleID, ShouldEqual, sched.ID)
				So(resultRepo.created[0].CategoryID, ShouldEqual, "elite")
				So(resultRepo.created[0].SubmittedAt.IsZero(), ShouldBeFalse)
			})

			Convey("Round two is appended with the two winners", func() {
				next := updated.SessionsForRound("elite", 2)
				So(next, ShouldHaveLength, 1)
				So(next[0].Matches, ShouldHaveLength, 1)
				So(next[0].WODID, ShouldEqual, "wod-2")
				So(next[0].Matches[0].Athlete1, ShouldEqual, athleteID(1))
				So(*next[0].Matches[0].Athlete2, ShouldEqual, athleteID(3))
				So(schedRepo.updated, ShouldHaveLength, 1)
			})

			Convey("An identical resubmission is a no-op", func() {
				again, err := svc.SubmitRound(context.Background(), "event-1", sched.ID, "elite", 1, round1)
				So(err, ShouldBeNil)
				So(again, ShouldEqual, updated)
				So(resultRepo.created, ShouldHaveLength, 2)
			})

			Convey("A conflicting resubmission is rejected", func() {
				conflicting := resultsForRound(sched, "elite", 1)
				previousWinner := conflicting[0].WinnerID
				conflicting[0].WinnerID = *conflicting[0].LoserID
				conflicting[0].LoserID = &previousWinner

				_, err := svc.SubmitRound(context.Background(), "event-1", sched.ID, "elite", 1, conflicting)
				So(errors.Is(err, scheduling.ErrImmutableRound), ShouldBeTrue)
			})
		})

		Convey("An incomplete round is rejected whole", func() {
			_, err := svc.SubmitRound(context.Background(), "event-1", sched.ID, "elite", 1, round1[:1])

			So(errors.Is(err, scheduling.ErrIncompleteRound), ShouldBeTrue)
			So(resultRepo.created, ShouldBeEmpty)
			So(schedRepo.updated, ShouldBeEmpty)
		})

		Convey("A submission for an unknown round is rejected", func() {
			_, err := svc.SubmitRound(context.Background(), "event-1", sched.ID, "elite", 5, nil)
			So(errors.Is(err, scheduling.ErrRoundNotFound), ShouldBeTrue)
		})
	})
}

func TestProgressionServiceFinalRound(t *testing.T) {
	Convey("Given a single-round VERSUS bracket", t, func() {
		db, mock, err := sqlmock.New()
		So(err, ShouldBeNil)
		defer db.Close()

		cfg := versusConfig()
		cfg.CategoryHeats = map[string]int{"elite": 1}
		sched, schedRepo, resultRepo := versusFixture(t, cfg)
		svc := NewProgressionService(db, &fakeRosterService{roster: eventRoster()}, schedRepo, resultRepo, nil, discardLogger())

		Convey("The final round records results without appending sessions", func() {
			mock.ExpectBegin()
			mock.ExpectCommit()

			updated, err := svc.SubmitRound(context.Background(), "event-1", sched.ID, "elite", 1, resultsForRound(sched, "elite", 1))

			So(err, ShouldBeNil)
			So(resultRepo.created, ShouldHaveLength, 2)
			So(updated.SessionsForRound("elite", 2), ShouldBeEmpty)
		})
	})
}

func TestProgressionServiceModeGuard(t *testing.T) {
	Convey("A HEATS schedule has no bracket to advance", t, func() {
		heats := &models.Schedule{
			ID:      "sched-heats",
			EventID: "event-1",
			Config:  models.ScheduleConfig{CompetitionMode: models.ModeHeats}.Normalized(),
		}
		svc := NewProgressionService(nil, &fakeRosterService{roster: eventRoster()}, newFakeScheduleRepo(heats), &fakeMatchResultRepo{}, nil, discardLogger())

		_, err := svc.SubmitRound(context.Background(), "event-1", "sched-heats", "elite", 1, nil)
		So(err, ShouldEqual, ErrNotVersusSchedule)
	})
}
