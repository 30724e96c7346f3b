package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/velez94/scoringames-sub000/models"
	"github.com/velez94/scoringames-sub000/repositories"
	"github.com/velez94/scoringames-sub000/scheduling"
	"github.com/velez94/scoringames-sub000/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeRosterService struct {
	roster scheduling.Roster
	err    error
}

func (f *fakeRosterService) LoadRoster(ctx context.Context, eventID string) (scheduling.Roster, error) {
	if f.err != nil {
		return scheduling.Roster{}, f.err
	}
	return f.roster, nil
}

type fakeScheduleRepo struct {
	schedules map[string]*models.Schedule

	created     []*models.Schedule
	updated     []*models.Schedule
	unpublished []string // event IDs passed to UnpublishAllByEvent
	publishSets []string // schedule IDs passed to SetPublished
	deleted     []string
}

func newFakeScheduleRepo(schedules ...*models.Schedule) *fakeScheduleRepo {
	repo := &fakeScheduleRepo{schedules: make(map[string]*models.Schedule)}
	for _, s := range schedules {
		repo.schedules[s.ID] = s
	}
	return repo
}

func (f *fakeScheduleRepo) Create(ctx context.Context, exec repositories.SQLExecutor, schedule *models.Schedule) error {
	f.created = append(f.created, schedule)
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, eventID, scheduleID string) (*models.Schedule, error) {
	s, ok := f.schedules[scheduleID]
	if !ok || s.EventID != eventID {
		return nil, repositories.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeScheduleRepo) ListByEvent(ctx context.Context, exec repositories.SQLExecutor, eventID string) ([]*models.Schedule, error) {
	var out []*models.Schedule
	for _, s := range f.schedules {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, exec repositories.SQLExecutor, schedule *models.Schedule) error {
	if _, ok := f.schedules[schedule.ID]; !ok {
		return repositories.ErrScheduleNotFound
	}
	f.updated = append(f.updated, schedule)
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeScheduleRepo) UnpublishAllByEvent(ctx context.Context, exec repositories.SQLExecutor, eventID string) error {
	f.unpublished = append(f.unpublished, eventID)
	for _, s := range f.schedules {
		if s.EventID == eventID {
			s.Published = false
		}
	}
	return nil
}

func (f *fakeScheduleRepo) SetPublished(ctx context.Context, exec repositories.SQLExecutor, eventID, scheduleID string, published bool) error {
	s, ok := f.schedules[scheduleID]
	if !ok || s.EventID != eventID {
		return repositories.ErrScheduleNotFound
	}
	f.publishSets = append(f.publishSets, scheduleID)
	s.Published = published
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, exec repositories.SQLExecutor, eventID, scheduleID string) error {
	s, ok := f.schedules[scheduleID]
	if !ok || s.EventID != eventID {
		return repositories.ErrScheduleNotFound
	}
	f.deleted = append(f.deleted, scheduleID)
	delete(f.schedules, scheduleID)
	return nil
}

type fakeMatchResultRepo struct {
	history []models.MatchResult
	created []models.MatchResult
}

func (f *fakeMatchResultRepo) BatchCreate(ctx context.Context, exec repositories.SQLExecutor, results []models.MatchResult) error {
	f.created = append(f.created, results...)
	f.history = append(f.history, results...)
	return nil
}

func (f *fakeMatchResultRepo) ListByCategory(ctx context.Context, exec repositories.SQLExecutor, scheduleID, categoryID string) ([]models.MatchResult, error) {
	var out []models.MatchResult
	for _, res := range f.history {
		if res.ScheduleID == scheduleID && res.CategoryID == categoryID {
			out = append(out, res)
		}
	}
	return out, nil
}

type fakeSnapshotStore struct {
	puts    map[string][]byte
	deletes []string
	err     error
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{puts: make(map[string][]byte)}
}

func (f *fakeSnapshotStore) PutJSON(ctx context.Context, key string, payload []byte) (*storage.SnapshotResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts[key] = payload
	return &storage.SnapshotResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
}

func (f *fakeSnapshotStore) Delete(ctx context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	f.deletes = append(f.deletes, key)
	return nil
}

func (f *fakeSnapshotStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

// eventRoster is a small event used across the service tests: one
// competing category of four athletes, two workouts, one competition day.
func eventRoster() scheduling.Roster {
	athletes := make([]models.Athlete, 0, 4)
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 1; i <= 4; i++ {
		athletes = append(athletes, models.Athlete{
			ID:         athleteID(i),
			FirstName:  "Athlete",
			LastName:   string(rune('A' + i - 1)),
			CategoryID: "elite",
			EventID:    "event-1",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}
	return scheduling.Roster{
		Categories: []models.Category{{ID: "elite", EventID: "event-1", Name: "Elite"}},
		Athletes:   athletes,
		WODs: []models.WOD{
			{ID: "wod-1", EventID: "event-1", Name: "Opener", Movements: []string{"row", "burpee"}},
			{ID: "wod-2", EventID: "event-1", Name: "Final", Movements: []string{"snatch"}},
		},
		Days: []models.CompetitionDay{
			{ID: "day-1", EventID: "event-1", Date: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func athleteID(n int) string {
	return "elite-athlete-" + string(rune('0'+n))
}

func versusConfig() models.ScheduleConfig {
	return models.ScheduleConfig{
		CompetitionMode: models.ModeVersus,
		CategoryHeats:   map[string]int{"elite": 2},
		HeatWODMapping: map[string]map[int]string{
			"elite": {1: "wod-1", 2: "wod-2"},
		},
	}
}
