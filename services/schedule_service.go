package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/velez94/scoringames-sub000/live"
	"github.com/velez94/scoringames-sub000/metrics"
	"github.com/velez94/scoringames-sub000/models"
	"github.com/velez94/scoringames-sub000/repositories"
	"github.com/velez94/scoringames-sub000/scheduling"
	"github.com/velez94/scoringames-sub000/storage"
)

// ScheduleService owns the schedule lifecycle: generation, regeneration,
// publication and the snapshot/broadcast side effects that go with it.
type ScheduleService interface {
	Generate(ctx context.Context, eventID string, cfg models.ScheduleConfig) (*models.Schedule, error)
	Regenerate(ctx context.Context, eventID, scheduleID string, cfg models.ScheduleConfig) (*models.Schedule, error)
	GetByID(ctx context.Context, eventID, scheduleID string) (*models.Schedule, error)
	ListByEvent(ctx context.Context, eventID string) ([]*models.Schedule, error)
	Publish(ctx context.Context, eventID, scheduleID string) (*models.Schedule, error)
	Unpublish(ctx context.Context, eventID, scheduleID string) error
	Delete(ctx context.Context, eventID, scheduleID string) error
}

type scheduleService struct {
	db           *sql.DB
	roster       RosterService
	scheduleRepo repositories.ScheduleRepository
	snapshots    storage.SnapshotStore
	hub          *live.Hub
	logger       *slog.Logger
	now          func() time.Time
}

func NewScheduleService(
	db *sql.DB,
	roster RosterService,
	scheduleRepo repositories.ScheduleRepository,
	snapshots storage.SnapshotStore,
	hub *live.Hub,
	logger *slog.Logger,
) ScheduleService {
	return &scheduleService{
		db:           db,
		roster:       roster,
		scheduleRepo: scheduleRepo,
		snapshots:    snapshots,
		hub:          hub,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *scheduleService) Generate(ctx context.Context, eventID string, cfg models.ScheduleConfig) (*models.Schedule, error) {
	started := s.now()

	roster, err := s.roster.LoadRoster(ctx, eventID)
	if err != nil {
		return nil, err
	}

	schedule, err := scheduling.BuildSchedule(eventID, cfg, roster, started)
	if err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.Create(ctx, nil, schedule); err != nil {
		return nil, fmt.Errorf("failed to store generated schedule: %w", err)
	}

	metrics.SchedulesGenerated.WithLabelValues(string(schedule.Config.CompetitionMode)).Inc()
	metrics.GenerationSeconds.Observe(time.Since(started).Seconds())
	s.logger.Info("schedule generated",
		"event_id", eventID, "schedule_id", schedule.ID,
		"mode", schedule.Config.CompetitionMode, "days", len(schedule.Days))

	s.broadcast(eventID, live.EventScheduleGenerated, schedule)
	return schedule, nil
}

// Regenerate rebuilds a schedule in place from the current roster and
// config, keeping its identity. A published schedule is immutable until
// unpublished.
func (s *scheduleService) Regenerate(ctx context.Context, eventID, scheduleID string, cfg models.ScheduleConfig) (*models.Schedule, error) {
	existing, err := s.scheduleRepo.GetByID(ctx, nil, eventID, scheduleID)
	if err != nil {
		return nil, err
	}
	if existing.Published {
		return nil, ErrScheduleAlreadyPublished
	}

	started := s.now()
	roster, err := s.roster.LoadRoster(ctx, eventID)
	if err != nil {
		return nil, err
	}

	schedule, err := scheduling.BuildSchedule(eventID, cfg, roster, started)
	if err != nil {
		return nil, err
	}
	schedule.ID = existing.ID

	if err := s.scheduleRepo.Update(ctx, nil, schedule); err != nil {
		return nil, fmt.Errorf("failed to store regenerated schedule: %w", err)
	}

	metrics.SchedulesGenerated.WithLabelValues(string(schedule.Config.CompetitionMode)).Inc()
	metrics.GenerationSeconds.Observe(time.Since(started).Seconds())
	s.logger.Info("schedule regenerated", "event_id", eventID, "schedule_id", schedule.ID)

	s.broadcast(eventID, live.EventScheduleGenerated, schedule)
	return schedule, nil
}

func (s *scheduleService) GetByID(ctx context.Context, eventID, scheduleID string) (*models.Schedule, error) {
	return s.scheduleRepo.GetByID(ctx, nil, eventID, scheduleID)
}

func (s *scheduleService) ListByEvent(ctx context.Context, eventID string) ([]*models.Schedule, error) {
	return s.scheduleRepo.ListByEvent(ctx, nil, eventID)
}

// Publish makes the schedule the event's single published timetable.
// Any previously published schedule for the event is unpublished in the
// same transaction. The CDN snapshot is written after commit; a snapshot
// failure is logged but does not unpublish.
func (s *scheduleService) Publish(ctx context.Context, eventID, scheduleID string) (*models.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, nil, eventID, scheduleID)
	if err != nil {
		return nil, err
	}

	if err := s.setPublishedTx(ctx, eventID, scheduleID); err != nil {
		return nil, err
	}

	schedule.Published = true
	metrics.SchedulesPublished.Inc()
	s.logger.Info("schedule published", "event_id", eventID, "schedule_id", scheduleID)

	s.writeSnapshot(ctx, eventID, schedule)
	s.broadcast(eventID, live.EventSchedulePublished, schedule)
	return schedule, nil
}

// setPublishedTx flips the published flag inside one transaction,
// unpublishing any other schedule of the event so at most one stays
// published.
func (s *scheduleService) setPublishedTx(ctx context.Context, eventID, scheduleID string) (err error) {
	tx, beginErr := s.db.BeginTx(ctx, nil)
	if beginErr != nil {
		return fmt.Errorf("failed to begin transaction: %w", beginErr)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error("rollback failed", "error", rbErr, "cause", err)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	if err = s.scheduleRepo.UnpublishAllByEvent(ctx, tx, eventID); err != nil {
		return err
	}
	err = s.scheduleRepo.SetPublished(ctx, tx, eventID, scheduleID, true)
	return err
}

func (s *scheduleService) Unpublish(ctx context.Context, eventID, scheduleID string) error {
	if err := s.scheduleRepo.SetPublished(ctx, nil, eventID, scheduleID, false); err != nil {
		return err
	}

	if s.snapshots != nil {
		if err := s.snapshots.Delete(ctx, snapshotKey(eventID)); err != nil {
			s.logger.Error("failed to delete schedule snapshot", "event_id", eventID, "error", err)
		}
	}

	s.logger.Info("schedule unpublished", "event_id", eventID, "schedule_id", scheduleID)
	s.broadcast(eventID, live.EventScheduleUnpublished, map[string]string{"schedule_id": scheduleID})
	return nil
}

func (s *scheduleService) Delete(ctx context.Context, eventID, scheduleID string) error {
	schedule, err := s.scheduleRepo.GetByID(ctx, nil, eventID, scheduleID)
	if err != nil {
		return err
	}
	if schedule.Published {
		return ErrScheduleAlreadyPublished
	}
	return s.scheduleRepo.Delete(ctx, nil, eventID, scheduleID)
}

func snapshotKey(eventID string) string {
	return fmt.Sprintf("events/%s/schedule.json", eventID)
}

func (s *scheduleService) writeSnapshot(ctx context.Context, eventID string, schedule *models.Schedule) {
	if s.snapshots == nil {
		return
	}
	payload, err := json.Marshal(schedule)
	if err != nil {
		s.logger.Error("failed to marshal schedule snapshot", "event_id", eventID, "error", err)
		return
	}
	result, err := s.snapshots.PutJSON(ctx, snapshotKey(eventID), payload)
	if err != nil {
		s.logger.Error("failed to upload schedule snapshot", "event_id", eventID, "error", err)
		return
	}
	s.logger.Info("schedule snapshot uploaded", "event_id", eventID, "location", result.Location)
}

func (s *scheduleService) broadcast(eventID, eventType string, payload interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToRoom(live.EventRoom(eventID), eventType, payload)
}
