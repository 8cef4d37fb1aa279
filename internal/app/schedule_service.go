package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/schedbank/schedule-notify/internal/domain"
	"github.com/schedbank/schedule-notify/internal/port"
)

// ScheduleService owns the schedule mutations. Every committed mutation fires
// a queue notification through the notifier; the notifier never fails, so a
// lost notification cannot roll back the mutation that triggered it.
type ScheduleService struct {
	repo     port.ScheduleRepository
	notifier port.ScheduleNotifier
	logger   *zap.Logger
}

func NewScheduleService(repo port.ScheduleRepository, notifier port.ScheduleNotifier, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

type CreateScheduleInput struct {
	CourseID   *int64
	CourseName *string
	StartsAt   time.Time
	EndsAt     time.Time
	Room       string
}

type UpdateScheduleInput struct {
	StartsAt time.Time
	EndsAt   time.Time
	Room     *string
}

func (s *ScheduleService) Create(ctx context.Context, input CreateScheduleInput) (*domain.Schedule, error) {
	schedule, err := domain.NewSchedule(input.CourseID, input.CourseName, input.StartsAt, input.EndsAt, input.Room)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	s.notifier.NotifySchedule(ctx, domain.EventScheduleCreate, schedule.ID, schedule.CourseID, schedule.CourseName)

	s.logger.Info("schedule created",
		zap.Int64("schedule_id", schedule.ID),
		zap.Time("starts_at", schedule.StartsAt),
	)

	return schedule, nil
}

func (s *ScheduleService) Update(ctx context.Context, id int64, input UpdateScheduleInput) (*domain.Schedule, error) {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := schedule.Reschedule(input.StartsAt, input.EndsAt); err != nil {
		return nil, err
	}
	if input.Room != nil {
		schedule.Room = *input.Room
	}

	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, err
	}

	s.notifier.NotifySchedule(ctx, domain.EventScheduleUpdate, schedule.ID, schedule.CourseID, schedule.CourseName)

	s.logger.Info("schedule updated", zap.Int64("schedule_id", schedule.ID))

	return schedule, nil
}

func (s *ScheduleService) Delete(ctx context.Context, id int64) error {
	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.NotifySchedule(ctx, domain.EventScheduleDelete, schedule.ID, schedule.CourseID, schedule.CourseName)

	s.logger.Info("schedule deleted", zap.Int64("schedule_id", id))

	return nil
}

// DeleteByCourse removes every schedule of a course and fires a single batch
// notification carrying the deleted count, even when the count is zero.
func (s *ScheduleService) DeleteByCourse(ctx context.Context, courseID int64) (int, error) {
	count, err := s.repo.DeleteByCourse(ctx, courseID)
	if err != nil {
		return 0, err
	}

	s.notifier.NotifyBatch(ctx, domain.EventScheduleBulkDelete, count)

	s.logger.Info("schedules deleted for course",
		zap.Int64("course_id", courseID),
		zap.Int("count", count),
	)

	return count, nil
}

func (s *ScheduleService) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ScheduleService) List(ctx context.Context, courseID *int64) ([]*domain.Schedule, error) {
	return s.repo.List(ctx, courseID)
}
