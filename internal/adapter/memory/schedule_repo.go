package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/schedbank/schedule-notify/internal/domain"
)

// ScheduleRepo is an in-memory port.ScheduleRepository. The real deployment
// sits on a relational store owned by another part of the platform; this repo
// backs the service and its tests.
type ScheduleRepo struct {
	mu        sync.RWMutex
	nextID    int64
	schedules map[int64]*domain.Schedule
}

func NewScheduleRepo() *ScheduleRepo {
	return &ScheduleRepo{
		nextID:    1,
		schedules: make(map[int64]*domain.Schedule),
	}
}

func (r *ScheduleRepo) Create(_ context.Context, schedule *domain.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	schedule.ID = r.nextID
	r.nextID++

	stored := *schedule
	r.schedules[stored.ID] = &stored
	return nil
}

func (r *ScheduleRepo) GetByID(_ context.Context, id int64) (*domain.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.schedules[id]
	if !ok {
		return nil, domain.ErrScheduleNotFound
	}

	out := *stored
	return &out, nil
}

func (r *ScheduleRepo) List(_ context.Context, courseID *int64) ([]*domain.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Schedule, 0, len(r.schedules))
	for _, stored := range r.schedules {
		if courseID != nil && (stored.CourseID == nil || *stored.CourseID != *courseID) {
			continue
		}
		out := *stored
		result = append(result, &out)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *ScheduleRepo) Update(_ context.Context, schedule *domain.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schedules[schedule.ID]; !ok {
		return domain.ErrScheduleNotFound
	}

	stored := *schedule
	r.schedules[stored.ID] = &stored
	return nil
}

func (r *ScheduleRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schedules[id]; !ok {
		return domain.ErrScheduleNotFound
	}

	delete(r.schedules, id)
	return nil
}

// DeleteByCourse removes every schedule bound to the course and returns how
// many were removed. Deleting for an unknown course is not an error; the
// count is simply zero.
func (r *ScheduleRepo) DeleteByCourse(_ context.Context, courseID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for id, stored := range r.schedules {
		if stored.CourseID != nil && *stored.CourseID == courseID {
			delete(r.schedules, id)
			count++
		}
	}
	return count, nil
}
