package app

import (
	"context"
	"sort"
	"sync"

	"github.com/schedbank/schedule-notify/internal/domain"
)

type mockScheduleRepo struct {
	mu        sync.Mutex
	nextID    int64
	schedules map[int64]*domain.Schedule

	createErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{
		nextID:    1,
		schedules: make(map[int64]*domain.Schedule),
	}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *domain.Schedule) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	schedule.ID = m.nextID
	m.nextID++
	m.schedules[schedule.ID] = schedule
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id int64) (*domain.Schedule, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.schedules[id]
	if !ok {
		return nil, domain.ErrScheduleNotFound
	}
	return s, nil
}

func (m *mockScheduleRepo) List(_ context.Context, courseID *int64) ([]*domain.Schedule, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*domain.Schedule, 0, len(m.schedules))
	for _, s := range m.schedules {
		if courseID != nil && (s.CourseID == nil || *s.CourseID != *courseID) {
			continue
		}
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *domain.Schedule) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.schedules[schedule.ID]; !ok {
		return domain.ErrScheduleNotFound
	}
	m.schedules[schedule.ID] = schedule
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.schedules[id]; !ok {
		return domain.ErrScheduleNotFound
	}
	delete(m.schedules, id)
	return nil
}

func (m *mockScheduleRepo) DeleteByCourse(_ context.Context, courseID int64) (int, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for id, s := range m.schedules {
		if s.CourseID != nil && *s.CourseID == courseID {
			delete(m.schedules, id)
			count++
		}
	}
	return count, nil
}

type notifyCall struct {
	event      string
	scheduleID int64
	courseID   *int64
	courseName *string
}

type batchCall struct {
	event string
	count int
}

// recordingNotifier captures notify calls without ever failing, matching the
// port.ScheduleNotifier contract.
type recordingNotifier struct {
	mu         sync.Mutex
	notifies   []notifyCall
	batchCalls []batchCall
}

func (n *recordingNotifier) NotifySchedule(_ context.Context, event string, scheduleID int64, courseID *int64, courseName *string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifies = append(n.notifies, notifyCall{
		event:      event,
		scheduleID: scheduleID,
		courseID:   courseID,
		courseName: courseName,
	})
}

func (n *recordingNotifier) NotifyBatch(_ context.Context, event string, count int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.batchCalls = append(n.batchCalls, batchCall{event: event, count: count})
}
