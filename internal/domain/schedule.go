package domain

import (
	"fmt"
	"strings"
	"time"
)

// Event names carried in the queue payload when schedule records change.
const (
	EventScheduleCreate     = "SCHEDULE_CREATE"
	EventScheduleUpdate     = "SCHEDULE_UPDATE"
	EventScheduleDelete     = "SCHEDULE_DELETE"
	EventScheduleBulkDelete = "SCHEDULE_BULK_DELETE"
)

const maxRoomLength = 64

// Schedule is a single timetable entry. Course fields are optional because a
// slot can be blocked out before a course is assigned to it.
type Schedule struct {
	ID         int64
	CourseID   *int64
	CourseName *string
	StartsAt   time.Time
	EndsAt     time.Time
	Room       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewSchedule(courseID *int64, courseName *string, startsAt, endsAt time.Time, room string) (*Schedule, error) {
	if err := validateTimeRange(startsAt, endsAt); err != nil {
		return nil, err
	}
	if err := validateCourse(courseID, courseName); err != nil {
		return nil, err
	}
	if len(room) > maxRoomLength {
		return nil, fmt.Errorf("%w: max %d characters", ErrRoomTooLong, maxRoomLength)
	}

	now := time.Now().UTC()
	return &Schedule{
		CourseID:   courseID,
		CourseName: courseName,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
		Room:       room,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Reschedule moves the entry to a new time range.
func (s *Schedule) Reschedule(startsAt, endsAt time.Time) error {
	if err := validateTimeRange(startsAt, endsAt); err != nil {
		return err
	}
	s.StartsAt = startsAt
	s.EndsAt = endsAt
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// AssignCourse binds a course to the entry.
func (s *Schedule) AssignCourse(courseID int64, courseName string) error {
	if err := validateCourse(&courseID, &courseName); err != nil {
		return err
	}
	s.CourseID = &courseID
	s.CourseName = &courseName
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// ClearCourse detaches any course from the entry.
func (s *Schedule) ClearCourse() {
	s.CourseID = nil
	s.CourseName = nil
	s.UpdatedAt = time.Now().UTC()
}

func validateTimeRange(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() || endsAt.IsZero() {
		return ErrEmptyTimeRange
	}
	if !endsAt.After(startsAt) {
		return fmt.Errorf("%w: %s is not after %s", ErrInvalidTimeRange,
			endsAt.Format(time.RFC3339), startsAt.Format(time.RFC3339))
	}
	return nil
}

func validateCourse(courseID *int64, courseName *string) error {
	if courseID != nil && *courseID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCourseID, *courseID)
	}
	if courseName != nil && strings.TrimSpace(*courseName) == "" {
		return ErrEmptyCourseName
	}
	return nil
}
