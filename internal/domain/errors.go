package domain

import "errors"

var (
	ErrEmptyTimeRange   = errors.New("start and end times are required")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrInvalidCourseID  = errors.New("course id must be positive")
	ErrEmptyCourseName  = errors.New("course name is required")
	ErrRoomTooLong      = errors.New("room exceeds character limit")
	ErrScheduleNotFound = errors.New("schedule not found")
)
