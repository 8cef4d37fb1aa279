package queue

// ScheduleEvent is the queue payload for a single schedule change. The course
// fields are omitted from the serialized body when nil; consumers must treat
// a missing key, not a null value, as "absent".
type ScheduleEvent struct {
	Event      string  `json:"event"`
	ScheduleID int64   `json:"scheduleId"`
	Timestamp  int64   `json:"timestamp"`
	CourseID   *int64  `json:"courseId,omitempty"`
	CourseName *string `json:"courseName,omitempty"`
}

// BatchEvent is the queue payload for a change affecting several schedules.
type BatchEvent struct {
	Event         string `json:"event"`
	ScheduleCount int    `json:"scheduleCount"`
	Timestamp     int64  `json:"timestamp"`
}
