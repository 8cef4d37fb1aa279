package port

import "context"

// ScheduleNotifier publishes best-effort change events for schedule records.
//
// Notifications are a side channel to the business operation that triggered
// them, so neither method returns an error: implementations must swallow every
// failure internally and surface it through logs and metrics only.
type ScheduleNotifier interface {
	// NotifySchedule announces a change to a single schedule. Course fields
	// are included in the payload only when non-nil.
	NotifySchedule(ctx context.Context, event string, scheduleID int64, courseID *int64, courseName *string)

	// NotifyBatch announces a change affecting scheduleCount schedules at once.
	NotifyBatch(ctx context.Context, event string, scheduleCount int)
}
