package http

import (
	"time"

	"github.com/schedbank/schedule-notify/internal/app"
	"github.com/schedbank/schedule-notify/internal/domain"
)

type CreateScheduleRequest struct {
	CourseID   *int64     `json:"course_id,omitempty"`
	CourseName *string    `json:"course_name,omitempty"`
	StartsAt   *time.Time `json:"starts_at" binding:"required"`
	EndsAt     *time.Time `json:"ends_at" binding:"required"`
	Room       string     `json:"room,omitempty"`
}

func (r *CreateScheduleRequest) ToInput() app.CreateScheduleInput {
	return app.CreateScheduleInput{
		CourseID:   r.CourseID,
		CourseName: r.CourseName,
		StartsAt:   *r.StartsAt,
		EndsAt:     *r.EndsAt,
		Room:       r.Room,
	}
}

type UpdateScheduleRequest struct {
	StartsAt *time.Time `json:"starts_at" binding:"required"`
	EndsAt   *time.Time `json:"ends_at" binding:"required"`
	Room     *string    `json:"room,omitempty"`
}

func (r *UpdateScheduleRequest) ToInput() app.UpdateScheduleInput {
	return app.UpdateScheduleInput{
		StartsAt: *r.StartsAt,
		EndsAt:   *r.EndsAt,
		Room:     r.Room,
	}
}

type ScheduleResponse struct {
	ID         int64     `json:"id"`
	CourseID   *int64    `json:"course_id,omitempty"`
	CourseName *string   `json:"course_name,omitempty"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	Room       string    `json:"room,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewScheduleResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:         s.ID,
		CourseID:   s.CourseID,
		CourseName: s.CourseName,
		StartsAt:   s.StartsAt,
		EndsAt:     s.EndsAt,
		Room:       s.Room,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func NewScheduleListResponse(schedules []*domain.Schedule) ListResponse[ScheduleResponse] {
	data := make([]ScheduleResponse, len(schedules))
	for i, s := range schedules {
		data[i] = NewScheduleResponse(s)
	}
	return ListResponse[ScheduleResponse]{Data: data, Count: len(data)}
}

type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}
