package port

import (
	"context"

	"github.com/schedbank/schedule-notify/internal/domain"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	List(ctx context.Context, courseID *int64) ([]*domain.Schedule, error)
	Update(ctx context.Context, schedule *domain.Schedule) error
	Delete(ctx context.Context, id int64) error
	DeleteByCourse(ctx context.Context, courseID int64) (int, error)
}
