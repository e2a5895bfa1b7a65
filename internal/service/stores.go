package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository"
)

// Интерфейсы хранилищ, которые потребляют сервисы.
// Реализуются репозиториями из internal/repository, в тестах подменяются моками.

type CoachStore interface {
	GetAllActive(ctx context.Context) ([]*model.Coach, error)
	GetByID(ctx context.Context, id int64) (*model.Coach, error)
	Create(ctx context.Context, coach *model.Coach) error
	Update(ctx context.Context, coach *model.Coach) error
	Deactivate(ctx context.Context, id int64) error
}

type StudentStore interface {
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	Create(ctx context.Context, student *model.Student) error
}

type AvailabilityStore interface {
	Create(ctx context.Context, w *model.AvailabilityWindow) error
	GetByID(ctx context.Context, id int64) (*model.AvailabilityWindow, error)
	GetActiveByCoachID(ctx context.Context, coachID int64) ([]*model.AvailabilityWindow, error)
	GetActiveByWeekday(ctx context.Context, dayOfWeek int, coachID *int64) ([]*model.AvailabilityWindow, error)
	Update(ctx context.Context, w *model.AvailabilityWindow) error
	Deactivate(ctx context.Context, id int64) error
}

type BookingStore interface {
	InsertConfirmed(ctx context.Context, booking *model.Booking) error
	GetConfirmed(ctx context.Context, date time.Time, coachID *int64) ([]*model.Booking, error)
	List(ctx context.Context, filter repository.BookingFilter) ([]*model.Booking, error)
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	GetUpcomingByCoachID(ctx context.Context, coachID int64, after time.Time, afterMinute int, limit int) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status model.BookingStatus, notes *string) error
	Cancel(ctx context.Context, id int64) error
}
