package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository"
	"github.com/Freeeeeet/studio_booking/internal/schedule"
	"github.com/jackc/pgx/v5"
)

// In-memory моки хранилищ. mockBookingStore повторяет дисциплину
// сериализации БД: проверка пересечений и вставка под одним мьютексом.

type mockCoachStore struct {
	mu      sync.Mutex
	coaches []*model.Coach
	nextID  int64
}

func (m *mockCoachStore) add(coach *model.Coach) *model.Coach {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	coach.ID = m.nextID
	coach.IsActive = true
	m.coaches = append(m.coaches, coach)
	return coach
}

func (m *mockCoachStore) GetAllActive(_ context.Context) ([]*model.Coach, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Coach
	for _, c := range m.coaches {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockCoachStore) GetByID(_ context.Context, id int64) (*model.Coach, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.coaches {
		if c.ID == id && c.IsActive {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCoachStore) Create(_ context.Context, coach *model.Coach) error {
	m.add(coach)
	coach.CreatedAt = time.Now()
	coach.UpdatedAt = coach.CreatedAt
	return nil
}

func (m *mockCoachStore) Update(_ context.Context, updated *model.Coach) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.coaches {
		if c.ID == updated.ID && c.IsActive {
			m.coaches[i] = updated
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *mockCoachStore) Deactivate(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.coaches {
		if c.ID == id && c.IsActive {
			c.IsActive = false
			return nil
		}
	}
	return pgx.ErrNoRows
}

type mockStudentStore struct {
	mu          sync.Mutex
	students    []*model.Student
	nextID      int64
	createCalls int
}

func (m *mockStudentStore) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (m *mockStudentStore) Create(_ context.Context, student *model.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.createCalls++
	student.ID = m.nextID
	student.CreatedAt = time.Now()
	m.students = append(m.students, student)
	return nil
}

type mockAvailabilityStore struct {
	mu      sync.Mutex
	windows []*model.AvailabilityWindow
	nextID  int64
}

func (m *mockAvailabilityStore) add(w *model.AvailabilityWindow) *model.AvailabilityWindow {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	w.ID = m.nextID
	m.windows = append(m.windows, w)
	return w
}

func (m *mockAvailabilityStore) Create(_ context.Context, w *model.AvailabilityWindow) error {
	m.add(w)
	w.CreatedAt = time.Now()
	w.UpdatedAt = w.CreatedAt
	return nil
}

func (m *mockAvailabilityStore) GetByID(_ context.Context, id int64) (*model.AvailabilityWindow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.windows {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (m *mockAvailabilityStore) GetActiveByCoachID(_ context.Context, coachID int64) ([]*model.AvailabilityWindow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.AvailabilityWindow
	for _, w := range m.windows {
		if w.CoachID == coachID && w.IsActive {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *mockAvailabilityStore) GetActiveByWeekday(_ context.Context, dayOfWeek int, coachID *int64) ([]*model.AvailabilityWindow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.AvailabilityWindow
	for _, w := range m.windows {
		if !w.IsActive || w.DayOfWeek != dayOfWeek {
			continue
		}
		if coachID != nil && w.CoachID != *coachID {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (m *mockAvailabilityStore) Update(_ context.Context, updated *model.AvailabilityWindow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, w := range m.windows {
		if w.ID == updated.ID && w.IsActive {
			m.windows[i] = updated
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *mockAvailabilityStore) Deactivate(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.windows {
		if w.ID == id && w.IsActive {
			w.IsActive = false
			return nil
		}
	}
	return pgx.ErrNoRows
}

type mockBookingStore struct {
	mu       sync.Mutex
	bookings []*model.Booking
	nextID   int64
}

func (m *mockBookingStore) InsertConfirmed(_ context.Context, booking *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.CoachID == booking.CoachID &&
			b.BookingDate.Equal(booking.BookingDate) &&
			b.Status == model.BookingStatusConfirmed &&
			schedule.Overlaps(booking.StartMinute, booking.EndMinute, b.StartMinute, b.EndMinute) {
			return repository.ErrBookingOverlap
		}
	}

	m.nextID++
	booking.ID = m.nextID
	booking.Status = model.BookingStatusConfirmed
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	m.bookings = append(m.bookings, booking)
	return nil
}

func (m *mockBookingStore) GetConfirmed(_ context.Context, date time.Time, coachID *int64) ([]*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Booking
	for _, b := range m.bookings {
		if b.Status != model.BookingStatusConfirmed || !b.BookingDate.Equal(date) {
			continue
		}
		if coachID != nil && b.CoachID != *coachID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *mockBookingStore) List(_ context.Context, filter repository.BookingFilter) ([]*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Booking
	for _, b := range m.bookings {
		if filter.CoachID != nil && b.CoachID != *filter.CoachID {
			continue
		}
		if filter.StudentEmail != nil && b.StudentEmail != *filter.StudentEmail {
			continue
		}
		if filter.Date != nil && !b.BookingDate.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *mockBookingStore) GetByID(_ context.Context, id int64) (*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (m *mockBookingStore) GetUpcomingByCoachID(_ context.Context, coachID int64, after time.Time, afterMinute int, limit int) ([]*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Booking
	for _, b := range m.bookings {
		if b.CoachID != coachID || b.Status != model.BookingStatusConfirmed {
			continue
		}
		if b.BookingDate.After(after) || (b.BookingDate.Equal(after) && b.StartMinute > afterMinute) {
			out = append(out, b)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockBookingStore) UpdateStatus(_ context.Context, id int64, status model.BookingStatus, notes *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			b.Status = status
			if notes != nil {
				b.Notes = *notes
			}
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *mockBookingStore) Cancel(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id && b.Status == model.BookingStatusConfirmed {
			b.Status = model.BookingStatusCancelled
			return nil
		}
	}
	return pgx.ErrNoRows
}
