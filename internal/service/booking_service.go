package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository"
	"github.com/Freeeeeet/studio_booking/internal/repository/base"
	"github.com/Freeeeeet/studio_booking/internal/schedule"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultClassDuration — длительность занятия по умолчанию, минуты
const DefaultClassDuration = 60

type BookingService struct {
	coachStore   CoachStore
	studentStore StudentStore
	availStore   AvailabilityStore
	bookingStore BookingStore
	validate     *validator.Validate
	logger       *zap.Logger
}

func NewBookingService(
	coachStore CoachStore,
	studentStore StudentStore,
	availStore AvailabilityStore,
	bookingStore BookingStore,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		coachStore:   coachStore,
		studentStore: studentStore,
		availStore:   availStore,
		bookingStore: bookingStore,
		validate:     validator.New(),
		logger:       logger,
	}
}

// AdmitBookingInput — запрос на создание записи
type AdmitBookingInput struct {
	StudentName  string `validate:"required"`
	StudentEmail string `validate:"required,email"`
	StudentPhone string
	Level        string `validate:"omitempty,oneof=beginner intermediate advanced"`
	CoachID      int64  `validate:"required"`
	BookingDate  string `validate:"required"` // YYYY-MM-DD
	StartTime    string `validate:"required"` // HH:MM
	Duration     int    `validate:"omitempty,gt=0"`
	ClassType    string
	Notes        string
}

// Admit проверяет запрос на запись и создаёт confirmed запись.
// Проверки идут по порядку, первая провалившаяся решает; побочных
// эффектов до прохождения всех проверок нет:
//  1. обязательные поля -> ValidationError
//  2. пересечение с confirmed записями -> ErrSlotTaken
//  3. запрошенный интервал целиком внутри одного окна -> ErrOutsideAvailability
//  4. идемпотентный поиск/создание студента по email
//  5. атомарная вставка, сериализованная по (тренер, дата)
//
// Интервал не обязан совпадать с границами слота, достаточно попасть в окно.
func (s *BookingService) Admit(ctx context.Context, input AdmitBookingInput) (*model.Booking, error) {
	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, validationErr(fe.Field(), fmt.Sprintf("failed on %q", fe.Tag()))
		}
		return nil, validationErr("", err.Error())
	}

	day, err := schedule.ParseDate(input.BookingDate)
	if err != nil {
		return nil, validationErr("booking_date", "invalid date format, use YYYY-MM-DD")
	}

	start, err := schedule.ToMinutes(input.StartTime)
	if err != nil {
		return nil, validationErr("start_time", "invalid time format, use HH:MM")
	}

	duration := input.Duration
	if duration == 0 {
		duration = DefaultClassDuration
	}
	end := start + duration

	// Первая проверка пересечений против текущих записей отсекает заведомо
	// занятое время. Решающая проверка выполняется в InsertConfirmed под
	// локом по (тренер, дата).
	coachID := input.CoachID
	bookings, err := s.bookingStore.GetConfirmed(ctx, day, &coachID)
	if err != nil {
		return nil, fmt.Errorf("get confirmed bookings: %w", err)
	}
	if schedule.Taken(start, end, bookings) {
		return nil, ErrSlotTaken
	}

	windows, err := s.availStore.GetActiveByWeekday(ctx, schedule.Weekday(day), &coachID)
	if err != nil {
		return nil, fmt.Errorf("get availability windows: %w", err)
	}

	contained := false
	for _, w := range windows {
		if w.StartMinute <= start && w.EndMinute >= end {
			contained = true
			break
		}
	}
	if !contained {
		return nil, ErrOutsideAvailability
	}

	student, err := s.resolveStudent(ctx, input)
	if err != nil {
		return nil, err
	}

	classType := input.ClassType
	if classType == "" {
		classType = "private"
	}

	booking := &model.Booking{
		Reference:   uuid.New(),
		StudentID:   student.ID,
		CoachID:     input.CoachID,
		BookingDate: day,
		StartMinute: start,
		EndMinute:   end,
		ClassType:   classType,
		Notes:       input.Notes,
	}

	if err := s.bookingStore.InsertConfirmed(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrBookingOverlap) {
			// проигравший гонку запрос получает ту же ошибку что и при
			// обычном конфликте
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	booking.StudentName = student.Name
	booking.StudentEmail = student.Email

	s.logger.Info("Booking admitted",
		zap.Int64("booking_id", booking.ID),
		zap.String("reference", booking.Reference.String()),
		zap.Int64("coach_id", booking.CoachID),
		zap.Int64("student_id", student.ID),
		zap.String("date", schedule.FormatDate(day)),
		zap.String("time", fmt.Sprintf("%s-%s", schedule.FromMinutes(start), schedule.FromMinutes(end))),
	)

	return booking, nil
}

// resolveStudent находит студента по email или создаёт нового
func (s *BookingService) resolveStudent(ctx context.Context, input AdmitBookingInput) (*model.Student, error) {
	student, err := s.studentStore.GetByEmail(ctx, input.StudentEmail)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student != nil {
		return student, nil
	}

	level := model.ExperienceLevel(input.Level)
	if level == "" {
		level = model.ExperienceBeginner
	}

	student = &model.Student{
		Name:  input.StudentName,
		Email: input.StudentEmail,
		Phone: input.StudentPhone,
		Level: level,
	}
	if err := s.studentStore.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}

	s.logger.Info("Student created",
		zap.Int64("student_id", student.ID),
		zap.String("email", student.Email),
	)

	return student, nil
}

// ListInput — фильтры списка записей
type ListInput struct {
	CoachID      *int64
	StudentEmail *string
	Date         *string
	Status       *string
	Limit        int
	Offset       int
}

// List возвращает записи по фильтрам, новые первыми
func (s *BookingService) List(ctx context.Context, input ListInput) ([]*model.Booking, error) {
	filter := repository.BookingFilter{
		CoachID:      input.CoachID,
		StudentEmail: input.StudentEmail,
		Limit:        input.Limit,
		Offset:       input.Offset,
	}

	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if input.Date != nil {
		day, err := schedule.ParseDate(*input.Date)
		if err != nil {
			return nil, validationErr("date", "invalid date format, use YYYY-MM-DD")
		}
		filter.Date = &day
	}

	if input.Status != nil {
		if !model.ValidBookingStatus(*input.Status) {
			return nil, validationErr("status", "must be confirmed, cancelled or completed")
		}
		status := model.BookingStatus(*input.Status)
		filter.Status = &status
	}

	bookings, err := s.bookingStore.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}

	return bookings, nil
}

// GetByID получает запись по ID
func (s *BookingService) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	booking, err := s.bookingStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	return booking, nil
}

// UpdateStatus меняет статус записи
func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status string, notes *string) error {
	if !model.ValidBookingStatus(status) {
		return validationErr("status", "must be confirmed, cancelled or completed")
	}

	if err := s.bookingStore.UpdateStatus(ctx, id, model.BookingStatus(status), notes); err != nil {
		if base.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("Booking status updated",
		zap.Int64("booking_id", id),
		zap.String("status", status),
	)

	return nil
}

// Cancel отменяет confirmed запись
func (s *BookingService) Cancel(ctx context.Context, id int64) error {
	if err := s.bookingStore.Cancel(ctx, id); err != nil {
		if base.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("Booking cancelled", zap.Int64("booking_id", id))
	return nil
}

// Upcoming возвращает будущие записи тренера
func (s *BookingService) Upcoming(ctx context.Context, coachID int64, limit int) ([]*model.Booking, error) {
	coach, err := s.coachStore.GetByID(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("get coach: %w", err)
	}
	if coach == nil {
		return nil, ErrNotFound
	}

	if limit <= 0 {
		limit = 10
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	minuteOfDay := now.Hour()*60 + now.Minute()

	bookings, err := s.bookingStore.GetUpcomingByCoachID(ctx, coachID, today, minuteOfDay, limit)
	if err != nil {
		return nil, fmt.Errorf("get upcoming bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}

	return bookings, nil
}
