package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository/base"
	"github.com/Freeeeeet/studio_booking/internal/schedule"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService struct {
	coachStore   CoachStore
	availStore   AvailabilityStore
	bookingStore BookingStore
	logger       *zap.Logger
}

func NewAvailabilityService(
	coachStore CoachStore,
	availStore AvailabilityStore,
	bookingStore BookingStore,
	logger *zap.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		coachStore:   coachStore,
		availStore:   availStore,
		bookingStore: bookingStore,
		logger:       logger,
	}
}

// QueryOpenSlots возвращает свободные для записи слоты на дату,
// опционально по одному тренеру. Результат отсортирован по имени тренера,
// затем по времени начала. Отсутствие доступности — не ошибка, вернётся
// пустой список.
func (s *AvailabilityService) QueryOpenSlots(ctx context.Context, date string, coachID *int64) ([]*model.AvailableSlot, error) {
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, validationErr("date", "invalid date format, use YYYY-MM-DD")
	}

	coaches, err := s.coachStore.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get coaches: %w", err)
	}

	coachByID := make(map[int64]*model.Coach, len(coaches))
	for _, c := range coaches {
		coachByID[c.ID] = c
	}

	windows, err := s.availStore.GetActiveByWeekday(ctx, schedule.Weekday(day), coachID)
	if err != nil {
		return nil, fmt.Errorf("get availability windows: %w", err)
	}

	bookings, err := s.bookingStore.GetConfirmed(ctx, day, coachID)
	if err != nil {
		return nil, fmt.Errorf("get confirmed bookings: %w", err)
	}

	bookingsByCoach := make(map[int64][]*model.Booking)
	for _, b := range bookings {
		bookingsByCoach[b.CoachID] = append(bookingsByCoach[b.CoachID], b)
	}

	open := []*model.AvailableSlot{}
	for _, w := range windows {
		coach, ok := coachByID[w.CoachID]
		if !ok {
			// окно неактивного тренера не участвует в выдаче
			continue
		}

		slots, err := schedule.WindowSlots(w)
		if err != nil {
			return nil, fmt.Errorf("expand window %d: %w", w.ID, err)
		}

		for slot := range slots {
			if schedule.Taken(slot.Start, slot.End, bookingsByCoach[w.CoachID]) {
				continue
			}
			open = append(open, &model.AvailableSlot{
				CoachID:   coach.ID,
				CoachName: coach.Name,
				Date:      schedule.FormatDate(day),
				StartTime: schedule.FromMinutes(slot.Start),
				EndTime:   schedule.FromMinutes(slot.End),
				Duration:  w.SlotDuration,
			})
		}
	}

	// Порядок выдачи — часть контракта: потребитель отображает список как есть
	sort.Slice(open, func(i, j int) bool {
		if open[i].CoachName != open[j].CoachName {
			return open[i].CoachName < open[j].CoachName
		}
		return open[i].StartTime < open[j].StartTime
	})

	return open, nil
}

// CoachWindows возвращает активные окна доступности тренера
func (s *AvailabilityService) CoachWindows(ctx context.Context, coachID int64) ([]*model.AvailabilityWindow, error) {
	coach, err := s.coachStore.GetByID(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("get coach: %w", err)
	}
	if coach == nil {
		return nil, ErrNotFound
	}

	windows, err := s.availStore.GetActiveByCoachID(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("get availability windows: %w", err)
	}
	if windows == nil {
		windows = []*model.AvailabilityWindow{}
	}

	return windows, nil
}

// CreateWindowsInput — запрос на создание окон доступности.
// Несколько дней недели создаются одной группой с общим GroupID.
type CreateWindowsInput struct {
	CoachID      int64
	Days         []int
	StartTime    string // HH:MM
	EndTime      string // HH:MM
	SlotDuration int    // минуты, по умолчанию 60
}

// CreateWindows создаёт окна доступности тренера на указанные дни недели
func (s *AvailabilityService) CreateWindows(ctx context.Context, input CreateWindowsInput) ([]*model.AvailabilityWindow, error) {
	if len(input.Days) == 0 {
		return nil, validationErr("day_of_week", "at least one day is required")
	}
	for _, d := range input.Days {
		if d < 0 || d > 6 {
			return nil, validationErr("day_of_week", "must be between 0 (Sunday) and 6 (Saturday)")
		}
	}

	start, err := schedule.ToMinutes(input.StartTime)
	if err != nil {
		return nil, validationErr("start_time", "invalid time format, use HH:MM")
	}
	end, err := schedule.ToMinutes(input.EndTime)
	if err != nil {
		return nil, validationErr("end_time", "invalid time format, use HH:MM")
	}
	if start >= end {
		return nil, validationErr("end_time", "must be after start_time")
	}

	duration := input.SlotDuration
	if duration == 0 {
		duration = 60
	}
	if duration < 0 {
		return nil, schedule.ErrInvalidSlotDuration
	}

	coach, err := s.coachStore.GetByID(ctx, input.CoachID)
	if err != nil {
		return nil, fmt.Errorf("get coach: %w", err)
	}
	if coach == nil {
		return nil, ErrNotFound
	}

	groupID := uuid.New()
	windows := make([]*model.AvailabilityWindow, 0, len(input.Days))
	for _, day := range input.Days {
		w := &model.AvailabilityWindow{
			GroupID:      groupID,
			CoachID:      input.CoachID,
			DayOfWeek:    day,
			StartMinute:  start,
			EndMinute:    end,
			SlotDuration: duration,
			IsActive:     true,
		}
		if err := s.availStore.Create(ctx, w); err != nil {
			return nil, fmt.Errorf("create availability window: %w", err)
		}
		windows = append(windows, w)
	}

	s.logger.Info("Availability windows created",
		zap.Int64("coach_id", input.CoachID),
		zap.String("group_id", groupID.String()),
		zap.Int("windows", len(windows)),
	)

	return windows, nil
}

// UpdateWindowInput — частичное обновление окна, nil поля не меняются
type UpdateWindowInput struct {
	DayOfWeek    *int
	StartTime    *string
	EndTime      *string
	SlotDuration *int
}

// UpdateWindow обновляет активное окно доступности
func (s *AvailabilityService) UpdateWindow(ctx context.Context, id int64, input UpdateWindowInput) (*model.AvailabilityWindow, error) {
	if input.DayOfWeek == nil && input.StartTime == nil && input.EndTime == nil && input.SlotDuration == nil {
		return nil, validationErr("", "no fields to update")
	}

	w, err := s.availStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get availability window: %w", err)
	}
	if w == nil || !w.IsActive {
		return nil, ErrNotFound
	}

	if input.DayOfWeek != nil {
		if *input.DayOfWeek < 0 || *input.DayOfWeek > 6 {
			return nil, validationErr("day_of_week", "must be between 0 and 6")
		}
		w.DayOfWeek = *input.DayOfWeek
	}
	if input.StartTime != nil {
		start, err := schedule.ToMinutes(*input.StartTime)
		if err != nil {
			return nil, validationErr("start_time", "invalid time format, use HH:MM")
		}
		w.StartMinute = start
	}
	if input.EndTime != nil {
		end, err := schedule.ToMinutes(*input.EndTime)
		if err != nil {
			return nil, validationErr("end_time", "invalid time format, use HH:MM")
		}
		w.EndMinute = end
	}
	if w.StartMinute >= w.EndMinute {
		return nil, validationErr("end_time", "must be after start_time")
	}
	if input.SlotDuration != nil {
		if *input.SlotDuration <= 0 {
			return nil, schedule.ErrInvalidSlotDuration
		}
		w.SlotDuration = *input.SlotDuration
	}

	if err := s.availStore.Update(ctx, w); err != nil {
		if base.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update availability window: %w", err)
	}

	return w, nil
}

// RemoveWindow выполняет мягкое удаление окна доступности
func (s *AvailabilityService) RemoveWindow(ctx context.Context, id int64) error {
	if err := s.availStore.Deactivate(ctx, id); err != nil {
		if base.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("deactivate availability window: %w", err)
	}

	s.logger.Info("Availability window removed", zap.Int64("window_id", id))
	return nil
}
