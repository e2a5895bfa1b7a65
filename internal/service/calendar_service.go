package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/schedule"
	"go.uber.org/zap"
)

// maxSummaryDays ограничивает длину диапазона сводки:
// агрегация считается честно по дням, без ограничения запрос на год
// превращается в сотни выборок
const maxSummaryDays = 31

type CalendarService struct {
	coachStore   CoachStore
	availStore   AvailabilityStore
	bookingStore BookingStore
	logger       *zap.Logger
}

func NewCalendarService(
	coachStore CoachStore,
	availStore AvailabilityStore,
	bookingStore BookingStore,
	logger *zap.Logger,
) *CalendarService {
	return &CalendarService{
		coachStore:   coachStore,
		availStore:   availStore,
		bookingStore: bookingStore,
		logger:       logger,
	}
}

// Daily строит дневной календарь по всем активным тренерам.
// Проекция пересчитывается целиком на каждый запрос.
func (s *CalendarService) Daily(ctx context.Context, date string) (*model.DailyCalendar, error) {
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, validationErr("date", "invalid date format, use YYYY-MM-DD")
	}

	return s.buildDay(ctx, day)
}

// Weekly строит календари на 7 дней начиная с startDate
func (s *CalendarService) Weekly(ctx context.Context, startDate string) ([]*model.DailyCalendar, error) {
	start, err := schedule.ParseDate(startDate)
	if err != nil {
		return nil, validationErr("start_date", "invalid date format, use YYYY-MM-DD")
	}

	week := make([]*model.DailyCalendar, 0, 7)
	for i := 0; i < 7; i++ {
		cal, err := s.buildDay(ctx, start.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		week = append(week, cal)
	}

	return week, nil
}

// Summary строит по-тренерскую сводку загрузки за диапазон дат
// по настоящим дневным календарям каждой даты
func (s *CalendarService) Summary(ctx context.Context, startDate, endDate string) ([]*model.CoachRangeSummary, error) {
	start, err := schedule.ParseDate(startDate)
	if err != nil {
		return nil, validationErr("start_date", "invalid date format, use YYYY-MM-DD")
	}
	end, err := schedule.ParseDate(endDate)
	if err != nil {
		return nil, validationErr("end_date", "invalid date format, use YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, validationErr("end_date", "must not be before start_date")
	}
	// диапазон считается включительно по датам
	if start.AddDate(0, 0, maxSummaryDays-1).Before(end) {
		return nil, validationErr("end_date", fmt.Sprintf("range must not exceed %d days", maxSummaryDays))
	}

	coaches, err := s.coachStore.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get coaches: %w", err)
	}

	totals := make(map[int64]*model.CoachRangeSummary, len(coaches))
	rangeLabel := fmt.Sprintf("%s to %s", schedule.FormatDate(start), schedule.FormatDate(end))

	summaries := make([]*model.CoachRangeSummary, 0, len(coaches))
	for _, coach := range coaches {
		summary := &model.CoachRangeSummary{
			CoachID:     coach.ID,
			CoachName:   coach.Name,
			Specialties: coach.Specialties,
			DateRange:   rangeLabel,
		}
		totals[coach.ID] = summary
		summaries = append(summaries, summary)
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		cal, err := s.buildDay(ctx, day)
		if err != nil {
			return nil, err
		}

		for _, cs := range cal.CoachSummaries {
			summary, ok := totals[cs.CoachID]
			if !ok {
				continue
			}
			summary.TotalSlots += cs.TotalSlots
			summary.AvailableSlots += cs.AvailableSlots
			summary.BookedSlots += cs.BookedSlots
		}
	}

	for _, summary := range summaries {
		summary.UtilizationRate = schedule.Utilization(summary.BookedSlots, summary.AvailableSlots)
	}

	return summaries, nil
}

func (s *CalendarService) buildDay(ctx context.Context, day time.Time) (*model.DailyCalendar, error) {
	coaches, err := s.coachStore.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get coaches: %w", err)
	}

	windows, err := s.availStore.GetActiveByWeekday(ctx, schedule.Weekday(day), nil)
	if err != nil {
		return nil, fmt.Errorf("get availability windows: %w", err)
	}

	bookings, err := s.bookingStore.GetConfirmed(ctx, day, nil)
	if err != nil {
		return nil, fmt.Errorf("get confirmed bookings: %w", err)
	}

	cal, err := schedule.BuildDailyCalendar(day, coaches, windows, bookings)
	if err != nil {
		return nil, fmt.Errorf("build daily calendar: %w", err)
	}

	return cal, nil
}
