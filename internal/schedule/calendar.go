package schedule

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
)

// BuildDailyCalendar строит дневной календарь по всем тренерам.
// Чистая проекция: (окна доступности + записи) -> календарь, без состояния.
// windows должны относиться к дню недели даты, bookings — confirmed записи этой даты.
func BuildDailyCalendar(
	date time.Time,
	coaches []*model.Coach,
	windows []*model.AvailabilityWindow,
	bookings []*model.Booking,
) (*model.DailyCalendar, error) {
	weekday := Weekday(date)

	cal := &model.DailyCalendar{
		Date:           FormatDate(date),
		DayOfWeek:      weekday,
		DayName:        DayName(weekday),
		TotalCoaches:   len(coaches),
		BookedSlots:    len(bookings),
		TimeSlots:      []*model.TimeBucket{},
		CoachSummaries: []*model.CoachDaySummary{},
	}

	sorted := make([]*model.Coach, len(coaches))
	copy(sorted, coaches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	buckets := make(map[int][]*model.CalendarSlot)

	for _, coach := range sorted {
		var coachWindows []*model.AvailabilityWindow
		for _, w := range windows {
			if w.CoachID == coach.ID && w.IsActive && w.DayOfWeek == weekday {
				coachWindows = append(coachWindows, w)
			}
		}

		var coachBookings []*model.Booking
		for _, b := range bookings {
			if b.CoachID == coach.ID {
				coachBookings = append(coachBookings, b)
			}
		}

		summary := &model.CoachDaySummary{
			CoachID:     coach.ID,
			CoachName:   coach.Name,
			Specialties: coach.Specialties,
			BookedSlots: len(coachBookings),
		}

		for _, w := range coachWindows {
			slots, err := WindowSlots(w)
			if err != nil {
				return nil, fmt.Errorf("expand window %d: %w", w.ID, err)
			}

			for slot := range slots {
				summary.TotalSlots++

				cs := &model.CalendarSlot{
					CoachID:          coach.ID,
					CoachName:        coach.Name,
					CoachSpecialties: coach.Specialties,
					TimeSlot:         fmt.Sprintf("%s - %s", FromMinutes(slot.Start), FromMinutes(slot.End)),
					StartTime:        FromMinutes(slot.Start),
					EndTime:          FromMinutes(slot.End),
					Status:           model.SlotStatusAvailable,
					ClassType:        "private",
				}

				if b := FindBooking(slot.Start, slot.End, coachBookings); b != nil {
					cs.Status = model.SlotStatusBooked
					cs.BookingID = b.ID
					cs.StudentName = b.StudentName
					if b.ClassType != "" {
						cs.ClassType = b.ClassType
					}
				} else {
					summary.AvailableSlots++
				}

				buckets[slot.Start] = append(buckets[slot.Start], cs)
			}
		}

		cal.AvailableSlots += summary.AvailableSlots
		cal.CoachSummaries = append(cal.CoachSummaries, summary)
	}

	starts := make([]int, 0, len(buckets))
	for start := range buckets {
		starts = append(starts, start)
	}
	sort.Ints(starts)

	for _, start := range starts {
		slots := buckets[start]
		sort.Slice(slots, func(i, j int) bool { return slots[i].CoachName < slots[j].CoachName })
		cal.TimeSlots = append(cal.TimeSlots, &model.TimeBucket{
			Time:  FromMinutes(start),
			Slots: slots,
		})
	}

	cal.Utilization = Utilization(cal.BookedSlots, cal.AvailableSlots)

	return cal, nil
}

// Utilization возвращает загрузку в процентах: booked / (booked + available),
// округлённую до ближайшего процента. Ноль при пустом знаменателе.
func Utilization(booked, available int) int {
	total := booked + available
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(booked) / float64(total) * 100))
}
