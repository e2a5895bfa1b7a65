package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"go.uber.org/zap"
)

type calendarFixture struct {
	coaches  *mockCoachStore
	windows  *mockAvailabilityStore
	bookings *mockBookingStore
	service  *CalendarService
}

func newCalendarFixture(t *testing.T) *calendarFixture {
	t.Helper()

	f := &calendarFixture{
		coaches:  &mockCoachStore{},
		windows:  &mockAvailabilityStore{},
		bookings: &mockBookingStore{},
	}
	f.service = NewCalendarService(f.coaches, f.windows, f.bookings, zap.NewNop())
	return f
}

func (f *calendarFixture) addCoachWithWindow(name string, dayOfWeek, startMinute, endMinute int) *model.Coach {
	coach := f.coaches.add(&model.Coach{Name: name})
	f.windows.add(&model.AvailabilityWindow{
		CoachID:      coach.ID,
		DayOfWeek:    dayOfWeek,
		StartMinute:  startMinute,
		EndMinute:    endMinute,
		SlotDuration: 60,
		IsActive:     true,
	})
	return coach
}

func (f *calendarFixture) book(t *testing.T, coach *model.Coach, date string, startMinute, endMinute int) {
	t.Helper()
	err := f.bookings.InsertConfirmed(context.Background(), &model.Booking{
		CoachID:     coach.ID,
		StudentName: "Иван Сидоров",
		BookingDate: mustParseDate(t, date),
		StartMinute: startMinute,
		EndMinute:   endMinute,
		ClassType:   "sparring",
	})
	if err != nil {
		t.Fatalf("InsertConfirmed() error = %v", err)
	}
}

func TestCalendarDaily(t *testing.T) {
	f := newCalendarFixture(t)
	anna := f.addCoachWithWindow("Анна Петрова", 1, 9*60, 11*60)
	f.addCoachWithWindow("Сергей Волков", 1, 9*60, 11*60)

	// Анна занята полностью, Сергей свободен: загрузка 50%
	f.book(t, anna, testMonday, 9*60, 10*60)
	f.book(t, anna, testMonday, 10*60, 11*60)

	cal, err := f.service.Daily(context.Background(), testMonday)
	if err != nil {
		t.Fatalf("Daily() error = %v", err)
	}

	if cal.Date != testMonday || cal.DayOfWeek != 1 || cal.DayName != "Monday" {
		t.Errorf("header = %s %d %s, want %s 1 Monday", cal.Date, cal.DayOfWeek, cal.DayName, testMonday)
	}
	if cal.TotalCoaches != 2 {
		t.Errorf("total coaches = %d, want 2", cal.TotalCoaches)
	}
	if cal.BookedSlots != 2 || cal.AvailableSlots != 2 {
		t.Errorf("booked/available = %d/%d, want 2/2", cal.BookedSlots, cal.AvailableSlots)
	}
	if cal.Utilization != 50 {
		t.Errorf("utilization = %d, want 50", cal.Utilization)
	}
	if len(cal.TimeSlots) != 2 {
		t.Fatalf("time buckets = %d, want 2", len(cal.TimeSlots))
	}
	if cal.TimeSlots[0].Time != "09:00" || cal.TimeSlots[1].Time != "10:00" {
		t.Errorf("bucket times = %s, %s, want 09:00, 10:00", cal.TimeSlots[0].Time, cal.TimeSlots[1].Time)
	}

	bucket := cal.TimeSlots[0]
	if len(bucket.Slots) != 2 {
		t.Fatalf("bucket slots = %d, want 2", len(bucket.Slots))
	}
	if bucket.Slots[0].CoachName != "Анна Петрова" || bucket.Slots[0].Status != model.SlotStatusBooked {
		t.Errorf("slot[0] = %s %s, want Анна Петрова booked", bucket.Slots[0].CoachName, bucket.Slots[0].Status)
	}
	if bucket.Slots[0].StudentName != "Иван Сидоров" || bucket.Slots[0].ClassType != "sparring" {
		t.Errorf("booked slot carries %q/%q, want student and class type", bucket.Slots[0].StudentName, bucket.Slots[0].ClassType)
	}
	if bucket.Slots[1].CoachName != "Сергей Волков" || bucket.Slots[1].Status != model.SlotStatusAvailable {
		t.Errorf("slot[1] = %s %s, want Сергей Волков available", bucket.Slots[1].CoachName, bucket.Slots[1].Status)
	}
}

func TestCalendarDailyBadDate(t *testing.T) {
	f := newCalendarFixture(t)

	_, err := f.service.Daily(context.Background(), "next monday")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Daily() error = %v, want ValidationError", err)
	}
}

func TestCalendarWeekly(t *testing.T) {
	f := newCalendarFixture(t)
	f.addCoachWithWindow("Анна Петрова", 1, 9*60, 11*60)

	week, err := f.service.Weekly(context.Background(), testMonday)
	if err != nil {
		t.Fatalf("Weekly() error = %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("days = %d, want 7", len(week))
	}

	if week[0].Date != testMonday {
		t.Errorf("first day = %s, want %s", week[0].Date, testMonday)
	}
	if week[6].Date != "2026-09-13" {
		t.Errorf("last day = %s, want 2026-09-13", week[6].Date)
	}

	// окно только на понедельник: остальные дни пустые
	if week[0].AvailableSlots != 2 {
		t.Errorf("monday available = %d, want 2", week[0].AvailableSlots)
	}
	for i := 1; i < 7; i++ {
		if week[i].AvailableSlots != 0 || week[i].BookedSlots != 0 {
			t.Errorf("day %d has slots, want empty", i)
		}
	}
}

func TestCalendarSummary(t *testing.T) {
	f := newCalendarFixture(t)
	anna := f.addCoachWithWindow("Анна Петрова", 1, 9*60, 11*60)
	// у Анны окно и на вторник
	f.windows.add(&model.AvailabilityWindow{
		CoachID:      anna.ID,
		DayOfWeek:    2,
		StartMinute:  9 * 60,
		EndMinute:    11 * 60,
		SlotDuration: 60,
		IsActive:     true,
	})
	f.addCoachWithWindow("Сергей Волков", 1, 9*60, 11*60)

	f.book(t, anna, testMonday, 9*60, 10*60)

	// понедельник и вторник
	summaries, err := f.service.Summary(context.Background(), testMonday, "2026-09-08")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}

	annaSummary := summaries[0]
	if annaSummary.CoachName != "Анна Петрова" {
		t.Fatalf("first summary = %s, want Анна Петрова", annaSummary.CoachName)
	}
	if annaSummary.TotalSlots != 4 {
		t.Errorf("anna total = %d, want 4", annaSummary.TotalSlots)
	}
	if annaSummary.BookedSlots != 1 || annaSummary.AvailableSlots != 3 {
		t.Errorf("anna booked/available = %d/%d, want 1/3", annaSummary.BookedSlots, annaSummary.AvailableSlots)
	}
	if annaSummary.UtilizationRate != 25 {
		t.Errorf("anna utilization = %d, want 25", annaSummary.UtilizationRate)
	}
	if annaSummary.DateRange != "2026-09-07 to 2026-09-08" {
		t.Errorf("date range = %q", annaSummary.DateRange)
	}

	sergey := summaries[1]
	if sergey.BookedSlots != 0 || sergey.AvailableSlots != 2 || sergey.UtilizationRate != 0 {
		t.Errorf("sergey = %+v, want 0 booked, 2 available, 0%%", sergey)
	}
}

func TestCalendarSummaryValidation(t *testing.T) {
	f := newCalendarFixture(t)

	if _, err := f.service.Summary(context.Background(), "2026-09-08", testMonday); err == nil {
		t.Error("Summary() with end before start did not fail")
	}

	if _, err := f.service.Summary(context.Background(), testMonday, "2026-12-31"); err == nil {
		t.Error("Summary() over range cap did not fail")
	}

	if _, err := f.service.Summary(context.Background(), "bad", testMonday); err == nil {
		t.Error("Summary() with bad start date did not fail")
	}
}

func TestCalendarSummaryRangeBoundary(t *testing.T) {
	f := newCalendarFixture(t)

	// диапазон считается включительно: ровно 31 дата проходит
	if _, err := f.service.Summary(context.Background(), testMonday, "2026-10-07"); err != nil {
		t.Errorf("Summary() over 31 dates error = %v", err)
	}

	// 32 даты — уже за пределом
	if _, err := f.service.Summary(context.Background(), testMonday, "2026-10-08"); err == nil {
		t.Error("Summary() over 32 dates did not fail")
	}
}
