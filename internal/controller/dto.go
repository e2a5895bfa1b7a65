package controller

import (
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/schedule"
)

// bookingJSON — представление записи на границе API:
// дата как YYYY-MM-DD, время как HH:MM
type bookingJSON struct {
	ID           int64     `json:"id"`
	Reference    string    `json:"reference"`
	StudentID    int64     `json:"student_id"`
	CoachID      int64     `json:"coach_id"`
	BookingDate  string    `json:"booking_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	ClassType    string    `json:"class_type"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CoachName    string    `json:"coach_name,omitempty"`
	StudentName  string    `json:"student_name,omitempty"`
	StudentEmail string    `json:"student_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toBookingJSON(b *model.Booking) *bookingJSON {
	return &bookingJSON{
		ID:           b.ID,
		Reference:    b.Reference.String(),
		StudentID:    b.StudentID,
		CoachID:      b.CoachID,
		BookingDate:  schedule.FormatDate(b.BookingDate),
		StartTime:    schedule.FromMinutes(b.StartMinute),
		EndTime:      schedule.FromMinutes(b.EndMinute),
		ClassType:    b.ClassType,
		Status:       string(b.Status),
		Notes:        b.Notes,
		CoachName:    b.CoachName,
		StudentName:  b.StudentName,
		StudentEmail: b.StudentEmail,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func toBookingList(bookings []*model.Booking) []*bookingJSON {
	out := make([]*bookingJSON, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingJSON(b))
	}
	return out
}

// windowJSON — представление окна доступности на границе API
type windowJSON struct {
	ID           int64  `json:"id"`
	GroupID      string `json:"group_id"`
	CoachID      int64  `json:"coach_id"`
	DayOfWeek    int    `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotDuration int    `json:"slot_duration"`
	Active       bool   `json:"active"`
}

func toWindowJSON(w *model.AvailabilityWindow) *windowJSON {
	return &windowJSON{
		ID:           w.ID,
		GroupID:      w.GroupID.String(),
		CoachID:      w.CoachID,
		DayOfWeek:    w.DayOfWeek,
		StartTime:    schedule.FromMinutes(w.StartMinute),
		EndTime:      schedule.FromMinutes(w.EndMinute),
		SlotDuration: w.SlotDuration,
		Active:       w.IsActive,
	}
}

func toWindowList(windows []*model.AvailabilityWindow) []*windowJSON {
	out := make([]*windowJSON, 0, len(windows))
	for _, w := range windows {
		out = append(out, toWindowJSON(w))
	}
	return out
}
