package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed" // Подтверждено
	BookingStatusCancelled BookingStatus = "cancelled" // Отменено
	BookingStatusCompleted BookingStatus = "completed" // Завершено
)

// ValidBookingStatus проверяет что статус один из допустимых
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Booking представляет запись студента к тренеру.
// В конфликтах участвуют только confirmed записи, остальные хранятся как история.
type Booking struct {
	ID          int64         `json:"id"`
	Reference   uuid.UUID     `json:"reference"`
	StudentID   int64         `json:"student_id"`
	CoachID     int64         `json:"coach_id"`
	BookingDate time.Time     `json:"-"`            // дата без времени, локальная
	StartMinute int           `json:"start_minute"` // интервал [start, end) в минутах от начала суток
	EndMinute   int           `json:"end_minute"`
	ClassType   string        `json:"class_type"`
	Status      BookingStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Дополнительные поля для удобства (не из БД)
	CoachName    string `json:"coach_name,omitempty"`
	StudentName  string `json:"student_name,omitempty"`
	StudentEmail string `json:"student_email,omitempty"`
}
