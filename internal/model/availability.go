package model

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindow представляет еженедельное повторяющееся окно доступности тренера.
// Время хранится в минутах от начала суток, интервал полуоткрытый [start, end).
type AvailabilityWindow struct {
	ID           int64     `json:"id"`
	GroupID      uuid.UUID `json:"group_id"` // идентификатор группы окон, созданных вместе
	CoachID      int64     `json:"coach_id"`
	DayOfWeek    int       `json:"day_of_week"`   // 0 = Sunday, 6 = Saturday
	StartMinute  int       `json:"start_minute"`  // 0-1439
	EndMinute    int       `json:"end_minute"`    // start < end <= 1440
	SlotDuration int       `json:"slot_duration"` // длительность слота в минутах
	IsActive     bool      `json:"active"`        // soft-delete
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
