package model

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
)

// AvailableSlot — свободный слот, результат запроса доступности.
// Производное значение, нигде не хранится.
type AvailableSlot struct {
	CoachID   int64  `json:"coach_id"`
	CoachName string `json:"coach_name"`
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
	Duration  int    `json:"duration"`   // минуты
}

// CalendarSlot — слот в дневном календаре, помеченный статусом
type CalendarSlot struct {
	CoachID          int64      `json:"coach_id"`
	CoachName        string     `json:"coach_name"`
	CoachSpecialties []string   `json:"coach_specialties"`
	TimeSlot         string     `json:"time_slot"` // "09:00 - 10:00"
	StartTime        string     `json:"start_time"`
	EndTime          string     `json:"end_time"`
	Status           SlotStatus `json:"status"`
	BookingID        int64      `json:"booking_id,omitempty"`
	StudentName      string     `json:"student_name,omitempty"`
	ClassType        string     `json:"class_type,omitempty"`
}

// TimeBucket — все слоты одного времени начала, отсортированные по имени тренера.
// Бакеты идут по возрастанию времени.
type TimeBucket struct {
	Time  string          `json:"time"` // HH:MM
	Slots []*CalendarSlot `json:"slots"`
}

// CoachDaySummary — сводка по тренеру за день
type CoachDaySummary struct {
	CoachID        int64    `json:"coach_id"`
	CoachName      string   `json:"coach_name"`
	Specialties    []string `json:"specialties"`
	TotalSlots     int      `json:"total_slots"`
	AvailableSlots int      `json:"available_slots"`
	BookedSlots    int      `json:"booked_slots"`
}

// DailyCalendar — дневной календарь по всем тренерам.
// Полностью пересчитывается на каждый запрос, никогда не хранится.
type DailyCalendar struct {
	Date           string             `json:"date"`
	DayOfWeek      int                `json:"day_of_week"`
	DayName        string             `json:"day_name"`
	TotalCoaches   int                `json:"total_coaches"`
	AvailableSlots int                `json:"available_slots"`
	BookedSlots    int                `json:"booked_slots"`
	Utilization    int                `json:"utilization"` // проценты, 0-100
	TimeSlots      []*TimeBucket      `json:"time_slots"`
	CoachSummaries []*CoachDaySummary `json:"coaches_summary"`
}

// CoachRangeSummary — сводка по тренеру за диапазон дат
type CoachRangeSummary struct {
	CoachID         int64    `json:"coach_id"`
	CoachName       string   `json:"coach_name"`
	Specialties     []string `json:"specialties"`
	DateRange       string   `json:"date_range"` // "YYYY-MM-DD to YYYY-MM-DD"
	TotalSlots      int      `json:"total_slots"`
	AvailableSlots  int      `json:"available_slots"`
	BookedSlots     int      `json:"booked_slots"`
	UtilizationRate int      `json:"utilization_rate"` // проценты, 0-100
}
