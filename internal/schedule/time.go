package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// FormatError означает что строка времени или даты не соответствует формату
type FormatError struct {
	Value string
	Want  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid value %q, want %s", e.Value, e.Want)
}

// ToMinutes разбирает время "HH:MM" в минуты от начала суток.
// Часы 00-23, минуты 00-59, строго по две цифры: на каждом принятом
// значении s выполняется FromMinutes(ToMinutes(s)) == s.
func ToMinutes(clock string) (int, error) {
	if !clockRe.MatchString(clock) {
		return 0, &FormatError{Value: clock, Want: "HH:MM"}
	}

	parts := strings.SplitN(clock, ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &FormatError{Value: clock, Want: "HH:MM"}
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &FormatError{Value: clock, Want: "HH:MM"}
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, &FormatError{Value: clock, Want: "HH:MM in 00:00..23:59"}
	}

	return hours*60 + mins, nil
}

// FromMinutes форматирует минуты от начала суток в "HH:MM" (24-часовой формат).
// Для любого корректного s выполняется FromMinutes(ToMinutes(s)) == s.
func FromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [startA, endA) и [startB, endB).
// Соприкасающиеся границы пересечением не считаются: запись до 10:00
// совместима с записью с 10:00.
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}

// ParseDate разбирает дату "YYYY-MM-DD" в локальную полночь
func ParseDate(date string) (time.Time, error) {
	if !dateRe.MatchString(date) {
		return time.Time{}, &FormatError{Value: date, Want: "YYYY-MM-DD"}
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, &FormatError{Value: date, Want: "YYYY-MM-DD"}
	}

	return t, nil
}

// FormatDate форматирует дату в "YYYY-MM-DD"
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Weekday возвращает день недели даты: 0 = Sunday, 6 = Saturday
func Weekday(t time.Time) int {
	return int(t.Weekday())
}

// DayName возвращает английское название дня недели
func DayName(weekday int) string {
	names := []string{
		"Sunday",
		"Monday",
		"Tuesday",
		"Wednesday",
		"Thursday",
		"Friday",
		"Saturday",
	}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "Unknown"
}
