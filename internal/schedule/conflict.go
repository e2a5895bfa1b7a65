package schedule

import "github.com/Freeeeeet/studio_booking/internal/model"

// Taken проверяет занят ли слот [start, end) хотя бы одной из записей.
// Записи должны быть уже отфильтрованы по тренеру, дате и статусу confirmed.
// Состояние между проверками не разделяется, каждый слот оценивается независимо.
func Taken(start, end int, bookings []*model.Booking) bool {
	for _, b := range bookings {
		if Overlaps(start, end, b.StartMinute, b.EndMinute) {
			return true
		}
	}
	return false
}

// FindBooking возвращает запись занимающую слот [start, end) или nil
func FindBooking(start, end int, bookings []*model.Booking) *model.Booking {
	for _, b := range bookings {
		if Overlaps(start, end, b.StartMinute, b.EndMinute) {
			return b
		}
	}
	return nil
}
