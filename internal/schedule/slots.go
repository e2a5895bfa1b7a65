package schedule

import (
	"errors"
	"iter"

	"github.com/Freeeeeet/studio_booking/internal/model"
)

// ErrInvalidSlotDuration означает окно доступности с неположительной длительностью слота.
// Это ошибка данных, её нельзя молча пропускать: шаг цикла нулевой или отрицательный.
var ErrInvalidSlotDuration = errors.New("slot duration must be positive")

// Slot — один дискретный слот, полуоткрытый интервал [Start, End) в минутах от начала суток
type Slot struct {
	Start int
	End   int
}

// Slots возвращает ленивую последовательность слотов окна [startMinute, endMinute)
// с шагом duration. Последний неполный слот не выдаётся. Окно короче одной
// длительности даёт пустую последовательность.
func Slots(startMinute, endMinute, duration int) (iter.Seq[Slot], error) {
	if duration <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	return func(yield func(Slot) bool) {
		for cur := startMinute; cur+duration <= endMinute; cur += duration {
			if !yield(Slot{Start: cur, End: cur + duration}) {
				return
			}
		}
	}, nil
}

// WindowSlots возвращает последовательность слотов окна доступности
func WindowSlots(w *model.AvailabilityWindow) (iter.Seq[Slot], error) {
	return Slots(w.StartMinute, w.EndMinute, w.SlotDuration)
}
