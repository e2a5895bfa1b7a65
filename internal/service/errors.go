package service

import (
	"errors"
	"fmt"
)

// Типизированные ошибки ядра. Возвращаются вызывающему как есть,
// транспортный слой переводит их в пользовательские ответы.
var (
	// ErrSlotTaken — запрошенный интервал пересекается с существующей записью.
	// Ожидаемая ошибка: студент выбирает другое время, повторов нет.
	ErrSlotTaken = errors.New("time slot is already booked")

	// ErrOutsideAvailability — запрошенный интервал не помещается целиком
	// ни в одно повторяющееся окно тренера
	ErrOutsideAvailability = errors.New("coach is not available at the requested time")

	// ErrNotFound — тренер или запись не найдены
	ErrNotFound = errors.New("record not found")
)

// ValidationError — некорректные или отсутствующие входные данные.
// Возвращается до любого обращения к хранилищу.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
