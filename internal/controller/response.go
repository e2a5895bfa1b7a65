package controller

import (
	"errors"

	"github.com/Freeeeeet/studio_booking/internal/schedule"
	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ok отправляет успешный ответ, дополнительные поля добавляются к телу
func ok(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(body)
}

// fail отправляет ответ с ошибкой
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// sendError переводит типизированные ошибки ядра в HTTP-ответы.
// Ошибки конфликтов и доступности восстановимые: пользователь выбирает
// другое время, автоматических повторов нет.
func sendError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		body := fiber.Map{"success": false, "error": vErr.Message}
		if vErr.Field != "" {
			body["field"] = vErr.Field
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	var fErr *schedule.FormatError
	if errors.As(err, &fErr) {
		return fail(c, fiber.StatusBadRequest, fErr.Error())
	}

	switch {
	case errors.Is(err, service.ErrSlotTaken):
		return fail(c, fiber.StatusConflict, "Time slot is already booked, please pick a different time")
	case errors.Is(err, service.ErrOutsideAvailability):
		return fail(c, fiber.StatusBadRequest, "Coach is not available at the requested time, please pick a different time")
	case errors.Is(err, service.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, schedule.ErrInvalidSlotDuration):
		return fail(c, fiber.StatusUnprocessableEntity, "Slot duration must be positive")
	}

	logger.Error("Unhandled request error", zap.Error(err))
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}
