package controller

import (
	"strconv"

	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/gofiber/fiber/v2"
)

// openSlots отдаёт свободные слоты на дату, опционально по одному тренеру
func (r *Router) openSlots(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return fail(c, fiber.StatusBadRequest, "Date parameter is required")
	}

	var coachID *int64
	if raw := c.Query("coach_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid coach_id")
		}
		coachID = &id
	}

	slots, err := r.availService.QueryOpenSlots(c.Context(), date, coachID)
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"available_slots": slots})
}

func (r *Router) coachWindows(c *fiber.Ctx) error {
	coachID, err := strconv.ParseInt(c.Params("coach_id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid coach id")
	}

	windows, err := r.availService.CoachWindows(c.Context(), coachID)
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"availability": toWindowList(windows)})
}

type createWindowsRequest struct {
	DayOfWeek    *int   `json:"day_of_week"`
	Days         []int  `json:"days"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotDuration int    `json:"slot_duration"`
}

// createWindows создаёт окна доступности: либо одно на day_of_week,
// либо группу на days
func (r *Router) createWindows(c *fiber.Ctx) error {
	coachID, err := strconv.ParseInt(c.Params("coach_id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid coach id")
	}

	var req createWindowsRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	days := req.Days
	if len(days) == 0 && req.DayOfWeek != nil {
		days = []int{*req.DayOfWeek}
	}

	windows, err := r.availService.CreateWindows(c.Context(), service.CreateWindowsInput{
		CoachID:      coachID,
		Days:         days,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SlotDuration: req.SlotDuration,
	})
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"availability": toWindowList(windows),
	})
}

type updateWindowRequest struct {
	DayOfWeek    *int    `json:"day_of_week"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	SlotDuration *int    `json:"slot_duration"`
}

func (r *Router) updateWindow(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid availability id")
	}

	var req updateWindowRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	window, err := r.availService.UpdateWindow(c.Context(), id, service.UpdateWindowInput{
		DayOfWeek:    req.DayOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SlotDuration: req.SlotDuration,
	})
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"availability": toWindowJSON(window)})
}

func (r *Router) removeWindow(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid availability id")
	}

	if err := r.availService.RemoveWindow(c.Context(), id); err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"message": "Availability window removed"})
}
