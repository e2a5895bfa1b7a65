package controller

import (
	"github.com/Freeeeeet/studio_booking/internal/render"
	"github.com/gofiber/fiber/v2"
)

func (r *Router) dailyCalendar(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return fail(c, fiber.StatusBadRequest, "Date parameter is required")
	}

	cal, err := r.calendarService.Daily(c.Context(), date)
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"calendar": cal})
}

// dailyCalendarImage отдаёт дневной календарь картинкой PNG
func (r *Router) dailyCalendarImage(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return fail(c, fiber.StatusBadRequest, "Date parameter is required")
	}

	cal, err := r.calendarService.Daily(c.Context(), date)
	if err != nil {
		return sendError(c, r.logger, err)
	}

	png, err := render.DailyCalendarPNG(cal)
	if err != nil {
		return sendError(c, r.logger, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (r *Router) weeklyCalendar(c *fiber.Ctx) error {
	startDate := c.Query("start_date")
	if startDate == "" {
		return fail(c, fiber.StatusBadRequest, "start_date parameter is required")
	}

	week, err := r.calendarService.Weekly(c.Context(), startDate)
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"weekly_calendar": week})
}

func (r *Router) calendarSummary(c *fiber.Ctx) error {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		return fail(c, fiber.StatusBadRequest, "start_date and end_date parameters are required")
	}

	summary, err := r.calendarService.Summary(c.Context(), startDate, endDate)
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"summary": summary})
}
