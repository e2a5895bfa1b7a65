package controller

import (
	"strconv"

	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/gofiber/fiber/v2"
)

type createBookingRequest struct {
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	StudentPhone string `json:"student_phone"`
	Level        string `json:"experience_level"`
	CoachID      int64  `json:"coach_id"`
	BookingDate  string `json:"booking_date"`
	StartTime    string `json:"start_time"`
	Duration     int    `json:"duration"`
	ClassType    string `json:"class_type"`
	Notes        string `json:"notes"`
}

func (r *Router) createBooking(c *fiber.Ctx) error {
	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	booking, err := r.bookingService.Admit(c.Context(), service.AdmitBookingInput{
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
		StudentPhone: req.StudentPhone,
		Level:        req.Level,
		CoachID:      req.CoachID,
		BookingDate:  req.BookingDate,
		StartTime:    req.StartTime,
		Duration:     req.Duration,
		ClassType:    req.ClassType,
		Notes:        req.Notes,
	})
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"booking_id": booking.ID,
		"booking":    toBookingJSON(booking),
	})
}

func (r *Router) listBookings(c *fiber.Ctx) error {
	input := service.ListInput{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}

	if raw := c.Query("coach_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid coach_id")
		}
		input.CoachID = &id
	}
	if raw := c.Query("student_email"); raw != "" {
		input.StudentEmail = &raw
	}
	if raw := c.Query("date"); raw != "" {
		input.Date = &raw
	}
	if raw := c.Query("status"); raw != "" {
		input.Status = &raw
	}

	bookings, err := r.bookingService.List(c.Context(), input)
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"bookings": toBookingList(bookings)})
}

func (r *Router) getBooking(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	booking, err := r.bookingService.GetByID(c.Context(), id)
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"booking": toBookingJSON(booking)})
}

type updateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func (r *Router) updateBookingStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := r.bookingService.UpdateStatus(c.Context(), id, req.Status, req.Notes); err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"message": "Booking status updated"})
}

func (r *Router) cancelBooking(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	if err := r.bookingService.Cancel(c.Context(), id); err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"message": "Booking cancelled"})
}

func (r *Router) upcomingBookings(c *fiber.Ctx) error {
	coachID, err := strconv.ParseInt(c.Params("coach_id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid coach id")
	}

	bookings, err := r.bookingService.Upcoming(c.Context(), coachID, c.QueryInt("limit", 10))
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"bookings": toBookingList(bookings)})
}
