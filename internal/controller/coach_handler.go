package controller

import (
	"strconv"

	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (r *Router) listCoaches(c *fiber.Ctx) error {
	coaches, err := r.coachService.List(c.Context())
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"coaches": coaches})
}

func (r *Router) getCoach(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid coach id")
	}

	coach, err := r.coachService.Get(c.Context(), id)
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"coach": coach})
}

type createCoachRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Bio             string   `json:"bio"`
	Background      string   `json:"martial_arts_background"`
	Specialties     []string `json:"specialties"`
	YearsExperience int      `json:"years_experience"`
	PhotoURL        string   `json:"photo_url"`
}

func (r *Router) createCoach(c *fiber.Ctx) error {
	var req createCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	coach, err := r.coachService.Create(c.Context(), service.CreateCoachInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Bio:             req.Bio,
		Background:      req.Background,
		Specialties:     req.Specialties,
		YearsExperience: req.YearsExperience,
		PhotoURL:        req.PhotoURL,
	})
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"coach":   coach,
	})
}

type updateCoachRequest struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	Bio             *string  `json:"bio"`
	Background      *string  `json:"martial_arts_background"`
	Specialties     []string `json:"specialties"`
	YearsExperience *int     `json:"years_experience"`
	PhotoURL        *string  `json:"photo_url"`
}

func (r *Router) updateCoach(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid coach id")
	}

	var req updateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	coach, err := r.coachService.Update(c.Context(), id, service.UpdateCoachInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Bio:             req.Bio,
		Background:      req.Background,
		Specialties:     req.Specialties,
		YearsExperience: req.YearsExperience,
		PhotoURL:        req.PhotoURL,
	})
	if err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"coach": coach})
}

func (r *Router) removeCoach(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid coach id")
	}

	if err := r.coachService.Remove(c.Context(), id); err != nil {
		return sendError(c, r.logger, err)
	}

	return ok(c, fiber.Map{"message": "Coach deactivated"})
}
