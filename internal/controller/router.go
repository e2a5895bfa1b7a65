package controller

import (
	"github.com/Freeeeeet/studio_booking/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Router регистрирует HTTP-маршруты API
type Router struct {
	coachService    *service.CoachService
	availService    *service.AvailabilityService
	bookingService  *service.BookingService
	calendarService *service.CalendarService
	logger          *zap.Logger
}

func NewRouter(
	coachService *service.CoachService,
	availService *service.AvailabilityService,
	bookingService *service.BookingService,
	calendarService *service.CalendarService,
	logger *zap.Logger,
) *Router {
	return &Router{
		coachService:    coachService,
		availService:    availService,
		bookingService:  bookingService,
		calendarService: calendarService,
		logger:          logger,
	}
}

// Register подключает маршруты к приложению.
// Конкретные пути регистрируются раньше параметризованных.
func (r *Router) Register(app *fiber.App) {
	api := app.Group("/api")

	coaches := api.Group("/coaches")
	coaches.Get("/", r.listCoaches)
	coaches.Post("/", r.createCoach)
	coaches.Get("/:id", r.getCoach)
	coaches.Put("/:id", r.updateCoach)
	coaches.Delete("/:id", r.removeCoach)

	availability := api.Group("/availability")
	availability.Get("/slots", r.openSlots)
	availability.Get("/coach/:coach_id", r.coachWindows)
	availability.Post("/coach/:coach_id", r.createWindows)
	availability.Put("/:id", r.updateWindow)
	availability.Delete("/:id", r.removeWindow)

	bookings := api.Group("/bookings")
	bookings.Get("/coach/:coach_id/upcoming", r.upcomingBookings)
	bookings.Get("/", r.listBookings)
	bookings.Post("/", r.createBooking)
	bookings.Get("/:id", r.getBooking)
	bookings.Put("/:id/status", r.updateBookingStatus)
	bookings.Delete("/:id", r.cancelBooking)

	calendar := api.Group("/calendar")
	calendar.Get("/daily", r.dailyCalendar)
	calendar.Get("/daily.png", r.dailyCalendarImage)
	calendar.Get("/weekly", r.weeklyCalendar)
	calendar.Get("/summary", r.calendarSummary)
}
