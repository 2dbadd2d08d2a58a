package handlers

import (
	handymanRepoPkg "fixly/database/repository/handyman"
	userRepoPkg "fixly/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every endpoint handler plus the repositories the
// route layer needs for auth middleware.
type HandlerBundle struct {
	UserRepo     userRepoPkg.UserRepository
	HandymanRepo handymanRepoPkg.HandymanRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetUserHandler          gin.HandlerFunc
	SignoutUserHandler      gin.HandlerFunc

	// Handyman endpoints
	RegisterHandymanHandler   gin.HandlerFunc
	GetHandymanByIDHandler    gin.HandlerFunc
	UpdateHandymanHandler     gin.HandlerFunc
	DeleteHandymanHandler     gin.HandlerFunc
	SearchHandymenHandler     gin.HandlerFunc
	VocabularyHandler         gin.HandlerFunc
	UpdateAvailabilityHandler gin.HandlerFunc
	AddSkillHandler           gin.HandlerFunc
	RemoveSkillHandler        gin.HandlerFunc
	SlotsHandler              gin.HandlerFunc

	// Task endpoints
	CreateTaskHandler         gin.HandlerFunc
	ListTasksHandler          gin.HandlerFunc
	DeleteTaskHandler         gin.HandlerFunc
	TaskPriceBreakdownHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler   gin.HandlerFunc
	GetUserBookingsHandler gin.HandlerFunc
	CancelBookingHandler   gin.HandlerFunc

	// Pricing endpoints
	PricingByCategoryHandler gin.HandlerFunc
	ListCurrenciesHandler    gin.HandlerFunc
}

// NewHandlerBundle wires handler methods into the flat bundle the route
// layer consumes.
func NewHandlerBundle(
	userRepo userRepoPkg.UserRepository,
	handymanRepo handymanRepoPkg.HandymanRepository,
	userH *UserHandler,
	handymanH *HandymanHandler,
	taskH *TaskHandler,
	bookingH *BookingHandler,
) *HandlerBundle {
	return &HandlerBundle{
		UserRepo:     userRepo,
		HandymanRepo: handymanRepo,

		RegisterUserHandler:     userH.RegisterUserHandler,
		AuthenticateUserHandler: userH.AuthenticateUserHandler,
		GetUserHandler:          userH.GetUserHandler,
		SignoutUserHandler:      userH.SignoutUserHandler,

		RegisterHandymanHandler:   handymanH.RegisterHandymanHandler,
		GetHandymanByIDHandler:    handymanH.GetHandymanByIDHandler,
		UpdateHandymanHandler:     handymanH.UpdateHandymanHandler,
		DeleteHandymanHandler:     handymanH.DeleteHandymanHandler,
		SearchHandymenHandler:     handymanH.SearchHandymenHandler,
		VocabularyHandler:         handymanH.VocabularyHandler,
		UpdateAvailabilityHandler: handymanH.UpdateAvailabilityHandler,
		AddSkillHandler:           handymanH.AddSkillHandler,
		RemoveSkillHandler:        handymanH.RemoveSkillHandler,
		SlotsHandler:              handymanH.SlotsHandler,

		CreateTaskHandler:         taskH.CreateTaskHandler,
		ListTasksHandler:          taskH.ListTasksHandler,
		DeleteTaskHandler:         taskH.DeleteTaskHandler,
		TaskPriceBreakdownHandler: taskH.PriceBreakdownHandler,

		CreateBookingHandler:   bookingH.CreateBookingHandler,
		GetUserBookingsHandler: bookingH.GetUserBookingsHandler,
		CancelBookingHandler:   bookingH.CancelBookingHandler,

		PricingByCategoryHandler: PriceBreakdownByCategoryHandler,
		ListCurrenciesHandler:    ListCurrenciesHandler,
	}
}
