package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	// public
	ListTours(c *ginext.Context)
	GetTour(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	LookupBooking(c *ginext.Context)
	RequestCancellation(c *ginext.Context)

	// signed-in user
	MyBalance(c *ginext.Context)
	MyTransactions(c *ginext.Context)
	SubmitApplication(c *ginext.Context)
	MyApplications(c *ginext.Context)

	// admin
	CreateTour(c *ginext.Context)
	UpdateTourStatus(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	BookingHistory(c *ginext.Context)
	TransitionBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	PostMileage(c *ginext.Context)
	UserBalance(c *ginext.Context)
	UserTransactions(c *ginext.Context)
	ReconcileUser(c *ginext.Context)
	ListApplications(c *ginext.Context)
	MarkApplicationProcessing(c *ginext.Context)
	ApproveApplication(c *ginext.Context)
	RejectApplication(c *ginext.Context)
	Summary(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, admin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Tours
		api.GET("/tours", h.ListTours)
		api.GET("/tours/:id", h.GetTour)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.POST("/bookings/lookup", h.LookupBooking)
		api.POST("/bookings/:id/cancel-request", h.RequestCancellation)
	}

	me := api.Group("/me", auth)
	{
		me.GET("/mileage", h.MyBalance)
		me.GET("/mileage/transactions", h.MyTransactions)
		me.POST("/applications", h.SubmitApplication)
		me.GET("/applications", h.MyApplications)
	}

	adm := api.Group("/admin", auth, admin)
	{
		adm.POST("/tours", h.CreateTour)
		adm.PATCH("/tours/:id/status", h.UpdateTourStatus)

		adm.GET("/bookings", h.ListBookings)
		adm.GET("/bookings/:id", h.GetBooking)
		adm.GET("/bookings/:id/history", h.BookingHistory)
		adm.POST("/bookings/:id/transition", h.TransitionBooking)
		adm.DELETE("/bookings/:id", h.DeleteBooking)

		adm.POST("/users", h.CreateUser)
		adm.GET("/users", h.ListUsers)

		adm.POST("/mileage", h.PostMileage)
		adm.GET("/users/:id/mileage", h.UserBalance)
		adm.GET("/users/:id/mileage/transactions", h.UserTransactions)
		adm.GET("/users/:id/mileage/reconcile", h.ReconcileUser)

		adm.GET("/applications", h.ListApplications)
		adm.POST("/applications/:id/processing", h.MarkApplicationProcessing)
		adm.POST("/applications/:id/approve", h.ApproveApplication)
		adm.POST("/applications/:id/reject", h.RejectApplication)

		adm.GET("/summary", h.Summary)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
