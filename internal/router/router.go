package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateFacility(c *ginext.Context)
	ListFacilities(c *ginext.Context)
	GetFacility(c *ginext.Context)
	CreateAddOn(c *ginext.Context)
	ListAddOns(c *ginext.Context)
	GetSlots(c *ginext.Context)
	Quote(c *ginext.Context)
	CreateHoursRule(c *ginext.Context)
	ListHoursRules(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	SubmitPayment(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	ExportBookings(c *ginext.Context)
	CreateMember(c *ginext.Context)
	ListMembers(c *ginext.Context)
	GetMemberBookings(c *ginext.Context)
}

// Options — то, что роутер подключает помимо API.
type Options struct {
	Metrics   http.Handler
	RateLimit ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, opts Options, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	limited := func(h ginext.HandlerFunc) []ginext.HandlerFunc {
		if opts.RateLimit == nil {
			return []ginext.HandlerFunc{h}
		}
		return []ginext.HandlerFunc{opts.RateLimit, h}
	}

	api := router.Group("/api")
	{
		// Facilities
		api.POST("/facilities", h.CreateFacility)
		api.GET("/facilities", h.ListFacilities)
		api.GET("/facilities/:slug", h.GetFacility)
		api.POST("/facilities/:slug/addons", h.CreateAddOn)
		api.GET("/facilities/:slug/addons", h.ListAddOns)
		api.GET("/facilities/:slug/slots", h.GetSlots)
		api.POST("/facilities/:slug/quote", limited(h.Quote)...)

		// Operating hours
		api.POST("/hours", h.CreateHoursRule)
		api.GET("/hours", h.ListHoursRules)

		// Bookings
		api.POST("/bookings", limited(h.CreateBooking)...)
		api.GET("/bookings", h.ListBookings)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/payment", limited(h.SubmitPayment)...)
		api.POST("/bookings/:id/verify", h.VerifyPayment)
		api.GET("/admin/bookings/export", h.ExportBookings)

		// Members
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
		api.GET("/members/:id/bookings", h.GetMemberBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if opts.Metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			opts.Metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
