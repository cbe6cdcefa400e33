package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arcade-booking/internal/handler/api"
	"arcade-booking/internal/handler/middleware"
	"arcade-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking  *api.BookingHandler
	Game     *api.GameHandler
	Schedule *api.ScheduleHandler
	Coupon   *api.CouponHandler
	Verify   *api.VerifyHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/games", Handler: h.Game.List},
			{Method: http.MethodGet, Path: "/schedule", Handler: h.Schedule.Get},
			{Method: http.MethodGet, Path: "/schedule/open", Handler: h.Schedule.OpenState},
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Booking.Quote},
			{Method: http.MethodGet, Path: "/verify", Handler: h.Verify.Verify},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(middleware.RequireUser())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodGet, Path: "/:id/receipt", Handler: h.Booking.Receipt},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel,
					Mw: []gin.HandlerFunc{middleware.RequireAdmin()}},
			})
		}

		admin := apiGroup.Group("")
		admin.Use(middleware.RequireUser(), middleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPut, Path: "/schedule", Handler: h.Schedule.Update},
				{Method: http.MethodPost, Path: "/schedule/override", Handler: h.Schedule.Override},
				{Method: http.MethodGet, Path: "/games/all", Handler: h.Game.ListAll},
				{Method: http.MethodPatch, Path: "/games/:id/availability", Handler: h.Game.SetAvailability},
				{Method: http.MethodPatch, Path: "/games/:id/rate", Handler: h.Game.SetRate},
				{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.List},
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupon.Create},
				{Method: http.MethodPatch, Path: "/coupons/:code", Handler: h.Coupon.Update},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
