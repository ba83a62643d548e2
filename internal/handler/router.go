package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"homefix-scheduling/internal/handler/api"
	"homefix-scheduling/internal/handler/middleware"
	"homefix-scheduling/internal/pkg/config"
	"homefix-scheduling/internal/usecase/commands"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	appointmentHandler *api.AppointmentHandler,
	availabilityHandler *api.AvailabilityHandler,
	authMiddleware *middleware.AuthMiddleware,
	bookingLimiter *middleware.RedisRateLimiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, appointmentHandler, availabilityHandler, authMiddleware, bookingLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	appointmentHandler *api.AppointmentHandler,
	availabilityHandler *api.AvailabilityHandler,
	authMiddleware *middleware.AuthMiddleware,
	bookingLimiter *middleware.RedisRateLimiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.GetAvailability},
		})

		appointments := apiGroup.Group("/appointments")
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.Book, Mw: []gin.HandlerFunc{bookingLimiter.Middleware()}},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: appointmentHandler.Cancel},
			})

			staff := appointments.Group("")
			staff.Use(authMiddleware.RequireRoleAtLeast(commands.RoleOperator))
			addRoutes(staff, []route{
				{Method: http.MethodPatch, Path: "/:id/status", Handler: appointmentHandler.UpdateStatus},
			})
		}

		resources := apiGroup.Group("/resources")
		resources.Use(authMiddleware.RequireRoleAtLeast(commands.RoleOperator))
		{
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "/:id/appointments", Handler: availabilityHandler.ListResourceDay},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
