package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"billiar/internal/handler/api"
	"billiar/internal/handler/middleware"
	"billiar/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	scheduleHandler *api.ScheduleHandler,
	reservationHandler *api.ReservationHandler,
	blockHandler *api.BlockHandler,
	refundHandler *api.RefundHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, availabilityHandler, scheduleHandler, reservationHandler, blockHandler, refundHandler, authMiddleware)
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
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	scheduleHandler *api.ScheduleHandler,
	reservationHandler *api.ReservationHandler,
	blockHandler *api.BlockHandler,
	refundHandler *api.RefundHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		tables := apiGroup.Group("/tables")
		{
			addRoutes(tables, []route{
				{Method: http.MethodGet, Path: "/:id/slots", Handler: availabilityHandler.GetFreeSlots},
				{Method: http.MethodGet, Path: "/:id/blocks", Handler: blockHandler.ListBlocks},
			})

			ownerTables := tables.Group("")
			ownerTables.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(middleware.RoleOwner))
			addRoutes(ownerTables, []route{
				{Method: http.MethodPost, Path: "/:id/blocks", Handler: blockHandler.CreateBlock},
			})
		}

		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: scheduleHandler.GetWeekSchedule},
			})

			ownerVenues := venues.Group("")
			ownerVenues.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(middleware.RoleOwner))
			addRoutes(ownerVenues, []route{
				{Method: http.MethodPut, Path: "/:id/schedule", Handler: scheduleHandler.ReplaceSchedule},
				{Method: http.MethodPatch, Path: "/:id/schedule/:turnoId", Handler: scheduleHandler.UpdateTurno},
				{Method: http.MethodPatch, Path: "/:id/schedule/:turnoId/state", Handler: scheduleHandler.SetTurnoState},
				{Method: http.MethodDelete, Path: "/:id/schedule/:turnoId", Handler: scheduleHandler.DeleteTurno},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetMyReservations},
				{Method: http.MethodPatch, Path: "/:id", Handler: reservationHandler.RescheduleReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
			})

			ownerReservations := reservations.Group("")
			ownerReservations.Use(authMiddleware.RequireRole(middleware.RoleOwner))
			addRoutes(ownerReservations, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: reservationHandler.GetRequests},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: reservationHandler.AcceptReservation},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: reservationHandler.RejectReservation},
				{Method: http.MethodPost, Path: "/:id/finish", Handler: reservationHandler.FinishReservation},
			})
		}

		refunds := apiGroup.Group("/refunds")
		refunds.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(middleware.RoleOwner))
		{
			addRoutes(refunds, []route{
				{Method: http.MethodGet, Path: "", Handler: refundHandler.ListPending},
				{Method: http.MethodPost, Path: "/:id", Handler: refundHandler.Register},
			})
		}

		blocks := apiGroup.Group("/blocks")
		blocks.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(middleware.RoleOwner))
		{
			addRoutes(blocks, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: blockHandler.DeleteBlock},
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
