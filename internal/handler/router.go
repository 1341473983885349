package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shiftboard/internal/handler/api"
	"shiftboard/internal/handler/middleware"
	"shiftboard/internal/pkg/config"
	"shiftboard/internal/usecase"
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
	companyHandler *api.CompanyHandler,
	userHandler *api.UserHandler,
	shiftHandler *api.ShiftHandler,
	timesheetHandler *api.TimesheetHandler,
	authMiddleware *middleware.AuthMiddleware,
	resolver usecase.SessionResolver,
) {
	setupMiddleware(engine, cfg, resolver)
	setupRoutes(engine, authHandler, companyHandler, userHandler, shiftHandler, timesheetHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, resolver usecase.SessionResolver) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.PageGate(resolver))
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	companyHandler *api.CompanyHandler,
	userHandler *api.UserHandler,
	shiftHandler *api.ShiftHandler,
	timesheetHandler *api.TimesheetHandler,
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
				{Method: http.MethodGet, Path: "/verify", Handler: authHandler.Verify},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})
		}

		companies := apiGroup.Group("/companies")
		{
			addRoutes(companies, []route{
				{Method: http.MethodPost, Path: "/register", Handler: companyHandler.Register},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireSession())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: userHandler.List},
				{Method: http.MethodPost, Path: "", Handler: userHandler.Create},
				{Method: http.MethodPut, Path: "", Handler: userHandler.Update},
				{Method: http.MethodDelete, Path: "", Handler: userHandler.Delete},
			})
		}

		shifts := apiGroup.Group("/shifts")
		shifts.Use(authMiddleware.RequireSession())
		{
			addRoutes(shifts, []route{
				{Method: http.MethodGet, Path: "", Handler: shiftHandler.List},
				{Method: http.MethodPost, Path: "", Handler: shiftHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: shiftHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: shiftHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: shiftHandler.Delete},
			})
		}

		timeEntries := apiGroup.Group("/time-entries")
		timeEntries.Use(authMiddleware.RequireSession())
		{
			addRoutes(timeEntries, []route{
				{Method: http.MethodGet, Path: "", Handler: timesheetHandler.List},
				{Method: http.MethodPost, Path: "/clock-in", Handler: timesheetHandler.ClockIn},
				{Method: http.MethodPost, Path: "/clock-out", Handler: timesheetHandler.ClockOut},
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
