package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/workwell/backoffice/docs"
	"github.com/workwell/backoffice/internal/api/handler"
	"github.com/workwell/backoffice/internal/api/middleware"
	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/service"
	"github.com/workwell/backoffice/internal/infrastructure/config"
	"github.com/workwell/backoffice/internal/infrastructure/db/postgres"
	redisinfra "github.com/workwell/backoffice/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	limiter := redisinfra.NewLoginLimiter(rdb, cfg.Login.MaxFailures, cfg.Login.Window)
	authService := service.NewAuthService(userRepo, sessionRepo, limiter, cfg.SessionTTL, log)
	authHandler := handler.NewAuthHandler(authService)

	itemHandler := handler.NewItemHandler(service.NewInventoryService(postgres.NewItemRepository(pool), log))
	taskHandler := handler.NewTaskHandler(service.NewTaskService(postgres.NewTaskRepository(pool), log))
	attendanceHandler := handler.NewAttendanceHandler(service.NewAttendanceService(postgres.NewAttendanceRepository(pool), log))
	payrollHandler := handler.NewPayrollHandler(service.NewPayrollService(postgres.NewPayrollRepository(pool), log))
	departmentHandler := handler.NewDepartmentHandler(service.NewDepartmentService(postgres.NewDepartmentRepository(pool), log))
	invoiceHandler := handler.NewInvoiceHandler(service.NewInvoiceService(postgres.NewInvoiceRepository(pool), log))

	authRequired := middleware.Auth(authService)
	staff := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleAdmin)
	adminOnly := middleware.RBAC(domain.RoleSuperAdmin)

	api := e.Group("/api")
	registerAuthRoutes(api, authHandler, authRequired)

	// --- Authenticated routes ---
	authed := api.Group("", authRequired)

	items := authed.Group("/items", staff)
	items.GET("", itemHandler.List)
	items.GET("/:id", itemHandler.Get)
	items.POST("", itemHandler.Create)
	items.PATCH("/:id", itemHandler.Update)
	items.DELETE("/:id", itemHandler.Delete)

	tasks := authed.Group("/tasks", staff)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.POST("", taskHandler.Create)
	tasks.PATCH("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	attendance := authed.Group("/attendance", staff)
	attendance.GET("", attendanceHandler.List)
	attendance.GET("/user/:userId", attendanceHandler.ListByUser)
	attendance.POST("", attendanceHandler.Create)
	attendance.PATCH("/:id", attendanceHandler.Update)

	payroll := authed.Group("/payroll", staff)
	payroll.GET("", payrollHandler.List)
	payroll.GET("/user/:userId", payrollHandler.ListByUser)
	payroll.POST("", payrollHandler.Create)
	payroll.PATCH("/:id", payrollHandler.Update)

	invoices := authed.Group("/invoices", staff)
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.POST("", invoiceHandler.Create)
	invoices.PATCH("/:id", invoiceHandler.Update)
	invoices.DELETE("/:id", invoiceHandler.Delete)

	departments := authed.Group("/departments", adminOnly)
	departments.GET("", departmentHandler.List)
	departments.GET("/:id", departmentHandler.Get)
	departments.POST("", departmentHandler.Create)
	departments.PATCH("/:id", departmentHandler.Update)
	departments.DELETE("/:id", departmentHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// registerAuthRoutes mounts the auth endpoints on the /api group. Logout is
// deliberately outside the Auth guard: destroying a session that no longer
// exists must answer 204, not 401, so a client can always log out safely.
func registerAuthRoutes(api *echo.Group, h *handler.AuthHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	api.GET("/user", h.Me, authRequired)
}
