package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/teamtrack/employee-system/internal/api/handler"
	"github.com/teamtrack/employee-system/internal/api/middleware"
	"github.com/teamtrack/employee-system/internal/core/domain"
	"github.com/teamtrack/employee-system/internal/core/ports"
	"github.com/teamtrack/employee-system/internal/core/service"
	"github.com/teamtrack/employee-system/internal/infrastructure/config"
	redisdb "github.com/teamtrack/employee-system/internal/infrastructure/db/redis"
	sqlitedb "github.com/teamtrack/employee-system/internal/infrastructure/db/sqlite"
	"github.com/teamtrack/employee-system/pkg/logger"
)

// authRateLimit throttles the public credential endpoints per client IP.
const authRateLimit = rate.Limit(5)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the dashboard summary then skips its cache.
func NewRouter(cfg *config.Config, db *sql.DB, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("employees"))

	// --- Dependencies ---
	authRepo := sqlitedb.NewAuthRepository(db)
	employeeRepo := sqlitedb.NewEmployeeRepository(db)
	departmentRepo := sqlitedb.NewDepartmentRepository(db)
	attendanceRepo := sqlitedb.NewAttendanceRepository(db)
	leaveRepo := sqlitedb.NewLeaveRepository(db)
	dashboardRepo := sqlitedb.NewDashboardRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, time.Hour)
	authService := service.NewAuthService(authRepo, employeeRepo, tokenService, log)
	employeeService := service.NewEmployeeService(employeeRepo, departmentRepo, log)
	departmentService := service.NewDepartmentService(departmentRepo, log)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, log)
	leaveService := service.NewLeaveService(leaveRepo, employeeRepo, log)

	var summaryCache ports.SummaryCache
	if rdb != nil {
		summaryCache = redisdb.NewSummaryCache(rdb)
	}
	dashboardService := service.NewDashboardService(dashboardRepo, summaryCache, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authMW := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee)

	// --- Public auth routes (rate limited) ---
	limiter := echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(authRateLimit))
	e.POST("/register", authHandler.Register, limiter)
	e.POST("/login", authHandler.Login, limiter)

	// --- Protected routes ---
	e.GET("/current-user", authHandler.CurrentUser, authMW, anyRole)

	e.GET("/employees", employeeHandler.List, authMW, anyRole)
	e.GET("/employees/:id", employeeHandler.Get, authMW, anyRole)
	e.POST("/employees", employeeHandler.Create, authMW, adminOnly)
	e.PUT("/employees/:id", employeeHandler.Update, authMW, adminOnly)
	e.DELETE("/employees/:id", employeeHandler.Delete, authMW, adminOnly)

	e.GET("/departments", departmentHandler.List, authMW, anyRole)
	e.GET("/departments/:id", departmentHandler.Get, authMW, anyRole)
	e.POST("/departments", departmentHandler.Create, authMW, adminOnly)
	e.PUT("/departments/:id", departmentHandler.Update, authMW, adminOnly)
	e.DELETE("/departments/:id", departmentHandler.Delete, authMW, adminOnly)

	e.POST("/attendance/check-in", attendanceHandler.CheckIn, authMW, adminOnly)
	e.POST("/attendance/check-out", attendanceHandler.CheckOut, authMW, adminOnly)
	e.GET("/attendance", attendanceHandler.ListRecent, authMW, adminOnly)
	e.GET("/attendance/:employeeId", attendanceHandler.ListByEmployee, authMW, adminOnly)

	e.GET("/leaves", leaveHandler.List, authMW, anyRole)
	e.POST("/leaves", leaveHandler.Create, authMW, anyRole)
	e.PUT("/leaves/:id", leaveHandler.UpdateStatus, authMW, adminOnly)
	e.DELETE("/leaves/:id", leaveHandler.Delete, authMW, adminOnly)

	e.GET("/dashboard/summary", dashboardHandler.Summary, authMW, anyRole)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
