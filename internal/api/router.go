package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/printops/backoffice-system/docs"
	"github.com/printops/backoffice-system/internal/api/handler"
	"github.com/printops/backoffice-system/internal/api/middleware"
	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/service"
	"github.com/printops/backoffice-system/internal/infrastructure/db/gormdb"
	redisdb "github.com/printops/backoffice-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the listing cache is then disabled and readiness skips the
// Redis probe.
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	var cache service.ViewCache
	if rdb != nil {
		cache = redisdb.NewViewCache(rdb)
	}

	roleRepo := gormdb.NewRoleRepository(db)
	catalog := gormdb.NewPermissionCatalog(db)
	orderRepo := gormdb.NewOrderRepository(db)
	aboutRepo := gormdb.NewAboutRepository(db)
	addressRepo := gormdb.NewAddressRepository(db)
	authRepo := gormdb.NewAuthRepository(db)

	roleService := service.NewRoleService(roleRepo, catalog, cache, log)
	orderService := service.NewOrderService(orderRepo, log)
	aboutService := service.NewAboutService(aboutRepo, log)
	addressService := service.NewAddressService(addressRepo, authRepo, log)
	authService := service.NewAuthService(authRepo, roleRepo, jwtSecret, 24*time.Hour, log)

	roleHandler := handler.NewRoleHandler(roleService)
	permissionHandler := handler.NewPermissionHandler(catalog)
	orderHandler := handler.NewOrderHandler(orderService)
	aboutHandler := handler.NewAboutHandler(aboutService)
	addressHandler := handler.NewAddressHandler(addressService)
	authHandler := handler.NewAuthHandler(authService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Admin API ---
	v1 := e.Group("/v1", authMiddleware)

	roles := v1.Group("/roles")
	roles.GET("", roleHandler.List, middleware.RequirePermission(domain.PermRolesView))
	roles.POST("", roleHandler.Create, middleware.RequirePermission(domain.PermRolesCreate))
	roles.PATCH("/:name", roleHandler.Update, middleware.RequirePermission(domain.PermRolesUpdate))
	roles.PUT("/:name/permissions", roleHandler.ReplacePermissions, middleware.RequirePermission(domain.PermRolesUpdate))
	roles.DELETE("/:name", roleHandler.Delete, middleware.RequirePermission(domain.PermRolesDelete))

	v1.GET("/permissions", permissionHandler.List, middleware.RequirePermission(domain.PermPermissionsView, domain.PermRolesView))

	orders := v1.Group("/orders")
	orders.GET("", orderHandler.List, middleware.RequirePermission(domain.PermOrdersView))
	orders.POST("", orderHandler.Create, middleware.RequirePermission(domain.PermOrdersCreate))
	orders.PATCH("/:id", orderHandler.Update, middleware.RequirePermission(domain.PermOrdersUpdate))
	orders.PATCH("/:id/status", orderHandler.UpdateStatus, middleware.RequirePermission(domain.PermOrdersUpdate))
	orders.DELETE("/:id", orderHandler.Delete, middleware.RequirePermission(domain.PermOrdersDelete))

	// Content sections are publicly readable; only writes need a token.
	e.GET("/v1/about", aboutHandler.ListSections)
	e.GET("/v1/about/:key", aboutHandler.GetSection)
	v1.PUT("/about/:key", aboutHandler.UpsertSection, middleware.RequirePermission(domain.PermContentManage))

	v1.GET("/users/:id/addresses", addressHandler.ListForUser, middleware.RequirePermission(domain.PermAddressesManage))
	v1.POST("/users/:id/addresses", addressHandler.Create, middleware.RequirePermission(domain.PermAddressesManage))
	v1.DELETE("/addresses/:id", addressHandler.Delete, middleware.RequirePermission(domain.PermAddressesManage))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
