package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abogapp/case-admin/internal/api/handler"
	"github.com/abogapp/case-admin/internal/api/middleware"
	"github.com/abogapp/case-admin/internal/core/domain"
	"github.com/abogapp/case-admin/internal/core/service"
	mongodb "github.com/abogapp/case-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/abogapp/case-admin/internal/infrastructure/db/redis"
	"github.com/abogapp/case-admin/internal/pkg/config"
)

// parametricKinds lists every reference table served by the generic CRUD
// surface, paired with its route prefix.
var parametricKinds = []struct {
	kind domain.Kind
	path string
}{
	{domain.KindCourt, "/courts"},
	{domain.KindClaimant, "/claimants"},
	{domain.KindObligationType, "/obligation-types"},
	{domain.KindProcessType, "/process-types"},
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowedOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("caseadmin"))

	tokenCfg := cfg.TokenConfig()

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	lockout := redisdb.NewLockoutTracker(rdb, cfg.Lockout.Window())

	issuer, err := service.NewTokenIssuer(tokenCfg)
	if err != nil {
		// Reaching here means config validation was skipped; refuse to serve.
		log.Fatal().Err(err).Msg("token issuer configuration invalid")
	}

	authService := service.NewAuthService(userRepo, lockout, issuer, cfg.Lockout.Threshold, log)
	userService := service.NewUserService(userRepo, roleRepo, log)
	roleService := service.NewRoleService(roleRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)

	authRequired := middleware.Auth(tokenCfg)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/ping", authHandler.Ping)
	e.GET("/auth/whoami", authHandler.WhoAmI, authRequired)
	e.GET("/auth/me", authHandler.Me, authRequired, adminOnly)

	// --- Administration routes (admin role required) ---
	admin := e.Group("", authRequired, adminOnly)

	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.PUT("/users/:id/roles", userHandler.SetRoles)
	admin.PATCH("/users/:id/toggle-active", userHandler.ToggleActive)
	admin.DELETE("/users/:id", userHandler.Delete)

	admin.GET("/roles", roleHandler.List)
	admin.GET("/roles/:id", roleHandler.Get)
	admin.POST("/roles", roleHandler.Create)
	admin.PUT("/roles/:id", roleHandler.Update)
	admin.DELETE("/roles/:id", roleHandler.Delete)

	for _, pk := range parametricKinds {
		repo := mongodb.NewParametricRepository(db, pk.kind)
		h := handler.NewParametricHandler(service.NewParametricService(pk.kind, repo, log))

		admin.GET(pk.path, h.List)
		admin.GET(pk.path+"/:id", h.Get)
		admin.POST(pk.path, h.Create)
		admin.PUT(pk.path+"/:id", h.Update)
		admin.PATCH(pk.path+"/:id/toggle-active", h.ToggleActive)
		admin.DELETE(pk.path+"/:id", h.Delete)
	}

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	// Serves the UI only; doc.json comes from the swag-generated docs
	// package, produced by `swag init` in CI and not committed.
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
