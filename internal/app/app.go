package app

import (
	"fiufit-users/internal/handlers"
	"fiufit-users/internal/metrics"
	"fiufit-users/internal/repositories"
	"fiufit-users/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// Deps are the stores and collaborators the HTTP app is built on.
type Deps struct {
	DB        *gorm.DB
	Locations repositories.LocationRepository

	Verifier services.CredentialVerifier
	Tokens   services.TokenIssuer
	Identity services.IdentityProvider
	Payments services.PaymentsGateway

	// Metrics receives usage events. Defaults to metrics.Nop.
	Metrics metrics.Recorder
	// Requests counts served requests when set.
	Requests *metrics.RequestCounter
	// LogRequests enables the per-request access log.
	LogRequests bool
}

// New wires repositories, services and handlers into a Fiber app.
func New(deps Deps) *fiber.App {
	recorder := deps.Metrics
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	followRepo := repositories.NewGORMFollowRepository(deps.DB)
	walletRepo := repositories.NewGORMWalletRepository(deps.DB)
	adminRepo := repositories.NewGORMAdminRepository(deps.DB)

	// --- Services ---
	locationService := services.NewLocationService(deps.Locations)
	walletService := services.NewWalletService(walletRepo, userRepo, deps.Payments)
	userService := services.NewUserService(userRepo, locationService, walletService, deps.Identity, recorder)
	searchService := services.NewSearchService(userRepo, locationService, recorder)
	followService := services.NewFollowService(followRepo)
	authService := services.NewAuthService(userRepo, adminRepo, deps.Identity, deps.Tokens, recorder)
	adminService := services.NewAdminService(adminRepo, deps.Identity)

	// --- Handlers ---
	healthHandler := handlers.NewHealthHandler(locationService)
	walletHandler := handlers.NewWalletHandler(walletService, userService, deps.Verifier)
	adminHandler := handlers.NewAdminHandler(adminService, deps.Verifier)
	authHandler := handlers.NewAuthHandler(authService)
	followHandler := handlers.NewFollowHandler(followService, userService, deps.Verifier)
	userHandler := handlers.NewUserHandler(userService, searchService, deps.Verifier)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	// --- Middleware ---
	app.Use(cors.New())
	if deps.LogRequests {
		app.Use(logger.New())
	}
	if deps.Requests != nil {
		app.Use(deps.Requests.Middleware())
	}

	// --- Routes ---
	// Static /users/<name> paths first, /users/:id last.
	healthHandler.RegisterRoutes(app)
	walletHandler.RegisterRoutes(app)
	adminHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app)
	followHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)

	return app
}
