// CareLink backend API.
//
// POST /api/auth/signup            # Register a caregiver (public)
// POST /api/auth/login             # Login (public)
// POST /api/auth/logout            # End session (auth)
// GET  /api/auth/me                # Current account (auth)
// GET  /api/profile                # Child profile (auth)
// PUT  /api/profile                # Partial profile update (auth)
// GET  /api/dashboard/metrics      # Latest wristband metrics (auth)
// POST /api/dashboard/readings     # Record a reading (auth)
// GET  /api/alerts                 # List alerts (auth)
// POST /api/alerts                 # Create an alert (auth)
// PUT  /api/alerts/{id}/read       # Mark alert read (auth)
// GET  /api/health                 # Liveness (public)
package api

import (
	alertAPI "carelink/internal/app/server/api/http/alert"
	authAPI "carelink/internal/app/server/api/http/auth"
	dashboardAPI "carelink/internal/app/server/api/http/dashboard"
	healthAPI "carelink/internal/app/server/api/http/health"
	"carelink/internal/app/server/api/http/middleware"
	authMW "carelink/internal/app/server/api/http/middleware/auth"
	loggerMW "carelink/internal/app/server/api/http/middleware/logger"
	"carelink/internal/app/server/api/http/middleware/requestid"
	profileAPI "carelink/internal/app/server/api/http/profile"
	"carelink/internal/app/server/config"
	"carelink/internal/domain/alert"
	"carelink/internal/domain/profile"
	"carelink/internal/domain/reading"
	"carelink/internal/domain/session"
	"carelink/internal/domain/user"
	"carelink/internal/infrastructure/storage/postgres"
	"carelink/internal/security/password"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health    *healthAPI.Handler
	Auth      *authAPI.Handler
	Profile   *profileAPI.Handler
	Dashboard *dashboardAPI.Handler
	Alert     *alertAPI.Handler
}

// New builds the router with every operation registered through
// huma.Register.
func New(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", requestid.Header},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	humaConfig := huma.DefaultConfig("CareLink API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, storage, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Profile.SetupRoutes(API)
	h.Dashboard.SetupRoutes(API)
	h.Alert.SetupRoutes(API)

	return mux
}

func handlers(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) *Handlers {
	sessionService := session.NewService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL, log)
	hasher := password.NewHasher(password.DefaultParams())

	authMiddleware := authMW.New(sessionService, log)
	loggerMiddleware := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	public := func() huma.Middlewares {
		middlewares.Add(requestid.Middleware())
		middlewares.Add(loggerMiddleware.Middleware())
		return middlewares.GetAllAndClear()
	}
	protected := func() huma.Middlewares {
		middlewares.Add(requestid.Middleware())
		middlewares.Add(loggerMiddleware.Middleware())
		middlewares.Add(authMiddleware.Middleware())
		return middlewares.GetAllAndClear()
	}

	healthHandler := healthAPI.NewHandler(log, public())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, hasher, log)
	authHandler := authAPI.NewHandler(userService, sessionService, log, public(), protected())

	profileRepo := postgres.NewProfileRepository(storage.Pool(), log)
	profileService := profile.NewService(profileRepo, log)
	profileHandler := profileAPI.NewHandler(profileService, log, protected())

	readingRepo := postgres.NewReadingRepository(storage.Pool(), log)
	readingService := reading.NewService(readingRepo, log)
	dashboardHandler := dashboardAPI.NewHandler(readingService, log, protected())

	alertRepo := postgres.NewAlertRepository(storage.Pool(), log)
	alertService := alert.NewService(alertRepo, log)
	alertHandler := alertAPI.NewHandler(alertService, log, protected())

	return &Handlers{
		Health:    healthHandler,
		Auth:      authHandler,
		Profile:   profileHandler,
		Dashboard: dashboardHandler,
		Alert:     alertHandler,
	}
}
