package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vegfeedback/internal/config"
	"vegfeedback/internal/database"
	"vegfeedback/internal/handlers"
	"vegfeedback/internal/middleware"
	"vegfeedback/internal/repositories"
	"vegfeedback/internal/services"
	"vegfeedback/internal/validation"
	"vegfeedback/pkg/logger"
	"vegfeedback/pkg/redisstore"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// App is the HTTP application together with the resources it owns.
type App struct {
	*fiber.App
	closers []func() error
}

// Close releases the database and session storage.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type stores struct {
	users      repositories.UserRepository
	vegetables repositories.VegetableRepository
	feedback   repositories.FeedbackRepository
}

// NewApp wires repositories, services and handlers according to cfg.
// publisher may be nil, in which case no events are published.
func NewApp(cfg *config.Config, publisher services.EventPublisher) (*App, error) {
	app := &App{}

	repos, err := app.openStores(cfg.Database)
	if err != nil {
		return nil, err
	}

	sessions, err := app.openSessions(cfg.Session)
	if err != nil {
		app.Close()
		return nil, err
	}

	validate := validation.New(cfg.Auth.EmailDomain)

	// --- Initialize Services ---
	authService := services.NewAuthService(repos.users, validate, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	vegetableService := services.NewVegetableService(repos.vegetables)
	feedbackService := services.NewFeedbackService(repos.feedback, repos.vegetables, validate, publisher)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	seeded, err := vegetableService.SeedCatalog(ctx, services.DefaultCatalog)
	if err != nil {
		app.Close()
		return nil, err
	}
	if seeded > 0 {
		logger.Info().Int("count", seeded).Msg("seeded vegetable catalog")
	}

	// --- Initialize Handlers ---
	authGate := middleware.AuthRequired(authService, sessions)
	authHandler := handlers.NewAuthHandler(authService, sessions, authGate)
	vegetableHandler := handlers.NewVegetableHandler(vegetableService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, authGate)

	// --- Initialize Fiber App ---
	app.App = fiber.New(fiber.Config{
		AppName:      "vegfeedback",
		ErrorHandler: errorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Output: logger.Writer("http"),
		Format: "${status} ${method} ${path} ${latency}\n",
	}))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": publisher != nil,
		})
	})

	// --- API Routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	vegetableHandler.RegisterRoutes(api)
	feedbackHandler.RegisterRoutes(api)

	return app, nil
}

func (a *App) openStores(cfg config.Database) (stores, error) {
	if cfg.Driver == config.DriverMemory {
		logger.Warn().Msg("using in-memory repositories; data is lost on restart")
		return stores{
			users:      repositories.NewMockUserRepository(),
			vegetables: repositories.NewMockVegetableRepository(),
			feedback:   repositories.NewMockFeedbackRepository(),
		}, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return stores{}, err
	}
	a.closers = append(a.closers, func() error { return database.Close(db) })
	logger.Info().Str("driver", cfg.Driver).Msg("database connected")

	return stores{
		users:      repositories.NewGORMUserRepository(db),
		vegetables: repositories.NewGORMVegetableRepository(db),
		feedback:   repositories.NewGORMFeedbackRepository(db),
	}, nil
}

func (a *App) openSessions(cfg config.Session) (*session.Store, error) {
	sessionCfg := session.Config{
		Expiration:     cfg.TTL,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	}
	if cfg.Store == config.SessionStoreRedis {
		storage, err := redisstore.New(cfg.RedisURL, "session:")
		if err != nil {
			return nil, fmt.Errorf("failed to open session storage: %w", err)
		}
		a.closers = append(a.closers, storage.Close)
		sessionCfg.Storage = storage
		logger.Info().Msg("sessions stored in Redis")
	}
	return session.New(sessionCfg), nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}
