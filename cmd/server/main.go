// @title         incollege API
// @version       1.0
// @description   JSON API over the legacy fixed-width record files: profiles, jobs, connections, and chunked messages, with login delegated to the original batch executable.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:4000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token issued after a successful legacy login. Formats: "Bearer <JWT>" or "<JWT>".
package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	swagger "github.com/gofiber/swagger"

	_ "github.com/incollege/backend/docs"

	// internal imports
	"github.com/incollege/backend/api/http"
	"github.com/incollege/backend/api/http/handlers"
	"github.com/incollege/backend/pkg/config"
	"github.com/incollege/backend/pkg/health"
	"github.com/incollege/backend/pkg/health/checkers"
	"github.com/incollege/backend/pkg/job"
	"github.com/incollege/backend/pkg/legacy"
	"github.com/incollege/backend/pkg/message"
	"github.com/incollege/backend/pkg/network"
	"github.com/incollege/backend/pkg/profile"
	fsrepo "github.com/incollege/backend/pkg/repository/flatfile"
	"github.com/incollege/backend/pkg/security/jwt"
	"github.com/incollege/backend/pkg/storage/flatdir"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Open the record directory
	store, err := flatdir.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("open data dir: %v", err)
	}

	// Wire dependencies (Clean Architecture)
	profileRepo := fsrepo.NewProfileRepository(store)
	jobRepo := fsrepo.NewJobRepository(store)
	applicationRepo := fsrepo.NewApplicationRepository(store)
	networkRepo := fsrepo.NewNetworkRepository(store)
	messageRepo := fsrepo.NewMessageRepository(store)

	// Token generator
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	runner := legacy.NewExecRunner(cfg.LegacyDir, cfg.LegacyExec)
	authUC := legacy.NewAuthService(runner, jwtGen)
	authHandler := handlers.NewAuthHandler(authUC)

	// Health service: compose checkers
	readiness := health.NewService(
		checkers.NewFlatDirChecker(store),
		checkers.NewLegacyChecker(cfg.LegacyDir, cfg.LegacyExec),
	)
	healthHandler := handlers.NewHealthHandler(readiness)

	profileUC := profile.NewService(profileRepo)
	profileHandler := handlers.NewProfileHandler(profileUC)
	jobUC := job.NewService(jobRepo, applicationRepo)
	jobHandler := handlers.NewJobHandler(jobUC)
	networkUC := network.NewService(networkRepo, profileRepo)
	connectionHandler := handlers.NewConnectionHandler(networkUC)
	messageUC := message.NewService(messageRepo, networkUC)
	messageHandler := handlers.NewMessageHandler(messageUC)

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	// Register routes
	http.Register(app, authHandler, healthHandler, profileHandler, jobHandler, connectionHandler, messageHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s (records in %s)", port, store.Dir())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
