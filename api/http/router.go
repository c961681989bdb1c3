package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/incollege/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Everything except
// auth and the probes sits behind the JWT middleware.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	profiles *handlers.ProfileHandler,
	jobs *handlers.JobHandler,
	connections *handlers.ConnectionHandler,
	messages *handlers.MessageHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	protected := v1.Group("", authMW)

	p := protected.Group("/profiles")
	p.Get("/search", profiles.Find)
	p.Get("/:username", profiles.Get)
	p.Put("/:username", profiles.Save)

	cg := protected.Group("/connections")
	cg.Post("/request", connections.Request)
	cg.Post("/respond", connections.Respond)
	cg.Get("/pending/:username", connections.Pending)
	cg.Get("/network/:username", connections.Network)

	jg := protected.Group("/jobs")
	jg.Get("", jobs.Search)
	jg.Post("", jobs.Post)
	jg.Post("/apply", jobs.Apply)
	protected.Get("/applications/:username", jobs.Applications)

	mg := protected.Group("/messages")
	mg.Post("", messages.Send)
	mg.Get("/sent/:username", messages.Sent)
	mg.Get("/:username", messages.Inbox)
}
