package routes

import (
	"time"

	"github.com/craftygram/craftygram-backend/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	userHandler *handlers.UserHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	messageHandler *handlers.MessageHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// /users/strict must register before /users/:id
	api.Post("/users", userHandler.Create)
	api.Get("/users", userHandler.List)
	api.Get("/users/strict", userHandler.ListStrict)
	api.Get("/users/:id", userHandler.GetByID)

	api.Post("/posts", postHandler.Create)
	api.Get("/posts", postHandler.List)
	api.Delete("/posts/:id", postHandler.Delete)

	api.Post("/comments", commentHandler.Create)
	api.Get("/comments", commentHandler.List)

	api.Post("/subscriptions", subscriptionHandler.Create)
	api.Get("/subscriptions", subscriptionHandler.List)

	api.Post("/messages", messageHandler.Create)
	api.Get("/messages", messageHandler.List)
}
