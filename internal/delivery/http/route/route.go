package route

import (
	"github.com/evandrarf/lingua-be/internal/delivery/http/handler"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api             *fiber.App
	Middleware      *middleware.Middleware
	StaticDir       string
	AudioDir        string
	AuthHandler     handler.AuthHandler
	UserHandler     handler.UserHandler
	LessonHandler   handler.LessonHandler
	ProgressHandler handler.ProgressHandler
	PlayerHandler   handler.PlayerHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	api := c.Api.Group("/api", c.Middleware.Authenticate())

	SetupAuthRoute(api, c.AuthHandler, c.Middleware)
	SetupUserRoute(api, c.UserHandler, c.Middleware)
	SetupLessonRoute(api, c.LessonHandler, c.Middleware)
	SetupProgressRoute(api, c.ProgressHandler, c.Middleware)
	SetupPlayerRoute(api, c.PlayerHandler, c.Middleware)

	if c.AudioDir != "" {
		c.Api.Static("/audio", c.AudioDir)
	}
	if c.StaticDir != "" {
		c.Api.Static("/", c.StaticDir)
	}
}
