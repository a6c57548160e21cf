package middleware

import (
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MiddlewareConfig struct {
	Log      *logrus.Logger
	Config   *viper.Viper
	Sessions *session.Store
}

type Middleware struct {
	Log      *logrus.Logger
	Config   *viper.Viper
	Sessions *session.Store
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{}
	}

	return &Middleware{
		Log:      c.Log,
		Config:   c.Config,
		Sessions: c.Sessions,
	}
}
