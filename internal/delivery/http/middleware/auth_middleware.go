package middleware

import (
	"github.com/evandrarf/lingua-be/internal/delivery/http/domain"
	"github.com/evandrarf/lingua-be/internal/entity"
	"github.com/evandrarf/lingua-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
)

const (
	SessionUserID = "user_id"
	SessionRole   = "role"
)

// Authenticate reads the session cookie and puts the user id and role into
// Locals. Requests without a session pass through as guests.
func (m *Middleware) Authenticate() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if m.Sessions == nil {
			return ctx.Next()
		}

		sess, err := m.Sessions.Get(ctx)
		if err != nil {
			m.Log.Warnf("Failed to read session: %v", err)
			return ctx.Next()
		}

		if userID, ok := sess.Get(SessionUserID).(uint); ok && userID != 0 {
			ctx.Locals(SessionUserID, userID)
			role, _ := sess.Get(SessionRole).(string)
			ctx.Locals(SessionRole, role)
		}

		return ctx.Next()
	}
}

func (m *Middleware) RequireAuth() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if CurrentUser(ctx) == 0 {
			return response.NewFailed(domain.AUTH_REQUIRED, fiber.NewError(fiber.StatusUnauthorized, "login required"), m.Log).Send(ctx)
		}
		return ctx.Next()
	}
}

func (m *Middleware) RequireParent() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if CurrentUser(ctx) == 0 {
			return response.NewFailed(domain.AUTH_REQUIRED, fiber.NewError(fiber.StatusUnauthorized, "login required"), m.Log).Send(ctx)
		}
		if CurrentRole(ctx) != entity.RoleParent {
			return response.NewFailed(domain.AUTH_PARENT_ONLY, fiber.NewError(fiber.StatusForbidden, "parents only"), m.Log).Send(ctx)
		}
		return ctx.Next()
	}
}

// CurrentUser is 0 for guests.
func CurrentUser(ctx *fiber.Ctx) uint {
	id, _ := ctx.Locals(SessionUserID).(uint)
	return id
}

func CurrentRole(ctx *fiber.Ctx) string {
	role, _ := ctx.Locals(SessionRole).(string)
	return role
}
