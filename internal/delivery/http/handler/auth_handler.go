package handler

import (
	"github.com/evandrarf/lingua-be/internal/delivery/http/domain"
	"github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/evandrarf/lingua-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-be/internal/pkg/response"
	"github.com/evandrarf/lingua-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

type (
	AuthHandler interface {
		Register(ctx *fiber.Ctx) error
		Login(ctx *fiber.Ctx) error
		Logout(ctx *fiber.Ctx) error
		Me(ctx *fiber.Ctx) error
	}

	authHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		sessions  *session.Store
		usecase   usecase.AuthUsecase
	}
)

func NewAuthHandler(validator *validate.Validator, logger *logrus.Logger, sessions *session.Store, usecase usecase.AuthUsecase) AuthHandler {
	return &authHandler{
		validator: validator,
		logger:    logger,
		sessions:  sessions,
		usecase:   usecase,
	}
}

// POST /auth/register
func (h *authHandler) Register(ctx *fiber.Ctx) error {
	var req entity.RegisterRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return badRequest(domain.AUTH_REGISTER_FAILED, err, h.logger).Send(ctx)
	}

	user, err := h.usecase.Register(ctx.UserContext(), req)
	if err != nil {
		return failed(domain.AUTH_REGISTER_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_REGISTER_SUCCESS, user, nil).Send(ctx)
}

// POST /auth/login
func (h *authHandler) Login(ctx *fiber.Ctx) error {
	var req entity.LoginRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return badRequest(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	user, err := h.usecase.Login(ctx.UserContext(), req)
	if err != nil {
		return failed(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	sess, err := h.sessions.Get(ctx)
	if err != nil {
		return failed(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}
	if err := sess.Regenerate(); err != nil {
		return failed(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}
	sess.Set(middleware.SessionUserID, user.ID)
	sess.Set(middleware.SessionRole, user.Role)
	if err := sess.Save(); err != nil {
		return failed(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_LOGIN_SUCCESS, user, nil).Send(ctx)
}

// POST /auth/logout
func (h *authHandler) Logout(ctx *fiber.Ctx) error {
	sess, err := h.sessions.Get(ctx)
	if err != nil {
		return failed(domain.AUTH_LOGOUT_FAILED, err, h.logger).Send(ctx)
	}
	if err := sess.Destroy(); err != nil {
		return failed(domain.AUTH_LOGOUT_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_LOGOUT_SUCCESS, nil, nil).Send(ctx)
}

// GET /auth/me
func (h *authHandler) Me(ctx *fiber.Ctx) error {
	user, err := h.usecase.Me(ctx.UserContext(), middleware.CurrentUser(ctx))
	if err != nil {
		return failed(domain.AUTH_ME_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_ME_SUCCESS, user, nil).Send(ctx)
}
