package handler

import (
	"github.com/evandrarf/lingua-be/internal/delivery/http/domain"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/evandrarf/lingua-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	UserHandler interface {
		List(ctx *fiber.Ctx) error
		Delete(ctx *fiber.Ctx) error
	}

	userHandler struct {
		logger  *logrus.Logger
		usecase usecase.UserUsecase
	}
)

func NewUserHandler(logger *logrus.Logger, usecase usecase.UserUsecase) UserHandler {
	return &userHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /users
func (h *userHandler) List(ctx *fiber.Ctx) error {
	users, err := h.usecase.List(ctx.UserContext())
	if err != nil {
		return failed(domain.USER_LIST_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.USER_LIST_SUCCESS, users, nil).Send(ctx)
}

// DELETE /users/:id
func (h *userHandler) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.NewFailed(domain.USER_DELETE_FAILED, fiber.NewError(fiber.StatusBadRequest, "invalid user id"), h.logger).Send(ctx)
	}

	if err := h.usecase.Delete(ctx.UserContext(), middleware.CurrentUser(ctx), uint(id)); err != nil {
		return failed(domain.USER_DELETE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.USER_DELETE_SUCCESS, nil, nil).Send(ctx)
}
