package handler

import (
	"github.com/evandrarf/lingua-be/internal/delivery/http/domain"
	"github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/evandrarf/lingua-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-be/internal/pkg/response"
	"github.com/evandrarf/lingua-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	PlayerHandler interface {
		Start(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		Vocabulary(ctx *fiber.Ctx) error
		Answer(ctx *fiber.Ctx) error
		Continue(ctx *fiber.Ctx) error
		Abandon(ctx *fiber.Ctx) error
	}

	playerHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.PlayerUsecase
	}
)

func NewPlayerHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.PlayerUsecase) PlayerHandler {
	return &playerHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /player/lessons/:lesson_id/attempts
func (h *playerHandler) Start(ctx *fiber.Ctx) error {
	view, err := h.usecase.Start(ctx.UserContext(), middleware.CurrentUser(ctx), ctx.Params("lesson_id"))
	if err != nil {
		return failed(domain.PLAYER_START_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PLAYER_START_SUCCESS, view, nil).Send(ctx)
}

// GET /player/attempts/:attempt_id
func (h *playerHandler) Get(ctx *fiber.Ctx) error {
	view, err := h.usecase.Get(ctx.UserContext(), middleware.CurrentUser(ctx), ctx.Params("attempt_id"))
	if err != nil {
		return failed(domain.PLAYER_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PLAYER_GET_SUCCESS, view, nil).Send(ctx)
}

// POST /player/attempts/:attempt_id/vocabulary
func (h *playerHandler) Vocabulary(ctx *fiber.Ctx) error {
	var req entity.VocabularyRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return badRequest(domain.PLAYER_VOCABULARY_FAILED, err, h.logger).Send(ctx)
	}

	view, err := h.usecase.Vocabulary(ctx.UserContext(), middleware.CurrentUser(ctx), ctx.Params("attempt_id"), req)
	if err != nil {
		return failed(domain.PLAYER_VOCABULARY_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PLAYER_VOCABULARY_SUCCESS, view, nil).Send(ctx)
}

// POST /player/attempts/:attempt_id/answer
func (h *playerHandler) Answer(ctx *fiber.Ctx) error {
	var req entity.AnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return badRequest(domain.PLAYER_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	res, err := h.usecase.Answer(ctx.UserContext(), middleware.CurrentUser(ctx), ctx.Params("attempt_id"), req)
	if err != nil {
		return failed(domain.PLAYER_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PLAYER_ANSWER_SUCCESS, res, nil).Send(ctx)
}

// POST /player/attempts/:attempt_id/continue
func (h *playerHandler) Continue(ctx *fiber.Ctx) error {
	view, err := h.usecase.Continue(ctx.UserContext(), middleware.CurrentUser(ctx), ctx.Params("attempt_id"))
	if err != nil {
		return failed(domain.PLAYER_CONTINUE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PLAYER_CONTINUE_SUCCESS, view, nil).Send(ctx)
}

// DELETE /player/attempts/:attempt_id
func (h *playerHandler) Abandon(ctx *fiber.Ctx) error {
	if err := h.usecase.Abandon(ctx.UserContext(), middleware.CurrentUser(ctx), ctx.Params("attempt_id")); err != nil {
		return failed(domain.PLAYER_ABANDON_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PLAYER_ABANDON_SUCCESS, nil, nil).Send(ctx)
}
