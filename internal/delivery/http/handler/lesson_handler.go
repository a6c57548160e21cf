package handler

import (
	"github.com/evandrarf/lingua-be/internal/delivery/http/domain"
	"github.com/evandrarf/lingua-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	LessonHandler interface {
		List(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
	}

	lessonHandler struct {
		logger  *logrus.Logger
		usecase usecase.LessonUsecase
	}
)

func NewLessonHandler(logger *logrus.Logger, usecase usecase.LessonUsecase) LessonHandler {
	return &lessonHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /lessons
func (h *lessonHandler) List(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.LESSON_LIST_SUCCESS, h.usecase.List(ctx.UserContext()), nil).Send(ctx)
}

// GET /lessons/:id
func (h *lessonHandler) Get(ctx *fiber.Ctx) error {
	lesson, err := h.usecase.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return failed(domain.LESSON_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LESSON_GET_SUCCESS, lesson, nil).Send(ctx)
}
