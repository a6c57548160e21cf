package handler

import (
	"fmt"
	"time"

	"github.com/evandrarf/lingua-be/internal/delivery/http/domain"
	"github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/evandrarf/lingua-be/internal/delivery/http/usecase"
	internalEntity "github.com/evandrarf/lingua-be/internal/entity"
	"github.com/evandrarf/lingua-be/internal/pkg/response"
	"github.com/evandrarf/lingua-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type (
	ProgressHandler interface {
		Save(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		Complete(ctx *fiber.Ctx) error
		MyResults(ctx *fiber.Ctx) error
		AllResults(ctx *fiber.Ctx) error
		ExportResults(ctx *fiber.Ctx) error
		Stats(ctx *fiber.Ctx) error
	}

	progressHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ProgressUsecase
	}
)

func NewProgressHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ProgressUsecase) ProgressHandler {
	return &progressHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /progress/save
func (h *progressHandler) Save(ctx *fiber.Ctx) error {
	var req entity.SaveProgressRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return badRequest(domain.PROGRESS_SAVE_FAILED, err, h.logger).Send(ctx)
	}

	if err := h.usecase.Save(ctx.UserContext(), middleware.CurrentUser(ctx), req); err != nil {
		return failed(domain.PROGRESS_SAVE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_SAVE_SUCCESS, nil, nil).Send(ctx)
}

// GET /progress/lesson/:lesson_id
func (h *progressHandler) Get(ctx *fiber.Ctx) error {
	progress, err := h.usecase.Get(ctx.UserContext(), middleware.CurrentUser(ctx), ctx.Params("lesson_id"))
	if err != nil {
		return failed(domain.PROGRESS_GET_FAILED, err, h.logger).Send(ctx)
	}

	// data stays null when nothing is saved
	return response.NewSuccess(domain.PROGRESS_GET_SUCCESS, progress, nil).Send(ctx)
}

// POST /progress/complete
func (h *progressHandler) Complete(ctx *fiber.Ctx) error {
	var req entity.CompleteLessonRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return badRequest(domain.PROGRESS_COMPLETE_FAILED, err, h.logger).Send(ctx)
	}

	res, err := h.usecase.Complete(ctx.UserContext(), middleware.CurrentUser(ctx), req)
	if err != nil {
		return failed(domain.PROGRESS_COMPLETE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_COMPLETE_SUCCESS, res, nil).Send(ctx)
}

// GET /progress/my-results
func (h *progressHandler) MyResults(ctx *fiber.Ctx) error {
	results, err := h.usecase.MyResults(ctx.UserContext(), middleware.CurrentUser(ctx))
	if err != nil {
		return failed(domain.PROGRESS_RESULTS_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_RESULTS_SUCCESS, results, nil).Send(ctx)
}

// GET /progress/all-results
func (h *progressHandler) AllResults(ctx *fiber.Ctx) error {
	results, err := h.usecase.AllResults(ctx.UserContext())
	if err != nil {
		return failed(domain.PROGRESS_RESULTS_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_RESULTS_SUCCESS, results, nil).Send(ctx)
}

// GET /progress/all-results/export
func (h *progressHandler) ExportResults(ctx *fiber.Ctx) error {
	data, err := h.usecase.ExportResults(ctx.UserContext())
	if err != nil {
		return failed(domain.PROGRESS_EXPORT_FAILED, err, h.logger).Send(ctx)
	}

	filename := fmt.Sprintf("lesson-results-%s.xlsx", time.Now().Format("20060102"))
	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Attachment(filename)
	return ctx.Send(data)
}

// GET /progress/stats/:user_id
func (h *progressHandler) Stats(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt("user_id")
	if err != nil || userID <= 0 {
		return response.NewFailed(domain.PROGRESS_STATS_FAILED, fiber.NewError(fiber.StatusBadRequest, "invalid user id"), h.logger).Send(ctx)
	}

	isParent := middleware.CurrentRole(ctx) == internalEntity.RoleParent
	stats, err := h.usecase.Stats(ctx.UserContext(), middleware.CurrentUser(ctx), isParent, uint(userID))
	if err != nil {
		return failed(domain.PROGRESS_STATS_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROGRESS_STATS_SUCCESS, stats, nil).Send(ctx)
}
