package handler

import (
	"errors"

	"github.com/evandrarf/lingua-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-be/internal/lesson"
	"github.com/evandrarf/lingua-be/internal/pkg/response"
	"github.com/evandrarf/lingua-be/internal/pkg/validate"
	"github.com/evandrarf/lingua-be/internal/player"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// badRequest answers a body that failed to parse or validate.
func badRequest(msg string, err error, log *logrus.Logger) *response.Response {
	var fields *validate.FieldsError
	if errors.As(err, &fields) {
		return response.NewFailed(msg, fields, log)
	}
	return response.NewFailed(msg, fiber.NewError(fiber.StatusBadRequest, err.Error()), log)
}

// failed maps usecase errors to a status code. Unknown errors are logged
// and reported as 500 without details.
func failed(msg string, err error, log *logrus.Logger) *response.Response {
	code := statusOf(err)
	if code >= fiber.StatusInternalServerError {
		if log != nil {
			log.Error(err)
		}
		return response.NewFailed(msg, fiber.NewError(code, ""), nil)
	}
	return response.NewFailed(msg, fiber.NewError(code, err.Error()), log)
}

func statusOf(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, usecase.ErrCannotDeleteSelf):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, lesson.ErrNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrAttemptNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrUsernameTaken),
		errors.Is(err, player.ErrInvalidState):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}
