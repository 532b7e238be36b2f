package server

import (
	"github.com/gofiber/fiber/v2"

	"task-tracker/internal/errors"
	"task-tracker/internal/validation"
)

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// DeleteResponse confirms a removal
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// HealthResponse reports liveness and store size
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Tasks   int    `json:"tasks"`
}

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, statusCode int, code, message string, details any) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// AppErrorResponse renders err with the status its type maps to
func AppErrorResponse(c *fiber.Ctx, err error) error {
	if !errors.IsAppError(err) {
		return ErrorResponse(c, fiber.StatusInternalServerError, errors.CodeInternal, "internal server error", nil)
	}
	status := errors.HTTPStatus(err)
	code := errors.GetErrorCode(err)

	var details any
	if errors.IsValidation(err) {
		appErr, _ := errors.AsAppError(err)
		if ve, ok := appErr.Cause.(*validation.ValidationError); ok && ve.HasErrors() {
			details = ve.Errors
		}
	}

	return ErrorResponse(c, status, code, errors.GetUserMessage(err), details)
}

// fiberErrorCode maps framework errors (unknown route, oversized body) onto wire codes
func fiberErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return errors.CodeBadRequest
	case fiber.StatusNotFound:
		return errors.CodeNotFound
	case fiber.StatusConflict:
		return errors.CodeConflict
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	}
	if status >= 500 {
		return errors.CodeInternal
	}
	return errors.CodeBadRequest
}
