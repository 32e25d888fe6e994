package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
)

// accessError rechazo de autenticación o autorización. Err es domain.ErrUnauthorized o domain.ErrForbidden;
// Code es el código que ve el cliente (MISSING_TOKEN, INVALID_TOKEN, MISSING_ROLE, FORBIDDEN).
type accessError struct {
	Code    string
	Message string
	Err     error
}

func (e *accessError) Error() string { return e.Message }

func (e *accessError) Unwrap() error { return e.Err }

func unauthorized(code, message string) error {
	return &accessError{Code: code, Message: message, Err: domain.ErrUnauthorized}
}

func forbidden(code, message string) error {
	return &accessError{Code: code, Message: message, Err: domain.ErrForbidden}
}

// writeError traduce la taxonomía de errores de dominio a status HTTP + ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
		referencedErr *domain.ReferencedError
		accessErr     *accessError
	)
	switch {
	case errors.As(err, &accessErr):
		status := fiber.StatusForbidden
		if errors.Is(err, domain.ErrUnauthorized) {
			status = fiber.StatusUnauthorized
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: accessErr.Code, Message: accessErr.Message})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: validationErr.Message, Field: validationErr.Field,
		})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: conflictErr.Error()})
	case errors.As(err, &referencedErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "REFERENCED", Message: referencedErr.Error(), Count: referencedErr.Count,
		})
	case errors.Is(err, domain.ErrStorage), errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("fallo de almacenamiento")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "STORAGE", Message: "almacenamiento no disponible, intente más tarde",
		})
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
