package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
)

func TestAccessError_EnvuelveSentinelas(t *testing.T) {
	err := fmt.Errorf("middleware: %w", unauthorized("INVALID_TOKEN", "token inválido o expirado"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
	assert.True(t, domain.IsDomainError(err))

	err = forbidden("FORBIDDEN", "rol sin permiso")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.True(t, domain.IsDomainError(err))
}

func TestWriteError_Estados(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{unauthorized("MISSING_TOKEN", "falta token"), fiber.StatusUnauthorized, "MISSING_TOKEN"},
		{forbidden("FORBIDDEN", "rol sin permiso"), fiber.StatusForbidden, "FORBIDDEN"},
		{domain.NewValidationError("quantity", "debe ser positiva"), fiber.StatusBadRequest, "VALIDATION"},
		{&domain.NotFoundError{Resource: "location", ID: "x"}, fiber.StatusNotFound, "NOT_FOUND"},
		{&domain.ConflictError{Resource: "product", Name: "Laptop"}, fiber.StatusConflict, "CONFLICT"},
		{&domain.ReferencedError{Resource: "location", ID: "x", Count: 2}, fiber.StatusConflict, "REFERENCED"},
		{&domain.StorageError{Op: "listar", Err: errors.New("conexión rechazada")}, fiber.StatusServiceUnavailable, "STORAGE"},
		{errors.New("inesperado"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error { return writeError(c, tc.err) })

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.code)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		assert.Equal(t, tc.code, body.Code)
	}
}
