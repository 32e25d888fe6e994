package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
)

// NewRateLimiter construye un limitador en memoria a partir de un formato "<n>-<S|M|H|D>".
// Cadena vacía = sin límite (devuelve nil).
func NewRateLimiter(formatted string) (*limiter.Limiter, error) {
	if formatted == "" {
		return nil, nil
	}
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("rate limit %q: %w", formatted, err)
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimitMiddleware limita las escrituras por sujeto del token (o por IP si no hay token).
// Debe usarse DESPUÉS de AuthMiddleware para contar por sujeto.
//
// Comportamiento:
//   - 429 Too Many Requests → cuota agotada.
//   - 503 Service Unavailable → el store del limitador falló.
//   - lim nil → no limita.
func RateLimitMiddleware(lim *limiter.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if lim == nil {
			return c.Next()
		}
		key := GetSubject(c)
		if key == "" {
			key = c.IP()
		}
		lctx, err := lim.Get(c.Context(), key)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMIT_FAILED",
				Message: "no se pudo verificar el límite de peticiones",
			})
		}
		c.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiadas peticiones, intente más tarde",
			})
		}
		return c.Next()
	}
}
