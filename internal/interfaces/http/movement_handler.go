package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
)

// MovementHandler maneja el registro y la consulta del libro de movimientos.
type MovementHandler struct {
	record   *inventory.RegisterMovementUseCase
	balances *inventory.BalanceUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(record *inventory.RegisterMovementUseCase, balances *inventory.BalanceUseCase) *MovementHandler {
	return &MovementHandler{record: record, balances: balances}
}

// Record godoc
// @Summary      Registrar movimiento
// @Description  Sin from_location_id = entrada; sin to_location_id = salida; ambos = traslado.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, from/to_location_id, 0 < quantity <= 2147483647"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.record.RecordMovementFromRequest(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRecent godoc
// @Summary      Movimientos recientes
// @Tags         movements
// @Produce      json
// @Param        limit  query  int  false  "Máximo de movimientos (por defecto 20, tope 500)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) ListRecent(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "limit debe ser un entero positivo", Field: "limit",
			})
		}
		limit = n
	}
	out, err := h.balances.ListRecentMovements(c.Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
