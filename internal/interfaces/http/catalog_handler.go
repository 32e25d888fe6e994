package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// CatalogHandler maneja las peticiones HTTP de productos o ubicaciones (una instancia por tipo).
type CatalogHandler struct {
	uc   *usecase.CatalogUseCase
	kind entity.Kind
}

// NewCatalogHandler construye el handler para el tipo indicado.
func NewCatalogHandler(uc *usecase.CatalogUseCase, kind entity.Kind) *CatalogHandler {
	return &CatalogHandler{uc: uc, kind: kind}
}

// List godoc
// @Summary      Listar productos / ubicaciones
// @Description  Orden alfabético por nombre.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.EntityListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/products [get]
// @Router       /api/locations [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), h.kind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto / ubicación
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntityRequest  true  "Nombre único dentro del tipo"
// @Success      201   {object}  dto.EntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
// @Router       /api/locations [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Add(c.Context(), h.kind, in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Renombrar producto / ubicación
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID (UUID)"
// @Param        body  body  dto.RenameEntityRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.EntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
// @Router       /api/locations/{id} [put]
func (h *CatalogHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Rename(c.Context(), h.kind, c.Params("id"), in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto / ubicación
// @Description  Se rechaza con 409 REFERENCED si algún movimiento la referencia.
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID (UUID)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
// @Router       /api/locations/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), h.kind, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
