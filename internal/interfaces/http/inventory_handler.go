package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aetherchain/aetherchain-api/internal/application/dto"
	"github.com/aetherchain/aetherchain-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP para lotes y alertas de stock.
type InventoryHandler struct {
	uc      *usecase.InventoryUseCase
	alertUC *usecase.AlertUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, alertUC *usecase.AlertUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, alertUC: alertUC}
}

// AddLot registra un lote de existencias.
func (h *InventoryHandler) AddLot(c *fiber.Ctx) error {
	var in dto.AddInventoryLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.AddLot(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista lotes.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c, 500)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Alerts devuelve los productos con stock total bajo su umbral de reposición.
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.alertUC.LowStockAlerts(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
