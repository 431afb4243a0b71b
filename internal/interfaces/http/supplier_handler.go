package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aetherchain/aetherchain-api/internal/application/dto"
	"github.com/aetherchain/aetherchain-api/internal/application/sync"
)

// SupplierHandler maneja las peticiones HTTP para Supplier y sus productos.
type SupplierHandler struct {
	uc *sync.Coordinator
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *sync.Coordinator) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create crea un proveedor (primario + proyección). 201 aun si la proyección
// quedó pendiente (header X-Projection-Pending).
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.CreateSupplier(c.Context(), in)
	return created(c, out, err)
}

// CreateProduct crea un producto bajo el proveedor de la ruta.
func (h *SupplierHandler) CreateProduct(c *fiber.Ctx) error {
	supplierID := c.Params("id")
	if supplierID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.CreateProduct(c.Context(), supplierID, in)
	return created(c, out, err)
}

// GetByID obtiene un proveedor por ID.
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetSupplier(c.Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// List lista proveedores.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c, 100)
	out, err := h.uc.ListSuppliers(c.Context(), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListProducts lista productos.
func (h *SupplierHandler) ListProducts(c *fiber.Ctx) error {
	limit, offset := pageParams(c, 100)
	out, err := h.uc.ListProducts(c.Context(), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ProjectSupplier reintenta la proyección de un proveedor ya confirmado.
func (h *SupplierHandler) ProjectSupplier(c *fiber.Ctx) error {
	if err := h.uc.ProjectSupplier(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ProjectProduct reintenta la proyección de un producto ya confirmado.
func (h *SupplierHandler) ProjectProduct(c *fiber.Ctx) error {
	if err := h.uc.ProjectProduct(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams extrae limit/offset con defaults y tope.
func pageParams(c *fiber.Ctx, maxLimit int) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
