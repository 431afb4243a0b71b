package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/aetherchain/aetherchain-api/internal/application/graphquery"
	"github.com/aetherchain/aetherchain-api/internal/application/sync"
)

// GraphHandler maneja las consultas sobre la proyección de grafo.
type GraphHandler struct {
	pathUC *graphquery.PathUseCase
	syncUC *sync.Coordinator
}

// NewGraphHandler construye el handler.
func NewGraphHandler(pathUC *graphquery.PathUseCase, syncUC *sync.Coordinator) *GraphHandler {
	return &GraphHandler{pathUC: pathUC, syncUC: syncUC}
}

// ProductPath resuelve la cadena proveedor→país→producto desde la proyección.
func (h *GraphHandler) ProductPath(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}
	out, err := h.pathUC.FindSupplyPath(c.Context(), name)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Rebuild reconstruye la proyección completa desde el almacén primario.
func (h *GraphHandler) Rebuild(c *fiber.Ctx) error {
	out, err := h.syncUC.RebuildProjection(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
