package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aetherchain/aetherchain-api/internal/application/dto"
	"github.com/aetherchain/aetherchain-api/internal/domain"
)

// mapDomainError traduce los errores de dominio a respuestas HTTP. Los
// handlers no contienen lógica de negocio: solo parseo, validación y este
// mapeo.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: err.Error()})
	case errors.Is(err, domain.ErrReferenceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "REFERENCE_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// created responde 201 con el recurso; si la proyección al grafo quedó
// pendiente (ProjectionError tras el commit del primario) igual es 201 — el
// dato canónico existe — pero se marca con el header X-Projection-Pending
// para que el caller sepa que puede reintentar solo la proyección.
func created(c *fiber.Ctx, body any, err error) error {
	if err != nil {
		var projErr *domain.ProjectionError
		if !errors.As(err, &projErr) {
			return mapDomainError(c, err)
		}
		c.Set("X-Projection-Pending", "true")
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}
