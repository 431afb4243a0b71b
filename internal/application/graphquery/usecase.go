// Package graphquery implementa el servicio de consulta de trayectoria:
// resuelve la cadena proveedor→país→producto leyendo SOLO la proyección de
// grafo, nunca el almacén primario. Si la proyección de un producto falló y
// no se reintentó, la consulta devuelve ErrNotFound aunque el producto
// exista en el primario: es el costo asumido de la consistencia eventual.
package graphquery

import (
	"context"
	"strings"

	"github.com/aetherchain/aetherchain-api/internal/application/dto"
	"github.com/aetherchain/aetherchain-api/internal/domain"
	"github.com/aetherchain/aetherchain-api/internal/domain/graph"
)

// PathUseCase servicio de consulta de trayectoria sobre la proyección.
type PathUseCase struct {
	graph graph.Store
}

// NewPathUseCase construye el servicio.
func NewPathUseCase(graphStore graph.Store) *PathUseCase {
	return &PathUseCase{graph: graphStore}
}

// FindSupplyPath resuelve {supplier, country, product} para un nombre de
// producto. domain.ErrNotFound si ninguna relación SUPPLIES termina en ese
// producto. Con productos homónimos de distintos proveedores se devuelve
// una coincidencia arbitraria (brecha conocida, documentada en el puerto).
func (uc *PathUseCase) FindSupplyPath(ctx context.Context, productName string) (*dto.SupplyPathResponse, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, domain.ErrInvalidInput
	}
	path, err := uc.graph.FindSupplyPath(ctx, productName)
	if err != nil {
		return nil, err
	}
	return &dto.SupplyPathResponse{
		Supplier: path.Supplier,
		Country:  path.Country,
		Product:  path.Product,
	}, nil
}
