// Package graph define el puerto de la proyección de grafo: una copia
// derivada y eventualmente consistente de las relaciones proveedor→producto,
// usada solo para consultas de trayectoria. Nunca es autoritativa y puede
// reconstruirse por completo desde el almacén primario (los merges son
// idempotentes y, para nodos, independientes del orden).
package graph

import "context"

// Etiquetas de nodos y tipo de relación de la proyección.
const (
	LabelSupplier = "Supplier"
	LabelProduct  = "Product"
	RelSupplies   = "SUPPLIES"
)

// SupplyPath resultado de la consulta de trayectoria proveedor→país→producto.
type SupplyPath struct {
	Supplier string
	Country  string
	Product  string
}

// Store puerto de la proyección de grafo. Todas las escrituras tienen
// semántica de merge/upsert con clave name: aplicar dos veces la misma
// proyección deja exactamente un nodo y una relación.
type Store interface {
	// UpsertSupplier crea o actualiza el nodo Supplier {name} y fija country.
	UpsertSupplier(ctx context.Context, name, country string) error

	// UpsertProduct crea o actualiza el nodo Product {name} y la relación
	// SUPPLIES desde el nodo del proveedor. El nodo Supplier debe existir
	// previamente; si no existe, no se crea nada y se devuelve un error que
	// envuelve domain.ErrNotFound (la arista jamás apunta a un proveedor
	// inexistente).
	UpsertProduct(ctx context.Context, name, supplierName string) error

	// FindSupplyPath resuelve la cadena proveedor→país→producto para un
	// nombre de producto. Devuelve domain.ErrNotFound si no hay relación
	// SUPPLIES que termine en ese producto. Si varios proveedores proveen
	// productos con el mismo nombre devuelve UNA coincidencia arbitraria
	// (brecha de multiplicidad conocida, no resuelta aquí).
	FindSupplyPath(ctx context.Context, productName string) (*SupplyPath, error)
}
