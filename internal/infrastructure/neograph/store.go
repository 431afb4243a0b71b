// Package neograph implementa el puerto graph.Store sobre Neo4j. Todas las
// escrituras son MERGE con clave name, así que re-aplicar una proyección es
// idempotente: actualiza propiedades escalares y jamás duplica nodos ni
// relaciones.
package neograph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/aetherchain/aetherchain-api/internal/domain"
	"github.com/aetherchain/aetherchain-api/internal/domain/graph"
)

var _ graph.Store = (*Store)(nil)

// Store adaptador de la proyección de grafo sobre Neo4j.
type Store struct {
	driver neo4j.DriverWithContext
}

// NewStore construye el adaptador con un driver ya conectado.
func NewStore(driver neo4j.DriverWithContext) *Store {
	return &Store{driver: driver}
}

// UpsertSupplier crea o actualiza el nodo Supplier {name} y fija country.
func (s *Store) UpsertSupplier(ctx context.Context, name, country string) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx,
			`MERGE (s:Supplier {name: $name}) SET s.country = $country`,
			map[string]any{"name": name, "country": country})
		if err != nil {
			return nil, err
		}
		_, err = result.Consume(ctx)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("merge supplier node: %w", err)
	}
	return nil
}

// UpsertProduct crea o actualiza el nodo Product {name} y la relación
// SUPPLIES desde el nodo del proveedor. Si el nodo Supplier no existe el
// MATCH no produce filas y no se crea nada (la arista nunca apunta a un
// proveedor inexistente); en ese caso se devuelve domain.ErrNotFound y el
// caller puede re-proyectar el proveedor primero.
func (s *Store) UpsertProduct(ctx context.Context, name, supplierName string) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `
			MATCH (s:Supplier {name: $supplier_name})
			MERGE (p:Product {name: $name})
			MERGE (s)-[:SUPPLIES]->(p)
			RETURN s.name`,
			map[string]any{"name": name, "supplier_name": supplierName})
		if err != nil {
			return nil, err
		}
		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("nodo Supplier {name: %q}: %w", supplierName, domain.ErrNotFound)
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("merge product node: %w", err)
	}
	return nil
}

// FindSupplyPath resuelve la cadena proveedor→país→producto. LIMIT 1: si
// varios proveedores proveen productos homónimos se devuelve una
// coincidencia arbitraria (brecha de multiplicidad documentada en el puerto).
func (s *Store) FindSupplyPath(ctx context.Context, productName string) (*graph.SupplyPath, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	record, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `
			MATCH (s:Supplier)-[:SUPPLIES]->(p:Product {name: $product_name})
			RETURN s.name AS supplier, s.country AS country, p.name AS product
			LIMIT 1`,
			map[string]any{"product_name": productName})
		if err != nil {
			return nil, err
		}
		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, domain.ErrNotFound
		}
		return records[0], nil
	})
	if err != nil {
		return nil, err
	}

	rec := record.(*neo4j.Record)
	path := &graph.SupplyPath{}
	if v, ok := rec.Get("supplier"); ok {
		path.Supplier, _ = v.(string)
	}
	if v, ok := rec.Get("country"); ok {
		path.Country, _ = v.(string)
	}
	if v, ok := rec.Get("product"); ok {
		path.Product, _ = v.(string)
	}
	return path, nil
}
