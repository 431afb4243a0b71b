package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicateName     = errors.New("nombre duplicado")
	ErrReferenceNotFound = errors.New("referencia no encontrada")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrStoreUnavailable  = errors.New("almacén de datos no disponible")
)

// ProjectionError indica que la fila canónica quedó confirmada en el almacén
// primario pero la escritura de la proyección al grafo falló. La operación
// lógica NO se considera fallida: el dato canónico es durable y no debe
// revertirse. El caller puede reintentar solo el paso de proyección
// (ProjectSupplier / ProjectProduct) usando Label y Key.
type ProjectionError struct {
	Label string // etiqueta del nodo: Supplier o Product
	Key   string // name del nodo que no pudo proyectarse
	Err   error
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("proyección de %s {name: %q} falló: %v", e.Label, e.Key, e.Err)
}

func (e *ProjectionError) Unwrap() error { return e.Err }
