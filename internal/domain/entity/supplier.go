package entity

import "time"

// Supplier representa un proveedor. Name es único en el almacén primario y
// además es la clave de merge del nodo Supplier en la proyección de grafo.
type Supplier struct {
	ID        string
	Name      string
	Country   string
	CreatedAt time.Time
}
