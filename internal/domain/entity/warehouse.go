package entity

import "time"

// Warehouse representa una bodega. Location es única en el almacén primario.
type Warehouse struct {
	ID        string
	Location  string
	Capacity  int // capacidad total, positiva
	CreatedAt time.Time
}
