package dto

// SupplyPathResponse cadena proveedor→país→producto resuelta desde la proyección.
type SupplyPathResponse struct {
	Supplier string `json:"supplier"`
	Country  string `json:"country"`
	Product  string `json:"product"`
}

// RebuildProjectionResponse resultado de reconstruir la proyección completa.
type RebuildProjectionResponse struct {
	Suppliers int `json:"suppliers"`
	Products  int `json:"products"`
}
