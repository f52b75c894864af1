package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. SKU se autogenera si
// viene vacío; stock > 0 crea además una recepción sintética.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	Stock         int64           `json:"stock"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// UpdateProductRequest entrada para reescribir name y price.
type UpdateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// UpdatePriceRequest entrada para cambiar solo el precio de venta.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	Stock         int64           `json:"stock"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}
