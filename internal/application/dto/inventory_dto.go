package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceiptRequest entrada para registrar una recepción de stock.
// Cost en 0 significa "conservar el purchase price anterior".
type CreateReceiptRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
}

// ReceiptResponse salida de una recepción.
type ReceiptResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ShipmentItemRequest una línea de despacho. Price nil toma el precio de
// venta actual del producto como snapshot.
type ShipmentItemRequest struct {
	ProductID string           `json:"productId"`
	Quantity  int64            `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
}

// CreateShipmentRequest entrada para crear un despacho (lista no vacía).
type CreateShipmentRequest struct {
	Items []ShipmentItemRequest `json:"items"`
}

// ShipmentItemResponse una línea de despacho persistida.
type ShipmentItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}

// ShipmentResponse salida de un despacho con sus líneas en orden de inserción.
type ShipmentResponse struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"createdAt"`
	Items     []ShipmentItemResponse `json:"items"`
}

// StateResponse snapshot completo de la organización: cada mutación del
// ledger responde con este estado refrescado.
type StateResponse struct {
	Products  []ProductResponse  `json:"products"`
	Receipts  []ReceiptResponse  `json:"receipts"`
	Shipments []ShipmentResponse `json:"shipments"`
	Me        *MeResponse        `json:"me,omitempty"`
}
