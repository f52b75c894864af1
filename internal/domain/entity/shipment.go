package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment es una salida de stock compuesta por una o más líneas. Se crea de
// forma atómica: o todas las líneas pasan la validación de stock, o ninguna.
type Shipment struct {
	ID        string
	OrgID     string
	CreatedAt time.Time
}

// ShipmentItem es una línea de despacho con el precio congelado al momento
// de crearla. Seq preserva el orden de inserción dentro del despacho.
type ShipmentItem struct {
	Seq        int64
	ShipmentID string
	OrgID      string
	ProductID  string
	Quantity   int64
	Price      decimal.Decimal
	Amount     decimal.Decimal // Price × Quantity
}
