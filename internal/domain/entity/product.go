package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una organización.
// Stock es un contador entero no negativo: lo incrementan las recepciones
// y lo decrementan los despachos; nunca se edita directamente.
type Product struct {
	ID            string
	OrgID         string
	Name          string
	SKU           string
	Unit          string          // etiqueta de unidad, ej. "und"
	Price         decimal.Decimal // precio de venta
	Stock         int64
	PurchasePrice decimal.Decimal // último costo de compra registrado
	CreatedAt     time.Time
}
