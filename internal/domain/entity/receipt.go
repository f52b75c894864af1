package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt es un registro inmutable de entrada de stock: al crearse suma
// Quantity al stock del producto; al eliminarse lo resta con tope en cero.
type Receipt struct {
	ID        string
	OrgID     string
	ProductID string
	Quantity  int64
	Cost      decimal.Decimal // costo unitario; 0 = conservar purchase price anterior
	CreatedAt time.Time
}
