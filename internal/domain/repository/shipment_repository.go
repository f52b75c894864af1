package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ShipmentDocLine es una línea de despacho resuelta con el nombre del
// producto (LEFT JOIN: el producto puede haber sido eliminado).
type ShipmentDocLine struct {
	ProductName string // vacío si el producto ya no existe
	Quantity    int64
	Price       decimal.Decimal
	Amount      decimal.Decimal
}

// ShipmentDoc es la vista imprimible de un despacho.
type ShipmentDoc struct {
	ShipmentID string
	OrgName    string
	CreatedAt  time.Time
	Lines      []ShipmentDocLine
}

// ShipmentRepository define el puerto de persistencia para Shipment y sus
// líneas (DIP). Las líneas se leen siempre en orden de inserción (seq ASC).
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByOrgAndID(orgID, id string) (*entity.Shipment, error)
	ListByOrg(orgID string) ([]*entity.Shipment, error)
	CreateItem(item *entity.ShipmentItem) error
	ListItems(orgID, shipmentID string) ([]*entity.ShipmentItem, error)
	// ListDocLines resuelve las líneas con nombre de producto para el
	// documento imprimible.
	ListDocLines(orgID, shipmentID string) ([]ShipmentDocLine, error)
	// DeleteItemsByProduct elimina las líneas que referencian al producto
	// (cascada explícita al borrar el producto).
	DeleteItemsByProduct(orgID, productID string) error
	// Delete elimina el despacho y sus líneas.
	Delete(orgID, id string) error
	// DeleteEmpty barre los despachos de la organización que quedaron sin
	// líneas (cascarones tras borrar un producto).
	DeleteEmpty(orgID string) error
}
