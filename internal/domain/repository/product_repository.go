package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las consultas filtran por organización: un id válido de otra
// organización se comporta igual que un id inexistente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByOrgAndID(orgID, id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(orgID, id string) (*entity.Product, error)
	ListByOrg(orgID string) ([]*entity.Product, error)
	// Update reescribe name y price. Stock y purchase price se mueven solo
	// vía AdjustStock, ReduceStockClamped y SetPurchasePrice.
	Update(product *entity.Product) error
	// AdjustStock aplica stock = stock + delta (delta puede ser negativo).
	AdjustStock(orgID, productID string, delta int64) error
	// ReduceStockClamped aplica stock = max(0, stock - qty).
	ReduceStockClamped(orgID, productID string, qty int64) error
	// SetPurchasePrice sobreescribe el último costo de compra registrado.
	SetPurchasePrice(orgID, productID string, cost decimal.Decimal) error
	Delete(orgID, id string) error
}
