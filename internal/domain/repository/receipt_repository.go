package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ReceiptRepository define el puerto de persistencia para Receipt (DIP).
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByOrgAndID(orgID, id string) (*entity.Receipt, error)
	ListByOrg(orgID string) ([]*entity.Receipt, error)
	Delete(orgID, id string) error
	// DeleteByProduct elimina todas las recepciones del producto (cascada
	// explícita al borrar el producto).
	DeleteByProduct(orgID, productID string) error
}
