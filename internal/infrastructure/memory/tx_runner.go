package memory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta la función directamente sobre los repositorios en memoria,
// sin transacción real. Los casos de uso validan antes de mutar, así que el
// todo-o-nada se preserva también sin rollback.
type TxRunner struct {
	products  *ProductRepo
	receipts  *ReceiptRepo
	shipments *ShipmentRepo
}

// NewTxRunner construye el runner sobre el almacén dado.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{
		products:  NewProductRepository(s),
		receipts:  NewReceiptRepository(s),
		shipments: NewShipmentRepository(s),
	}
}

// Run invoca fn con los repositorios del almacén.
func (t *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	receiptRepo repository.ReceiptRepository,
	shipmentRepo repository.ShipmentRepository,
) error) error {
	return fn(t.products, t.receipts, t.shipments)
}
