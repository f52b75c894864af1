package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del ledger: cada
// mutación es todo-o-nada frente a escritores concurrentes de la misma
// organización.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		receiptRepo repository.ReceiptRepository,
		shipmentRepo repository.ShipmentRepository,
	) error) error
}
