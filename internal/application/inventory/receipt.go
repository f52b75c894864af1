package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CreateReceipt registra una recepción: suma quantity al stock del producto y
// si cost > 0 sobreescribe su purchase price. Cost en 0 conserva el purchase
// price anterior; es una decisión explícita, no un descuido.
func (uc *LedgerUseCase) CreateReceipt(ctx context.Context, orgID string, in dto.CreateReceiptRequest) (*dto.StateResponse, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cost := clampDecimal(in.Cost)

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		receiptRepo repository.ReceiptRepository,
		_ repository.ShipmentRepository,
	) error {
		product, err := productRepo.GetForUpdate(orgID, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.AdjustStock(orgID, productID, in.Quantity); err != nil {
			return err
		}
		if cost.IsPositive() {
			if err := productRepo.SetPurchasePrice(orgID, productID, cost); err != nil {
				return err
			}
		}
		return receiptRepo.Create(&entity.Receipt{
			ID:        newID(),
			OrgID:     orgID,
			ProductID: productID,
			Quantity:  in.Quantity,
			Cost:      cost,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.State(orgID)
}

// DeleteReceipt elimina la recepción y revierte su cantidad del stock del
// producto con tope en cero. La reversión es incondicional y no cronológica:
// borrar una recepción que no es la última puede dejar el historial impreciso
// pero el stock nunca queda negativo.
func (uc *LedgerUseCase) DeleteReceipt(ctx context.Context, orgID, receiptID string) (*dto.StateResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		receiptRepo repository.ReceiptRepository,
		_ repository.ShipmentRepository,
	) error {
		receipt, err := receiptRepo.GetByOrgAndID(orgID, receiptID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return domain.ErrNotFound
		}
		// Si el producto ya no existe la reversión es un no-op.
		if err := productRepo.ReduceStockClamped(orgID, receipt.ProductID, receipt.Quantity); err != nil {
			return err
		}
		return receiptRepo.Delete(orgID, receiptID)
	})
	if err != nil {
		return nil, err
	}
	return uc.State(orgID)
}
