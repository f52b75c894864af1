package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const defaultUnit = "und"

// CreateProduct crea un producto en el catálogo de la organización. Si el
// stock inicial es mayor a cero se crea además una recepción sintética en la
// misma transacción: el stock nunca queda "suelto" sin historial que lo
// respalde.
func (uc *LedgerUseCase) CreateProduct(ctx context.Context, orgID string, in dto.CreateProductRequest) (*dto.StateResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = autoSKU()
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = defaultUnit
	}
	price := clampDecimal(in.Price)
	purchase := clampDecimal(in.PurchasePrice)
	stock := in.Stock
	if stock < 0 {
		stock = 0
	}

	now := time.Now()
	product := &entity.Product{
		ID:            newID(),
		OrgID:         orgID,
		Name:          name,
		SKU:           sku,
		Unit:          unit,
		Price:         price,
		Stock:         stock,
		PurchasePrice: purchase,
		CreatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		receiptRepo repository.ReceiptRepository,
		_ repository.ShipmentRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if stock > 0 {
			return receiptRepo.Create(&entity.Receipt{
				ID:        newID(),
				OrgID:     orgID,
				ProductID: product.ID,
				Quantity:  stock,
				Cost:      purchase,
				CreatedAt: now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.State(orgID)
}

// UpdateProductPrice cambia solo el precio de venta, con tope en cero.
func (uc *LedgerUseCase) UpdateProductPrice(orgID, productID string, price decimal.Decimal) (*dto.StateResponse, error) {
	product, err := uc.productRepo.GetByOrgAndID(orgID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Price = clampDecimal(price)
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.State(orgID)
}

// UpdateProduct reescribe nombre y precio del producto.
func (uc *LedgerUseCase) UpdateProduct(orgID, productID string, in dto.UpdateProductRequest) (*dto.StateResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByOrgAndID(orgID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = name
	product.Price = clampDecimal(in.Price)
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.State(orgID)
}

// DeleteProduct elimina el producto con cascada explícita sobre sus
// recepciones y líneas de despacho, y barre en la misma transacción los
// despachos que quedaron sin líneas (un despacho vacío no debe persistir).
func (uc *LedgerUseCase) DeleteProduct(ctx context.Context, orgID, productID string) (*dto.StateResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		receiptRepo repository.ReceiptRepository,
		shipmentRepo repository.ShipmentRepository,
	) error {
		product, err := productRepo.GetByOrgAndID(orgID, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := receiptRepo.DeleteByProduct(orgID, productID); err != nil {
			return err
		}
		if err := shipmentRepo.DeleteItemsByProduct(orgID, productID); err != nil {
			return err
		}
		if err := productRepo.Delete(orgID, productID); err != nil {
			return err
		}
		return shipmentRepo.DeleteEmpty(orgID)
	})
	if err != nil {
		return nil, err
	}
	return uc.State(orgID)
}

// clampDecimal devuelve cero si d es negativo.
func clampDecimal(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
