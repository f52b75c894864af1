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

// shipmentLine es una línea ya validada en la fase de chequeo.
type shipmentLine struct {
	productID string
	quantity  int64
	price     *decimal.Decimal // nil = snapshot del precio de venta actual
}

// CreateShipment crea un despacho con disciplina de dos fases dentro de una
// sola transacción: la fase 1 bloquea y valida cada línea (producto en la
// organización y stock suficiente, acumulando cantidades cuando un producto
// se repite) sin mutar nada; la fase 2, solo si todas pasan, crea el
// encabezado, descuenta stock e inserta las líneas. Nunca es observable un
// despacho parcial.
func (uc *LedgerUseCase) CreateShipment(ctx context.Context, orgID string, in dto.CreateShipmentRequest) (*dto.StateResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	lines := make([]shipmentLine, 0, len(in.Items))
	for _, item := range in.Items {
		productID := strings.TrimSpace(item.ProductID)
		if productID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		price := item.Price
		if price != nil {
			clamped := clampDecimal(*price)
			price = &clamped
		}
		lines = append(lines, shipmentLine{productID: productID, quantity: item.Quantity, price: price})
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.ReceiptRepository,
		shipmentRepo repository.ShipmentRepository,
	) error {
		// Fase 1: bloquear y validar todas las líneas antes de mutar.
		products := make(map[string]*entity.Product, len(lines))
		required := make(map[string]int64, len(lines))
		for _, line := range lines {
			product, ok := products[line.productID]
			if !ok {
				var err error
				product, err = productRepo.GetForUpdate(orgID, line.productID)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				products[line.productID] = product
			}
			required[line.productID] += line.quantity
			if required[line.productID] > product.Stock {
				return domain.ErrInsufficientStock
			}
		}

		// Fase 2: mutar todas las líneas; sin I/O intermedio entre fases.
		shipment := &entity.Shipment{ID: newID(), OrgID: orgID, CreatedAt: time.Now()}
		if err := shipmentRepo.Create(shipment); err != nil {
			return err
		}
		for _, line := range lines {
			price := products[line.productID].Price
			if line.price != nil {
				price = *line.price
			}
			amount := price.Mul(decimal.NewFromInt(line.quantity))
			if err := productRepo.AdjustStock(orgID, line.productID, -line.quantity); err != nil {
				return err
			}
			if err := shipmentRepo.CreateItem(&entity.ShipmentItem{
				ShipmentID: shipment.ID,
				OrgID:      orgID,
				ProductID:  line.productID,
				Quantity:   line.quantity,
				Price:      price,
				Amount:     amount,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.State(orgID)
}

// DeleteShipment elimina el despacho devolviendo la cantidad de cada línea al
// stock de su producto. Es un crédito compensatorio, no una reversión
// estricta: si el producto fue eliminado la restauración es un no-op y no lo
// recrea.
func (uc *LedgerUseCase) DeleteShipment(ctx context.Context, orgID, shipmentID string) (*dto.StateResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.ReceiptRepository,
		shipmentRepo repository.ShipmentRepository,
	) error {
		shipment, err := shipmentRepo.GetByOrgAndID(orgID, shipmentID)
		if err != nil {
			return err
		}
		if shipment == nil {
			return domain.ErrNotFound
		}
		items, err := shipmentRepo.ListItems(orgID, shipmentID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := productRepo.AdjustStock(orgID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return shipmentRepo.Delete(orgID, shipmentID)
	})
	if err != nil {
		return nil, err
	}
	return uc.State(orgID)
}

// ShipmentDocument arma la vista imprimible del despacho para el generador
// de PDF: líneas con nombre de producto resuelto y fecha de creación.
func (uc *LedgerUseCase) ShipmentDocument(orgID, orgName, shipmentID string) (*repository.ShipmentDoc, error) {
	shipment, err := uc.shipmentRepo.GetByOrgAndID(orgID, shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.shipmentRepo.ListDocLines(orgID, shipmentID)
	if err != nil {
		return nil, err
	}
	return &repository.ShipmentDoc{
		ShipmentID: shipment.ID,
		OrgName:    orgName,
		CreatedAt:  shipment.CreatedAt,
		Lines:      lines,
	}, nil
}
