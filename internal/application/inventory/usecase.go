// Package inventory implementa el ledger transaccional de inventario: el
// catálogo de productos más dos sub-ledgers (recepciones suben stock,
// despachos lo bajan), todo scoped por organización.
package inventory

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LedgerUseCase operaciones del ledger de inventario. Las lecturas usan los
// repos atados al pool; cada mutación corre dentro de TxRunner.Run y responde
// con el snapshot completo refrescado de la organización.
type LedgerUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	receiptRepo  repository.ReceiptRepository
	shipmentRepo repository.ShipmentRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	receiptRepo repository.ReceiptRepository,
	shipmentRepo repository.ShipmentRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		receiptRepo:  receiptRepo,
		shipmentRepo: shipmentRepo,
	}
}

// State arma el snapshot de la organización: productos, recepciones y
// despachos, cada lista del más reciente al más antiguo; las líneas de cada
// despacho conservan su orden de inserción. Sin paginación: el dataset de un
// negocio pequeño cabe completo en cada respuesta.
func (uc *LedgerUseCase) State(orgID string) (*dto.StateResponse, error) {
	products, err := uc.productRepo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	receipts, err := uc.receiptRepo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	shipments, err := uc.shipmentRepo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}

	state := &dto.StateResponse{
		Products:  make([]dto.ProductResponse, 0, len(products)),
		Receipts:  make([]dto.ReceiptResponse, 0, len(receipts)),
		Shipments: make([]dto.ShipmentResponse, 0, len(shipments)),
	}
	for _, p := range products {
		state.Products = append(state.Products, toProductResponse(p))
	}
	for _, r := range receipts {
		state.Receipts = append(state.Receipts, dto.ReceiptResponse{
			ID:        r.ID,
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			Cost:      r.Cost,
			CreatedAt: r.CreatedAt,
		})
	}
	for _, s := range shipments {
		items, err := uc.shipmentRepo.ListItems(orgID, s.ID)
		if err != nil {
			return nil, err
		}
		sr := dto.ShipmentResponse{
			ID:        s.ID,
			CreatedAt: s.CreatedAt,
			Items:     make([]dto.ShipmentItemResponse, 0, len(items)),
		}
		for _, it := range items {
			sr.Items = append(sr.Items, dto.ShipmentItemResponse{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
				Amount:    it.Amount,
			})
		}
		state.Shipments = append(state.Shipments, sr)
	}
	return state, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Unit:          p.Unit,
		Price:         p.Price,
		Stock:         p.Stock,
		PurchasePrice: p.PurchasePrice,
	}
}

// newID devuelve un UUID v4 en string.
func newID() string { return uuid.New().String() }

// autoSKU genera un SKU corto para productos creados sin código.
func autoSKU() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "AUTO-" + strings.ToUpper(hex[:4])
}
