package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ── ProductRepository ─────────────────────────────────────────────────────────

// ProductRepo implementa repository.ProductRepository en memoria.
type ProductRepo struct{ s *Store }

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *product
	r.s.products = append(r.s.products, &cp)
	return nil
}

func (r *ProductRepo) GetByOrgAndID(orgID, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.locked(orgID, id); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

// GetForUpdate equivale a GetByOrgAndID: sin transacciones no hay fila que bloquear.
func (r *ProductRepo) GetForUpdate(orgID, id string) (*entity.Product, error) {
	return r.GetByOrgAndID(orgID, id)
}

// ListByOrg devuelve los productos del más reciente al más antiguo.
func (r *ProductRepo) ListByOrg(orgID string) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Product
	for i := len(r.s.products) - 1; i >= 0; i-- {
		if r.s.products[i].OrgID == orgID {
			cp := *r.s.products[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.locked(product.OrgID, product.ID); p != nil {
		p.Name = product.Name
		p.Price = product.Price
	}
	return nil
}

func (r *ProductRepo) AdjustStock(orgID, productID string, delta int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.locked(orgID, productID); p != nil {
		p.Stock += delta
	}
	return nil
}

func (r *ProductRepo) ReduceStockClamped(orgID, productID string, qty int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.locked(orgID, productID); p != nil {
		p.Stock -= qty
		if p.Stock < 0 {
			p.Stock = 0
		}
	}
	return nil
}

func (r *ProductRepo) SetPurchasePrice(orgID, productID string, cost decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.locked(orgID, productID); p != nil {
		p.PurchasePrice = cost
	}
	return nil
}

func (r *ProductRepo) Delete(orgID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.OrgID == orgID && p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// locked busca el puntero vivo; requiere el mutex tomado.
func (r *ProductRepo) locked(orgID, id string) *entity.Product {
	for _, p := range r.s.products {
		if p.OrgID == orgID && p.ID == id {
			return p
		}
	}
	return nil
}

// ── ReceiptRepository ─────────────────────────────────────────────────────────

// ReceiptRepo implementa repository.ReceiptRepository en memoria.
type ReceiptRepo struct{ s *Store }

// NewReceiptRepository construye el repositorio.
func NewReceiptRepository(s *Store) *ReceiptRepo { return &ReceiptRepo{s: s} }

func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *receipt
	r.s.receipts = append(r.s.receipts, &cp)
	return nil
}

func (r *ReceiptRepo) GetByOrgAndID(orgID, id string) (*entity.Receipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.receipts {
		if rec.OrgID == orgID && rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByOrg devuelve las recepciones de la más reciente a la más antigua.
func (r *ReceiptRepo) ListByOrg(orgID string) ([]*entity.Receipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Receipt
	for i := len(r.s.receipts) - 1; i >= 0; i-- {
		if r.s.receipts[i].OrgID == orgID {
			cp := *r.s.receipts[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *ReceiptRepo) Delete(orgID, id string) error {
	return r.deleteWhere(func(rec *entity.Receipt) bool {
		return rec.OrgID == orgID && rec.ID == id
	})
}

func (r *ReceiptRepo) DeleteByProduct(orgID, productID string) error {
	return r.deleteWhere(func(rec *entity.Receipt) bool {
		return rec.OrgID == orgID && rec.ProductID == productID
	})
}

func (r *ReceiptRepo) deleteWhere(match func(*entity.Receipt) bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.receipts[:0]
	for _, rec := range r.s.receipts {
		if !match(rec) {
			kept = append(kept, rec)
		}
	}
	r.s.receipts = kept
	return nil
}

// ── ShipmentRepository ────────────────────────────────────────────────────────

// ShipmentRepo implementa repository.ShipmentRepository en memoria.
type ShipmentRepo struct{ s *Store }

// NewShipmentRepository construye el repositorio.
func NewShipmentRepository(s *Store) *ShipmentRepo { return &ShipmentRepo{s: s} }

func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *shipment
	r.s.shipments = append(r.s.shipments, &cp)
	return nil
}

func (r *ShipmentRepo) GetByOrgAndID(orgID, id string) (*entity.Shipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sh := range r.s.shipments {
		if sh.OrgID == orgID && sh.ID == id {
			cp := *sh
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByOrg devuelve los despachos del más reciente al más antiguo.
func (r *ShipmentRepo) ListByOrg(orgID string) ([]*entity.Shipment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Shipment
	for i := len(r.s.shipments) - 1; i >= 0; i-- {
		if r.s.shipments[i].OrgID == orgID {
			cp := *r.s.shipments[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *ShipmentRepo) CreateItem(item *entity.ShipmentItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextSeq++
	cp := *item
	cp.Seq = r.s.nextSeq
	r.s.items = append(r.s.items, &cp)
	return nil
}

// ListItems devuelve las líneas del despacho en orden de inserción.
func (r *ShipmentRepo) ListItems(orgID, shipmentID string) ([]*entity.ShipmentItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.ShipmentItem
	for _, it := range r.s.items {
		if it.OrgID == orgID && it.ShipmentID == shipmentID {
			cp := *it
			list = append(list, &cp)
		}
	}
	return list, nil
}

// ListDocLines resuelve cada línea con el nombre del producto; si el producto
// fue eliminado el nombre queda vacío, como el LEFT JOIN del adaptador SQL.
func (r *ShipmentRepo) ListDocLines(orgID, shipmentID string) ([]repository.ShipmentDocLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var lines []repository.ShipmentDocLine
	for _, it := range r.s.items {
		if it.OrgID != orgID || it.ShipmentID != shipmentID {
			continue
		}
		name := ""
		for _, p := range r.s.products {
			if p.OrgID == orgID && p.ID == it.ProductID {
				name = p.Name
				break
			}
		}
		lines = append(lines, repository.ShipmentDocLine{
			ProductName: name,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Amount:      it.Amount,
		})
	}
	return lines, nil
}

func (r *ShipmentRepo) DeleteItemsByProduct(orgID, productID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.deleteItemsLocked(func(it *entity.ShipmentItem) bool {
		return it.OrgID == orgID && it.ProductID == productID
	})
	return nil
}

func (r *ShipmentRepo) Delete(orgID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.deleteItemsLocked(func(it *entity.ShipmentItem) bool {
		return it.OrgID == orgID && it.ShipmentID == id
	})
	for i, sh := range r.s.shipments {
		if sh.OrgID == orgID && sh.ID == id {
			r.s.shipments = append(r.s.shipments[:i], r.s.shipments[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ShipmentRepo) DeleteEmpty(orgID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.shipments[:0]
	for _, sh := range r.s.shipments {
		if sh.OrgID == orgID && !r.hasItemsLocked(orgID, sh.ID) {
			continue
		}
		kept = append(kept, sh)
	}
	r.s.shipments = kept
	return nil
}

func (r *ShipmentRepo) deleteItemsLocked(match func(*entity.ShipmentItem) bool) {
	kept := r.s.items[:0]
	for _, it := range r.s.items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	r.s.items = kept
}

func (r *ShipmentRepo) hasItemsLocked(orgID, shipmentID string) bool {
	for _, it := range r.s.items {
		if it.OrgID == orgID && it.ShipmentID == shipmentID {
			return true
		}
	}
	return false
}
