package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación del puerto ShipmentRepository sobre PostgreSQL (usable con pool o tx).
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create persiste el encabezado del despacho.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	query := `INSERT INTO org_shipments (id, org_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, shipment.ID, shipment.OrgID, shipment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByOrgAndID obtiene un despacho por organización e ID.
func (r *ShipmentRepo) GetByOrgAndID(orgID, id string) (*entity.Shipment, error) {
	query := `SELECT id, org_id, created_at FROM org_shipments WHERE org_id = $1 AND id = $2`
	var s entity.Shipment
	err := r.q.QueryRow(context.Background(), query, orgID, id).Scan(&s.ID, &s.OrgID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return &s, nil
}

// ListByOrg lista los despachos de la organización, más recientes primero.
func (r *ShipmentRepo) ListByOrg(orgID string) ([]*entity.Shipment, error) {
	query := `SELECT id, org_id, created_at FROM org_shipments WHERE org_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(&s.ID, &s.OrgID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CreateItem inserta una línea del despacho. Seq lo asigna la secuencia de la tabla.
func (r *ShipmentRepo) CreateItem(item *entity.ShipmentItem) error {
	query := `
		INSERT INTO org_shipment_items (shipment_id, org_id, product_id, quantity, price, amount)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ShipmentID, item.OrgID, item.ProductID, item.Quantity, item.Price, item.Amount,
	)
	if err != nil {
		return fmt.Errorf("insert shipment item: %w", err)
	}
	return nil
}

// ListItems lista las líneas del despacho en orden de inserción.
func (r *ShipmentRepo) ListItems(orgID, shipmentID string) ([]*entity.ShipmentItem, error) {
	query := `
		SELECT seq, shipment_id, org_id, product_id, quantity, price, amount
		FROM org_shipment_items WHERE org_id = $1 AND shipment_id = $2 ORDER BY seq ASC`
	rows, err := r.q.Query(context.Background(), query, orgID, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list shipment items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ShipmentItem
	for rows.Next() {
		var it entity.ShipmentItem
		if err := rows.Scan(&it.Seq, &it.ShipmentID, &it.OrgID, &it.ProductID,
			&it.Quantity, &it.Price, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan shipment item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListDocLines resuelve las líneas con nombre de producto (LEFT JOIN: el
// producto puede haber sido eliminado y la línea sobrevive con nombre vacío).
func (r *ShipmentRepo) ListDocLines(orgID, shipmentID string) ([]repository.ShipmentDocLine, error) {
	query := `
		SELECT COALESCE(p.name, ''), i.quantity, i.price, i.amount
		FROM org_shipment_items i
		LEFT JOIN org_products p ON p.id = i.product_id
		WHERE i.org_id = $1 AND i.shipment_id = $2
		ORDER BY i.seq ASC`
	rows, err := r.q.Query(context.Background(), query, orgID, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list shipment doc lines: %w", err)
	}
	defer rows.Close()
	var list []repository.ShipmentDocLine
	for rows.Next() {
		var l repository.ShipmentDocLine
		if err := rows.Scan(&l.ProductName, &l.Quantity, &l.Price, &l.Amount); err != nil {
			return nil, fmt.Errorf("scan shipment doc line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// DeleteItemsByProduct elimina las líneas que referencian al producto.
func (r *ShipmentRepo) DeleteItemsByProduct(orgID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM org_shipment_items WHERE org_id = $1 AND product_id = $2`, orgID, productID)
	if err != nil {
		return fmt.Errorf("delete shipment items by product: %w", err)
	}
	return nil
}

// Delete elimina el despacho y sus líneas.
func (r *ShipmentRepo) Delete(orgID, id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM org_shipment_items WHERE org_id = $1 AND shipment_id = $2`, orgID, id); err != nil {
		return fmt.Errorf("delete shipment items: %w", err)
	}
	if _, err := r.q.Exec(ctx,
		`DELETE FROM org_shipments WHERE org_id = $1 AND id = $2`, orgID, id); err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}

// DeleteEmpty barre los despachos de la organización sin líneas restantes.
func (r *ShipmentRepo) DeleteEmpty(orgID string) error {
	query := `
		DELETE FROM org_shipments s
		WHERE s.org_id = $1
		  AND NOT EXISTS (SELECT 1 FROM org_shipment_items i WHERE i.shipment_id = s.id)`
	_, err := r.q.Exec(context.Background(), query, orgID)
	if err != nil {
		return fmt.Errorf("delete empty shipments: %w", err)
	}
	return nil
}
