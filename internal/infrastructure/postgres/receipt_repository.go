package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL (usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste una nueva recepción.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO org_receipts (id, org_id, product_id, quantity, cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.OrgID, receipt.ProductID, receipt.Quantity, receipt.Cost, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByOrgAndID obtiene una recepción por organización e ID.
func (r *ReceiptRepo) GetByOrgAndID(orgID, id string) (*entity.Receipt, error) {
	query := `
		SELECT id, org_id, product_id, quantity, cost, created_at
		FROM org_receipts WHERE org_id = $1 AND id = $2`
	var rec entity.Receipt
	err := r.q.QueryRow(context.Background(), query, orgID, id).Scan(
		&rec.ID, &rec.OrgID, &rec.ProductID, &rec.Quantity, &rec.Cost, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &rec, nil
}

// ListByOrg lista las recepciones de la organización, más recientes primero.
func (r *ReceiptRepo) ListByOrg(orgID string) ([]*entity.Receipt, error) {
	query := `
		SELECT id, org_id, product_id, quantity, cost, created_at
		FROM org_receipts WHERE org_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(&rec.ID, &rec.OrgID, &rec.ProductID, &rec.Quantity, &rec.Cost, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Delete elimina la recepción por organización e ID.
func (r *ReceiptRepo) Delete(orgID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM org_receipts WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}

// DeleteByProduct elimina todas las recepciones del producto.
func (r *ReceiptRepo) DeleteByProduct(orgID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM org_receipts WHERE org_id = $1 AND product_id = $2`, orgID, productID)
	if err != nil {
		return fmt.Errorf("delete receipts by product: %w", err)
	}
	return nil
}
