package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, org_id, name, sku, unit, price, stock, purchase_price, created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO org_products (id, org_id, name, sku, unit, price, stock, purchase_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.OrgID, product.Name, product.SKU, product.Unit,
		product.Price, product.Stock, product.PurchasePrice, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByOrgAndID obtiene un producto por organización e ID.
func (r *ProductRepo) GetByOrgAndID(orgID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM org_products WHERE org_id = $1 AND id = $2`
	return r.getOne(query, orgID, id)
}

// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción: el lock vive hasta Commit/Rollback.
func (r *ProductRepo) GetForUpdate(orgID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM org_products WHERE org_id = $1 AND id = $2 FOR UPDATE`
	return r.getOne(query, orgID, id)
}

// ListByOrg lista los productos de la organización, más recientes primero.
func (r *ProductRepo) ListByOrg(orgID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM org_products WHERE org_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.OrgID, &p.Name, &p.SKU, &p.Unit,
			&p.Price, &p.Stock, &p.PurchasePrice, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update reescribe name y price del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE org_products SET name = $3, price = $4
		WHERE org_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.OrgID, product.ID, product.Name, product.Price,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AdjustStock aplica stock = stock + delta de forma atómica.
func (r *ProductRepo) AdjustStock(orgID, productID string, delta int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE org_products SET stock = stock + $3 WHERE org_id = $1 AND id = $2`,
		orgID, productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

// ReduceStockClamped aplica stock = max(0, stock - qty). La reversión de una
// recepción nunca deja stock negativo, aunque no sea la entrada más reciente.
func (r *ProductRepo) ReduceStockClamped(orgID, productID string, qty int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE org_products
		 SET stock = CASE WHEN stock - $3 < 0 THEN 0 ELSE stock - $3 END
		 WHERE org_id = $1 AND id = $2`,
		orgID, productID, qty,
	)
	if err != nil {
		return fmt.Errorf("reduce stock: %w", err)
	}
	return nil
}

// SetPurchasePrice sobreescribe el último costo de compra registrado.
func (r *ProductRepo) SetPurchasePrice(orgID, productID string, cost decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE org_products SET purchase_price = $3 WHERE org_id = $1 AND id = $2`,
		orgID, productID, cost,
	)
	if err != nil {
		return fmt.Errorf("set purchase price: %w", err)
	}
	return nil
}

// Delete elimina el producto por organización e ID.
func (r *ProductRepo) Delete(orgID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM org_products WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) getOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.OrgID, &p.Name, &p.SKU, &p.Unit,
		&p.Price, &p.Stock, &p.PurchasePrice, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
