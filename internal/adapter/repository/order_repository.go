package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/hugohenrick/exelo-pos/internal/domain/order"
	"github.com/jackc/pgx/v5"
)

// OrderRepository implementa a interface order.Repository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db DBTX) order.Repository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, merchant_id, location, customer_name, customer_mobile, signature_ref,
	subtotal, vat, fee, total, status, created_at, updated_at`

// Create implementa order.Repository.Create. Pedido e itens são gravados
// juntos; quando chamado fora de transação, abre uma própria.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID, o.MerchantID, o.Location, o.CustomerName, o.CustomerMobile, o.SignatureRef,
		o.Subtotal, o.VAT, o.Fee, o.Total, o.Status, o.CreatedAt, o.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao gravar pedido: %w", err)
	}

	for _, it := range o.Items {
		_, err := tx.Exec(ctx,
			`INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, it.OrderID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao gravar item do pedido: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar pedido: %w", err)
	}

	return nil
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	var o order.Order

	err := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.MerchantID, &o.Location, &o.CustomerName, &o.CustomerMobile, &o.SignatureRef,
			&o.Subtotal, &o.VAT, &o.Fee, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, product_id, product_name, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at`,
		o.ID)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens do pedido: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it order.Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler item do pedido: %w", err)
		}
		o.Items = append(o.Items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}

// UpdateStatus implementa order.Repository.UpdateStatus
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status do pedido: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// ListByMerchant implementa order.Repository.ListByMerchant
func (r *OrderRepository) ListByMerchant(ctx context.Context, merchantID string, location inventory.Location, limit, offset int) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		WHERE merchant_id = $1 AND ($2 = '' OR location = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		merchantID, string(location), limit, offset)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.MerchantID, &o.Location, &o.CustomerName, &o.CustomerMobile,
			&o.SignatureRef, &o.Subtotal, &o.VAT, &o.Fee, &o.Total, &o.Status,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler pedido: %w", err)
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

// CountByMerchant implementa order.Repository.CountByMerchant
func (r *OrderRepository) CountByMerchant(ctx context.Context, merchantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE merchant_id = $1`,
		merchantID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}

	return count, nil
}
