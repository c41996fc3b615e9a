package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/jackc/pgx/v5"
)

// InventoryRepository implementa a interface inventory.Repository
type InventoryRepository struct {
	db DBTX
}

// NewInventoryRepository cria uma nova instância de InventoryRepository
func NewInventoryRepository(db DBTX) inventory.Repository {
	return &InventoryRepository{db: db}
}

// GetQuantity implementa inventory.Repository.GetQuantity
func (r *InventoryRepository) GetQuantity(ctx context.Context, productID string, location inventory.Location) (int, error) {
	var quantity int

	err := r.db.QueryRow(ctx,
		`SELECT quantity FROM inventory_records
		WHERE product_id = $1 AND location = $2`,
		productID, location).Scan(&quantity)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao consultar estoque: %w", err)
	}

	return quantity, nil
}

// Reserve implementa inventory.Repository.Reserve. O SELECT FOR UPDATE
// serializa verificações concorrentes sobre a mesma linha; o UPDATE
// condicional é a última barreira contra saldo negativo.
func (r *InventoryRepository) Reserve(ctx context.Context, productID string, location inventory.Location, qty int, productName string) error {
	if qty < 1 {
		return inventory.ErrInvalidQuantity
	}

	var current int
	err := r.db.QueryRow(ctx,
		`SELECT quantity FROM inventory_records
		WHERE product_id = $1 AND location = $2
		FOR UPDATE`,
		productID, location).Scan(&current)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &inventory.InsufficientStockError{ProductName: productName}
		}
		return fmt.Errorf("erro ao consultar estoque: %w", err)
	}

	if current < qty {
		return &inventory.InsufficientStockError{ProductName: productName}
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE inventory_records
		SET quantity = quantity - $3, updated_at = NOW()
		WHERE product_id = $1 AND location = $2 AND quantity >= $3`,
		productID, location, qty)

	if err != nil {
		return fmt.Errorf("erro ao baixar estoque: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &inventory.InsufficientStockError{ProductName: productName}
	}

	return nil
}

// Increase implementa inventory.Repository.Increase
func (r *InventoryRepository) Increase(ctx context.Context, productID string, location inventory.Location, qty int) (*inventory.Record, error) {
	if qty < 1 {
		return nil, inventory.ErrInvalidQuantity
	}

	rec := inventory.NewRecord(productID, location, qty)

	err := r.db.QueryRow(ctx,
		`INSERT INTO inventory_records (id, product_id, location, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id, location)
		DO UPDATE SET quantity = inventory_records.quantity + $4, updated_at = NOW()
		RETURNING id, quantity, updated_at`,
		rec.ID, rec.ProductID, rec.Location, qty, rec.UpdatedAt).
		Scan(&rec.ID, &rec.Quantity, &rec.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("erro ao incrementar estoque: %w", err)
	}

	return rec, nil
}

// FindByProduct implementa inventory.Repository.FindByProduct
func (r *InventoryRepository) FindByProduct(ctx context.Context, productID string) ([]*inventory.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, location, quantity, updated_at
		FROM inventory_records
		WHERE product_id = $1
		ORDER BY location`,
		productID)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar estoque: %w", err)
	}
	defer rows.Close()

	var records []*inventory.Record
	for rows.Next() {
		var rec inventory.Record
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Location, &rec.Quantity, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler registro de estoque: %w", err)
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}
