package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/exelo-pos/internal/domain/product"
	"github.com/jackc/pgx/v5"
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db DBTX
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db DBTX) product.Repository {
	return &ProductRepository{db: db}
}

const productColumns = `id, merchant_id, category_id, name, barcode, price, active, created_at, updated_at`

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product

	// category_id é opcional; NULL no banco vira string vazia no domínio
	var categoryID *string
	err := row.Scan(&p.ID, &p.MerchantID, &categoryID, &p.Name, &p.Barcode,
		&p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao ler produto: %w", err)
	}

	if categoryID != nil {
		p.CategoryID = *categoryID
	}

	return &p, nil
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)`,
		p.ID, p.MerchantID, p.CategoryID, p.Name, p.Barcode,
		p.Price, p.Active, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	return scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

// FindByBarcode implementa product.Repository.FindByBarcode
func (r *ProductRepository) FindByBarcode(ctx context.Context, merchantID, barcode string) (*product.Product, error) {
	return scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE merchant_id = $1 AND barcode = $2`,
		merchantID, barcode))
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, merchantID string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE merchant_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`,
		merchantID, limit, offset)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products
		SET category_id = NULLIF($2, ''), name = $3, barcode = $4, price = $5, active = $6, updated_at = $7
		WHERE id = $1`,
		p.ID, p.CategoryID, p.Name, p.Barcode, p.Price, p.Active, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// CountByMerchant implementa product.Repository.CountByMerchant
func (r *ProductRepository) CountByMerchant(ctx context.Context, merchantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE merchant_id = $1`,
		merchantID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}
