package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugohenrick/exelo-pos/internal/domain/cart"
	"github.com/hugohenrick/exelo-pos/internal/domain/inventory"
	"github.com/jackc/pgx/v5"
)

// CartRepository implementa a interface cart.Repository
type CartRepository struct {
	db DBTX
}

// NewCartRepository cria uma nova instância de CartRepository
func NewCartRepository(db DBTX) cart.Repository {
	return &CartRepository{db: db}
}

func loadLines(ctx context.Context, db DBTX, c *cart.Cart) error {
	rows, err := db.Query(ctx,
		`SELECT product_id, quantity, created_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at`,
		c.ID)

	if err != nil {
		return fmt.Errorf("erro ao listar itens do carrinho: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l cart.Line
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.AddedAt); err != nil {
			return fmt.Errorf("erro ao ler item do carrinho: %w", err)
		}
		c.Lines = append(c.Lines, l)
	}

	return rows.Err()
}

func insertLines(ctx context.Context, db DBTX, c *cart.Cart) error {
	for _, l := range c.Lines {
		_, err := db.Exec(ctx,
			`INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)`,
			uuid.New().String(), c.ID, l.ProductID, l.Quantity, l.AddedAt)
		if err != nil {
			return fmt.Errorf("erro ao gravar item do carrinho: %w", err)
		}
	}
	return nil
}

// FindByMerchant implementa cart.Repository.FindByMerchant
func (r *CartRepository) FindByMerchant(ctx context.Context, merchantID string, location inventory.Location) (*cart.Cart, error) {
	var c cart.Cart

	err := r.db.QueryRow(ctx,
		`SELECT id, merchant_id, location, created_at, updated_at
		FROM carts
		WHERE merchant_id = $1 AND location = $2`,
		merchantID, location).
		Scan(&c.ID, &c.MerchantID, &c.Location, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cart.ErrCartNotFound
		}
		return nil, fmt.Errorf("erro ao buscar carrinho: %w", err)
	}

	if err := loadLines(ctx, r.db, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Save implementa cart.Repository.Save. O carrinho e suas linhas são
// regravados dentro de uma transação própria quando o chamador ainda não
// está em uma.
func (r *CartRepository) Save(ctx context.Context, c *cart.Cart) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	// O ID gravado pode diferir quando o upsert manteve um carrinho
	// existente; o RETURNING devolve o definitivo antes de regravar as
	// linhas
	saved := *c
	err = tx.QueryRow(ctx,
		`INSERT INTO carts (id, merchant_id, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (merchant_id, location)
		DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id`,
		c.ID, c.MerchantID, c.Location, c.CreatedAt, c.UpdatedAt).Scan(&saved.ID)

	if err != nil {
		return fmt.Errorf("erro ao gravar carrinho: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, saved.ID); err != nil {
		return fmt.Errorf("erro ao limpar itens do carrinho: %w", err)
	}

	if err := insertLines(ctx, tx, &saved); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar carrinho: %w", err)
	}

	return nil
}

// Mutate implementa cart.Repository.Mutate. O upsert da linha do carrinho
// toma o lock de linha em um único passo, então mutações concorrentes do
// mesmo (comerciante, localização) executam uma de cada vez e nenhuma
// soma se perde.
func (r *CartRepository) Mutate(ctx context.Context, merchantID string, location inventory.Location, fn func(c *cart.Cart) error) (*cart.Cart, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	fresh := cart.NewCart(merchantID, location)

	var c cart.Cart
	err = tx.QueryRow(ctx,
		`INSERT INTO carts (id, merchant_id, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (merchant_id, location)
		DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id, merchant_id, location, created_at, updated_at`,
		fresh.ID, fresh.MerchantID, fresh.Location, fresh.CreatedAt, fresh.UpdatedAt).
		Scan(&c.ID, &c.MerchantID, &c.Location, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("erro ao travar carrinho: %w", err)
	}

	if err := loadLines(ctx, tx, &c); err != nil {
		return nil, err
	}

	// Falha de fn descarta a transação inteira, inclusive o upsert de um
	// carrinho recém-criado
	if err := fn(&c); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, c.ID); err != nil {
		return nil, fmt.Errorf("erro ao limpar itens do carrinho: %w", err)
	}

	if c.IsEmpty() {
		// Carrinho sem linhas não fica registrado
		if _, err := tx.Exec(ctx, `DELETE FROM carts WHERE id = $1`, c.ID); err != nil {
			return nil, fmt.Errorf("erro ao remover carrinho: %w", err)
		}
	} else {
		if err := insertLines(ctx, tx, &c); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao confirmar carrinho: %w", err)
	}

	return &c, nil
}

// Delete implementa cart.Repository.Delete. As linhas caem junto pela
// chave estrangeira com ON DELETE CASCADE.
func (r *CartRepository) Delete(ctx context.Context, merchantID string, location inventory.Location) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM carts WHERE merchant_id = $1 AND location = $2`,
		merchantID, location)

	if err != nil {
		return fmt.Errorf("erro ao remover carrinho: %w", err)
	}

	return nil
}
