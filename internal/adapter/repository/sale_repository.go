package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/exelo-pos/internal/domain/sale"
	"github.com/jackc/pgx/v5"
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db DBTX
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db DBTX) sale.Repository {
	return &SaleRepository{db: db}
}

const saleColumns = `id, merchant_id, amount, payment_method, is_completed, is_successful, created_at, updated_at`

// CreateSale implementa sale.Repository.CreateSale
func (r *SaleRepository) CreateSale(ctx context.Context, s *sale.Sale) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.MerchantID, s.Amount, s.Method, s.IsCompleted, s.IsSuccessful, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao gravar venda: %w", err)
	}

	return nil
}

// CreateSaleWithPayment implementa sale.Repository.CreateSaleWithPayment
func (r *SaleRepository) CreateSaleWithPayment(ctx context.Context, s *sale.Sale, p *sale.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.MerchantID, s.Amount, s.Method, s.IsCompleted, s.IsSuccessful, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao gravar venda: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO payments (id, sale_id, amount, payment_method, transaction_id, is_successful, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.SaleID, p.Amount, p.Method, p.TransactionID, p.IsSuccessful, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao gravar pagamento: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar venda: %w", err)
	}

	return nil
}

// FindSaleByID implementa sale.Repository.FindSaleByID
func (r *SaleRepository) FindSaleByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale

	err := r.db.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).
		Scan(&s.ID, &s.MerchantID, &s.Amount, &s.Method, &s.IsCompleted, &s.IsSuccessful, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	return &s, nil
}

// FindPaymentByTransactionID implementa sale.Repository.FindPaymentByTransactionID
func (r *SaleRepository) FindPaymentByTransactionID(ctx context.Context, transactionID string) (*sale.Payment, error) {
	var p sale.Payment

	err := r.db.QueryRow(ctx,
		`SELECT id, sale_id, amount, payment_method, transaction_id, is_successful, created_at, updated_at
		FROM payments WHERE transaction_id = $1`,
		transactionID).
		Scan(&p.ID, &p.SaleID, &p.Amount, &p.Method, &p.TransactionID, &p.IsSuccessful, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pagamento: %w", err)
	}

	return &p, nil
}

// ConfirmPayment implementa sale.Repository.ConfirmPayment. Pagamento e
// venda pai são atualizados na mesma transação; o FOR UPDATE serializa
// confirmações concorrentes do mesmo identificador.
func (r *SaleRepository) ConfirmPayment(ctx context.Context, transactionID string, success bool) (*sale.Sale, *sale.Payment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	var p sale.Payment
	err = tx.QueryRow(ctx,
		`SELECT id, sale_id, amount, payment_method, transaction_id, is_successful, created_at, updated_at
		FROM payments WHERE transaction_id = $1
		FOR UPDATE`,
		transactionID).
		Scan(&p.ID, &p.SaleID, &p.Amount, &p.Method, &p.TransactionID, &p.IsSuccessful, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, sale.ErrPaymentNotFound
		}
		return nil, nil, fmt.Errorf("erro ao buscar pagamento: %w", err)
	}

	err = tx.QueryRow(ctx,
		`UPDATE payments SET is_successful = $2, updated_at = NOW()
		WHERE transaction_id = $1
		RETURNING is_successful, updated_at`,
		transactionID, success).Scan(&p.IsSuccessful, &p.UpdatedAt)

	if err != nil {
		return nil, nil, fmt.Errorf("erro ao atualizar pagamento: %w", err)
	}

	var s sale.Sale
	if success {
		err = tx.QueryRow(ctx,
			`UPDATE sales SET is_completed = TRUE, is_successful = TRUE, updated_at = NOW()
			WHERE id = $1
			RETURNING `+saleColumns,
			p.SaleID).
			Scan(&s.ID, &s.MerchantID, &s.Amount, &s.Method, &s.IsCompleted, &s.IsSuccessful, &s.CreatedAt, &s.UpdatedAt)
	} else {
		err = tx.QueryRow(ctx,
			`SELECT `+saleColumns+` FROM sales WHERE id = $1`, p.SaleID).
			Scan(&s.ID, &s.MerchantID, &s.Amount, &s.Method, &s.IsCompleted, &s.IsSuccessful, &s.CreatedAt, &s.UpdatedAt)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("erro ao confirmar pagamento: %w", err)
	}

	return &s, &p, nil
}

// ListByMerchant implementa sale.Repository.ListByMerchant
func (r *SaleRepository) ListByMerchant(ctx context.Context, merchantID string, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales
		WHERE merchant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		merchantID, limit, offset)

	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale
	for rows.Next() {
		var s sale.Sale
		if err := rows.Scan(&s.ID, &s.MerchantID, &s.Amount, &s.Method, &s.IsCompleted,
			&s.IsSuccessful, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, &s)
	}

	return sales, rows.Err()
}
